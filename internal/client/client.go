package client

import (
	"net/url"
	"sync"

	"github.com/codetech/vendus-go/internal/constants"
	"github.com/codetech/vendus-go/internal/http"
	"github.com/codetech/vendus-go/pkg/vendus"
)

// Client implements the vendus.API interface.
type Client struct {
	apiKey     string
	httpClient *http.Client
	logger     vendus.Logger

	mu     sync.RWMutex
	errors []string
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *vendus.Config) []http.Option {
	var httpOpts []http.Option

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new Vendus API client. No request is made.
func New(config *vendus.Config) (*Client, error) {
	if config == nil {
		return nil, vendus.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, vendus.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	return &Client{
		apiKey:     config.APIKey,
		httpClient: http.NewClient(baseURL, createHTTPClientOptions(config)...),
		logger:     config.Logger,
		errors:     []string{},
	}, nil
}

// APIKey returns the key the client was built with.
func (c *Client) APIKey() string {
	return c.apiKey
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// DefaultQueryParams implements vendus.API.DefaultQueryParams.
func (c *Client) DefaultQueryParams() url.Values {
	return url.Values{
		constants.APIKeyParam: []string{c.apiKey},
	}
}

// Errors implements vendus.API.Errors.
func (c *Client) Errors() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	errs := make([]string, len(c.errors))
	copy(errs, c.errors)

	return errs
}

// SetErrors replaces the captured error list.
func (c *Client) SetErrors(errs []string) {
	stored := make([]string, len(errs))
	copy(stored, errs)

	c.mu.Lock()
	c.errors = stored
	c.mu.Unlock()
}

// Resource client accessors

// Clients implements vendus.API.Clients.
func (c *Client) Clients() vendus.Endpoint[vendus.Client] {
	return newEndpoint[vendus.Client](c, constants.ClientsPath, "client")
}

// Products implements vendus.API.Products.
func (c *Client) Products() vendus.Endpoint[vendus.Product] {
	return newEndpoint[vendus.Product](c, constants.ProductsPath, "product")
}

// Units implements vendus.API.Units.
func (c *Client) Units() vendus.Endpoint[vendus.Unit] {
	return newEndpoint[vendus.Unit](c, constants.UnitsPath, "unit")
}

// Documents implements vendus.API.Documents.
func (c *Client) Documents() vendus.Endpoint[vendus.Document] {
	return newEndpoint[vendus.Document](c, constants.DocumentsPath, "document")
}

// PaymentMethods implements vendus.API.PaymentMethods.
func (c *Client) PaymentMethods() vendus.Endpoint[vendus.PaymentMethod] {
	return newEndpoint[vendus.PaymentMethod](c, constants.PaymentMethodsPath, "payment method")
}
