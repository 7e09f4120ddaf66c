package vendus

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Endpoint provides CRUD-style access to one resource collection. Every
// operation performs a single HTTP request. On failure the error entries are
// also recorded on the owning API (see API.Errors).
type Endpoint[T any] interface {
	// Path returns the collection path relative to the base URL.
	Path() string

	// Find fetches the resource with the given ID.
	Find(ctx context.Context, id int, params Params) (*T, error)

	// Get lists the collection. Params are sent as query parameters.
	Get(ctx context.Context, params Params) ([]T, error)

	// Paginate lists one page of the collection. Page and perPage are
	// required.
	Paginate(ctx context.Context, params Params, page, perPage int) (*Page[T], error)

	// Create posts a new resource. Params are sent as a form body.
	Create(ctx context.Context, params Params) (*T, error)

	// Update patches the resource with the given ID. Params are sent as a
	// form body.
	Update(ctx context.Context, id int, params Params) (*T, error)
}

// ResourceClients provides access to the resource endpoints.
type ResourceClients interface {
	Clients() Endpoint[Client]
	Products() Endpoint[Product]
	Units() Endpoint[Unit]
	Documents() Endpoint[Document]
	PaymentMethods() Endpoint[PaymentMethod]
}

// API is the Vendus API client.
type API interface {
	ResourceClients

	// DefaultQueryParams returns the parameters sent on every request.
	DefaultQueryParams() url.Values

	// Errors returns the error entries captured by the last failed call.
	Errors() []string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration.
type Config struct {
	// APIKey is sent as the api_key query parameter on every request.
	APIKey string

	// BaseURL overrides the API root. Defaults to https://www.vendus.pt/ws/v1.1/.
	// vendusclient.New adds "https://" when no scheme is present and makes
	// sure the value ends with a slash.
	BaseURL string

	// HTTPTimeout bounds each request. Zero leaves the transport default;
	// prefer context deadlines for per-call limits.
	HTTPTimeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging when a Logger is provided.
	Debug bool

	// Logger is an optional structured logger.
	Logger Logger

	// HTTPClient replaces the underlying *http.Client.
	HTTPClient *http.Client
}
