package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codetech/vendus-go/internal/constants"
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client performs requests against the API root. Each call is a single
// attempt; non-2xx responses are returned together with a
// *vendus.ResponseError.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// Request describes one API call. Path is relative to the base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Form    url.Values
	Headers map[string]string
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the timeout of the underlying *http.Client. It is
// applied after all options, so it also covers a client passed with
// WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying *http.Client. The client is copied;
// the caller's value is never modified.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			shallow := *httpClient
			c.httpClient.HTTPClient = &shallow
		}
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = singleAttempt
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    baseURL,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout > 0 {
		retryClient.HTTPClient.Timeout = client.timeout
	}

	retryClient.Logger = &leveledLogger{logger: client.logger, debug: client.debug}

	return client
}

// singleAttempt never asks for a retry. A cancelled context is reported as
// the request error.
func singleAttempt(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err() //nolint:wrapcheck // surfaced through TransportError
	}

	return false, nil
}

// BaseURL returns the API root, always ending with a slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes the request.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if req.Form != nil {
		rawBody = []byte(req.Form.Encode())
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target.String(), rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.AcceptHeader, constants.ContentTypeJSON)
	httpReq.Header.Set(constants.UserAgentHeader, c.userAgent)

	if req.Form != nil {
		httpReq.Header.Set(constants.ContentTypeHeader, constants.ContentTypeForm)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	redacted := redactURL(target)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    redacted,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// PassthroughErrorHandler hands back the response when the context
		// ended after it arrived.
		if httpResp != nil && httpResp.Body != nil {
			_ = httpResp.Body.Close()
		}

		// retryablehttp has already logged the failure through leveledLogger.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redacted
		}

		return nil, &vendus.TransportError{Method: req.Method, URL: redacted, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &vendus.TransportError{Method: req.Method, URL: redacted, Err: fmt.Errorf("reading response body: %w", err)}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         redacted,
			"status_code": resp.StatusCode,
			"duration":    time.Since(start).String(),
			"bytes":       len(body),
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, newResponseError(httpResp, body)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// PostForm performs a POST request with a form-encoded body.
func (c *Client) PostForm(ctx context.Context, path string, query, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Query:  query,
		Form:   nonNilForm(form),
	})
}

// PatchForm performs a PATCH request with a form-encoded body.
func (c *Client) PatchForm(ctx context.Context, path string, query, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Query:  query,
		Form:   nonNilForm(form),
	})
}

func (c *Client) buildURL(path string, query url.Values) (*url.URL, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", vendus.ErrInvalidBaseURL, err)
	}

	target := base.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")})
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	return target, nil
}

func newResponseError(httpResp *http.Response, body []byte) *vendus.ResponseError {
	errResp, err := vendus.ParseResponseError(body)
	if err != nil && errResp == nil {
		errResp = &vendus.ResponseError{}
	}

	errResp.StatusCode = httpResp.StatusCode
	errResp.Status = httpResp.Status
	errResp.Body = body

	return errResp
}

func nonNilForm(form url.Values) url.Values {
	if form == nil {
		return url.Values{}
	}

	return form
}

func redactRawURL(raw string) string {
	target, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	return redactURL(target)
}

func redactURL(target *url.URL) string {
	query := target.Query()
	if query.Get(constants.APIKeyParam) == "" {
		return target.String()
	}

	query.Set(constants.APIKeyParam, constants.RedactedValue)

	redacted := *target
	redacted.RawQuery = query.Encode()

	return redacted.String()
}
