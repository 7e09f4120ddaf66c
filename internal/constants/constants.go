package constants

import "time"

// API location.
const (
	// DefaultBaseURL is the root of the Vendus API.
	DefaultBaseURL = "https://www.vendus.pt/ws/v1.1/"

	// APIKeyParam is the query parameter carrying the API key.
	APIKeyParam = "api_key"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "vendus-go"
)

// Resource paths, relative to the base URL.
const (
	ClientsPath        = "clients"
	ProductsPath       = "products"
	UnitsPath          = "products/units"
	DocumentsPath      = "documents"
	PaymentMethodsPath = "documents/paymentmethods"
)

// Pagination.
const (
	// PageParam is the query parameter selecting the page.
	PageParam = "page"

	// PerPageParam is the query parameter selecting the page size.
	PerPageParam = "per_page"

	// PaginatorItemsHeader carries the total item count of a paginated list.
	PaginatorItemsHeader = "X-Paginator-Items"

	// StandardPageSize is the CLI default page size.
	StandardPageSize = 25
)

// HTTP headers and content types.
const (
	ContentTypeHeader = "Content-Type"
	AcceptHeader      = "Accept"
	UserAgentHeader   = "User-Agent"
	ContentTypeJSON   = "application/json"
	ContentTypeForm   = "application/x-www-form-urlencoded"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the CLI default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formatting.
const (
	// JSONIndentSize is the indent used for JSON and YAML output.
	JSONIndentSize = 2

	// RedactedValue replaces secrets in logs and output.
	RedactedValue = "***"
)
