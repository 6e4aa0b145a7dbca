package constants

import "time"

// Service endpoints, relative to the API base URL.
const (
	// PathAuthToken is the token endpoint.
	PathAuthToken = "/v1/auth/token"

	// PathPermits is the visitor permits endpoint.
	PathPermits = "/v1/permits"

	// PathHeritageSites is the heritage sites registry endpoint.
	PathHeritageSites = "/v1/heritage/sites"

	// PathVisitors is the visitor management endpoint.
	PathVisitors = "/v1/visitors"

	// PathEventBooking is the event booking endpoint.
	PathEventBooking = "/v1/events/booking"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits, applied only when retries are explicitly enabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration.
	TokenExpirationBuffer = 30 * time.Second

	// GrantTypeClientCredentials is the grant type sent to the token endpoint.
	GrantTypeClientCredentials = "client_credentials"
)

// Wire format.
const (
	// APIVersion is stamped into create payloads that carry a version field.
	APIVersion = "v1"

	// HeaderAPIKey carries the integration API key on every request.
	HeaderAPIKey = "X-API-Key"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// UI and display constants.
const (
	// CheckMark marks a successful step in demo output.
	CheckMark = "✓"

	// CrossMark marks a failed step in demo output.
	CrossMark = "✗"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)
