package rcu

import (
	"context"
	"time"
)

// HeritageSitesClient provides access to the heritage sites registry.
type HeritageSitesClient interface {
	List(ctx context.Context, opts *ListOptions) (*SiteList, error)
	Get(ctx context.Context, siteID string) (*HeritageSite, error)
}

// PermitsClient submits and retrieves visitor permits.
type PermitsClient interface {
	Submit(ctx context.Context, visitor *VisitorInfo) (*Permit, error)
	Get(ctx context.Context, permitID string) (*Permit, error)
}

// VisitorsClient manages visitor registrations.
type VisitorsClient interface {
	Register(ctx context.Context, registration *VisitorRegistration) (*Visitor, error)
	Get(ctx context.Context, visitorID string) (*Visitor, error)
}

// EventsClient books events at heritage sites.
type EventsClient interface {
	Book(ctx context.Context, eventID string, attendeeCount int) (*Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*Booking, error)
}

// Client is the entry point to the RCU services API.
//
// Authenticate must succeed before any resource operation; until then the
// resource clients fail with ErrNotAuthenticated without issuing a request.
type Client interface {
	// Authenticate obtains an access token with the configured credentials
	// and stores it for subsequent calls.
	Authenticate(ctx context.Context) error

	// Token returns the current access token, if any.
	Token(ctx context.Context) (string, error)

	HeritageSites() HeritageSitesClient
	Permits() PermitsClient
	Visitors() VisitorsClient
	Events() EventsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an rcu.Client.
//
// APIKey, SecretKey, and ClientID are the credential triple issued by RCU.
// Alternatively a pre-obtained AccessToken can be supplied, in which case
// Authenticate becomes a no-op validation of the static token.
//
// Retries are disabled unless RetryMax is set; a failed request is a failed
// operation, matching the API's documented client behavior.
type Config struct {
	// APIEndpoint: base URL for the RCU API (e.g., "https://api.rcu.gov.sa").
	// rcuclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	APIEndpoint string

	// APIKey is sent as the X-API-Key header on every request.
	APIKey string
	// SecretKey is exchanged, together with ClientID, for an access token.
	SecretKey string
	// ClientID identifies the integration to the auth endpoint.
	ClientID string
	// AccessToken: if set, used directly as a static Bearer token.
	AccessToken string
	// TokenURL: full token endpoint. If empty, rcuclient.New derives it
	// from APIEndpoint.
	TokenURL string

	// HTTPTimeout: optional default HTTP timeout. Most calls should rely
	// on context timeouts instead.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). Zero means a single attempt.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Cache: optional response cache for near-static reference data
	// (currently the heritage sites registry). Nil disables caching.
	Cache *CacheConfig
}

// ListOptions narrows list operations.
type ListOptions struct {
	// Region filters heritage sites by administrative region.
	Region string
	// Status filters by site status (e.g. "open", "restoration").
	Status string
	// Limit caps the number of returned records; zero means server default.
	Limit int
}
