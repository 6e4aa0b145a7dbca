// Package client implements the rcu.Client interface.
package client

import (
	"context"
	"fmt"

	"github.com/heritage-io/rcu-client/internal/auth"
	"github.com/heritage-io/rcu-client/internal/constants"
	"github.com/heritage-io/rcu-client/internal/http"
	"github.com/heritage-io/rcu-client/pkg/rcu"
)

// Client implements the rcu.Client interface.
type Client struct {
	httpClient    *http.Client
	tokenManager  auth.TokenManager
	sessionTokens *auth.SessionTokenManager
	authenticator *auth.Authenticator
	baseURL       string
	logger        rcu.Logger

	// Resource clients
	heritageSites rcu.HeritageSitesClient
	permits       rcu.PermitsClient
	visitors      rcu.VisitorsClient
	events        rcu.EventsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *rcu.Config) []http.Option {
	httpOpts := []http.Option{http.WithAPIKey(config.APIKey)}

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

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new RCU API client.
func New(config *rcu.Config) (*Client, error) {
	if config == nil {
		return nil, rcu.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, rcu.ErrAPIEndpointRequired
	}

	client := &Client{
		baseURL: config.APIEndpoint,
		logger:  config.Logger,
	}

	if config.AccessToken != "" {
		client.tokenManager = auth.NewStaticTokenManager(config.AccessToken)
	} else {
		if config.APIKey == "" || config.SecretKey == "" || config.ClientID == "" {
			return nil, rcu.ErrCredentialsRequired
		}

		tokenURL := config.TokenURL
		if tokenURL == "" {
			tokenURL = config.APIEndpoint + constants.PathAuthToken
		}

		client.sessionTokens = auth.NewSessionTokenManager()
		client.tokenManager = client.sessionTokens
		client.authenticator = auth.NewAuthenticator(&auth.Config{
			TokenURL:  tokenURL,
			APIKey:    config.APIKey,
			ClientID:  config.ClientID,
			SecretKey: config.SecretKey,
		})
	}

	client.httpClient = http.NewClient(config.APIEndpoint, client.tokenManager, createHTTPClientOptions(config)...)

	cache, err := rcu.NewCacheFromConfig(config.Cache)
	if err != nil {
		return nil, fmt.Errorf("building response cache: %w", err)
	}

	client.initializeResourceClients(cache)

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients(cache rcu.Cache) {
	c.heritageSites = NewHeritageSitesClient(c.httpClient, cache)
	c.permits = NewPermitsClient(c.httpClient)
	c.visitors = NewVisitorsClient(c.httpClient)
	c.events = NewEventsClient(c.httpClient)
}

// Authenticate implements rcu.Client.Authenticate. With session
// credentials it exchanges them for an access token; with a static token
// it only verifies one is present. The session token is left untouched
// when the exchange fails.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.authenticator == nil {
		if !c.tokenManager.Authenticated() {
			return rcu.ErrNotAuthenticated
		}

		return nil
	}

	token, err := c.authenticator.RequestToken(ctx)
	if err != nil {
		return fmt.Errorf("authenticating with RCU API: %w", err)
	}

	c.sessionTokens.SetFullToken(token)

	if c.logger != nil {
		c.logger.Info("authenticated with RCU API", map[string]interface{}{
			"endpoint": c.baseURL,
		})
	}

	return nil
}

// Token implements rcu.Client.Token.
func (c *Client) Token(ctx context.Context) (string, error) {
	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// HeritageSites implements rcu.Client.HeritageSites.
func (c *Client) HeritageSites() rcu.HeritageSitesClient {
	return c.heritageSites
}

// Permits implements rcu.Client.Permits.
func (c *Client) Permits() rcu.PermitsClient {
	return c.permits
}

// Visitors implements rcu.Client.Visitors.
func (c *Client) Visitors() rcu.VisitorsClient {
	return c.visitors
}

// Events implements rcu.Client.Events.
func (c *Client) Events() rcu.EventsClient {
	return c.events
}
