package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/heritage-io/rcu-client/internal/constants"
	"github.com/heritage-io/rcu-client/pkg/rcu"
)

// Config holds the credential triple and token endpoint for the
// client-credentials exchange.
type Config struct {
	TokenURL  string
	APIKey    string
	ClientID  string
	SecretKey string
}

// tokenRequest is the JSON body sent to the token endpoint.
type tokenRequest struct {
	ClientID  string `json:"client_id"`
	SecretKey string `json:"secret_key"`
	GrantType string `json:"grant_type"`
}

// Authenticator exchanges the credential triple for an access token.
type Authenticator struct {
	config     *Config
	httpClient *http.Client
}

// NewAuthenticator creates an authenticator for the given credentials.
func NewAuthenticator(config *Config) *Authenticator {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand back the final 5xx response instead of a "giving up" error so
	// the status code reaches the caller.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Authenticator{
		config:     config,
		httpClient: retryClient.StandardClient(),
	}
}

// RequestToken performs the token exchange. Only HTTP 200 counts as
// success; any other status or a transport failure is returned as an
// error and no token is produced.
func (a *Authenticator) RequestToken(ctx context.Context) (*Token, error) {
	payload := tokenRequest{
		ClientID:  a.config.ClientID,
		SecretKey: a.config.SecretKey,
		GrantType: constants.GrantTypeClientCredentials,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.TokenURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.HeaderAPIKey, a.config.APIKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		errResp, parseErr := rcu.ParseResponseError(respBody)
		if parseErr == nil && len(errResp.Errors) > 0 {
			errResp.StatusCode = resp.StatusCode

			return nil, fmt.Errorf("%w: %w", rcu.ErrAuthenticationFailed, errResp)
		}

		return nil, fmt.Errorf("%w: status %d", rcu.ErrAuthenticationFailed, resp.StatusCode)
	}

	var token Token

	err = json.Unmarshal(respBody, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: response contained no access_token", rcu.ErrAuthenticationFailed)
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}
