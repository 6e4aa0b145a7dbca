package rcuclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/heritage-io/rcu-client/internal/client"
	"github.com/heritage-io/rcu-client/pkg/rcu"
)

// New creates an rcu.Client from the given configuration.
//
// The API endpoint is normalized before use: a missing scheme defaults to
// https and a trailing slash is trimmed. Unless Config.TokenURL is set,
// the token endpoint is derived from the normalized API endpoint.
func New(config *rcu.Config) (rcu.Client, error) {
	if config == nil {
		return nil, rcu.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, rcu.ErrAPIEndpointRequired
	}

	endpoint, err := normalizeEndpoint(config.APIEndpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid API endpoint: %w", err)
	}

	// Copy so the caller's config is not mutated.
	cfg := *config
	cfg.APIEndpoint = endpoint

	rcuClient, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("creating RCU client: %w", err)
	}

	return rcuClient, nil
}

// normalizeEndpoint ensures the endpoint has a scheme and no trailing slash.
func normalizeEndpoint(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)

	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint URL: %w", err)
	}

	if parsed.Host == "" {
		return "", rcu.ErrNoHostInURL
	}

	return endpoint, nil
}
