package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/heritage-io/rcu-client/internal/constants"
	"github.com/heritage-io/rcu-client/internal/http"
	"github.com/heritage-io/rcu-client/pkg/rcu"
)

// VisitorsClient implements rcu.VisitorsClient.
type VisitorsClient struct {
	httpClient *http.Client
}

// NewVisitorsClient creates a new visitors client.
func NewVisitorsClient(httpClient *http.Client) *VisitorsClient {
	return &VisitorsClient{
		httpClient: httpClient,
	}
}

// Register implements rcu.VisitorsClient.Register.
func (c *VisitorsClient) Register(ctx context.Context, registration *rcu.VisitorRegistration) (*rcu.Visitor, error) {
	if registration == nil {
		return nil, rcu.ErrVisitorInfoRequired
	}

	resp, err := c.httpClient.Post(ctx, constants.PathVisitors, registration)
	if err != nil {
		return nil, fmt.Errorf("registering visitor: %w", err)
	}

	if resp.StatusCode != nethttp.StatusCreated {
		return nil, fmt.Errorf("registering visitor: %w: status %d", rcu.ErrUnexpectedStatus, resp.StatusCode)
	}

	var visitor rcu.Visitor

	err = json.Unmarshal(resp.Body, &visitor)
	if err != nil {
		return nil, fmt.Errorf("parsing visitor response: %w", err)
	}

	return &visitor, nil
}

// Get implements rcu.VisitorsClient.Get.
func (c *VisitorsClient) Get(ctx context.Context, visitorID string) (*rcu.Visitor, error) {
	if visitorID == "" {
		return nil, rcu.ErrVisitorIDRequired
	}

	path := constants.PathVisitors + "/" + visitorID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting visitor: %w", err)
	}

	if resp.StatusCode != nethttp.StatusOK {
		return nil, fmt.Errorf("getting visitor: %w: status %d", rcu.ErrUnexpectedStatus, resp.StatusCode)
	}

	var visitor rcu.Visitor

	err = json.Unmarshal(resp.Body, &visitor)
	if err != nil {
		return nil, fmt.Errorf("parsing visitor: %w", err)
	}

	return &visitor, nil
}
