package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/heritage-io/rcu-client/internal/constants"
	"github.com/heritage-io/rcu-client/internal/http"
	"github.com/heritage-io/rcu-client/pkg/rcu"
)

// PermitsClient implements rcu.PermitsClient.
type PermitsClient struct {
	httpClient *http.Client
}

// NewPermitsClient creates a new permits client.
func NewPermitsClient(httpClient *http.Client) *PermitsClient {
	return &PermitsClient{
		httpClient: httpClient,
	}
}

// Submit implements rcu.PermitsClient.Submit. The submission is stamped
// with the current time; the API answers 201 with the created permit
// record, and any other status is a failed submission.
func (c *PermitsClient) Submit(ctx context.Context, visitor *rcu.VisitorInfo) (*rcu.Permit, error) {
	if visitor == nil {
		return nil, rcu.ErrVisitorInfoRequired
	}

	payload := &rcu.PermitSubmission{
		VisitorInfo:    visitor,
		SubmissionDate: timeNow().Format(time.RFC3339),
		APIVersion:     constants.APIVersion,
	}

	resp, err := c.httpClient.Post(ctx, constants.PathPermits, payload)
	if err != nil {
		return nil, fmt.Errorf("submitting visitor permit: %w", err)
	}

	if resp.StatusCode != nethttp.StatusCreated {
		return nil, fmt.Errorf("submitting visitor permit: %w: status %d", rcu.ErrUnexpectedStatus, resp.StatusCode)
	}

	var permit rcu.Permit

	err = json.Unmarshal(resp.Body, &permit)
	if err != nil {
		return nil, fmt.Errorf("parsing permit response: %w", err)
	}

	return &permit, nil
}

// Get implements rcu.PermitsClient.Get.
func (c *PermitsClient) Get(ctx context.Context, permitID string) (*rcu.Permit, error) {
	if permitID == "" {
		return nil, rcu.ErrPermitIDRequired
	}

	path := constants.PathPermits + "/" + permitID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting permit: %w", err)
	}

	if resp.StatusCode != nethttp.StatusOK {
		return nil, fmt.Errorf("getting permit: %w: status %d", rcu.ErrUnexpectedStatus, resp.StatusCode)
	}

	var permit rcu.Permit

	err = json.Unmarshal(resp.Body, &permit)
	if err != nil {
		return nil, fmt.Errorf("parsing permit: %w", err)
	}

	return &permit, nil
}
