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

// EventsClient implements rcu.EventsClient.
type EventsClient struct {
	httpClient *http.Client
}

// NewEventsClient creates a new events client.
func NewEventsClient(httpClient *http.Client) *EventsClient {
	return &EventsClient{
		httpClient: httpClient,
	}
}

// Book implements rcu.EventsClient.Book. The booking is stamped with the
// current time; the API answers 201 with the created booking record.
func (c *EventsClient) Book(ctx context.Context, eventID string, attendeeCount int) (*rcu.Booking, error) {
	if eventID == "" {
		return nil, rcu.ErrEventIDRequired
	}

	if attendeeCount <= 0 {
		return nil, rcu.ErrAttendeeCountInvalid
	}

	payload := &rcu.BookingRequest{
		EventID:       eventID,
		AttendeeCount: attendeeCount,
		BookingDate:   timeNow().Format(time.RFC3339),
	}

	resp, err := c.httpClient.Post(ctx, constants.PathEventBooking, payload)
	if err != nil {
		return nil, fmt.Errorf("booking event: %w", err)
	}

	if resp.StatusCode != nethttp.StatusCreated {
		return nil, fmt.Errorf("booking event: %w: status %d", rcu.ErrUnexpectedStatus, resp.StatusCode)
	}

	var booking rcu.Booking

	err = json.Unmarshal(resp.Body, &booking)
	if err != nil {
		return nil, fmt.Errorf("parsing booking response: %w", err)
	}

	return &booking, nil
}

// GetBooking implements rcu.EventsClient.GetBooking.
func (c *EventsClient) GetBooking(ctx context.Context, bookingID string) (*rcu.Booking, error) {
	if bookingID == "" {
		return nil, rcu.ErrBookingIDRequired
	}

	path := constants.PathEventBooking + "/" + bookingID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting booking: %w", err)
	}

	if resp.StatusCode != nethttp.StatusOK {
		return nil, fmt.Errorf("getting booking: %w: status %d", rcu.ErrUnexpectedStatus, resp.StatusCode)
	}

	var booking rcu.Booking

	err = json.Unmarshal(resp.Body, &booking)
	if err != nil {
		return nil, fmt.Errorf("parsing booking: %w", err)
	}

	return &booking, nil
}
