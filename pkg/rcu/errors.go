package rcu

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents an error returned by the RCU API.
type APIError struct {
	Code   int    `json:"code"   yaml:"code"`
	Title  string `json:"title"  yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (code: %d)", e.Title, e.Detail, e.Code)
}

// ResponseError represents the error response envelope from the API.
type ResponseError struct {
	Errors []APIError `json:"errors"`

	// StatusCode is the HTTP status the envelope arrived with. Not part of
	// the wire format.
	StatusCode int `json:"-"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	return fmt.Sprintf("multiple errors: %v", e.Errors)
}

// FirstError returns the first error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// Error codes used by the RCU API.
const (
	ErrorCodeNotAuthenticated = 40100
	ErrorCodeNotAuthorized    = 40300
	ErrorCodeNotFound         = 40400
	ErrorCodeValidation       = 42200
	ErrorCodeRateLimited      = 42900
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrAPIEndpointRequired  = errors.New("API endpoint is required")
	ErrCredentialsRequired  = errors.New("API key, secret key, and client ID are required")
	ErrNoHostInURL          = errors.New("no host specified in URL")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrUnexpectedStatus     = errors.New("unexpected response status")
	ErrSiteIDRequired       = errors.New("site ID is required")
	ErrPermitIDRequired     = errors.New("permit ID is required")
	ErrVisitorIDRequired    = errors.New("visitor ID is required")
	ErrEventIDRequired      = errors.New("event ID is required")
	ErrBookingIDRequired    = errors.New("booking ID is required")
	ErrAttendeeCountInvalid = errors.New("attendee count must be positive")
	ErrVisitorInfoRequired  = errors.New("visitor information is required")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatusOrCode(err, 404, ErrorCodeNotFound)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrNotAuthenticated) {
		return true
	}

	return hasStatusOrCode(err, 401, ErrorCodeNotAuthenticated)
}

// IsRateLimited checks if the error is a rate limiting error.
func IsRateLimited(err error) bool {
	return hasStatusOrCode(err, 429, ErrorCodeRateLimited)
}

func hasStatusOrCode(err error, status, code int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		if errResp.StatusCode == status {
			return true
		}

		first := errResp.FirstError()
		if first != nil {
			return first.Code == code
		}
	}

	return false
}

// ParseResponseError parses an error response envelope from JSON.
func ParseResponseError(data []byte) (*ResponseError, error) {
	var errResp ResponseError

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	return &errResp, nil
}
