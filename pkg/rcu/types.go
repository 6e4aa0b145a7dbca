package rcu

import (
	"time"
)

// HeritageSite represents a single entry in the RCU heritage registry.
type HeritageSite struct {
	SiteID      string `json:"site_id"               yaml:"site_id"`
	Name        string `json:"name"                  yaml:"name"`
	Region      string `json:"region,omitempty"      yaml:"region,omitempty"`
	Period      string `json:"period,omitempty"      yaml:"period,omitempty"`
	Status      string `json:"status,omitempty"      yaml:"status,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	UNESCO      bool   `json:"unesco_listed"         yaml:"unesco_listed"`
}

// SiteList represents the envelope returned by the heritage sites endpoint.
type SiteList struct {
	Sites      []HeritageSite `json:"sites"                 yaml:"sites"`
	TotalCount int            `json:"total_count,omitempty" yaml:"total_count,omitempty"`
}

// Count returns the number of sites in the list.
func (l *SiteList) Count() int {
	return len(l.Sites)
}

// VisitorInfo is the visitor detail block of a permit application.
type VisitorInfo struct {
	Name        string `json:"name"              yaml:"name"`
	Nationality string `json:"nationality"       yaml:"nationality"`
	VisitDate   string `json:"visit_date"        yaml:"visit_date"`
	Purpose     string `json:"purpose,omitempty" yaml:"purpose,omitempty"`
}

// PermitSubmission is the wire payload for submitting a visitor permit.
type PermitSubmission struct {
	VisitorInfo    *VisitorInfo `json:"visitor_info"    yaml:"visitor_info"`
	SubmissionDate string       `json:"submission_date" yaml:"submission_date"`
	APIVersion     string       `json:"api_version"     yaml:"api_version"`
}

// Permit represents a visitor access record created via the permits endpoint.
type Permit struct {
	PermitID    string       `json:"permit_id"            yaml:"permit_id"`
	Status      string       `json:"status,omitempty"     yaml:"status,omitempty"`
	VisitorInfo *VisitorInfo `json:"visitor_info,omitempty" yaml:"visitor_info,omitempty"`
	IssuedAt    *time.Time   `json:"issued_at,omitempty"  yaml:"issued_at,omitempty"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// VisitorRegistration is the request payload for registering a visitor.
type VisitorRegistration struct {
	Name        string `json:"name"                 yaml:"name"`
	Nationality string `json:"nationality"          yaml:"nationality"`
	Email       string `json:"email,omitempty"      yaml:"email,omitempty"`
	VisitDate   string `json:"visit_date,omitempty" yaml:"visit_date,omitempty"`
}

// Visitor represents a registered visitor.
type Visitor struct {
	VisitorID    string     `json:"visitor_id"              yaml:"visitor_id"`
	Name         string     `json:"name"                    yaml:"name"`
	Nationality  string     `json:"nationality,omitempty"   yaml:"nationality,omitempty"`
	Status       string     `json:"status,omitempty"        yaml:"status,omitempty"`
	RegisteredAt *time.Time `json:"registered_at,omitempty" yaml:"registered_at,omitempty"`
}

// BookingRequest is the wire payload for booking an event.
type BookingRequest struct {
	EventID       string `json:"event_id"       yaml:"event_id"`
	AttendeeCount int    `json:"attendee_count" yaml:"attendee_count"`
	BookingDate   string `json:"booking_date"   yaml:"booking_date"`
}

// Booking represents an event-attendance record created via the
// event-booking endpoint.
type Booking struct {
	BookingID     string     `json:"booking_id"             yaml:"booking_id"`
	EventID       string     `json:"event_id,omitempty"     yaml:"event_id,omitempty"`
	AttendeeCount int        `json:"attendee_count,omitempty" yaml:"attendee_count,omitempty"`
	Status        string     `json:"status,omitempty"       yaml:"status,omitempty"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty" yaml:"confirmed_at,omitempty"`
}
