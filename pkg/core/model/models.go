package model

import (
	"strings"
	"time"
)

// ApplicationStatus tracks where an application sits in its lifecycle.
// Pending is the only non-terminal state.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusApproved ApplicationStatus = "Approved"
	StatusRejected ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Terminal reports whether the status permits no further transitions
func (s ApplicationStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ParseStatus resolves a case-insensitive status name. The empty string
// parses to the empty status, which callers treat as "no filter".
func ParseStatus(s string) (ApplicationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", true
	case "pending":
		return StatusPending, true
	case "approved":
		return StatusApproved, true
	case "rejected":
		return StatusRejected, true
	default:
		return "", false
	}
}

// NotificationType mirrors the lifecycle transition that produced the notification
type NotificationType string

const (
	NotificationApproved NotificationType = "approved"
	NotificationRejected NotificationType = "rejected"
)

// Event represents a campus event that recruits volunteers.
// The json tags fix the persisted layout under the "events" store key.
type Event struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Date             string `json:"date"` // calendar date, 2006-01-02
	Time             string `json:"time"` // free-text range, e.g. "09:00 AM - 06:00 PM"
	Description      string `json:"description"`
	Category         string `json:"category"`
	VolunteersNeeded int    `json:"volunteersNeeded"`
	// IsUpcoming is the active/visible flag. The name is historical; it is
	// admin-toggled, never derived from the date.
	IsUpcoming bool `json:"isUpcoming"`
}

// Application represents a student's volunteer application for one event.
// EventName is a copy of the event name at application time and stays frozen
// even if the event is later renamed.
type Application struct {
	ID               int64             `json:"id"`
	EventID          int64             `json:"eventId"`
	EventName        string            `json:"eventName"`
	Name             string            `json:"name"`
	RollNo           string            `json:"rollNo"`
	Department       string            `json:"department"`
	Email            string            `json:"email"`
	Skills           string            `json:"skills"`
	Availability     string            `json:"availability"`
	Motivation       string            `json:"motivation"`
	Status           ApplicationStatus `json:"status"`
	AppliedDate      time.Time         `json:"appliedDate"`
	StatusChangeDate *time.Time        `json:"statusChangeDate,omitempty"`
}

// Notification is an append-only record of an approve/reject decision,
// addressed to the applicant. Only the Read flag ever changes after creation.
type Notification struct {
	ID           int64            `json:"id"`
	StudentEmail string           `json:"studentEmail"`
	EventName    string           `json:"eventName"`
	Type         NotificationType `json:"type"`
	Message      string           `json:"message"`
	Timestamp    time.Time        `json:"timestamp"`
	Read         bool             `json:"read"`
}

// VolunteerStats is the derived capacity view for one event. Never persisted.
type VolunteerStats struct {
	Selected  int
	Remaining int
	Total     int
	IsFull    bool
}
