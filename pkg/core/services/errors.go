package services

import "errors"

// Domain errors. All are expected, recoverable conditions surfaced to the
// command layer as user-facing messages; none are fatal. Callers distinguish
// them with errors.Is.
var (
	// ErrEventNotFound means the referenced event id did not resolve
	ErrEventNotFound = errors.New("event not found")

	// ErrEventFull rejects a submission to an event with no remaining positions
	ErrEventFull = errors.New("all volunteer positions for this event are already filled")

	// ErrDuplicateApplication rejects a second application for the same
	// (email, event) pair, regardless of the first one's status
	ErrDuplicateApplication = errors.New("an application for this event already exists")

	// ErrApplicationNotFound means the application id did not resolve
	ErrApplicationNotFound = errors.New("application not found")

	// ErrEventAtCapacity blocks an approval that would exceed event capacity
	ErrEventAtCapacity = errors.New("cannot approve: all volunteer positions are already filled")

	// ErrInvalidState blocks a transition on a non-pending application
	ErrInvalidState = errors.New("application has already been decided")

	// ErrValidation marks malformed input, as distinct from domain conditions
	ErrValidation = errors.New("invalid input")

	// ErrStudentNotFound means no applications exist for the given email
	ErrStudentNotFound = errors.New("no applications found for this email address")

	// ErrNotAuthenticated gates admin operations on an active admin session
	ErrNotAuthenticated = errors.New("admin login required")

	// ErrInvalidCredentials rejects a failed admin login attempt
	ErrInvalidCredentials = errors.New("invalid username or password")
)
