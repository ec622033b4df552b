package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/pkg/core/capacity"
	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// notSpecified fills the optional free-text fields when the applicant leaves
// them blank, matching the stored records older versions produced
const notSpecified = "Not specified"

// SubmitStore defines the database operations needed for submitting an application
type SubmitStore interface {
	GetEvents(ctx context.Context) ([]model.Event, error)
	GetApplications(ctx context.Context) ([]model.Application, error)
	SaveApplications(ctx context.Context, applications []model.Application) error
	JournalStore
}

// SubmitInput carries the applicant's form fields
type SubmitInput struct {
	Name         string `validate:"required"`
	RollNo       string `validate:"required"`
	Department   string `validate:"required"`
	Email        string `validate:"required,email"`
	Availability string `validate:"required"`
	Skills       string
	Motivation   string
}

// SubmitApplication creates a pending volunteer application for an event.
// The capacity check happens here and again at approval time; submission to a
// full event fails without creating a record. Emails are lowercased before
// the duplicate check so casing cannot smuggle in a second application.
func SubmitApplication(
	ctx context.Context,
	database SubmitStore,
	logger *zap.Logger,
	clock Clock,
	eventID int64,
	input SubmitInput,
) (*model.Application, error) {
	logger.Debug("Submitting application",
		zap.Int64("event_id", eventID),
		zap.String("email", input.Email))

	// Normalize before validating: the email tag rejects surrounding
	// whitespace, and the duplicate check below needs the canonical form
	email := strings.ToLower(strings.TrimSpace(input.Email))
	input.Email = email

	if err := validateInput(input); err != nil {
		return nil, err
	}

	events, err := database.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	event := findEvent(events, eventID)
	if event == nil {
		recordJournal(ctx, database, logger, clock, "APPLICATION_SUBMITTED", "failure", map[string]any{
			"event_id": eventID,
			"email":    email,
			"error":    ErrEventNotFound.Error(),
		})
		return nil, ErrEventNotFound
	}

	applications, err := database.GetApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	stats := capacity.ComputeStats(event, applications)
	if stats.IsFull {
		recordJournal(ctx, database, logger, clock, "APPLICATION_SUBMITTED", "failure", map[string]any{
			"event_id":   eventID,
			"event_name": event.Name,
			"email":      email,
			"error":      ErrEventFull.Error(),
		})
		return nil, ErrEventFull
	}

	for _, app := range applications {
		if app.EventID == eventID && strings.ToLower(app.Email) == email {
			recordJournal(ctx, database, logger, clock, "APPLICATION_SUBMITTED", "failure", map[string]any{
				"event_id":   eventID,
				"event_name": event.Name,
				"email":      email,
				"error":      ErrDuplicateApplication.Error(),
			})
			return nil, ErrDuplicateApplication
		}
	}

	skills := strings.TrimSpace(input.Skills)
	if skills == "" {
		skills = notSpecified
	}
	motivation := strings.TrimSpace(input.Motivation)
	if motivation == "" {
		motivation = notSpecified
	}

	application := model.Application{
		ID:           nextID(clock, applicationIDs(applications)...),
		EventID:      event.ID,
		EventName:    event.Name,
		Name:         input.Name,
		RollNo:       input.RollNo,
		Department:   input.Department,
		Email:        email,
		Skills:       skills,
		Availability: input.Availability,
		Motivation:   motivation,
		Status:       model.StatusPending,
		AppliedDate:  clock(),
	}

	if err := database.SaveApplications(ctx, append(applications, application)); err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}

	logger.Info("Application submitted",
		zap.Int64("application_id", application.ID),
		zap.Int64("event_id", event.ID),
		zap.String("event_name", event.Name),
		zap.String("email", email))

	recordJournal(ctx, database, logger, clock, "APPLICATION_SUBMITTED", "success", map[string]any{
		"application_id": application.ID,
		"event_id":       event.ID,
		"event_name":     event.Name,
		"email":          email,
	})

	return &application, nil
}

// findEvent returns the event with the given id, or nil
func findEvent(events []model.Event, id int64) *model.Event {
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}
