package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/pkg/core/capacity"
	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// EventStore defines the database operations needed for event management
type EventStore interface {
	GetEvents(ctx context.Context) ([]model.Event, error)
	SaveEvents(ctx context.Context, events []model.Event) error
	GetApplications(ctx context.Context) ([]model.Application, error)
	SaveApplications(ctx context.Context, applications []model.Application) error
	JournalStore
}

// EventInput carries the event form fields. Validation here is deliberately
// stricter than what the store may already contain: new and edited events
// need the descriptive fields and a positive capacity.
type EventInput struct {
	Name             string `validate:"required"`
	Date             string `validate:"required,datetime=2006-01-02"`
	Time             string `validate:"required"`
	Category         string `validate:"required"`
	VolunteersNeeded int    `validate:"required,min=1"`
	Description      string
	Active           bool
}

// EventSummary pairs an event with its derived capacity view for display
type EventSummary struct {
	Event            model.Event
	Stats            model.VolunteerStats
	ApplicationCount int
}

// CreateEvent creates a new event from the given input
func CreateEvent(
	ctx context.Context,
	database EventStore,
	logger *zap.Logger,
	clock Clock,
	input EventInput,
) (*model.Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	events, err := database.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	event := model.Event{
		ID:               nextID(clock, eventIDs(events)...),
		Name:             input.Name,
		Date:             input.Date,
		Time:             input.Time,
		Description:      input.Description,
		Category:         input.Category,
		VolunteersNeeded: input.VolunteersNeeded,
		IsUpcoming:       input.Active,
	}

	if err := database.SaveEvents(ctx, append(events, event)); err != nil {
		return nil, fmt.Errorf("failed to save events: %w", err)
	}

	logger.Info("Event created",
		zap.Int64("event_id", event.ID),
		zap.String("name", event.Name),
		zap.Int("volunteers_needed", event.VolunteersNeeded))

	recordJournal(ctx, database, logger, clock, "EVENT_CREATED", "success", map[string]any{
		"event_id":          event.ID,
		"name":              event.Name,
		"date":              event.Date,
		"category":          event.Category,
		"volunteers_needed": event.VolunteersNeeded,
	})

	return &event, nil
}

// UpdateEvent replaces the descriptive fields of an existing event. Existing
// applications keep the event name they were submitted under.
func UpdateEvent(
	ctx context.Context,
	database EventStore,
	logger *zap.Logger,
	clock Clock,
	eventID int64,
	input EventInput,
) (*model.Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	events, err := database.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	event := findEvent(events, eventID)
	if event == nil {
		recordJournal(ctx, database, logger, clock, "EVENT_UPDATED", "failure", map[string]any{
			"event_id": eventID,
			"error":    ErrEventNotFound.Error(),
		})
		return nil, ErrEventNotFound
	}

	event.Name = input.Name
	event.Date = input.Date
	event.Time = input.Time
	event.Description = input.Description
	event.Category = input.Category
	event.VolunteersNeeded = input.VolunteersNeeded
	event.IsUpcoming = input.Active

	if err := database.SaveEvents(ctx, events); err != nil {
		return nil, fmt.Errorf("failed to save events: %w", err)
	}

	logger.Info("Event updated", zap.Int64("event_id", event.ID), zap.String("name", event.Name))

	recordJournal(ctx, database, logger, clock, "EVENT_UPDATED", "success", map[string]any{
		"event_id":          event.ID,
		"name":              event.Name,
		"volunteers_needed": event.VolunteersNeeded,
	})

	return event, nil
}

// ToggleEventStatus flips the event's active flag. It has no effect on
// capacity or existing applications.
func ToggleEventStatus(
	ctx context.Context,
	database EventStore,
	logger *zap.Logger,
	clock Clock,
	eventID int64,
) (*model.Event, error) {
	events, err := database.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	event := findEvent(events, eventID)
	if event == nil {
		return nil, ErrEventNotFound
	}

	event.IsUpcoming = !event.IsUpcoming

	if err := database.SaveEvents(ctx, events); err != nil {
		return nil, fmt.Errorf("failed to save events: %w", err)
	}

	logger.Info("Event status toggled",
		zap.Int64("event_id", event.ID),
		zap.String("name", event.Name),
		zap.Bool("active", event.IsUpcoming))

	recordJournal(ctx, database, logger, clock, "EVENT_STATUS_TOGGLED", "success", map[string]any{
		"event_id": event.ID,
		"name":     event.Name,
		"active":   event.IsUpcoming,
	})

	return event, nil
}

// DeleteEventResult reports what a cascade delete removed
type DeleteEventResult struct {
	Event               model.Event
	RemovedApplications int
}

// DeleteEvent removes an event and cascades to every application referencing
// it. Notifications already emitted for those applications are left alone:
// they are a historical record of decisions that did happen.
func DeleteEvent(
	ctx context.Context,
	database EventStore,
	logger *zap.Logger,
	clock Clock,
	eventID int64,
) (*DeleteEventResult, error) {
	events, err := database.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	event := findEvent(events, eventID)
	if event == nil {
		return nil, ErrEventNotFound
	}
	deleted := *event

	remaining := make([]model.Event, 0, len(events)-1)
	for _, e := range events {
		if e.ID != eventID {
			remaining = append(remaining, e)
		}
	}

	applications, err := database.GetApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	kept := make([]model.Application, 0, len(applications))
	removed := 0
	for _, app := range applications {
		if app.EventID == eventID {
			removed++
			continue
		}
		kept = append(kept, app)
	}

	if err := database.SaveEvents(ctx, remaining); err != nil {
		return nil, fmt.Errorf("failed to save events: %w", err)
	}
	if err := database.SaveApplications(ctx, kept); err != nil {
		return nil, fmt.Errorf("failed to save applications: %w", err)
	}

	logger.Info("Event deleted",
		zap.Int64("event_id", deleted.ID),
		zap.String("name", deleted.Name),
		zap.Int("removed_applications", removed))

	recordJournal(ctx, database, logger, clock, "EVENT_DELETED", "success", map[string]any{
		"event_id":             deleted.ID,
		"name":                 deleted.Name,
		"removed_applications": removed,
	})

	return &DeleteEventResult{Event: deleted, RemovedApplications: removed}, nil
}

// ListEventsStore defines the read operations needed for listing events
type ListEventsStore interface {
	GetEvents(ctx context.Context) ([]model.Event, error)
	GetApplications(ctx context.Context) ([]model.Application, error)
}

// ListEvents returns events with their live capacity stats, in stored order.
// With activeOnly set, inactive events are filtered out (the public listing).
func ListEvents(ctx context.Context, database ListEventsStore, logger *zap.Logger, activeOnly bool) ([]EventSummary, error) {
	events, err := database.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	applications, err := database.GetApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	summaries := make([]EventSummary, 0, len(events))
	for i := range events {
		if activeOnly && !events[i].IsUpcoming {
			continue
		}
		summaries = append(summaries, EventSummary{
			Event:            events[i],
			Stats:            capacity.ComputeStats(&events[i], applications),
			ApplicationCount: capacity.CountForEvent(events[i].ID, applications),
		})
	}

	logger.Debug("Listed events", zap.Int("count", len(summaries)), zap.Bool("active_only", activeOnly))

	return summaries, nil
}
