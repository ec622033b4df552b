package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// SeriesInput describes a recurring event series: the shared descriptive
// fields plus a recurrence rule and an occurrence count
type SeriesInput struct {
	Name             string `validate:"required"`
	Time             string `validate:"required"`
	Category         string `validate:"required"`
	VolunteersNeeded int    `validate:"required,min=1"`
	RRule            string `validate:"required"`
	Count            int    `validate:"required,min=1,max=52"`
	Description      string
	Active           bool
}

// CreateEventSeries expands a recurrence rule into individual events, one per
// occurrence. Each occurrence is a normal standalone event afterwards: its own
// id, its own capacity, its own applications.
func CreateEventSeries(
	ctx context.Context,
	database EventStore,
	logger *zap.Logger,
	clock Clock,
	input SeriesInput,
) ([]model.Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	rule, err := rrule.StrToRRule(input.RRule)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid recurrence rule: %v", ErrValidation, err)
	}

	// Occurrences start from today; the rule's own DTSTART, if any, is
	// overridden so a reused rule string cannot generate events in the past
	now := clock()
	rule.DTStart(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))

	iterator := rule.Iterator()
	dates := make([]time.Time, 0, input.Count)
	for len(dates) < input.Count {
		occurrence, ok := iterator()
		if !ok {
			break
		}
		dates = append(dates, occurrence)
	}

	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: recurrence rule produced no occurrences", ErrValidation)
	}

	events, err := database.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	id := nextID(clock, eventIDs(events)...)
	created := make([]model.Event, 0, len(dates))
	for _, date := range dates {
		created = append(created, model.Event{
			ID:               id,
			Name:             input.Name,
			Date:             date.Format("2006-01-02"),
			Time:             input.Time,
			Description:      input.Description,
			Category:         input.Category,
			VolunteersNeeded: input.VolunteersNeeded,
			IsUpcoming:       input.Active,
		})
		id++
	}

	if err := database.SaveEvents(ctx, append(events, created...)); err != nil {
		return nil, fmt.Errorf("failed to save events: %w", err)
	}

	logger.Info("Event series created",
		zap.String("name", input.Name),
		zap.String("rrule", input.RRule),
		zap.Int("occurrences", len(created)),
		zap.String("first", created[0].Date),
		zap.String("last", created[len(created)-1].Date))

	recordJournal(ctx, database, logger, clock, "EVENT_SERIES_CREATED", "success", map[string]any{
		"name":        input.Name,
		"rrule":       input.RRule,
		"occurrences": len(created),
		"first_date":  created[0].Date,
		"last_date":   created[len(created)-1].Date,
	})

	return created, nil
}
