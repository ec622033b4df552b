package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/pkg/core/capacity"
	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// ReviewStore defines the database operations needed for approving or
// rejecting an application
type ReviewStore interface {
	GetEvents(ctx context.Context) ([]model.Event, error)
	GetApplications(ctx context.Context) ([]model.Application, error)
	SaveApplications(ctx context.Context, applications []model.Application) error
	GetNotifications(ctx context.Context) ([]model.Notification, error)
	SaveNotifications(ctx context.Context, notifications []model.Notification) error
	JournalStore
}

// ApproveApplication moves a pending application to Approved. Capacity is
// re-checked here, not just at submission time: approvals issued while other
// approvals filled the event fail with ErrEventAtCapacity instead of
// over-committing it. On success a notification is stored for the student.
func ApproveApplication(
	ctx context.Context,
	database ReviewStore,
	logger *zap.Logger,
	clock Clock,
	applicationID int64,
) (*model.Application, error) {
	logger.Debug("Approving application", zap.Int64("application_id", applicationID))

	applications, err := database.GetApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	idx := findApplicationIndex(applications, applicationID)
	if idx < 0 {
		return nil, ErrApplicationNotFound
	}
	app := &applications[idx]

	if app.Status != model.StatusPending {
		logger.Warn("Refusing to approve a decided application",
			zap.Int64("application_id", applicationID),
			zap.String("status", string(app.Status)))
		return nil, ErrInvalidState
	}

	events, err := database.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	// A dangling event reference yields zero stats, which never reads as
	// full; approving an application for a deleted event is allowed, as the
	// cascade delete should have removed it anyway.
	stats := capacity.ComputeStats(findEvent(events, app.EventID), applications)
	if stats.IsFull {
		recordJournal(ctx, database, logger, clock, "APPLICATION_APPROVED", "failure", map[string]any{
			"application_id": applicationID,
			"event_id":       app.EventID,
			"event_name":     app.EventName,
			"error":          ErrEventAtCapacity.Error(),
		})
		return nil, ErrEventAtCapacity
	}

	now := clock()
	app.Status = model.StatusApproved
	app.StatusChangeDate = &now

	if err := database.SaveApplications(ctx, applications); err != nil {
		return nil, fmt.Errorf("failed to save applications: %w", err)
	}

	if err := storeNotification(ctx, database, clock, app, model.NotificationApproved); err != nil {
		// The status write already landed; journal the half-applied outcome
		// so the missing notification can be traced
		recordJournal(ctx, database, logger, clock, "APPLICATION_APPROVED", "partial", map[string]any{
			"application_id": app.ID,
			"event_id":       app.EventID,
			"event_name":     app.EventName,
			"email":          app.Email,
			"error":          err.Error(),
		})
		return nil, fmt.Errorf("application approved but notification not stored: %w", err)
	}

	logger.Info("Application approved",
		zap.Int64("application_id", app.ID),
		zap.String("event_name", app.EventName),
		zap.String("email", app.Email),
		zap.Int("selected_after", stats.Selected+1),
		zap.Int("total", stats.Total))

	recordJournal(ctx, database, logger, clock, "APPLICATION_APPROVED", "success", map[string]any{
		"application_id": app.ID,
		"event_id":       app.EventID,
		"event_name":     app.EventName,
		"email":          app.Email,
	})

	return app, nil
}

// RejectApplication moves a pending application to Rejected. Rejection is
// always allowed for pending applications; there is no capacity precondition.
func RejectApplication(
	ctx context.Context,
	database ReviewStore,
	logger *zap.Logger,
	clock Clock,
	applicationID int64,
) (*model.Application, error) {
	logger.Debug("Rejecting application", zap.Int64("application_id", applicationID))

	applications, err := database.GetApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	idx := findApplicationIndex(applications, applicationID)
	if idx < 0 {
		return nil, ErrApplicationNotFound
	}
	app := &applications[idx]

	if app.Status != model.StatusPending {
		logger.Warn("Refusing to reject a decided application",
			zap.Int64("application_id", applicationID),
			zap.String("status", string(app.Status)))
		return nil, ErrInvalidState
	}

	now := clock()
	app.Status = model.StatusRejected
	app.StatusChangeDate = &now

	if err := database.SaveApplications(ctx, applications); err != nil {
		return nil, fmt.Errorf("failed to save applications: %w", err)
	}

	if err := storeNotification(ctx, database, clock, app, model.NotificationRejected); err != nil {
		recordJournal(ctx, database, logger, clock, "APPLICATION_REJECTED", "partial", map[string]any{
			"application_id": app.ID,
			"event_id":       app.EventID,
			"event_name":     app.EventName,
			"email":          app.Email,
			"error":          err.Error(),
		})
		return nil, fmt.Errorf("application rejected but notification not stored: %w", err)
	}

	logger.Info("Application rejected",
		zap.Int64("application_id", app.ID),
		zap.String("event_name", app.EventName),
		zap.String("email", app.Email))

	recordJournal(ctx, database, logger, clock, "APPLICATION_REJECTED", "success", map[string]any{
		"application_id": app.ID,
		"event_id":       app.EventID,
		"event_name":     app.EventName,
		"email":          app.Email,
	})

	return app, nil
}

// storeNotification appends the decision notification for the student.
// Notifications are a historical log: they are never updated or deleted, even
// if the event later disappears.
func storeNotification(ctx context.Context, database ReviewStore, clock Clock, app *model.Application, kind model.NotificationType) error {
	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch notifications: %w", err)
	}

	var message string
	if kind == model.NotificationApproved {
		message = fmt.Sprintf("Congratulations! You have been selected as a volunteer for %s.", app.EventName)
	} else {
		message = fmt.Sprintf("Your volunteer application for %s was not approved this time.", app.EventName)
	}

	notification := model.Notification{
		ID:           nextID(clock, notificationIDs(notifications)...),
		StudentEmail: app.Email,
		EventName:    app.EventName,
		Type:         kind,
		Message:      message,
		Timestamp:    clock(),
		Read:         false,
	}

	if err := database.SaveNotifications(ctx, append(notifications, notification)); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func findApplicationIndex(applications []model.Application, id int64) int {
	for i := range applications {
		if applications[i].ID == id {
			return i
		}
	}
	return -1
}
