package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/pkg/core/capacity"
	"github.com/campuscrew/volunteerhub/pkg/core/model"
	"github.com/campuscrew/volunteerhub/pkg/db"
)

// PortalStore defines the database operations needed for the student portal
type PortalStore interface {
	GetApplications(ctx context.Context) ([]model.Application, error)
	GetNotifications(ctx context.Context) ([]model.Notification, error)
	SaveNotifications(ctx context.Context, notifications []model.Notification) error
	SetStudentSession(ctx context.Context, session db.StudentSession) error
}

// StudentPortalResult is the student's view of their own data
type StudentPortalResult struct {
	Name          string
	Email         string
	Stats         capacity.StudentStats
	Applications  []model.Application
	Notifications []model.Notification
	UnreadCount   int
}

// StudentPortal assembles the portal view for one student, identified by
// email. Students log in by email alone: having at least one application is
// the credential. Viewing the portal marks every listed notification as read;
// there is no per-item receipt.
func StudentPortal(
	ctx context.Context,
	database PortalStore,
	logger *zap.Logger,
	clock Clock,
	email string,
) (*StudentPortalResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	applications, err := database.GetApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	var mine []model.Application
	for _, app := range applications {
		if strings.ToLower(app.Email) == email {
			mine = append(mine, app)
		}
	}

	if len(mine) == 0 {
		return nil, ErrStudentNotFound
	}

	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	var theirs []model.Notification
	unread := 0
	changed := false
	for i := range notifications {
		if strings.ToLower(notifications[i].StudentEmail) != email {
			continue
		}
		if !notifications[i].Read {
			unread++
			notifications[i].Read = true
			changed = true
		}
		theirs = append(theirs, notifications[i])
	}

	// Newest first for display
	sort.Slice(theirs, func(i, j int) bool {
		return theirs[i].Timestamp.After(theirs[j].Timestamp)
	})

	if changed {
		if err := database.SaveNotifications(ctx, notifications); err != nil {
			return nil, fmt.Errorf("failed to mark notifications read: %w", err)
		}
	}

	session := db.StudentSession{
		Email:     email,
		Name:      mine[0].Name,
		LoginTime: clock(),
	}
	if err := database.SetStudentSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store student session: %w", err)
	}

	logger.Info("Student portal opened",
		zap.String("email", email),
		zap.Int("applications", len(mine)),
		zap.Int("unread_notifications", unread))

	return &StudentPortalResult{
		Name:          mine[0].Name,
		Email:         email,
		Stats:         capacity.ComputeStudentStats(email, applications),
		Applications:  mine,
		Notifications: theirs,
		UnreadCount:   unread,
	}, nil
}
