package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/pkg/core/capacity"
	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// ApplicationReadStore defines the read operations needed for browsing applications
type ApplicationReadStore interface {
	GetApplications(ctx context.Context) ([]model.Application, error)
}

// ListApplications returns applications in stored order, optionally filtered
// by status. An empty filter returns everything.
func ListApplications(
	ctx context.Context,
	database ApplicationReadStore,
	logger *zap.Logger,
	status model.ApplicationStatus,
) ([]model.Application, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	applications, err := database.GetApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	if status == "" {
		return applications, nil
	}

	filtered := make([]model.Application, 0, len(applications))
	for _, app := range applications {
		if app.Status == status {
			filtered = append(filtered, app)
		}
	}

	logger.Debug("Listed applications",
		zap.String("status", string(status)),
		zap.Int("count", len(filtered)))

	return filtered, nil
}

// GetApplication returns a single application by id
func GetApplication(
	ctx context.Context,
	database ApplicationReadStore,
	logger *zap.Logger,
	applicationID int64,
) (*model.Application, error) {
	applications, err := database.GetApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	idx := findApplicationIndex(applications, applicationID)
	if idx < 0 {
		return nil, ErrApplicationNotFound
	}

	app := applications[idx]
	return &app, nil
}

// GetDashboardStats returns the admin dashboard counters
func GetDashboardStats(ctx context.Context, database ApplicationReadStore, logger *zap.Logger) (capacity.DashboardStats, error) {
	applications, err := database.GetApplications(ctx)
	if err != nil {
		return capacity.DashboardStats{}, fmt.Errorf("failed to fetch applications: %w", err)
	}
	return capacity.ComputeDashboardStats(applications), nil
}
