package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

func reviewFixtures() *mockStore {
	return &mockStore{
		applications: []model.Application{
			{ID: 1001, EventID: 1, EventName: "Tech Fest", Email: "a@college.edu", Status: model.StatusPending},
			{ID: 1002, EventID: 2, EventName: "Cultural Night", Email: "b@college.edu", Status: model.StatusApproved},
			{ID: 1003, EventID: 3, EventName: "Career Fair", Email: "c@college.edu", Status: model.StatusApproved},
			{ID: 1004, EventID: 1, EventName: "Tech Fest", Email: "d@college.edu", Status: model.StatusRejected},
		},
	}
}

func TestListApplications_All(t *testing.T) {
	store := reviewFixtures()

	applications, err := ListApplications(context.Background(), store, zap.NewNop(), "")
	require.NoError(t, err)
	assert.Len(t, applications, 4)
}

func TestListApplications_FilterByStatus(t *testing.T) {
	store := reviewFixtures()

	approved, err := ListApplications(context.Background(), store, zap.NewNop(), model.StatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 2)
	assert.Equal(t, int64(1002), approved[0].ID)
	assert.Equal(t, int64(1003), approved[1].ID)
}

func TestListApplications_UnknownStatus(t *testing.T) {
	store := reviewFixtures()

	_, err := ListApplications(context.Background(), store, zap.NewNop(), "waitlisted")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetApplication(t *testing.T) {
	store := reviewFixtures()

	app, err := GetApplication(context.Background(), store, zap.NewNop(), 1002)
	require.NoError(t, err)
	assert.Equal(t, "Cultural Night", app.EventName)

	_, err = GetApplication(context.Background(), store, zap.NewNop(), 9999)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestGetDashboardStats(t *testing.T) {
	store := reviewFixtures()

	stats, err := GetDashboardStats(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Approved)
	assert.Equal(t, 1, stats.Rejected)
}
