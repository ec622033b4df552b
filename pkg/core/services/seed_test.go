package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

func TestEnsureSeedData_FreshStore(t *testing.T) {
	store := &mockStore{}
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	seeded, err := EnsureSeedData(context.Background(), store, zap.NewNop(), fixedClock(now))
	require.NoError(t, err)
	assert.True(t, seeded)

	require.Len(t, store.events, 6)
	assert.Equal(t, int64(1), store.events[0].ID)
	assert.Equal(t, "Annual Tech Fest 2025", store.events[0].Name)
	assert.Equal(t, int64(6), store.events[5].ID)

	require.Len(t, store.applications, 3)
	assert.Equal(t, int64(1001), store.applications[0].ID)
	assert.Equal(t, model.StatusPending, store.applications[0].Status)
	assert.Equal(t, now.Add(-24*time.Hour), store.applications[0].AppliedDate)
	assert.Equal(t, model.StatusApproved, store.applications[1].Status)
	require.NotNil(t, store.applications[1].StatusChangeDate)

	require.Len(t, store.notifications, 2)
	assert.Equal(t, int64(2001), store.notifications[0].ID)
	assert.Equal(t, "jane.smith@college.edu", store.notifications[0].StudentEmail)

	assert.True(t, store.initialized)
}

func TestEnsureSeedData_RunsOnce(t *testing.T) {
	store := &mockStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	seeded, err := EnsureSeedData(ctx, store, logger, time.Now)
	require.NoError(t, err)
	assert.True(t, seeded)

	// Wipe applications; a second run must not resurrect them
	store.applications = nil

	seeded, err = EnsureSeedData(ctx, store, logger, time.Now)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Empty(t, store.applications)
}

func TestEnsureSeedData_ReseedsEmptyEvents(t *testing.T) {
	// Events come back when all are deleted, even after initialization
	store := &mockStore{initialized: true}

	seeded, err := EnsureSeedData(context.Background(), store, zap.NewNop(), time.Now)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, store.events, 6)
	assert.Empty(t, store.applications)
}

func TestEnsureSeedData_RespectsExistingData(t *testing.T) {
	store := &mockStore{
		events: []model.Event{{ID: 42, Name: "Custom Event", VolunteersNeeded: 3}},
		applications: []model.Application{
			{ID: 7, EventID: 42, Email: "x@college.edu", Status: model.StatusPending},
		},
	}

	seeded, err := EnsureSeedData(context.Background(), store, zap.NewNop(), time.Now)
	require.NoError(t, err)
	assert.True(t, seeded)

	// Existing collections are untouched; only the marker is written
	assert.Len(t, store.events, 1)
	assert.Len(t, store.applications, 1)
	assert.True(t, store.initialized)
}
