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

func validSubmitInput() SubmitInput {
	return SubmitInput{
		Name:         "John Doe",
		RollNo:       "CS001",
		Department:   "Computer Science",
		Email:        "john.doe@college.edu",
		Availability: "Full Day",
		Skills:       "Web development",
		Motivation:   "Want to help",
	}
}

func TestSubmitApplication_Success(t *testing.T) {
	store := &mockStore{
		events: []model.Event{
			{ID: 1, Name: "Tech Fest", Date: "2025-03-15", Time: "09:00", Category: "Technical", VolunteersNeeded: 2, IsUpcoming: true},
		},
	}
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	app, err := SubmitApplication(context.Background(), store, zap.NewNop(), fixedClock(now), 1, validSubmitInput())
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.Equal(t, model.StatusPending, app.Status)
	assert.Equal(t, int64(1), app.EventID)
	assert.Equal(t, "Tech Fest", app.EventName)
	assert.Equal(t, "john.doe@college.edu", app.Email)
	assert.Equal(t, now, app.AppliedDate)
	assert.Nil(t, app.StatusChangeDate)
	assert.Equal(t, now.UnixMilli(), app.ID)

	require.Len(t, store.applications, 1)
	assert.Equal(t, []string{"APPLICATION_SUBMITTED"}, journalActions(store.journal))
	assert.Equal(t, "success", store.journal[0].Outcome)
}

func TestSubmitApplication_EventNotFound(t *testing.T) {
	store := &mockStore{}

	_, err := SubmitApplication(context.Background(), store, zap.NewNop(), time.Now, 99, validSubmitInput())
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Empty(t, store.applications)

	// The failed attempt is still journalled
	require.Len(t, store.journal, 1)
	assert.Equal(t, "failure", store.journal[0].Outcome)
}

func TestSubmitApplication_EventFull(t *testing.T) {
	store := &mockStore{
		events: []model.Event{
			{ID: 1, Name: "Tech Fest", VolunteersNeeded: 2, IsUpcoming: true},
		},
		applications: []model.Application{
			{ID: 1001, EventID: 1, Email: "someone@college.edu", Status: model.StatusApproved},
			{ID: 1002, EventID: 1, Email: "another@college.edu", Status: model.StatusApproved},
		},
	}

	_, err := SubmitApplication(context.Background(), store, zap.NewNop(), time.Now, 1, validSubmitInput())
	assert.ErrorIs(t, err, ErrEventFull)
	assert.Len(t, store.applications, 2)
}

func TestSubmitApplication_DuplicateEmail(t *testing.T) {
	store := &mockStore{
		events: []model.Event{
			{ID: 1, Name: "Tech Fest", VolunteersNeeded: 10, IsUpcoming: true},
		},
		applications: []model.Application{
			// Different casing must still count as the same student
			{ID: 1001, EventID: 1, Email: "John.Doe@College.edu", Status: model.StatusRejected},
		},
	}

	_, err := SubmitApplication(context.Background(), store, zap.NewNop(), time.Now, 1, validSubmitInput())
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

func TestSubmitApplication_SameEmailDifferentEvent(t *testing.T) {
	store := &mockStore{
		events: []model.Event{
			{ID: 1, Name: "Tech Fest", VolunteersNeeded: 10, IsUpcoming: true},
			{ID: 2, Name: "Cultural Night", VolunteersNeeded: 10, IsUpcoming: true},
		},
		applications: []model.Application{
			{ID: 1001, EventID: 2, Email: "john.doe@college.edu", Status: model.StatusPending},
		},
	}

	app, err := SubmitApplication(context.Background(), store, zap.NewNop(), time.Now, 1, validSubmitInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), app.EventID)
	assert.Len(t, store.applications, 2)
}

func TestSubmitApplication_ValidationFailure(t *testing.T) {
	store := &mockStore{
		events: []model.Event{{ID: 1, Name: "Tech Fest", VolunteersNeeded: 10}},
	}

	input := validSubmitInput()
	input.Email = "not-an-email"

	_, err := SubmitApplication(context.Background(), store, zap.NewNop(), time.Now, 1, input)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.applications)
	assert.Empty(t, store.journal)
}

func TestSubmitApplication_EmailNormalized(t *testing.T) {
	store := &mockStore{
		events: []model.Event{{ID: 1, Name: "Tech Fest", VolunteersNeeded: 10}},
	}

	input := validSubmitInput()
	input.Email = "  John.Doe@College.EDU "

	app, err := SubmitApplication(context.Background(), store, zap.NewNop(), time.Now, 1, input)
	require.NoError(t, err)
	assert.Equal(t, "john.doe@college.edu", app.Email)

	// The padded form is the same student; a second submission is a duplicate
	_, err = SubmitApplication(context.Background(), store, zap.NewNop(), time.Now, 1, input)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

func TestSubmitApplication_OptionalFieldsDefaulted(t *testing.T) {
	store := &mockStore{
		events: []model.Event{{ID: 1, Name: "Tech Fest", VolunteersNeeded: 10}},
	}

	input := validSubmitInput()
	input.Skills = ""
	input.Motivation = "   "

	app, err := SubmitApplication(context.Background(), store, zap.NewNop(), time.Now, 1, input)
	require.NoError(t, err)
	assert.Equal(t, "Not specified", app.Skills)
	assert.Equal(t, "Not specified", app.Motivation)
}

func TestSubmitApplication_IDBumpedPastExisting(t *testing.T) {
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	existing := now.UnixMilli() + 100

	store := &mockStore{
		events: []model.Event{{ID: 1, Name: "Tech Fest", VolunteersNeeded: 10}},
		applications: []model.Application{
			{ID: existing, EventID: 1, Email: "other@college.edu", Status: model.StatusPending},
		},
	}

	app, err := SubmitApplication(context.Background(), store, zap.NewNop(), fixedClock(now), 1, validSubmitInput())
	require.NoError(t, err)
	assert.Equal(t, existing+1, app.ID)
}
