package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
	"github.com/campuscrew/volunteerhub/pkg/kvstore"
)

func newTestDB() (*DB, *kvstore.Memory) {
	store := kvstore.NewMemory()
	return NewDB(store), store
}

func TestEvents_RoundTrip(t *testing.T) {
	database, store := newTestDB()
	ctx := context.Background()

	// Missing key reads as an empty collection
	events, err := database.GetEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	in := []model.Event{
		{ID: 1, Name: "Tech Fest", Date: "2025-03-15", Time: "09:00", Category: "Technical", VolunteersNeeded: 20, IsUpcoming: true},
	}
	require.NoError(t, database.SaveEvents(ctx, in))

	out, err := database.GetEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// Stored under the expected key with the expected field names
	raw, err := store.Get(ctx, KeyEvents)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"volunteersNeeded":20`)
	assert.Contains(t, string(raw), `"isUpcoming":true`)
}

func TestApplications_RoundTrip(t *testing.T) {
	database, store := newTestDB()
	ctx := context.Background()

	decided := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	in := []model.Application{
		{
			ID: 1001, EventID: 1, EventName: "Tech Fest",
			Name: "John Doe", RollNo: "CS001", Department: "CS",
			Email: "john.doe@college.edu", Skills: "Web", Availability: "Full Day",
			Motivation: "Helping out", Status: model.StatusApproved,
			AppliedDate: decided.Add(-24 * time.Hour), StatusChangeDate: &decided,
		},
	}
	require.NoError(t, database.SaveApplications(ctx, in))

	out, err := database.GetApplications(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].Email, out[0].Email)
	require.NotNil(t, out[0].StatusChangeDate)
	assert.True(t, decided.Equal(*out[0].StatusChangeDate))

	raw, err := store.Get(ctx, KeyApplications)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"eventId":1`)
	assert.Contains(t, string(raw), `"rollNo":"CS001"`)
}

func TestSaveNil_StoresEmptyArray(t *testing.T) {
	database, store := newTestDB()
	ctx := context.Background()

	require.NoError(t, database.SaveApplications(ctx, nil))

	raw, err := store.Get(ctx, KeyApplications)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestNotifications_RoundTrip(t *testing.T) {
	database, _ := newTestDB()
	ctx := context.Background()

	in := []model.Notification{
		{ID: 2001, StudentEmail: "jane.smith@college.edu", EventName: "Cultural Night", Type: model.NotificationApproved, Message: "hi", Timestamp: time.Now().UTC(), Read: false},
	}
	require.NoError(t, database.SaveNotifications(ctx, in))

	out, err := database.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, model.NotificationApproved, out[0].Type)
	assert.False(t, out[0].Read)
}

func TestInitializedMarker(t *testing.T) {
	database, _ := newTestDB()
	ctx := context.Background()

	initialized, err := database.IsInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, initialized)

	require.NoError(t, database.MarkInitialized(ctx))

	initialized, err = database.IsInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, initialized)
}

func TestAdminSession(t *testing.T) {
	database, _ := newTestDB()
	ctx := context.Background()

	session, err := database.GetAdminSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, database.SetAdminSession(ctx, AdminSession{Username: "admin", LoginTime: time.Now().UTC()}))

	session, err = database.GetAdminSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "admin", session.Username)

	require.NoError(t, database.ClearAdminSession(ctx))

	session, err = database.GetAdminSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestStudentSession(t *testing.T) {
	database, _ := newTestDB()
	ctx := context.Background()

	require.NoError(t, database.SetStudentSession(ctx, StudentSession{Email: "jane.smith@college.edu", Name: "Jane Smith", LoginTime: time.Now().UTC()}))

	session, err := database.GetStudentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "jane.smith@college.edu", session.Email)
}

func TestJournal_AppendsInOrder(t *testing.T) {
	database, _ := newTestDB()
	ctx := context.Background()

	require.NoError(t, database.AppendJournalEntry(ctx, JournalEntry{ID: "a", Action: "EVENT_CREATED", Outcome: "success"}))
	require.NoError(t, database.AppendJournalEntry(ctx, JournalEntry{ID: "b", Action: "APPLICATION_SUBMITTED", Outcome: "failure", Details: map[string]any{"error": "event not found"}}))

	entries, err := database.GetJournalEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
	assert.Equal(t, "event not found", entries[1].Details["error"])
}
