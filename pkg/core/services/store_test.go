package services

import (
	"context"
	"time"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
	"github.com/campuscrew/volunteerhub/pkg/db"
)

// mockStore implements every service store interface for testing
type mockStore struct {
	events        []model.Event
	applications  []model.Application
	notifications []model.Notification
	journal       []db.JournalEntry
	adminSession  *db.AdminSession
	studentSess   *db.StudentSession
	initialized   bool

	getEventsErr         error
	saveEventsErr        error
	getApplicationsErr   error
	saveApplicationsErr  error
	saveNotificationsErr error
	appendJournalErr     error
}

func (m *mockStore) GetEvents(ctx context.Context) ([]model.Event, error) {
	if m.getEventsErr != nil {
		return nil, m.getEventsErr
	}
	return m.events, nil
}

func (m *mockStore) SaveEvents(ctx context.Context, events []model.Event) error {
	if m.saveEventsErr != nil {
		return m.saveEventsErr
	}
	m.events = events
	return nil
}

func (m *mockStore) GetApplications(ctx context.Context) ([]model.Application, error) {
	if m.getApplicationsErr != nil {
		return nil, m.getApplicationsErr
	}
	return m.applications, nil
}

func (m *mockStore) SaveApplications(ctx context.Context, applications []model.Application) error {
	if m.saveApplicationsErr != nil {
		return m.saveApplicationsErr
	}
	m.applications = applications
	return nil
}

func (m *mockStore) GetNotifications(ctx context.Context) ([]model.Notification, error) {
	return m.notifications, nil
}

func (m *mockStore) SaveNotifications(ctx context.Context, notifications []model.Notification) error {
	if m.saveNotificationsErr != nil {
		return m.saveNotificationsErr
	}
	m.notifications = notifications
	return nil
}

func (m *mockStore) AppendJournalEntry(ctx context.Context, entry db.JournalEntry) error {
	if m.appendJournalErr != nil {
		return m.appendJournalErr
	}
	m.journal = append(m.journal, entry)
	return nil
}

func (m *mockStore) GetJournalEntries(ctx context.Context) ([]db.JournalEntry, error) {
	return m.journal, nil
}

func (m *mockStore) GetAdminSession(ctx context.Context) (*db.AdminSession, error) {
	return m.adminSession, nil
}

func (m *mockStore) SetAdminSession(ctx context.Context, session db.AdminSession) error {
	m.adminSession = &session
	return nil
}

func (m *mockStore) ClearAdminSession(ctx context.Context) error {
	m.adminSession = nil
	return nil
}

func (m *mockStore) SetStudentSession(ctx context.Context, session db.StudentSession) error {
	m.studentSess = &session
	return nil
}

func (m *mockStore) IsInitialized(ctx context.Context) (bool, error) {
	return m.initialized, nil
}

func (m *mockStore) MarkInitialized(ctx context.Context) error {
	m.initialized = true
	return nil
}

// fixedClock returns a Clock pinned to the given time
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// journalActions extracts the action names in append order
func journalActions(entries []db.JournalEntry) []string {
	actions := make([]string, 0, len(entries))
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	return actions
}
