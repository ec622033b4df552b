package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/pkg/db"
)

// JournalStore defines the journal operations services need
type JournalStore interface {
	AppendJournalEntry(ctx context.Context, entry db.JournalEntry) error
}

// ListJournalStore defines the database operations needed for reading the journal
type ListJournalStore interface {
	GetJournalEntries(ctx context.Context) ([]db.JournalEntry, error)
}

// recordJournal appends an operation journal entry. Journal failures are
// logged and swallowed: the journal is an audit trail, not a gate, and a
// completed operation must not be reported as failed because of it.
func recordJournal(
	ctx context.Context,
	store JournalStore,
	logger *zap.Logger,
	clock Clock,
	action string,
	outcome string,
	details map[string]any,
) {
	entry := db.JournalEntry{
		ID:        uuid.New().String(),
		Action:    action,
		Outcome:   outcome,
		Details:   details,
		Timestamp: clock(),
	}

	if err := store.AppendJournalEntry(ctx, entry); err != nil {
		logger.Warn("Failed to append journal entry",
			zap.String("action", action),
			zap.Error(err))
	}
}

// ListJournal returns the operation journal, newest entries last. A limit of
// zero or less returns everything.
func ListJournal(ctx context.Context, database ListJournalStore, logger *zap.Logger, limit int) ([]db.JournalEntry, error) {
	entries, err := database.GetJournalEntries(ctx)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded journal entries", zap.Int("count", len(entries)))

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}
