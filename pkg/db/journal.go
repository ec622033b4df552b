package db

import (
	"context"
	"time"
)

// JournalEntry is one record in the append-only operation journal. The
// journal is the durable audit trail of every lifecycle and event-management
// operation, kept separate from the operator-facing logs.
type JournalEntry struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Outcome   string         `json:"outcome"` // "success", "failure" or "partial"
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// GetJournalEntries retrieves the full journal in append order
func (db *DB) GetJournalEntries(ctx context.Context) ([]JournalEntry, error) {
	var entries []JournalEntry
	if _, err := db.getJSON(ctx, KeyJournal, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AppendJournalEntry appends one entry to the operation journal
func (db *DB) AppendJournalEntry(ctx context.Context, entry JournalEntry) error {
	entries, err := db.GetJournalEntries(ctx)
	if err != nil {
		return err
	}
	return db.putJSON(ctx, KeyJournal, append(entries, entry))
}
