package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campuscrew/volunteerhub/pkg/kvstore"
)

// Store keys. These fix the persisted layout and must not change: a data file
// written by one backend is importable by another.
const (
	KeyEvents         = "events"
	KeyApplications   = "volunteerApplications"
	KeyNotifications  = "studentNotifications"
	KeyAdminSession   = "currentUser"
	KeyStudentSession = "currentStudent"
	KeyInitialized    = "dataInitialized"
	KeyJournal        = "operationJournal"
)

// DB provides typed collection access over a key-value store. Collections are
// whole-document reads and writes; the CLI is a single logical actor, so
// read-modify-write without locking is the intended model.
type DB struct {
	store kvstore.Store
}

// NewDB creates a new database layer over the given store
func NewDB(store kvstore.Store) *DB {
	return &DB{store: store}
}

// getJSON unmarshals the value under key into out. A missing key leaves out
// untouched and returns false.
func (db *DB) getJSON(ctx context.Context, key string, out any) (bool, error) {
	data, err := db.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %q: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return true, nil
}

func (db *DB) putJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	if err := db.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// IsInitialized reports whether the one-time seed marker has been set
func (db *DB) IsInitialized(ctx context.Context) (bool, error) {
	var initialized bool
	if _, err := db.getJSON(ctx, KeyInitialized, &initialized); err != nil {
		return false, err
	}
	return initialized, nil
}

// MarkInitialized sets the one-time seed marker
func (db *DB) MarkInitialized(ctx context.Context) error {
	return db.putJSON(ctx, KeyInitialized, true)
}
