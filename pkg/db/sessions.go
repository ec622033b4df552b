package db

import (
	"context"
	"time"
)

// AdminSession marks an active admin login. Its presence is the whole of the
// access model: one shared credential, one marker.
type AdminSession struct {
	Username  string    `json:"username"`
	LoginTime time.Time `json:"loginTime"`
}

// StudentSession marks the student whose portal was last opened
type StudentSession struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}

// GetAdminSession returns the active admin session, or nil if nobody is logged in
func (db *DB) GetAdminSession(ctx context.Context) (*AdminSession, error) {
	var session AdminSession
	found, err := db.getJSON(ctx, KeyAdminSession, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

// SetAdminSession stores the admin session marker
func (db *DB) SetAdminSession(ctx context.Context, session AdminSession) error {
	return db.putJSON(ctx, KeyAdminSession, session)
}

// ClearAdminSession removes the admin session marker
func (db *DB) ClearAdminSession(ctx context.Context) error {
	return db.store.Delete(ctx, KeyAdminSession)
}

// GetStudentSession returns the active student session, or nil if none
func (db *DB) GetStudentSession(ctx context.Context) (*StudentSession, error) {
	var session StudentSession
	found, err := db.getJSON(ctx, KeyStudentSession, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

// SetStudentSession stores the student session marker
func (db *DB) SetStudentSession(ctx context.Context, session StudentSession) error {
	return db.putJSON(ctx, KeyStudentSession, session)
}

// ClearStudentSession removes the student session marker
func (db *DB) ClearStudentSession(ctx context.Context) error {
	return db.store.Delete(ctx, KeyStudentSession)
}
