package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuscrew/volunteerhub/pkg/db"
)

// AuthStore defines the database operations needed for admin sessions
type AuthStore interface {
	GetAdminSession(ctx context.Context) (*db.AdminSession, error)
	SetAdminSession(ctx context.Context, session db.AdminSession) error
	ClearAdminSession(ctx context.Context) error
}

// Login checks the supplied credentials against the configured admin account
// and records a session on success
func Login(ctx context.Context, database AuthStore, logger *zap.Logger, clock Clock, adminUsername, adminPasswordHash, username, password string) (*db.AdminSession, error) {
	logger.Debug("Attempting admin login", zap.String("username", username))

	if username != adminUsername {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adminPasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := db.AdminSession{
		Username:  username,
		LoginTime: clock(),
	}
	if err := database.SetAdminSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	logger.Info("Admin logged in", zap.String("username", username))
	return &session, nil
}

// Logout clears any stored admin session. Logging out when no session exists
// is not an error.
func Logout(ctx context.Context, database AuthStore, logger *zap.Logger) error {
	if err := database.ClearAdminSession(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.Info("Admin logged out")
	return nil
}

// RequireAdmin returns the current admin session, or ErrNotAuthenticated if
// nobody is logged in
func RequireAdmin(ctx context.Context, database AuthStore) (*db.AdminSession, error) {
	session, err := database.GetAdminSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	if session == nil || strings.TrimSpace(session.Username) == "" {
		return nil, ErrNotAuthenticated
	}
	return session, nil
}

// HashPassword produces a bcrypt hash suitable for the admin passwordHash
// config field
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
