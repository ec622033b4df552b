package db

import (
	"context"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// GetNotifications retrieves all student notification records in stored order
func (db *DB) GetNotifications(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	if _, err := db.getJSON(ctx, KeyNotifications, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// SaveNotifications replaces the stored notification collection
func (db *DB) SaveNotifications(ctx context.Context, notifications []model.Notification) error {
	if notifications == nil {
		notifications = []model.Notification{}
	}
	return db.putJSON(ctx, KeyNotifications, notifications)
}
