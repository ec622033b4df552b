package db

import (
	"context"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// GetEvents retrieves all event records in stored order
func (db *DB) GetEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if _, err := db.getJSON(ctx, KeyEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SaveEvents replaces the stored event collection
func (db *DB) SaveEvents(ctx context.Context, events []model.Event) error {
	if events == nil {
		events = []model.Event{}
	}
	return db.putJSON(ctx, KeyEvents, events)
}
