package db

import (
	"context"

	"github.com/campuscrew/volunteerhub/pkg/core/model"
)

// GetApplications retrieves all volunteer application records in stored order
func (db *DB) GetApplications(ctx context.Context) ([]model.Application, error) {
	var applications []model.Application
	if _, err := db.getJSON(ctx, KeyApplications, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// SaveApplications replaces the stored application collection
func (db *DB) SaveApplications(ctx context.Context, applications []model.Application) error {
	if applications == nil {
		applications = []model.Application{}
	}
	return db.putJSON(ctx, KeyApplications, applications)
}
