package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/internal/config"
	"github.com/campuscrew/volunteerhub/pkg/core/services"
	"github.com/campuscrew/volunteerhub/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database *db.DB
	Logger   *zap.Logger
	Clock    services.Clock
	Ctx      context.Context
}
