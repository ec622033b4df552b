package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campuscrew/volunteerhub/cmd/cli/commands"
	"github.com/campuscrew/volunteerhub/internal/config"
	"github.com/campuscrew/volunteerhub/pkg/core/services"
	"github.com/campuscrew/volunteerhub/pkg/db"
	"github.com/campuscrew/volunteerhub/pkg/kvstore"
	"github.com/campuscrew/volunteerhub/pkg/utils/logging"
)

var (
	verbose bool
	app     *commands.AppContext
	cleanup func()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "volunteerhub",
		Short: "VolunteerHub CLI - Coordinate campus volunteer events",
		Long:  `A CLI tool for managing campus volunteer events, student applications, and approval decisions.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// hashPassword exists to bootstrap the config file, so it must
			// run without one
			if cmd.Name() == "hashPassword" {
				return nil
			}
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if cleanup != nil {
				cleanup()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug output")

	app = &commands.AppContext{}

	rootCmd.AddCommand(commands.ListEventsCmd(app))
	rootCmd.AddCommand(commands.AddEventCmd(app))
	rootCmd.AddCommand(commands.AddEventSeriesCmd(app))
	rootCmd.AddCommand(commands.UpdateEventCmd(app))
	rootCmd.AddCommand(commands.ToggleEventCmd(app))
	rootCmd.AddCommand(commands.DeleteEventCmd(app))
	rootCmd.AddCommand(commands.ApplyCmd(app))
	rootCmd.AddCommand(commands.ListApplicationsCmd(app))
	rootCmd.AddCommand(commands.ViewApplicationCmd(app))
	rootCmd.AddCommand(commands.ApproveCmd(app))
	rootCmd.AddCommand(commands.RejectCmd(app))
	rootCmd.AddCommand(commands.StatsCmd(app))
	rootCmd.AddCommand(commands.PortalCmd(app))
	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.HashPasswordCmd(app))
	rootCmd.AddCommand(commands.JournalCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, storage backend, and database
func initApp() error {
	var err error
	app.Ctx = context.Background()
	app.Clock = time.Now

	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger, err = logging.InitLogger(app.Cfg.LogFile, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Configuration loaded", zap.String("backend", app.Cfg.Storage.Backend))

	store, err := openStore(app.Ctx, app.Cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", app.Cfg.Storage.Backend, err)
	}
	app.Database = db.NewDB(store)

	if _, err := services.EnsureSeedData(app.Ctx, app.Database, app.Logger, app.Clock); err != nil {
		return fmt.Errorf("failed to seed data: %w", err)
	}

	return nil
}

// openStore builds the configured persistence backend. cleanup is set for
// backends holding connections.
func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return kvstore.NewMemory(), nil

	case "file":
		return kvstore.NewFile(cfg.Storage.FilePath)

	case "postgres":
		pg, err := kvstore.NewPostgres(ctx, cfg.Storage.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := pg.RunMigrations(ctx); err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		cleanup = pg.Close
		return pg, nil

	case "redis":
		rd, err := kvstore.NewRedis(ctx, cfg.Storage.RedisAddr, cfg.Storage.RedisPrefix)
		if err != nil {
			return nil, err
		}
		cleanup = func() { rd.Close() }
		return rd, nil

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Storage.Backend)
	}
}
