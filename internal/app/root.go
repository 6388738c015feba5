// Package app implements the netbeans-server commands.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/netbeans/netbeans-server/internal/infrastructure/db/sqlstore"
	"github.com/netbeans/netbeans-server/internal/pkg/config"
	"github.com/netbeans/netbeans-server/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "netbeans-server",
	Short: "Backend for the Netbeans recruitment site",
	Long: `netbeans-server serves the back-office API (auth, users, job postings)
and the public contact, consultation and job application forms.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// bootstrap loads configuration and initialises the process logger.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
		File: logger.FileOptions{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		},
	})
	return cfg, log, nil
}

// openStore connects to the relational store and migrates it when enabled.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:       cfg.DB.Driver,
		DSN:          cfg.DB.ConnString(),
		MaxOpenConns: 20,
		MaxIdleConns: 5,
	}, log)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := sqlstore.Migrate(db); err != nil {
			_ = sqlstore.Close(db)
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	log.Info().Str("driver", cfg.DB.Driver).Msg("database ready")
	return db, nil
}
