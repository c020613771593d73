package migrate

import (
	"context"
	"fmt"

	"github.com/luxtime/luxtime-backend/pkg/config"
	"github.com/luxtime/luxtime-backend/pkg/db"
	"github.com/luxtime/luxtime-backend/pkg/logger"
)

// MaybeRunDev brings the schema up to date in dev when LUXTIME_AUTO_MIGRATE is
// set. Sqlite connections get the embedded schema, Postgres gets goose.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}
	if client == nil {
		return fmt.Errorf("auto-migrate enabled without a database client")
	}
	sqlDB, err := client.SQL()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	if cfg.FeatureFlags.UseSQLite {
		if logg != nil {
			logg.Info(logg.WithField(ctx, "sqlite_path", cfg.FeatureFlags.SQLitePath), "migrate.sqlite_schema")
		}
		return ApplySQLiteSchema(ctx, sqlDB)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "dir", DefaultDir), "migrate.goose_up")
	}
	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	return nil
}
