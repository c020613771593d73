package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luxtime/luxtime-backend/internal/cart"
	product "github.com/luxtime/luxtime-backend/internal/products"
	"github.com/luxtime/luxtime-backend/pkg/config"
	"github.com/luxtime/luxtime-backend/pkg/db"
	"github.com/luxtime/luxtime-backend/pkg/logger"
	"github.com/luxtime/luxtime-backend/pkg/metrics"
	"github.com/luxtime/luxtime-backend/pkg/redis"
)

// buildCartRepository picks the snapshot store named by cfg.Storage. The db
// and redis clients are only dereferenced by the drivers that need them.
func buildCartRepository(cfg config.CartConfig, dbClient *db.Client, redisClient *redis.Client, logg *logger.Logger) (cart.Repository, error) {
	switch cfg.StorageDriver() {
	case config.CartStorageMemory:
		return cart.NewMemoryRepository(), nil
	case config.CartStorageNoop:
		return cart.NoopRepository{}, nil
	case config.CartStorageRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("cart storage %q requires redis", cfg.Storage)
		}
		return cart.NewRedisRepository(redisClient, cfg.SnapshotTTL), nil
	case config.CartStorageSQL:
		if dbClient == nil {
			return nil, fmt.Errorf("cart storage %q requires a database", cfg.Storage)
		}
		return cart.NewSQLRepository(dbClient.DB()), nil
	case config.CartStorageTiered:
		if redisClient == nil || dbClient == nil {
			return nil, fmt.Errorf("cart storage %q requires redis and a database", cfg.Storage)
		}
		return cart.NewTieredRepository(
			cart.NewRedisRepository(redisClient, cfg.SnapshotTTL),
			cart.NewSQLRepository(dbClient.DB()),
			logg,
		), nil
	}
	return nil, fmt.Errorf("unsupported cart storage %q", cfg.Storage)
}

// buildCatalog serves the sample watches from memory unless the catalog is
// configured to come from the database.
func buildCatalog(cfg config.CatalogConfig, dbClient *db.Client) (product.Repository, error) {
	if !cfg.FromDB() {
		return product.NewMemoryRepository(product.SampleWatches()), nil
	}
	if dbClient == nil {
		return nil, fmt.Errorf("catalog source %q requires a database", cfg.Source)
	}
	return product.NewRepository(dbClient.DB()), nil
}

// seedDevCatalog loads the sample watches into a freshly migrated dev sqlite
// database so the db-backed catalog is usable out of the box.
func seedDevCatalog(ctx context.Context, cfg *config.Config, dbClient *db.Client, logg *logger.Logger) error {
	if dbClient == nil || !cfg.Catalog.FromDB() || !cfg.FeatureFlags.UseSQLite ||
		!cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}
	if err := product.SeedCatalog(ctx, dbClient, product.SampleWatches()); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	logg.Info(ctx, "sample catalog seeded")
	return nil
}

// buildMetrics returns the cart recorder and the /metrics handler. With
// metrics disabled the recorder drops everything and the handler is nil.
func buildMetrics(enabled bool) (*metrics.CartMetrics, http.Handler) {
	if !enabled {
		return metrics.NewCartMetrics(nil), nil
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return metrics.NewCartMetrics(reg), promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func buildRegistry(cfg config.CartConfig, repo cart.Repository, recorder *metrics.CartMetrics, logg *logger.Logger) (*cart.Registry, error) {
	pricing, err := cart.NewPricing(cfg.FreeShippingThreshold, cfg.ShippingFee, cfg.TaxRate)
	if err != nil {
		return nil, err
	}
	return cart.NewRegistry(cart.RegistryParams{
		KeyPrefix:  cfg.KeyPrefix,
		MaxEngines: cfg.MaxEngines,
		Repository: repo,
		Pricing:    pricing,
		Notifier: cart.Notifiers{
			cart.NewLogNotifier(logg),
			cart.NewMetricsNotifier(recorder),
		},
		Recorder:       recorder,
		Logger:         logg,
		PersistTimeout: cfg.PersistTimeout,
	})
}
