package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/luxtime/luxtime-backend/api/routes"
	product "github.com/luxtime/luxtime-backend/internal/products"
	"github.com/luxtime/luxtime-backend/pkg/config"
	"github.com/luxtime/luxtime-backend/pkg/db"
	"github.com/luxtime/luxtime-backend/pkg/instance"
	"github.com/luxtime/luxtime-backend/pkg/logger"
	"github.com/luxtime/luxtime-backend/pkg/migrate"
	"github.com/luxtime/luxtime-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       cfg.App.LogLevel,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		dbClient *db.Client
		dbP      db.Pinger
	)
	if cfg.NeedsSQL() {
		dbClient, err = db.New(ctx, cfg.DB, cfg.FeatureFlags, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()
		dbP = dbClient

		if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
			logg.Error(ctx, "failed to run dev migrations", err)
			os.Exit(1)
		}
		if err := seedDevCatalog(ctx, cfg, dbClient, logg); err != nil {
			logg.Error(ctx, "failed to seed dev catalog", err)
			os.Exit(1)
		}
	}

	var (
		redisClient *redis.Client
		redisP      redis.Pinger
	)
	if cfg.NeedsRedis() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		redisP = redisClient
	}

	cartRepo, err := buildCartRepository(cfg.Cart, dbClient, redisClient, logg)
	if err != nil {
		logg.Error(ctx, "failed to build cart repository", err)
		os.Exit(1)
	}

	cartMetrics, metricsHandler := buildMetrics(cfg.App.MetricsEnabled)

	registry, err := buildRegistry(cfg.Cart, cartRepo, cartMetrics, logg)
	if err != nil {
		logg.Error(ctx, "failed to build cart registry", err)
		os.Exit(1)
	}

	catalog, err := buildCatalog(cfg.Catalog, dbClient)
	if err != nil {
		logg.Error(ctx, "failed to build catalog", err)
		os.Exit(1)
	}
	productService, err := product.NewService(catalog)
	if err != nil {
		logg.Error(ctx, "failed to create product service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":          cfg.App.Env,
		"addr":         addr,
		"instance":     instance.GetID(),
		"cart_storage": cfg.Cart.StorageDriver(),
		"catalog":      cfg.Catalog.Source,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, dbP, redisP, registry, productService, metricsHandler),
		ReadHeaderTimeout: cfg.App.HTTPReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	logg.Info(ctx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error(shutdownCtx, "api server forced to shutdown", err)
	}
}
