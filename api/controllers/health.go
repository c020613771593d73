package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/luxtime/luxtime-backend/api/responses"
	"github.com/luxtime/luxtime-backend/pkg/config"
	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
	"github.com/luxtime/luxtime-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// Pinger is satisfied by every store the service can depend on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck names one dependency probed by HealthReady.
type ReadinessCheck struct {
	Name   string
	Pinger Pinger
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-LuxTime-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every configured dependency. Checks with a nil Pinger are
// reported as skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-LuxTime-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		statuses := make(map[string]string, len(checks))
		failed := map[string]string{}
		for _, check := range checks {
			if check.Pinger == nil {
				statuses[check.Name] = "skipped"
				continue
			}
			if err := check.Pinger.Ping(ctx); err != nil {
				statuses[check.Name] = "unavailable"
				failed[check.Name] = err.Error()
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "dependency", check.Name), "health.dependency_unavailable")
				}
				continue
			}
			statuses[check.Name] = "ok"
		}

		if len(failed) > 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "dependencies unavailable").WithDetails(failed))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": statuses})
	}
}
