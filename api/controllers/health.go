package controllers

import (
	"context"
	"net/http"

	"github.com/streetcart/cart-engine/api/responses"
	"github.com/streetcart/cart-engine/pkg/config"
	pkgerrors "github.com/streetcart/cart-engine/pkg/errors"
	"github.com/streetcart/cart-engine/pkg/logger"
)

// ReadinessCheck names one dependency probe run by the ready endpoint.
type ReadinessCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CartEngine-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CartEngine-Env", cfg.App.Env)

		for _, check := range checks {
			if check.Ping == nil {
				continue
			}
			if err := check.Ping(r.Context()); err != nil {
				if logg != nil {
					ctx := logg.WithField(r.Context(), "dependency", check.Name)
					logg.Error(ctx, "health.ready_check_failed", err)
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dependency not ready"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
