package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/streetcart/cart-engine/api"
	"github.com/streetcart/cart-engine/api/controllers"
	"github.com/streetcart/cart-engine/api/routes"
	"github.com/streetcart/cart-engine/internal/cart"
	"github.com/streetcart/cart-engine/internal/checkout"
	"github.com/streetcart/cart-engine/internal/storage"
	"github.com/streetcart/cart-engine/pkg/config"
	"github.com/streetcart/cart-engine/pkg/db"
	"github.com/streetcart/cart-engine/pkg/logger"
	"github.com/streetcart/cart-engine/pkg/metrics"
	"github.com/streetcart/cart-engine/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "cartd"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "cartd",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	backend, readiness, closeBackend, err := buildStorage(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap storage backend", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeBackend(); err != nil {
			logg.Error(context.Background(), "error closing storage backend", err)
		}
	}()

	synchronizer, err := storage.NewSynchronizer(backend, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create snapshot synchronizer", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	cartMetrics := metrics.NewCartMetrics(registry)

	store := cart.NewStore(cart.StoreOptions{
		Seed:    synchronizer.Seed(context.Background()),
		Sink:    synchronizer,
		Logger:  logg,
		Metrics: cartMetrics,
	})

	pricingClient, err := checkout.NewClient(cfg.Checkout)
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing client", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(store, pricingClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Storage.Backend,
	})
	logg.Info(ctx, "starting cart engine")

	handler := routes.NewRouter(cfg, logg, store, checkoutService, registry, readiness...)
	server := api.NewServer(addr, handler, logg)

	if err := server.Run(context.Background()); err != nil {
		logg.Error(ctx, "cart engine stopped unexpectedly", err)
		os.Exit(1)
	}
}

// buildStorage selects the snapshot backend from configuration and returns it
// with its readiness probes and a teardown func.
func buildStorage(ctx context.Context, cfg *config.Config, logg *logger.Logger) (storage.Storage, []controllers.ReadinessCheck, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Backend {
	case config.StorageBackendFile:
		backend, err := storage.NewFileStorage(cfg.Storage.FilePath)
		if err != nil {
			return nil, nil, noop, err
		}
		return backend, nil, noop, nil

	case config.StorageBackendRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, noop, err
		}
		backend, err := storage.NewRedisStorage(client, client.SnapshotKey(cfg.Storage.Owner))
		if err != nil {
			return nil, nil, client.Close, err
		}
		checks := []controllers.ReadinessCheck{{Name: "redis", Ping: client.Ping}}
		return backend, checks, client.Close, nil

	case config.StorageBackendSQL:
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, nil, noop, err
		}
		backend, err := storage.NewGormStorage(client.DB(), cfg.Storage.Owner)
		if err != nil {
			return nil, nil, client.Close, err
		}
		checks := []controllers.ReadinessCheck{{Name: "database", Ping: client.Ping}}
		return backend, checks, client.Close, nil
	}

	return nil, nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
