package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.Storage.Backend != StorageBackendFile {
		t.Fatalf("expected default file backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Owner != "default" {
		t.Fatalf("unexpected storage owner %q", cfg.Storage.Owner)
	}
	if got := cfg.Checkout.Timeout; got != 10*time.Second {
		t.Fatalf("expected checkout timeout 10s, got %v", got)
	}
	if cfg.Checkout.PricingURL != "http://localhost:9090/checkout/quote" {
		t.Fatalf("unexpected pricing url %q", cfg.Checkout.PricingURL)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_UnknownStorageBackend(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStorageBackend, "carrier-pigeon")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown storage backend to return an error")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "production"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvPricingURL, "http://localhost:9090/checkout/quote")
}
