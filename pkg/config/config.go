package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Redis    RedisConfig
	DB       DBConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CARTENGINE_APP_ENV" required:"true"`
	Port         string `envconfig:"CARTENGINE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CARTENGINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CARTENGINE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects and tunes the durable snapshot backend.
type StorageConfig struct {
	Backend  string `envconfig:"CARTENGINE_STORAGE_BACKEND" default:"file"`
	FilePath string `envconfig:"CARTENGINE_STORAGE_FILE_PATH" default:"cart.json"`
	// Owner scopes the persisted snapshot key so several carts can share one
	// redis instance or snapshot table.
	Owner string `envconfig:"CARTENGINE_STORAGE_OWNER" default:"default"`
}

func (s StorageConfig) validate() error {
	switch s.Backend {
	case StorageBackendFile, StorageBackendRedis, StorageBackendSQL:
		return nil
	}
	return fmt.Errorf("unknown storage backend %q", s.Backend)
}

type RedisConfig struct {
	URL          string        `envconfig:"CARTENGINE_REDIS_URL"`
	Address      string        `envconfig:"CARTENGINE_REDIS_ADDR"`
	Password     string        `envconfig:"CARTENGINE_REDIS_PASSWORD"`
	DB           int           `envconfig:"CARTENGINE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CARTENGINE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CARTENGINE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CARTENGINE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CARTENGINE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CARTENGINE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	DSN    string `envconfig:"CARTENGINE_DB_DSN"`
	Driver string `envconfig:"CARTENGINE_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"CARTENGINE_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"CARTENGINE_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"CARTENGINE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CARTENGINE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// CheckoutConfig points at the external pricing authority.
type CheckoutConfig struct {
	PricingURL string        `envconfig:"CARTENGINE_CHECKOUT_PRICING_URL"`
	Timeout    time.Duration `envconfig:"CARTENGINE_CHECKOUT_TIMEOUT" default:"10s"`
}
