package config

// EnvPrefix is passed to envconfig; individual fields carry full names in
// their tags so the prefix only matters for untagged fields.
const EnvPrefix = "CARTENGINE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	StorageBackendFile  = "file"
	StorageBackendRedis = "redis"
	StorageBackendSQL   = "sql"
)

// Environment variable names shared with tests.
const (
	EnvAppEnv         = "CARTENGINE_APP_ENV"
	EnvPort           = "CARTENGINE_APP_PORT"
	EnvLogLevel       = "CARTENGINE_LOG_LEVEL"
	EnvStorageBackend = "CARTENGINE_STORAGE_BACKEND"
	EnvStorageFile    = "CARTENGINE_STORAGE_FILE_PATH"
	EnvStorageOwner   = "CARTENGINE_STORAGE_OWNER"
	EnvRedisURL       = "CARTENGINE_REDIS_URL"
	EnvDBDSN          = "CARTENGINE_DB_DSN"
	EnvDBDriver       = "CARTENGINE_DB_DRIVER"
	EnvPricingURL     = "CARTENGINE_CHECKOUT_PRICING_URL"
)
