package config

const EnvPrefix = "LUXTIME"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv       = "LUXTIME_APP_ENV"
	EnvPort         = "LUXTIME_APP_PORT"
	EnvLogLevel     = "LUXTIME_LOG_LEVEL"
	EnvLogWarnStack = "LUXTIME_LOG_WARN_STACK"

	EnvDBDSN      = "LUXTIME_DB_DSN"
	EnvDBDriver   = "LUXTIME_DB_DRIVER"
	EnvDBHost     = "LUXTIME_DB_HOST"
	EnvDBPort     = "LUXTIME_DB_PORT"
	EnvDBUser     = "LUXTIME_DB_USER"
	EnvDBPassword = "LUXTIME_DB_PASSWORD"
	EnvDBName     = "LUXTIME_DB_NAME"
	EnvDBSSLMode  = "LUXTIME_DB_SSLMODE"

	EnvRedisURL  = "LUXTIME_REDIS_URL"
	EnvRedisAddr = "LUXTIME_REDIS_ADDR"

	EnvJWTSecret   = "LUXTIME_JWT_SECRET"
	EnvJWTIssuer   = "LUXTIME_JWT_ISSUER"
	EnvJWTAudience = "LUXTIME_JWT_AUDIENCE"

	EnvCartStorage           = "LUXTIME_CART_STORAGE"
	EnvCartKeyPrefix         = "LUXTIME_CART_KEY_PREFIX"
	EnvCartFreeShipping      = "LUXTIME_CART_FREE_SHIPPING_THRESHOLD"
	EnvCartShippingFee       = "LUXTIME_CART_SHIPPING_FEE"
	EnvCartTaxRate           = "LUXTIME_CART_TAX_RATE"
	EnvCartPersistTimeout    = "LUXTIME_CART_PERSIST_TIMEOUT"
	EnvCartSnapshotTTL       = "LUXTIME_CART_SNAPSHOT_TTL"
	EnvCartMaxEngines        = "LUXTIME_CART_MAX_ENGINES"
	EnvCatalogSource         = "LUXTIME_CATALOG_SOURCE"
	EnvFeatureUseSQLite      = "LUXTIME_USE_SQLITE"
	EnvFeatureAutoMigrate    = "LUXTIME_AUTO_MIGRATE"
	EnvFeatureSQLitePath     = "LUXTIME_SQLITE_PATH"
	EnvMetricsEnabled        = "LUXTIME_METRICS_ENABLED"
	EnvHTTPReadHeaderTimeout = "LUXTIME_HTTP_READ_HEADER_TIMEOUT"
	EnvCORSOrigins           = "LUXTIME_CORS_ORIGINS"
)

// Cart storage drivers accepted by LUXTIME_CART_STORAGE.
const (
	CartStorageMemory = "memory"
	CartStorageRedis  = "redis"
	CartStorageSQL    = "sql"
	CartStorageTiered = "tiered"
	CartStorageNoop   = "noop"
)

// Catalog sources accepted by LUXTIME_CATALOG_SOURCE.
const (
	CatalogSourceMemory = "memory"
	CatalogSourceDB     = "db"
)

var legacyDBEnvVars = []string{
	EnvDBHost,
	EnvDBUser,
	EnvDBName,
}
