package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Cart         CartConfig
	Catalog      CatalogConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Cart.validate(); err != nil {
		return nil, err
	}
	if cfg.NeedsSQL() && !cfg.FeatureFlags.UseSQLite {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	if cfg.NeedsRedis() && cfg.Redis.URL == "" && cfg.Redis.Address == "" {
		return nil, fmt.Errorf("%s or %s is required for cart storage %q", EnvRedisURL, EnvRedisAddr, cfg.Cart.Storage)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env                   string        `envconfig:"LUXTIME_APP_ENV" required:"true"`
	Port                  string        `envconfig:"LUXTIME_APP_PORT" default:"8080"`
	LogLevel              string        `envconfig:"LUXTIME_LOG_LEVEL" default:"info"`
	LogWarnStack          bool          `envconfig:"LUXTIME_LOG_WARN_STACK" default:"false"`
	MetricsEnabled        bool          `envconfig:"LUXTIME_METRICS_ENABLED" default:"true"`
	HTTPReadHeaderTimeout time.Duration `envconfig:"LUXTIME_HTTP_READ_HEADER_TIMEOUT" default:"5s"`
	CORSOrigins           []string      `envconfig:"LUXTIME_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LUXTIME_DB_DSN"`
	Driver string `envconfig:"LUXTIME_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LUXTIME_DB_HOST"`
	LegacyPort     int    `envconfig:"LUXTIME_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LUXTIME_DB_USER"`
	LegacyPassword string `envconfig:"LUXTIME_DB_PASSWORD"`
	LegacyName     string `envconfig:"LUXTIME_DB_NAME"`
	LegacySSLMode  string `envconfig:"LUXTIME_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LUXTIME_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LUXTIME_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LUXTIME_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LUXTIME_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LUXTIME_REDIS_URL"`
	Address      string        `envconfig:"LUXTIME_REDIS_ADDR"`
	Password     string        `envconfig:"LUXTIME_REDIS_PASSWORD"`
	DB           int           `envconfig:"LUXTIME_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LUXTIME_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LUXTIME_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LUXTIME_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LUXTIME_REDIS_READ_TIMEOUT" default:"2s"`
	WriteTimeout time.Duration `envconfig:"LUXTIME_REDIS_WRITE_TIMEOUT" default:"2s"`
}

// JWTConfig holds the verification settings for tokens minted by the external
// identity provider. An empty secret disables bearer authentication.
type JWTConfig struct {
	Secret   string `envconfig:"LUXTIME_JWT_SECRET"`
	Issuer   string `envconfig:"LUXTIME_JWT_ISSUER"`
	Audience string `envconfig:"LUXTIME_JWT_AUDIENCE" default:"authenticated"`
}

// Enabled reports whether bearer tokens can be verified.
func (j JWTConfig) Enabled() bool {
	return strings.TrimSpace(j.Secret) != ""
}

type CartConfig struct {
	Storage               string          `envconfig:"LUXTIME_CART_STORAGE" default:"memory"`
	KeyPrefix             string          `envconfig:"LUXTIME_CART_KEY_PREFIX" default:"luxtime-cart"`
	FreeShippingThreshold decimal.Decimal `envconfig:"LUXTIME_CART_FREE_SHIPPING_THRESHOLD" default:"50000"`
	ShippingFee           decimal.Decimal `envconfig:"LUXTIME_CART_SHIPPING_FEE" default:"250"`
	TaxRate               decimal.Decimal `envconfig:"LUXTIME_CART_TAX_RATE" default:"0.075"`
	PersistTimeout        time.Duration   `envconfig:"LUXTIME_CART_PERSIST_TIMEOUT" default:"2s"`
	SnapshotTTL           time.Duration   `envconfig:"LUXTIME_CART_SNAPSHOT_TTL" default:"720h"`
	MaxEngines            int             `envconfig:"LUXTIME_CART_MAX_ENGINES" default:"10000"`
}

// StorageDriver returns the normalized storage driver name.
func (c CartConfig) StorageDriver() string {
	driver := strings.ToLower(strings.TrimSpace(c.Storage))
	if driver == "" {
		return CartStorageMemory
	}
	return driver
}

func (c CartConfig) validate() error {
	switch c.StorageDriver() {
	case CartStorageMemory, CartStorageRedis, CartStorageSQL, CartStorageTiered, CartStorageNoop:
	default:
		return fmt.Errorf("unsupported cart storage %q", c.Storage)
	}
	if c.FreeShippingThreshold.IsNegative() || c.ShippingFee.IsNegative() || c.TaxRate.IsNegative() {
		return fmt.Errorf("cart pricing values must be non-negative")
	}
	if c.MaxEngines <= 0 {
		return fmt.Errorf("%s must be positive", EnvCartMaxEngines)
	}
	return nil
}

type CatalogConfig struct {
	Source string `envconfig:"LUXTIME_CATALOG_SOURCE" default:"memory"`
}

// FromDB reports whether products are read from the database.
func (c CatalogConfig) FromDB() bool {
	return strings.EqualFold(strings.TrimSpace(c.Source), CatalogSourceDB)
}

type FeatureFlagsConfig struct {
	UseSQLite   bool   `envconfig:"LUXTIME_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"LUXTIME_SQLITE_PATH" default:"luxtime.db"`
	AutoMigrate bool   `envconfig:"LUXTIME_AUTO_MIGRATE" default:"false"`
}

// NeedsSQL reports whether any component requires a SQL connection.
func (c Config) NeedsSQL() bool {
	switch c.Cart.StorageDriver() {
	case CartStorageSQL, CartStorageTiered:
		return true
	}
	return c.Catalog.FromDB()
}

// NeedsRedis reports whether the configured cart storage uses redis.
func (c Config) NeedsRedis() bool {
	switch c.Cart.StorageDriver() {
	case CartStorageRedis, CartStorageTiered:
		return true
	}
	return false
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
