package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	FeatureFlags FeatureFlagsConfig
	Loads        LoadsConfig
	Functions    FunctionsConfig
	GCP          GCPConfig
	GCS          GCSConfig
	PubSub       PubSubConfig
	Outbox       OutboxConfig
	Cron         CronConfig
	Idempotency  IdempotencyConfig
	RateLimit    RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Loads.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"FREIGHTDESK_APP_ENV" required:"true"`
	Port         string   `envconfig:"FREIGHTDESK_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"FREIGHTDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"FREIGHTDESK_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"FREIGHTDESK_CORS_ALLOWED_ORIGINS" default:"*"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"FREIGHTDESK_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"FREIGHTDESK_DB_DSN"`
	Driver string `envconfig:"FREIGHTDESK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FREIGHTDESK_DB_HOST"`
	LegacyPort     int    `envconfig:"FREIGHTDESK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FREIGHTDESK_DB_USER"`
	LegacyPassword string `envconfig:"FREIGHTDESK_DB_PASSWORD"`
	LegacyName     string `envconfig:"FREIGHTDESK_DB_NAME"`
	LegacySSLMode  string `envconfig:"FREIGHTDESK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FREIGHTDESK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FREIGHTDESK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FREIGHTDESK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FREIGHTDESK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FREIGHTDESK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FREIGHTDESK_REDIS_ADDR"`
	Password     string        `envconfig:"FREIGHTDESK_REDIS_PASSWORD"`
	DB           int           `envconfig:"FREIGHTDESK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FREIGHTDESK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FREIGHTDESK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FREIGHTDESK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FREIGHTDESK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FREIGHTDESK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// JWTConfig holds the shared secret used to verify access tokens minted by the
// identity service.
type JWTConfig struct {
	Secret string `envconfig:"FREIGHTDESK_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"FREIGHTDESK_JWT_ISSUER" required:"true"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"FREIGHTDESK_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"FREIGHTDESK_AUTO_MIGRATE" default:"false"`
}

// LoadsConfig carries the load lifecycle policies.
type LoadsConfig struct {
	PageSize            int    `envconfig:"FREIGHTDESK_LOADS_PAGE_SIZE" default:"14"`
	InitialStatus       string `envconfig:"FREIGHTDESK_LOADS_INITIAL_STATUS" default:"available"`
	ImportInitialStatus string `envconfig:"FREIGHTDESK_LOADS_IMPORT_INITIAL_STATUS" default:"action_needed"`
	LockTerminal        bool   `envconfig:"FREIGHTDESK_LOADS_LOCK_TERMINAL" default:"false"`
	Timezone            string `envconfig:"FREIGHTDESK_LOADS_TIMEZONE" default:"UTC"`
}

// Location resolves the time zone used for pickup-date filtering and CSV dates.
func (l LoadsConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(l.Timezone)
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

func (l LoadsConfig) validate() error {
	if l.PageSize <= 0 {
		return fmt.Errorf("%s must be positive", EnvLoadsPageSize)
	}
	if _, err := l.Location(); err != nil {
		return fmt.Errorf("%s: %w", EnvLoadsTimezone, err)
	}
	return nil
}

// FunctionsConfig points at the serverless functions that front the carrier
// registry (lookup by DOT number, bulk sync).
type FunctionsConfig struct {
	BaseURL string        `envconfig:"FREIGHTDESK_FUNCTIONS_BASE_URL" required:"true"`
	APIKey  string        `envconfig:"FREIGHTDESK_FUNCTIONS_API_KEY"`
	Timeout time.Duration `envconfig:"FREIGHTDESK_FUNCTIONS_TIMEOUT" default:"30s"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"FREIGHTDESK_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"FREIGHTDESK_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"FREIGHTDESK_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName        string        `envconfig:"FREIGHTDESK_GCS_BUCKET_NAME" required:"true"`
	DownloadURLExpiry time.Duration `envconfig:"FREIGHTDESK_GCS_DOWNLOAD_URL_EXPIRY" default:"15m"`
	SignerEmail       string        `envconfig:"FREIGHTDESK_GCS_SIGNER_EMAIL"`
}

type PubSubConfig struct {
	LoadsTopic string `envconfig:"FREIGHTDESK_PUBSUB_LOADS_TOPIC" required:"true"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"FREIGHTDESK_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"FREIGHTDESK_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"FREIGHTDESK_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

type CronConfig struct {
	Interval time.Duration `envconfig:"FREIGHTDESK_CRON_INTERVAL" default:"24h"`
	LockTTL  time.Duration `envconfig:"FREIGHTDESK_CRON_LOCK_TTL" default:"30m"`
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"FREIGHTDESK_IDEMPOTENCY_TTL" default:"24h"`
}

// RateLimitConfig throttles the carrier registry calls per tenant. A zero
// limit disables the throttle.
type RateLimitConfig struct {
	CarrierWindow time.Duration `envconfig:"FREIGHTDESK_RATE_LIMIT_CARRIER_WINDOW" default:"1m"`
	CarrierLimit  int           `envconfig:"FREIGHTDESK_RATE_LIMIT_CARRIER_LIMIT" default:"30"`
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
