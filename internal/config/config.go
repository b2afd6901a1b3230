package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DevTokenSecret is the signing secret applied outside production when
// AUTH_TOKEN_SECRET is not set. Production refuses to start without an
// explicit secret.
const DevTokenSecret = "dev-secret"

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Directory DirectoryConfig
	Geocode   GeocodeConfig
	Notify    NotifyConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters. TokenTTLHours is the signed
// token lifetime; AdminCookieTTLHours is the independent lifetime of the
// cookies set by admin login. The two are deliberately separate clocks: the
// token outlives the admin cookies that carry it.
type AuthConfig struct {
	AdminUsername       string
	AdminPassword       string
	TokenSecret         string
	TokenTTLHours       int
	AdminCookieTTLHours int
	BcryptCost          int
}

// DirectoryConfig tunes the public directory listing cache.
type DirectoryConfig struct {
	CacheTTLSeconds int
}

// GeocodeConfig configures the forward-geocode proxy.
type GeocodeConfig struct {
	UpstreamURL     string
	CacheTTLSeconds int
	TimeoutSeconds  int
}

// NotifyConfig holds the stub notification endpoint.
type NotifyConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "crew-directory"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			AdminUsername:       getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
			TokenSecret:         os.Getenv("AUTH_TOKEN_SECRET"),
			TokenTTLHours:       getEnvAsInt("AUTH_TOKEN_TTL_HOURS", 24),
			AdminCookieTTLHours: getEnvAsInt("AUTH_ADMIN_COOKIE_TTL_HOURS", 2),
			BcryptCost:          getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Directory: DirectoryConfig{
			CacheTTLSeconds: getEnvAsInt("DIRECTORY_CACHE_TTL_SECONDS", 60),
		},
		Geocode: GeocodeConfig{
			UpstreamURL:     getEnv("GEOCODE_UPSTREAM_URL", "https://nominatim.openstreetmap.org/search"),
			CacheTTLSeconds: getEnvAsInt("GEOCODE_CACHE_TTL_SECONDS", 86400),
			TimeoutSeconds:  getEnvAsInt("GEOCODE_TIMEOUT_SECONDS", 5),
		},
		Notify: NotifyConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	if cfg.Auth.TokenSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("AUTH_TOKEN_SECRET is required when APP_ENV=production")
		}
		cfg.Auth.TokenSecret = DevTokenSecret
	}
	if cfg.IsProduction() && cfg.Auth.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required when APP_ENV=production")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production hardening
// (secure cookies, mandatory secrets).
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
