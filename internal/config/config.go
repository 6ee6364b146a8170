package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Snapshot SnapshotConfig
	Limits   LimitsConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	Timezone    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret    string
	Issuer          string
	AccessExpiresIn time.Duration
}

type SnapshotConfig struct {
	// RefreshSpec is a robfig/cron spec, e.g. "@every 10m". Empty disables the scheduler.
	RefreshSpec string

	// The breaker opens after BreakerFailures consecutive source failures and
	// probes again after BreakerTimeout.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

type LimitsConfig struct {
	// RequestsPerMin is per client; zero disables rate limiting.
	RequestsPerMin int
	Burst          int
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	seconds := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return time.Duration(v) * time.Second
	}
	conns := func(key string) int32 {
		raw := opt(key)
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return 0
		}
		return int32(v)
	}
	count := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		Timezone:    optDefault("APP_TIMEZONE", "UTC"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  optDefault("DB_SSL_MODE", "disable"),

		ConnectTimeout:        seconds("DB_CONNECT_TIMEOUT", 0),
		PoolMaxConns:          conns("DB_POOL_MAX_CONNS"),
		PoolMinConns:          conns("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   seconds("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   seconds("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: seconds("DB_POOL_HEALTH_CHECK_PERIOD", 0),

		MigrationsDir: optDefault("DB_MIGRATIONS_DIR", "migrations"),
	}

	cfg.Redis = RedisConfig{
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      seconds("REDIS_TTL", 600*time.Second),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		Issuer:          optDefault("JWT_ISSUER", "jobboard-auth"),
		AccessExpiresIn: seconds("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
	}

	cfg.Snapshot = SnapshotConfig{
		RefreshSpec:     optDefault("SNAPSHOT_REFRESH_SPEC", "@every 10m"),
		BreakerFailures: uint32(count("SNAPSHOT_BREAKER_FAILURES", 5)),
		BreakerTimeout:  seconds("SNAPSHOT_BREAKER_TIMEOUT", 30*time.Second),
	}

	cfg.Limits = LimitsConfig{
		RequestsPerMin: count("RATE_LIMIT_PER_MIN", 120),
		Burst:          count("RATE_LIMIT_BURST", 20),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	if _, err := cfg.App.Location(); err != nil {
		return Config{}, fmt.Errorf("%w: APP_TIMEZONE: %v", errInvalidEnv, err)
	}

	return cfg, nil
}

// Location resolves the zone used for deadlines stored without a zone marker.
func (c AppConfig) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(tz)
}
