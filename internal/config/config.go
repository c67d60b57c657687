package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env       string
	Port      string
	PGDSN     string
	CORSAllow []string

	LogLevel  string
	LogFormat string

	DBMaxConns       int32
	DBConnectTimeout time.Duration
	DBAcquireTimeout time.Duration
	AutoMigrate      bool

	// MigrateRetryInterval paces AUTO_MIGRATE retries when the store is down at boot.
	MigrateRetryInterval time.Duration

	BodyLimitBytes  int64
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the environment. PG_DSN wins over the individual DB_* parts.
func Load() Config {
	dsn := os.Getenv("PG_DSN")
	if strings.TrimSpace(dsn) == "" {
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(getenv("DB_USER", "postgres"), getenv("DB_PASSWORD", "postgres")),
			Host:     getenv("DB_HOST", "localhost") + ":" + getenv("DB_PORT", "5432"),
			Path:     "/" + getenv("DB_NAME", "pern_dashboard"),
			RawQuery: "sslmode=" + getenv("DB_SSLMODE", "disable"),
		}
		dsn = u.String()
	}
	var cors []string
	if s := os.Getenv("CORS_ALLOW_ORIGINS"); s != "" {
		for _, p := range strings.Split(s, ",") {
			if v := strings.TrimSpace(p); v != "" {
				cors = append(cors, v)
			}
		}
	}
	return Config{
		Env:       getenv("APP_ENV", "development"),
		Port:      getenv("APP_PORT", "5000"),
		PGDSN:     dsn,
		CORSAllow: cors,

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "console"),

		DBMaxConns:       int32(getint("DB_MAX_CONNS", 10)),
		DBConnectTimeout: getduration("DB_CONNECT_TIMEOUT", 5*time.Second),
		DBAcquireTimeout: getduration("DB_ACQUIRE_TIMEOUT", 3*time.Second),
		AutoMigrate:      getbool("AUTO_MIGRATE", true),

		MigrateRetryInterval: getduration("MIGRATE_RETRY_INTERVAL", 5*time.Second),

		BodyLimitBytes:  int64(getint("BODY_LIMIT_BYTES", 8<<20)),
		ReadTimeout:     getduration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getduration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:     getduration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getduration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c Config) Addr() string { return ":" + c.Port }

// RedactedDSN hides the password for logging.
func (c Config) RedactedDSN() string {
	u, err := url.Parse(c.PGDSN)
	if err != nil {
		return "<unparseable dsn>"
	}
	return u.Redacted()
}

func (c Config) String() string {
	return fmt.Sprintf("env=%s port=%s dsn=%s auto_migrate=%t", c.Env, c.Port, c.RedactedDSN(), c.AutoMigrate)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil && v > 0 {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(k)); err == nil {
		return v
	}
	return def
}

// getduration accepts Go durations ("5s") or whole seconds ("5").
func getduration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
