package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	Environment string
	LogLevel    slog.Level
	// LogDigestKey keys the email digests written to logs. At most 64 bytes.
	LogDigestKey string

	Database DatabaseConfig
	Redis    RedisConfig
	Mail     MailConfig
}

// DatabaseConfig points at the append-only submission store. An empty URL
// selects the in-memory store.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig configures the in-flight submission lock. An empty URL selects
// the in-memory lock.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// MailConfig configures the notification sender. An empty APIKey selects the
// log-only sender.
type MailConfig struct {
	APIKey string
	From   string
	To     []string
}

// InFlightTTL bounds how long a form instance may hold its submission lock.
var InFlightTTL = 30 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:         getEnv("SUNSETGUIDE_ADDR", ":8080"),
		Environment:  getEnv("SITE_ENV", "development"),
		LogLevel:     parseLevel(os.Getenv("LOG_LEVEL")),
		LogDigestKey: os.Getenv("LOG_DIGEST_KEY"),
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    getEnvInt("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getEnvInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Mail: MailConfig{
			APIKey: os.Getenv("RESEND_API_KEY"),
			From:   getEnv("NOTIFY_FROM", "Outer Sunset Guide <hello@relationaltechproject.org>"),
			To:     splitList(getEnv("NOTIFY_TO", "josh@relationaltechproject.org")),
		},
	}
}

// Validate rejects settings the server cannot honour.
func (s Server) Validate() error {
	if n := len(s.LogDigestKey); n > blake2b.Size {
		return fmt.Errorf("LOG_DIGEST_KEY is %d bytes, at most %d allowed", n, blake2b.Size)
	}
	return nil
}

// IsProduction reports whether the server runs with production defaults.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func parseLevel(v string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
