package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port            string
	StorageType     string
	DatabaseURL     string
	RedisURL        string
	SQLitePath      string
	PasswordStorage string
	JWTSecret       string
	JWTIssuer       string
	JWTTTL          time.Duration
	JWTPersistTTL   time.Duration
	CORSOrigins     []string
	LogEnv          string
}

// Load reads configuration from the environment and checks the selected storage is configured.
func Load() (Config, error) {
	cfg := Config{
		Port:            fallback(os.Getenv("PORT"), "8080"),
		StorageType:     strings.ToLower(fallback(os.Getenv("STORAGE_TYPE"), StorageSQLite)),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:        strings.TrimSpace(os.Getenv("REDIS_URL")),
		SQLitePath:      fallback(os.Getenv("SQLITE_PATH"), "users.db"),
		PasswordStorage: strings.ToLower(fallback(os.Getenv("PASSWORD_STORAGE"), "plain")),
		JWTSecret:       strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:       fallback(os.Getenv("JWT_ISSUER"), "all-in-forms"),
		JWTTTL:          positiveDuration(os.Getenv("JWT_TTL_MINUTES"), 60, time.Minute),
		JWTPersistTTL:   positiveDuration(os.Getenv("JWT_PERSIST_TTL_HOURS"), 720, time.Hour),
		CORSOrigins:     parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		LogEnv:          fallback(os.Getenv("LOG_ENV"), "development"),
	}

	switch cfg.StorageType {
	case StorageMemory, StorageSQLite:
	case StorageRedis:
		if cfg.RedisURL == "" {
			return Config{}, errors.New("REDIS_URL is required when STORAGE_TYPE=redis")
		}
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required when STORAGE_TYPE=postgres")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_TYPE %q", cfg.StorageType)
	}

	return cfg, nil
}

// RequireTokens reports whether the settings the HTTP server needs to sign tokens are present.
func (c Config) RequireTokens() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func positiveDuration(raw string, def int, unit time.Duration) time.Duration {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
		return time.Duration(n) * unit
	}
	return time.Duration(def) * unit
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
