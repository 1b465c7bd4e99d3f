package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds connector configuration.
type Config struct {
	DatabaseURL   string
	ServerAddr    string
	StoreBackend  string
	MigrationsDir string
	CatalogFile   string
	ParticipantID string
	TokenSecret   string
	LeaseTTL      time.Duration
}

// Load reads configuration from environment.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		user := getenv("POSTGRES_USER", "connector")
		pass := getenv("POSTGRES_PASSWORD", "connector_pass")
		db := getenv("POSTGRES_DB", "connector")
		host := getenv("POSTGRES_HOST", "localhost")
		port := getenv("POSTGRES_PORT", "5432")
		sslmode := getenv("DATABASE_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, db, sslmode)
	}
	addr := getenv("SERVER_ADDR", "0.0.0.0:8080")
	backend := getenv("STORE_BACKEND", "postgres")
	if backend != "postgres" && backend != "memory" {
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", backend)
	}
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET is required")
	}
	leaseTTL := parseDuration(getenv("NEGOTIATION_LEASE_TTL", "30s"), 30*time.Second)

	return &Config{
		DatabaseURL:   dsn,
		ServerAddr:    addr,
		StoreBackend:  backend,
		MigrationsDir: getenv("MIGRATIONS_DIR", "internal/migrations"),
		CatalogFile:   getenv("CATALOG_FILE", ""),
		ParticipantID: getenv("PARTICIPANT_ID", "did:web:connector"),
		TokenSecret:   secret,
		LeaseTTL:      leaseTTL,
	}, nil
}

func getenv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseDuration(val string, def time.Duration) time.Duration {
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return def
	}
	return d
}
