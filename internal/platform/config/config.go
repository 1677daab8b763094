package config

import (
	"os"
	"strconv"
)

type Config struct {
	Addr         string
	DatabaseURL  string
	KVDriver     string
	DataDir      string
	JWTSecret    string
	Environment  string
	SeedDemoData bool
	MaxBodyBytes int64
}

func Load() Config {
	return Config{
		Addr:         getEnv("APP_ADDR", ":8080"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		KVDriver:     getEnv("KV_DRIVER", ""),
		DataDir:      getEnv("DATA_DIR", "data"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		Environment:  getEnv("APP_ENV", "development"),
		SeedDemoData: getEnvBool("SEED_DEMO_DATA", true),
		MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
	}
}

// Driver resolves the persistence driver: explicit KV_DRIVER wins, otherwise
// a set DATABASE_URL selects postgres and sqlite is the fallback.
func (c Config) Driver() string {
	if c.KVDriver != "" {
		return c.KVDriver
	}
	if c.DatabaseURL != "" {
		return "postgres"
	}
	return "sqlite"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
