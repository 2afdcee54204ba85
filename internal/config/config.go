package config

import (
	"os"
	"strings"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port        string
	DatabaseDSN string
	CORSOrigins []string
}

func Load() *Config {
	return &Config{
		Port:        getenv("PORT", "3002"),
		DatabaseDSN: getenv("DATABASE_DSN", ""),
		CORSOrigins: strings.Split(getenv("CORS_ORIGINS", "*"), ","),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
