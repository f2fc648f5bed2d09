package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	GatewayAddr  string
	ServerURL    string
	DBDSN        string
	LogLevel     string
	LogFormat    string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	cfg.IsProduction = getEnv("APP_ENV", "dev") == prodString

	// HTTP listen address of the server (default: :9090)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":9090")

	// Gateway listen address and the server URL it forwards to
	cfg.GatewayAddr = getEnv("GATEWAY_ADDR", ":8080")
	cfg.ServerURL = getEnv("SERVER_URL", "http://localhost:9090")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "json")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	return cfg, nil
}

// LoadGateway loads the subset of configuration the gateway needs.
// The gateway has no database, so DB_DSN is not required.
func LoadGateway() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	return &Config{
		IsProduction: getEnv("APP_ENV", "dev") == prodString,
		GatewayAddr:  getEnv("GATEWAY_ADDR", ":8080"),
		ServerURL:    getEnv("SERVER_URL", "http://localhost:9090"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
	}, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
