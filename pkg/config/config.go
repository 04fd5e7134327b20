package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Storage
	DataDir        string
	StorageBackend string // "file" or "sqlite"
	SQLitePath     string

	// API server
	ServeAddr string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	dataDir := getEnv("LAUNCHKIT_DATA_DIR", defaultDataDir())

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DataDir:        dataDir,
		StorageBackend: getEnv("LAUNCHKIT_STORAGE", "file"),
		SQLitePath:     getEnv("LAUNCHKIT_SQLITE_PATH", filepath.Join(dataDir, "launchkit.db")),
		ServeAddr:      getEnv("LAUNCHKIT_SERVE_ADDR", "127.0.0.1:8080"),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".launchkit"
	}
	return filepath.Join(home, ".launchkit")
}
