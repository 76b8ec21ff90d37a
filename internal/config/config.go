package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backend selection values.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreBlob   = "blob"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from
// environment variables (with an optional .env file for development).
type Config struct {
	Server    ServerConfig
	Admin     AdminConfig
	Store     StoreConfig
	Highlight HighlightConfig
	WhatsApp  WhatsAppConfig
	LogLevel  string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AdminConfig struct {
	// APISecret guards the administrative endpoints, passed in the
	// x-admin-api-secret header.
	APISecret string
}

type StoreConfig struct {
	// Backend selects the snapshot store: memory, file or blob.
	Backend  string
	FilePath string
	BlobURL  string
}

type HighlightConfig struct {
	// DisplayDelayMS is the debounce before a picked coupon highlight
	// becomes visible.
	DisplayDelayMS int
}

type WhatsAppConfig struct {
	// Number is the vendor number orders are handed to, digits only
	// including country code.
	Number string
	// VendorName is how the vendor is addressed in the order greeting.
	VendorName string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Admin: AdminConfig{
			APISecret: getEnv("ADMIN_API_SECRET", ""),
		},
		Store: StoreConfig{
			Backend:  getEnv("STORE_BACKEND", StoreMemory),
			FilePath: getEnv("STORE_FILE_PATH", "app_data.json"),
			BlobURL:  getEnv("STORE_BLOB_URL", ""),
		},
		Highlight: HighlightConfig{
			DisplayDelayMS: getEnvAsInt("HIGHLIGHT_DELAY_MS", 1500),
		},
		WhatsApp: WhatsAppConfig{
			Number:     getEnv("WHATSAPP_NUMBER", "5561991775501"),
			VendorName: getEnv("WHATSAPP_VENDOR_NAME", "Big Pastel da Bel"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Admin.APISecret == "" {
		return fmt.Errorf("ADMIN_API_SECRET is required")
	}

	switch c.Store.Backend {
	case StoreMemory:
	case StoreFile:
		if c.Store.FilePath == "" {
			return fmt.Errorf("STORE_FILE_PATH is required for the file backend")
		}
	case StoreBlob:
		if c.Store.BlobURL == "" {
			return fmt.Errorf("STORE_BLOB_URL is required for the blob backend")
		}
	default:
		return fmt.Errorf("invalid store backend: %s (must be memory, file or blob)", c.Store.Backend)
	}

	if c.WhatsApp.Number == "" {
		return fmt.Errorf("WHATSAPP_NUMBER is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
