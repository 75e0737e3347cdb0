package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
	LogDir      string

	// TrustedProxies lists proxy IPs whose X-Forwarded-For headers are honored.
	TrustedProxies []string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey string // API key for authentication

	// GameTimezone is the IANA zone all betting windows are interpreted in.
	GameTimezone string

	// RolloverTime is the local wall-clock HH:mm at which declared rounds
	// are cleared for the next day.
	RolloverTime string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:  getEnv("ENVIRONMENT", "dev"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		LogDir:       getEnv("LOG_DIR", "logs"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", "matka"),
		APIKey:       getEnv("API_KEY", ""),
		GameTimezone: getEnv("GAME_TIMEZONE", DefaultGameTimezone),
		RolloverTime: getEnv("ROLLOVER_TIME", DefaultRolloverTime),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if _, err := time.LoadLocation(cfg.GameTimezone); err != nil {
		return nil, fmt.Errorf("invalid GAME_TIMEZONE value %q: %w", cfg.GameTimezone, err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// Location resolves the configured game timezone. Load validated it, so a
// failure here only happens with a hand-built Config.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.GameTimezone)
}
