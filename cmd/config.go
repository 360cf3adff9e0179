package cmd

import (
	"fmt"
	"os"
	"strconv"

	"breakfast/internal/core/domain/model/sale"
)

// Config holds the runtime settings of the application, read from the
// environment by the entry point.
type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	JWTSecret          string
	JWTExpirationHours int
	OrderCutoffHours   int
}

// DSN builds the postgres connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// LoadConfig reads the configuration from environment variables.
// JWT_SECRET has no default and must be set.
func LoadConfig() (Config, error) {
	config := Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "breakfast"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}

	if config.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	expirationHours, err := envIntOrDefault("JWT_EXPIRATION_HOURS", 72)
	if err != nil {
		return Config{}, err
	}
	config.JWTExpirationHours = expirationHours

	cutoffHours, err := envIntOrDefault("ORDER_CUTOFF_HOURS", sale.DefaultCutoffHours)
	if err != nil {
		return Config{}, err
	}
	config.OrderCutoffHours = cutoffHours

	return config, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, value)
	}

	return value, nil
}
