package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origins     []string
	Environment string
	JWTSecret   string
	TokenTTL    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	ttlHours, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS: %w", err)
	}

	origins := strings.Split(getEnv("ORIGIN", "http://localhost:5173,http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Port:        getEnv("PORT", "3001"),
		Origins:     origins,
		Environment: getEnv("NODE_ENV", "development"),
		JWTSecret:   getEnv("JWT_SECRET", "medicare_simple_secret_2024"),
		TokenTTL:    time.Duration(ttlHours) * time.Hour,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
