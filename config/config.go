package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	OpenWeatherAPIKey string  `env:"OPENWEATHER_API_KEY" envDefault:"-"`
	AnthropicAPIKey   string  `env:"ANTHROPIC_API_KEY" envDefault:"-"`
	AdvisoryModel     string  `env:"ADVISORY_MODEL" envDefault:"claude-sonnet-4-20250514"`
	Port              string  `env:"PORT" envDefault:"8000"`
	DefaultState      string  `env:"DEFAULT_STATE" envDefault:"Maharashtra"`
	LogLevel          string  `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout    int     `env:"REQUEST_TIMEOUT" envDefault:"30"` // seconds, outbound API calls
	SourceTimeout     int     `env:"SOURCE_TIMEOUT" envDefault:"10"`  // seconds, per price source
	RequestsPerSec    int     `env:"REQUESTS_PER_SEC" envDefault:"5"`
	ChartsEnabled     bool    `env:"CHARTS_ENABLED" envDefault:"true"`
	AdvisoryEnabled   bool    `env:"ADVISORY_ENABLED" envDefault:"true"`
	AdvisoryTemp      float64 `env:"ADVISORY_TEMPERATURE" envDefault:"0.7"`
}

// Load initializes configuration from environment variables.
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		AdvisoryModel:     getEnvWithDefault("ADVISORY_MODEL", "claude-sonnet-4-20250514"),
		Port:              getEnvWithDefault("PORT", "8000"),
		DefaultState:      getEnvWithDefault("DEFAULT_STATE", "Maharashtra"),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		RequestTimeout:    getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
		SourceTimeout:     getEnvIntWithDefault("SOURCE_TIMEOUT", 10),
		RequestsPerSec:    getEnvIntWithDefault("REQUESTS_PER_SEC", 5),
		ChartsEnabled:     getEnvBoolWithDefault("CHARTS_ENABLED", true),
		AdvisoryEnabled:   getEnvBoolWithDefault("ADVISORY_ENABLED", true),
		AdvisoryTemp:      getEnvFloatWithDefault("ADVISORY_TEMPERATURE", 0.7),
	}

	return cfg, nil
}

// getEnvWithDefault returns the environment variable value or a default
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntWithDefault returns the environment variable as int or a default
func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvFloatWithDefault returns the environment variable as float64 or a default
func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvBoolWithDefault returns the environment variable as bool or a default
func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
