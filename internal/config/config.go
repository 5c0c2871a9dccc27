package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

type Config struct {
	// Server
	Port           string
	AllowedOrigins string

	// Optional shared key for the parse API; empty disables the check
	APIKey string

	// Parser thresholds
	MinItemPrice        decimal.Decimal
	MaxItemPrice        decimal.Decimal
	MinNameLength       int
	MaxNameLength       int
	SimilarityThreshold float64
	PriceProximity      decimal.Decimal
	TotalToleranceAbs   decimal.Decimal
	TotalTolerancePct   float64
	DefaultConfidence   float64

	// Environment
	Environment string
}

func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		AllowedOrigins:      getEnv("ALLOWED_ORIGINS", "*"),
		APIKey:              getEnv("API_KEY", ""),
		MinItemPrice:        getDecimalEnv("MIN_ITEM_PRICE", "0.01"),
		MaxItemPrice:        getDecimalEnv("MAX_ITEM_PRICE", "1000.00"),
		MinNameLength:       getIntEnv("MIN_NAME_LENGTH", 2),
		MaxNameLength:       getIntEnv("MAX_NAME_LENGTH", 50),
		SimilarityThreshold: getFloatEnv("SIMILARITY_THRESHOLD", 0.8),
		PriceProximity:      getDecimalEnv("PRICE_PROXIMITY", "0.50"),
		TotalToleranceAbs:   getDecimalEnv("TOTAL_TOLERANCE_ABS", "0.50"),
		TotalTolerancePct:   getFloatEnv("TOTAL_TOLERANCE_PCT", 0.10),
		DefaultConfidence:   getFloatEnv("DEFAULT_CONFIDENCE", 0.8),
		Environment:         getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDecimalEnv(key, defaultValue string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if decVal, err := decimal.NewFromString(value); err == nil {
			return decVal
		}
	}
	return decimal.RequireFromString(defaultValue)
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
