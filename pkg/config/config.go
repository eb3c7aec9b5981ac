// Package config provides configuration management for kmm2journal.
// It loads defaults from environment variables and .env files; command-line
// flags override whatever is loaded here.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Convert ConvertConfig
	Debug   bool
}

// ConvertConfig carries the conversion defaults.
type ConvertConfig struct {
	// Dialect is "hledger" or "beancount".
	Dialect string
	// MappingFile is an optional YAML file overriding the currency-symbol
	// table and the top-level account renames.
	MappingFile string
	// ReplaceDestinationCommodity normalizes category postings to the
	// transaction commodity instead of keeping their own currency.
	ReplaceDestinationCommodity bool
	// UseCurrencySymbols replaces ISO 4217 codes with unicode glyphs.
	UseCurrencySymbols bool
}

// Load loads configuration from environment variables. It automatically
// loads a .env file from the current directory if available; a custom .env
// path can be passed instead.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	cfg := &Config{
		Convert: ConvertConfig{
			Dialect:                     getEnvOrDefault("KMM_DIALECT", "hledger"),
			MappingFile:                 os.Getenv("KMM_MAPPING_FILE"),
			ReplaceDestinationCommodity: os.Getenv("KMM_REPLACE_DESTINATION_COMMODITY") == "true",
			UseCurrencySymbols:          os.Getenv("KMM_CURRENCY_SYMBOLS") == "true",
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	if cfg.Convert.Dialect != "hledger" && cfg.Convert.Dialect != "beancount" {
		return nil, fmt.Errorf("invalid KMM_DIALECT: %q (want hledger or beancount)", cfg.Convert.Dialect)
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
