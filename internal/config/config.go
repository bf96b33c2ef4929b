// Package config provides runtime configuration values for the tool.
package config

import (
	"os"
	"strconv"
)

// Config holds configuration knobs for the batch aggregator CLI.
type Config struct {
	LogLevel          string
	LowStockThreshold int
	LegacyOutput      bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LowStockThreshold: atoienv("LOW_STOCK_THRESHOLD", 5),
		LegacyOutput:      boolenv("LEGACY_OUTPUT", false),
	}
}
