// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server and data loading.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	// SeedFile optionally points at a YAML fixture file replacing the
	// embedded graph/pricing/intent seeds.
	SeedFile string

	// RulesFile optionally points at a YAML file replacing the embedded
	// classification rule table.
	RulesFile string

	// ActivityLogCap bounds the classifier activity log exposed over HTTP;
	// zero means unbounded.
	ActivityLogCap int
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

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
		SeedFile:        getenv("SEED_FILE", ""),
		RulesFile:       getenv("RULES_FILE", ""),
		ActivityLogCap:  atoienv("ACTIVITY_LOG_CAP", 0),
	}
}
