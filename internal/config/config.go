// Package config reads process settings from the environment.
package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"rlink/internal/logger"
)

const (
	DefaultAppID = "com.rlink.desktop"

	envLogLevel = "RLINK_LOG_LEVEL"
	envDebug    = "RLINK_DEBUG"
	envJSONLogs = "RLINK_JSON_LOGS"
	envAppID    = "RLINK_APP_ID"
)

type Config struct {
	AppID    string
	LogLevel zerolog.Level
	JSONLogs bool
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		AppID:    DefaultAppID,
		LogLevel: zerolog.InfoLevel,
	}
}

// Load reads the process environment.
func Load() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, which has the signature of
// os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) Config {
	cfg := Default()

	if v, ok := lookup(envLogLevel); ok {
		cfg.LogLevel = logger.ParseLevel(v)
	}
	if v, ok := lookup(envDebug); ok && v == "1" {
		cfg.LogLevel = zerolog.DebugLevel
	}
	if v, ok := lookup(envJSONLogs); ok && strings.EqualFold(v, "true") {
		cfg.JSONLogs = true
	}
	if v, ok := lookup(envAppID); ok && strings.TrimSpace(v) != "" {
		cfg.AppID = strings.TrimSpace(v)
	}

	return cfg
}

// NewLogger builds the process logger described by cfg.
func (c Config) NewLogger() logger.Logger {
	if c.JSONLogs {
		return logger.NewZerolog(os.Stderr, c.LogLevel)
	}
	return logger.NewConsoleLogger(c.LogLevel)
}
