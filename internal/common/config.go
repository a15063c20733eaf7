package common

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Remote RemoteConfig
	Ledger LedgerConfig
	Log    LogConfig
}

// RemoteConfig holds the SFTP collaborator settings. The two directories are
// the only approved upload destinations; uploads are a binary choice by policy.
type RemoteConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	KnownHosts  string // path to a known_hosts file; empty disables host-key verification
	DirBooked   string
	DirClosed   string
	DialTimeout time.Duration
}

// LedgerConfig holds the bookkeeping endpoint settings
type LedgerConfig struct {
	URL     string
	Timeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// SlogLevel maps the configured level name onto slog levels, defaulting to info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Remote: RemoteConfig{
			Host:        getEnv("SFTP_HOST", ""),
			Port:        getEnvAsInt("SFTP_PORT", 22),
			Username:    getEnv("SFTP_USERNAME", ""),
			Password:    getEnv("SFTP_PASSWORD", ""),
			KnownHosts:  getEnv("SFTP_KNOWN_HOSTS", ""),
			DirBooked:   getEnv("REMOTE_DIR_BOOKED", ""),
			DirClosed:   getEnv("REMOTE_DIR_CLOSED", ""),
			DialTimeout: getEnvAsDuration("SFTP_DIAL_TIMEOUT", 10*time.Second),
		},
		Ledger: LedgerConfig{
			URL:     getEnv("LEDGER_URL", ""),
			Timeout: getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate reports configuration gaps. Display and rename work without any of
// these, so callers treat the result as a warning rather than a startup error;
// upload and posting fail at the action boundary when their settings are absent.
func (c *Config) Validate() error {
	var missing []string
	if c.Remote.Host == "" {
		missing = append(missing, "SFTP_HOST")
	}
	if c.Remote.Username == "" {
		missing = append(missing, "SFTP_USERNAME")
	}
	if c.Remote.Password == "" {
		missing = append(missing, "SFTP_PASSWORD")
	}
	if c.Remote.DirBooked == "" {
		missing = append(missing, "REMOTE_DIR_BOOKED")
	}
	if c.Remote.DirClosed == "" {
		missing = append(missing, "REMOTE_DIR_CLOSED")
	}
	if c.Ledger.URL == "" {
		missing = append(missing, "LEDGER_URL")
	}
	if len(missing) > 0 {
		return NewAppError("CONFIG_INCOMPLETE", strings.Join(missing, ", ")+" not set", ErrInvalidInput)
	}
	return nil
}
