package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gorm.io/gorm/logger"
)

const (
	defaultDatabaseURL = "oakes_task_log.db"
	defaultAddAttempts = 3
)

// Config keeps runtime settings for the task logger.
type Config struct {
	DatabaseURL string
	NoColor     bool
	SQLLogLevel logger.LogLevel
	AddAttempts int
}

// Load reads configuration from environment variables with sane defaults.
// None of the variables is required.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		DatabaseURL: strings.TrimSpace(getenv("TASK_LOGGER_DB")),
		NoColor:     getenv("NO_COLOR") != "",
		AddAttempts: parseAttempts(strings.TrimSpace(getenv("TASK_LOGGER_ADD_ATTEMPTS"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}

	level, err := parseLogLevel(strings.TrimSpace(getenv("TASK_LOGGER_SQL_LOG")))
	if err != nil {
		return cfg, err
	}
	cfg.SQLLogLevel = level

	return cfg, nil
}

func parseAttempts(raw string) int {
	if raw == "" {
		return defaultAddAttempts
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultAddAttempts
	}
	return n
}

func parseLogLevel(raw string) (logger.LogLevel, error) {
	switch strings.ToLower(raw) {
	case "", "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "warn":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	default:
		return logger.Silent, fmt.Errorf("TASK_LOGGER_SQL_LOG: unknown level %q", raw)
	}
}
