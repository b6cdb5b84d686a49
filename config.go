package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config contains runtime settings for the server process.
type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string

	MetricsEnabled bool

	TracingEnabled     bool
	TracingEndpoint    string
	TracingServiceName string

	ShutdownTimeout time.Duration
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Addr:               ":8080",
		LogLevel:           "info",
		LogFormat:          "text",
		MetricsEnabled:     true,
		TracingEndpoint:    "localhost:4317",
		TracingServiceName: "bookshelf",
		ShutdownTimeout:    5 * time.Second,
	}
}

// LoadConfig loads a .env file if one exists, then applies environment
// variables on top of DefaultConfig.
//
// Supported vars:
// - APP_ADDR
// - APP_LOG_LEVEL (debug|info|warn|error)
// - APP_LOG_FORMAT (text|json)
// - APP_METRICS_ENABLED
// - APP_TRACING_ENABLED
// - APP_TRACING_ENDPOINT
// - APP_TRACING_SERVICE_NAME
// - APP_SHUTDOWN_TIMEOUT (Go duration, e.g. 5s)
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // loads .env into environment variables (safe to ignore error)

	cfg := DefaultConfig()

	if v := env("APP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := env("APP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := env("APP_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := env("APP_METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid APP_METRICS_ENABLED %q: %w", v, err)
		}
		cfg.MetricsEnabled = b
	}
	if v := env("APP_TRACING_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid APP_TRACING_ENABLED %q: %w", v, err)
		}
		cfg.TracingEnabled = b
	}
	if v := env("APP_TRACING_ENDPOINT"); v != "" {
		cfg.TracingEndpoint = v
	}
	if v := env("APP_TRACING_SERVICE_NAME"); v != "" {
		cfg.TracingServiceName = v
	}
	if v := env("APP_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid APP_SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and supported.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("config: listen addr is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unsupported log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unsupported log format %q", c.LogFormat)
	}
	if c.TracingEnabled && strings.TrimSpace(c.TracingEndpoint) == "" {
		return fmt.Errorf("config: tracing endpoint is required when tracing is enabled")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// newLogger builds the process logger from the log settings.
func newLogger(c Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
