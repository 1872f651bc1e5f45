// Package config handles configuration loading for the test runner
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL  = "http://localhost:3000"
	defaultTimeout  = "10s"
	defaultLogLevel = "info"

	apiPathPrefix = "/api"
)

// Config holds the runner configuration
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	LogLevel logrus.Level
}

// Load reads configuration from environment variables and the .env file in the working
// directory, if there is one. Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		BaseURL: strings.TrimSuffix(getEnv("AIPMA_BASE_URL", defaultBaseURL), "/"),
	}

	timeout, err := time.ParseDuration(getEnv("AIPMA_TIMEOUT", defaultTimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid AIPMA_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid AIPMA_TIMEOUT: must be positive, got %s", timeout)
	}
	cfg.Timeout = timeout

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// APIBaseURL is the root of the REST API, which the deployment serves under /api.
func (c *Config) APIBaseURL() string {
	return c.BaseURL + apiPathPrefix
}

func (c *Config) String() string {
	return fmt.Sprintf(`Current Configuration:
======================
Base URL:    %s
API URL:     %s
Timeout:     %s
Log Level:   %s`,
		c.BaseURL,
		c.APIBaseURL(),
		c.Timeout,
		c.LogLevel,
	)
}
