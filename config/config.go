package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the application configuration, optionally loaded from a YAML file.
type Config struct {
	// Strict also reports input that is not already canonical: redundant
	// maxlength, non-normalized addresses and out-of-order lines.
	Strict bool `yaml:"strict"`
	// LogLevel is any level understood by logrus (debug, info, warn...).
	LogLevel string `yaml:"logLevel"`
	// LogFormat selects the log formatter, "text" or "json".
	LogFormat string `yaml:"logFormat"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads and unmarshals the configuration from the specified YAML file path.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", filePath, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}

// Validate checks the logging settings.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// Formatter returns the logrus formatter matching LogFormat.
func (c *Config) Formatter() logrus.Formatter {
	if c.LogFormat == "json" {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{DisableTimestamp: true}
}
