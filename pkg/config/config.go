// Package config loads toolkit defaults from a YAML file. It handles the
// config.yaml format and converts each section to the option type of the
// package it configures.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cecil-the-coder/go-toolkit/pkg/fetch"
	"github.com/cecil-the-coder/go-toolkit/pkg/format"
	"github.com/cecil-the-coder/go-toolkit/pkg/retry"
	"github.com/cecil-the-coder/go-toolkit/pkg/shell"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// =============================================================================
// Config Structures
// =============================================================================

// Config represents the complete configuration structure
type Config struct {
	Fetch  FetchConfig  `yaml:"fetch"`
	Retry  RetryConfig  `yaml:"retry"`
	Shell  ShellConfig  `yaml:"shell"`
	Format FormatConfig `yaml:"format"`
}

// FetchConfig configures the download client
type FetchConfig struct {
	Timeout   time.Duration     `yaml:"timeout"`
	UserAgent string            `yaml:"user_agent"`
	Headers   map[string]string `yaml:"headers,omitempty"`
}

// RetryConfig configures the default retry policy
type RetryConfig struct {
	Attempts int           `yaml:"attempts"`
	Delay    time.Duration `yaml:"delay"`
}

// ShellConfig configures command execution
type ShellConfig struct {
	// Shell binary; empty uses the platform default
	Shell string `yaml:"shell,omitempty"`
	Dir   string `yaml:"dir,omitempty"`
}

// FormatConfig configures human-readable output
type FormatConfig struct {
	// Locale for relative times: "en" or "id"
	Locale string `yaml:"locale"`
}

// =============================================================================
// Configuration Loading
// =============================================================================

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load loads and parses a YAML configuration file. A missing file yields an
// error wrapping fs.ErrNotExist.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML, fills unset fields with defaults and validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults sets defaults for unset fields
func (c *Config) ApplyDefaults() {
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = fetch.DefaultUserAgent
	}
	if c.Retry.Attempts == 0 {
		c.Retry.Attempts = retry.DefaultPolicy().Attempts
	}
	if c.Format.Locale == "" {
		c.Format.Locale = "en"
	}
}

// Validate checks the configuration for values no component accepts
func (c *Config) Validate() error {
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("%w: fetch.timeout cannot be negative", ErrInvalidConfig)
	}
	if c.Retry.Attempts < 0 {
		return fmt.Errorf("%w: retry.attempts cannot be negative", ErrInvalidConfig)
	}
	if err := c.RetryPolicy().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Format.Locale {
	case "en", "id":
	default:
		return fmt.Errorf("%w: unsupported format.locale %q", ErrInvalidConfig, c.Format.Locale)
	}
	return nil
}

// =============================================================================
// Option Construction
// =============================================================================

// FetchConfig converts the fetch section to a fetch.Config
func (c *Config) FetchConfig() fetch.Config {
	var headers map[string]string
	if len(c.Fetch.Headers) > 0 {
		headers = make(map[string]string, len(c.Fetch.Headers))
		for k, v := range c.Fetch.Headers {
			headers[k] = v
		}
	}
	return fetch.Config{
		Timeout:   c.Fetch.Timeout,
		UserAgent: c.Fetch.UserAgent,
		Headers:   headers,
	}
}

// RetryPolicy converts the retry section to a retry.Policy
func (c *Config) RetryPolicy() *retry.Policy {
	return &retry.Policy{
		Attempts: c.Retry.Attempts,
		Delay:    c.Retry.Delay,
	}
}

// ShellOptions converts the shell section to shell.Options
func (c *Config) ShellOptions() shell.Options {
	return shell.Options{
		Shell: c.Shell.Shell,
		Dir:   c.Shell.Dir,
	}
}

// TimeLabels returns the relative-time labels for the configured locale
func (c *Config) TimeLabels() format.Labels {
	return format.LabelsFor(c.Format.Locale)
}
