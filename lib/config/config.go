// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "USERTABLE_CONFIG"

// DefaultSourceURL is the public member list the table loads when no
// other source is configured.
const DefaultSourceURL = "https://geektrust.s3-ap-southeast-1.amazonaws.com/adminui-problem/members.json"

// Config is the complete usertable configuration.
type Config struct {
	// Source selects where the user records come from.
	Source SourceConfig `yaml:"source"`

	// Table configures the in-memory table.
	Table TableConfig `yaml:"table"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`

	// UI configures the interactive terminal view.
	UI UIConfig `yaml:"ui"`
}

// SourceConfig selects the record source. When File is set it takes
// precedence over URL.
type SourceConfig struct {
	// URL is fetched once with a single GET.
	// Default: DefaultSourceURL
	URL string `yaml:"url"`

	// File is a local .json or .jsonc file holding the same array the
	// URL serves. Supports ${VAR} expansion.
	File string `yaml:"file"`
}

// TableConfig configures pagination.
type TableConfig struct {
	// PageSize is the number of rows per page. Must be at least 1.
	// Default: 10
	PageSize int `yaml:"page_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Output is a file that receives every record as JSON lines, in
	// addition to the status line. Empty disables file logging.
	// Supports ${VAR} expansion.
	Output string `yaml:"output"`
}

// UIConfig configures the terminal program.
type UIConfig struct {
	// Mouse enables wheel scrolling and click handling.
	// Default: true
	Mouse bool `yaml:"mouse"`

	// AltScreen runs the view in the terminal's alternate screen.
	// Default: true
	AltScreen bool `yaml:"alt_screen"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL: DefaultSourceURL,
		},
		Table: TableConfig{
			PageSize: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			Mouse:     true,
			AltScreen: true,
		},
	}
}

// Load loads the file named by USERTABLE_CONFIG, or returns [Default]
// when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		cfg := Default()
		cfg.expandVariables()
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path, layered over [Default].
// Keys absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// source and log paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Source.URL = expandVars(c.Source.URL, vars)
	c.Source.File = expandVars(c.Source.File, vars)
	c.Log.Output = expandVars(c.Log.Output, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// SlogLevel converts Log.Level to a slog.Level. Validate rejects
// unknown names, so callers that validated first can ignore the error.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Source.File == "" {
		if c.Source.URL == "" {
			errs = append(errs, fmt.Errorf("source.url or source.file is required"))
		} else if parsed, err := url.Parse(c.Source.URL); err != nil {
			errs = append(errs, fmt.Errorf("source.url: %w", err))
		} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
			errs = append(errs, fmt.Errorf("source.url must be http or https, got %q", c.Source.URL))
		} else if parsed.Host == "" {
			errs = append(errs, fmt.Errorf("source.url has no host: %q", c.Source.URL))
		}
	}

	if c.Table.PageSize < 1 {
		errs = append(errs, fmt.Errorf("table.page_size must be at least 1, got %d", c.Table.PageSize))
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
