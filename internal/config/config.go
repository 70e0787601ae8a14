// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultTimeoutSeconds = 30
	configDirName         = ".profolio"
	tokenFileName         = "token"
	themeFileName         = "theme"
	configFileName        = "config.json"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	APIBaseURL     string `json:"api_base_url,omitempty"`    // API root including the path prefix, e.g. https://app.profolio.dev/api
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Per-request HTTP timeout
	TokenPath      string `json:"token_path,omitempty"`      // Bearer token file location
	ThemeCachePath string `json:"theme_cache_path,omitempty"`
	Verbose        bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// Load reads the configuration file at path when it exists, then applies
// environment overrides and defaults. An empty path means the default
// location under the user's home directory.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config JSON %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// No config file is fine; env and defaults cover it.
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config error: api_base_url is required (set PROFOLIO_API_URL or the config file)")
	}
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config error: api_base_url is not a valid URL: %s", c.APIBaseURL)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("config error: timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PROFOLIO_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("PROFOLIO_TOKEN_PATH"); v != "" {
		c.TokenPath = v
	}
	if v := os.Getenv("PROFOLIO_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			c.TimeoutSeconds = seconds
		}
	}
	if v := os.Getenv("PROFOLIO_VERBOSE"); v != "" {
		if verbose, err := strconv.ParseBool(v); err == nil {
			c.Verbose = verbose
		}
	}
}

func (c *Config) applyDefaults() {
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.TokenPath == "" {
		c.TokenPath = defaultStatePath(tokenFileName)
	}
	if c.ThemeCachePath == "" {
		c.ThemeCachePath = defaultStatePath(themeFileName)
	}
}

func defaultConfigPath() string {
	return defaultStatePath(configFileName)
}

func defaultStatePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, name)
}
