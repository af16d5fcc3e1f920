// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading and config-path
// discovery for awslogin.
//
// Configuration is optional: everything has a working default.
// When present, the file lives at <user-config-dir>/awslogin/config.yaml
// or wherever the AWSLOGIN_CONFIG environment variable points. There
// is no other search path.
//
// The package also owns the location of the template document
// (templates.json in the same directory), so every command agrees on
// where the collection lives.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// PathVariable names the environment variable overriding the config
// file location.
const PathVariable = "AWSLOGIN_CONFIG"

// Config is the application configuration.
type Config struct {
	// DefaultRegion is forwarded to aws invocations when the user
	// passes no --region flag. Empty defers to the AWS CLI's own
	// resolution.
	DefaultRegion string `yaml:"default_region"`

	// Templates configures the template document.
	Templates TemplatesConfig `yaml:"templates"`

	// SSO configures the device authorization wait.
	SSO SSOConfig `yaml:"sso"`
}

// TemplatesConfig configures the template document.
type TemplatesConfig struct {
	// Path overrides the template document location. Empty means
	// templates.json inside the awslogin config directory.
	Path string `yaml:"path"`

	// PullURL is the default URL for "template pull" when no URL
	// argument is given.
	PullURL string `yaml:"pull_url"`
}

// SSOConfig configures the device authorization wait.
type SSOConfig struct {
	// PollInterval is the delay between authorization checks.
	PollInterval Duration `yaml:"poll_interval"`

	// Expiry bounds the whole wait; a lapsed window fails the
	// command and the user retries from the start.
	Expiry Duration `yaml:"expiry"`
}

// Duration is a time.Duration that decodes from YAML strings like
// "5s" or "10m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		SSO: SSOConfig{
			PollInterval: Duration(5 * time.Second),
			Expiry:       Duration(10 * time.Minute),
		},
	}
}

// Load reads the configuration from AWSLOGIN_CONFIG or the default
// location. A missing file yields [Default] — configuration is never
// required.
func Load() (*Config, error) {
	path := os.Getenv(PathVariable)
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from an explicit path. Unset
// fields keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Dir returns the awslogin configuration directory. The directory is
// not created; writers create it on demand.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determining config directory: %w", err)
	}
	return filepath.Join(base, "awslogin"), nil
}

// TemplatesPath returns the template document location, honoring the
// configured override.
func (c *Config) TemplatesPath() (string, error) {
	if c.Templates.Path != "" {
		return c.Templates.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "templates.json"), nil
}
