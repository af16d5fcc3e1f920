// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DefaultRegion != "" {
		t.Errorf("expected no default region, got %s", cfg.DefaultRegion)
	}
	if got := time.Duration(cfg.SSO.PollInterval); got != 5*time.Second {
		t.Errorf("expected poll_interval=5s, got %s", got)
	}
	if got := time.Duration(cfg.SSO.Expiry); got != 10*time.Minute {
		t.Errorf("expected expiry=10m, got %s", got)
	}
}

func TestLoad_MissingFileYieldsDefault(t *testing.T) {
	t.Setenv(PathVariable, filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if time.Duration(cfg.SSO.PollInterval) != 5*time.Second {
		t.Error("expected default configuration for a missing file")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
default_region: eu-west-1
templates:
  pull_url: https://example.com/templates.json
sso:
  poll_interval: 2s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if cfg.DefaultRegion != "eu-west-1" {
		t.Errorf("expected default_region=eu-west-1, got %s", cfg.DefaultRegion)
	}
	if cfg.Templates.PullURL != "https://example.com/templates.json" {
		t.Errorf("unexpected pull_url: %s", cfg.Templates.PullURL)
	}
	if got := time.Duration(cfg.SSO.PollInterval); got != 2*time.Second {
		t.Errorf("expected poll_interval=2s, got %s", got)
	}
	// Unset fields keep their defaults.
	if got := time.Duration(cfg.SSO.Expiry); got != 10*time.Minute {
		t.Errorf("expected default expiry, got %s", got)
	}
}

func TestLoadFile_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sso:\n  poll_interval: soon\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for an unparseable duration")
	}
}

func TestTemplatesPath_Override(t *testing.T) {
	cfg := Default()
	cfg.Templates.Path = "/srv/shared/templates.json"

	path, err := cfg.TemplatesPath()
	if err != nil {
		t.Fatalf("TemplatesPath() failed: %v", err)
	}
	if path != "/srv/shared/templates.json" {
		t.Errorf("expected override to win, got %s", path)
	}
}

func TestTemplatesPath_Default(t *testing.T) {
	path, err := Default().TemplatesPath()
	if err != nil {
		t.Fatalf("TemplatesPath() failed: %v", err)
	}
	if filepath.Base(path) != "templates.json" {
		t.Errorf("expected templates.json, got %s", path)
	}
	if filepath.Base(filepath.Dir(path)) != "awslogin" {
		t.Errorf("expected awslogin config directory, got %s", path)
	}
}
