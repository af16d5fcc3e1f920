// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_AllTypes(t *testing.T) {
	type params struct {
		Profile  string        `flag:"profile,p" desc:"profile name" default:"default"`
		Debug    bool          `flag:"debug" desc:"verbose logging"`
		Port     int           `flag:"port" default:"5432"`
		Interval time.Duration `flag:"interval" default:"5s"`
		Tags     []string      `flag:"tag"`
		Ignored  string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	err := flagSet.Parse([]string{
		"--profile", "dev",
		"--debug",
		"--interval", "30s",
		"--tag", "a", "--tag", "b",
	})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if p.Profile != "dev" {
		t.Errorf("Profile = %q, want %q", p.Profile, "dev")
	}
	if !p.Debug {
		t.Error("Debug = false, want true")
	}
	if p.Port != 5432 {
		t.Errorf("Port = %d, want default 5432", p.Port)
	}
	if p.Interval != 30*time.Second {
		t.Errorf("Interval = %v, want 30s", p.Interval)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "a" || p.Tags[1] != "b" {
		t.Errorf("Tags = %v, want [a b]", p.Tags)
	}
	if flagSet.Lookup("ignored") != nil {
		t.Error("untagged field should not be bound")
	}
}

func TestBindFlags_Shorthand(t *testing.T) {
	type params struct {
		Profile string `flag:"profile,p"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	if err := flagSet.Parse([]string{"-p", "staging"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.Profile != "staging" {
		t.Errorf("Profile = %q, want %q", p.Profile, "staging")
	}
}

func TestBindFlags_EmbeddedStruct(t *testing.T) {
	type common struct {
		Region string `flag:"region"`
	}
	type params struct {
		common
		Cluster string `flag:"cluster"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	if err := flagSet.Parse([]string{"--region", "eu-west-1", "--cluster", "prod"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.Region != "eu-west-1" {
		t.Errorf("Region = %q, want %q", p.Region, "eu-west-1")
	}
	if p.Cluster != "prod" {
		t.Errorf("Cluster = %q, want %q", p.Cluster, "prod")
	}
}

func TestBindFlags_RejectsNonPointer(t *testing.T) {
	type params struct{}
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(params{}, flagSet); err == nil {
		t.Error("expected error for non-pointer params")
	}
}

func TestBindFlags_UnsupportedType(t *testing.T) {
	type params struct {
		Ratio float64 `flag:"ratio"`
	}
	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err == nil {
		t.Error("expected error for unsupported field type")
	}
}

func TestFlagsFromParams_PanicsOnBadInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-struct params")
		}
	}()
	FlagsFromParams("test", 42)
}
