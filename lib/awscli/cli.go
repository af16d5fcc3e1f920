// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package awscli

import (
	"context"
	"fmt"
	"strings"
)

// CLI wraps the aws executable with profile and region options
// applied to every invocation, mirroring how the user's --profile and
// --region flags are forwarded.
type CLI struct {
	runner  Runner
	profile string
	region  string
}

// New returns a CLI using runner. profile and region may be empty, in
// which case the aws CLI falls back to its own configuration.
func New(runner Runner, profile, region string) *CLI {
	return &CLI{runner: runner, profile: profile, region: region}
}

// Runner exposes the underlying runner for invoking other programs
// (docker, kubectl) with the same execution seam.
func (c *CLI) Runner() Runner {
	return c.runner
}

// Run executes an aws subcommand and returns its stdout.
func (c *CLI) Run(ctx context.Context, args ...string) (string, error) {
	return c.runner.Run(ctx, "aws", c.withOptions(args)...)
}

// PassThrough executes an aws subcommand with inherited stdio.
func (c *CLI) PassThrough(ctx context.Context, args ...string) error {
	return c.runner.PassThrough(ctx, "aws", c.withOptions(args)...)
}

// withOptions appends --profile and --region when configured. They go
// after the subcommand arguments; the aws CLI accepts global options
// in either position.
func (c *CLI) withOptions(args []string) []string {
	full := make([]string, 0, len(args)+4)
	full = append(full, args...)
	if c.profile != "" {
		full = append(full, "--profile", c.profile)
	}
	if c.region != "" {
		full = append(full, "--region", c.region)
	}
	return full
}

// ListProfiles returns the names of the profiles the aws CLI already
// knows about.
func (c *CLI) ListProfiles(ctx context.Context) ([]string, error) {
	output, err := c.Run(ctx, "configure", "list-profiles")
	if err != nil {
		return nil, fmt.Errorf("listing AWS CLI profiles: %w", err)
	}
	return strings.Fields(output), nil
}

// ProfileExists reports whether the named profile is already
// configured in the aws CLI.
func (c *CLI) ProfileExists(ctx context.Context, name string) (bool, error) {
	profiles, err := c.ListProfiles(ctx)
	if err != nil {
		return false, err
	}
	for _, profile := range profiles {
		if profile == name {
			return true, nil
		}
	}
	return false, nil
}

// ConfigureSet writes one setting into the named profile via
// "aws configure set".
func (c *CLI) ConfigureSet(ctx context.Context, profile, key, value string) error {
	_, err := c.runner.Run(ctx, "aws", "--profile", profile, "configure", "set", key, value)
	if err != nil {
		return fmt.Errorf("setting the profile setting %s: %w", key, err)
	}
	return nil
}

// ConfigureGet reads one setting for the active profile. A missing
// setting yields an empty string: the aws CLI exits non-zero with no
// stderr for absent keys, which is not an error for probing callers.
func (c *CLI) ConfigureGet(ctx context.Context, key string) (string, error) {
	output, err := c.Run(ctx, "configure", "get", key)
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(output), nil
}

// AccountID returns the account ID of the active credentials via STS.
func (c *CLI) AccountID(ctx context.Context) (string, error) {
	output, err := c.Run(ctx, "sts", "get-caller-identity", "--query", "Account", "--output", "text")
	if err != nil {
		return "", fmt.Errorf("getting account ID: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// Region returns the effective region: the forwarded --region flag if
// set, otherwise the active profile's configured region.
func (c *CLI) Region(ctx context.Context) (string, error) {
	if c.region != "" {
		return c.region, nil
	}
	region, err := c.ConfigureGet(ctx, "region")
	if err != nil {
		return "", err
	}
	if region == "" {
		return "", fmt.Errorf("the region could not be determined: pass --region or configure the profile")
	}
	return region, nil
}
