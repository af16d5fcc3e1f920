// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"

	"github.com/awslogin/awslogin/lib/awscli"
	"github.com/awslogin/awslogin/lib/config"
)

// GlobalParams holds the flags shared by every subcommand that talks
// to AWS. Subcommand parameter structs embed it so the flags are
// registered alongside their own.
type GlobalParams struct {
	Profile string `flag:"profile" desc:"AWS CLI profile forwarded to every aws invocation"`
	Region  string `flag:"region"  desc:"AWS region forwarded to every aws invocation"`
	Debug   bool   `flag:"debug"   desc:"enable debug logging"`
}

// AWS returns an aws CLI wrapper carrying the forwarded profile and
// region. An empty --region falls back to the configured
// default_region; a config that fails to load is treated as absent
// here and surfaces where the command loads it for real.
func (g *GlobalParams) AWS() *awscli.CLI {
	region := g.Region
	if region == "" {
		if cfg, err := config.Load(); err == nil {
			region = cfg.DefaultRegion
		}
	}
	return awscli.New(awscli.NewExecRunner(), g.Profile, region)
}

// Logger returns the command logger at the level selected by --debug.
func (g *GlobalParams) Logger() *slog.Logger {
	return NewCommandLogger(g.Debug)
}
