// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete awslogin CLI command tree.
package commands

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	ecrcmd "github.com/awslogin/awslogin/cmd/awslogin/ecr"
	ekscmd "github.com/awslogin/awslogin/cmd/awslogin/eks"
	profilecmd "github.com/awslogin/awslogin/cmd/awslogin/profile"
	rdscmd "github.com/awslogin/awslogin/cmd/awslogin/rds"
	shellcmd "github.com/awslogin/awslogin/cmd/awslogin/shell"
	ssocmd "github.com/awslogin/awslogin/cmd/awslogin/sso"
	templatecmd "github.com/awslogin/awslogin/cmd/awslogin/template"
)

// Root builds and returns the complete awslogin command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "awslogin",
		Summary: "Switch AWS CLI profiles from your shell",
		Description: `awslogin: switch AWS CLI profiles and log in to AWS services.

Profiles are defined as templates with chained inheritance, resolved
and written into the aws CLI configuration on first use. With the
shell integration installed, selections apply to the current shell
session.`,
		Subcommands: []*cli.Command{
			profilecmd.UseCommand(),
			templatecmd.Command(),
			shellcmd.Command(),
			ssocmd.Command(),
			ecrcmd.Command(),
			ekscmd.Command(),
			rdscmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(context.Context, []string) error {
					fmt.Printf("awslogin %s\n", version())
					return nil
				},
			},
		},
	}
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}
	return info.Main.Version
}
