// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package ecr implements the "ecr" command: authenticating docker
// against the account's Elastic Container Registry.
package ecr

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	"github.com/awslogin/awslogin/lib/awscli"
)

type ecrParams struct {
	cli.GlobalParams
}

// Command returns the "ecr" command.
func Command() *cli.Command {
	var params ecrParams

	return &cli.Command{
		Name:    "ecr",
		Summary: "Log docker in to the account's container registry",
		Description: `Authenticate docker against the Elastic Container Registry of the
active profile's account.

The registry URI is derived from the caller identity and region, the
login password comes from "aws ecr get-login-password", and it is
handed to "docker login" on stdin; it never appears on a command
line.`,
		Usage: "awslogin ecr [flags]",
		Examples: []cli.Example{
			{Description: "Log in with the current profile", Command: "awslogin ecr"},
			{Description: "Log in to another region's registry", Command: "awslogin ecr --region eu-central-1"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("ecr", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("expected no positional arguments, got %d", len(args))
			}
			return runECR(ctx, &params)
		},
	}
}

func runECR(ctx context.Context, params *ecrParams) error {
	logger := params.Logger()
	aws := params.AWS()

	account, err := aws.AccountID(ctx)
	if err != nil {
		return err
	}
	region, err := aws.Region(ctx)
	if err != nil {
		return err
	}

	registry := registryURI(account, region)
	logger.Debug("logging in to registry", "registry", registry)

	password, err := aws.Run(ctx, "ecr", "get-login-password")
	if err != nil {
		return fmt.Errorf("getting the ECR login password: %w", err)
	}

	if err := dockerLogin(ctx, aws.Runner(), registry, strings.TrimSpace(password)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "docker is logged in to %s\n", registry)
	return nil
}

// registryURI builds the default private registry hostname for an
// account and region.
func registryURI(account, region string) string {
	return fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com", account, region)
}

// dockerLogin feeds the registry password to docker on stdin.
func dockerLogin(ctx context.Context, runner awscli.Runner, registry, password string) error {
	err := runner.RunInput(ctx, password, "docker", "login", "--username", "AWS", "--password-stdin", registry)
	if err != nil {
		return fmt.Errorf("docker login to %s: %w", registry, err)
	}
	return nil
}
