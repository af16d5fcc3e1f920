// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package sso implements the "sso" command: logging the active
// profile in through AWS IAM Identity Center.
package sso

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	"github.com/awslogin/awslogin/lib/awscli"
	"github.com/awslogin/awslogin/lib/clock"
	"github.com/awslogin/awslogin/lib/config"
	"github.com/awslogin/awslogin/lib/ssoflow"
)

// ssoSettings are the profile settings that must all be present for
// "aws sso login" to work without prior configuration.
var ssoSettings = []string{"sso_start_url", "sso_region", "sso_account_id", "sso_role_name"}

type ssoParams struct {
	cli.GlobalParams
}

// Command returns the "sso" command.
func Command() *cli.Command {
	var params ssoParams

	return &cli.Command{
		Name:    "sso",
		Summary: "Log in via AWS IAM Identity Center",
		Description: `Log the active profile in through AWS IAM Identity Center (SSO).

A profile that already carries the sso_* settings goes straight to
"aws sso login". A profile without them runs "aws configure sso"
first, which configures the settings interactively and performs the
initial login.

After the login completes, the credentials are verified by polling
STS until the session is usable.`,
		Usage: "awslogin sso [flags] [profile]",
		Examples: []cli.Example{
			{Description: "Log in the current profile", Command: "awslogin sso"},
			{Description: "Log in a named profile", Command: "awslogin sso staging"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("sso", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected at most 1 positional argument, got %d", len(args))
			}
			if len(args) == 1 {
				params.Profile = args[0]
			}
			return runSSO(ctx, &params)
		},
	}
}

func runSSO(ctx context.Context, params *ssoParams) error {
	logger := params.Logger()
	aws := params.AWS()

	configuration, err := config.Load()
	if err != nil {
		return err
	}

	configured, err := hasSSOConfiguration(ctx, aws)
	if err != nil {
		return err
	}

	if configured {
		logger.Debug("profile has sso settings, running sso login")
		if err := aws.PassThrough(ctx, "sso", "login"); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(os.Stderr, "the profile has no SSO configuration yet; starting the interactive setup")
		if err := aws.PassThrough(ctx, "configure", "sso"); err != nil {
			return err
		}
	}

	return verifySession(ctx, aws, clock.Real(),
		time.Duration(configuration.SSO.PollInterval),
		time.Duration(configuration.SSO.Expiry))
}

// hasSSOConfiguration reports whether the active profile carries all
// of the sso_* settings.
func hasSSOConfiguration(ctx context.Context, aws *awscli.CLI) (bool, error) {
	for _, key := range ssoSettings {
		value, err := aws.ConfigureGet(ctx, key)
		if err != nil {
			return false, err
		}
		if value == "" {
			return false, nil
		}
	}
	return true, nil
}

// verifySession polls STS until the freshly established SSO session
// yields usable credentials. Token propagation is normally instant
// but can lag a few seconds behind the browser flow.
func verifySession(ctx context.Context, aws *awscli.CLI, clk clock.Clock, interval, expiresIn time.Duration) error {
	check := func(ctx context.Context) (ssoflow.Status, error) {
		if _, err := aws.AccountID(ctx); err != nil {
			return ssoflow.StatusPending, nil
		}
		return ssoflow.StatusAuthorized, nil
	}

	if err := ssoflow.Wait(ctx, clk, check, interval, expiresIn); err != nil {
		return fmt.Errorf("the SSO session did not become usable: %w", err)
	}
	fmt.Fprintln(os.Stderr, "SSO session established")
	return nil
}
