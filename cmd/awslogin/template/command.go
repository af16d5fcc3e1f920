// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package template implements the awslogin template subcommands for
// managing profile templates stored in templates.json. Templates
// define AWS CLI profile settings and support chained inheritance
// through the extends field.
package template

import (
	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	"github.com/awslogin/awslogin/lib/config"
)

// Command returns the "template" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "template",
		Summary: "Manage profile templates",
		Description: `Manage the profile templates in templates.json.

A template holds AWS CLI profile settings as scalar key/value pairs.
A template may extend another template; resolving a template walks
the extends chain and overlays each descendant's settings, so the
most derived value wins. Disabled templates are hidden from profile
selection but still contribute settings to templates that extend
them.`,
		Subcommands: []*cli.Command{
			listCommand(),
			showCommand(),
			pullCommand(),
		},
	}
}

// templatesPath returns the on-disk location of templates.json,
// honoring the config file override.
func templatesPath() (string, error) {
	configuration, err := config.Load()
	if err != nil {
		return "", err
	}
	return configuration.TemplatesPath()
}
