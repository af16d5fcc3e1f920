// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package profile implements the "use" command: selecting the active
// AWS profile for the current shell session.
package profile

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	"github.com/awslogin/awslogin/lib/awscli"
	"github.com/awslogin/awslogin/lib/config"
	"github.com/awslogin/awslogin/lib/picker"
	"github.com/awslogin/awslogin/lib/shellenv"
	"github.com/awslogin/awslogin/lib/template"
)

type useParams struct {
	cli.GlobalParams
}

// UseCommand returns the "use" command.
func UseCommand() *cli.Command {
	var params useParams

	return &cli.Command{
		Name:    "use",
		Summary: "Select the active AWS profile",
		Description: `Select the AWS profile for the current shell session.

Candidates are the enabled templates from templates.json merged with
the profiles the aws CLI already knows about. Selecting a template
that has no matching profile resolves its inheritance chain and
writes the settings via "aws configure set" first.

When the shell integration is installed, the selection is applied to
the calling shell by exporting AWS_PROFILE. Without the integration,
the export statement is printed for manual evaluation.`,
		Usage: "awslogin use [flags] [name]",
		Examples: []cli.Example{
			{Description: "Pick a profile interactively", Command: "awslogin use"},
			{Description: "Switch to a named profile", Command: "awslogin use staging"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("use", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected at most 1 positional argument, got %d", len(args))
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runUse(ctx, &params, name)
		},
	}
}

func runUse(ctx context.Context, params *useParams, name string) error {
	logger := params.Logger()
	aws := params.AWS()

	configuration, err := config.Load()
	if err != nil {
		return err
	}
	templatesPath, err := configuration.TemplatesPath()
	if err != nil {
		return err
	}
	collection, err := template.Load(templatesPath)
	if err != nil {
		return err
	}

	profiles, err := aws.ListProfiles(ctx)
	if err != nil {
		return err
	}

	candidates := candidateNames(collection, profiles)
	if len(candidates) == 0 {
		return fmt.Errorf("no templates or AWS CLI profiles found: add templates to %s or run 'aws configure'", templatesPath)
	}

	if name == "" {
		name, err = picker.Select("Select an AWS profile", candidates)
		if err != nil {
			return err
		}
	}

	exists := false
	for _, profile := range profiles {
		if profile == name {
			exists = true
			break
		}
	}

	if !exists {
		if _, known := collection[name]; !known {
			return fmt.Errorf("%q is neither a configured profile nor a template", name)
		}
		logger.Debug("installing profile from template", "name", name)
		if err := installProfile(ctx, aws, collection, name); err != nil {
			return err
		}
	}

	return exportProfile(name)
}

// candidateNames merges the enabled template names with the existing
// AWS CLI profiles, deduplicated and sorted.
func candidateNames(collection template.Collection, profiles []string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range collection.Names(true) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, name := range profiles {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// installProfile resolves the template's inheritance chain and writes
// each setting into the aws CLI configuration. Keys are written in
// sorted order so repeated runs touch the config file identically.
func installProfile(ctx context.Context, aws *awscli.CLI, collection template.Collection, name string) error {
	settings, err := template.Resolve(collection, name)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := aws.ConfigureSet(ctx, name, key, settings[key].String()); err != nil {
			return err
		}
	}
	return nil
}

// exportProfile applies the selection to the calling shell through
// the handoff file, or prints the export statement when the shell
// integration is not installed.
func exportProfile(name string) error {
	handoff, err := shellenv.FromEnvironment()
	if err != nil {
		return err
	}
	if handoff == nil {
		fmt.Fprintln(os.Stderr, "shell integration is not installed; run the following in your shell:")
		fmt.Printf("export AWS_PROFILE=%q\n", name)
		return nil
	}

	emitter, err := shellenv.Open(handoff)
	if err != nil {
		return err
	}
	if err := emitter.Export("AWS_PROFILE", name); err != nil {
		emitter.Close()
		return err
	}
	if err := emitter.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "switched to profile %s\n", name)
	return nil
}
