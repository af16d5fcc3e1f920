// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	libtmpl "github.com/awslogin/awslogin/lib/template"
)

type showParams struct {
	Resolved bool `flag:"resolved" desc:"show the settings after resolving the extends chain"`
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show one template",
		Description: `Show a template's own settings, or with --resolved the effective
settings after walking its extends chain.`,
		Usage: "awslogin template show [flags] <name>",
		Examples: []cli.Example{
			{Description: "Show a template as written", Command: "awslogin template show dev"},
			{Description: "Show the effective settings", Command: "awslogin template show --resolved dev"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(_ context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected 1 positional argument, got %d", len(args))
			}
			name := args[0]

			path, err := templatesPath()
			if err != nil {
				return err
			}
			collection, err := libtmpl.Load(path)
			if err != nil {
				return err
			}

			tmpl, exists := collection[name]
			if !exists {
				return &libtmpl.UnknownTemplateError{Name: name}
			}

			settings := tmpl.Settings
			if params.Resolved {
				settings, err = libtmpl.Resolve(collection, name)
				if err != nil {
					return err
				}
			}

			fmt.Printf("name:    %s\n", name)
			fmt.Printf("enabled: %t\n", tmpl.Enabled)
			if tmpl.Extends != "" {
				fmt.Printf("extends: %s\n", tmpl.Extends)
			}

			if len(settings) == 0 {
				fmt.Println("settings: (none)")
				return nil
			}

			keys := make([]string, 0, len(settings))
			for key := range settings {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			fmt.Println("settings:")
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			for _, key := range keys {
				fmt.Fprintf(tw, "  %s\t%s\n", key, settings[key].String())
			}
			return tw.Flush()
		},
	}
}
