// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	libtmpl "github.com/awslogin/awslogin/lib/template"
)

type listParams struct {
	All        bool `flag:"all"  desc:"include disabled templates"`
	OutputJSON bool `flag:"json" desc:"output as JSON instead of a table"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List templates",
		Description: `List the templates in templates.json. Disabled templates are
hidden unless --all is given.`,
		Usage: "awslogin template list [flags]",
		Examples: []cli.Example{
			{Description: "List enabled templates", Command: "awslogin template list"},
			{Description: "List every template as JSON", Command: "awslogin template list --all --json"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(_ context.Context, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("expected no positional arguments, got %d", len(args))
			}

			path, err := templatesPath()
			if err != nil {
				return err
			}
			collection, err := libtmpl.Load(path)
			if err != nil {
				return err
			}

			names := collection.Names(!params.All)

			if params.OutputJSON {
				type entry struct {
					Name    string `json:"name"`
					Enabled bool   `json:"enabled"`
					Extends string `json:"extends,omitempty"`
				}
				entries := make([]entry, 0, len(names))
				for _, name := range names {
					tmpl := collection[name]
					entries = append(entries, entry{
						Name:    name,
						Enabled: tmpl.Enabled,
						Extends: tmpl.Extends,
					})
				}
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal JSON: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			if len(names) == 0 {
				fmt.Fprintf(os.Stderr, "no templates in %s\n", path)
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "NAME\tENABLED\tEXTENDS")
			for _, name := range names {
				tmpl := collection[name]
				fmt.Fprintf(tw, "%s\t%t\t%s\n", name, tmpl.Enabled, tmpl.Extends)
			}
			return tw.Flush()
		},
	}
}
