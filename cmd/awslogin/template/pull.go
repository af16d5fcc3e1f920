// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	"github.com/awslogin/awslogin/lib/config"
	"github.com/awslogin/awslogin/lib/picker"
	libtmpl "github.com/awslogin/awslogin/lib/template"
)

// Resolution choices when a pull collides with an existing local
// collection.
const (
	resolveCancel  = "cancel"
	resolveMerge   = "merge"
	resolveReplace = "replace"
)

// maxDocumentSize bounds the remote template document. Template
// collections are small; anything larger is a misdirected URL.
const maxDocumentSize = 1 << 20

type pullParams struct {
	Resolve string `flag:"resolve" desc:"conflict resolution when local templates exist: cancel, merge, or replace"`
	Debug   bool   `flag:"debug"   desc:"enable debug logging"`
}

func pullCommand() *cli.Command {
	var params pullParams

	return &cli.Command{
		Name:    "pull",
		Summary: "Fetch templates from a remote URL",
		Description: `Fetch a template document from a URL and persist it locally.

When templates already exist locally, the pull must decide what to do
with them: cancel (keep local, discard remote), merge (union by name,
remote wins on collision), or replace (discard local). Without
--resolve the choice is prompted interactively.

With no URL argument, the default pull URL from the config file is
used.`,
		Usage: "awslogin template pull [flags] [url]",
		Examples: []cli.Example{
			{Description: "Pull from the team's template server", Command: "awslogin template pull https://example.com/templates.json"},
			{Description: "Replace local templates without prompting", Command: "awslogin template pull --resolve replace https://example.com/templates.json"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("pull", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected at most 1 positional argument, got %d", len(args))
			}
			url := ""
			if len(args) == 1 {
				url = args[0]
			}
			return runPull(ctx, &params, url)
		},
	}
}

func runPull(ctx context.Context, params *pullParams, url string) error {
	logger := cli.NewCommandLogger(params.Debug)

	configuration, err := config.Load()
	if err != nil {
		return err
	}
	if url == "" {
		url = configuration.Templates.PullURL
		if url == "" {
			return fmt.Errorf("no URL given and no default pull URL configured")
		}
	}

	remote, err := fetchCollection(ctx, url)
	if err != nil {
		return err
	}
	logger.Debug("fetched remote templates", "url", url, "count", len(remote))

	path, err := configuration.TemplatesPath()
	if err != nil {
		return err
	}
	local, err := libtmpl.Load(path)
	if err != nil {
		return err
	}

	result := remote
	if len(local) > 0 {
		choice := params.Resolve
		if choice == "" {
			choice, err = promptResolution()
			if err != nil {
				if errors.Is(err, picker.ErrCancelled) {
					choice = resolveCancel
				} else {
					return err
				}
			}
		}

		strategy, cancelled, err := parseResolution(choice)
		if err != nil {
			return err
		}
		if cancelled {
			fmt.Fprintln(os.Stderr, "pull cancelled; local templates unchanged")
			return nil
		}
		result = libtmpl.Merge(local, remote, strategy)
	}

	if err := libtmpl.Save(path, result); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %d templates to %s\n", len(result), path)
	return nil
}

// fetchCollection retrieves and parses the remote template document.
func fetchCollection(ctx context.Context, url string) (libtmpl.Collection, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building the pull request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fetching templates from %s: %w", url, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching templates from %s: HTTP %s", url, response.Status)
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("reading the template document: %w", err)
	}

	collection, err := libtmpl.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("the remote document is not a valid template collection: %w", err)
	}
	return collection, nil
}

// promptResolution asks the user what to do with the existing local
// templates.
func promptResolution() (string, error) {
	return picker.Select(
		"Local templates exist. How should the pulled templates be applied?",
		[]string{resolveCancel, resolveMerge, resolveReplace},
	)
}

// parseResolution maps a resolution name to a merge strategy. The
// boolean is true when the pull should be abandoned.
func parseResolution(name string) (libtmpl.Strategy, bool, error) {
	switch name {
	case resolveCancel:
		return 0, true, nil
	case resolveMerge:
		return libtmpl.StrategyMerge, false, nil
	case resolveReplace:
		return libtmpl.StrategyReplace, false, nil
	default:
		return 0, false, fmt.Errorf("unknown resolution %q: expected cancel, merge, or replace", name)
	}
}
