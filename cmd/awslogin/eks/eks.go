// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package eks implements the "eks" command: pointing kubectl at an
// EKS cluster.
package eks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	"github.com/awslogin/awslogin/lib/picker"
)

type eksParams struct {
	cli.GlobalParams
}

// Command returns the "eks" command.
func Command() *cli.Command {
	var params eksParams

	return &cli.Command{
		Name:    "eks",
		Summary: "Update kubeconfig for an EKS cluster",
		Description: `Write kubectl credentials for an EKS cluster in the active profile.

Without an argument, the account's clusters are listed for an
interactive pick. The selected cluster is wired into kubeconfig via
"aws eks update-kubeconfig".`,
		Usage: "awslogin eks [flags] [cluster]",
		Examples: []cli.Example{
			{Description: "Pick a cluster interactively", Command: "awslogin eks"},
			{Description: "Configure a named cluster", Command: "awslogin eks prod-eu"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("eks", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected at most 1 positional argument, got %d", len(args))
			}
			cluster := ""
			if len(args) == 1 {
				cluster = args[0]
			}
			return runEKS(ctx, &params, cluster)
		},
	}
}

func runEKS(ctx context.Context, params *eksParams, cluster string) error {
	aws := params.AWS()

	if cluster == "" {
		output, err := aws.Run(ctx, "eks", "list-clusters", "--query", "clusters", "--output", "text")
		if err != nil {
			return fmt.Errorf("listing EKS clusters: %w", err)
		}

		clusters := parseClusterList(output)
		if len(clusters) == 0 {
			return fmt.Errorf("the account has no EKS clusters in this region")
		}

		cluster, err = picker.Select("Select an EKS cluster", clusters)
		if err != nil {
			return err
		}
	}

	return aws.PassThrough(ctx, "eks", "update-kubeconfig", "--name", cluster)
}

// parseClusterList splits the text-format cluster listing. The aws
// CLI prints "None" for an empty result set.
func parseClusterList(output string) []string {
	fields := strings.Fields(output)
	var clusters []string
	for _, field := range fields {
		if field == "None" {
			continue
		}
		clusters = append(clusters, field)
	}
	sort.Strings(clusters)
	return clusters
}
