// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package rds implements the "rds" command: generating IAM auth
// tokens for RDS proxies.
package rds

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	"github.com/awslogin/awslogin/lib/picker"
)

// proxy is one row of the describe-db-proxies listing.
type proxy struct {
	Name         string
	Endpoint     string
	EngineFamily string
	RequireTLS   bool
	Status       string
}

type rdsParams struct {
	cli.GlobalParams
	Username string `flag:"username,u" desc:"database user to generate the token for"`
	Port     int    `flag:"port"       desc:"database port (default 5432 for PostgreSQL proxies)"`
}

// Command returns the "rds" command.
func Command() *cli.Command {
	var params rdsParams

	return &cli.Command{
		Name:    "rds",
		Summary: "Generate an IAM auth token for an RDS proxy",
		Description: `Generate an IAM authentication token for a database user on an RDS
proxy.

The available proxies of the active profile are listed for an
interactive pick; the token for the selected endpoint is printed on
stdout. PostgreSQL proxies default to port 5432; other engine
families require --port.`,
		Usage: "awslogin rds [flags] --username <user>",
		Examples: []cli.Example{
			{Description: "Token for a PostgreSQL proxy", Command: "awslogin rds --username app"},
			{Description: "Token for a MySQL proxy", Command: "awslogin rds --username app --port 3306"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("rds", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("expected no positional arguments, got %d", len(args))
			}
			if params.Username == "" {
				return fmt.Errorf("--username is required")
			}
			return runRDS(ctx, &params)
		},
	}
}

func runRDS(ctx context.Context, params *rdsParams) error {
	aws := params.AWS()

	output, err := aws.Run(ctx, "rds", "describe-db-proxies",
		"--query", "DBProxies[].[DBProxyName,Endpoint,EngineFamily,RequireTLS,Status]",
		"--output", "text")
	if err != nil {
		return fmt.Errorf("listing RDS proxies: %w", err)
	}

	proxies := availableProxies(parseProxies(output))
	if len(proxies) == 0 {
		return fmt.Errorf("no available RDS proxies found")
	}

	names := make([]string, len(proxies))
	byName := make(map[string]proxy, len(proxies))
	for i, p := range proxies {
		names[i] = p.Name
		byName[p.Name] = p
	}

	name, err := picker.Select("Select an RDS proxy", names)
	if err != nil {
		return err
	}
	selected := byName[name]

	port, err := effectivePort(selected, params.Port)
	if err != nil {
		return err
	}

	if selected.RequireTLS {
		fmt.Fprintf(os.Stderr, "warning: the proxy %s requires TLS; connect with SSL enabled\n", selected.Name)
	}

	token, err := aws.Run(ctx, "rds", "generate-db-auth-token",
		"--hostname", selected.Endpoint,
		"--port", strconv.Itoa(port),
		"--username", params.Username)
	if err != nil {
		return fmt.Errorf("generating the auth token: %w", err)
	}

	fmt.Println(strings.TrimSpace(token))
	return nil
}

// parseProxies reads the tab-separated text rows of the proxy
// listing. Malformed rows are skipped.
func parseProxies(output string) []proxy {
	var proxies []proxy
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(fields) != 5 {
			continue
		}
		proxies = append(proxies, proxy{
			Name:         fields[0],
			Endpoint:     fields[1],
			EngineFamily: fields[2],
			RequireTLS:   strings.EqualFold(fields[3], "true"),
			Status:       fields[4],
		})
	}
	return proxies
}

// availableProxies keeps only proxies in the "available" state.
func availableProxies(proxies []proxy) []proxy {
	var available []proxy
	for _, p := range proxies {
		if strings.EqualFold(p.Status, "available") {
			available = append(available, p)
		}
	}
	return available
}

// effectivePort resolves the port for the selected proxy. PostgreSQL
// defaults to 5432; other engine families have no safe default and
// require the flag.
func effectivePort(p proxy, flagPort int) (int, error) {
	if flagPort != 0 {
		return flagPort, nil
	}
	if strings.EqualFold(p.EngineFamily, "POSTGRESQL") {
		return 5432, nil
	}
	return 0, fmt.Errorf("the proxy %s uses the %s engine family: pass --port", p.Name, p.EngineFamily)
}
