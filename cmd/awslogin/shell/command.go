// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package shell implements the awslogin shell subcommands that wire
// the wrapper function into the user's shell.
package shell

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/awslogin/awslogin/cmd/awslogin/cli"
	"github.com/awslogin/awslogin/lib/shellenv"
)

// Command returns the "shell" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "shell",
		Summary: "Manage the shell integration",
		Description: `Manage the wrapper function that lets awslogin mutate the calling
shell's environment.

The binary itself cannot change its parent shell's variables. The
wrapper function creates a temporary script file, points awslogin at
it through the AWSLOGIN_SCRIPT and AWSLOGIN_SHELL environment
variables, evaluates whatever the binary appended, and deletes the
file. "shell init" prints the wrapper for eval; "shell install"
writes the eval line into the shell's rc file.`,
		Subcommands: []*cli.Command{
			initCommand(),
			installCommand(),
		},
	}
}

type initParams struct {
	Shell string `flag:"shell" desc:"shell kind: sh, bash, zsh, fish, or powershell"`
}

func initCommand() *cli.Command {
	var params initParams

	return &cli.Command{
		Name:    "init",
		Summary: "Print the wrapper function for a shell",
		Usage:   "awslogin shell init --shell <kind>",
		Examples: []cli.Example{
			{Description: "Load the integration in .zshrc", Command: `eval "$(awslogin shell init --shell zsh)"`},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("init", &params)
		},
		Run: func(_ context.Context, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("expected no positional arguments, got %d", len(args))
			}
			adapter, err := adapterFromFlag(params.Shell)
			if err != nil {
				return err
			}
			fmt.Print(adapter.Script())
			return nil
		},
	}
}

type installParams struct {
	Shell string `flag:"shell" desc:"shell kind: sh, bash, zsh, fish, or powershell"`
	RC    string `flag:"rc"    desc:"rc file to modify (default: the shell's standard rc file)"`
}

func installCommand() *cli.Command {
	var params installParams

	return &cli.Command{
		Name:    "install",
		Summary: "Install the integration into a shell rc file",
		Description: `Append the integration line to the shell's rc file. Installing is
idempotent: a marker comment guards against duplicate lines.`,
		Usage: "awslogin shell install --shell <kind> [--rc <path>]",
		Examples: []cli.Example{
			{Description: "Install for zsh", Command: "awslogin shell install --shell zsh"},
			{Description: "Install into a non-standard rc file", Command: "awslogin shell install --shell bash --rc ~/.bash_profile"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("install", &params)
		},
		Run: func(_ context.Context, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("expected no positional arguments, got %d", len(args))
			}
			adapter, err := adapterFromFlag(params.Shell)
			if err != nil {
				return err
			}

			rcPath := params.RC
			if rcPath == "" {
				rcPath, err = adapter.DefaultRCFile()
				if err != nil {
					return err
				}
			}

			installed, err := adapter.Installed(rcPath)
			if err != nil {
				return err
			}
			if installed {
				fmt.Fprintf(os.Stderr, "already installed in %s\n", rcPath)
				return nil
			}

			if err := adapter.Install(rcPath); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "installed in %s; restart your shell or source the file\n", rcPath)
			return nil
		},
	}
}

func adapterFromFlag(name string) (*shellenv.Adapter, error) {
	if name == "" {
		return nil, fmt.Errorf("--shell is required (sh, bash, zsh, fish, or powershell)")
	}
	shell, err := shellenv.ParseShell(name)
	if err != nil {
		return nil, err
	}
	return shellenv.AdapterFor(shell)
}
