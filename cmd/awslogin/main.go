// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Awslogin is a CLI for switching AWS CLI profiles and logging in to
// AWS services from a shell session. Profiles are defined as
// templates with chained inheritance; the shell integration applies
// selections to the calling shell by way of a wrapper function.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/awslogin/awslogin/cmd/awslogin/commands"
)

func main() {
	if err := run(); err != nil {
		// Pass-through child processes have already written their
		// own output; propagate their exit code without a redundant
		// "error:" line.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return commands.Root().Execute(ctx, os.Args[1:])
}
