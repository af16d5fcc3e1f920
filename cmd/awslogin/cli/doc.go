// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command tree framework for the awslogin
// binary: command dispatch with typo suggestions, structured help
// output, struct-tag flag binding over pflag, and logger setup.
//
// Each subcommand package exposes a Command() constructor returning a
// [Command]; the tree is assembled in cmd/awslogin/commands and
// executed from main with a signal-aware context.
package cli
