// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package shellenv

import "fmt"

// Shell identifies a supported shell kind as carried by the handoff
// environment variable.
type Shell string

const (
	// ShellSh is a plain POSIX-compliant shell.
	ShellSh Shell = "sh"
	// ShellBash is the Bourne Again SHell.
	ShellBash Shell = "bash"
	// ShellZsh is the Z shell.
	ShellZsh Shell = "zsh"
	// ShellFish is the friendly interactive shell. Its wrapper is
	// distinct but it sources the POSIX emission dialect.
	ShellFish Shell = "fish"
	// ShellPowerShell is PowerShell (Core or Windows).
	ShellPowerShell Shell = "powershell"
)

// ParseShell validates a shell name from a flag or environment
// variable.
func ParseShell(name string) (Shell, error) {
	switch Shell(name) {
	case ShellSh, ShellBash, ShellZsh, ShellFish, ShellPowerShell:
		return Shell(name), nil
	}
	return "", fmt.Errorf("unsupported shell %q (supported: sh, bash, zsh, fish, powershell)", name)
}

// Dialect maps the shell kind to the statement dialect written to the
// handoff file. All shells except PowerShell receive POSIX syntax;
// the fish wrapper translates it when sourcing.
func (s Shell) Dialect() Dialect {
	if s == ShellPowerShell {
		return DialectPowerShell
	}
	return DialectPosix
}
