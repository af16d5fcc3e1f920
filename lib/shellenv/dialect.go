// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package shellenv

import (
	"fmt"
	"strings"
)

// Dialect is the statement syntax written to the handoff file. Two
// dialects suffice: sh, bash, and zsh share POSIX syntax, the fish
// wrapper translates POSIX statements itself, and PowerShell has its
// own assignment form.
type Dialect int

const (
	// DialectPosix emits POSIX sh statements (export/unset).
	DialectPosix Dialect = iota
	// DialectPowerShell emits PowerShell statements ($env:/Remove-Item).
	DialectPowerShell
)

func (d Dialect) String() string {
	if d == DialectPowerShell {
		return "powershell"
	}
	return "posix"
}

// export renders a single well-formed variable assignment statement.
func (d Dialect) export(name, value string) string {
	if d == DialectPowerShell {
		return fmt.Sprintf("$env:%s = \"%s\"", name, escapePowerShell(value))
	}
	return fmt.Sprintf("export %s=\"%s\"", name, escapePosix(value))
}

// unset renders a single statement removing a variable.
func (d Dialect) unset(name string) string {
	if d == DialectPowerShell {
		return fmt.Sprintf("Remove-Item -ErrorAction SilentlyContinue Env:%s", name)
	}
	return fmt.Sprintf("unset %s", name)
}

// escapePosix escapes a value for use inside a double-quoted POSIX
// shell string. Backslash, double quote, dollar, and backtick are the
// characters the shell interprets inside double quotes.
func escapePosix(value string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		`$`, `\$`,
		"`", "\\`",
	)
	return replacer.Replace(value)
}

// escapePowerShell escapes a value for use inside a double-quoted
// PowerShell string, where the backtick is the escape character.
func escapePowerShell(value string) string {
	replacer := strings.NewReplacer(
		"`", "``",
		`"`, "`\"",
		`$`, "`$",
	)
	return replacer.Replace(value)
}
