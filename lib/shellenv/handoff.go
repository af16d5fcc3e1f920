// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package shellenv

import (
	"fmt"
	"os"
)

const (
	// ScriptPathVariable names the environment variable carrying the
	// handoff file path. The shell wrapper sets it immediately before
	// invoking the binary.
	ScriptPathVariable = "AWSLOGIN_SCRIPT"

	// ShellKindVariable names the environment variable carrying the
	// shell kind tag.
	ShellKindVariable = "AWSLOGIN_SHELL"
)

// Handoff pairs the temporary script file supplied by the invoking
// shell wrapper with its shell kind. The file is owned by the wrapper:
// the binary appends to it and must never delete or rename it.
type Handoff struct {
	// Path is the handoff file location.
	Path string

	// Shell is the shell kind tag set by the wrapper.
	Shell Shell
}

// FromEnvironment reads the handoff from the process environment. It
// returns (nil, nil) when the script path variable is absent, which
// means the binary was invoked directly rather than through a shell
// wrapper — callers fall back to printing manual instructions. A
// present path with a missing or unrecognized shell kind is an error:
// the wrapper contract requires both variables.
func FromEnvironment() (*Handoff, error) {
	path := os.Getenv(ScriptPathVariable)
	if path == "" {
		return nil, nil
	}

	kind := os.Getenv(ShellKindVariable)
	if kind == "" {
		return nil, fmt.Errorf("%s is set but %s is not: the shell wrapper must export both", ScriptPathVariable, ShellKindVariable)
	}

	shell, err := ParseShell(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ShellKindVariable, err)
	}

	return &Handoff{Path: path, Shell: shell}, nil
}
