// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package shellenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// installedMarker is the comment line used to detect an existing
// installation. Its presence in the rc file means the integration is
// already set up; re-running install is a no-op.
const installedMarker = "# Integrate awslogin into the shell environment."

// posixWrapper is the wrapper function for sh, bash, and zsh. The
// {shell} placeholder is replaced with the concrete shell kind so the
// binary knows which dialect tag it was invoked under.
//
// The wrapper implements the handoff protocol: create a unique temp
// file, export its path and the shell kind, run the real binary,
// capture its status, evaluate the file if non-empty, delete it, and
// return the captured status.
const posixWrapper = `# Locate the real binary before the wrapper function shadows it.
export AWSLOGIN_BIN=

if ! AWSLOGIN_BIN="$(command -v awslogin)"; then
    echo "The awslogin command could not be found in PATH." >&2

    return 1
fi

##
# Invoked instead of the real command whenever you type 'awslogin'.
#
# Runs the binary with a handoff file and evaluates any shell code the
# binary wrote to it, so profile switches apply to this shell.
#
# shellcheck disable=SC3033
# shellcheck disable=SC3043
##
awslogin()
{
    local SCRIPT=

    if SCRIPT="$(mktemp)"; then
        AWSLOGIN_SCRIPT="$SCRIPT" AWSLOGIN_SHELL="{shell}" "$AWSLOGIN_BIN" "$@"

        local STATUS=$?

        # An empty file means no environment change; do not evaluate it.
        if [ -s "$SCRIPT" ]; then
            eval "$(cat "$SCRIPT")"
        fi

        rm "$SCRIPT"

        return $STATUS
    fi

    return 1
}
`

// fishWrapper is the wrapper function for fish. The handoff file is
// written in the POSIX dialect, so the wrapper translates export and
// unset statements into fish assignment forms when sourcing.
const fishWrapper = `function awslogin
    set -l script (mktemp)
    or return 1

    AWSLOGIN_SCRIPT="$script" AWSLOGIN_SHELL=fish command awslogin $argv
    set -l code $status

    if test -s "$script"
        # The file is in the POSIX dialect; translate each statement.
        while read -l line
            if string match -q 'export *' -- $line
                set -l pair (string split -m 1 '=' (string sub -s 8 -- $line))
                set -gx $pair[1] (string trim -c '"' -- $pair[2])
            else if string match -q 'unset *' -- $line
                set -e (string sub -s 7 -- $line)
            end
        end < "$script"
    end

    rm "$script"
    return $code
end
`

// powershellWrapper is the wrapper function for PowerShell.
const powershellWrapper = `function awslogin {
    $binary = (Get-Command -CommandType Application awslogin -ErrorAction Stop).Source
    $script = New-TemporaryFile

    try {
        $env:AWSLOGIN_SCRIPT = $script.FullName
        $env:AWSLOGIN_SHELL = "powershell"
        & $binary @args
        $code = $LASTEXITCODE
    } finally {
        Remove-Item -ErrorAction SilentlyContinue Env:AWSLOGIN_SCRIPT
        Remove-Item -ErrorAction SilentlyContinue Env:AWSLOGIN_SHELL
    }

    if ((Get-Item $script.FullName).Length -gt 0) {
        . $script.FullName
    }

    Remove-Item $script.FullName
    $global:LASTEXITCODE = $code
}
`

// Adapter renders and installs the wrapper function for one shell.
type Adapter struct {
	// Shell is the shell kind this adapter serves.
	Shell Shell

	wrapper string
	rcFile  []string
	inject  string
}

// AdapterFor returns the adapter for the given shell.
func AdapterFor(shell Shell) (*Adapter, error) {
	switch shell {
	case ShellSh:
		return &Adapter{
			Shell:   shell,
			wrapper: posixWrapper,
			rcFile:  []string{".profile"},
			inject:  `eval "$(awslogin shell init --shell sh)"`,
		}, nil
	case ShellBash:
		return &Adapter{
			Shell:   shell,
			wrapper: posixWrapper,
			rcFile:  []string{".bashrc"},
			inject:  `eval "$(awslogin shell init --shell bash)"`,
		}, nil
	case ShellZsh:
		return &Adapter{
			Shell:   shell,
			wrapper: posixWrapper,
			rcFile:  []string{".zshrc"},
			inject:  `eval "$(awslogin shell init --shell zsh)"`,
		}, nil
	case ShellFish:
		return &Adapter{
			Shell:   shell,
			wrapper: fishWrapper,
			rcFile:  []string{".config", "fish", "config.fish"},
			inject:  `awslogin shell init --shell fish | source`,
		}, nil
	case ShellPowerShell:
		return &Adapter{
			Shell:   shell,
			wrapper: powershellWrapper,
			inject:  `Invoke-Expression (& awslogin shell init --shell powershell | Out-String)`,
		}, nil
	}
	return nil, fmt.Errorf("no shell adapter for %q", shell)
}

// Script renders the wrapper function for this adapter's shell.
func (a *Adapter) Script() string {
	return strings.ReplaceAll(a.wrapper, "{shell}", string(a.Shell))
}

// DefaultRCFile returns the default startup file for this shell.
// PowerShell has no fixed profile path, so installation there
// requires an explicit path from the caller.
func (a *Adapter) DefaultRCFile() (string, error) {
	if len(a.rcFile) == 0 {
		return "", fmt.Errorf("%s has no default profile path: pass the startup script location explicitly", a.Shell)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(append([]string{home}, a.rcFile...)...), nil
}

// Installed reports whether the integration marker is already present
// in the startup file. A missing file means not installed.
func (a *Adapter) Installed(rcPath string) (bool, error) {
	data, err := os.ReadFile(rcPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", rcPath, err)
	}
	return strings.Contains(string(data), installedMarker), nil
}

// Install appends the integration lines to the startup file,
// creating it if needed. Installation is idempotent: when the marker
// is already present the file is left untouched.
func (a *Adapter) Install(rcPath string) error {
	installed, err := a.Installed(rcPath)
	if err != nil {
		return err
	}
	if installed {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rcPath, err)
	}

	file, err := os.OpenFile(rcPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", rcPath, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "\n%s\n%s\n", installedMarker, a.inject); err != nil {
		return fmt.Errorf("updating %s: %w", rcPath, err)
	}
	return nil
}
