// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package shellenv

import "testing"

func TestFromEnvironment_NotIntegrated(t *testing.T) {
	t.Setenv(ScriptPathVariable, "")
	t.Setenv(ShellKindVariable, "")

	handoff, err := FromEnvironment()
	if err != nil {
		t.Fatalf("FromEnvironment() failed: %v", err)
	}
	if handoff != nil {
		t.Errorf("expected nil handoff without wrapper variables, got %+v", handoff)
	}
}

func TestFromEnvironment_Complete(t *testing.T) {
	t.Setenv(ScriptPathVariable, "/tmp/handoff.XXXX")
	t.Setenv(ShellKindVariable, "zsh")

	handoff, err := FromEnvironment()
	if err != nil {
		t.Fatalf("FromEnvironment() failed: %v", err)
	}
	if handoff == nil {
		t.Fatal("expected a handoff")
	}
	if handoff.Path != "/tmp/handoff.XXXX" {
		t.Errorf("expected path /tmp/handoff.XXXX, got %s", handoff.Path)
	}
	if handoff.Shell != ShellZsh {
		t.Errorf("expected shell zsh, got %s", handoff.Shell)
	}
}

func TestFromEnvironment_MissingShellKind(t *testing.T) {
	t.Setenv(ScriptPathVariable, "/tmp/handoff.XXXX")
	t.Setenv(ShellKindVariable, "")

	if _, err := FromEnvironment(); err == nil {
		t.Error("expected error when the shell kind variable is missing")
	}
}

func TestFromEnvironment_UnknownShellKind(t *testing.T) {
	t.Setenv(ScriptPathVariable, "/tmp/handoff.XXXX")
	t.Setenv(ShellKindVariable, "csh")

	if _, err := FromEnvironment(); err == nil {
		t.Error("expected error for an unsupported shell kind")
	}
}

func TestShellDialects(t *testing.T) {
	cases := []struct {
		shell Shell
		want  Dialect
	}{
		{ShellSh, DialectPosix},
		{ShellBash, DialectPosix},
		{ShellZsh, DialectPosix},
		{ShellFish, DialectPosix},
		{ShellPowerShell, DialectPowerShell},
	}
	for _, tc := range cases {
		if got := tc.shell.Dialect(); got != tc.want {
			t.Errorf("%s: expected dialect %v, got %v", tc.shell, tc.want, got)
		}
	}
}
