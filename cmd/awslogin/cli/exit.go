// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. Pass-through invocations of the aws CLI, docker, and
// kubectl already stream their own stderr; when such a child exits
// non-zero the command returns an ExitError (or any error exposing
// ExitCode() int) and main exits with the child's code without adding
// a redundant "error:" line.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. The main function checks for this
// interface on returned errors to distinguish "handled non-zero exit"
// from "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
