// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package shellenv

import (
	"fmt"
	"os"
)

// ShellWriteError reports a handoff file that could not be opened or
// written. This is fatal for the invocation: there is no fallback
// target, because without the file the parent shell cannot observe
// the change.
type ShellWriteError struct {
	// Path is the handoff file location.
	Path string

	// Err is the underlying filesystem error.
	Err error
}

func (e *ShellWriteError) Error() string {
	return fmt.Sprintf("writing shell statements to %s: %v", e.Path, e.Err)
}

func (e *ShellWriteError) Unwrap() error {
	return e.Err
}

// Emitter appends shell statements to a handoff file. Each statement
// is written as a single line in one unbuffered write, so a failure
// partway through a command leaves earlier statements individually
// well-formed and the file evaluable.
type Emitter struct {
	file    *os.File
	dialect Dialect
}

// Open opens the handoff file for appending. The file must already
// exist — the wrapper creates it — but append mode tolerates either.
// A failure to open is a [ShellWriteError].
func Open(handoff *Handoff) (*Emitter, error) {
	file, err := os.OpenFile(handoff.Path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return nil, &ShellWriteError{Path: handoff.Path, Err: err}
	}
	return &Emitter{file: file, dialect: handoff.Shell.Dialect()}, nil
}

// Export appends a statement setting an environment variable in the
// parent shell.
func (e *Emitter) Export(name, value string) error {
	return e.writeLine(e.dialect.export(name, value))
}

// Unset appends a statement removing an environment variable from the
// parent shell.
func (e *Emitter) Unset(name string) error {
	return e.writeLine(e.dialect.unset(name))
}

// Close releases the file handle. The file itself is left in place
// for the wrapper to evaluate and delete.
func (e *Emitter) Close() error {
	return e.file.Close()
}

func (e *Emitter) writeLine(statement string) error {
	if _, err := e.file.WriteString(statement + "\n"); err != nil {
		return &ShellWriteError{Path: e.file.Name(), Err: err}
	}
	return nil
}
