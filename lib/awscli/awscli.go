// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package awscli provides typed access to the aws executable. All AWS
// operations — profile listing, configuration writes, SSO login, ECR
// passwords, EKS cluster enumeration — are thin wrappers over the
// external CLI, invoked as a black box that returns text or a
// non-zero exit. The same [Runner] also drives docker and kubectl
// invocations so tests can script every external program through one
// seam.
package awscli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// Runner executes external programs. Production code uses
// [NewExecRunner]; tests inject a scripted fake.
type Runner interface {
	// Run executes the program and returns its stdout. Stderr is
	// captured separately and included in the error on failure.
	Run(ctx context.Context, program string, args ...string) (string, error)

	// PassThrough executes the program with the invoking process's
	// stdin, stdout, and stderr, for interactive flows like
	// "aws configure sso" and "docker login".
	PassThrough(ctx context.Context, program string, args ...string) error

	// RunInput executes the program with input piped to its stdin
	// and the invoking process's stdout and stderr. Used for
	// credential handoffs like "docker login --password-stdin".
	RunInput(ctx context.Context, input string, program string, args ...string) error
}

// ExternalError reports a wrapped external command that exited
// non-zero. The child's output has already reached the user in
// pass-through mode, so the CLI surfaces the exit code without
// retrying.
type ExternalError struct {
	// Program is the executable that failed.
	Program string

	// Code is the child's exit code.
	Code int

	// Err is the underlying execution error.
	Err error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Program, e.Code)
}

func (e *ExternalError) Unwrap() error {
	return e.Err
}

// ExitCode returns the child's exit code so the CLI entry point can
// propagate it.
func (e *ExternalError) ExitCode() int {
	return e.Code
}

// ExecRunner runs programs via os/exec. PATH lookups are cached per
// program name for the life of the process, since a command may probe
// the same program several times in one invocation.
type ExecRunner struct {
	mu     sync.Mutex
	inPath map[string]bool
}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{inPath: make(map[string]bool)}
}

// Run implements [Runner].
func (r *ExecRunner) Run(ctx context.Context, program string, args ...string) (string, error) {
	if err := r.checkPath(program); err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, program, args...)
	command.Stdin = os.Stdin
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w (stderr: %s)",
			program, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// PassThrough implements [Runner].
func (r *ExecRunner) PassThrough(ctx context.Context, program string, args ...string) error {
	if err := r.checkPath(program); err != nil {
		return err
	}

	command := exec.CommandContext(ctx, program, args...)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	if err := command.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExternalError{Program: program, Code: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("running %s: %w", program, err)
	}
	return nil
}

// RunInput implements [Runner].
func (r *ExecRunner) RunInput(ctx context.Context, input string, program string, args ...string) error {
	if err := r.checkPath(program); err != nil {
		return err
	}

	command := exec.CommandContext(ctx, program, args...)
	command.Stdin = strings.NewReader(input)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	if err := command.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExternalError{Program: program, Code: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("running %s: %w", program, err)
	}
	return nil
}

// checkPath verifies the program is resolvable, consulting the cache
// first. A missing program produces a direct, user-facing error
// instead of a confusing exec failure.
func (r *ExecRunner) checkPath(program string) error {
	r.mu.Lock()
	found, checked := r.inPath[program]
	r.mu.Unlock()

	if !checked {
		_, err := exec.LookPath(program)
		found = err == nil
		r.mu.Lock()
		r.inPath[program] = found
		r.mu.Unlock()
	}

	if !found {
		return fmt.Errorf("the program %q could not be found in PATH", program)
	}
	return nil
}
