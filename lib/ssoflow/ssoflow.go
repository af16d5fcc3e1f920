// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package ssoflow implements the bounded wait for an SSO device
// authorization. The actual device-code exchange is the aws CLI's
// business; this package only owns the polling policy: invoke an
// external check at a fixed interval until it reports success,
// explicit denial, or the authorization window expires.
package ssoflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/awslogin/awslogin/lib/clock"
)

// Status is the outcome of one authorization check.
type Status int

const (
	// StatusPending means the user has not completed the browser
	// authorization yet; keep polling.
	StatusPending Status = iota
	// StatusAuthorized means the flow completed successfully.
	StatusAuthorized
	// StatusDenied means the user or the identity provider rejected
	// the request; polling stops immediately.
	StatusDenied
)

// CheckFunc performs one authorization check against the external
// collaborator.
type CheckFunc func(ctx context.Context) (Status, error)

// ErrDenied is returned when the authorization request was explicitly
// rejected.
var ErrDenied = errors.New("the authorization request was denied")

// ExpiredError is returned when the device authorization window
// lapsed before the user completed the flow. The whole command must
// be retried; there is no partial recovery.
type ExpiredError struct {
	// Window is the expiration window that lapsed.
	Window time.Duration
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("the device authorization expired after %s: run the command again", e.Window)
}

// Wait polls check every interval until it reports authorized or
// denied, the expiration window lapses, or ctx is cancelled. The
// first check happens immediately; the deadline is evaluated before
// each subsequent check, so a check never runs after the window has
// lapsed.
func Wait(ctx context.Context, clk clock.Clock, check CheckFunc, interval, expiresIn time.Duration) error {
	deadline := clk.Now().Add(expiresIn)

	for {
		status, err := check(ctx)
		if err != nil {
			return fmt.Errorf("checking device authorization: %w", err)
		}
		switch status {
		case StatusAuthorized:
			return nil
		case StatusDenied:
			return ErrDenied
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clk.After(interval):
		}

		if !clk.Now().Before(deadline) {
			return &ExpiredError{Window: expiresIn}
		}
	}
}
