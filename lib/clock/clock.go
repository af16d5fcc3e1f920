// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts time for testability. The device
// authorization poll loop is the only long-waiting code path in the
// binary; it takes a Clock so tests can drive the wait
// deterministically instead of sleeping through real intervals.
package clock

import "time"

// Clock provides the time operations the poll loop needs. Production
// code injects [Real]; tests inject [Fake] and call Advance.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time after
	// duration d elapses. Equivalent to time.After.
	After(d time.Duration) <-chan time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
