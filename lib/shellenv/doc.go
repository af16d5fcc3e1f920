// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package shellenv communicates environment changes back to the
// interactive shell that invoked the binary.
//
// A child process cannot alter its parent's environment, so changes
// travel through a handoff file: the shell wrapper function creates a
// uniquely-named temporary file, exports its path and the shell kind,
// and invokes the real binary. The binary appends shell statements to
// the file through an [Emitter]; after it exits, the wrapper evaluates
// the file in the current shell process and deletes it. An empty file
// means no environment change and must not be evaluated.
//
// Statements are emitted in one of exactly two dialects
// ([DialectPosix], [DialectPowerShell]). The fish wrapper sources the
// posix dialect by translating export/unset lines into its own
// assignment forms; the emitter never knows which wrapper invoked it
// beyond the dialect tag.
//
// [Adapter] renders and installs the per-shell wrapper functions that
// implement this protocol.
package shellenv
