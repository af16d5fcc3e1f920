// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

// Package template implements profile templates: named, reusable sets
// of AWS CLI profile configuration settings with single-parent
// inheritance.
//
// A [Collection] is loaded from a JSONC document mapping template name
// to [Template]. Each template carries a flat [Settings] map of scalar
// values and may extend another template in the same collection.
// [Resolve] flattens a template's full inheritance chain into the
// effective settings, with the most-derived template winning on key
// conflicts. [Merge] combines a freshly downloaded collection with a
// locally stored one.
//
// Settings values are a closed set of scalar kinds (string, integer,
// boolean) so that consumers like the AWS CLI configuration writer can
// switch exhaustively over [Value.Kind]. Arrays and objects inside a
// settings block are rejected at load time.
package template
