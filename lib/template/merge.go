// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

// Strategy selects how a downloaded collection is combined with the
// locally stored one.
type Strategy int

const (
	// StrategyMerge keeps local templates and overlays remote ones.
	StrategyMerge Strategy = iota
	// StrategyReplace discards the local collection entirely.
	StrategyReplace
)

func (s Strategy) String() string {
	switch s {
	case StrategyMerge:
		return "merge"
	case StrategyReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Merge combines a local collection with a remote one. With
// [StrategyReplace] the result is exactly remote. With [StrategyMerge]
// the result is the union keyed by name, and a remote template
// entirely replaces a local one of the same name — there is no
// field-level merging of a single template's settings.
//
// Merge does not validate inheritance graphs. A merge that introduces
// a dangling extends reference succeeds; the dangling reference
// surfaces as an error only when the template is resolved.
func Merge(local, remote Collection, strategy Strategy) Collection {
	if strategy == StrategyReplace {
		result := make(Collection, len(remote))
		for name, tmpl := range remote {
			result[name] = tmpl
		}
		return result
	}

	result := make(Collection, len(local)+len(remote))
	for name, tmpl := range local {
		result[name] = tmpl
	}
	for name, tmpl := range remote {
		result[name] = tmpl
	}
	return result
}
