// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strings"
)

// UnknownTemplateError reports a reference to a template name that is
// absent from the collection, either as the requested template or as
// an extends target somewhere in its chain.
type UnknownTemplateError struct {
	// Name is the missing template name.
	Name string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("the profile template %q does not exist", e.Name)
}

// CycleError reports an inheritance cycle. Chain lists the template
// names in walk order, ending with the name that was revisited.
type CycleError struct {
	// Chain is the walk that exposed the cycle, leaf first.
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("template inheritance cycle: %s", strings.Join(e.Chain, " -> "))
}

// CorruptError reports a template document that could not be parsed.
// The file on disk is left untouched when this is returned.
type CorruptError struct {
	// Path is the document location, empty when parsing bytes directly.
	Path string

	// Err is the underlying decode error.
	Err error
}

func (e *CorruptError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed template document: %v", e.Err)
	}
	return fmt.Sprintf("malformed template document %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}
