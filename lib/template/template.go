// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"encoding/json"
	"sort"
)

// Template is one named entry in a collection. Enabled defaults to
// true when absent from the document and governs only whether the
// template is offered in selection lists; a disabled ancestor still
// contributes settings during resolution.
type Template struct {
	// Enabled reports whether the template is offered for selection.
	Enabled bool `json:"enabled"`

	// Extends names another template in the same collection whose
	// settings this template inherits. Empty means no parent. The
	// reference is validated at resolution time, not at load time.
	Extends string `json:"extends,omitempty"`

	// Settings are the profile configuration settings contributed by
	// this template.
	Settings Settings `json:"settings"`
}

// UnmarshalJSON decodes a template, defaulting Enabled to true when
// the field is absent.
func (t *Template) UnmarshalJSON(data []byte) error {
	var raw struct {
		Enabled  *bool    `json:"enabled"`
		Extends  string   `json:"extends"`
		Settings Settings `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Enabled = raw.Enabled == nil || *raw.Enabled
	t.Extends = raw.Extends
	t.Settings = raw.Settings
	return nil
}

// Collection maps template names to templates. Names are unique by
// construction (JSON object keys); insertion order is irrelevant.
type Collection map[string]Template

// Names returns the template names in sorted order. When enabledOnly
// is set, disabled templates are omitted — this is the selection-list
// view, and it consults Enabled only on the template itself, never on
// its ancestors.
func (c Collection) Names(enabledOnly bool) []string {
	names := make([]string, 0, len(c))
	for name, tmpl := range c {
		if enabledOnly && !tmpl.Enabled {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
