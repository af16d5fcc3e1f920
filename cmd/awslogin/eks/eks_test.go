// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package eks

import (
	"reflect"
	"testing"
)

func TestParseClusterList(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{"tab separated", "prod-eu\tstaging\tdev\n", []string{"dev", "prod-eu", "staging"}},
		{"newline separated", "b\na\n", []string{"a", "b"}},
		{"empty result", "None\n", nil},
		{"blank output", "\n", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := parseClusterList(test.output)
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("parseClusterList(%q) = %v, want %v", test.output, got, test.want)
			}
		})
	}
}
