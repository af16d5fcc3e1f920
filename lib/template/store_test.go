// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	collection, err := Parse([]byte(`{
		// The shared base profile.
		"base": {
			"enabled": false,
			"settings": {"region": "us-east-1"}
		},
		"dev": {
			"extends": "base",
			"settings": {"role_arn": "arn:aws:iam::123456789012:role/Developer"}
		}
	}`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if collection["base"].Enabled {
		t.Error("expected base to be disabled")
	}
	// Enabled defaults to true when absent.
	if !collection["dev"].Enabled {
		t.Error("expected dev to default to enabled")
	}
	if got := collection["dev"].Extends; got != "base" {
		t.Errorf("expected extends=base, got %s", got)
	}
}

func TestParse_ScalarKinds(t *testing.T) {
	collection, err := Parse([]byte(`{
		"kinds": {
			"settings": {
				"name": "value",
				"max_attempts": 5,
				"cli_pager": false,
				"cleared": null
			}
		}
	}`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	settings := collection["kinds"].Settings
	cases := []struct {
		key  string
		kind Kind
		want string
	}{
		{"name", KindString, "value"},
		{"max_attempts", KindInt, "5"},
		{"cli_pager", KindBool, "false"},
		{"cleared", KindString, ""},
	}
	for _, tc := range cases {
		value := settings[tc.key]
		if value.Kind() != tc.kind {
			t.Errorf("%s: expected kind %v, got %v", tc.key, tc.kind, value.Kind())
		}
		if value.String() != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.key, tc.want, value.String())
		}
	}
}

func TestParse_RejectsNestedValues(t *testing.T) {
	_, err := Parse([]byte(`{
		"bad": {
			"settings": {"nested": {"not": "supported"}}
		}
	}`))

	var corrupt *CorruptError
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected CorruptError, got %v", err)
	}
}

func TestParse_RejectsFractionalNumbers(t *testing.T) {
	_, err := Parse([]byte(`{"bad": {"settings": {"ratio": 1.5}}}`))
	if err == nil {
		t.Fatal("expected fractional number to be rejected")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	collection, err := Load(filepath.Join(t.TempDir(), "templates.json"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(collection) != 0 {
		t.Errorf("expected empty collection, got %d entries", len(collection))
	}
}

func TestLoad_CorruptFilePreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	content := []byte(`{"broken":`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Load(path)

	var corrupt *CorruptError
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected CorruptError, got %v", err)
	}
	if corrupt.Path != path {
		t.Errorf("expected path %s in error, got %s", path, corrupt.Path)
	}

	// The malformed file must survive the failed load.
	after, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("reading file after failed load: %v", readErr)
	}
	if string(after) != string(content) {
		t.Error("corrupt file was modified by a failed load")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "templates.json")
	collection := Collection{
		"base": {
			Enabled: false,
			Settings: Settings{
				"region":       StringValue("us-east-1"),
				"max_attempts": IntValue(3),
			},
		},
		"dev": {
			Enabled:  true,
			Extends:  "base",
			Settings: Settings{"cli_pager": BoolValue(false)},
		},
	}

	if err := Save(path, collection); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(loaded))
	}
	if loaded["base"].Enabled {
		t.Error("expected base to stay disabled through a round trip")
	}
	if got := loaded["base"].Settings["max_attempts"]; got != IntValue(3) {
		t.Errorf("expected max_attempts=3, got %v", got)
	}
	if got := loaded["dev"].Settings["cli_pager"]; got != BoolValue(false) {
		t.Errorf("expected cli_pager=false, got %v", got)
	}
}
