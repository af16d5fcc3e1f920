// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	libtmpl "github.com/awslogin/awslogin/lib/template"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		name      string
		strategy  libtmpl.Strategy
		cancelled bool
		wantErr   bool
	}{
		{name: "cancel", cancelled: true},
		{name: "merge", strategy: libtmpl.StrategyMerge},
		{name: "replace", strategy: libtmpl.StrategyReplace},
		{name: "overwrite", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, test := range tests {
		strategy, cancelled, err := parseResolution(test.name)
		if test.wantErr {
			if err == nil {
				t.Errorf("parseResolution(%q): expected error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseResolution(%q) error: %v", test.name, err)
			continue
		}
		if cancelled != test.cancelled {
			t.Errorf("parseResolution(%q) cancelled = %t, want %t", test.name, cancelled, test.cancelled)
		}
		if !cancelled && strategy != test.strategy {
			t.Errorf("parseResolution(%q) strategy = %v, want %v", test.name, strategy, test.strategy)
		}
	}
}

func TestFetchCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// JSONC is accepted on the wire, same as on disk.
		w.Write([]byte(`{
			// shared base
			"base": {"settings": {"region": "us-east-1"}},
			"dev": {"extends": "base"}
		}`))
	}))
	defer server.Close()

	collection, err := fetchCollection(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("fetchCollection() error: %v", err)
	}
	if len(collection) != 2 {
		t.Fatalf("got %d templates, want 2", len(collection))
	}
	if collection["dev"].Extends != "base" {
		t.Errorf("dev.Extends = %q, want %q", collection["dev"].Extends, "base")
	}
}

func TestFetchCollection_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	if _, err := fetchCollection(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for HTTP 403")
	}
}

func TestFetchCollection_MalformedDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["not", "a", "collection"]`))
	}))
	defer server.Close()

	if _, err := fetchCollection(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for malformed document")
	}
}
