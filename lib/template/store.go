// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Parse decodes a template document. The document is JSONC: standard
// JSON plus // line comments and /* block comments */ for
// documentation. A decode failure is a [CorruptError].
func Parse(data []byte) (Collection, error) {
	var collection Collection
	if err := json.Unmarshal(jsonc.ToJSON(data), &collection); err != nil {
		return nil, &CorruptError{Err: err}
	}
	return collection, nil
}

// Load reads the template document at path. A missing file is not an
// error: it yields an empty collection, so first-run commands behave
// as if no templates are defined. A document that exists but cannot
// be parsed is a [CorruptError]; the file is never deleted or
// rewritten on that path.
func Load(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading template document: %w", err)
	}

	collection, err := Parse(data)
	if err != nil {
		if corrupt, ok := err.(*CorruptError); ok {
			corrupt.Path = path
		}
		return nil, err
	}
	return collection, nil
}

// Save writes the collection to path as canonical two-space-indented
// JSON. The write is atomic: a temporary file in the same directory
// is renamed over the target, so a crash mid-write never corrupts an
// existing document. Parent directories are created as needed.
func Save(path string, collection Collection) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding template document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".templates-*.json")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing template document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing template document: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing template document: %w", err)
	}
	return nil
}
