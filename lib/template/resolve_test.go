// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolve_NoExtends(t *testing.T) {
	collection := Collection{
		"plain": {
			Enabled: true,
			Settings: Settings{
				"region": StringValue("us-east-1"),
				"output": StringValue("json"),
			},
		},
	}

	resolved, err := Resolve(collection, "plain")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	want := Settings{
		"region": StringValue("us-east-1"),
		"output": StringValue("json"),
	}
	if !reflect.DeepEqual(resolved, want) {
		t.Errorf("expected %v, got %v", want, resolved)
	}
}

func TestResolve_ChainMostDerivedWins(t *testing.T) {
	collection := Collection{
		"c": {
			Enabled: true,
			Settings: Settings{
				"region": StringValue("eu-west-1"),
				"output": StringValue("text"),
			},
		},
		"b": {
			Enabled: true,
			Extends: "c",
			Settings: Settings{
				"output": StringValue("table"),
			},
		},
		"a": {
			Enabled: true,
			Extends: "b",
			Settings: Settings{
				"region": StringValue("us-west-2"),
			},
		},
	}

	resolved, err := Resolve(collection, "a")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	// "region" is defined in both a and c; a is closest to the
	// requested template and must win.
	if got := resolved["region"].String(); got != "us-west-2" {
		t.Errorf("expected region=us-west-2, got %s", got)
	}
	// "output" comes from b, the nearest definition.
	if got := resolved["output"].String(); got != "table" {
		t.Errorf("expected output=table, got %s", got)
	}
}

func TestResolve_DisabledAncestorStillContributes(t *testing.T) {
	collection := Collection{
		"base": {
			Enabled: false,
			Settings: Settings{
				"region": StringValue("us-east-1"),
			},
		},
		"dev": {
			Enabled: true,
			Extends: "base",
			Settings: Settings{
				"role": StringValue("ReadOnly"),
			},
		},
	}

	resolved, err := Resolve(collection, "dev")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	want := Settings{
		"region": StringValue("us-east-1"),
		"role":   StringValue("ReadOnly"),
	}
	if !reflect.DeepEqual(resolved, want) {
		t.Errorf("expected %v, got %v", want, resolved)
	}
}

func TestResolve_UnknownName(t *testing.T) {
	collection := Collection{
		"known": {Enabled: true, Settings: Settings{}},
	}

	_, err := Resolve(collection, "missing")

	var unknown *UnknownTemplateError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTemplateError, got %v", err)
	}
	if unknown.Name != "missing" {
		t.Errorf("expected name=missing, got %s", unknown.Name)
	}
}

func TestResolve_DanglingExtends(t *testing.T) {
	collection := Collection{
		"child": {Enabled: true, Extends: "gone", Settings: Settings{}},
	}

	_, err := Resolve(collection, "child")

	var unknown *UnknownTemplateError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTemplateError, got %v", err)
	}
	if unknown.Name != "gone" {
		t.Errorf("expected name=gone, got %s", unknown.Name)
	}
}

func TestResolve_Cycle(t *testing.T) {
	collection := Collection{
		"a": {Enabled: true, Extends: "b", Settings: Settings{}},
		"b": {Enabled: true, Extends: "c", Settings: Settings{}},
		"c": {Enabled: true, Extends: "a", Settings: Settings{}},
	}

	_, err := Resolve(collection, "a")

	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("expected CycleError, got %v", err)
	}

	want := []string{"a", "b", "c", "a"}
	if !reflect.DeepEqual(cycle.Chain, want) {
		t.Errorf("expected chain %v, got %v", want, cycle.Chain)
	}
}

func TestResolve_SelfCycle(t *testing.T) {
	collection := Collection{
		"a": {Enabled: true, Extends: "a", Settings: Settings{}},
	}

	_, err := Resolve(collection, "a")

	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("expected CycleError, got %v", err)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	collection := Collection{
		"base": {
			Enabled: true,
			Settings: Settings{
				"region": StringValue("us-east-1"),
				"count":  IntValue(3),
				"flag":   BoolValue(true),
			},
		},
		"leaf": {
			Enabled: true,
			Extends: "base",
			Settings: Settings{
				"count": IntValue(7),
			},
		},
	}

	first, err := Resolve(collection, "leaf")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	second, err := Resolve(collection, "leaf")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated resolution differs: %v vs %v", first, second)
	}

	// Resolution must not mutate the collection.
	if got := collection["base"].Settings["count"].String(); got != "3" {
		t.Errorf("collection mutated during resolution: count=%s", got)
	}
}
