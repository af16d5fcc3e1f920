// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package rds

import (
	"reflect"
	"testing"
)

func TestParseProxies(t *testing.T) {
	output := "app\tapp.proxy-abc.eu-west-1.rds.amazonaws.com\tPOSTGRESQL\tTrue\tavailable\n" +
		"legacy\tlegacy.proxy-def.eu-west-1.rds.amazonaws.com\tMYSQL\tFalse\tmodifying\n" +
		"garbage line without tabs\n"

	got := parseProxies(output)
	want := []proxy{
		{
			Name:         "app",
			Endpoint:     "app.proxy-abc.eu-west-1.rds.amazonaws.com",
			EngineFamily: "POSTGRESQL",
			RequireTLS:   true,
			Status:       "available",
		},
		{
			Name:         "legacy",
			Endpoint:     "legacy.proxy-def.eu-west-1.rds.amazonaws.com",
			EngineFamily: "MYSQL",
			RequireTLS:   false,
			Status:       "modifying",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseProxies() = %+v, want %+v", got, want)
	}
}

func TestAvailableProxies(t *testing.T) {
	proxies := []proxy{
		{Name: "a", Status: "available"},
		{Name: "b", Status: "modifying"},
		{Name: "c", Status: "Available"},
	}

	got := availableProxies(proxies)
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
		t.Errorf("availableProxies() = %+v, want a and c", got)
	}
}

func TestEffectivePort(t *testing.T) {
	postgres := proxy{Name: "pg", EngineFamily: "POSTGRESQL"}
	mysql := proxy{Name: "my", EngineFamily: "MYSQL"}

	if port, err := effectivePort(postgres, 0); err != nil || port != 5432 {
		t.Errorf("effectivePort(postgres, 0) = %d, %v; want 5432, nil", port, err)
	}
	if port, err := effectivePort(mysql, 3306); err != nil || port != 3306 {
		t.Errorf("effectivePort(mysql, 3306) = %d, %v; want 3306, nil", port, err)
	}
	if _, err := effectivePort(mysql, 0); err == nil {
		t.Error("effectivePort(mysql, 0): expected error")
	}
	if port, err := effectivePort(postgres, 5433); err != nil || port != 5433 {
		t.Errorf("effectivePort(postgres, 5433) = %d, %v; want the flag to win", port, err)
	}
}
