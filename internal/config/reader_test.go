// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: December 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestRead_AppliesDefaults verifies that an empty configuration file yields
// the documented default values.
func TestRead_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}

	if cfg.Server.LogLevel != "error" {
		t.Fatalf("expected default log level 'error', got %q", cfg.Server.LogLevel)
	}
	if cfg.Channel.Inet != "[::1]:1491" {
		t.Fatalf("expected default inet, got %q", cfg.Channel.Inet)
	}
	if cfg.Channel.TCPTimeout != 300 {
		t.Fatalf("expected default tcp timeout 300, got %d", cfg.Channel.TCPTimeout)
	}
	if cfg.Channel.Search.QueryLimitDefault != 10 || cfg.Channel.Search.QueryLimitMaximum != 100 {
		t.Fatalf("unexpected default query limits: %+v", cfg.Channel.Search)
	}
	if cfg.Store.KV.Database.FlushAfter != 900 {
		t.Fatalf("expected default flush_after 900, got %d", cfg.Store.KV.Database.FlushAfter)
	}
	if cfg.Store.FST.Graph.ConsolidateAfter != 180 {
		t.Fatalf("expected default consolidate_after 180, got %d", cfg.Store.FST.Graph.ConsolidateAfter)
	}
}

// TestRead_OverridesDefaults verifies that file values replace defaults.
func TestRead_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
log_level = "debug"

[channel]
inet = "127.0.0.1:1491"
tcp_timeout = 60

[channel.search]
query_limit_default = 25

[store.kv]
path = "/tmp/kv"

[store.kv.database]
compress = false
`)

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}

	if cfg.Server.LogLevel != "debug" {
		t.Fatalf("expected log level override, got %q", cfg.Server.LogLevel)
	}
	if cfg.Channel.Inet != "127.0.0.1:1491" || cfg.Channel.TCPTimeout != 60 {
		t.Fatalf("expected channel overrides, got %+v", cfg.Channel)
	}
	if cfg.Channel.Search.QueryLimitDefault != 25 {
		t.Fatalf("expected query limit override, got %d", cfg.Channel.Search.QueryLimitDefault)
	}
	if cfg.Channel.Search.QueryLimitMaximum != 100 {
		t.Fatalf("expected untouched sibling default, got %d", cfg.Channel.Search.QueryLimitMaximum)
	}
	if cfg.Store.KV.Path != "/tmp/kv" || cfg.Store.KV.Database.Compress {
		t.Fatalf("expected store overrides, got %+v", cfg.Store.KV)
	}
}

// TestRead_DereferencesEnvironment verifies the "${env.NAME}" syntax on
// string settings, including the error on unset variables.
func TestRead_DereferencesEnvironment(t *testing.T) {
	t.Setenv("SABLE_TEST_PASSWORD", "hunter2")

	path := writeConfig(t, `
[channel]
auth_password = "${env.SABLE_TEST_PASSWORD}"
`)

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if cfg.Channel.AuthPassword != "hunter2" {
		t.Fatalf("expected dereferenced password, got %q", cfg.Channel.AuthPassword)
	}

	path = writeConfig(t, `
[channel]
auth_password = "${env.SABLE_TEST_UNSET_VARIABLE}"
`)

	if _, err := Read(path); err == nil {
		t.Fatalf("expected error for unset environment variable")
	}
}

// TestRead_IgnoresPartialEnvPatterns verifies that values merely resembling
// the dereference syntax pass through verbatim.
func TestRead_IgnoresPartialEnvPatterns(t *testing.T) {
	for _, value := range []string{"${env.XXX", "a${env.XXX}", "{env.XXX}", "${envXXX}", "${XXX}"} {
		resolved, err := dereferenceEnv(value)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", value, err)
		}
		if resolved != value {
			t.Fatalf("expected %q to pass through, got %q", value, resolved)
		}
	}
}

// TestRead_MissingFile verifies that an unreadable file is a hard error.
func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.cfg")); err == nil {
		t.Fatalf("expected error for missing configuration file")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.cfg")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing test configuration: %v", err)
	}

	return path
}
