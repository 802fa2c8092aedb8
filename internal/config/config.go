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

// Package config loads and validates the TOML configuration file that drives
// the whole server: channel bind address and timeouts, search limits, and
// the key-value / FST store tuning knobs.
package config

// Config is the root of the configuration tree. Field defaults are applied
// before decoding, so a partial (or empty) file is valid.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Channel ChannelConfig `toml:"channel"`
	Store   StoreConfig   `toml:"store"`
}

// ServerConfig holds process-wide settings.
type ServerConfig struct {
	// LogLevel is one of: error, warn, info, debug, trace.
	LogLevel string `toml:"log_level"`

	// MetricsInet, when non-empty, exposes Prometheus metrics over HTTP on
	// this address (e.g. ":9090"). Empty disables the endpoint; collectors
	// stay registered either way.
	MetricsInet string `toml:"metrics_inet"`
}

// ChannelConfig holds the TCP channel settings.
type ChannelConfig struct {
	// Inet is the socket address the channel listens on.
	Inet string `toml:"inet"`

	// TCPTimeout is the socket write timeout and the read timeout once the
	// START handshake has succeeded, in seconds. Reads before that always
	// use a fixed 20 second timeout.
	TCPTimeout uint64 `toml:"tcp_timeout"`

	// AuthPassword, when set, must be provided by clients in the START
	// handshake. Supports the "${env.NAME}" dereference syntax.
	AuthPassword string `toml:"auth_password"`

	Search ChannelSearchConfig `toml:"search"`
}

// ChannelSearchConfig bounds search, suggest and list operations.
type ChannelSearchConfig struct {
	QueryLimitDefault   uint16 `toml:"query_limit_default"`
	QueryLimitMaximum   uint16 `toml:"query_limit_maximum"`
	QueryAlternatesTry  int    `toml:"query_alternates_try"`
	SuggestLimitDefault uint16 `toml:"suggest_limit_default"`
	SuggestLimitMaximum uint16 `toml:"suggest_limit_maximum"`
	ListLimitDefault    uint16 `toml:"list_limit_default"`
	ListLimitMaximum    uint16 `toml:"list_limit_maximum"`

	// CommandPoolSize is the number of worker goroutines executing search
	// mode commands (QUERY, SUGGEST, LIST).
	CommandPoolSize int `toml:"command_pool_size"`

	// Stopwords maps an ISO 639-3 language code to a replacement stop-word
	// list, overriding the embedded defaults for that language.
	Stopwords map[string][]string `toml:"stopwords"`
}

// StoreConfig holds both store family configurations.
type StoreConfig struct {
	KV  StoreKVConfig  `toml:"kv"`
	FST StoreFSTConfig `toml:"fst"`
}

// StoreKVConfig configures the per-collection key-value databases.
type StoreKVConfig struct {
	Path string `toml:"path"`

	// RetainWordObjects bounds the length of a term's identifier list; the
	// oldest identifiers are dropped on push when exceeded. Zero disables
	// the bound.
	RetainWordObjects int `toml:"retain_word_objects"`

	Pool     StorePoolConfig       `toml:"pool"`
	Database StoreKVDatabaseConfig `toml:"database"`
}

// StorePoolConfig configures a store handle pool.
type StorePoolConfig struct {
	// InactiveAfter is the idle time, in seconds, after which the janitor
	// evicts a cached handle.
	InactiveAfter uint64 `toml:"inactive_after"`
}

// StoreKVDatabaseConfig tunes the embedded key-value engine.
type StoreKVDatabaseConfig struct {
	// FlushAfter is the duration, in seconds, after which an unflushed
	// database becomes eligible for a disk sync.
	FlushAfter uint64 `toml:"flush_after"`

	Compress       bool   `toml:"compress"`
	Parallelism    uint16 `toml:"parallelism"`
	MaxFiles       uint32 `toml:"max_files"`
	MaxCompactions uint16 `toml:"max_compactions"`
	MaxFlushes     uint16 `toml:"max_flushes"`

	// WriteBuffer is the in-memory write buffer size, in kilobytes.
	WriteBuffer uint64 `toml:"write_buffer"`

	WriteAheadLog bool `toml:"write_ahead_log"`
}

// StoreFSTConfig configures the per-bucket word graphs.
type StoreFSTConfig struct {
	Path string `toml:"path"`

	Pool  StorePoolConfig     `toml:"pool"`
	Graph StoreFSTGraphConfig `toml:"graph"`
}

// StoreFSTGraphConfig bounds the pending overlays of a word graph.
type StoreFSTGraphConfig struct {
	// ConsolidateAfter is the duration, in seconds, after which a graph
	// with pending words gets consolidated to disk.
	ConsolidateAfter uint64 `toml:"consolidate_after"`

	// MaxSize is the pending overlay byte budget, in kilobytes; crossing it
	// forces an early consolidation.
	MaxSize uint64 `toml:"max_size"`

	// MaxWords is the pending overlay word count budget; crossing it forces
	// an early consolidation.
	MaxWords uint64 `toml:"max_words"`
}
