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

// Package channel exposes the store over a line-oriented TCP protocol with
// three modes: search (async queries through a worker pool), ingest
// (synchronous mutations) and control (maintenance triggers and
// statistics).
package channel

import "github.com/pkg/errors"

// Mode is a connection's negotiated command set.
type Mode int

// Channel modes, selected by the START handshake.
const (
	ModeSearch Mode = iota
	ModeIngest
	ModeControl
)

// ErrUnknownMode flags a START with an unrecognized mode word.
var ErrUnknownMode = errors.New("unknown channel mode")

// ModeFromString parses a START mode argument.
func ModeFromString(value string) (Mode, error) {
	switch value {
	case "search":
		return ModeSearch, nil
	case "ingest":
		return ModeIngest, nil
	case "control":
		return ModeControl, nil
	}

	return 0, ErrUnknownMode
}

// String names the mode as used on the wire.
func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeIngest:
		return "ingest"
	case ModeControl:
		return "control"
	}

	return "unknown"
}
