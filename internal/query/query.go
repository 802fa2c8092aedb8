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

// Package query defines the typed queries the channel hands to the store
// executors, and the builder validating raw command arguments into them.
package query

import (
	"sable/internal/lexer"
	"sable/internal/store"
)

// Type discriminates the query variants.
type Type int

// Query variants, one per executor.
const (
	TypeSearch Type = iota
	TypeSuggest
	TypeList
	TypePush
	TypePop
	TypeCount
	TypeFlushC
	TypeFlushB
	TypeFlushO
)

// Query is a validated, lexed operation ready for dispatch.
type Query struct {
	Type Type
	Item store.Item

	// EventID tags async (search-mode) queries for the EVENT response.
	EventID string

	// Lexer carries the tokenized text for the variants that take text.
	Lexer *lexer.TokenLexer

	Limit  uint16
	Offset uint32
}
