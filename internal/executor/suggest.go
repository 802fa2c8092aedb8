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

package executor

import (
	"sable/internal/query"
	"sable/internal/store"
)

// Suggest completes the last word of the query prefix from the bucket's
// word graph, in lexical order.
func (e *Executor) Suggest(q query.Query) ([]string, error) {
	access := e.fst.Access()
	access.RLock()
	defer access.RUnlock()

	tokens := tokensOf(q.Lexer)
	if len(tokens) == 0 {
		return nil, nil
	}

	// Complete the last non-empty word only; leading words are context.
	prefix := tokens[len(tokens)-1].Word

	fst, err := e.fst.Acquire(store.FSTAcquireOpenOnly, q.Item.Collection, q.Item.Bucket)
	if err != nil {
		return nil, err
	}
	if fst == nil {
		return nil, nil
	}

	return fst.SuggestWords(prefix, int(q.Limit)), nil
}

// List enumerates the live words of a bucket's word graph in lexical
// order, windowed by offset and limit.
func (e *Executor) List(q query.Query) ([]string, error) {
	access := e.fst.Access()
	access.RLock()
	defer access.RUnlock()

	fst, err := e.fst.Acquire(store.FSTAcquireOpenOnly, q.Item.Collection, q.Item.Bucket)
	if err != nil {
		return nil, err
	}
	if fst == nil {
		return nil, nil
	}

	return fst.ListWords(int(q.Limit), int(q.Offset)), nil
}
