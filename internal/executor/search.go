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
	log "github.com/sirupsen/logrus"

	"sable/internal/lexer"
	"sable/internal/query"
	"sable/internal/store"
)

// Search resolves the query terms to object identifiers: the result is the
// intersection of every term's identifier list, ranked by the first term's
// recency order, windowed by offset and limit. Terms missing from the
// index get a shot at FST-suggested alternates before failing the query.
func (e *Executor) Search(q query.Query) ([]string, error) {
	access := e.kv.Access()
	access.RLock()
	defer access.RUnlock()

	kv, err := e.kv.Acquire(store.KVAcquireOpenOnly, q.Item.Collection)
	if err != nil {
		return nil, err
	}

	if kv != nil {
		kv.Lock.RLock()
		defer kv.Lock.RUnlock()
	}

	action := store.NewKVAction(kv, q.Item.Bucket)

	var (
		foundIIDs []uint32
		first     = true
	)

	for {
		token, ok := q.Lexer.Next()
		if !ok {
			break
		}

		termIIDs, err := e.termIIDsWithAlternates(action, q.Item, token)
		if err != nil {
			return nil, err
		}

		if first {
			foundIIDs = termIIDs
			first = false
		} else {
			// Intersect with the running set, preserving the first
			// term's ranking.
			foundIIDs = intersectOrdered(foundIIDs, termIIDs)
		}

		// No identifier in common? Stop there.
		if len(foundIIDs) == 0 {
			log.Debugf("stop search executor, no iid in common for term: %s", token.Word)

			break
		}
	}

	// Window the ranked set.
	offset := int(q.Offset)
	if offset >= len(foundIIDs) {
		return nil, nil
	}
	foundIIDs = foundIIDs[offset:]

	if limit := int(q.Limit); limit > 0 && len(foundIIDs) > limit {
		foundIIDs = foundIIDs[:limit]
	}

	// Resolve identifiers, dropping any that lost their reverse mapping.
	oids := make([]string, 0, len(foundIIDs))

	for _, iid := range foundIIDs {
		oid, ok, err := action.GetIIDToOID(iid)
		if err != nil {
			return nil, err
		}
		if ok {
			oids = append(oids, oid)
		}
	}

	log.Debugf("got search executor final oids: %v", oids)

	return oids, nil
}

// termIIDsWithAlternates reads a term's identifier list, trying up to
// query_alternates_try FST-completed alternates when the exact term is
// absent from the index.
func (e *Executor) termIIDsWithAlternates(action store.KVAction, item store.Item, token lexer.Token) ([]uint32, error) {
	termIIDs, err := action.GetTermToIIDs(token.Hash)
	if err != nil {
		return nil, err
	}
	if len(termIIDs) > 0 {
		return termIIDs, nil
	}

	tries := e.cfg.Channel.Search.QueryAlternatesTry
	if tries <= 0 {
		return nil, nil
	}

	fst, err := e.fst.Acquire(store.FSTAcquireOpenOnly, item.Collection, item.Bucket)
	if err != nil || fst == nil {
		return nil, nil
	}

	for _, alternate := range fst.SuggestWords(token.Word, tries) {
		if alternate == token.Word {
			continue
		}

		alternateIIDs, err := action.GetTermToIIDs(lexer.HashTerm(alternate))
		if err != nil {
			return nil, err
		}

		if len(alternateIIDs) > 0 {
			log.Debugf("search term %s matched via alternate: %s", token.Word, alternate)

			return alternateIIDs, nil
		}
	}

	return nil, nil
}
