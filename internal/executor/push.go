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
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sable/internal/lexer"
	"sable/internal/query"
	"sable/internal/store"
)

// Push indexes the query text under (collection, bucket, object). The
// object's internal identifier is allocated on first push; every new term
// is prepended to its identifier list (recency order) and mirrored into
// the bucket's word graph.
func (e *Executor) Push(q query.Query) error {
	access := e.kv.Access()
	access.RLock()
	defer access.RUnlock()

	kv, err := e.kv.Acquire(store.KVAcquireAny, q.Item.Collection)
	if err != nil {
		return err
	}

	kv.Lock.Lock()
	defer kv.Lock.Unlock()

	action := store.NewKVAction(kv, q.Item.Bucket)

	iid, err := e.resolveOrAllocateIID(action, q.Item)
	if err != nil {
		return err
	}

	// Acquire the current term set of the object.
	iidTerms, err := action.GetIIDToTerms(iid)
	if err != nil {
		return err
	}

	termSet := make(map[uint32]struct{}, len(iidTerms))
	for _, term := range iidTerms {
		termSet[term] = struct{}{}
	}

	var pushedWords []string

	hasCommits := false

	for {
		token, ok := q.Lexer.Next()
		if !ok {
			break
		}

		// Check that the term is not already linked to the identifier.
		if _, linked := termSet[token.Hash]; linked {
			continue
		}

		termIIDs, err := action.GetTermToIIDs(token.Hash)
		if err != nil {
			return err
		}

		// Prepend the identifier; an existing occurrence moves to the
		// head, refreshing its recency rank.
		termIIDs = prependU32(removeU32(termIIDs, iid), iid)

		// Bound the list per retain_word_objects; overflowing identifiers
		// drain through the reverse cleanup batch to keep both sides of
		// the index consistent.
		retain := e.cfg.Store.KV.RetainWordObjects
		if retain > 0 && len(termIIDs) > retain {
			drained := append([]uint32(nil), termIIDs[retain:]...)
			termIIDs = termIIDs[:retain]

			if _, err := action.BatchTruncateObject(token.Hash, drained); err != nil {
				log.Errorf("push truncate of term %d failed: %v", token.Hash, err)
			}
		}

		if err := action.SetTermToIIDs(token.Hash, termIIDs); err != nil {
			return err
		}

		termSet[token.Hash] = struct{}{}
		iidTerms = append(iidTerms, token.Hash)
		pushedWords = append(pushedWords, token.Word)
		hasCommits = true
	}

	// Commit the updated term set once at the end.
	if hasCommits {
		if err := action.SetIIDToTerms(iid, iidTerms); err != nil {
			return err
		}
	}

	e.pushGraphWords(q.Item, pushedWords)

	return nil
}

// resolveOrAllocateIID resolves the object's identifier, allocating the
// next counter value and both mapping directions on first push. The
// bucket-striped lock closes the duplicate-allocation race between
// concurrent first pushes of the same object.
func (e *Executor) resolveOrAllocateIID(action store.KVAction, item store.Item) (uint32, error) {
	lock := e.bucketLock(item.Collection, item.Bucket)
	lock.Lock()
	defer lock.Unlock()

	iid, ok, err := action.GetOIDToIID(item.Object)
	if err != nil {
		return 0, err
	}
	if ok {
		return iid, nil
	}

	log.Info("must initialize push executor oid-to-iid and iid-to-oid")

	counter, ok, err := action.GetMeta(store.MetaIIDIncr)
	if err != nil {
		return 0, err
	}

	next := uint32(0)
	if ok {
		next = counter + 1
	}

	if err := action.SetMeta(store.MetaIIDIncr, next); err != nil {
		return 0, errors.Wrap(err, "bumping identifier counter")
	}

	// Associate OID <> IID (bidirectional).
	if err := action.SetOIDToIID(item.Object, next); err != nil {
		return 0, err
	}
	if err := action.SetIIDToOID(next, item.Object); err != nil {
		return 0, err
	}

	return next, nil
}

// pushGraphWords mirrors newly indexed words into the bucket's word graph,
// deduplicating against its overlay and consolidated set.
func (e *Executor) pushGraphWords(item store.Item, words []string) {
	if len(words) == 0 {
		return
	}

	fst, err := e.fst.Acquire(store.FSTAcquireAny, item.Collection, item.Bucket)
	if err != nil {
		log.Errorf("push could not acquire fst graph: %v", err)

		return
	}

	for _, word := range words {
		if !fst.Contains(word) {
			fst.PushWord(word)
		}
	}
}

func prependU32(values []uint32, head uint32) []uint32 {
	prepended := make([]uint32, 0, len(values)+1)
	prepended = append(prepended, head)

	return append(prepended, values...)
}

func removeU32(values []uint32, needle uint32) []uint32 {
	kept := values[:0]

	for _, value := range values {
		if value != needle {
			kept = append(kept, value)
		}
	}

	return kept
}

// intersectOrdered keeps the elements of ordered that are present in
// other, preserving ordered's ranking.
func intersectOrdered(ordered []uint32, other []uint32) []uint32 {
	otherSet := make(map[uint32]struct{}, len(other))
	for _, value := range other {
		otherSet[value] = struct{}{}
	}

	kept := make([]uint32, 0, len(ordered))

	for _, value := range ordered {
		if _, ok := otherSet[value]; ok {
			kept = append(kept, value)
		}
	}

	return kept
}

// tokensOf exhausts a lexer into its token list.
func tokensOf(l *lexer.TokenLexer) []lexer.Token {
	if l == nil {
		return nil
	}

	return l.Collect()
}
