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

	"sable/internal/query"
	"sable/internal/store"
)

// Pop removes the query text's terms from an indexed object, returning the
// number of terms effectively popped. Popping every remaining term flushes
// the object whole.
func (e *Executor) Pop(q query.Query) (uint32, error) {
	access := e.kv.Access()
	access.RLock()
	defer access.RUnlock()

	kv, err := e.kv.Acquire(store.KVAcquireOpenOnly, q.Item.Collection)
	if err != nil {
		return 0, err
	}

	if kv != nil {
		kv.Lock.Lock()
		defer kv.Lock.Unlock()
	}

	action := store.NewKVAction(kv, q.Item.Bucket)

	// An unknown object means there is nothing to pop.
	iid, ok, err := action.GetOIDToIID(q.Item.Object)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	iidTerms, err := action.GetIIDToTerms(iid)
	if err != nil {
		return 0, err
	}
	if len(iidTerms) == 0 {
		return 0, nil
	}

	linked := make(map[uint32]struct{}, len(iidTerms))
	for _, term := range iidTerms {
		linked[term] = struct{}{}
	}

	// Intersect the popped text with the object's term set.
	tokens := tokensOf(q.Lexer)

	var (
		popTerms []uint32
		popWords []string
	)

	for _, token := range tokens {
		if _, ok := linked[token.Hash]; ok {
			popTerms = append(popTerms, token.Hash)
			popWords = append(popWords, token.Word)
		}
	}

	if len(popTerms) == 0 {
		return 0, nil
	}

	// Words whose term list empties are dead for the whole bucket and get
	// scheduled out of the suggestion graph; words other objects still
	// reference must keep suggesting.
	var deadWords []string

	if len(popTerms) == len(iidTerms) {
		log.Info("pop nukes the whole object")

		if _, err := action.BatchFlushBucket(iid, q.Item.Object, iidTerms); err != nil {
			return 0, err
		}

		for index, term := range popTerms {
			if termIIDs, err := action.GetTermToIIDs(term); err == nil && termIIDs == nil {
				deadWords = append(deadWords, popWords[index])
			}
		}
	} else {
		log.Info("pop nukes only certain terms")

		popSet := make(map[uint32]struct{}, len(popTerms))
		for _, term := range popTerms {
			popSet[term] = struct{}{}
		}

		// Nuke the identifier in each popped term's list.
		for index, term := range popTerms {
			termIIDs, err := action.GetTermToIIDs(term)
			if err != nil || termIIDs == nil {
				continue
			}

			termIIDs = removeU32(termIIDs, iid)

			if len(termIIDs) == 0 {
				// The list emptied; delete the whole key.
				if err := action.DeleteTermToIIDs(term); err != nil {
					return 0, err
				}

				deadWords = append(deadWords, popWords[index])
			} else {
				if err := action.SetTermToIIDs(term, termIIDs); err != nil {
					return 0, err
				}
			}
		}

		remaining := make([]uint32, 0, len(iidTerms)-len(popTerms))
		for _, term := range iidTerms {
			if _, popped := popSet[term]; !popped {
				remaining = append(remaining, term)
			}
		}

		if err := action.SetIIDToTerms(iid, remaining); err != nil {
			return 0, err
		}
	}

	e.popGraphWords(q.Item, deadWords)

	return uint32(len(popTerms)), nil
}

// popGraphWords schedules removed words for deletion from the bucket's
// word graph overlay.
func (e *Executor) popGraphWords(item store.Item, words []string) {
	if len(words) == 0 {
		return
	}

	fst, err := e.fst.Acquire(store.FSTAcquireOpenOnly, item.Collection, item.Bucket)
	if err != nil || fst == nil {
		return
	}

	for _, word := range words {
		fst.PopWord(word)
	}
}
