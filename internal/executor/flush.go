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
	"math"

	log "github.com/sirupsen/logrus"

	"sable/internal/lexer"
	"sable/internal/query"
	"sable/internal/store"
)

// FlushC erases a whole collection: the key-value database file tree and
// every word graph under the collection's directory.
func (e *Executor) FlushC(q query.Query) (uint32, error) {
	count, err := e.kv.Erase(q.Item.Collection, "")
	if err != nil {
		return 0, err
	}

	if _, err := e.fst.Erase(q.Item.Collection, ""); err != nil {
		return 0, err
	}

	return count, nil
}

// FlushB erases a bucket: all five key families under its atom, plus its
// word graph file.
func (e *Executor) FlushB(q query.Query) (uint32, error) {
	count, err := e.kv.Erase(q.Item.Collection, q.Item.Bucket)
	if err != nil {
		return 0, err
	}

	if _, err := e.fst.Erase(q.Item.Collection, q.Item.Bucket); err != nil {
		return 0, err
	}

	return count, nil
}

// FlushO flushes a single object: both identifier mappings, its term set,
// and its entry in every term list. Returns the number of terms flushed.
func (e *Executor) FlushO(q query.Query) (uint32, error) {
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

	// An unknown object means there is nothing to flush.
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

	count, err := action.BatchFlushBucket(iid, q.Item.Object, iidTerms)
	if err != nil {
		return 0, err
	}

	e.popGraphTerms(q.Item, action, iidTerms)

	return count, nil
}

// popGraphTerms schedules overlay removal for flushed terms whose
// identifier list emptied. Only term hashes are known at this point, so
// the bucket's dictionary is scanned and matched by hash.
func (e *Executor) popGraphTerms(item store.Item, action store.KVAction, termsHashed []uint32) {
	if len(termsHashed) == 0 {
		return
	}

	dead := make(map[uint32]struct{}, len(termsHashed))

	for _, term := range termsHashed {
		if termIIDs, err := action.GetTermToIIDs(term); err == nil && termIIDs == nil {
			dead[term] = struct{}{}
		}
	}

	if len(dead) == 0 {
		return
	}

	fst, err := e.fst.Acquire(store.FSTAcquireOpenOnly, item.Collection, item.Bucket)
	if err != nil || fst == nil {
		return
	}

	for _, word := range fst.ListWords(math.MaxInt32, 0) {
		if _, ok := dead[lexer.HashTerm(word)]; ok {
			fst.PopWord(word)
		}
	}
}

// Count dispatches on item depth: term count of an object, object count of
// a bucket, or consolidated bucket count of a collection.
func (e *Executor) Count(q query.Query) (int, error) {
	access := e.kv.Access()
	access.RLock()
	defer access.RUnlock()

	switch {
	case q.Item.Object != "":
		kv, err := e.kv.Acquire(store.KVAcquireOpenOnly, q.Item.Collection)
		if err != nil {
			return 0, err
		}

		action := store.NewKVAction(kv, q.Item.Bucket)

		iid, ok, err := action.GetOIDToIID(q.Item.Object)
		if err != nil || !ok {
			return 0, err
		}

		terms, err := action.GetIIDToTerms(iid)
		if err != nil {
			return 0, err
		}

		return len(terms), nil
	case q.Item.Bucket != "":
		kv, err := e.kv.Acquire(store.KVAcquireOpenOnly, q.Item.Collection)
		if err != nil {
			return 0, err
		}

		return store.NewKVAction(kv, q.Item.Bucket).CountOIDs()
	default:
		count, err := e.fst.CountBuckets(q.Item.Collection)
		if err != nil {
			log.Errorf("count executor could not list buckets: %v", err)

			return 0, err
		}

		return count, nil
	}
}
