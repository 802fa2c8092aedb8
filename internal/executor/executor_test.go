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
	"fmt"
	"sync"
	"testing"

	"sable/internal/config"
	"sable/internal/query"
	"sable/internal/store"
)

func testExecutor(t *testing.T) *Executor {
	t.Helper()

	cfg := config.Defaults()
	cfg.Store.KV.Path = t.TempDir()
	cfg.Store.FST.Path = t.TempDir()
	cfg.Store.KV.Database.Compress = false
	cfg.Store.KV.Database.WriteAheadLog = false

	return New(&cfg, store.NewKVPool(&cfg), store.NewFSTPool(&cfg))
}

func mustPush(t *testing.T, e *Executor, collection, bucket, object, text string) {
	t.Helper()

	q, err := query.Push(collection, bucket, object, text)
	if err != nil {
		t.Fatalf("building push query: %v", err)
	}
	if err := e.Push(q); err != nil {
		t.Fatalf("push failed: %v", err)
	}
}

func mustSearch(t *testing.T, e *Executor, collection, bucket, terms string) []string {
	t.Helper()

	q, err := query.Search("e1", collection, bucket, terms, 10, 0)
	if err != nil {
		t.Fatalf("building search query: %v", err)
	}

	oids, err := e.Search(q)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	return oids
}

// TestPushThenSearch covers the basic ingest/query round-trip, including
// stop-word removal on a detectable English sentence.
func TestPushThenSearch(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "The quick brown fox jumps over the lazy dog")

	if oids := mustSearch(t, e, "messages", "user:01", "quick"); len(oids) != 1 || oids[0] != "msg:1" {
		t.Fatalf("expected msg:1 for 'quick', got %v", oids)
	}

	if oids := mustSearch(t, e, "messages", "user:01", "lazy dog"); len(oids) != 1 {
		t.Fatalf("expected multi-term match, got %v", oids)
	}

	// "the" was cleaned up at push time, so it matches nothing.
	if oids := mustSearch(t, e, "messages", "user:01", "the"); len(oids) != 0 {
		t.Fatalf("expected no match for a cleaned-up stop-word, got %v", oids)
	}

	if oids := mustSearch(t, e, "messages", "user:01", "unrelated"); len(oids) != 0 {
		t.Fatalf("expected no match for unknown term, got %v", oids)
	}
}

// TestPushReusesIID verifies a second push of the same object reuses the
// allocated identifier and both texts stay searchable.
func TestPushReusesIID(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "alpha")
	mustPush(t, e, "messages", "user:01", "msg:1", "beta")

	kv, err := e.kv.Acquire(store.KVAcquireOpenOnly, "messages")
	if err != nil || kv == nil {
		t.Fatalf("expected open collection: %v", err)
	}

	action := store.NewKVAction(kv, "user:01")

	counter, ok, err := action.GetMeta(store.MetaIIDIncr)
	if err != nil || !ok {
		t.Fatalf("expected allocated counter: %v", err)
	}
	if counter != 0 {
		t.Fatalf("expected a single allocation (counter 0), got %d", counter)
	}

	for _, term := range []string{"alpha", "beta"} {
		if oids := mustSearch(t, e, "messages", "user:01", term); len(oids) != 1 || oids[0] != "msg:1" {
			t.Fatalf("expected msg:1 for %q, got %v", term, oids)
		}
	}
}

// TestPop verifies term-scoped removal: the popped term stops matching
// while the object's other terms keep matching.
func TestPop(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "The quick brown fox")

	q, err := query.Pop("messages", "user:01", "msg:1", "fox")
	if err != nil {
		t.Fatalf("building pop query: %v", err)
	}

	count, err := e.Pop(q)
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 popped term, got %d", count)
	}

	if oids := mustSearch(t, e, "messages", "user:01", "fox"); len(oids) != 0 {
		t.Fatalf("expected no match for popped term, got %v", oids)
	}
	if oids := mustSearch(t, e, "messages", "user:01", "quick"); len(oids) != 1 {
		t.Fatalf("expected surviving term to match, got %v", oids)
	}
}

// TestPopEverything verifies popping an object's full term set flushes the
// object whole, including the identifier mappings.
func TestPopEverything(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "alpha beta")

	q, err := query.Pop("messages", "user:01", "msg:1", "beta alpha")
	if err != nil {
		t.Fatalf("building pop query: %v", err)
	}

	count, err := e.Pop(q)
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 popped terms, got %d", count)
	}

	kv, err := e.kv.Acquire(store.KVAcquireOpenOnly, "messages")
	if err != nil || kv == nil {
		t.Fatalf("expected open collection: %v", err)
	}

	action := store.NewKVAction(kv, "user:01")
	if _, ok, _ := action.GetOIDToIID("msg:1"); ok {
		t.Fatalf("expected object mappings to be flushed")
	}
}

// TestFlushO verifies a full object flush empties every family row and
// reports the term count.
func TestFlushO(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "alpha beta gamma delta")

	q, err := query.FlushO("messages", "user:01", "msg:1")
	if err != nil {
		t.Fatalf("building flusho query: %v", err)
	}

	count, err := e.FlushO(q)
	if err != nil {
		t.Fatalf("flusho failed: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 flushed terms, got %d", count)
	}

	for _, term := range []string{"alpha", "beta", "gamma", "delta"} {
		if oids := mustSearch(t, e, "messages", "user:01", term); len(oids) != 0 {
			t.Fatalf("expected no match after flusho for %q, got %v", term, oids)
		}
	}
}

// TestFlushB verifies a bucket flush empties every read in the bucket
// while leaving sibling buckets intact.
func TestFlushB(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "alpha")
	mustPush(t, e, "messages", "user:02", "msg:2", "alpha")

	q, err := query.FlushB("messages", "user:01")
	if err != nil {
		t.Fatalf("building flushb query: %v", err)
	}

	count, err := e.FlushB(q)
	if err != nil {
		t.Fatalf("flushb failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected flushb count 1, got %d", count)
	}

	if oids := mustSearch(t, e, "messages", "user:01", "alpha"); len(oids) != 0 {
		t.Fatalf("expected empty bucket after flushb, got %v", oids)
	}
	if oids := mustSearch(t, e, "messages", "user:02", "alpha"); len(oids) != 1 {
		t.Fatalf("expected sibling bucket to survive, got %v", oids)
	}
}

// TestFlushC verifies a collection flush removes everything and reports 0
// on repeat.
func TestFlushC(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "alpha")

	q, err := query.FlushC("messages")
	if err != nil {
		t.Fatalf("building flushc query: %v", err)
	}

	count, err := e.FlushC(q)
	if err != nil {
		t.Fatalf("flushc failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected flushc count 1, got %d", count)
	}

	count, err = e.FlushC(q)
	if err != nil {
		t.Fatalf("repeat flushc failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected flushc count 0 on repeat, got %d", count)
	}
}

// TestSuggest covers the word-completion path over pending graph words.
func TestSuggest(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "books", "all", "b1", "hello helicopter")

	q, err := query.Suggest("e1", "books", "all", "hel", 5)
	if err != nil {
		t.Fatalf("building suggest query: %v", err)
	}

	words, err := e.Suggest(q)
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if len(words) != 2 || words[0] != "helicopter" || words[1] != "hello" {
		t.Fatalf("expected lexical completions, got %v", words)
	}
}

// TestSearchResultOrdering verifies recency ranking: the most recently
// pushed object for a term comes first.
func TestSearchResultOrdering(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "shared")
	mustPush(t, e, "messages", "user:01", "msg:2", "shared")
	mustPush(t, e, "messages", "user:01", "msg:3", "shared")

	oids := mustSearch(t, e, "messages", "user:01", "shared")
	if len(oids) != 3 || oids[0] != "msg:3" || oids[2] != "msg:1" {
		t.Fatalf("expected recency ordering, got %v", oids)
	}
}

// TestSearchLimitOffset verifies windowing of the ranked result set.
func TestSearchLimitOffset(t *testing.T) {
	e := testExecutor(t)

	for i := 1; i <= 5; i++ {
		mustPush(t, e, "messages", "user:01", fmt.Sprintf("msg:%d", i), "shared")
	}

	q, err := query.Search("e1", "messages", "user:01", "shared", 2, 1)
	if err != nil {
		t.Fatalf("building search query: %v", err)
	}

	oids, err := e.Search(q)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(oids) != 2 || oids[0] != "msg:4" || oids[1] != "msg:3" {
		t.Fatalf("expected window [msg:4 msg:3], got %v", oids)
	}
}

// TestSearchMonotonicity verifies adding query terms never grows the
// result set.
func TestSearchMonotonicity(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "alpha beta")
	mustPush(t, e, "messages", "user:01", "msg:2", "alpha")

	single := mustSearch(t, e, "messages", "user:01", "alpha")
	double := mustSearch(t, e, "messages", "user:01", "alpha beta")

	if len(double) > len(single) {
		t.Fatalf("adding terms grew the result set: %v vs %v", single, double)
	}
	if len(double) != 1 || double[0] != "msg:1" {
		t.Fatalf("expected intersection [msg:1], got %v", double)
	}
}

// TestCountDepths verifies the three count depths.
func TestCountDepths(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "alpha beta gamma")
	mustPush(t, e, "messages", "user:01", "msg:2", "alpha")

	q, err := query.Count("messages", "user:01", "msg:1")
	if err != nil {
		t.Fatalf("building count query: %v", err)
	}
	count, err := e.Count(q)
	if err != nil {
		t.Fatalf("object count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 terms for msg:1, got %d", count)
	}

	q, err = query.Count("messages", "user:01", "")
	if err != nil {
		t.Fatalf("building count query: %v", err)
	}
	count, err = e.Count(q)
	if err != nil {
		t.Fatalf("bucket count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 objects in bucket, got %d", count)
	}
}

// TestOIDIIDBijection verifies the identifier bijection invariant after a
// mixed push/pop workload.
func TestOIDIIDBijection(t *testing.T) {
	e := testExecutor(t)

	objects := []string{"o:1", "o:2", "o:3"}

	for _, object := range objects {
		mustPush(t, e, "messages", "user:01", object, "alpha beta "+object)
	}

	popQuery, err := query.Pop("messages", "user:01", "o:2", "beta")
	if err != nil {
		t.Fatalf("building pop query: %v", err)
	}
	if _, err := e.Pop(popQuery); err != nil {
		t.Fatalf("pop failed: %v", err)
	}

	kv, err := e.kv.Acquire(store.KVAcquireOpenOnly, "messages")
	if err != nil || kv == nil {
		t.Fatalf("expected open collection: %v", err)
	}

	action := store.NewKVAction(kv, "user:01")

	for _, object := range objects {
		iid, ok, err := action.GetOIDToIID(object)
		if err != nil || !ok {
			t.Fatalf("expected mapping for %s: %v", object, err)
		}

		oid, ok, err := action.GetIIDToOID(iid)
		if err != nil || !ok || oid != object {
			t.Fatalf("broken bijection for %s: got %q ok=%v err=%v", object, oid, ok, err)
		}
	}
}

// TestTermReverseConsistency verifies that term→iids and iid→terms agree
// in both directions after a workload.
func TestTermReverseConsistency(t *testing.T) {
	e := testExecutor(t)

	mustPush(t, e, "messages", "user:01", "msg:1", "alpha beta")
	mustPush(t, e, "messages", "user:01", "msg:2", "beta gamma")

	popQuery, err := query.Pop("messages", "user:01", "msg:1", "alpha")
	if err != nil {
		t.Fatalf("building pop query: %v", err)
	}
	if _, err := e.Pop(popQuery); err != nil {
		t.Fatalf("pop failed: %v", err)
	}

	kv, err := e.kv.Acquire(store.KVAcquireOpenOnly, "messages")
	if err != nil || kv == nil {
		t.Fatalf("expected open collection: %v", err)
	}

	action := store.NewKVAction(kv, "user:01")

	for _, object := range []string{"msg:1", "msg:2"} {
		iid, ok, err := action.GetOIDToIID(object)
		if err != nil || !ok {
			t.Fatalf("expected mapping for %s", object)
		}

		terms, err := action.GetIIDToTerms(iid)
		if err != nil {
			t.Fatalf("reading terms for %s: %v", object, err)
		}

		for _, term := range terms {
			iids, err := action.GetTermToIIDs(term)
			if err != nil {
				t.Fatalf("reading term list: %v", err)
			}

			found := false
			for _, candidate := range iids {
				if candidate == iid {
					found = true
				}
			}
			if !found {
				t.Fatalf("term %d of %s missing reverse entry", term, object)
			}
		}
	}
}

// TestConcurrentFirstPush verifies the striped bucket lock prevents
// duplicate identifier allocation under racing first pushes.
func TestConcurrentFirstPush(t *testing.T) {
	e := testExecutor(t)

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			q, err := query.Push("messages", "user:01", "msg:racy", fmt.Sprintf("word%d", i))
			if err != nil {
				t.Errorf("building push query: %v", err)

				return
			}
			if err := e.Push(q); err != nil {
				t.Errorf("push failed: %v", err)
			}
		}(i)
	}

	wg.Wait()

	kv, err := e.kv.Acquire(store.KVAcquireOpenOnly, "messages")
	if err != nil || kv == nil {
		t.Fatalf("expected open collection: %v", err)
	}

	action := store.NewKVAction(kv, "user:01")

	counter, ok, err := action.GetMeta(store.MetaIIDIncr)
	if err != nil || !ok {
		t.Fatalf("expected allocated counter: %v", err)
	}
	if counter != 0 {
		t.Fatalf("expected one allocation for one object, counter=%d", counter)
	}
}

// TestRetainWordObjects verifies the term list bound drops the oldest
// identifiers through the reverse cleanup path.
func TestRetainWordObjects(t *testing.T) {
	e := testExecutor(t)
	e.cfg.Store.KV.RetainWordObjects = 2

	for i := 1; i <= 3; i++ {
		mustPush(t, e, "messages", "user:01", fmt.Sprintf("msg:%d", i), "shared")
	}

	oids := mustSearch(t, e, "messages", "user:01", "shared")
	if len(oids) != 2 || oids[0] != "msg:3" || oids[1] != "msg:2" {
		t.Fatalf("expected bounded recency list [msg:3 msg:2], got %v", oids)
	}

	// The drained object lost its only term, so it was flushed whole.
	kv, err := e.kv.Acquire(store.KVAcquireOpenOnly, "messages")
	if err != nil || kv == nil {
		t.Fatalf("expected open collection: %v", err)
	}

	action := store.NewKVAction(kv, "user:01")
	if _, ok, _ := action.GetOIDToIID("msg:1"); ok {
		t.Fatalf("expected drained object to be flushed")
	}
}
