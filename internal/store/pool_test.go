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

package store

import (
	"testing"
	"time"
)

// TestKVPool_JanitorEvictsIdleHandles verifies idle-based eviction and
// that fresh handles survive a sweep.
func TestKVPool_JanitorEvictsIdleHandles(t *testing.T) {
	cfg := testConfig(t)
	pool := NewKVPool(cfg)

	if _, err := pool.Acquire(KVAcquireAny, "c:janitor"); err != nil {
		t.Fatalf("unexpected acquire error: %v", err)
	}

	// A generous threshold keeps the handle pooled.
	cfg.Store.KV.Pool.InactiveAfter = 3600
	pool.Janitor()
	if pool.Count() != 1 {
		t.Fatalf("expected fresh handle to survive janitor")
	}

	// A zero threshold evicts everything idle.
	cfg.Store.KV.Pool.InactiveAfter = 0
	time.Sleep(time.Millisecond)
	pool.Janitor()
	if pool.Count() != 0 {
		t.Fatalf("expected idle handle eviction, still %d pooled", pool.Count())
	}

	// The database reopens cleanly after eviction.
	kv, err := pool.Acquire(KVAcquireOpenOnly, "c:janitor")
	if err != nil || kv == nil {
		t.Fatalf("expected reopen after eviction: %v", err)
	}
}

// TestKVPool_FlushForce verifies a forced flush passes over every handle
// without disturbing the pool.
func TestKVPool_FlushForce(t *testing.T) {
	cfg := testConfig(t)
	pool := NewKVPool(cfg)

	kv, err := pool.Acquire(KVAcquireAny, "c:flush")
	if err != nil {
		t.Fatalf("unexpected acquire error: %v", err)
	}

	if err := NewKVAction(kv, "b").SetMeta(MetaIIDIncr, 9); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	pool.Flush(true)

	if pool.Count() != 1 {
		t.Fatalf("expected handle to stay pooled after flush")
	}

	if value, ok, err := NewKVAction(kv, "b").GetMeta(MetaIIDIncr); err != nil || !ok || value != 9 {
		t.Fatalf("expected value to survive flush, got %d ok=%v err=%v", value, ok, err)
	}
}

// TestFSTPool_JanitorConsolidatesBeforeEviction verifies pending overlay
// words are not lost when the janitor drops an idle graph.
func TestFSTPool_JanitorConsolidatesBeforeEviction(t *testing.T) {
	cfg := testConfig(t)
	pool := NewFSTPool(cfg)

	fst, err := pool.Acquire(FSTAcquireAny, "books", "all")
	if err != nil {
		t.Fatalf("unexpected acquire error: %v", err)
	}

	fst.PushWord("persisted")

	cfg.Store.FST.Pool.InactiveAfter = 0
	time.Sleep(time.Millisecond)
	pool.Janitor()

	if open, consolidated := pool.Count(); open != 0 || consolidated != 1 {
		t.Fatalf("expected eviction with consolidation, got open=%d consolidated=%d", open, consolidated)
	}

	// The word survives in the reopened graph.
	reopened, err := pool.Acquire(FSTAcquireOpenOnly, "books", "all")
	if err != nil || reopened == nil {
		t.Fatalf("expected consolidated graph on disk: %v", err)
	}
	if !reopened.Contains("persisted") {
		t.Fatalf("expected pending word to survive eviction")
	}
}
