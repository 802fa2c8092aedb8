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
	"os"
	"testing"
)

// TestFST_OverlayMembership verifies the logical membership rule:
// (w ∈ graph ∨ w ∈ push) ∧ w ∉ pop.
func TestFST_OverlayMembership(t *testing.T) {
	pool := NewFSTPool(testConfig(t))

	fst, err := pool.Acquire(FSTAcquireAny, "books", "all")
	if err != nil {
		t.Fatalf("unexpected acquire error: %v", err)
	}

	if fst.Contains("hello") {
		t.Fatalf("expected empty graph not to contain 'hello'")
	}

	fst.PushWord("hello")
	if !fst.Contains("hello") {
		t.Fatalf("expected pending push to make 'hello' live")
	}

	fst.PopWord("hello")
	if fst.Contains("hello") {
		t.Fatalf("expected pop to remove pending 'hello'")
	}
}

// TestFST_OverlayDisjointness verifies the push and pop overlays never
// intersect, whatever the operation order.
func TestFST_OverlayDisjointness(t *testing.T) {
	pool := NewFSTPool(testConfig(t))

	fst, err := pool.Acquire(FSTAcquireAny, "books", "disjoint")
	if err != nil {
		t.Fatalf("unexpected acquire error: %v", err)
	}

	check := func() {
		fst.mu.RLock()
		defer fst.mu.RUnlock()

		for word := range fst.pendingPush {
			if _, ok := fst.pendingPop[word]; ok {
				t.Fatalf("overlays intersect on %q", word)
			}
		}
	}

	for _, word := range []string{"alpha", "beta", "gamma"} {
		fst.PushWord(word)
		check()
		fst.PopWord(word)
		check()
		fst.PushWord(word)
		check()
	}
}

// TestFST_ConsolidateAndSuggest verifies that consolidation absorbs the
// overlays into the on-disk set and that suggestions merge the graph with
// pending pushes in lexical order.
func TestFST_ConsolidateAndSuggest(t *testing.T) {
	pool := NewFSTPool(testConfig(t))

	fst, err := pool.Acquire(FSTAcquireAny, "books", "all")
	if err != nil {
		t.Fatalf("unexpected acquire error: %v", err)
	}

	fst.PushWord("hello")
	fst.PushWord("helicopter")

	// Pending words suggest before any consolidation.
	words := fst.SuggestWords("hel", 5)
	if len(words) != 2 || words[0] != "helicopter" || words[1] != "hello" {
		t.Fatalf("expected lexical pending suggestions, got %v", words)
	}

	if err := fst.consolidate(); err != nil {
		t.Fatalf("unexpected consolidate error: %v", err)
	}

	if _, err := os.Stat(fst.path); err != nil {
		t.Fatalf("expected consolidated graph file on disk: %v", err)
	}

	// Consolidated words still suggest, merged with fresh pending ones.
	fst.PushWord("helium")

	words = fst.SuggestWords("hel", 5)
	expected := []string{"helicopter", "helium", "hello"}
	if len(words) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, words)
	}
	for index := range expected {
		if words[index] != expected[index] {
			t.Fatalf("expected %v, got %v", expected, words)
		}
	}

	// Limit applies after the merge.
	if words := fst.SuggestWords("hel", 2); len(words) != 2 {
		t.Fatalf("expected limited suggestions, got %v", words)
	}

	// Prefix bounds the subtree.
	if words := fst.SuggestWords("help", 5); len(words) != 0 {
		t.Fatalf("expected no matches for 'help', got %v", words)
	}
}

// TestFST_ConsolidateAbsorbsPops verifies popped words disappear from the
// rebuilt set.
func TestFST_ConsolidateAbsorbsPops(t *testing.T) {
	pool := NewFSTPool(testConfig(t))

	fst, err := pool.Acquire(FSTAcquireAny, "books", "all")
	if err != nil {
		t.Fatalf("unexpected acquire error: %v", err)
	}

	fst.PushWord("keep")
	fst.PushWord("drop")

	if err := fst.consolidate(); err != nil {
		t.Fatalf("unexpected consolidate error: %v", err)
	}

	fst.PopWord("drop")
	if fst.Contains("drop") {
		t.Fatalf("expected popped word to be hidden pre-consolidation")
	}

	if err := fst.consolidate(); err != nil {
		t.Fatalf("unexpected consolidate error: %v", err)
	}

	if fst.Contains("drop") {
		t.Fatalf("expected popped word to be gone post-consolidation")
	}
	if !fst.Contains("keep") {
		t.Fatalf("expected kept word to survive consolidation")
	}
}

// TestFST_ListWords verifies whole-set listing with offset and limit.
func TestFST_ListWords(t *testing.T) {
	pool := NewFSTPool(testConfig(t))

	fst, err := pool.Acquire(FSTAcquireAny, "books", "all")
	if err != nil {
		t.Fatalf("unexpected acquire error: %v", err)
	}

	for _, word := range []string{"cherry", "apple", "banana"} {
		fst.PushWord(word)
	}

	words := fst.ListWords(10, 0)
	expected := []string{"apple", "banana", "cherry"}
	for index := range expected {
		if words[index] != expected[index] {
			t.Fatalf("expected %v, got %v", expected, words)
		}
	}

	words = fst.ListWords(10, 1)
	if len(words) != 2 || words[0] != "banana" {
		t.Fatalf("expected offset listing, got %v", words)
	}

	words = fst.ListWords(1, 0)
	if len(words) != 1 || words[0] != "apple" {
		t.Fatalf("expected limited listing, got %v", words)
	}
}

// TestFSTPool_EraseBucket verifies that erasing a bucket removes its graph
// file and pool entry.
func TestFSTPool_EraseBucket(t *testing.T) {
	pool := NewFSTPool(testConfig(t))

	fst, err := pool.Acquire(FSTAcquireAny, "books", "all")
	if err != nil {
		t.Fatalf("unexpected acquire error: %v", err)
	}

	fst.PushWord("word")
	if err := fst.consolidate(); err != nil {
		t.Fatalf("unexpected consolidate error: %v", err)
	}

	if _, err := pool.Erase("books", "all"); err != nil {
		t.Fatalf("unexpected erase error: %v", err)
	}

	if open, _ := pool.Count(); open != 0 {
		t.Fatalf("expected pool entry eviction, got %d", open)
	}
	if _, err := os.Stat(fst.path); !os.IsNotExist(err) {
		t.Fatalf("expected graph file removal, got %v", err)
	}

	// A fresh acquire in open-only mode misses.
	if fst, err := pool.Acquire(FSTAcquireOpenOnly, "books", "all"); err != nil || fst != nil {
		t.Fatalf("expected open-only miss after erase")
	}
}

// TestPrefixSuccessor verifies the iterator upper-bound computation.
func TestPrefixSuccessor(t *testing.T) {
	if string(prefixSuccessor("hel")) != "hem" {
		t.Fatalf("unexpected successor for 'hel': %q", prefixSuccessor("hel"))
	}
	if string(prefixSuccessor("a\xff")) != "b" {
		t.Fatalf("unexpected successor for 'a\\xff': %q", prefixSuccessor("a\xff"))
	}
	if prefixSuccessor("\xff") != nil {
		t.Fatalf("expected unbounded successor for '\\xff'")
	}
}
