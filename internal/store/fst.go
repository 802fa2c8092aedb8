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
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchbase/vellum"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sable/internal/config"
)

// FSTAcquireMode selects the cache-miss behavior of FSTPool.Acquire.
type FSTAcquireMode int

const (
	// FSTAcquireAny opens (or initializes an empty) graph when not pooled.
	FSTAcquireAny FSTAcquireMode = iota

	// FSTAcquireOpenOnly refuses to initialize a graph; an absent on-disk
	// file yields a nil handle.
	FSTAcquireOpenOnly
)

// FST is a per-bucket word graph: an immutable memory-mapped set plus two
// in-memory pending overlays. Logical membership is
// (w ∈ graph ∨ w ∈ pendingPush) ∧ w ∉ pendingPop.
type FST struct {
	path string

	// mu guards the graph mapping and both overlays. Consolidation swaps
	// the mapping under the write lock; readers always observe either the
	// old or the new fully-initialized mapping.
	mu           sync.RWMutex
	graph        *vellum.FST
	pendingPush  map[string]struct{}
	pendingPop   map[string]struct{}
	pendingBytes uint64

	stampMu          sync.RWMutex
	lastUsed         time.Time
	lastConsolidated time.Time
}

type fstPoolKey struct {
	collection uint32
	bucket     uint32
}

// FSTPool caches open graphs by (collection atom, bucket atom). Lock
// discipline mirrors KVPool: acquireMu for the miss path, accessMu as the
// coarse fence, consolidateMu serializing consolidation passes, poolMu
// guarding the map.
type FSTPool struct {
	cfg *config.Config

	acquireMu     sync.Mutex
	accessMu      sync.RWMutex
	consolidateMu sync.Mutex

	poolMu sync.RWMutex
	pool   map[fstPoolKey]*FST

	consolidateCount atomic.Uint64
}

// NewFSTPool creates an empty pool over the configured FST root path.
func NewFSTPool(cfg *config.Config) *FSTPool {
	return &FSTPool{
		cfg:  cfg,
		pool: make(map[fstPoolKey]*FST),
	}
}

// Access exposes the coarse access lock, held shared by operations using a
// graph and exclusively by the janitor and erase passes.
func (p *FSTPool) Access() *sync.RWMutex {
	return &p.accessMu
}

// Count returns the number of pooled graphs and the total consolidation
// count since startup.
func (p *FSTPool) Count() (int, int) {
	p.poolMu.RLock()
	open := len(p.pool)
	p.poolMu.RUnlock()

	return open, int(p.consolidateCount.Load())
}

// Acquire returns the pooled graph for (collection, bucket), opening the
// on-disk file on a miss. In FSTAcquireOpenOnly mode an absent file yields
// (nil, nil).
func (p *FSTPool) Acquire(mode FSTAcquireMode, collection, bucket string) (*FST, error) {
	key := fstPoolKey{collection: HashAtom(collection), bucket: HashAtom(bucket)}

	p.acquireMu.Lock()
	defer p.acquireMu.Unlock()

	p.poolMu.RLock()
	fst, ok := p.pool[key]
	p.poolMu.RUnlock()

	if ok {
		fst.bumpLastUsed()

		return fst, nil
	}

	path := p.graphPath(collection, bucket)

	_, statErr := os.Stat(path)

	if mode == FSTAcquireOpenOnly && statErr != nil {
		return nil, nil
	}

	log.Infof("fst store not in pool for collection: %s and bucket: %s, opening it", collection, bucket)

	var graph *vellum.FST

	if statErr == nil {
		opened, err := vellum.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening fst graph")
		}

		graph = opened
	}

	now := time.Now()

	fst = &FST{
		path:             path,
		graph:            graph,
		pendingPush:      make(map[string]struct{}),
		pendingPop:       make(map[string]struct{}),
		lastUsed:         now,
		lastConsolidated: now,
	}

	p.poolMu.Lock()
	p.pool[key] = fst
	p.poolMu.Unlock()

	return fst, nil
}

// Janitor evicts graphs idle for longer than inactive_after, consolidating
// any pending words first so overlays are not lost with the handle.
func (p *FSTPool) Janitor() {
	log.Debug("scanning for fst store pool items to janitor")

	p.accessMu.Lock()
	defer p.accessMu.Unlock()

	inactiveAfter := time.Duration(p.cfg.Store.FST.Pool.InactiveAfter) * time.Second

	var expired []fstPoolKey

	p.poolMu.RLock()
	for key, fst := range p.pool {
		if fst.lastUsedElapsed() >= inactiveAfter {
			expired = append(expired, key)
		}
	}
	p.poolMu.RUnlock()

	if len(expired) == 0 {
		return
	}

	p.poolMu.Lock()
	for _, key := range expired {
		fst, ok := p.pool[key]
		if !ok {
			continue
		}

		if fst.hasPending() {
			if err := fst.consolidate(); err != nil {
				log.Errorf("fst consolidate before eviction failed: %v", err)

				continue
			}

			p.consolidateCount.Add(1)
		}

		fst.closeGraph()
		delete(p.pool, key)
	}
	p.poolMu.Unlock()

	log.Infof("done scanning for fst store pool items to janitor, expired %d items", len(expired))
}

// Consolidate rebuilds the on-disk set of every graph whose overlays are
// due (or of all dirty graphs when forced), absorbing pending pushes and
// pops.
func (p *FSTPool) Consolidate(force bool) {
	log.Debug("scanning for fst store pool items to consolidate")

	// Prevent two consolidation passes from running at the same time.
	p.consolidateMu.Lock()
	defer p.consolidateMu.Unlock()

	graph := p.cfg.Store.FST.Graph

	var due []*FST

	p.poolMu.RLock()
	for _, fst := range p.pool {
		if !fst.hasPending() {
			continue
		}

		if force || fst.consolidationDue(graph) {
			due = append(due, fst)
		}
	}
	p.poolMu.RUnlock()

	if len(due) == 0 {
		return
	}

	count := 0

	for _, fst := range due {
		if err := fst.consolidate(); err != nil {
			log.Errorf("fst consolidate failed: %v", err)

			continue
		}

		count++
		p.consolidateCount.Add(1)

		runtime.Gosched()
	}

	log.Infof("done consolidating fst store pool items (consolidated: %d)", count)
}

// Erase removes a bucket's graph file or, when bucket is empty, a whole
// collection's graph directory, dropping affected pool entries first.
func (p *FSTPool) Erase(collection, bucket string) (uint32, error) {
	log.Infof("fst erase requested on collection: %s, bucket: %q", collection, bucket)

	p.accessMu.Lock()
	defer p.accessMu.Unlock()

	collectionAtom := HashAtom(collection)

	p.poolMu.Lock()
	for key, fst := range p.pool {
		if key.collection != collectionAtom {
			continue
		}
		if bucket != "" && key.bucket != HashAtom(bucket) {
			continue
		}

		fst.closeGraph()
		delete(p.pool, key)
	}
	p.poolMu.Unlock()

	var path string
	if bucket != "" {
		path = p.graphPath(collection, bucket)
	} else {
		path = filepath.Join(p.cfg.Store.FST.Path, collection)
	}

	if _, err := os.Stat(path); err != nil {
		return 0, nil
	}

	if err := os.RemoveAll(path); err != nil {
		return 0, errors.Wrap(err, "erasing fst file tree")
	}

	return 1, nil
}

// CountBuckets counts the consolidated graphs of a collection from its
// on-disk directory listing.
func (p *FSTPool) CountBuckets(collection string) (int, error) {
	entries, err := os.ReadDir(filepath.Join(p.cfg.Store.FST.Path, collection))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}

		return 0, err
	}

	count := 0

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".fst") {
			count++
		}
	}

	return count, nil
}

func (p *FSTPool) graphPath(collection, bucket string) string {
	return filepath.Join(p.cfg.Store.FST.Path, collection, fmt.Sprintf("%s.fst", bucket))
}

// Contains reports logical membership of word across the graph and its
// overlays.
func (f *FST) Contains(word string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	// 1. The 'pop' overlay wins: the word is scheduled for removal.
	if _, ok := f.pendingPop[word]; ok {
		return false
	}

	// 2. The 'push' overlay: the word exists even if not yet consolidated.
	if _, ok := f.pendingPush[word]; ok {
		return true
	}

	// 3. The consolidated graph.
	return f.graphContains(word)
}

// PushWord schedules word for insertion. Any pending removal is undone
// first, keeping the overlays disjoint.
func (f *FST) PushWord(word string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.pendingPop, word)

	if _, ok := f.pendingPush[word]; !ok && !f.graphContains(word) {
		f.pendingPush[word] = struct{}{}
		f.pendingBytes += uint64(len(word))
	}
}

// PopWord schedules word for removal. Any pending insertion is undone
// first, keeping the overlays disjoint.
func (f *FST) PopWord(word string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.pendingPush[word]; ok {
		delete(f.pendingPush, word)
		f.pendingBytes -= uint64(len(word))
	}

	if f.graphContains(word) {
		f.pendingPop[word] = struct{}{}
	}
}

// SuggestWords returns up to limit live words starting with prefix, merged
// in lexical order across the graph and the push overlay.
func (f *FST) SuggestWords(prefix string, limit int) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.mergeWords(prefix, limit, 0)
}

// ListWords returns up to limit live words of the whole set, in lexical
// order, skipping the first offset words.
func (f *FST) ListWords(limit, offset int) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.mergeWords("", limit, offset)
}

// mergeWords walks the graph's ordered prefix subtree and the sorted push
// overlay in lock-step, suppressing popped words. Callers hold f.mu.
func (f *FST) mergeWords(prefix string, limit, offset int) []string {
	if limit <= 0 {
		return nil
	}

	// Sorted push overlay slice, filtered by prefix.
	var pushes []string
	for word := range f.pendingPush {
		if strings.HasPrefix(word, prefix) {
			pushes = append(pushes, word)
		}
	}
	sort.Strings(pushes)

	var words []string

	iterator := f.graphIterator(prefix)

	next := func() (string, bool) {
		if iterator == nil {
			return "", false
		}

		word, _ := iterator.Current()
		value := string(word)

		if err := iterator.Next(); err != nil {
			iterator = nil
		}

		return value, true
	}

	graphWord, graphOK := next()
	pushIndex := 0

	emit := func(word string) bool {
		if _, popped := f.pendingPop[word]; popped {
			return true
		}

		if offset > 0 {
			offset--

			return true
		}

		words = append(words, word)

		return len(words) < limit
	}

	for graphOK || pushIndex < len(pushes) {
		var word string

		switch {
		case graphOK && pushIndex < len(pushes):
			if graphWord <= pushes[pushIndex] {
				word = graphWord

				if graphWord == pushes[pushIndex] {
					pushIndex++
				}

				graphWord, graphOK = next()
			} else {
				word = pushes[pushIndex]
				pushIndex++
			}
		case graphOK:
			word = graphWord
			graphWord, graphOK = next()
		default:
			word = pushes[pushIndex]
			pushIndex++
		}

		if !emit(word) {
			break
		}
	}

	return words
}

// consolidate rebuilds the on-disk set, absorbing both overlays, then
// atomically swaps the file and the mapping. The write lock fences every
// reader for the duration of the swap.
func (f *FST) consolidate() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.pendingPush) == 0 && len(f.pendingPop) == 0 {
		return nil
	}

	log.Debugf("consolidating fst graph at path: %s", f.path)

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Wrap(err, "creating fst directory")
	}

	temporaryPath := f.path + ".tmp"

	file, err := os.Create(temporaryPath)
	if err != nil {
		return errors.Wrap(err, "creating temporary fst file")
	}

	builder, err := vellum.New(file, nil)
	if err != nil {
		file.Close()

		return errors.Wrap(err, "initializing fst builder")
	}

	var pushes []string
	for word := range f.pendingPush {
		pushes = append(pushes, word)
	}
	sort.Strings(pushes)

	// Stream the old set in sorted order, merge-sorting with the push
	// overlay and suppressing the pop overlay.
	insert := func(word string) error {
		if _, popped := f.pendingPop[word]; popped {
			return nil
		}

		return builder.Insert([]byte(word), 0)
	}

	buildErr := func() error {
		iterator := f.graphIterator("")
		pushIndex := 0

		var graphWord string
		graphOK := false

		if iterator != nil {
			word, _ := iterator.Current()
			graphWord, graphOK = string(word), true
		}

		advance := func() {
			if iterator == nil {
				graphOK = false

				return
			}

			if err := iterator.Next(); err != nil {
				iterator = nil
				graphOK = false

				return
			}

			word, _ := iterator.Current()
			graphWord = string(word)
		}

		for graphOK || pushIndex < len(pushes) {
			switch {
			case graphOK && pushIndex < len(pushes):
				if graphWord <= pushes[pushIndex] {
					if graphWord == pushes[pushIndex] {
						pushIndex++
					}

					if err := insert(graphWord); err != nil {
						return err
					}

					advance()
				} else {
					if err := insert(pushes[pushIndex]); err != nil {
						return err
					}

					pushIndex++
				}
			case graphOK:
				if err := insert(graphWord); err != nil {
					return err
				}

				advance()
			default:
				if err := insert(pushes[pushIndex]); err != nil {
					return err
				}

				pushIndex++
			}
		}

		return nil
	}()

	if buildErr != nil {
		builder.Close()
		file.Close()
		os.Remove(temporaryPath)

		return errors.Wrap(buildErr, "building consolidated fst")
	}

	if err := builder.Close(); err != nil {
		file.Close()
		os.Remove(temporaryPath)

		return errors.Wrap(err, "finalizing consolidated fst")
	}

	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)

		return errors.Wrap(err, "closing consolidated fst file")
	}

	if err := os.Rename(temporaryPath, f.path); err != nil {
		os.Remove(temporaryPath)

		return errors.Wrap(err, "swapping consolidated fst file")
	}

	// Reopen the mapping; the old file handle stays valid for any reader
	// that grabbed it before the write lock, and is released here.
	reopened, err := vellum.Open(f.path)
	if err != nil {
		return errors.Wrap(err, "reopening consolidated fst")
	}

	if f.graph != nil {
		f.graph.Close()
	}

	f.graph = reopened
	f.pendingPush = make(map[string]struct{})
	f.pendingPop = make(map[string]struct{})
	f.pendingBytes = 0

	f.stampMu.Lock()
	f.lastConsolidated = time.Now()
	f.stampMu.Unlock()

	return nil
}

// consolidationDue reports whether the overlays crossed a time or size
// threshold.
func (f *FST) consolidationDue(graph config.StoreFSTGraphConfig) bool {
	f.stampMu.RLock()
	elapsed := time.Since(f.lastConsolidated)
	f.stampMu.RUnlock()

	if elapsed >= time.Duration(graph.ConsolidateAfter)*time.Second {
		return true
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if uint64(len(f.pendingPush)+len(f.pendingPop)) > graph.MaxWords {
		return true
	}

	return f.pendingBytes > graph.MaxSize*1024
}

func (f *FST) hasPending() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.pendingPush) > 0 || len(f.pendingPop) > 0
}

// graphContains checks the consolidated set only. Callers hold f.mu.
func (f *FST) graphContains(word string) bool {
	if f.graph == nil {
		return false
	}

	contained, err := f.graph.Contains([]byte(word))
	if err != nil {
		log.Errorf("fst contains check failed: %v", err)

		return false
	}

	return contained
}

// graphIterator opens an ordered iterator over the graph's prefix subtree,
// or nil when the subtree is empty. Callers hold f.mu.
func (f *FST) graphIterator(prefix string) *vellum.FSTIterator {
	if f.graph == nil {
		return nil
	}

	var end []byte
	if prefix != "" {
		end = prefixSuccessor(prefix)
	}

	iterator, err := f.graph.Iterator([]byte(prefix), end)
	if err != nil {
		// Includes the iterator-done case on an empty subtree.
		return nil
	}

	return iterator
}

func (f *FST) closeGraph() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.graph != nil {
		f.graph.Close()
		f.graph = nil
	}
}

func (f *FST) bumpLastUsed() {
	f.stampMu.Lock()
	f.lastUsed = time.Now()
	f.stampMu.Unlock()
}

func (f *FST) lastUsedElapsed() time.Duration {
	f.stampMu.RLock()
	defer f.stampMu.RUnlock()

	return time.Since(f.lastUsed)
}

// prefixSuccessor returns the smallest byte string greater than every
// string prefixed by prefix, or nil when no such bound exists.
func prefixSuccessor(prefix string) []byte {
	end := []byte(prefix)

	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++

			return end[:i+1]
		}
	}

	return nil
}
