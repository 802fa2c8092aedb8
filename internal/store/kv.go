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

// Package store implements the two storage families backing the index: an
// ordered key-value database per collection (the inverted index and the
// identifier maps) and a finite-state-transducer word graph per bucket (the
// suggestion dictionary). Both are fronted by process-wide handle pools.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sable/internal/config"
)

// KVAcquireMode selects the cache-miss behavior of KVPool.Acquire.
type KVAcquireMode int

const (
	// KVAcquireAny opens (and creates) the database when not pooled.
	KVAcquireAny KVAcquireMode = iota

	// KVAcquireOpenOnly refuses to create a database file tree; an absent
	// collection yields a nil handle. Used by read-only operations.
	KVAcquireOpenOnly
)

// KV is an open per-collection key-value database handle.
type KV struct {
	db *badger.DB

	stampMu     sync.RWMutex
	lastUsed    time.Time
	lastFlushed time.Time

	// Lock serializes bulk writers on the handle; readers take it shared.
	Lock sync.RWMutex
}

// KVPool caches open KV handles by collection atom.
//
// Lock discipline: acquireMu ensures at most one opener per collection;
// accessMu is the coarse fence held shared by operations using a handle and
// exclusively by the janitor, flush and erase passes; flushMu serializes
// flush passes against each other; poolMu guards the map itself.
type KVPool struct {
	cfg *config.Config

	acquireMu sync.Mutex
	accessMu  sync.RWMutex
	flushMu   sync.Mutex

	poolMu sync.RWMutex
	pool   map[uint32]*KV
}

// NewKVPool creates an empty pool over the configured KV root path.
func NewKVPool(cfg *config.Config) *KVPool {
	return &KVPool{
		cfg:  cfg,
		pool: make(map[uint32]*KV),
	}
}

// Access exposes the coarse access lock. Operations hold it in read mode
// while using a handle; erase and janitor passes take it in write mode to
// fence outstanding users.
func (p *KVPool) Access() *sync.RWMutex {
	return &p.accessMu
}

// Count returns the number of pooled handles.
func (p *KVPool) Count() int {
	p.poolMu.RLock()
	defer p.poolMu.RUnlock()

	return len(p.pool)
}

// Acquire returns the pooled handle for collection, opening the database on
// a miss. In KVAcquireOpenOnly mode an absent on-disk database yields
// (nil, nil).
func (p *KVPool) Acquire(mode KVAcquireMode, collection string) (*KV, error) {
	atom := HashAtom(collection)

	// Freeze the acquire lock; this prevents two databases on the same
	// collection from being opened at the same time.
	p.acquireMu.Lock()
	defer p.acquireMu.Unlock()

	p.poolMu.RLock()
	kv, ok := p.pool[atom]
	p.poolMu.RUnlock()

	if ok {
		kv.bumpLastUsed()

		return kv, nil
	}

	path := p.collectionPath(atom)

	if mode == KVAcquireOpenOnly {
		if _, err := os.Stat(path); err != nil {
			return nil, nil
		}
	}

	log.Infof("kv store not in pool for collection: %s <%x>, opening it", collection, atom)

	kv, err := p.open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening kv database for collection <%x>", atom)
	}

	p.poolMu.Lock()
	p.pool[atom] = kv
	p.poolMu.Unlock()

	return kv, nil
}

// Janitor evicts handles that have been idle for longer than the configured
// inactive_after duration.
func (p *KVPool) Janitor() {
	log.Debug("scanning for kv store pool items to janitor")

	// The access write fence guarantees no operation is mid-flight on a
	// handle we are about to close.
	p.accessMu.Lock()
	defer p.accessMu.Unlock()

	inactiveAfter := time.Duration(p.cfg.Store.KV.Pool.InactiveAfter) * time.Second

	var expired []uint32

	p.poolMu.RLock()
	for atom, kv := range p.pool {
		if kv.lastUsedElapsed() >= inactiveAfter {
			expired = append(expired, atom)
		}
	}
	p.poolMu.RUnlock()

	if len(expired) == 0 {
		return
	}

	p.poolMu.Lock()
	for _, atom := range expired {
		if kv, ok := p.pool[atom]; ok {
			if err := kv.close(); err != nil {
				log.Errorf("kv key: <%x> close failed: %v", atom, err)
			}

			delete(p.pool, atom)
		}
	}
	p.poolMu.Unlock()

	log.Infof("done scanning for kv store pool items to janitor, expired %d items", len(expired))
}

// Flush syncs to disk every handle whose last flush is older than the
// configured flush_after duration, or every handle when forced. Handles are
// flushed one-by-one under short access fences to avoid starving other
// operations.
func (p *KVPool) Flush(force bool) {
	log.Debug("scanning for kv store pool items to flush to disk")

	// Prevent two flush passes from being executed at the same time.
	p.flushMu.Lock()
	defer p.flushMu.Unlock()

	flushAfter := time.Duration(p.cfg.Store.KV.Database.FlushAfter) * time.Second

	// Step 1: list keys to be flushed.
	var flushAtoms []uint32

	p.accessMu.Lock()
	p.poolMu.RLock()
	for atom, kv := range p.pool {
		notFlushedFor := kv.lastFlushedElapsed()

		if force || notFlushedFor >= flushAfter {
			log.Infof("kv key: <%x> not flushed for: %ds, may flush", atom, int(notFlushedFor.Seconds()))

			flushAtoms = append(flushAtoms, atom)
		} else {
			log.Debugf("kv key: <%x> not flushed for: %ds, no flush", atom, int(notFlushedFor.Seconds()))
		}
	}
	p.poolMu.RUnlock()
	p.accessMu.Unlock()

	if len(flushAtoms) == 0 {
		log.Info("no kv store pool items need to be flushed at the moment")

		return
	}

	// Step 2: flush one-by-one (sequential locking avoids a global stall).
	countFlushed := 0

	for _, atom := range flushAtoms {
		p.accessMu.Lock()

		p.poolMu.RLock()
		kv, ok := p.pool[atom]
		p.poolMu.RUnlock()

		if ok {
			if err := kv.Flush(); err != nil {
				log.Errorf("kv key: <%x> flush failed: %v", atom, err)
			} else {
				countFlushed++
			}

			kv.bumpLastFlushed()
		}

		p.accessMu.Unlock()

		// Give a bit of time to other goroutines before continuing.
		runtime.Gosched()
	}

	log.Infof("done scanning for kv store pool items to flush to disk (flushed: %d)", countFlushed)
}

// Erase removes a bucket (all five key families under its atom) or, when
// bucket is empty, a whole collection (handle closed, file tree removed).
// Returns the erase count per the channel contract.
func (p *KVPool) Erase(collection, bucket string) (uint32, error) {
	log.Infof("kv erase requested on collection: %s, bucket: %q", collection, bucket)

	p.accessMu.Lock()
	defer p.accessMu.Unlock()

	if bucket != "" {
		return p.eraseBucket(collection, bucket)
	}

	return p.eraseCollection(collection)
}

func (p *KVPool) eraseCollection(collection string) (uint32, error) {
	atom := HashAtom(collection)

	// Force a close of the pooled handle first.
	p.poolMu.Lock()
	if kv, ok := p.pool[atom]; ok {
		if err := kv.close(); err != nil {
			log.Errorf("kv key: <%x> close failed during erase: %v", atom, err)
		}

		delete(p.pool, atom)
	}
	p.poolMu.Unlock()

	path := p.collectionPath(atom)

	if _, err := os.Stat(path); err != nil {
		log.Debugf("kv collection store does not exist, consider already erased: %s", collection)

		return 0, nil
	}

	if err := os.RemoveAll(path); err != nil {
		return 0, errors.Wrap(err, "erasing kv collection file tree")
	}

	return 1, nil
}

func (p *KVPool) eraseBucket(collection, bucket string) (uint32, error) {
	kv, err := p.Acquire(KVAcquireOpenOnly, collection)
	if err != nil {
		return 0, err
	}
	if kv == nil {
		return 0, nil
	}

	return NewKVAction(kv, bucket).BatchEraseBucket()
}

func (p *KVPool) collectionPath(atom uint32) string {
	return filepath.Join(p.cfg.Store.KV.Path, fmt.Sprintf("%x", atom))
}

func (p *KVPool) open(path string) (*KV, error) {
	database := p.cfg.Store.KV.Database

	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumCompactors(int(database.MaxCompactions) + 1).
		WithNumMemtables(int(database.MaxFlushes)).
		WithNumGoroutines(int(database.Parallelism)).
		WithMemTableSize(int64(database.WriteBuffer) * 1024).
		WithSyncWrites(database.WriteAheadLog)

	if database.Compress {
		opts = opts.WithCompression(options.ZSTD)
	} else {
		opts = opts.WithCompression(options.None)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &KV{
		db:          db,
		lastUsed:    now,
		lastFlushed: now,
	}, nil
}

// Get reads a key, returning nil when absent.
func (s *KV) Get(key []byte) ([]byte, error) {
	var value []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)

		return err
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Put writes a key.
func (s *KV) Put(key, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Delete removes a key.
func (s *KV) Delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// DeletePrefix removes every key sharing prefix. The engine exposes no
// native range-delete, so this scans and batch-deletes.
func (s *KV) DeletePrefix(prefix []byte) error {
	batch := s.db.NewWriteBatch()
	defer batch.Cancel()

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := batch.Delete(it.Item().KeyCopy(nil)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return batch.Flush()
}

// CountPrefix counts the keys sharing prefix.
func (s *KV) CountPrefix(prefix []byte) (int, error) {
	count := 0

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Flush fsyncs pending writes to disk.
func (s *KV) Flush() error {
	return s.db.Sync()
}

func (s *KV) close() error {
	return s.db.Close()
}

func (s *KV) bumpLastUsed() {
	s.stampMu.Lock()
	s.lastUsed = time.Now()
	s.stampMu.Unlock()
}

func (s *KV) bumpLastFlushed() {
	s.stampMu.Lock()
	s.lastFlushed = time.Now()
	s.stampMu.Unlock()
}

func (s *KV) lastUsedElapsed() time.Duration {
	s.stampMu.RLock()
	defer s.stampMu.RUnlock()

	return time.Since(s.lastUsed)
}

func (s *KV) lastFlushedElapsed() time.Duration {
	s.stampMu.RLock()
	defer s.stampMu.RUnlock()

	return time.Since(s.lastFlushed)
}
