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

// Package executor implements the store-side of every channel operation:
// push, pop, search, suggest, list, count and the three flush depths. The
// Executor is the single dispatch surface the channel talks to.
package executor

import (
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"sable/internal/config"
	"sable/internal/query"
	"sable/internal/store"
)

// bucketLockStripes sizes the striped first-push mutex pool. Power of two.
const bucketLockStripes = 64

// Executor routes validated queries to their operation over the two store
// pools. One Executor serves the whole process.
type Executor struct {
	cfg *config.Config
	kv  *store.KVPool
	fst *store.FSTPool

	// bucketLocks serialize concurrent first-inserts of the same new
	// object, striped by (collection, bucket) identity. Without this, two
	// racing pushes could allocate two identifiers for one object.
	bucketLocks [bucketLockStripes]sync.Mutex
}

// New builds an Executor over both pools.
func New(cfg *config.Config, kv *store.KVPool, fst *store.FSTPool) *Executor {
	return &Executor{cfg: cfg, kv: kv, fst: fst}
}

// Dispatch runs a query and renders its result: space-joined identifiers
// or words for the read operations, a count for the mutating ones, empty
// for push.
func (e *Executor) Dispatch(q query.Query) (string, error) {
	switch q.Type {
	case query.TypeSearch:
		oids, err := e.Search(q)
		if err != nil {
			return "", err
		}

		return strings.Join(oids, " "), nil
	case query.TypeSuggest:
		words, err := e.Suggest(q)
		if err != nil {
			return "", err
		}

		return strings.Join(words, " "), nil
	case query.TypeList:
		words, err := e.List(q)
		if err != nil {
			return "", err
		}

		return strings.Join(words, " "), nil
	case query.TypePush:
		if err := e.Push(q); err != nil {
			return "", err
		}

		return "", nil
	case query.TypePop:
		count, err := e.Pop(q)
		if err != nil {
			return "", err
		}

		return strconv.FormatUint(uint64(count), 10), nil
	case query.TypeCount:
		count, err := e.Count(q)
		if err != nil {
			return "", err
		}

		return strconv.Itoa(count), nil
	case query.TypeFlushC:
		count, err := e.FlushC(q)
		if err != nil {
			return "", err
		}

		return strconv.FormatUint(uint64(count), 10), nil
	case query.TypeFlushB:
		count, err := e.FlushB(q)
		if err != nil {
			return "", err
		}

		return strconv.FormatUint(uint64(count), 10), nil
	case query.TypeFlushO:
		count, err := e.FlushO(q)
		if err != nil {
			return "", err
		}

		return strconv.FormatUint(uint64(count), 10), nil
	}

	return "", errors.New("unsupported query type")
}

// KVPool exposes the key-value pool (statistics, maintenance triggers).
func (e *Executor) KVPool() *store.KVPool {
	return e.kv
}

// FSTPool exposes the word graph pool (statistics, maintenance triggers).
func (e *Executor) FSTPool() *store.FSTPool {
	return e.fst
}

// bucketLock returns the stripe serializing first-pushes of a bucket.
func (e *Executor) bucketLock(collection, bucket string) *sync.Mutex {
	stripe := (store.HashAtom(collection) ^ store.HashAtom(bucket)) & (bucketLockStripes - 1)

	return &e.bucketLocks[stripe]
}
