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

// Package tasker runs the background maintenance loops: the janitor tick
// (idle handle eviction) and the tasker tick (periodic flush and
// consolidation), plus the forced final pass on shutdown.
package tasker

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"sable/internal/store"
)

const (
	// janitorTickInterval paces idle-handle eviction sweeps.
	janitorTickInterval = 5 * time.Second

	// taskerTickInterval paces the heavier flush/consolidate sweeps.
	taskerTickInterval = 30 * time.Second
)

// Tasker owns the maintenance loops over both store pools.
type Tasker struct {
	kv  *store.KVPool
	fst *store.FSTPool
}

// New wires a tasker over both pools.
func New(kv *store.KVPool, fst *store.FSTPool) *Tasker {
	return &Tasker{kv: kv, fst: fst}
}

// Run drives both loops until ctx is canceled, then returns nil. Call
// FinalFlush afterwards to persist whatever the last ticks left pending.
func (t *Tasker) Run(ctx context.Context) error {
	log.Info("tasker is now active")

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return t.loop(ctx, janitorTickInterval, "janitor", t.janitorTick)
	})
	group.Go(func() error {
		return t.loop(ctx, taskerTickInterval, "tasker", t.taskerTick)
	})

	return group.Wait()
}

func (t *Tasker) loop(ctx context.Context, interval time.Duration, name string, tick func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			tickStart := time.Now()

			tick()

			log.Debugf("ran %s tick (took %dms)", name, time.Since(tickStart).Milliseconds())
		case <-ctx.Done():
			return nil
		}
	}
}

// janitorTick evicts idle pool handles.
func (t *Tasker) janitorTick() {
	t.kv.Janitor()
	t.fst.Janitor()
}

// taskerTick flushes due databases and consolidates due word graphs.
func (t *Tasker) taskerTick() {
	t.kv.Flush(false)
	t.fst.Consolidate(false)
}

// FinalFlush forces a full flush and consolidation; run once on shutdown
// so no in-memory state is lost.
func (t *Tasker) FinalFlush() {
	log.Info("running final flush before shutdown")

	t.kv.Flush(true)
	t.fst.Consolidate(true)
}
