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

package channel

import (
	"sync"
	"time"

	"sable/internal/store"
)

// Statistics tracks the process-wide channel counters served by INFO.
// Scalars are read-mostly and lightly contended; a single RW lock covers
// them all.
type Statistics struct {
	startTime time.Time

	mu               sync.RWMutex
	clientsConnected uint32
	commandsTotal    uint64
	latencyBest      uint32
	latencyWorst     uint32
}

// StatisticsSnapshot is a point-in-time view of the counters, including
// the pool states gathered at snapshot time.
type StatisticsSnapshot struct {
	Uptime              uint64
	ClientsConnected    uint32
	CommandsTotal       uint64
	CommandLatencyBest  uint32
	CommandLatencyWorst uint32
	KVOpenCount         int
	FSTOpenCount        int
	FSTConsolidateCount int
}

// NewStatistics starts the uptime clock.
func NewStatistics() *Statistics {
	return &Statistics{startTime: time.Now()}
}

// ClientConnected accounts a new connection.
func (s *Statistics) ClientConnected() {
	s.mu.Lock()
	s.clientsConnected++
	s.mu.Unlock()

	metricClientsConnected.Inc()
}

// ClientDisconnected accounts a closed connection.
func (s *Statistics) ClientDisconnected() {
	s.mu.Lock()
	if s.clientsConnected > 0 {
		s.clientsConnected--
	}
	s.mu.Unlock()

	metricClientsConnected.Dec()
}

// CommandObserved accounts one executed command and folds its latency into
// the best/worst gauges. Zero-millisecond commands are excluded from the
// latency extremes: they do no real work and would skew the figures.
func (s *Statistics) CommandObserved(took time.Duration) {
	millis := uint32(took.Milliseconds())

	s.mu.Lock()

	s.commandsTotal++

	if millis > s.latencyWorst {
		s.latencyWorst = millis
	}
	if millis > 0 && (s.latencyBest == 0 || millis < s.latencyBest) {
		s.latencyBest = millis
	}

	s.mu.Unlock()

	metricCommandsTotal.Inc()
	metricCommandLatency.Observe(took.Seconds())
}

// Gather snapshots the counters together with the current pool states.
func (s *Statistics) Gather(kv *store.KVPool, fst *store.FSTPool) StatisticsSnapshot {
	fstOpen, fstConsolidated := fst.Count()
	kvOpen := kv.Count()

	s.mu.RLock()
	snapshot := StatisticsSnapshot{
		Uptime:              uint64(time.Since(s.startTime).Seconds()),
		ClientsConnected:    s.clientsConnected,
		CommandsTotal:       s.commandsTotal,
		CommandLatencyBest:  s.latencyBest,
		CommandLatencyWorst: s.latencyWorst,
		KVOpenCount:         kvOpen,
		FSTOpenCount:        fstOpen,
		FSTConsolidateCount: fstConsolidated,
	}
	s.mu.RUnlock()

	metricKVOpen.Set(float64(kvOpen))
	metricFSTOpen.Set(float64(fstOpen))
	metricFSTConsolidations.Set(float64(fstConsolidated))

	return snapshot
}
