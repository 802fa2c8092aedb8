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
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics, global only (no unbounded label cardinality).
var (
	metricCommandsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sable_channel_commands_total",
		Help: "Total channel commands executed across all connections",
	})
	metricCommandLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sable_channel_command_latency_seconds",
		Help:    "Distribution of channel command execution latency",
		Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
	})
	metricClientsConnected = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sable_channel_clients_connected",
		Help: "Number of currently connected channel clients",
	})
	metricKVOpen = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sable_store_kv_open_count",
		Help: "Number of open key-value store handles",
	})
	metricFSTOpen = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sable_store_fst_open_count",
		Help: "Number of open word graph handles",
	})
	metricFSTConsolidations = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sable_store_fst_consolidate_total",
		Help: "Total word graph consolidations since startup",
	})
)

func init() {
	// Register eagerly; registration is harmless when no endpoint is
	// exposed.
	prometheus.MustRegister(
		metricCommandsTotal,
		metricCommandLatency,
		metricClientsConnected,
		metricKVOpen,
		metricFSTOpen,
		metricFSTConsolidations,
	)
}

// StartMetricsEndpoint exposes /metrics on addr in a background goroutine.
// Call at most once, with a non-empty address.
func StartMetricsEndpoint(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		_ = server.ListenAndServe()
	}()
}
