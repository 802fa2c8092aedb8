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

// Package main is the sable server entry point. It loads configuration,
// wires the store pools, the executor, the channel server and the
// background tasker, then waits for a shutdown signal.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"sable/internal/channel"
	"sable/internal/config"
	"sable/internal/executor"
	"sable/internal/lexer"
	"sable/internal/store"
	"sable/internal/tasker"
)

func main() {
	configPath := flag.String("config", "./config.cfg", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Read(*configPath)
	if err != nil {
		log.Errorf("could not load configuration: %v", err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		log.Errorf("invalid log level: %s", cfg.Server.LogLevel)
		os.Exit(1)
	}
	log.SetLevel(level)

	log.Info("starting up")

	// Apply configured stop-word overrides before any text flows through
	// the lexer.
	lexer.SetStopWordOverrides(cfg.Channel.Search.Stopwords)

	if cfg.Server.MetricsInet != "" {
		channel.StartMetricsEndpoint(cfg.Server.MetricsInet)
	}

	kvPool := store.NewKVPool(cfg)
	fstPool := store.NewFSTPool(cfg)

	exec := executor.New(cfg, kvPool, fstPool)
	server := channel.NewServer(cfg, exec)
	maintenance := tasker.New(kvPool, fstPool)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Flip the availability flag as soon as a shutdown signal lands, so
	// commands racing the teardown answer ERR shutting_down.
	go func() {
		<-ctx.Done()

		log.Info("shutdown signal received")

		server.SetAvailable(false)
	}()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return server.Run(groupCtx)
	})
	group.Go(func() error {
		return maintenance.Run(groupCtx)
	})

	if err := group.Wait(); err != nil {
		log.Errorf("could not start: %v", err)
		os.Exit(1)
	}

	// Persist everything still pending before exiting cleanly.
	maintenance.FinalFlush()

	log.Info("stopped gracefully")
}
