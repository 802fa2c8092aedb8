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
	"context"
	"net"
	"sync/atomic"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sable/internal/config"
	"sable/internal/executor"
)

const (
	serverName    = "sable"
	serverVersion = "1.0.0"
)

// Server accepts channel connections and owns the shared search command
// pool and statistics.
type Server struct {
	cfg   *config.Config
	exec  *executor.Executor
	stats *Statistics
	pool  *CommandPool

	available atomic.Bool
}

// NewServer wires a channel server over the executor.
func NewServer(cfg *config.Config, exec *executor.Executor) *Server {
	server := &Server{
		cfg:   cfg,
		exec:  exec,
		stats: NewStatistics(),
		pool:  NewCommandPool(cfg.Channel.Search.CommandPoolSize),
	}

	server.available.Store(true)

	return server
}

// Statistics exposes the channel counters (for tests and diagnostics).
func (s *Server) Statistics() *Statistics {
	return s.stats
}

// SetAvailable toggles command intake. When unavailable, every command
// answers ERR shutting_down.
func (s *Server) SetAvailable(available bool) {
	s.available.Store(available)
}

// Available reports whether commands are accepted.
func (s *Server) Available() bool {
	return s.available.Load()
}

// Run binds the listener and accepts connections until ctx is canceled.
// A bind failure is returned to the caller (and is fatal to the process).
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Channel.Inet)
	if err != nil {
		return errors.Wrap(err, "binding channel listener")
	}

	log.Infof("listening on tcp://%s", s.cfg.Channel.Inet)

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.pool.Stop()

				return nil
			}

			log.Warnf("error handling stream: %v", err)

			continue
		}

		log.Debugf("channel client connecting: %s", conn.RemoteAddr())

		go newConnection(s, conn).serve()
	}
}
