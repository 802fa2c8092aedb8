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
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sable/internal/query"
	"sable/internal/store"
)

const (
	// Non-established sockets get a short grace period to complete the
	// START handshake.
	tcpTimeoutNonEstablished = 20 * time.Second

	// lineSizeMaximum bounds a single command line, quoted text included.
	lineSizeMaximum = 20000

	// Commands slower than this get a warning log line.
	commandSlowWarnMillis = 50

	lineFeed = "\r\n"

	protocolVersion = 1
)

type connection struct {
	server *Server
	conn   net.Conn
	reader *bufio.Reader

	// writeMu serializes response lines; worker goroutines write EVENT
	// lines concurrently with the connection goroutine.
	writeMu sync.Mutex

	mode    Mode
	started bool
}

func newConnection(server *Server, conn net.Conn) *connection {
	return &connection{
		server: server,
		conn:   conn,
		reader: bufio.NewReaderSize(conn, lineSizeMaximum),
	}
}

// serve runs the connection state machine: banner, START handshake, then
// the in-mode command loop until QUIT, timeout or socket failure.
func (c *connection) serve() {
	defer c.conn.Close()

	if tcp, ok := c.conn.(*net.TCPConn); ok {
		_ = tcp.SetNoDelay(true)
	}

	c.server.stats.ClientConnected()
	defer c.server.stats.ClientDisconnected()

	c.write(response{head: "CONNECTED", args: []string{fmt.Sprintf("<%s v%s>", serverName, serverVersion)}})

	for {
		c.applyReadDeadline()

		// ReadSlice fails with ErrBufferFull past the line size bound,
		// which rejects oversized lines instead of buffering them.
		raw, err := c.reader.ReadSlice('\n')
		if err != nil {
			if err == bufio.ErrBufferFull {
				c.write(respErr(errInvalidFormat))
			} else if err != io.EOF {
				log.Debugf("closing channel connection: %v", err)
			}

			return
		}

		line := strings.TrimRight(string(raw), "\r\n")
		if line == "" {
			continue
		}

		if c.handleLine(line) {
			return
		}
	}
}

// handleLine parses and dispatches one command line, returning true when
// the connection should close.
func (c *connection) handleLine(line string) bool {
	log.Debugf("received channel message: %s", line)

	commandStart := time.Now()

	if !c.server.Available() {
		c.write(respErr(errShuttingDown))

		return false
	}

	tokens, err := tokenize(line)
	if err != nil || len(tokens) == 0 {
		if err != nil {
			c.write(respErr(errInvalidFormat))
		}

		return false
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	var (
		replies []response
		closed  bool
	)

	if !c.started {
		replies, closed = c.handleAwaitStart(command, args)
	} else {
		replies, closed = c.handleCommand(command, args)
	}

	for _, reply := range replies {
		c.write(reply)
	}

	took := time.Since(commandStart)
	if took.Milliseconds() >= commandSlowWarnMillis {
		log.Warnf("took a lot of time: %dms to process channel message", took.Milliseconds())
	} else {
		log.Debugf("took %dms/%dus to process channel message", took.Milliseconds(), took.Microseconds())
	}

	c.server.stats.CommandObserved(took)

	return closed
}

// handleAwaitStart accepts the handshake vocabulary only: START, PING and
// QUIT.
func (c *connection) handleAwaitStart(command string, args []string) ([]response, bool) {
	switch command {
	case "START":
		return c.commandStart(args)
	case "PING":
		return []response{respPong()}, false
	case "QUIT":
		return []response{respEndedQuit()}, true
	}

	return []response{respErr(errUnknownCommand)}, false
}

func (c *connection) commandStart(args []string) ([]response, bool) {
	if len(args) < 1 {
		return []response{respErr(errInvalidFormat)}, false
	}

	mode, err := ModeFromString(args[0])
	if err != nil {
		return []response{respErr(errUnknownCommand)}, false
	}

	if password := c.server.cfg.Channel.AuthPassword; password != "" {
		if len(args) < 2 || args[1] != password {
			return []response{respErr(errAuthenticationRequired)}, false
		}
	}

	c.mode = mode
	c.started = true

	started := response{
		head: "STARTED",
		args: []string{
			mode.String(),
			fmt.Sprintf("protocol(%d)", protocolVersion),
			fmt.Sprintf("buffer(%d)", lineSizeMaximum),
		},
	}

	return []response{started}, false
}

// Per-mode command vocabularies; a command known to another mode answers
// command_not_supported instead of unknown_command.
var (
	commandsModeSearch  = []string{"QUERY", "SUGGEST", "LIST", "PING", "HELP", "QUIT"}
	commandsModeIngest  = []string{"PUSH", "POP", "COUNT", "FLUSHC", "FLUSHB", "FLUSHO", "PING", "HELP", "QUIT"}
	commandsModeControl = []string{"TRIGGER", "INFO", "PING", "HELP", "QUIT"}
)

func (c *connection) modeCommands() []string {
	switch c.mode {
	case ModeSearch:
		return commandsModeSearch
	case ModeIngest:
		return commandsModeIngest
	default:
		return commandsModeControl
	}
}

func (c *connection) handleCommand(command string, args []string) ([]response, bool) {
	if !containsCommand(c.modeCommands(), command) {
		if containsCommand(commandsModeSearch, command) ||
			containsCommand(commandsModeIngest, command) ||
			containsCommand(commandsModeControl, command) {
			return []response{respErr(errCommandNotSupported)}, false
		}

		return []response{respErr(errUnknownCommand)}, false
	}

	switch command {
	case "PING":
		return []response{respPong()}, false
	case "QUIT":
		return []response{respEndedQuit()}, true
	case "HELP":
		return []response{respResult("commands(" + strings.Join(c.modeCommands(), ", ") + ")")}, false
	case "QUERY":
		return c.commandQuery(args)
	case "SUGGEST":
		return c.commandSuggest(args)
	case "LIST":
		return c.commandList(args)
	case "PUSH", "POP", "COUNT", "FLUSHC", "FLUSHB", "FLUSHO":
		return c.commandIngest(command, args)
	case "TRIGGER":
		return c.commandTrigger(args)
	case "INFO":
		return c.commandInfo()
	}

	return []response{respErr(errUnknownCommand)}, false
}

func (c *connection) commandQuery(args []string) ([]response, bool) {
	if len(args) < 3 {
		return []response{respErr(errInvalidFormat)}, false
	}

	search := c.server.cfg.Channel.Search

	limit, offset, err := parseLimitOffset(args[3:], search.QueryLimitDefault, search.QueryLimitMaximum)
	if err != nil {
		return []response{respErr(errInvalidFormat)}, false
	}

	eventID := generateEventID()

	q, err := query.Search(eventID, args[0], args[1], args[2], limit, offset)
	if err != nil {
		return []response{respErr(errInvalidFormat)}, false
	}

	c.enqueueEvent("QUERY", eventID, func() ([]string, error) {
		return c.server.exec.Search(q)
	})

	return nil, false
}

func (c *connection) commandSuggest(args []string) ([]response, bool) {
	if len(args) < 3 {
		return []response{respErr(errInvalidFormat)}, false
	}

	search := c.server.cfg.Channel.Search

	limit, _, err := parseLimitOffset(args[3:], search.SuggestLimitDefault, search.SuggestLimitMaximum)
	if err != nil {
		return []response{respErr(errInvalidFormat)}, false
	}

	eventID := generateEventID()

	q, err := query.Suggest(eventID, args[0], args[1], args[2], limit)
	if err != nil {
		return []response{respErr(errInvalidFormat)}, false
	}

	c.enqueueEvent("SUGGEST", eventID, func() ([]string, error) {
		return c.server.exec.Suggest(q)
	})

	return nil, false
}

func (c *connection) commandList(args []string) ([]response, bool) {
	if len(args) < 2 {
		return []response{respErr(errInvalidFormat)}, false
	}

	search := c.server.cfg.Channel.Search

	limit, offset, err := parseLimitOffset(args[2:], search.ListLimitDefault, search.ListLimitMaximum)
	if err != nil {
		return []response{respErr(errInvalidFormat)}, false
	}

	eventID := generateEventID()

	q, err := query.List(eventID, args[0], args[1], limit, offset)
	if err != nil {
		return []response{respErr(errInvalidFormat)}, false
	}

	c.enqueueEvent("LIST", eventID, func() ([]string, error) {
		return c.server.exec.List(q)
	})

	return nil, false
}

// enqueueEvent writes the PENDING marker, then hands the command to the
// worker pool; the EVENT line is written whenever the worker completes.
// The marker goes out before the enqueue so a fast worker cannot reorder
// the two lines.
func (c *connection) enqueueEvent(kind, eventID string, run func() ([]string, error)) {
	c.write(respPending(eventID))

	c.server.pool.Enqueue(func() {
		items, err := run()
		if err != nil {
			log.Errorf("async %s command failed: %v", kind, err)

			c.write(respErr(errInternalError))

			return
		}

		c.write(respEvent(kind, eventID, items))
	})
}

// commandIngest runs the synchronous ingest-mode commands through the
// dispatcher.
func (c *connection) commandIngest(command string, args []string) ([]response, bool) {
	q, err := c.buildIngestQuery(command, args)
	if err != nil {
		return []response{respErr(errInvalidFormat)}, false
	}

	result, err := c.server.exec.Dispatch(q)
	if err != nil {
		// A write against an absent store handle is a resource miss, not
		// an internal fault.
		if errors.Is(err, store.ErrKVUnavailable) {
			return []response{respNil()}, false
		}

		log.Errorf("%s command failed: %v", command, err)

		return []response{respErr(errInternalError)}, false
	}

	if result == "" {
		return []response{respOK()}, false
	}

	return []response{respResult(result)}, false
}

func (c *connection) buildIngestQuery(command string, args []string) (query.Query, error) {
	switch command {
	case "PUSH":
		if len(args) != 4 {
			return query.Query{}, errMalformedLine
		}

		return query.Push(args[0], args[1], args[2], args[3])
	case "POP":
		if len(args) != 4 {
			return query.Query{}, errMalformedLine
		}

		return query.Pop(args[0], args[1], args[2], args[3])
	case "COUNT":
		switch len(args) {
		case 1:
			return query.Count(args[0], "", "")
		case 2:
			return query.Count(args[0], args[1], "")
		case 3:
			return query.Count(args[0], args[1], args[2])
		}

		return query.Query{}, errMalformedLine
	case "FLUSHC":
		if len(args) != 1 {
			return query.Query{}, errMalformedLine
		}

		return query.FlushC(args[0])
	case "FLUSHB":
		if len(args) != 2 {
			return query.Query{}, errMalformedLine
		}

		return query.FlushB(args[0], args[1])
	case "FLUSHO":
		if len(args) != 3 {
			return query.Query{}, errMalformedLine
		}

		return query.FlushO(args[0], args[1], args[2])
	}

	return query.Query{}, errMalformedLine
}

func (c *connection) commandTrigger(args []string) ([]response, bool) {
	if len(args) == 0 {
		return []response{respResult("consolidate")}, false
	}

	switch strings.ToLower(args[0]) {
	case "consolidate":
		c.server.exec.FSTPool().Consolidate(true)

		return []response{respOK()}, false
	}

	return []response{respErr(errInvalidFormat)}, false
}

func (c *connection) commandInfo() ([]response, bool) {
	snapshot := c.server.stats.Gather(c.server.exec.KVPool(), c.server.exec.FSTPool())

	return []response{respResult(
		fmt.Sprintf("uptime(%d)", snapshot.Uptime),
		fmt.Sprintf("clients_connected(%d)", snapshot.ClientsConnected),
		fmt.Sprintf("commands_total(%d)", snapshot.CommandsTotal),
		fmt.Sprintf("command_latency_best(%d)", snapshot.CommandLatencyBest),
		fmt.Sprintf("command_latency_worst(%d)", snapshot.CommandLatencyWorst),
		fmt.Sprintf("kv_open_count(%d)", snapshot.KVOpenCount),
		fmt.Sprintf("fst_open_count(%d)", snapshot.FSTOpenCount),
		fmt.Sprintf("fst_consolidate_count(%d)", snapshot.FSTConsolidateCount),
	)}, false
}

// write serializes one response line onto the socket. In-flight workers
// racing a closed connection drop their write error here.
func (c *connection) write(reply response) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	timeout := time.Duration(c.server.cfg.Channel.TCPTimeout) * time.Second
	_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))

	if _, err := fmt.Fprintf(c.conn, "%s%s", reply.render(), lineFeed); err != nil {
		log.Debugf("channel write failed: %v", err)
	} else {
		log.Debugf("wrote response: %s", reply.render())
	}
}

func (c *connection) applyReadDeadline() {
	timeout := tcpTimeoutNonEstablished
	if c.started {
		timeout = time.Duration(c.server.cfg.Channel.TCPTimeout) * time.Second
	}

	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))
}

func containsCommand(commands []string, command string) bool {
	for _, candidate := range commands {
		if candidate == command {
			return true
		}
	}

	return false
}
