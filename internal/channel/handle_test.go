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
	"net"
	"strings"
	"testing"
	"time"

	"sable/internal/config"
	"sable/internal/executor"
	"sable/internal/store"
)

type testClient struct {
	t      *testing.T
	conn   net.Conn
	reader *bufio.Reader
}

func newTestServer(t *testing.T, password string) *Server {
	t.Helper()

	cfg := config.Defaults()
	cfg.Store.KV.Path = t.TempDir()
	cfg.Store.FST.Path = t.TempDir()
	cfg.Store.KV.Database.Compress = false
	cfg.Store.KV.Database.WriteAheadLog = false
	cfg.Channel.AuthPassword = password

	exec := executor.New(&cfg, store.NewKVPool(&cfg), store.NewFSTPool(&cfg))

	return NewServer(&cfg, exec)
}

func dialTestServer(t *testing.T, server *Server) *testClient {
	t.Helper()

	clientSide, serverSide := net.Pipe()

	go newConnection(server, serverSide).serve()

	client := &testClient{t: t, conn: clientSide, reader: bufio.NewReader(clientSide)}
	t.Cleanup(func() { clientSide.Close() })

	// Consume the banner.
	if banner := client.readLine(); !strings.HasPrefix(banner, "CONNECTED") {
		t.Fatalf("expected CONNECTED banner, got %q", banner)
	}

	return client
}

func (c *testClient) sendLine(line string) {
	c.t.Helper()

	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))

	if _, err := c.conn.Write([]byte(line + "\r\n")); err != nil {
		c.t.Fatalf("write failed: %v", err)
	}
}

func (c *testClient) readLine() string {
	c.t.Helper()

	_ = c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	line, err := c.reader.ReadString('\n')
	if err != nil {
		c.t.Fatalf("read failed: %v", err)
	}

	return strings.TrimRight(line, "\r\n")
}

func (c *testClient) start(mode string) {
	c.t.Helper()

	c.sendLine("START " + mode)

	if reply := c.readLine(); !strings.HasPrefix(reply, "STARTED "+mode) {
		c.t.Fatalf("expected STARTED %s, got %q", mode, reply)
	}
}

// TestChannel_HandshakeAndPing covers the banner, START reply shape, and
// PING.
func TestChannel_HandshakeAndPing(t *testing.T) {
	client := dialTestServer(t, newTestServer(t, ""))

	client.sendLine("START ingest")

	reply := client.readLine()
	if !strings.HasPrefix(reply, "STARTED ingest protocol(1) buffer(") {
		t.Fatalf("unexpected STARTED reply: %q", reply)
	}

	client.sendLine("PING")
	if reply := client.readLine(); reply != "PONG" {
		t.Fatalf("expected PONG, got %q", reply)
	}

	client.sendLine("QUIT")
	if reply := client.readLine(); reply != "ENDED quit" {
		t.Fatalf("expected ENDED quit, got %q", reply)
	}
}

// TestChannel_UnknownMode verifies the START mode validation.
func TestChannel_UnknownMode(t *testing.T) {
	client := dialTestServer(t, newTestServer(t, ""))

	client.sendLine("START telepathy")
	if reply := client.readLine(); reply != "ERR unknown_command" {
		t.Fatalf("expected unknown_command, got %q", reply)
	}
}

// TestChannel_Authentication verifies password enforcement on START.
func TestChannel_Authentication(t *testing.T) {
	server := newTestServer(t, "secret")

	client := dialTestServer(t, server)
	client.sendLine("START ingest wrong")
	if reply := client.readLine(); reply != "ERR authentication_required" {
		t.Fatalf("expected authentication_required, got %q", reply)
	}

	client.sendLine("START ingest secret")
	if reply := client.readLine(); !strings.HasPrefix(reply, "STARTED ingest") {
		t.Fatalf("expected STARTED after valid password, got %q", reply)
	}
}

// TestChannel_IngestRoundTrip covers PUSH, COUNT, POP and FLUSHO over the
// wire.
func TestChannel_IngestRoundTrip(t *testing.T) {
	server := newTestServer(t, "")
	client := dialTestServer(t, server)
	client.start("ingest")

	client.sendLine(`PUSH messages user:01 msg:1 "The quick brown fox"`)
	if reply := client.readLine(); reply != "OK" {
		t.Fatalf("expected OK for push, got %q", reply)
	}

	client.sendLine("COUNT messages user:01")
	if reply := client.readLine(); reply != "RESULT 1" {
		t.Fatalf("expected RESULT 1 for bucket count, got %q", reply)
	}

	client.sendLine(`POP messages user:01 msg:1 "fox"`)
	if reply := client.readLine(); reply != "RESULT 1" {
		t.Fatalf("expected RESULT 1 for pop, got %q", reply)
	}

	client.sendLine("FLUSHO messages user:01 msg:1")
	if reply := client.readLine(); !strings.HasPrefix(reply, "RESULT ") {
		t.Fatalf("expected RESULT for flusho, got %q", reply)
	}

	client.sendLine("FLUSHB messages user:01")
	if reply := client.readLine(); !strings.HasPrefix(reply, "RESULT ") {
		t.Fatalf("expected RESULT for flushb, got %q", reply)
	}
}

// TestChannel_SearchAsync verifies the PENDING/EVENT pattern and that the
// event identifiers line up.
func TestChannel_SearchAsync(t *testing.T) {
	server := newTestServer(t, "")

	ingest := dialTestServer(t, server)
	ingest.start("ingest")
	ingest.sendLine(`PUSH messages user:01 msg:1 "The quick brown fox"`)
	if reply := ingest.readLine(); reply != "OK" {
		t.Fatalf("expected OK for push, got %q", reply)
	}

	search := dialTestServer(t, server)
	search.start("search")

	search.sendLine(`QUERY messages user:01 "quick"`)

	pending := search.readLine()
	if !strings.HasPrefix(pending, "PENDING ") {
		t.Fatalf("expected PENDING, got %q", pending)
	}
	eventID := strings.TrimPrefix(pending, "PENDING ")

	event := search.readLine()
	if event != "EVENT QUERY "+eventID+" msg:1" {
		t.Fatalf("unexpected event line: %q", event)
	}

	// Suggest follows the same async shape.
	search.sendLine(`SUGGEST messages user:01 "qui"`)

	pending = search.readLine()
	if !strings.HasPrefix(pending, "PENDING ") {
		t.Fatalf("expected PENDING for suggest, got %q", pending)
	}
	eventID = strings.TrimPrefix(pending, "PENDING ")

	event = search.readLine()
	if event != "EVENT SUGGEST "+eventID+" quick" {
		t.Fatalf("unexpected suggest event: %q", event)
	}
}

// TestChannel_WrongModeCommand verifies cross-mode commands answer
// command_not_supported.
func TestChannel_WrongModeCommand(t *testing.T) {
	client := dialTestServer(t, newTestServer(t, ""))
	client.start("ingest")

	client.sendLine(`QUERY messages user:01 "quick"`)
	if reply := client.readLine(); reply != "ERR command_not_supported" {
		t.Fatalf("expected command_not_supported, got %q", reply)
	}

	client.sendLine("BOGUS")
	if reply := client.readLine(); reply != "ERR unknown_command" {
		t.Fatalf("expected unknown_command, got %q", reply)
	}
}

// TestChannel_ControlInfoAndTrigger covers the control vocabulary.
func TestChannel_ControlInfoAndTrigger(t *testing.T) {
	client := dialTestServer(t, newTestServer(t, ""))
	client.start("control")

	client.sendLine("INFO")
	reply := client.readLine()
	if !strings.HasPrefix(reply, "RESULT uptime(") || !strings.Contains(reply, "kv_open_count(") {
		t.Fatalf("unexpected INFO reply: %q", reply)
	}

	client.sendLine("TRIGGER")
	if reply := client.readLine(); reply != "RESULT consolidate" {
		t.Fatalf("expected action listing, got %q", reply)
	}

	client.sendLine("TRIGGER consolidate")
	if reply := client.readLine(); reply != "OK" {
		t.Fatalf("expected OK for consolidate trigger, got %q", reply)
	}

	client.sendLine("TRIGGER explode")
	if reply := client.readLine(); reply != "ERR invalid_format" {
		t.Fatalf("expected invalid_format for unknown action, got %q", reply)
	}
}

// TestChannel_ShuttingDown verifies the availability flag rejects
// commands.
func TestChannel_ShuttingDown(t *testing.T) {
	server := newTestServer(t, "")
	client := dialTestServer(t, server)
	client.start("ingest")

	server.SetAvailable(false)

	client.sendLine("PING")
	if reply := client.readLine(); reply != "ERR shutting_down" {
		t.Fatalf("expected shutting_down, got %q", reply)
	}

	server.SetAvailable(true)

	client.sendLine("PING")
	if reply := client.readLine(); reply != "PONG" {
		t.Fatalf("expected PONG after re-enable, got %q", reply)
	}
}

// TestChannel_HelpListsCommands verifies HELP reflects the mode.
func TestChannel_HelpListsCommands(t *testing.T) {
	client := dialTestServer(t, newTestServer(t, ""))
	client.start("search")

	client.sendLine("HELP")
	reply := client.readLine()
	if !strings.HasPrefix(reply, "RESULT commands(") || !strings.Contains(reply, "QUERY") {
		t.Fatalf("unexpected HELP reply: %q", reply)
	}
}
