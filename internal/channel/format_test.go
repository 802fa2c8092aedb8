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

import "testing"

// TestUnescape covers the two supported escapes and the
// backslash-preserving default case.
func TestUnescape(t *testing.T) {
	for input, expected := range map[string]string{
		"hello world!":        "hello world!",
		"i'm so good at this": "i'm so good at this",
		`line\none`:           "line\none",
		`say \"hi\"`:          `say "hi"`,
		`keep \q going`:       `keep \ going`,
		`trailing\`:           `trailing\`,
	} {
		if got := unescape(input); got != expected {
			t.Fatalf("unescape(%q): expected %q, got %q", input, expected, got)
		}
	}
}

// TestTokenize covers plain and quoted argument splitting.
func TestTokenize(t *testing.T) {
	tokens, err := tokenize(`PUSH messages user:01 msg:1 "The quick brown fox"`)
	if err != nil {
		t.Fatalf("unexpected tokenize error: %v", err)
	}

	expected := []string{"PUSH", "messages", "user:01", "msg:1", "The quick brown fox"}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, tokens)
	}
	for index := range expected {
		if tokens[index] != expected[index] {
			t.Fatalf("expected %v, got %v", expected, tokens)
		}
	}
}

// TestTokenize_EscapedQuotes verifies a quoted argument may embed escaped
// quotes and newlines.
func TestTokenize_EscapedQuotes(t *testing.T) {
	tokens, err := tokenize(`PUSH c b o "He said \"hello\"\nBye"`)
	if err != nil {
		t.Fatalf("unexpected tokenize error: %v", err)
	}
	if len(tokens) != 5 {
		t.Fatalf("expected 5 tokens, got %v", tokens)
	}
	if tokens[4] != "He said \"hello\"\nBye" {
		t.Fatalf("unexpected unescaped text: %q", tokens[4])
	}
}

// TestTokenize_Malformed verifies an unterminated quote is rejected.
func TestTokenize_Malformed(t *testing.T) {
	if _, err := tokenize(`PUSH c b o "unterminated`); err == nil {
		t.Fatalf("expected error for unterminated quote")
	}
}

// TestResponses pins the response vocabulary rendering.
func TestResponses(t *testing.T) {
	if respOK().render() != "OK" {
		t.Fatalf("unexpected OK rendering")
	}
	if respPong().render() != "PONG" {
		t.Fatalf("unexpected PONG rendering")
	}
	if respNil().render() != "NIL" {
		t.Fatalf("unexpected NIL rendering")
	}
	if respEndedQuit().render() != "ENDED quit" {
		t.Fatalf("unexpected ENDED rendering")
	}
	if respErr(errUnknownCommand).render() != "ERR unknown_command" {
		t.Fatalf("unexpected ERR rendering")
	}
	if respResult("1").render() != "RESULT 1" {
		t.Fatalf("unexpected RESULT rendering")
	}
	if respPending("abc123").render() != "PENDING abc123" {
		t.Fatalf("unexpected PENDING rendering")
	}
	if respEvent("QUERY", "abc123", []string{"o1", "o2"}).render() != "EVENT QUERY abc123 o1 o2" {
		t.Fatalf("unexpected EVENT rendering")
	}
}

// TestParseLimitOffset covers defaults, explicit values, maxima and junk.
func TestParseLimitOffset(t *testing.T) {
	limit, offset, err := parseLimitOffset(nil, 10, 100)
	if err != nil || limit != 10 || offset != 0 {
		t.Fatalf("expected defaults, got limit=%d offset=%d err=%v", limit, offset, err)
	}

	limit, offset, err = parseLimitOffset([]string{"LIMIT(25)", "OFFSET(5)"}, 10, 100)
	if err != nil || limit != 25 || offset != 5 {
		t.Fatalf("expected explicit values, got limit=%d offset=%d err=%v", limit, offset, err)
	}

	if _, _, err := parseLimitOffset([]string{"LIMIT(500)"}, 10, 100); err == nil {
		t.Fatalf("expected error above maximum")
	}
	if _, _, err := parseLimitOffset([]string{"LIMIT(zero)"}, 10, 100); err == nil {
		t.Fatalf("expected error for non-numeric limit")
	}
	if _, _, err := parseLimitOffset([]string{"BOGUS(1)"}, 10, 100); err == nil {
		t.Fatalf("expected error for unknown meta argument")
	}
}

// TestGenerateEventID verifies shape and uniqueness over a small sample.
func TestGenerateEventID(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := generateEventID()

		if len(id) != eventIDLength {
			t.Fatalf("unexpected event id length: %q", id)
		}
		for _, character := range id {
			if !(character >= 'a' && character <= 'z') && !(character >= '0' && character <= '9') {
				t.Fatalf("unexpected event id character: %q", id)
			}
		}

		seen[id] = struct{}{}
	}

	if len(seen) < 90 {
		t.Fatalf("suspiciously many event id collisions: %d unique", len(seen))
	}
}
