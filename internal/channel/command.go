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
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// response is a single protocol reply line, head word plus arguments.
type response struct {
	head string
	args []string
}

// Error kinds, namespaced per the protocol contract.
const (
	errUnknownCommand         = "unknown_command"
	errInvalidFormat          = "invalid_format"
	errAuthenticationRequired = "authentication_required"
	errCommandNotSupported    = "command_not_supported"
	errInternalError          = "internal_error"
	errShuttingDown           = "shutting_down"
)

func respOK() response { return response{head: "OK"} }

func respPong() response { return response{head: "PONG"} }

func respNil() response { return response{head: "NIL"} }

func respEndedQuit() response { return response{head: "ENDED", args: []string{"quit"}} }

func respErr(kind string) response {
	return response{head: "ERR", args: []string{kind}}
}

func respResult(args ...string) response {
	return response{head: "RESULT", args: args}
}

func respPending(eventID string) response {
	return response{head: "PENDING", args: []string{eventID}}
}

func respEvent(kind, eventID string, items []string) response {
	args := append([]string{kind, eventID}, items...)

	return response{head: "EVENT", args: args}
}

// render serializes the response line, without its CRLF terminator.
func (r response) render() string {
	if len(r.args) == 0 {
		return r.head
	}

	return r.head + " " + strings.Join(r.args, " ")
}

const eventIDLength = 8

const eventIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateEventID produces the short identifier tying a PENDING marker to
// its later EVENT line.
func generateEventID() string {
	identifier := make([]byte, eventIDLength)

	for index := range identifier {
		identifier[index] = eventIDAlphabet[rand.Intn(len(eventIDAlphabet))]
	}

	return string(identifier)
}

// parseMetaArg matches a "NAME(value)" meta argument, returning the inner
// value on a name match.
func parseMetaArg(token, name string) (string, bool) {
	if !strings.HasPrefix(token, name+"(") || !strings.HasSuffix(token, ")") {
		return "", false
	}

	return token[len(name)+1 : len(token)-1], true
}

// parseLimitOffset consumes trailing LIMIT(n) / OFFSET(n) meta arguments,
// applying the configured default and maximum.
func parseLimitOffset(tokens []string, limitDefault, limitMaximum uint16) (uint16, uint32, error) {
	limit := limitDefault
	offset := uint32(0)

	for _, token := range tokens {
		if value, ok := parseMetaArg(token, "LIMIT"); ok {
			parsed, err := strconv.ParseUint(value, 10, 16)
			if err != nil || parsed == 0 {
				return 0, 0, fmt.Errorf("invalid limit: %q", value)
			}

			limit = uint16(parsed)

			continue
		}

		if value, ok := parseMetaArg(token, "OFFSET"); ok {
			parsed, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid offset: %q", value)
			}

			offset = uint32(parsed)

			continue
		}

		return 0, 0, fmt.Errorf("unexpected meta argument: %q", token)
	}

	if limit > limitMaximum {
		return 0, 0, fmt.Errorf("limit %d exceeds maximum %d", limit, limitMaximum)
	}

	return limit, offset, nil
}
