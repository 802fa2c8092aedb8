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
	"strings"

	"github.com/pkg/errors"
)

// unescape resolves the two supported escape sequences inside quoted
// arguments: \n becomes a newline and \" a double quote. A backslash
// followed by anything else is preserved as a lone backslash, consuming
// its follower.
func unescape(text string) string {
	var unescaped strings.Builder

	for index := 0; index < len(text); index++ {
		character := text[index]

		if character != '\\' {
			unescaped.WriteByte(character)

			continue
		}

		if index+1 >= len(text) {
			unescaped.WriteByte('\\')

			continue
		}

		index++

		switch text[index] {
		case 'n':
			unescaped.WriteByte('\n')
		case '"':
			unescaped.WriteByte('"')
		default:
			unescaped.WriteByte('\\')
		}
	}

	return unescaped.String()
}

// errMalformedLine flags an unterminated quoted argument.
var errMalformedLine = errors.New("malformed command line")

// tokenize splits a command line into its arguments. Plain tokens break on
// spaces; quoted tokens run to the next unescaped double quote and get
// their escape sequences resolved.
func tokenize(line string) ([]string, error) {
	var tokens []string

	index := 0

	for index < len(line) {
		// Skip separating spaces.
		for index < len(line) && line[index] == ' ' {
			index++
		}
		if index >= len(line) {
			break
		}

		if line[index] == '"' {
			index++
			start := index

			for index < len(line) {
				if line[index] == '\\' {
					index += 2

					continue
				}
				if line[index] == '"' {
					break
				}

				index++
			}

			if index > len(line) {
				index = len(line)
			}

			if index >= len(line) || line[index] != '"' {
				return nil, errMalformedLine
			}

			tokens = append(tokens, unescape(line[start:index]))
			index++

			continue
		}

		start := index
		for index < len(line) && line[index] != ' ' {
			index++
		}

		tokens = append(tokens, line[start:index])
	}

	return tokens, nil
}
