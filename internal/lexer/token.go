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

// Package lexer turns raw text into a finite sequence of normalized,
// deduplicated terms. Guarantees on the output:
//   - Text is split per-word in a script-aware way
//   - Words are normalized (lower-case)
//   - Stop-words are removed (cleanup mode, detected locale permitting)
//   - Each term is yielded at most once
package lexer

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/blevesearch/segment"
	"github.com/pierrec/xxHash/xxHash32"
	log "github.com/sirupsen/logrus"
)

// Mode selects how aggressively the lexer normalizes its input.
type Mode int

const (
	// NormalizeAndCleanup lower-cases words and removes stop-words of the
	// detected locale. Used on pushed text and search queries.
	NormalizeAndCleanup Mode = iota

	// NormalizeOnly lower-cases words without locale detection or
	// stop-word removal. Used on popped text and suggest prefixes.
	NormalizeOnly
)

// Token is a normalized word paired with its 32-bit term hash, the
// on-disk identifier of the term.
type Token struct {
	Word string
	Hash uint32
}

const (
	// Texts shorter than this are not worth a locale detection.
	textLangDetectProceedOverChars = 20

	// Below this size the n-gram detector outperforms stop-word counting.
	textLangDetectNgramUnderChars = 60

	// Detection input is truncated past this many characters; more text
	// does not make the guess more reliable, it only burns CPU cycles.
	textLangTruncateOverChars = 200
)

// TokenLexer is a non-restartable iterator over the terms of a text.
type TokenLexer struct {
	mode    Mode
	locale  whatlanggo.Lang
	segment *segment.Segmenter
	yields  map[uint32]struct{}
}

// HashTerm computes the canonical 32-bit hash of a normalized term.
func HashTerm(word string) uint32 {
	return xxHash32.Checksum([]byte(word), 0)
}

// New builds a lexer over text. In NormalizeAndCleanup mode the locale is
// detected up-front; NormalizeOnly skips detection entirely.
func New(mode Mode, text string) *TokenLexer {
	locale := langNone

	if mode == NormalizeAndCleanup {
		locale = detectLang(text)
	}

	return &TokenLexer{
		mode:    mode,
		locale:  locale,
		segment: segment.NewWordSegmenterDirect([]byte(text)),
		yields:  make(map[uint32]struct{}),
	}
}

// Locale returns the detected locale, if any.
func (l *TokenLexer) Locale() (whatlanggo.Lang, bool) {
	return l.locale, l.locale != langNone
}

// Next yields the next unique term, or ok=false once the text is exhausted.
func (l *TokenLexer) Next() (Token, bool) {
	for l.segment.Segment() {
		if l.segment.Type() == segment.None {
			continue
		}

		word := strings.ToLower(l.segment.Text())

		// Check if normalized word is a stop-word? (if should cleanup)
		if l.mode == NormalizeAndCleanup && isStopWord(word, l.locale) {
			log.Debugf("lexer did not yield stop-word: %s", word)

			continue
		}

		// The hash doubles as the dedup key; tracking 32-bit hashes rather
		// than the words themselves keeps the yield set space-optimal.
		hash := HashTerm(word)

		if _, yielded := l.yields[hash]; yielded {
			log.Debugf("lexer did not yield duplicate word: %s", word)

			continue
		}

		l.yields[hash] = struct{}{}

		return Token{Word: word, Hash: hash}, true
	}

	return Token{}, false
}

// Collect exhausts the lexer and returns the remaining terms.
func (l *TokenLexer) Collect() []Token {
	var tokens []Token

	for {
		token, ok := l.Next()
		if !ok {
			return tokens
		}

		tokens = append(tokens, token)
	}
}

// detectLang attempts to detect the locale of text using a hybrid method
// that maximizes both accuracy and performance. The n-gram method is almost
// an order of magnitude slower than stop-word counting, so long texts (where
// stop-words are plentiful) go through the fast path and only short texts
// pay for n-grams. Either method falls back on the other when it cannot
// produce a reliable answer.
func detectLang(text string) whatlanggo.Lang {
	if len(text) < textLangDetectProceedOverChars {
		return langNone
	}

	safeText := truncateText(text)

	if len(safeText) < textLangDetectNgramUnderChars {
		return detectLangSlow(safeText)
	}

	return detectLangFast(safeText)
}

// detectLangSlow runs the n-gram detector, falling back on stop-word
// guessing within the detected script when confidence is low.
func detectLangSlow(safeText string) whatlanggo.Lang {
	info := whatlanggo.Detect(safeText)

	if info.Script == nil {
		return langNone
	}

	locale := info.Lang

	if !info.IsReliable() {
		// Better alternate locale found?
		if alternate := guessLang(safeText, info.Script); alternate != langNone {
			locale = alternate
		}
	}

	return locale
}

// detectLangFast counts stop-words per candidate language of the detected
// script, falling back on the n-gram detector when nothing matches.
func detectLangFast(safeText string) whatlanggo.Lang {
	script := whatlanggo.DetectScript(safeText)
	if script == nil {
		return langNone
	}

	if locale := guessLang(safeText, script); locale != langNone {
		return locale
	}

	return whatlanggo.DetectLang(safeText)
}

// truncateText bounds the detection input to textLangTruncateOverChars
// characters, on a UTF-8 boundary. The byte-length guard avoids the O(N)
// rune walk for short texts.
func truncateText(text string) string {
	if len(text) <= textLangTruncateOverChars {
		return text
	}

	count := 0
	for index := range text {
		if count == textLangTruncateOverChars {
			return text[:index]
		}

		count++
	}

	return text
}
