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

package lexer

import (
	"strings"
	"sync"
	"unicode"

	"github.com/abadojack/whatlanggo"
	log "github.com/sirupsen/logrus"

	"sable/internal/lexer/stopwords"
)

// langNone marks an undetected locale.
const langNone = whatlanggo.Lang(-1)

// codeToLang maps the ISO 639-3 codes used in configuration (and in the
// embedded stop-word registry) to detector language values.
var codeToLang = map[string]whatlanggo.Lang{
	"afr": whatlanggo.Afr,
	"aka": whatlanggo.Aka,
	"amh": whatlanggo.Amh,
	"arb": whatlanggo.Arb,
	"azj": whatlanggo.Azj,
	"bel": whatlanggo.Bel,
	"ben": whatlanggo.Ben,
	"bul": whatlanggo.Bul,
	"cat": whatlanggo.Cat,
	"ces": whatlanggo.Ces,
	"cmn": whatlanggo.Cmn,
	"dan": whatlanggo.Dan,
	"deu": whatlanggo.Deu,
	"ell": whatlanggo.Ell,
	"eng": whatlanggo.Eng,
	"epo": whatlanggo.Epo,
	"est": whatlanggo.Est,
	"fin": whatlanggo.Fin,
	"fra": whatlanggo.Fra,
	"guj": whatlanggo.Guj,
	"hau": whatlanggo.Hau,
	"heb": whatlanggo.Heb,
	"hin": whatlanggo.Hin,
	"hrv": whatlanggo.Hrv,
	"hun": whatlanggo.Hun,
	"hye": whatlanggo.Hye,
	"ind": whatlanggo.Ind,
	"ita": whatlanggo.Ita,
	"jav": whatlanggo.Jav,
	"jpn": whatlanggo.Jpn,
	"kan": whatlanggo.Kan,
	"kat": whatlanggo.Kat,
	"khm": whatlanggo.Khm,
	"kor": whatlanggo.Kor,
	"lat": whatlanggo.Lat,
	"lav": whatlanggo.Lav,
	"lit": whatlanggo.Lit,
	"mal": whatlanggo.Mal,
	"mar": whatlanggo.Mar,
	"mkd": whatlanggo.Mkd,
	"mya": whatlanggo.Mya,
	"nep": whatlanggo.Nep,
	"nld": whatlanggo.Nld,
	"nob": whatlanggo.Nob,
	"ori": whatlanggo.Ori,
	"pan": whatlanggo.Pan,
	"pes": whatlanggo.Pes,
	"pol": whatlanggo.Pol,
	"por": whatlanggo.Por,
	"ron": whatlanggo.Ron,
	"rus": whatlanggo.Rus,
	"sin": whatlanggo.Sin,
	"slk": whatlanggo.Slk,
	"slv": whatlanggo.Slv,
	"sna": whatlanggo.Sna,
	"som": whatlanggo.Som,
	"spa": whatlanggo.Spa,
	"srp": whatlanggo.Srp,
	"swe": whatlanggo.Swe,
	"tam": whatlanggo.Tam,
	"tel": whatlanggo.Tel,
	"tgl": whatlanggo.Tgl,
	"tha": whatlanggo.Tha,
	"tuk": whatlanggo.Tuk,
	"tur": whatlanggo.Tur,
	"ukr": whatlanggo.Ukr,
	"urd": whatlanggo.Urd,
	"uzb": whatlanggo.Uzb,
	"vie": whatlanggo.Vie,
	"ydd": whatlanggo.Ydd,
	"zul": whatlanggo.Zul,
}

// scriptLangs maps a detected script to its candidate languages, ordered by
// worldwide speaker count so that ties resolve towards the most likely one.
var scriptLangs = map[*unicode.RangeTable][]whatlanggo.Lang{
	unicode.Latin: {
		whatlanggo.Spa, whatlanggo.Eng, whatlanggo.Por, whatlanggo.Ind,
		whatlanggo.Fra, whatlanggo.Deu, whatlanggo.Jav, whatlanggo.Vie,
		whatlanggo.Ita, whatlanggo.Tur, whatlanggo.Pol, whatlanggo.Ron,
		whatlanggo.Hrv, whatlanggo.Nld, whatlanggo.Uzb, whatlanggo.Hun,
		whatlanggo.Azj, whatlanggo.Ces, whatlanggo.Zul, whatlanggo.Swe,
		whatlanggo.Aka, whatlanggo.Sna, whatlanggo.Afr, whatlanggo.Fin,
		whatlanggo.Tuk, whatlanggo.Dan, whatlanggo.Nob, whatlanggo.Lit,
		whatlanggo.Slv, whatlanggo.Epo, whatlanggo.Lav, whatlanggo.Est,
		whatlanggo.Lat, whatlanggo.Slk, whatlanggo.Cat, whatlanggo.Tgl,
	},
	unicode.Cyrillic: {
		whatlanggo.Rus, whatlanggo.Ukr, whatlanggo.Srp, whatlanggo.Azj,
		whatlanggo.Bel, whatlanggo.Bul, whatlanggo.Tuk, whatlanggo.Mkd,
	},
	unicode.Arabic:     {whatlanggo.Arb, whatlanggo.Urd, whatlanggo.Pes},
	unicode.Armenian:   {whatlanggo.Hye},
	unicode.Devanagari: {whatlanggo.Hin, whatlanggo.Mar, whatlanggo.Nep},
	unicode.Ethiopic:   {whatlanggo.Amh},
	unicode.Hebrew:     {whatlanggo.Heb, whatlanggo.Ydd},
	unicode.Bengali:    {whatlanggo.Ben},
	unicode.Georgian:   {whatlanggo.Kat},
	unicode.Greek:      {whatlanggo.Ell},
	unicode.Gujarati:   {whatlanggo.Guj},
	unicode.Gurmukhi:   {whatlanggo.Pan},
	unicode.Han:        {whatlanggo.Cmn},
	unicode.Hangul:     {whatlanggo.Kor},
	unicode.Hiragana:   {whatlanggo.Jpn},
	unicode.Katakana:   {whatlanggo.Jpn},
	unicode.Kannada:    {whatlanggo.Kan},
	unicode.Khmer:      {whatlanggo.Khm},
	unicode.Malayalam:  {whatlanggo.Mal},
	unicode.Myanmar:    {whatlanggo.Mya},
	unicode.Oriya:      {whatlanggo.Ori},
	unicode.Sinhala:    {whatlanggo.Sin},
	unicode.Tamil:      {whatlanggo.Tam},
	unicode.Telugu:     {whatlanggo.Tel},
	unicode.Thai:       {whatlanggo.Tha},
}

var (
	stopWordMu   sync.RWMutex
	stopWordSets map[whatlanggo.Lang]map[string]struct{}
)

func init() {
	stopWordSets = buildStopWordSets(nil)
}

// SetStopWordOverrides rebuilds the stop-word sets, replacing the embedded
// list of every language present in overrides (keyed by ISO 639-3 code).
// Unknown codes are logged and skipped.
func SetStopWordOverrides(overrides map[string][]string) {
	sets := buildStopWordSets(overrides)

	stopWordMu.Lock()
	stopWordSets = sets
	stopWordMu.Unlock()
}

func buildStopWordSets(overrides map[string][]string) map[whatlanggo.Lang]map[string]struct{} {
	sets := make(map[whatlanggo.Lang]map[string]struct{}, len(codeToLang))

	for code, lang := range codeToLang {
		words := stopwords.ByCode[code]

		if replacement, ok := overrides[code]; ok {
			words = replacement
		}

		set := make(map[string]struct{}, len(words))
		for _, word := range words {
			set[word] = struct{}{}
		}

		sets[lang] = set
	}

	for code := range overrides {
		if _, ok := codeToLang[code]; !ok {
			log.Warnf("unknown language code in stopwords override: %s", code)
		}
	}

	return sets
}

// isStopWord tells whether word is a stop-word of the given locale. An
// undetected locale never matches.
func isStopWord(word string, locale whatlanggo.Lang) bool {
	if locale == langNone {
		return false
	}

	stopWordMu.RLock()
	set := stopWordSets[locale]
	stopWordMu.RUnlock()

	_, ok := set[word]

	return ok
}

// guessLang guesses the locale of text by counting stop-word hits for each
// candidate language of the detected script. Ties break towards the first
// candidate in iteration order.
func guessLang(text string, script *unicode.RangeTable) whatlanggo.Lang {
	candidates := scriptLangs[script]

	// This is a simple split that keeps the original case and punctuation;
	// heavy normalization is not worth it for a best-effort last-resort
	// check.
	words := strings.Fields(text)

	likelyCount, likelyLang := 0, langNone

	stopWordMu.RLock()
	defer stopWordMu.RUnlock()

	for _, candidate := range candidates {
		set := stopWordSets[candidate]
		if len(set) == 0 {
			continue
		}

		count := 0
		for _, word := range words {
			if _, ok := set[word]; ok {
				count++
			}
		}

		if count > likelyCount {
			likelyCount = count
			likelyLang = candidate
		}
	}

	if likelyLang != langNone {
		log.Debugf(
			"guessed locale from stopwords: %s (%d hits)",
			whatlanggo.LangToString(likelyLang), likelyCount,
		)
	}

	return likelyLang
}
