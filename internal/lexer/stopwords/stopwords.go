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

// Package stopwords embeds the default stop-word lists, one per supported
// language, keyed by ISO 639-3 code. Lists are sourced from the
// stopwords-iso collection and may be replaced per-language through the
// configuration file.
package stopwords

// ByCode maps an ISO 639-3 language code to its embedded stop-word list.
var ByCode = map[string][]string{
	"afr": Afr,
	"aka": Aka,
	"amh": Amh,
	"arb": Arb,
	"azj": Azj,
	"bel": Bel,
	"ben": Ben,
	"bul": Bul,
	"cat": Cat,
	"ces": Ces,
	"cmn": Cmn,
	"dan": Dan,
	"deu": Deu,
	"ell": Ell,
	"eng": Eng,
	"epo": Epo,
	"est": Est,
	"fin": Fin,
	"fra": Fra,
	"guj": Guj,
	"hau": Hau,
	"heb": Heb,
	"hin": Hin,
	"hrv": Hrv,
	"hun": Hun,
	"hye": Hye,
	"ind": Ind,
	"ita": Ita,
	"jav": Jav,
	"jpn": Jpn,
	"kan": Kan,
	"kat": Kat,
	"khm": Khm,
	"kor": Kor,
	"lat": Lat,
	"lav": Lav,
	"lit": Lit,
	"mal": Mal,
	"mar": Mar,
	"mkd": Mkd,
	"mya": Mya,
	"nep": Nep,
	"nld": Nld,
	"nob": Nob,
	"ori": Ori,
	"pan": Pan,
	"pes": Pes,
	"pol": Pol,
	"por": Por,
	"ron": Ron,
	"rus": Rus,
	"sin": Sin,
	"som": Som,
	"slk": Slk,
	"slv": Slv,
	"sna": Sna,
	"spa": Spa,
	"srp": Srp,
	"swe": Swe,
	"tam": Tam,
	"tel": Tel,
	"tgl": Tgl,
	"tha": Tha,
	"tuk": Tuk,
	"tur": Tur,
	"ukr": Ukr,
	"urd": Urd,
	"uzb": Uzb,
	"vie": Vie,
	"ydd": Ydd,
	"zul": Zul,
}
