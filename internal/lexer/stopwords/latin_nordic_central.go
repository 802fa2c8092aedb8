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

package stopwords

// Dan lists Danish stop-words.
var Dan = []string{
	"ad", "af", "alle", "alt", "anden", "at", "blev", "blive", "bliver",
	"da", "de", "dem", "den", "denne", "der", "deres", "det", "dette",
	"dig", "din", "disse", "dog", "du", "efter", "eller", "en", "end",
	"er", "et", "for", "fra", "ham", "han", "hans", "har", "havde", "have",
	"hende", "hendes", "her", "hos", "hun", "hvad", "hvis", "hvor", "i",
	"ikke", "ind", "jeg", "jer", "jo", "kunne", "man", "mange", "med",
	"meget", "men", "mig", "min", "mine", "mit", "mod", "ned", "noget",
	"nogle", "nu", "når", "og", "også", "om", "op", "os", "over", "på",
	"selv", "sig", "sin", "sine", "sit", "skal", "skulle", "som", "sådan",
	"thi", "til", "ud", "under", "var", "vi", "vil", "ville", "vor",
	"være", "været",
}

// Swe lists Swedish stop-words.
var Swe = []string{
	"alla", "allt", "att", "av", "blev", "bli", "blir", "blivit", "de",
	"dem", "den", "denna", "deras", "dess", "dessa", "det", "detta", "dig",
	"din", "dina", "ditt", "du", "där", "då", "efter", "ej", "eller",
	"en", "er", "era", "ert", "ett", "från", "för", "ha", "hade", "han",
	"hans", "har", "henne", "hennes", "hon", "honom", "hur", "här", "i",
	"icke", "ingen", "inom", "inte", "jag", "ju", "kan", "kunde", "man",
	"med", "mellan", "men", "mig", "min", "mina", "mitt", "mot", "mycket",
	"ni", "nu", "när", "någon", "något", "några", "och", "om", "oss",
	"på", "samma", "sedan", "sig", "sin", "sina", "sitta", "själv",
	"skulle", "som", "så", "sådan", "till", "under", "upp", "ut", "utan",
	"vad", "var", "vara", "varför", "varit", "varje", "vars", "vart",
	"vem", "vi", "vid", "vilka", "vilken", "vilket", "vår", "våra",
	"vårt", "än", "är", "åt", "över",
}

// Nob lists Norwegian Bokmål stop-words.
var Nob = []string{
	"alle", "at", "av", "bare", "begge", "ble", "blei", "bli", "blir",
	"da", "de", "deg", "dem", "den", "denne", "der", "dere", "deres",
	"det", "dette", "di", "din", "disse", "du", "eller", "en", "enn",
	"er", "et", "ett", "etter", "for", "fordi", "fra", "ha", "hadde",
	"han", "hans", "har", "hennes", "her", "hun", "hva", "hvem", "hver",
	"hvilken", "hvis", "hvor", "hvordan", "hvorfor", "i", "ikke", "ingen",
	"inn", "jeg", "kan", "kom", "kun", "kunne", "man", "mange", "med",
	"meg", "mellom", "men", "mer", "mest", "min", "mine", "mitt", "mot",
	"mye", "må", "måtte", "ned", "noe", "noen", "nå", "når", "og", "også",
	"om", "opp", "oss", "over", "på", "samme", "seg", "selv", "si", "sin",
	"sine", "sitt", "skal", "skulle", "slik", "som", "sånn", "til", "ut",
	"uten", "var", "ved", "vi", "vil", "ville", "vår", "være", "vært",
}

// Fin lists Finnish stop-words.
var Fin = []string{
	"ei", "eivät", "emme", "en", "et", "ette", "että", "he", "heidän",
	"heidät", "heihin", "heille", "heillä", "heiltä", "heissä", "heistä",
	"heitä", "hän", "häneen", "hänelle", "hänellä", "häneltä", "hänen",
	"hänessä", "hänestä", "hänet", "häntä", "itse", "ja", "johon", "joiden",
	"joihin", "joille", "joilla", "joilta", "joina", "joissa", "joista",
	"joita", "joka", "jokin", "jolla", "jolle", "jolta", "jona", "jonka",
	"jos", "jossa", "josta", "jota", "jotka", "kanssa", "keiden", "ketkä",
	"koska", "kuin", "kuka", "kun", "me", "meidän", "meidät", "meihin",
	"meille", "meillä", "meiltä", "meissä", "meistä", "meitä", "mikä",
	"mikään", "minkä", "minua", "minulla", "minulle", "minun", "minut",
	"minä", "mitkä", "mitä", "mukaan", "mutta", "ne", "niiden", "niin",
	"nyt", "näiden", "nämä", "olemme", "olen", "olet", "olette", "oli",
	"olimme", "olin", "olisi", "olit", "olivat", "olla", "olleet", "ollut",
	"on", "onko", "ovat", "sekä", "sen", "se", "siihen", "siinä", "siitä",
	"sille", "sillä", "siltä", "sinua", "sinulla", "sinulle", "sinun",
	"sinut", "sinä", "sitä", "tai", "te", "teidän", "teidät", "teihin",
	"teille", "teillä", "teiltä", "teissä", "teistä", "teitä", "tuo",
	"tähän", "tämä", "tämän", "tässä", "tästä", "tätä", "vaan", "vai",
	"vaikka", "yli",
}

// Pol lists Polish stop-words.
var Pol = []string{
	"a", "aby", "ale", "am", "ani", "aż", "bardzo", "bez", "bo", "by",
	"byli", "był", "była", "było", "być", "będzie", "choć", "ci", "co",
	"coś", "czy", "czyli", "dla", "do", "gdy", "gdyby", "gdzie", "go",
	"i", "ich", "im", "inne", "iż", "ja", "jak", "jakie", "jako", "je",
	"jeden", "jednak", "jego", "jej", "jest", "jeszcze", "jeśli", "już",
	"ją", "kiedy", "kilku", "kto", "która", "które", "którego", "której",
	"który", "których", "którym", "którzy", "lat", "lecz", "lub", "ma",
	"mają", "miał", "mimo", "mnie", "mogą", "może", "można", "mu", "my",
	"na", "nad", "nam", "nas", "nawet", "nic", "nich", "nie", "niej",
	"nim", "niż", "no", "nowe", "np", "nr", "o", "od", "ok", "on", "one",
	"oraz", "pan", "po", "pod", "ponad", "ponieważ", "poza", "przed",
	"przede", "przez", "przy", "raz", "razie", "roku", "również", "się",
	"sobie", "swoje", "są", "ta", "tak", "takie", "także", "tam", "te",
	"tego", "tej", "temu", "ten", "teraz", "też", "to", "trzeba", "tu",
	"tych", "tylko", "tym", "tzw", "u", "w", "we", "wie", "więc",
	"wszystko", "wśród", "z", "za", "zaś", "ze", "że", "żeby",
}

// Ces lists Czech stop-words.
var Ces = []string{
	"a", "aby", "ale", "ani", "ano", "asi", "až", "bez", "bude", "budem",
	"budeš", "by", "byl", "byla", "byli", "bylo", "být", "co", "což",
	"další", "dnes", "do", "ho", "i", "já", "jak", "jako", "je", "jeho",
	"jej", "její", "jejich", "jen", "ještě", "ji", "jiné", "již", "jsem",
	"jsi", "jsme", "jsou", "jste", "k", "kam", "kde", "kdo", "když",
	"ke", "která", "které", "který", "kteří", "ku", "ma", "mají", "máte",
	"me", "mezi", "mi", "mít", "mně", "mnou", "musí", "může", "my", "na",
	"nad", "nam", "napište", "naši", "ne", "nebo", "nejsou", "není",
	"nic", "nové", "nový", "o", "od", "ode", "on", "pak", "po", "pod",
	"podle", "pokud", "pouze", "práve", "pro", "proč", "proto", "protože",
	"první", "před", "přes", "při", "s", "se", "si", "sice", "své",
	"svých", "svým", "svými", "ta", "tak", "také", "takže", "tato", "te",
	"tedy", "ten", "tento", "této", "tím", "tímto", "to", "tohle", "toho",
	"tomto", "tomu", "tu", "tuto", "ty", "tyto", "u", "už", "v", "vám",
	"váš", "ve", "více", "však", "všechen", "vy", "z", "za", "zda", "zde",
	"ze", "že",
}

// Slk lists Slovak stop-words.
var Slk = []string{
	"a", "aby", "aj", "ako", "ale", "alebo", "ani", "asi", "až", "bez",
	"bol", "bola", "boli", "bolo", "buď", "by", "byť", "cez", "do", "ešte",
	"for", "ho", "i", "ich", "ja", "je", "jeho", "jej", "ju", "k", "kam",
	"každý", "kde", "kto", "ktorá", "ktoré", "ktorý", "ku", "lebo", "len",
	"ma", "mať", "medzi", "mi", "mna", "mne", "mnou", "môcť", "my", "na",
	"nad", "nám", "nás", "náš", "ne", "nič", "nie", "niektorý", "nové",
	"o", "od", "on", "ona", "oni", "ono", "ony", "po", "pod", "podľa",
	"pre", "pred", "pri", "s", "sa", "si", "so", "som", "späť", "ste",
	"sú", "svoj", "ta", "tak", "táto", "teda", "ten", "tento", "tie",
	"tieto", "tiež", "to", "toho", "tom", "tomto", "toto", "tu", "ty",
	"tým", "týmto", "už", "v", "vám", "váš", "viac", "vo", "však",
	"všetok", "vy", "z", "za", "zo", "že",
}

// Hun lists Hungarian stop-words.
var Hun = []string{
	"a", "abban", "ahhoz", "ahogy", "ahol", "aki", "akik", "akkor",
	"alatt", "amely", "amelyek", "ami", "amit", "az", "azok", "azon",
	"azt", "aztán", "azzal", "azért", "be", "belül", "benne", "csak",
	"de", "e", "ebben", "egy", "egyes", "egyetlen", "egyik", "egész",
	"ekkor", "el", "ellen", "elő", "először", "előtt", "első", "en",
	"ennek", "erre", "es", "ez", "ezek", "ezen", "ezt", "ezzel", "fel",
	"felé", "ha", "hanem", "hiszen", "hogy", "hogyan", "igen", "ill",
	"illetve", "is", "ismét", "itt", "jó", "jól", "kell", "kellett",
	"keresztül", "ki", "között", "közül", "le", "lehet", "lenne", "lenni",
	"lesz", "lett", "maga", "meg", "mellett", "mely", "melyek", "mert",
	"mi", "mikor", "milyen", "minden", "mindent", "mindig", "mint",
	"mintha", "mit", "mivel", "miért", "most", "már", "más", "másik",
	"még", "míg", "nagy", "ne", "nekem", "neki", "nem", "nincs", "néha",
	"néhány", "nélkül", "olyan", "ott", "pedig", "persze", "rá", "s",
	"saját", "sem", "semmi", "sok", "sokat", "sokkal", "szemben", "szerint",
	"szinte", "számára", "talán", "tehát", "teljes", "tovább", "továbbá",
	"több", "ugyanis", "utolsó", "után", "utána", "vagy", "vagyis",
	"vagyok", "valaki", "valami", "valamint", "való", "van", "vannak",
	"vele", "vissza", "viszont", "volna", "volt", "voltak", "voltam",
	"voltunk", "által", "általában", "át", "én", "éppen", "és", "így",
	"õ", "õk", "õket", "össze", "úgy", "új", "újabb", "újra",
}
