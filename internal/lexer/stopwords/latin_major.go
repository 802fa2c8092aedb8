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

// Eng lists English stop-words.
var Eng = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does",
	"doesn't", "doing", "don't", "down", "during", "each", "few", "for",
	"from", "further", "had", "hadn't", "has", "hasn't", "have", "haven't",
	"having", "he", "he'd", "he'll", "he's", "her", "here", "here's",
	"hers", "herself", "him", "himself", "his", "how", "how's", "i", "i'd",
	"i'll", "i'm", "i've", "if", "in", "into", "is", "isn't", "it", "it's",
	"its", "itself", "let's", "me", "more", "most", "mustn't", "my",
	"myself", "no", "nor", "not", "of", "off", "on", "once", "only", "or",
	"other", "ought", "our", "ours", "ourselves", "out", "over", "own",
	"same", "shan't", "she", "she'd", "she'll", "she's", "should",
	"shouldn't", "so", "some", "such", "than", "that", "that's", "the",
	"their", "theirs", "them", "themselves", "then", "there", "there's",
	"these", "they", "they'd", "they'll", "they're", "they've", "this",
	"those", "through", "to", "too", "under", "until", "up", "very", "was",
	"wasn't", "we", "we'd", "we'll", "we're", "we've", "were", "weren't",
	"what", "what's", "when", "when's", "where", "where's", "which",
	"while", "who", "who's", "whom", "why", "why's", "with", "won't",
	"would", "wouldn't", "you", "you'd", "you'll", "you're", "you've",
	"your", "yours", "yourself", "yourselves",
}

// Fra lists French stop-words.
var Fra = []string{
	"a", "afin", "ai", "ainsi", "alors", "apres", "après", "as", "assez",
	"au", "aucun", "aucune", "aujourd'hui", "auquel", "aura", "auront",
	"aussi", "autre", "autres", "aux", "avaient", "avais", "avait", "avant",
	"avec", "avez", "avoir", "avons", "beaucoup", "bien", "bon", "brun",
	"car", "ce", "ceci", "cela", "celle", "celles", "celui", "cependant",
	"ces", "cet", "cette", "ceux", "chaque", "chez", "ci", "comme",
	"comment", "d'un", "d'une", "dans", "de", "dehors", "depuis", "des", "dessus",
	"deux", "devant", "devrait", "doit", "donc", "dont", "du", "elle",
	"elles", "en", "encore", "entre", "environ", "est", "et", "etaient",
	"etais", "etait", "etant", "ete", "etre", "eu", "eux", "fait", "faites",
	"fois", "font", "furent", "haut", "hors", "ici", "il", "ils", "je",
	"juste", "la", "laquelle", "le", "lequel", "les", "lesquelles",
	"lesquels", "leur", "leurs", "lui", "ma", "maintenant", "mais", "me",
	"meme", "même", "mes", "mien", "moi", "moins", "mon", "mot", "ne",
	"ni", "nombreuses", "nombreux", "non", "nos", "notre", "nous", "nouveau",
	"on", "ont", "ou", "où", "par", "parce", "parole", "pas", "personne",
	"peu", "peut", "peuvent", "piece", "plupart", "plus", "pour",
	"pourquoi", "quand", "que", "quel", "quelle", "quelles", "quels",
	"qui", "quoi", "sa", "sans", "se", "sera", "seront", "ses", "seulement",
	"si", "sien", "soi", "soit", "son", "sont", "sous", "soyez", "sur",
	"ta", "tandis", "te", "tellement", "tels", "tes", "toi", "ton",
	"tous", "tout", "toute", "toutes", "tres", "très", "trop", "tu", "un",
	"une", "valeur", "vers", "voie", "voient", "vont", "vos", "votre",
	"vous", "vu", "y", "étaient", "état", "étions", "été", "être",
}

// Spa lists Spanish stop-words.
var Spa = []string{
	"a", "al", "algo", "algunas", "algunos", "ante", "antes", "como",
	"con", "contra", "cual", "cuando", "de", "del", "desde", "donde",
	"durante", "e", "el", "ella", "ellas", "ellos", "en", "entre", "era",
	"erais", "eran", "eras", "eres", "es", "esa", "esas", "ese", "eso",
	"esos", "esta", "estaba", "estado", "estamos", "estar", "estas",
	"este", "esto", "estos", "estoy", "fue", "fueron", "fui", "fuimos",
	"ha", "haber", "habia", "había", "han", "has", "hasta", "hay", "la",
	"las", "le", "les", "lo", "los", "mas", "más", "me", "mi", "mis",
	"mucho", "muchos", "muy", "nada", "ni", "no", "nos", "nosotras",
	"nosotros", "nuestra", "nuestras", "nuestro", "nuestros", "o", "os",
	"otra", "otras", "otro", "otros", "para", "pero", "poco", "por",
	"porque", "que", "qué", "quien", "quienes", "se", "sea", "ser", "si",
	"sí", "sin", "sobre", "sois", "somos", "son", "soy", "su", "sus",
	"también", "tanto", "te", "tenemos", "tener", "tengo", "ti", "tiene",
	"tienen", "todo", "todos", "tu", "tus", "un", "una", "uno", "unos",
	"vosotras", "vosotros", "vuestra", "vuestro", "y", "ya", "yo",
}

// Deu lists German stop-words.
var Deu = []string{
	"aber", "alle", "allem", "allen", "aller", "alles", "als", "also",
	"am", "an", "ander", "andere", "anderem", "anderen", "anderer",
	"anderes", "auch", "auf", "aus", "bei", "bin", "bis", "bist", "da",
	"damit", "dann", "das", "dass", "dein", "deine", "dem", "den", "denn",
	"der", "des", "dessen", "dich", "die", "dies", "diese", "diesem",
	"diesen", "dieser", "dieses", "dir", "doch", "dort", "du", "durch",
	"ein", "eine", "einem", "einen", "einer", "eines", "einig", "einige",
	"er", "es", "etwas", "euer", "eure", "für", "gegen", "gewesen", "hab",
	"habe", "haben", "hat", "hatte", "hatten", "hier", "hin", "hinter",
	"ich", "ihm", "ihn", "ihnen", "ihr", "ihre", "im", "in", "indem",
	"ins", "ist", "ja", "jede", "jedem", "jeden", "jeder", "jedes",
	"jene", "jetzt", "kann", "kein", "keine", "können", "könnte", "machen",
	"man", "manche", "mein", "meine", "mich", "mir", "mit", "muss",
	"musste", "nach", "nicht", "nichts", "noch", "nun", "nur", "ob",
	"oder", "ohne", "sehr", "sein", "seine", "selbst", "sich", "sie",
	"sind", "so", "solche", "soll", "sollte", "sondern", "sonst", "um",
	"und", "uns", "unser", "unter", "viel", "vom", "von", "vor", "war",
	"waren", "warst", "was", "weg", "weil", "weiter", "welche", "welchem",
	"welchen", "welcher", "welches", "wenn", "werde", "werden", "wie",
	"wieder", "will", "wir", "wird", "wirst", "wo", "wollen", "wollte",
	"während", "würde", "würden", "zu", "zum", "zur", "zwar", "zwischen",
	"über",
}

// Por lists Portuguese stop-words.
var Por = []string{
	"a", "ao", "aos", "aquela", "aquelas", "aquele", "aqueles", "aquilo",
	"as", "até", "com", "como", "da", "das", "de", "dela", "delas", "dele",
	"deles", "depois", "do", "dos", "e", "ela", "elas", "ele", "eles",
	"em", "entre", "era", "eram", "essa", "essas", "esse", "esses", "esta",
	"estas", "este", "estes", "eu", "foi", "fomos", "for", "foram", "há",
	"isso", "isto", "já", "lhe", "lhes", "mais", "mas", "me", "mesmo",
	"meu", "meus", "minha", "minhas", "muito", "na", "nas", "nem", "no",
	"nos", "nossa", "nossas", "nosso", "nossos", "num", "numa", "não",
	"nós", "o", "os", "ou", "para", "pela", "pelas", "pelo", "pelos",
	"por", "qual", "quando", "que", "quem", "se", "seja", "sem", "ser",
	"seu", "seus", "somos", "sou", "sua", "suas", "são", "só", "também",
	"te", "tem", "temos", "tenho", "teu", "teus", "tu", "tua", "tuas",
	"um", "uma", "você", "vocês", "vos", "à", "às", "é",
}

// Ita lists Italian stop-words.
var Ita = []string{
	"a", "abbia", "abbiamo", "ad", "agli", "ai", "al", "alla", "alle",
	"allo", "anche", "avere", "aveva", "avevano", "c", "che", "chi", "ci",
	"coi", "col", "come", "con", "contro", "cui", "da", "dagli", "dai",
	"dal", "dalla", "dalle", "dallo", "degli", "dei", "del", "della",
	"delle", "dello", "di", "dov", "dove", "e", "ed", "era", "erano",
	"essere", "fa", "fino", "fra", "fu", "gli", "ha", "hanno", "ho", "i",
	"il", "in", "io", "l", "la", "le", "lei", "li", "lo", "loro", "lui",
	"ma", "me", "mi", "mia", "mie", "miei", "mio", "ne", "negli", "nei",
	"nel", "nella", "nelle", "nello", "noi", "non", "nostra", "nostre",
	"nostri", "nostro", "o", "per", "perché", "più", "quale", "quando",
	"quanta", "quante", "quanti", "quanto", "quella", "quelle", "quelli",
	"quello", "questa", "queste", "questi", "questo", "qui", "quindi",
	"se", "sei", "si", "sia", "siamo", "siete", "sono", "sta", "stessa",
	"stesso", "su", "sua", "sue", "sugli", "sui", "sul", "sulla", "sulle",
	"sullo", "suo", "suoi", "tra", "tu", "tua", "tue", "tuo", "tuoi",
	"tutti", "tutto", "un", "una", "uno", "vi", "voi", "è",
}

// Nld lists Dutch stop-words.
var Nld = []string{
	"aan", "al", "alles", "als", "altijd", "andere", "ben", "bij", "daar",
	"dan", "dat", "de", "der", "deze", "die", "dit", "doch", "doen",
	"door", "dus", "een", "eens", "en", "er", "ge", "geen", "geweest",
	"haar", "had", "heb", "hebben", "heeft", "hem", "het", "hier", "hij",
	"hoe", "hun", "iemand", "iets", "ik", "in", "is", "ja", "je", "kan",
	"kon", "kunnen", "maar", "me", "meer", "men", "met", "mij", "mijn",
	"moet", "na", "naar", "niet", "niets", "nog", "nu", "of", "om", "omdat",
	"onder", "ons", "ook", "op", "over", "reeds", "te", "tegen", "toch",
	"toen", "tot", "u", "uit", "uw", "van", "veel", "voor", "want",
	"waren", "was", "wat", "werd", "wezen", "wie", "wil", "worden",
	"wordt", "zal", "ze", "zelf", "zich", "zij", "zijn", "zo", "zonder",
	"zou",
}
