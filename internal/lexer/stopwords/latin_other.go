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

// Ron lists Romanian stop-words.
var Ron = []string{
	"a", "acea", "aceasta", "această", "aceea", "acei", "acel", "acela",
	"acele", "acest", "acesta", "aceste", "acestea", "acum", "adica",
	"ai", "aia", "aibă", "al", "ale", "alea", "altceva", "am", "ar",
	"are", "as", "asta", "astea", "asupra", "atat", "ați", "au", "avea",
	"avem", "aveți", "azi", "ca", "cand", "care", "care", "catre", "ce",
	"cel", "ceva", "chiar", "cine", "cu", "cum", "cât", "către", "către",
	"da", "dacă", "dar", "de", "deci", "deja", "despre", "din", "dintr",
	"dintre", "doar", "după", "ea", "ei", "el", "ele", "era", "este",
	"eu", "face", "fara", "fi", "fie", "fiind", "foarte", "fost", "fără",
	"i", "ia", "iar", "ii", "il", "imi", "in", "intre", "isi", "iti",
	"la", "le", "li", "lor", "lui", "mai", "mea", "mei", "mele", "mereu",
	"meu", "mi", "mine", "mult", "multa", "mulți", "ne", "ni", "nici",
	"niste", "noastre", "noi", "nostri", "nostru", "nu", "numai", "o",
	"ori", "oricum", "pe", "pentru", "peste", "pic", "prea", "prin",
	"putem", "pot", "sa", "sai", "sale", "sau", "se", "si", "sunt",
	"suntem", "sunteți", "sub", "ta", "tale", "te", "ti", "toate", "tot",
	"toți", "tu", "un", "una", "unde", "unei", "unele", "unor", "va",
	"voi", "vom", "vor", "vreo", "vreun", "în", "încât", "îți", "și", "şi",
}

// Hrv lists Croatian stop-words.
var Hrv = []string{
	"a", "ako", "ali", "bi", "bih", "bila", "bili", "bilo", "bio", "bismo",
	"biste", "biti", "da", "do", "duž", "ga", "hoće", "hoćemo", "hoćete",
	"hoćeš", "hoću", "i", "iako", "ih", "ili", "iz", "ja", "je", "jedna",
	"jedne", "jedno", "jer", "jesam", "jesi", "jesmo", "jest", "jeste",
	"jesu", "jim", "joj", "još", "ju", "kada", "kako", "kao", "koja",
	"koje", "koji", "kojima", "koju", "kroz", "li", "me", "mene", "meni",
	"mi", "mimo", "moj", "moja", "moje", "mu", "na", "nad", "nakon", "nam",
	"nama", "nas", "naš", "naša", "naše", "našeg", "ne", "nego", "neka",
	"neki", "nekog", "neku", "nema", "netko", "neće", "nešto", "ni",
	"nije", "nikoga", "nikoje", "nikoju", "nisam", "nisi", "nismo",
	"niste", "nisu", "njega", "njegov", "njegova", "njegovo", "njemu",
	"njezin", "njezina", "njezino", "njih", "njihov", "njihova", "njihovo",
	"njim", "njima", "njoj", "nju", "no", "o", "od", "odmah", "on", "ona",
	"oni", "ono", "ova", "pa", "pak", "po", "pod", "pored", "prije", "s",
	"sa", "sam", "samo", "se", "sebe", "sebi", "si", "smo", "ste", "su",
	"sve", "svi", "svog", "svoj", "svoja", "svoje", "svom", "ta", "tada",
	"taj", "tako", "te", "tebe", "tebi", "ti", "to", "toj", "tome", "tu",
	"tvoj", "tvoja", "tvoje", "u", "uz", "vam", "vama", "vas", "vaš",
	"vaša", "vaše", "već", "vi", "vrlo", "za", "zar", "će", "ćemo",
	"ćete", "ćeš", "ću", "što",
}

// Slv lists Slovenian stop-words.
var Slv = []string{
	"a", "ali", "bi", "bil", "bila", "bile", "bili", "bilo", "biti",
	"blizu", "bo", "bodo", "bolj", "bom", "bomo", "boste", "boš", "brez",
	"da", "do", "ga", "iz", "ja", "je", "jih", "jim", "jo", "kadarkoli",
	"kaj", "kako", "kakor", "kar", "katerikoli", "kdaj", "kdo", "ker",
	"ki", "ko", "koder", "kot", "le", "me", "med", "mene", "mi", "moj",
	"mora", "morajo", "moram", "na", "nad", "naj", "nam", "nas", "naš",
	"naša", "naše", "ne", "nekaj", "ni", "nič", "nje", "njega", "njegov",
	"njen", "njih", "njo", "o", "ob", "od", "on", "ona", "oni", "ono",
	"pa", "po", "pod", "poleg", "pred", "prek", "pri", "s", "saj", "sam",
	"se", "sebe", "sem", "si", "smo", "so", "ste", "sva", "ta", "tak",
	"taka", "tako", "te", "tega", "ti", "to", "toda", "tu", "tudi", "tvoj",
	"v", "vam", "vas", "vaš", "vendar", "ve", "vi", "vsa", "vsak", "vse",
	"vsi", "z", "za", "zakaj", "zdaj", "že",
}

// Lit lists Lithuanian stop-words.
var Lit = []string{
	"ant", "apie", "ar", "arba", "aš", "be", "bei", "bet", "bus", "buvo",
	"būti", "dar", "daug", "dėl", "gal", "gali", "galima", "iki", "ir",
	"iš", "ja", "jai", "jam", "jas", "jei", "ji", "jie", "jis", "jo",
	"jog", "jos", "jums", "jus", "jūs", "kad", "kai", "kaip", "kas",
	"kiek", "kito", "kol", "kur", "kurie", "kuris", "labai", "lyg", "man",
	"mane", "mano", "mes", "mums", "mus", "mūsų", "ne", "nei", "nes",
	"net", "nors", "nuo", "o", "pagal", "pat", "per", "po", "prie", "prieš",
	"sau", "save", "savo", "su", "tačiau", "tai", "taip", "tam", "tas",
	"tau", "tave", "tavo", "ten", "tik", "to", "todėl", "tos", "tu", "tuo",
	"už", "visi", "viso", "yra", "į",
}

// Lav lists Latvian stop-words.
var Lav = []string{
	"aiz", "ap", "apakš", "ar", "arī", "bet", "bez", "bija", "biji",
	"biju", "bijām", "būs", "būsi", "būsiet", "būsim", "būt", "caur",
	"diemžēl", "diezin", "droši", "dēļ", "es", "esam", "esat", "esi",
	"esmu", "gan", "gar", "ir", "it", "itin", "iz", "ja", "jau", "jebšu",
	"jeb", "jel", "jo", "jūs", "ka", "kamēr", "kas", "kaut", "kopš",
	"kā", "kļuva", "kļūst", "kļūt", "labad", "lai", "lejpus", "līdz",
	"man", "mani", "mans", "mēs", "mūsu", "ne", "nebūt", "nekā", "nevis",
	"nezin", "no", "nu", "nē", "pa", "par", "pat", "pie", "pirms", "pret",
	"priekš", "pār", "pēc", "starp", "tad", "tak", "tam", "tas", "tavs",
	"te", "tie", "tik", "tikai", "tiki", "tikko", "tiklab", "tiklīdz",
	"tiks", "tikt", "tu", "tur", "turp", "tā", "tādēļ", "tālab", "tāpēc",
	"un", "uz", "vai", "var", "varat", "varēja", "varēs", "varēt", "viņa",
	"viņi", "viņš", "vien", "virs", "vis", "viss", "zem", "ārpus", "šeit",
	"šis", "šī", "žēl",
}

// Est lists Estonian stop-words.
var Est = []string{
	"aga", "ei", "et", "ja", "jah", "kas", "kui", "kõik", "ma", "me",
	"mida", "midagi", "mind", "minu", "mis", "mu", "mul", "mulle", "nad",
	"nii", "oled", "olen", "oli", "oma", "on", "pole", "sa", "seda",
	"see", "selle", "siin", "siis", "ta", "te", "ära",
}

// Epo lists Esperanto stop-words.
var Epo = []string{
	"al", "ankaŭ", "antaŭ", "aŭ", "da", "de", "dum", "el", "en", "estas",
	"estis", "estos", "estu", "estus", "ili", "ilia", "inter", "ja", "je",
	"kaj", "ke", "kiam", "kie", "kiel", "kio", "kiu", "kiuj", "kun", "la",
	"li", "lia", "mi", "mia", "ne", "ni", "nia", "nur", "per", "plej",
	"pli", "plu", "po", "por", "post", "pri", "pro", "se", "sed", "si",
	"sia", "sur", "tamen", "tio", "tiu", "tra", "tre", "tro", "vi", "via",
	"ĉar", "ĉe", "ĉi", "ĉiu", "ĝi", "ĝia", "ŝi", "ŝia",
}

// Lat lists Latin stop-words.
var Lat = []string{
	"a", "ab", "ac", "ad", "at", "atque", "aut", "autem", "cum", "de",
	"dum", "e", "erant", "erat", "est", "et", "etiam", "ex", "haec",
	"hic", "hoc", "in", "ita", "me", "nec", "neque", "non", "per", "qua",
	"quae", "quam", "qui", "quibus", "quidem", "quo", "quod", "re",
	"rebus", "rem", "res", "sed", "si", "sic", "sunt", "tamen", "tandem",
	"te", "ut", "vel",
}

// Cat lists Catalan stop-words.
var Cat = []string{
	"a", "abans", "algun", "alguna", "algunes", "alguns", "altre", "amb",
	"ambdós", "anar", "ans", "aquell", "aquelles", "aquells", "aquest",
	"aquesta", "aquestes", "aquests", "així", "bastant", "bé", "cada",
	"com", "consegueixo", "conseguim", "conseguir", "contra", "d'un",
	"d'una", "dalt", "de", "del", "dels", "des", "dins", "el", "elles",
	"ells", "els", "en", "ens", "entre", "era", "erem", "eren", "eres",
	"es", "esta", "estan", "estat", "estava", "estem", "esteu", "estic",
	"està", "et", "fa", "fem", "fer", "feu", "fi", "fins", "fora", "ha",
	"han", "haver", "hi", "ho", "i", "inclòs", "ja", "jo", "la", "les",
	"li", "llarg", "llavors", "mentre", "meu", "mode", "molt", "molts",
	"nosaltres", "no", "nostre", "o", "on", "per", "perquè", "però",
	"podem", "poden", "poder", "podeu", "potser", "primer", "puc", "quan",
	"quant", "qual", "quals", "que", "qui", "quin", "quina", "quines",
	"quins", "sabem", "saben", "saber", "sabeu", "sap", "saps", "sense",
	"ser", "seu", "seus", "si", "sobre", "sols", "som", "son", "sota",
	"també", "te", "tene", "tenim", "tenir", "teniu", "teu", "tinc",
	"tot", "un", "una", "unes", "uns", "us", "va", "vaig", "vosaltres",
	"érem", "éreu", "és",
}

// Tur lists Turkish stop-words.
var Tur = []string{
	"acaba", "altı", "ama", "ancak", "artık", "asla", "aslında", "az",
	"bana", "bazen", "bazı", "bazıları", "belki", "ben", "beni", "benim",
	"beş", "bile", "bir", "birçok", "biri", "birkaç", "biz", "bize",
	"bizi", "bizim", "böyle", "böylece", "bu", "buna", "bunda", "bundan",
	"bunu", "bunun", "burada", "bütün", "çok", "çünkü", "da", "daha",
	"de", "defa", "değil", "diye", "dolayı", "dört", "elbette", "en",
	"fakat", "gibi", "hangi", "hatta", "hem", "henüz", "hep", "hepsi",
	"her", "herkes", "hiç", "için", "içinde", "iki", "ile", "ise", "işte",
	"kaç", "kadar", "kendi", "ki", "kim", "kime", "kimin", "mı", "mi",
	"mu", "mü", "nasıl", "ne", "neden", "nerede", "nereye", "niçin",
	"niye", "o", "on", "ona", "ondan", "onlar", "onlara", "onları",
	"onların", "onu", "onun", "öyle", "sadece", "sanki", "sekiz", "sen",
	"senden", "seni", "senin", "siz", "sizden", "sizi", "sizin", "son",
	"sonra", "şey", "şimdi", "şu", "şuna", "şunu", "tarafından", "tüm",
	"üç", "var", "ve", "veya", "ya", "yani", "yedi", "yine", "zaten",
}

// Azj lists Azerbaijani stop-words.
var Azj = []string{
	"altı", "ancaq", "artıq", "az", "bax", "belə", "beş", "bir", "biraz",
	"biri", "biz", "bizim", "bu", "buna", "bunu", "bunun", "burada",
	"bütün", "çox", "çünki", "da", "daha", "də", "dörd", "əgər", "əlbəttə",
	"et", "görə", "ha", "haqqında", "hansı", "hər", "heç", "ilə", "iki",
	"isə", "ki", "kim", "lakin", "mən", "mənim", "niyə", "o", "olan",
	"olar", "on", "onlar", "onun", "orada", "öz", "qarşı", "sən", "sənin",
	"siz", "sonra", "üç", "üçün", "var", "və", "ya", "yeddi", "yox",
	"yəni",
}

// Uzb lists Uzbek stop-words.
var Uzb = []string{
	"ammo", "bilan", "bir", "biroq", "bo'ladi", "bo'lgan", "bo'lib",
	"bo'lishi", "bu", "edi", "emas", "eng", "esa", "hamda", "har",
	"hech", "keyin", "kerak", "ko'p", "lekin", "mumkin", "qanday", "shu",
	"siz", "u", "uchun", "ular", "va", "ya'ni", "yoki",
}

// Ind lists Indonesian stop-words.
var Ind = []string{
	"ada", "adalah", "agar", "akan", "aku", "anda", "antara", "apa",
	"atau", "bagi", "bahwa", "banyak", "beberapa", "begitu", "belum",
	"bisa", "bukan", "dalam", "dan", "dapat", "dari", "dengan", "di",
	"dia", "dua", "hanya", "harus", "hingga", "ia", "ini", "itu", "jadi",
	"jika", "juga", "kalau", "kami", "kamu", "karena", "ke", "kemudian",
	"kepada", "ketika", "kita", "lagi", "lain", "lebih", "maka", "masih",
	"melalui", "memiliki", "mereka", "namun", "oleh", "pada", "para",
	"pun", "saat", "saja", "sama", "sampai", "sangat", "saya", "sebagai",
	"sebuah", "sedang", "sehingga", "sejak", "sekarang", "selain",
	"seperti", "serta", "sudah", "suatu", "tanpa", "telah", "tentang",
	"terhadap", "tersebut", "tetapi", "tidak", "untuk", "yaitu", "yang",
}

// Jav lists Javanese stop-words.
var Jav = []string{
	"aja", "ake", "ana", "apa", "arep", "bakal", "banjur", "bisa", "dadi",
	"dening", "dheweke", "ing", "iki", "iku", "karo", "kang", "kanggo",
	"lan", "luwih", "marang", "nanging", "ora", "padha", "saka", "sing",
	"uga", "wis", "yen",
}

// Vie lists Vietnamese stop-words.
var Vie = []string{
	"bị", "bởi", "cả", "các", "cái", "cần", "càng", "chỉ", "chiếc", "cho",
	"chứ", "chưa", "có", "có thể", "cứ", "của", "cùng", "cũng", "đã",
	"đang", "đây", "để", "đến", "đều", "điều", "do", "đó", "được", "dưới",
	"gì", "khi", "không", "là", "lại", "lên", "lúc", "mà", "mỗi", "một",
	"này", "nên", "nếu", "ngay", "nhiều", "như", "nhưng", "những", "nơi",
	"nữa", "phải", "qua", "ra", "rằng", "rất", "rồi", "sau", "sẽ", "so",
	"sự", "tại", "theo", "thì", "trên", "trong", "từ", "từng", "và",
	"vẫn", "vào", "vậy", "vì", "việc", "với",
}

// Tgl lists Tagalog stop-words.
var Tgl = []string{
	"akin", "aking", "ako", "alin", "am", "amin", "aming", "ang", "ano",
	"anumang", "apat", "at", "atin", "ating", "ay", "bago", "bakit",
	"bawat", "dahil", "dapat", "din", "dito", "doon", "gagawin", "gayunman",
	"ginagawa", "ginawa", "gusto", "habang", "hanggang", "hindi", "huwag",
	"iba", "ibaba", "ibig", "ikaw", "ilan", "inyong", "isa", "isang",
	"itaas", "ito", "iyo", "iyon", "iyong", "ka", "kahit", "kailangan",
	"kami", "kanila", "kanilang", "kanino", "kanya", "kanyang", "kapag",
	"katulad", "kaya", "kaysa", "ko", "kong", "kulang", "kung", "laban",
	"lahat", "lamang", "likod", "lima", "maaari", "macapagbigay", "marami",
	"marapat", "masyado", "may", "mayroon", "mga", "minsan", "mismo",
	"mula", "muli", "na", "nabanggit", "naging", "nagkaroon", "nais",
	"nakita", "namin", "napaka", "narito", "nasaan", "ng", "ngayon", "ni",
	"nila", "nilang", "nito", "niya", "niyang", "noon", "o", "pa",
	"paano", "pababa", "paggawa", "pagitan", "pagkatapos", "palibhasa",
	"para", "paraan", "pareho", "pataas", "pero", "pumunta", "sa",
	"saan", "sabi", "sarili", "sila", "sino", "siya", "tayo", "tulad",
	"tungkol", "una", "walang",
}

// Aka lists Akan stop-words.
var Aka = []string{
	"a", "ankasa", "anaa", "baabi", "bi", "biara", "de", "deɛ", "ho",
	"mu", "na", "ne", "nso", "sei", "seɛ", "wɔ", "yi", "ɛna", "ɛno",
}

// Zul lists Zulu stop-words.
var Zul = []string{
	"futhi", "kahle", "kakhulu", "kanye", "khona", "kodwa", "kungani",
	"kusho", "la", "lakhe", "lapho", "mina", "ngesikhathi", "nje",
	"phansi", "phezulu", "u", "ukuba", "ukuthi", "ukuze", "uma", "wahamba",
	"wakhe", "wami", "wase", "wathi", "yakhe", "zakhe", "zonke",
}

// Sna lists Shona stop-words.
var Sna = []string{
	"ichi", "icho", "iye", "kana", "kuti", "ndi", "pa", "uye", "vari",
	"zvakare", "zvino",
}

// Afr lists Afrikaans stop-words.
var Afr = []string{
	"'n", "aan", "af", "al", "as", "baie", "by", "daar", "dag", "dat",
	"die", "dit", "een", "ek", "en", "gaan", "gesê", "haar", "het", "hom",
	"hulle", "hy", "in", "is", "jou", "jy", "kan", "kom", "ma", "maar",
	"met", "my", "na", "nie", "om", "ons", "op", "saam", "sal", "se",
	"sien", "so", "sy", "te", "toe", "uit", "van", "vir", "was", "wat",
	"ŉ",
}

// Tuk lists Turkmen stop-words.
var Tuk = []string{
	"bilen", "bir", "bu", "hem", "men", "ol", "onuň", "sen", "siz", "we",
	"ýa-da", "ýok", "üçin",
}

// Som lists Somali stop-words.
var Som = []string{
	"aad", "albaabkii", "atabo", "ay", "ayaa", "ayee", "ayuu", "dhan",
	"hadana", "in", "inuu", "isku", "jiray", "jirtay", "ka", "kale",
	"kasoo", "ku", "kuu", "lakin", "markii", "oo", "si", "soo", "uga",
	"ugu", "uu", "waa", "waxa", "waxuu",
}

// Hau lists Hausa stop-words.
var Hau = []string{
	"a", "amma", "ba", "ban", "ce", "cikin", "da", "don", "ga", "in",
	"ina", "ita", "ji", "ka", "ko", "kuma", "lokacin", "ma", "mai", "na",
	"ne", "ni", "sai", "shi", "su", "suka", "sun", "ta", "tafi", "take",
	"tana", "wani", "wannan", "wata", "ya", "yake", "yana", "yi", "za",
}
