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

// Rus lists Russian stop-words.
var Rus = []string{
	"а", "без", "более", "больше", "будет", "будто", "бы", "был", "была",
	"были", "было", "быть", "в", "вам", "вас", "вдруг", "ведь", "во",
	"вот", "впрочем", "все", "всегда", "всего", "всех", "всю", "вы",
	"где", "да", "даже", "два", "для", "до", "другой", "его", "ее", "ей",
	"ему", "если", "есть", "еще", "ж", "же", "за", "зачем", "здесь", "и",
	"из", "или", "им", "иногда", "их", "к", "как", "какая", "какой",
	"когда", "конечно", "кто", "куда", "ли", "лучше", "между", "меня",
	"мне", "много", "может", "можно", "мой", "моя", "мы", "на", "над",
	"надо", "наконец", "нас", "не", "него", "нее", "ней", "нельзя",
	"нет", "ни", "нибудь", "никогда", "ним", "них", "ничего", "но", "ну",
	"о", "об", "один", "он", "она", "они", "опять", "от", "перед", "по",
	"под", "после", "потом", "потому", "почти", "при", "про", "раз",
	"разве", "с", "сам", "свою", "себе", "себя", "сейчас", "со", "совсем",
	"так", "такой", "там", "тебя", "тем", "теперь", "то", "тогда", "того",
	"тоже", "только", "том", "тот", "три", "тут", "ты", "у", "уж", "уже",
	"хорошо", "хоть", "чего", "чем", "через", "что", "чтоб", "чтобы",
	"чуть", "эти", "этого", "этой", "этом", "этот", "эту", "я",
}

// Ukr lists Ukrainian stop-words.
var Ukr = []string{
	"а", "або", "але", "б", "без", "би", "був", "була", "були", "було",
	"бути", "в", "вам", "вас", "весь", "вже", "ви", "від", "він", "вона",
	"вони", "воно", "все", "всі", "де", "для", "до", "його", "з", "за",
	"зі", "і", "із", "її", "й", "коли", "ли", "лише", "ми", "мій", "на",
	"нам", "нас", "не", "нею", "ним", "них", "ні", "о", "обо", "один",
	"от", "по", "при", "про", "се", "собі", "та", "так", "також", "там",
	"те", "ти", "тим", "то", "того", "той", "тут", "у", "хто", "це",
	"цей", "ці", "через", "чи", "чого", "що", "щоб", "я", "як", "яка",
	"який", "яких",
}

// Srp lists Serbian stop-words.
var Srp = []string{
	"а", "ако", "али", "би", "била", "били", "било", "био", "бити", "ви",
	"време", "га", "да", "до", "други", "за", "зар", "и", "из", "или",
	"им", "има", "их", "ја", "је", "једна", "једне", "једно", "јер",
	"јој", "још", "ју", "кад", "када", "како", "као", "код", "која",
	"које", "који", "ли", "ме", "мене", "мени", "ми", "мој", "му", "на",
	"над", "нам", "нас", "наш", "не", "него", "нека", "неки", "нема",
	"ни", "није", "ним", "них", "но", "о", "об", "од", "он", "она",
	"они", "оно", "па", "по", "под", "пре", "при", "с", "са", "сам",
	"само", "све", "сви", "се", "себе", "си", "смо", "су", "та", "тај",
	"тако", "те", "ти", "то", "у", "уз", "што",
}

// Bel lists Belarusian stop-words.
var Bel = []string{
	"а", "або", "але", "б", "без", "бы", "быў", "была", "былі",
	"было", "быць", "в", "вам", "вас", "вы", "гэта", "гэты", "дзе", "для",
	"да", "ды", "ён", "ж", "жа", "з", "за", "і", "іх", "й", "калі", "каб",
	"мы", "на", "нам", "нас", "не", "ні", "но", "пра", "при", "са", "сваё",
	"так", "таксама", "там", "то", "той", "ты", "у", "што", "я", "як",
	"яна", "яны", "яно", "яго", "яе",
}

// Bul lists Bulgarian stop-words.
var Bul = []string{
	"а", "ако", "ала", "бе", "без", "беше", "би", "бил", "била", "били",
	"било", "близо", "бъдат", "бъде", "бяха", "в", "вас", "ваш", "ваша",
	"вероятно", "вече", "взема", "ви", "вие", "винаги", "все", "всеки",
	"всички", "всичко", "всяка", "във", "въпреки", "върху", "г", "ги",
	"главен", "го", "д", "да", "дали", "до", "докато", "докога", "дори",
	"досега", "е", "едва", "един", "ето", "за", "зад", "заедно", "заради",
	"засега", "затова", "защо", "защото", "и", "из", "или", "им", "има",
	"имат", "иска", "й", "каза", "как", "каква", "какво", "както", "какъв",
	"като", "кога", "когато", "което", "които", "кой", "който", "колко",
	"която", "къде", "където", "към", "ли", "м", "ме", "между", "мен",
	"ми", "мнозина", "мога", "могат", "може", "моля", "момента", "му",
	"н", "на", "над", "назад", "най", "направи", "напред", "например",
	"нас", "не", "него", "нея", "ни", "ние", "никой", "нито", "но",
	"някои", "някой", "няколко", "няма", "обаче", "около", "освен",
	"особено", "от", "отгоре", "отново", "още", "пак", "по", "повече",
	"повечето", "под", "поне", "поради", "после", "почти", "прави", "пред",
	"преди", "през", "при", "пък", "първо", "с", "са", "само", "се",
	"сега", "си", "скоро", "след", "сме", "според", "сред", "срещу", "сте",
	"съм", "със", "също", "т", "тази", "така", "такива", "такъв", "там",
	"твой", "те", "тези", "ти", "то", "това", "тогава", "този", "той",
	"толкова", "точно", "трябва", "тук", "тъй", "тя", "тях", "у", "харесва",
	"ч", "че", "често", "чрез", "ще", "щом", "я",
}

// Mkd lists Macedonian stop-words.
var Mkd = []string{
	"а", "ако", "али", "би", "во", "врз", "ги", "го", "дека", "до", "е",
	"за", "зад", "и", "или", "им", "како", "кога", "кој", "која", "кое",
	"ли", "me", "меѓу", "ми", "на", "над", "не", "него", "нив", "но",
	"од", "околу", "она", "оние", "пак", "по", "под", "пред", "при",
	"се", "сите", "со", "сè", "та", "таа", "тие", "тоа", "тој", "што",
	"штом",
}
