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

// Cmn lists Mandarin stop-words.
var Cmn = []string{
	"一", "一些", "一切", "上", "下", "不", "不会", "不是", "与", "个",
	"为", "也", "了", "于", "他", "他们", "你", "你们", "但", "但是",
	"你的", "们", "到", "即", "又", "及", "可以", "吗", "吧", "呢", "和",
	"哪", "哪个", "哪些", "在", "她", "她们", "如果", "它", "它们", "对",
	"将", "就", "已经", "很", "得", "我", "我们", "我的", "或", "或者",
	"所以", "把", "是", "有", "没有", "的", "着", "种", "而", "能",
	"自己", "被", "要", "说", "这", "这个", "这些", "那", "那个", "那些",
	"都", "非常",
}

// Jpn lists Japanese stop-words.
var Jpn = []string{
	"あそこ", "あの", "あり", "あります", "ある", "いた", "いる", "う",
	"お", "および", "か", "かつて", "から", "が", "き", "ここ", "こと",
	"この", "これ", "これら", "さ", "さらに", "し", "しかし", "する",
	"せ", "そこ", "その", "それ", "それぞれ", "た", "ただし", "たち",
	"ため", "たり", "だ", "だっ", "つ", "て", "で", "でき", "できる",
	"です", "では", "と", "という", "といった", "とき", "ところ", "とも",
	"な", "ない", "なお", "なかっ", "ながら", "なく", "なっ", "など",
	"なら", "なり", "に", "において", "における", "について", "にて",
	"によって", "により", "による", "に対して", "の", "ので", "のみ",
	"は", "ば", "へ", "ほか", "ほとんど", "ほど", "ます", "また", "または",
	"まで", "も", "もの", "ものの", "や", "よう", "より", "ら", "られ",
	"られる", "れ", "れる", "を", "ん",
}

// Kor lists Korean stop-words.
var Kor = []string{
	"가", "것", "게", "고", "과", "그", "그것", "그리고", "나", "는",
	"다", "대한", "더", "도", "되다", "된", "될", "들", "등", "때", "로",
	"를", "만", "및", "뿐", "수", "아니다", "않다", "에", "에게", "에서",
	"와", "으로", "은", "을", "의", "이", "이것", "있다", "저", "적",
	"좀", "주다", "중", "하는", "하다", "한", "할", "함께", "했다",
}

// Arb lists Arabic stop-words.
var Arb = []string{
	"أن", "أو", "إذا", "إلى", "إن", "الذي", "التي", "الذين", "ان", "بعد",
	"بعض", "بها", "به", "بين", "ثم", "جدا", "حتى", "حيث", "حين", "خلال",
	"دون", "ذلك", "على", "عليه", "عن", "عند", "غير", "فى", "في", "قبل",
	"قد", "كان", "كانت", "كل", "كما", "لا", "لكن", "لم", "لن", "له",
	"لها", "لهم", "ما", "مثل", "مع", "من", "منذ", "منها", "هذا", "هذه",
	"هناك", "هو", "هي", "و", "وقد", "وكان", "ولا", "ولم", "وهو", "وهي",
	"يكون", "يمكن",
}

// Urd lists Urdu stop-words.
var Urd = []string{
	"آپ", "اس", "اسے", "ان", "انہوں", "اور", "ایک", "بھی", "تو", "تھا",
	"تھے", "تھی", "جب", "جس", "جو", "سے", "کا", "کر", "کرتے", "کریں",
	"کہ", "کی", "کے", "گا", "گی", "گے", "لئے", "لیکن", "مجھے", "میں",
	"نہیں", "نے", "وہ", "ہم", "ہو", "ہوئے", "ہیں", "ہے", "یہ",
}

// Pes lists Persian stop-words.
var Pes = []string{
	"آن", "آنها", "اگر", "اما", "او", "اول", "این", "با", "باید", "بر",
	"برای", "بعد", "بود", "بودن", "به", "بی", "تا", "تو", "خود", "در",
	"را", "روی", "زیرا", "سپس", "شد", "شده", "شود", "که", "گفت", "ما",
	"مانند", "من", "نیز", "نیست", "ها", "های", "هر", "هم", "همه", "هیچ",
	"و", "وقتی", "ولی", "یا", "یک",
}

// Heb lists Hebrew stop-words.
var Heb = []string{
	"אבל", "או", "אחד", "אחר", "אחרי", "אי", "אין", "איך", "אל", "אלה",
	"אם", "אנחנו", "אני", "אף", "אצל", "אשר", "את", "אתה", "אתם", "בין",
	"גם", "הוא", "היא", "היה", "היו", "הם", "הרבה", "זאת", "זה", "יותר",
	"יש", "כאשר", "כי", "כך", "כל", "כמו", "כן", "לא", "לה", "להיות",
	"להם", "לו", "לי", "לכל", "מאוד", "מה", "מי", "מן", "עד", "על",
	"עם", "עצמו", "של", "שלו", "שלי", "רק",
}

// Ydd lists Yiddish stop-words.
var Ydd = []string{
	"אָבער", "אױף", "אין", "איז", "איך", "און", "אַ", "אַז", "דאָס", "דו",
	"די", "דער", "האָבן", "האָט", "וואָס", "ווי", "זי", "זיי", "זײַן",
	"מיט", "מיר", "ניט", "נישט", "עס", "ער", "פֿאַר", "פֿון", "צו",
}

// Hin lists Hindi stop-words.
var Hin = []string{
	"अपना", "अपनी", "अपने", "अभी", "अंदर", "आदि", "आप", "इन", "इस",
	"इसका", "इसकी", "इसके", "इसमें", "इसी", "इसे", "उन", "उनका", "उनकी",
	"उनके", "उस", "उसके", "उसी", "उसे", "एक", "एवं", "ऐसे", "और", "कई",
	"कर", "करता", "करते", "करना", "करने", "करें", "कहा", "का", "किया",
	"किसी", "की", "कुछ", "के", "को", "कोई", "कौन", "गया", "जब", "जहाँ",
	"जा", "जिस", "जो", "तक", "तब", "तरह", "तो", "था", "थी", "थे", "दिया",
	"दो", "द्वारा", "न", "नहीं", "ना", "ने", "पर", "पहले", "पूरा", "फिर",
	"बहुत", "बाद", "बिना", "भी", "मगर", "मानो", "में", "मैं", "यदि",
	"यह", "यहाँ", "यही", "ये", "रहा", "रहे", "लिए", "वर्ग", "वह", "वहाँ",
	"वाले", "वे", "सकता", "सब", "सभी", "साथ", "से", "ही", "हुआ", "हुई",
	"हुए", "है", "हैं", "हो", "होता", "होती", "होने",
}

// Mar lists Marathi stop-words.
var Mar = []string{
	"आहे", "आहेत", "आणि", "असून", "असलेल्या", "एक", "एका", "कमी", "करण्यात",
	"करून", "का", "काही", "की", "त्या", "त्याच्या", "त्यांच्या", "त्यांनी",
	"दोन", "नाही", "पण", "मात्र", "मी", "या", "याच्या", "यांच्या", "यांनी",
	"येथील", "व", "सर्व", "हा", "ही", "हे", "होते", "होती", "होता",
}

// Nep lists Nepali stop-words.
var Nep = []string{
	"अझै", "अनि", "अब", "आफ्नो", "उनले", "उनी", "एक", "कि", "को", "गरी",
	"गरेको", "गर्न", "गर्ने", "छ", "छन्", "छैन", "तर", "तिनी", "त्यो",
	"थियो", "दिए", "देखि", "न", "पनि", "पर्छ", "भए", "भएको", "भने", "म",
	"मा", "यो", "र", "लाई", "ले", "हुन्", "हो",
}

// Ben lists Bengali stop-words.
var Ben = []string{
	"অনেক", "অন্য", "আছে", "আমরা", "আমার", "আমি", "আর", "এ", "এই",
	"এক", "একটি", "এবং", "এর", "এস", "ও", "ওই", "করা", "করে", "কি",
	"কিছু", "কিন্তু", "কে", "কোন", "গিয়ে", "ছিল", "জন্য", "তখন", "তবে",
	"তা", "তাই", "তার", "তারা", "তিনি", "তো", "থেকে", "দিয়ে", "দুই",
	"না", "নিয়ে", "নেই", "পরে", "বলে", "বা", "মধ্যে", "যা", "যে", "সে",
	"সেই", "হবে", "হয়", "হয়ে",
}

// Guj lists Gujarati stop-words.
var Guj = []string{
	"અને", "આ", "આવે", "એ", "એક", "કરવામાં", "કે", "કોઈ", "છે", "છો",
	"જ", "જે", "તે", "તેના", "તેની", "તેમ", "તો", "થઈ", "થાય", "ન",
	"નથી", "ના", "ની", "નું", "ને", "નો", "પછી", "પણ", "પર", "મા",
	"માં", "માટે", "હતા", "હતી", "હતું", "હોય",
}

// Pan lists Punjabi stop-words.
var Pan = []string{
	"ਅਤੇ", "ਇਸ", "ਇਹ", "ਇੱਕ", "ਉਹ", "ਕਰ", "ਕੀਤਾ", "ਕਿ", "ਕੇ", "ਗਿਆ",
	"ਜੋ", "ਤੋਂ", "ਦਾ", "ਦੀ", "ਦੇ", "ਨਹੀਂ", "ਨਾਲ", "ਨੂੰ", "ਨੇ", "ਵਿੱਚ",
	"ਸੀ", "ਹਨ", "ਹੈ", "ਹੋ",
}

// Tam lists Tamil stop-words.
var Tam = []string{
	"அது", "அந்த", "அவர்", "அவர்கள்", "அல்லது", "ஆகிய", "இது", "இந்த",
	"இருந்து", "உள்ள", "உள்ளது", "என்", "என்n", "என்பது", "என்று", "ஒரு",
	"ஒரே", "கொண்டு", "செய்த", "தான்", "நான்", "மற்றும்", "மிக", "மேலும்",
	"வேண்டும்",
}

// Tel lists Telugu stop-words.
var Tel = []string{
	"అనే", "అని", "అయితే", "ఈ", "ఉంది", "ఒక", "కానీ", "కూడా", "గా",
	"చేసిన", "తన", "తో", "ద్వారా", "నుండి", "మరియు", "లేదా", "లో",
	"వారి", "ఆ", "ఇది",
}

// Kan lists Kannada stop-words.
var Kan = []string{
	"ಅದು", "ಅವರ", "ಆ", "ಈ", "ಒಂದು", "ಮತ್ತು", "ಆದರೆ", "ಇದು", "ಇದೆ",
	"ಎಂದು", "ಕೂಡ", "ತನ್ನ", "ನಂತರ", "ಮೇಲೆ", "ಹಾಗೂ", "ಅಥವಾ",
}

// Mal lists Malayalam stop-words.
var Mal = []string{
	"അത്", "ഈ", "ഉം", "എന്ന", "എന്ന്", "ഒരു", "ഓ", "കൂടെ", "തന്നെ",
	"മറ്റ്", "വരെ", "ആണ്", "ഉണ്ട്", "അല്ല", "എന്നാൽ", "പിന്നെ",
}

// Ori lists Odia stop-words.
var Ori = []string{
	"ଏକ", "ଏହି", "ଓ", "କରି", "କିନ୍ତୁ", "ତାହା", "ପରେ", "ପାଇଁ", "ମଧ୍ୟ",
	"ରେ", "ସେ", "ହେବ", "ହୋଇ",
}

// Sin lists Sinhala stop-words.
var Sin = []string{
	"අතර", "ආදී", "එම", "ඒ", "කර", "කළ", "ද", "නම්", "මෙම", "විසින්",
	"සහ", "සිට", "හා", "හෝ",
}

// Tha lists Thai stop-words.
var Tha = []string{
	"กว่า", "กัน", "การ", "ก็", "ของ", "ขึ้น", "คือ", "ความ", "จะ", "จัด",
	"จาก", "ซึ่ง", "ดัง", "ด้วย", "ตาม", "ต่อ", "ถึง", "ทั้ง", "ที่",
	"นั้น", "นี้", "ใน", "บาง", "มา", "มาก", "มี", "ยัง", "รวม", "ละ",
	"ว่า", "สุด", "หนึ่ง", "หรือ", "หลัง", "อยู่", "อย่าง", "ออก", "อีก",
	"เป็น", "เพราะ", "เพื่อ", "เมื่อ", "แต่", "และ", "ให้", "ได้", "ไป",
	"ไม่", "ไว้",
}

// Khm lists Khmer stop-words.
var Khm = []string{
	"ក៏", "ការ", "គឺ", "ចំពោះ", "ដែល", "ដោយ", "នៃ", "នឹង", "នេះ", "នោះ",
	"បាន", "មាន", "មិន", "មួយ", "យ៉ាង", "រួច", "ហើយ", "ឱ្យ", "ជា",
	"និង", "ពី", "ទៅ", "ក្នុង",
}

// Mya lists Burmese stop-words.
var Mya = []string{
	"က", "ကို", "တစ်", "တွင်", "ထို", "နှင့်", "များ", "မှ", "ရှိ", "သည်",
	"သို့", "ဖြစ်", "၏",
}

// Kat lists Georgian stop-words.
var Kat = []string{
	"ამ", "არ", "არის", "აქ", "და", "ეს", "იგი", "იყო", "კი", "მაგრამ",
	"მან", "მას", "მე", "მისი", "რომ", "როგორც", "რა", "უნდა", "შემდეგ",
	"ც", "ხოლო",
}

// Hye lists Armenian stop-words.
var Hye = []string{
	"այդ", "այլ", "այն", "այս", "դու", "դուք", "եմ", "են", "ենք", "ես",
	"եք", "է", "էի", "էին", "էինք", "էիր", "էիք", "էր", "ըստ", "թ",
	"ի", "ին", "իսկ", "իր", "կամ", "համար", "հետ", "հետո", "մենք", "մեջ",
	"մի", "ն", "նա", "նաև", "նրա", "նրանք", "որ", "որը", "որոնք",
	"որպես", "ու", "ում", "պիտի", "վրա", "և",
}

// Amh lists Amharic stop-words.
var Amh = []string{
	"ለ", "ላይ", "ሁሉ", "ህዝብ", "ም", "ነበር", "ነው", "ና", "እና", "እንደ",
	"ከ", "ወደ", "ወይም", "ውስጥ", "ደግሞ", "ጋር", "ግን", "በ", "ብቻ", "የ",
	"ያለ", "ይህ",
}

// Ell lists Greek stop-words.
var Ell = []string{
	"αλλά", "από", "αυτά", "αυτές", "αυτή", "αυτό", "αυτοί", "αυτός",
	"αυτούς", "αυτών", "για", "δε", "δεν", "εκείνη", "εκείνο", "εκείνος",
	"ένα", "έναν", "ένας", "είμαι", "είναι", "είχα", "είχε", "επίσης",
	"η", "ή", "ήταν", "θα", "κάθε", "και", "κατά", "μα", "με", "μετά",
	"μη", "μην", "μια", "μου", "να", "ο", "οι", "όμως", "όπως", "όταν",
	"ότι", "ου", "πιο", "ποια", "ποιο", "ποιος", "πολύ", "που", "προς",
	"πως", "πώς", "σαν", "σε", "στη", "στην", "στο", "στον", "τα", "την",
	"της", "τι", "τις", "το", "τον", "του", "τους", "των", "ως",
}
