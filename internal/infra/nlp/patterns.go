package nlp

import (
	"strings"
	"vittasaathi/internal/domain/entities"
)

// keywordSet maps a locale to its keyword list. Matching always tries the
// active locale first and then the English list as a fallback; both are
// checked as one priority slot in the cascade.
type keywordSet map[entities.Locale][]string

func (k keywordSet) matches(lower string, locale entities.Locale) bool {
	return k.find(lower, locale) >= 0
}

// find returns the byte index of the first keyword hit, or -1.
func (k keywordSet) find(lower string, locale entities.Locale) int {
	start, _ := k.findSpan(lower, locale)
	return start
}

// findSpan returns the start and end byte offsets of the earliest keyword
// hit, or (-1, -1).
func (k keywordSet) findSpan(lower string, locale entities.Locale) (int, int) {
	start, end := -1, -1
	for _, lang := range []entities.Locale{locale, entities.LocaleEnglish} {
		for _, keyword := range k[lang] {
			if idx := strings.Index(lower, keyword); idx >= 0 && (start < 0 || idx < start) {
				start, end = idx, idx+len(keyword)
			}
		}
		if lang == entities.LocaleEnglish {
			break
		}
	}
	return start, end
}

// phraseSet is for exact full-string matches (greetings).
type phraseSet map[entities.Locale][]string

func (p phraseSet) matchesExact(lower string, locale entities.Locale) bool {
	for _, lang := range []entities.Locale{locale, entities.LocaleEnglish} {
		for _, phrase := range p[lang] {
			if lower == phrase {
				return true
			}
		}
		if lang == entities.LocaleEnglish {
			break
		}
	}
	return false
}

var otpKeywords = keywordSet{
	entities.LocaleEnglish: {"otp", "login code", "verification", "send code"},
	entities.LocaleHindi:   {"वेरिफिकेशन"},
	entities.LocaleTamil:   {"உறுதிப்படுத்தல்"},
}

var greetingPhrases = phraseSet{
	entities.LocaleEnglish: {"hi", "hello", "hey", "hola", "good morning", "good evening"},
	entities.LocaleHindi:   {"नमस्ते", "हेलो", "हाय"},
	entities.LocaleTamil:   {"வணக்கம்", "ஹாய்", "ஹலோ"},
	entities.LocaleTelugu:  {"నమస్కారం", "హాయ్", "హలో"},
}

var helpKeywords = keywordSet{
	entities.LocaleEnglish: {"help", "menu", "what can you do"},
	entities.LocaleHindi:   {"मदद"},
	entities.LocaleTamil:   {"உதவி"},
	entities.LocaleTelugu:  {"సహాయం"},
}

var investmentKeywords = keywordSet{
	entities.LocaleEnglish: {"invest", "sip", "mutual fund", "stocks", "gold", "fd", "ppf"},
	entities.LocaleHindi:   {"निवेश", "शेयर"},
	entities.LocaleTamil:   {"முதலீடு"},
	entities.LocaleTelugu:  {"పెట్టుబడి"},
}

var marketKeywords = keywordSet{
	entities.LocaleEnglish: {"market", "nifty", "sensex", "share price"},
	entities.LocaleHindi:   {"बाजार"},
	entities.LocaleTamil:   {"சந்தை"},
}

var incomeKeywords = keywordSet{
	entities.LocaleEnglish: {"earned", "received", "got paid", "income", "salary", "kamai", "kamaya"},
	entities.LocaleHindi:   {"कमाया", "मिला", "आमदनी", "सैलरी"},
	entities.LocaleTamil:   {"சம்பாதித்தேன்", "வருமானம்", "கிடைத்தது"},
	entities.LocaleTelugu:  {"సంపాదించాను", "ఆదాయం", "వచ్చింది"},
}

var expenseKeywords = keywordSet{
	entities.LocaleEnglish: {"spent", "paid", "bought", "buy", "expense", "kharch"},
	entities.LocaleHindi:   {"खर्च", "दिया", "खरीदा"},
	entities.LocaleTamil:   {"செலவு", "கொடுத்தேன்"},
	entities.LocaleTelugu:  {"ఖర్చు", "చెల్లించాను"},
}

var balanceKeywords = keywordSet{
	entities.LocaleEnglish: {"balance", "how much do i have", "kitna"},
	entities.LocaleHindi:   {"बैलेंस", "कितना"},
	entities.LocaleTamil:   {"இருப்பு", "எவ்வளவு"},
}

var reportKeywords = keywordSet{
	entities.LocaleEnglish: {"report", "summary", "weekly", "monthly"},
	entities.LocaleHindi:   {"रिपोर्ट", "सारांश"},
	entities.LocaleTamil:   {"அறிக்கை"},
}

var goalKeywords = keywordSet{
	entities.LocaleEnglish: {"goal", "target", "budget", "progress"},
	entities.LocaleHindi:   {"लक्ष्य", "बजट"},
	entities.LocaleTamil:   {"இலக்கு"},
	entities.LocaleTelugu:  {"లక్ష్యం"},
}
