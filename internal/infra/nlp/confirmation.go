package nlp

import (
	"strings"
	"vittasaathi/internal/domain/entities"
)

// Full-string phrase sets. Substring matching would misfire inside longer
// sentences ("no idea how much I spent"), so only exact matches count.
var positivePhrases = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "ok": true, "okay": true,
	"done": true, "confirm": true, "correct": true, "sahi": true,
	"हां": true, "आम्": true, "ஆம்": true, "అవును": true,
}

var negativePhrases = map[string]bool{
	"no": true, "nope": true, "wait": true, "add more": true,
	"wrong": true, "galat": true,
	"नहीं": true, "இல்லை": true, "కాదు": true,
}

// ExtractConfirmation returns the yes/no polarity of text, or PolarityNone
// when the text is not a bare confirmation phrase.
func ExtractConfirmation(text string) entities.Polarity {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if positivePhrases[normalized] {
		return entities.PolarityPositive
	}
	if negativePhrases[normalized] {
		return entities.PolarityNegative
	}
	return entities.PolarityNone
}
