package nlp

import (
	"regexp"
	"strings"
	"vittasaathi/internal/domain/entities"
)

// Script block per locale, checked in this order. The blocks are disjoint,
// so the first hit is the only possible hit.
var scriptLocales = []struct {
	locale  entities.Locale
	pattern *regexp.Regexp
}{
	{entities.LocaleHindi, regexp.MustCompile(`[\x{0900}-\x{097F}]`)},
	{entities.LocaleTamil, regexp.MustCompile(`[\x{0B80}-\x{0BFF}]`)},
	{entities.LocaleTelugu, regexp.MustCompile(`[\x{0C00}-\x{0C7F}]`)},
	{entities.LocaleKannada, regexp.MustCompile(`[\x{0C80}-\x{0CFF}]`)},
	{entities.LocaleMalayalam, regexp.MustCompile(`[\x{0D00}-\x{0D7F}]`)},
}

var languageCommands = map[string]bool{
	"language":        true,
	"change language": true,
	"lang":            true,
	"भाषा":            true,
}

// IsLanguageCommand reports whether text is an explicit language-change command.
func IsLanguageCommand(text string) bool {
	return languageCommands[strings.ToLower(strings.TrimSpace(text))]
}

// DetectLocale resolves the locale for one utterance. A valid stored locale is
// authoritative unless the text is an explicit language-change command; script
// detection only applies when no valid locale is stored.
func DetectLocale(text string, stored entities.Locale) entities.Locale {
	if stored.Valid() && !IsLanguageCommand(text) {
		return stored
	}
	for _, sl := range scriptLocales {
		if sl.pattern.MatchString(text) {
			return sl.locale
		}
	}
	return entities.DefaultLocale
}
