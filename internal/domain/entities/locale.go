package entities

// Locale is a closed language tag controlling which phrase tables apply.
type Locale string

const (
	LocaleEnglish   Locale = "en"
	LocaleHindi     Locale = "hi"
	LocaleTamil     Locale = "ta"
	LocaleTelugu    Locale = "te"
	LocaleKannada   Locale = "kn"
	LocaleMalayalam Locale = "ml"
)

// DefaultLocale is used whenever detection finds nothing better.
const DefaultLocale = LocaleEnglish

var supportedLocales = map[Locale]bool{
	LocaleEnglish:   true,
	LocaleHindi:     true,
	LocaleTamil:     true,
	LocaleTelugu:    true,
	LocaleKannada:   true,
	LocaleMalayalam: true,
}

// Valid reports whether the locale belongs to the closed supported set.
func (l Locale) Valid() bool {
	return supportedLocales[l]
}
