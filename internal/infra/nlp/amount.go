package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	thousandRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*k\b`)
	lakhRegex     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:l|lakh)\b`)
	bareIntRegex  = regexp.MustCompile(`\b(\d+)\b`)
	anyAmount     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(lakh|k|l)?\b`)
)

var amountReplacer = strings.NewReplacer(",", "", "₹", "", "rupees", "", "rs.", "", "rs", "")

func normalizeAmountText(text string) string {
	return amountReplacer.Replace(strings.ToLower(text))
}

// ExtractAmount finds the monetary amount in text. Shorthand units are
// honored first: "3k" means 3000 and "2 lakh" means 200000; otherwise the
// first bare integer token wins. Decimal fractions are not parsed on the
// bare path, so "12.50" yields 12.
func ExtractAmount(text string) (int, bool) {
	cleaned := normalizeAmountText(text)

	if m := thousandRegex.FindStringSubmatch(cleaned); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		return int(value * 1000), true
	}
	if m := lakhRegex.FindStringSubmatch(cleaned); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		return int(value * 100000), true
	}
	if m := bareIntRegex.FindStringSubmatch(cleaned); m != nil {
		value, _ := strconv.Atoi(m[1])
		return value, true
	}
	return 0, false
}

// ExtractAmounts returns every amount in text in order of appearance, with
// shorthand units applied per token.
func ExtractAmounts(text string) []int {
	cleaned := normalizeAmountText(text)

	var amounts []int
	for _, m := range anyAmount.FindAllStringSubmatch(cleaned, -1) {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch m[2] {
		case "k":
			value *= 1000
		case "l", "lakh":
			value *= 100000
		}
		amounts = append(amounts, int(value))
	}
	return amounts
}
