package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var amountPattern = regexp.MustCompile(`\d[\d.,\s\x{00a0}]*`)

var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"US$", "USD"},
	{"CA$", "CAD"},
	{"A$", "AUD"},
	{"R$", "BRL"},
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
	{"₹", "INR"},
	{"EUR", "EUR"},
	{"USD", "USD"},
	{"GBP", "GBP"},
}

// ParseAmount pulls a numeric price and currency code out of text like
// "$1,299.99", "1.299,99 €" or "£12". A separator followed by exactly two
// trailing digits is read as the decimal point.
func ParseAmount(text string) (float64, string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, "", false
	}

	currency := ""
	for _, c := range currencySymbols {
		if strings.Contains(text, c.symbol) {
			currency = c.code
			break
		}
	}

	raw := amountPattern.FindString(text)
	if raw == "" {
		return 0, "", false
	}
	raw = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' {
			return -1
		}
		return r
	}, raw)
	raw = strings.TrimRight(raw, ".,")

	amount, err := strconv.ParseFloat(normalizeNumber(raw), 64)
	if err != nil || amount <= 0 {
		return 0, "", false
	}
	return amount, currency, true
}

// normalizeNumber rewrites a number using either "," or "." as the decimal
// separator into Go float syntax
func normalizeNumber(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	decimal := -1
	switch {
	case lastDot >= 0 && lastComma >= 0:
		decimal = max(lastDot, lastComma)
	case lastDot >= 0 || lastComma >= 0:
		idx := max(lastDot, lastComma)
		if len(s)-idx-1 == 2 || strings.Count(s, s[idx:idx+1]) == 1 && len(s)-idx-1 != 3 {
			decimal = idx
		}
	}

	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '.' || r == ',':
			if i == decimal {
				b.WriteByte('.')
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
