package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		amount   float64
		currency string
		ok       bool
	}{
		{"$19.99", 19.99, "USD", true},
		{"$1,299.99", 1299.99, "USD", true},
		{"1.299,99 €", 1299.99, "EUR", true},
		{"29,99 €", 29.99, "EUR", true},
		{"£12", 12, "GBP", true},
		{"$1,299", 1299, "USD", true},
		{"¥1,234,567", 1234567, "JPY", true},
		{"EUR 7.5", 7.5, "EUR", true},
		{"42", 42, "", true},
		{"Currently unavailable", 0, "", false},
		{"$0.00", 0, "", false},
		{"", 0, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			amount, currency, ok := ParseAmount(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.amount, amount, 1e-9)
			assert.Equal(t, tc.currency, currency)
		})
	}
}
