package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a string amount to a decimal value.
// Malformed input yields zero rather than an error so that a single bad
// record can never poison an accumulated total.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	// Tolerate thousands separators and currency prefixes commonly found
	// in imported data.
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders a decimal amount with two decimal places for
// display and export. Internal arithmetic is never rounded.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
