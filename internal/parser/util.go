package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Date layouts for the supported statement formats.
const (
	// axisDateLayout parses dates like "09 Dec '25".
	axisDateLayout = "2 Jan '06"
	// hdfcDateLayout parses dates like "20/11/2025".
	hdfcDateLayout = "02/01/2006"
)

// parseAmount converts a statement amount string like "2,244.00" or
// "₹ 534.00" to a decimal.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00A0", "") // non-breaking space
	return decimal.NewFromString(s)
}

// normalizeSpaces collapses runs of whitespace to single spaces so
// layouts with fixed token counts parse regardless of column padding.
func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
