package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

// Bank signatures checked in order; first match wins.
var bankSignatures = []struct {
	bank      models.Bank
	signature string
}{
	{models.BankAxis, "axis bank"},
	{models.BankHDFC, "hdfc bank"},
}

// Detect identifies the issuing bank from statement text via
// case-insensitive substring search. Returns ErrUnsupportedFormat when
// no known signature is present.
func Detect(text string) (models.Bank, error) {
	lower := strings.ToLower(text)
	for _, s := range bankSignatures {
		if strings.Contains(lower, s.signature) {
			return s.bank, nil
		}
	}
	return "", models.ErrUnsupportedFormat
}

// Card name header patterns. HDFC statements title the card product
// immediately before the fixed header phrase; Axis statements name the
// variant between "AXIS" and "CREDIT CARD".
var (
	hdfcHeaderPattern = regexp.MustCompile(`(?s)(.+?)\s+HDFC\s+BANK\s+CREDIT\s+CARD\s+STATEMENT`)
	axisHeaderPattern = regexp.MustCompile(`AXIS\s+(.+?)\s+CREDIT CARD`)
)

// DetectCard derives the human-readable card product name from
// statement text. Card naming is cosmetic: a header that fails to
// match yields UnknownCard, and the orchestrator substitutes the
// per-bank generic fallback rather than failing the parse.
func DetectCard(text string) string {
	upper := strings.ToUpper(text)

	if m := hdfcHeaderPattern.FindStringSubmatch(upper); m != nil {
		// The product name may wrap across extracted lines.
		prefix := strings.TrimSpace(strings.ReplaceAll(m[1], "\n", " "))
		switch {
		case strings.Contains(prefix, "SWIGGY"):
			return "HDFC Swiggy"
		case strings.Contains(prefix, "NEU"): // Tata Neu, Neu Plus, ...
			return "HDFC Tata Neu"
		default:
			return "HDFC Credit Card"
		}
	}

	if m := axisHeaderPattern.FindStringSubmatch(upper); m != nil {
		prefix := strings.TrimSpace(m[1])
		if strings.Contains(prefix, "FLIPKART") {
			return "Axis Flipkart"
		}
		return "Axis Bank Credit Card"
	}

	return models.UnknownCard
}
