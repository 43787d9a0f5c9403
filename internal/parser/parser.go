package parser

import (
	"fmt"

	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

// LineParser extracts transaction records from one statement format.
// Implementations scan text line by line against a fixed layout
// pattern; lines that do not match are skipped silently, since real
// statements interleave transactions with headers, page breaks and
// summary text. An empty result is not an error at this layer.
type LineParser interface {
	// ParseLines scans raw statement text and returns the matched
	// debit transactions, in source line order. card is the already
	// detected card product name and is copied onto each record.
	ParseLines(text, card string) []models.TransactionRecord
	// Bank returns the issuer this parser handles.
	Bank() models.Bank
	// CardFallback returns the generic card name used when the
	// statement header did not yield a specific product name.
	CardFallback() string
}

// New returns the line parser for the given bank.
func New(bank models.Bank) (LineParser, error) {
	switch bank {
	case models.BankAxis:
		return &AxisParser{}, nil
	case models.BankHDFC:
		return &HDFCParser{}, nil
	default:
		return nil, fmt.Errorf("no line parser for bank %q: %w", bank, models.ErrUnsupportedFormat)
	}
}
