package parser

import (
	"fmt"

	"github.com/insightdelivered/cc-expense-ledger/internal/categorize"
	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

// StatementParser runs the full pipeline for one statement: bank
// identification, card naming, format-specific line extraction,
// categorization and period key derivation.
type StatementParser struct {
	categorizer *categorize.Categorizer
}

// NewStatementParser returns a StatementParser using the given
// categorizer for records the bank did not categorize itself.
func NewStatementParser(c *categorize.Categorizer) *StatementParser {
	if c == nil {
		c = categorize.New()
	}
	return &StatementParser{categorizer: c}
}

// Parse extracts the fully populated transaction records from one
// statement's raw text. label identifies the source document in
// errors (typically the filename stem).
//
// Records are returned in source line order; chronological sorting
// happens only when statements are combined at batch level.
func (sp *StatementParser) Parse(text, label string) ([]models.TransactionRecord, error) {
	bank, err := Detect(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	lp, err := New(bank)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	// Card naming is cosmetic: a header miss falls back to the
	// per-bank generic name instead of failing the statement.
	card := DetectCard(text)
	if card == models.UnknownCard {
		card = lp.CardFallback()
	}

	records := lp.ParseLines(text, card)
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", label, models.ErrNoTransactions)
	}

	for i := range records {
		records[i].Category = sp.categorizer.Categorize(records[i].Merchant, records[i].Category)
		records[i].PeriodKey = records[i].Date.Format(models.PeriodLayout)
	}

	return records, nil
}
