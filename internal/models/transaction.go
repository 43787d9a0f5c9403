package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord represents a single spending event parsed from a
// credit card statement. Amounts are always positive: credit/refund
// lines are dropped during parsing, never stored as negatives.
type TransactionRecord struct {
	Date      time.Time       `json:"date"`
	Merchant  string          `json:"merchant"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"` // empty until classified, never empty after the pipeline
	Bank      Bank            `json:"bank"`
	Card      string          `json:"card"`
	PeriodKey string          `json:"periodKey"` // year+month grouping key, e.g. "Dec-25"
}

// PeriodLayout is the time layout used for PeriodKey values.
const PeriodLayout = "Jan-06"

// CategoryOther is the sentinel assigned when no categorization rule
// matches a merchant.
const CategoryOther = "Other"

// Bank identifies a supported card issuer. Adding a bank means adding
// a new line parser, not extending this set ad hoc.
type Bank string

const (
	BankAxis Bank = "Axis"
	BankHDFC Bank = "HDFC"
)

// UnknownCard is the card name used when no issuer header matched.
const UnknownCard = "Unknown Card"
