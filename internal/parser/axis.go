package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

// AxisParser handles Axis Bank credit card statements (Flipkart and
// generic variants).
//
// Transaction lines have this layout:
//
//	Date | Transaction Details | Amount (INR) | Debit/Credit
//	09 Dec '25   FLIPKART PAYMENTS,BANGALORE   ₹ 534.00   Debit
//
// Date format: DD MMM 'YY. Only Debit lines are spending; Credit lines
// (refunds, reversals) are dropped.
type AxisParser struct{}

func (p *AxisParser) Bank() models.Bank { return models.BankAxis }

func (p *AxisParser) CardFallback() string { return "Axis Bank Credit Card" }

// Axis transaction line pattern:
// DATE  MERCHANT  ₹ AMOUNT  Debit|Credit
var axisTxnPattern = regexp.MustCompile(
	`(\d{1,2}\s+[A-Za-z]{3}\s+'\d{2})\s+(.+?)\s+₹\s*([\d,]+\.?\d*)\s+(Debit|Credit)`,
)

func (p *AxisParser) ParseLines(text, card string) []models.TransactionRecord {
	var records []models.TransactionRecord

	for _, line := range strings.Split(text, "\n") {
		m := axisTxnPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		// Only debits represent spending.
		if m[4] != "Debit" {
			continue
		}

		date, err := time.Parse(axisDateLayout, normalizeSpaces(m[1]))
		if err != nil {
			continue
		}

		amount, err := parseAmount(m[3])
		if err != nil {
			continue
		}

		records = append(records, models.TransactionRecord{
			Date:     date,
			Merchant: strings.TrimSpace(m[2]),
			Amount:   amount,
			Bank:     models.BankAxis,
			Card:     card,
		})
	}

	return records
}
