package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

// HDFCParser handles HDFC Bank credit card statements (Tata Neu,
// Swiggy and generic variants).
//
// Transaction lines have this layout:
//
//	DATE & TIME | TRANSACTION DESCRIPTION | Base NeuCoins | AMOUNT | PI
//	20/11/2025| 20:40  WESTSIDEMUMBAI  + 22  C 2,244.00  l
//
// Date format: DD/MM/YYYY. Lines containing "PAYMENT" or the "BPPY"
// marker are bill payments, never spending, and are dropped before
// pattern matching. A "+" sign before the currency marker flags a
// credit; those lines are dropped too. Some merchants carry an inline
// category the statement itself assigns; that hint outranks the
// generic keyword classifier downstream.
type HDFCParser struct{}

func (p *HDFCParser) Bank() models.Bank { return models.BankHDFC }

func (p *HDFCParser) CardFallback() string { return "HDFC Credit Card" }

// HDFC transaction line pattern:
// DATE| TIME  MERCHANT  [+ NEUCOINS]  SIGN C AMOUNT
var hdfcTxnPattern = regexp.MustCompile(
	`(\d{2}/\d{2}/\d{4})\|\s*(\d{2}:\d{2})\s+(.+?)(?:\s+\+\s*\d+)?\s*([+-]?\s*C)\s*([\d,]+(?:\.\d{2})?)`,
)

func (p *HDFCParser) ParseLines(text, card string) []models.TransactionRecord {
	var records []models.TransactionRecord

	for _, line := range strings.Split(text, "\n") {
		// Bill payment lines are dropped outright regardless of sign.
		if strings.Contains(strings.ToUpper(line), "PAYMENT") || strings.Contains(line, "BPPY") {
			continue
		}

		m := hdfcTxnPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		// A leading "+" before the currency marker means credit.
		if strings.HasPrefix(strings.TrimSpace(m[4]), "+") {
			continue
		}

		// A malformed date skips this line only, not the statement.
		date, err := time.Parse(hdfcDateLayout, m[1])
		if err != nil {
			continue
		}

		amount, err := parseAmount(m[5])
		if err != nil {
			continue
		}

		merchant := strings.TrimSpace(m[3])

		records = append(records, models.TransactionRecord{
			Date:     date,
			Merchant: merchant,
			Amount:   amount,
			Category: sniffHDFCCategory(merchant),
			Bank:     models.BankHDFC,
			Card:     card,
		})
	}

	return records
}

// sniffHDFCCategory recovers the coarse category HDFC embeds in some
// merchant names, mapped onto the canonical label set. Returns "" when
// no hint is present so the generic classifier fills it in later.
func sniffHDFCCategory(merchant string) string {
	lower := strings.ToLower(merchant)

	apparel := []string{"westside", "zara", "h&m", "max fashion"}
	dining := []string{"zomato", "swiggy", "bistro", "restaurant"}
	grocery := []string{"blink", "bigbasket", "dmart", "grofers"}
	transport := []string{"uber", "ola", "rapido"}

	switch {
	case containsAny(lower, apparel):
		return "Shopping"
	case containsAny(lower, dining):
		return "Dining"
	case containsAny(lower, grocery):
		return "Groceries"
	case containsAny(lower, transport):
		return "Transport"
	}
	return ""
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
