package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAxisParseLines(t *testing.T) {
	p := &AxisParser{}

	t.Run("parses debit line exactly", func(t *testing.T) {
		text := "09 Dec '25   FLIPKART PAYMENTS,BANGALORE   ₹ 534.00   Debit"
		records := p.ParseLines(text, "Axis Flipkart")
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
		rec := records[0]
		if want := time.Date(2025, time.December, 9, 0, 0, 0, 0, time.UTC); !rec.Date.Equal(want) {
			t.Errorf("date = %v, want %v", rec.Date, want)
		}
		if rec.Merchant != "FLIPKART PAYMENTS,BANGALORE" {
			t.Errorf("merchant = %q", rec.Merchant)
		}
		if !rec.Amount.Equal(decimal.RequireFromString("534.00")) {
			t.Errorf("amount = %s, want 534.00", rec.Amount)
		}
		if rec.Card != "Axis Flipkart" {
			t.Errorf("card = %q", rec.Card)
		}
	})

	t.Run("credit lines are never emitted", func(t *testing.T) {
		text := "09 Dec '25   FLIPKART REFUND   ₹ 534.00   Credit\n" +
			"10 Dec '25   CASHBACK REVERSAL   ₹ 12.00   Credit"
		if records := p.ParseLines(text, "Axis Flipkart"); len(records) != 0 {
			t.Fatalf("got %d records from credit-only input, want 0", len(records))
		}
	})

	t.Run("non-matching lines skipped silently", func(t *testing.T) {
		text := "Statement Period: 01 Dec '25 to 31 Dec '25\n" +
			"Date   Transaction Details   Amount (INR)   Debit/Credit\n" +
			"09 Dec '25   FLIPKART PAYMENTS,BANGALORE   ₹ 534.00   Debit\n" +
			"Page 1 of 2\n" +
			"Total Due: ₹ 534.00"
		records := p.ParseLines(text, "Axis Flipkart")
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
	})

	t.Run("comma amounts parse", func(t *testing.T) {
		text := "15 Nov '25   MAKEMYTRIP INDIA   ₹ 12,340.50   Debit"
		records := p.ParseLines(text, "Axis Flipkart")
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
		if !records[0].Amount.Equal(decimal.RequireFromString("12340.50")) {
			t.Errorf("amount = %s, want 12340.50", records[0].Amount)
		}
	})

	t.Run("source line order preserved", func(t *testing.T) {
		text := "10 Dec '25   SECOND BY DATE   ₹ 1.00   Debit\n" +
			"09 Dec '25   FIRST BY DATE   ₹ 2.00   Debit"
		records := p.ParseLines(text, "Axis Flipkart")
		if len(records) != 2 {
			t.Fatalf("got %d records, want 2", len(records))
		}
		if records[0].Merchant != "SECOND BY DATE" {
			t.Errorf("line order not preserved: first record is %q", records[0].Merchant)
		}
	})

	t.Run("empty input yields empty result not panic", func(t *testing.T) {
		if records := p.ParseLines("", "Axis Flipkart"); len(records) != 0 {
			t.Fatalf("got %d records, want 0", len(records))
		}
	})
}
