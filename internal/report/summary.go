// Package report aggregates a combined ledger into an expense summary:
// overall statistics plus per-card, per-category and per-month totals.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

// Aggregate is one grouped total.
type Aggregate struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// Summary holds the aggregated view of a combined ledger.
type Summary struct {
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Average    decimal.Decimal `json:"average"`
	Median     decimal.Decimal `json:"median"`
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	ByCard     []Aggregate     `json:"byCard"`
	ByCategory []Aggregate     `json:"byCategory"`
	ByMonth    []Aggregate     `json:"byMonth"`
}

// Build computes the summary for a combined ledger. Card and category
// groups are ordered by descending total; months chronologically.
// Ordering is deterministic so repeated runs render identically.
func Build(records []models.TransactionRecord) *Summary {
	s := &Summary{Count: len(records)}
	if len(records) == 0 {
		return s
	}

	amounts := make([]decimal.Decimal, 0, len(records))
	s.From = records[0].Date
	s.To = records[0].Date
	for _, rec := range records {
		s.Total = s.Total.Add(rec.Amount)
		amounts = append(amounts, rec.Amount)
		if rec.Date.Before(s.From) {
			s.From = rec.Date
		}
		if rec.Date.After(s.To) {
			s.To = rec.Date
		}
	}
	s.Average = s.Total.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
	s.Median = median(amounts)

	s.ByCard = groupBy(records, func(r models.TransactionRecord) string { return r.Card })
	s.ByCategory = groupBy(records, func(r models.TransactionRecord) string { return r.Category })
	s.ByMonth = groupByMonth(records)
	return s
}

// Render formats the summary as a plain text report.
func (s *Summary) Render() string {
	var b strings.Builder

	fmt.Fprintln(&b, "EXPENSE ANALYSIS SUMMARY")
	fmt.Fprintln(&b, strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Total Transactions: %d\n", s.Count)
	if s.Count == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "Total Spent: Rs. %s\n", s.Total.StringFixed(2))
	fmt.Fprintf(&b, "Average Transaction: Rs. %s\n", s.Average.StringFixed(2))
	fmt.Fprintf(&b, "Median Transaction: Rs. %s\n", s.Median.StringFixed(2))
	fmt.Fprintf(&b, "Date Range: %s to %s\n", s.From.Format("2006-01-02"), s.To.Format("2006-01-02"))

	fmt.Fprintln(&b, "\nSpending by Card:")
	for _, agg := range s.ByCard {
		fmt.Fprintf(&b, "  %s: Rs. %s | %d txns\n", agg.Key, agg.Total.StringFixed(2), agg.Count)
	}

	fmt.Fprintln(&b, "\nSpending by Category:")
	for _, agg := range s.ByCategory {
		avg := agg.Total.Div(decimal.NewFromInt(int64(agg.Count))).Round(2)
		fmt.Fprintf(&b, "  %-18s: Rs. %10s | %3d txns | Avg Rs. %s\n",
			agg.Key, agg.Total.StringFixed(2), agg.Count, avg.StringFixed(2))
	}

	fmt.Fprintln(&b, "\nMonthly Spending:")
	for _, agg := range s.ByMonth {
		fmt.Fprintf(&b, "  %s: Rs. %10s | %3d txns\n", agg.Key, agg.Total.StringFixed(2), agg.Count)
	}

	return b.String()
}

func median(amounts []decimal.Decimal) decimal.Decimal {
	sorted := make([]decimal.Decimal, len(amounts))
	copy(sorted, amounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2)).Round(2)
}

func groupBy(records []models.TransactionRecord, key func(models.TransactionRecord) string) []Aggregate {
	totals := make(map[string]*Aggregate)
	for _, rec := range records {
		k := key(rec)
		agg, ok := totals[k]
		if !ok {
			agg = &Aggregate{Key: k}
			totals[k] = agg
		}
		agg.Total = agg.Total.Add(rec.Amount)
		agg.Count++
	}

	out := make([]Aggregate, 0, len(totals))
	for _, agg := range totals {
		out = append(out, *agg)
	}
	// Descending by total; key breaks ties so output is stable.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func groupByMonth(records []models.TransactionRecord) []Aggregate {
	totals := make(map[string]*Aggregate)
	firstOfMonth := make(map[string]time.Time)
	for _, rec := range records {
		k := rec.PeriodKey
		agg, ok := totals[k]
		if !ok {
			agg = &Aggregate{Key: k}
			totals[k] = agg
			firstOfMonth[k] = time.Date(rec.Date.Year(), rec.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
		agg.Total = agg.Total.Add(rec.Amount)
		agg.Count++
	}

	out := make([]Aggregate, 0, len(totals))
	for _, agg := range totals {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return firstOfMonth[out[i].Key].Before(firstOfMonth[out[j].Key])
	})
	return out
}
