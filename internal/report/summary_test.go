package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

func rec(date string, merchant, amount, category, card string) models.TransactionRecord {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.TransactionRecord{
		Date:      d,
		Merchant:  merchant,
		Amount:    decimal.RequireFromString(amount),
		Category:  category,
		Bank:      models.BankAxis,
		Card:      card,
		PeriodKey: d.Format(models.PeriodLayout),
	}
}

func TestBuild(t *testing.T) {
	records := []models.TransactionRecord{
		rec("2025-11-20", "WESTSIDE", "2244.00", "Shopping", "HDFC Tata Neu"),
		rec("2025-12-09", "FLIPKART", "534.00", "Shopping", "Axis Flipkart"),
		rec("2025-12-10", "SWIGGY", "245.50", "Dining", "Axis Flipkart"),
		rec("2025-12-11", "UBER", "120.50", "Transport", "Axis Flipkart"),
	}

	s := Build(records)

	assert.Equal(t, 4, s.Count)
	assert.True(t, s.Total.Equal(decimal.RequireFromString("3144.00")), "total = %s", s.Total)
	assert.True(t, s.Average.Equal(decimal.RequireFromString("786.00")), "average = %s", s.Average)
	// Even count: median is the mean of the two middle amounts.
	assert.True(t, s.Median.Equal(decimal.RequireFromString("389.75")), "median = %s", s.Median)
	assert.Equal(t, "2025-11-20", s.From.Format("2006-01-02"))
	assert.Equal(t, "2025-12-11", s.To.Format("2006-01-02"))

	require.Len(t, s.ByCard, 2)
	assert.Equal(t, "HDFC Tata Neu", s.ByCard[0].Key, "cards ordered by descending total")
	assert.Equal(t, 3, s.ByCard[1].Count)

	require.Len(t, s.ByCategory, 3)
	assert.Equal(t, "Shopping", s.ByCategory[0].Key)
	assert.True(t, s.ByCategory[0].Total.Equal(decimal.RequireFromString("2778.00")))

	require.Len(t, s.ByMonth, 2)
	assert.Equal(t, "Nov-25", s.ByMonth[0].Key, "months ordered chronologically")
	assert.Equal(t, "Dec-25", s.ByMonth[1].Key)
	assert.Equal(t, 3, s.ByMonth[1].Count)
}

func TestBuildEmpty(t *testing.T) {
	s := Build(nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.Total.IsZero())
	assert.Empty(t, s.ByCard)
}

func TestRender(t *testing.T) {
	records := []models.TransactionRecord{
		rec("2025-12-09", "FLIPKART", "534.00", "Shopping", "Axis Flipkart"),
		rec("2025-12-10", "SWIGGY", "245.50", "Dining", "Axis Flipkart"),
	}

	out := Build(records).Render()

	assert.Contains(t, out, "Total Transactions: 2")
	assert.Contains(t, out, "Total Spent: Rs. 779.50")
	assert.Contains(t, out, "Axis Flipkart: Rs. 779.50 | 2 txns")
	assert.Contains(t, out, "Shopping")
	assert.Contains(t, out, "Dec-25")
	assert.Contains(t, out, "Date Range: 2025-12-09 to 2025-12-10")
}

func TestRenderDeterministic(t *testing.T) {
	records := []models.TransactionRecord{
		rec("2025-12-09", "A", "100.00", "Shopping", "Card A"),
		rec("2025-12-09", "B", "100.00", "Dining", "Card B"),
		rec("2025-12-09", "C", "100.00", "Transport", "Card C"),
	}
	first := Build(records).Render()
	for i := 0; i < 10; i++ {
		if got := Build(records).Render(); got != first {
			t.Fatal("render output unstable across runs")
		}
	}
	// Equal totals fall back to key order.
	aIdx := strings.Index(first, "Card A")
	cIdx := strings.Index(first, "Card C")
	if aIdx == -1 || cIdx == -1 || aIdx > cIdx {
		t.Errorf("tied groups not ordered by key:\n%s", first)
	}
}
