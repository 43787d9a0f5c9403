package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/cc-expense-ledger/internal/logger"
	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

const axisText = `Axis Bank Limited
Flipkart Axis Flipkart Credit Card Statement
09 Dec '25   FLIPKART PAYMENTS,BANGALORE   ₹ 534.00   Debit
10 Dec '25   SWIGGY INSTAMART ORDER   ₹ 245.50   Debit`

const hdfcText = `Tata Neu Infinity HDFC Bank Credit Card Statement
20/11/2025| 20:40 WESTSIDEMUMBAI + 22 C 2,244.00 l
21/11/2025| 09:15 UBER INDIA SYSTEMS C 350.00`

func newTestCombiner(t *testing.T) *Combiner {
	t.Helper()
	return NewCombiner(nil, logger.NewWithWriter(testWriter{t}))
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestParseBatch(t *testing.T) {
	c := newTestCombiner(t)

	t.Run("one bad statement does not abort the batch", func(t *testing.T) {
		records, warnings := c.ParseBatch([]Source{
			{Label: "axis_dec", Text: axisText},
			{Label: "mystery", Text: "Unknown Bank statement"},
			{Label: "neu_nov", Text: hdfcText},
		})

		require.Len(t, records, 4)
		require.Len(t, warnings, 1)
		assert.Equal(t, "mystery", warnings[0].Label)
		assert.ErrorIs(t, warnings[0].Err, models.ErrUnsupportedFormat)
	})

	t.Run("combined output is sorted ascending by date", func(t *testing.T) {
		// HDFC statement (November) submitted after Axis (December):
		// batch order must not leak into the combined ledger.
		records, warnings := c.ParseBatch([]Source{
			{Label: "axis_dec", Text: axisText},
			{Label: "neu_nov", Text: hdfcText},
		})
		require.Empty(t, warnings)
		require.Len(t, records, 4)
		for i := 1; i < len(records); i++ {
			assert.False(t, records[i].Date.Before(records[i-1].Date),
				"records out of order at %d: %v before %v", i, records[i].Date, records[i-1].Date)
		}
		assert.Equal(t, "WESTSIDEMUMBAI", records[0].Merchant)
	})

	t.Run("statement-internal order preserved for equal dates", func(t *testing.T) {
		text := `Axis Bank Limited
09 Dec '25   FIRST IN SOURCE   ₹ 1.00   Debit
09 Dec '25   SECOND IN SOURCE   ₹ 2.00   Debit`
		records, warnings := c.ParseBatch([]Source{{Label: "same_day", Text: text}})
		require.Empty(t, warnings)
		require.Len(t, records, 2)
		assert.Equal(t, "FIRST IN SOURCE", records[0].Merchant)
		assert.Equal(t, "SECOND IN SOURCE", records[1].Merchant)
	})

	t.Run("all statements failing yields empty records with warnings", func(t *testing.T) {
		records, warnings := c.ParseBatch([]Source{
			{Label: "a", Text: "nothing recognizable"},
			{Label: "b", Text: "Axis Bank but no transaction rows"},
		})
		assert.Empty(t, records)
		require.Len(t, warnings, 2)
		assert.ErrorIs(t, warnings[0].Err, models.ErrUnsupportedFormat)
		assert.ErrorIs(t, warnings[1].Err, models.ErrNoTransactions)
	})

	t.Run("empty input yields empty records and no warnings", func(t *testing.T) {
		records, warnings := c.ParseBatch(nil)
		assert.Empty(t, records)
		assert.Empty(t, warnings)
	})

	t.Run("duplicate statements are not deduplicated", func(t *testing.T) {
		records, warnings := c.ParseBatch([]Source{
			{Label: "dec_a", Text: axisText},
			{Label: "dec_b", Text: axisText},
		})
		require.Empty(t, warnings)
		assert.Len(t, records, 4)
	})
}
