package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

// dateLayout is the column format for transaction dates.
const dateLayout = "2006-01-02"

// CSVWriter writes a combined transaction ledger to CSV.
type CSVWriter struct{}

// WriteToFile writes the ledger to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, records []models.TransactionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, records)
}

// Write writes the ledger in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, records []models.TransactionRecord) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"date", "merchant", "amount", "category", "bank", "card", "period"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Date.Format(dateLayout),
			rec.Merchant,
			rec.Amount.StringFixed(2),
			rec.Category,
			string(rec.Bank),
			rec.Card,
			rec.PeriodKey,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}
