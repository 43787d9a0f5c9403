// Package ledger combines transactions from multiple parsed statements
// into one date-sorted ledger. One unreadable or unrecognized document
// never aborts the batch: its failure is downgraded to a warning and
// the remaining statements are still processed.
package ledger

import (
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/insightdelivered/cc-expense-ledger/internal/models"
	"github.com/insightdelivered/cc-expense-ledger/internal/parser"
)

// Source is one statement to parse: a label for error reporting
// (typically the filename stem) and its extracted text.
type Source struct {
	Label string
	Text  string
}

// Warning records a per-document failure that was excluded from the
// combined ledger.
type Warning struct {
	Label string
	Err   error
}

// Combiner parses statement batches.
type Combiner struct {
	statements *parser.StatementParser
	log        zerolog.Logger
}

// NewCombiner returns a Combiner using the given statement parser.
func NewCombiner(sp *parser.StatementParser, log zerolog.Logger) *Combiner {
	if sp == nil {
		sp = parser.NewStatementParser(nil)
	}
	return &Combiner{statements: sp, log: log}
}

// ParseBatch parses every source and returns the combined ledger plus
// one warning per failed document. Partial success is the normal
// return shape: records may be non-empty alongside warnings. A fully
// failed batch returns no records and one warning per source, which
// callers can tell apart from an empty input batch.
//
// The combined sequence is sorted ascending by date; within equal
// dates the statement-internal line order is preserved.
func (c *Combiner) ParseBatch(sources []Source) ([]models.TransactionRecord, []Warning) {
	batchID := uuid.NewString()
	log := c.log.With().Str("batch_id", batchID).Logger()

	var combined []models.TransactionRecord
	var warnings []Warning

	for _, src := range sources {
		records, err := c.statements.Parse(src.Text, src.Label)
		if err != nil {
			log.Warn().Str("label", src.Label).Err(err).Msg("statement excluded from batch")
			warnings = append(warnings, Warning{Label: src.Label, Err: err})
			continue
		}
		log.Info().Str("label", src.Label).Int("transactions", len(records)).Msg("statement parsed")
		combined = append(combined, records...)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Date.Before(combined[j].Date)
	})

	log.Info().
		Int("statements", len(sources)).
		Int("failed", len(warnings)).
		Int("transactions", len(combined)).
		Msg("batch combined")

	return combined, warnings
}
