package models

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat means no supported bank signature was found in
// the statement text. The document is dropped from a batch.
var ErrUnsupportedFormat = errors.New("unsupported statement format")

// ErrNoTransactions means the bank was recognized but no line matched
// its transaction pattern. Soft failure: a batch skips the document
// and continues.
var ErrNoTransactions = errors.New("no transactions found")

// ExtractionError reports an unreadable or encrypted source document.
// It originates in the text extraction boundary, upstream of parsing.
type ExtractionError struct {
	Source string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("extraction failed for %s", e.Source)
	}
	return fmt.Sprintf("extraction failed for %s: %v", e.Source, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
