// Package extractor turns statement PDFs into raw text. It is the
// upstream boundary of the parsing core: a document either yields text
// or fails with an ExtractionError, and the core never sees PDF bytes.
package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

// ExtractText reads a PDF file and returns its text content, pages
// joined by newlines. A corrupt, encrypted or image-only document
// returns a *models.ExtractionError.
func ExtractText(filePath string) (string, error) {
	pages, err := extractPages(filePath)
	if err != nil {
		return "", &models.ExtractionError{Source: filePath, Err: err}
	}
	if !isReadableText(pages) {
		return "", &models.ExtractionError{
			Source: filePath,
			Err:    fmt.Errorf("no readable text; the document may be scanned or use undecodable font encodings"),
		}
	}
	return strings.Join(pages, "\n"), nil
}

// extractPages pulls row-ordered text from each page. The pdf library
// panics on some malformed files, so recover that into an error.
func extractPages(filePath string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages, nil
}

// isReadableText checks that extraction produced enough actual text:
// >50 chars, >60% readable characters, and at least one word a credit
// card statement would contain. Identity-encoded fonts otherwise slip
// through as plausible-looking garbage.
func isReadableText(pages []string) bool {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(`.,-/:;()'"%&@#!?+=*`, r) ||
				r == '₹' || r == '£' || r == '$' || r == '€' {
				readable++
			}
		}
	}
	if total <= 50 || float64(readable)/float64(total) <= 0.6 {
		return false
	}

	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range []string{
		"bank", "card", "statement", "date", "amount", "credit",
		"debit", "transaction", "payment", "total", "due",
	} {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}
