// Package api exposes the statement parsing pipeline over HTTP.
package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/insightdelivered/cc-expense-ledger/internal/extractor"
	"github.com/insightdelivered/cc-expense-ledger/internal/ledger"
	"github.com/insightdelivered/cc-expense-ledger/internal/models"
	"github.com/insightdelivered/cc-expense-ledger/internal/report"
	"github.com/insightdelivered/cc-expense-ledger/internal/writer"
)

const version = "1.0.0"

// ParseResponse is the JSON response from the /api/parse endpoint.
// Partial success is the normal shape: transactions from readable
// statements plus one warning per failed document.
type ParseResponse struct {
	Success      bool                       `json:"success"`
	Error        string                     `json:"error,omitempty"`
	Transactions []models.TransactionRecord `json:"transactions"`
	Warnings     []ParseWarning             `json:"warnings"`
	Count        int                        `json:"count"`
	CSV          string                     `json:"csv,omitempty"`
	Summary      *report.Summary            `json:"summary,omitempty"`
	Version      string                     `json:"version,omitempty"`
}

// ParseWarning reports one excluded document.
type ParseWarning struct {
	Label string `json:"label"`
	Error string `json:"error"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Combiner *ledger.Combiner
	Log      zerolog.Logger
}

// NewApp builds the fiber application with all routes registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "cc-expense-ledger",
		BodyLimit: 32 << 20,
	})
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/parse", h.handleParse)
	return app
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version,
	})
}

// handleParse accepts one or more statement PDFs as multipart files
// (field "files"), or pre-extracted statement text (fields "text" and
// "label"), and returns the combined ledger. Per-document failures are
// reported in the warnings list; only an empty request is an error.
func (h *Handler) handleParse(c *fiber.Ctx) error {
	var sources []ledger.Source
	var warnings []ParseWarning

	if text := c.FormValue("text"); strings.TrimSpace(text) != "" {
		label := c.FormValue("label")
		if label == "" {
			label = "statement"
		}
		sources = append(sources, ledger.Source{Label: label, Text: text})
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
				warnings = append(warnings, ParseWarning{
					Label: fh.Filename,
					Error: "only PDF files are supported",
				})
				continue
			}

			label := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
			text, err := h.extractUpload(c, fh)
			if err != nil {
				h.Log.Warn().Str("label", label).Err(err).Msg("upload excluded")
				warnings = append(warnings, ParseWarning{Label: label, Error: err.Error()})
				continue
			}
			sources = append(sources, ledger.Source{Label: label, Text: text})
		}
	}

	if len(sources) == 0 && len(warnings) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ParseResponse{
			Success:      false,
			Error:        "no statements provided; upload PDFs in form field 'files' or text in 'text'",
			Transactions: []models.TransactionRecord{},
			Warnings:     []ParseWarning{},
		})
	}

	records, batchWarnings := h.Combiner.ParseBatch(sources)
	for _, w := range batchWarnings {
		warnings = append(warnings, ParseWarning{Label: w.Label, Error: w.Err.Error()})
	}

	var csvBuf bytes.Buffer
	csvWriter := &writer.CSVWriter{}
	if err := csvWriter.Write(&csvBuf, records); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ParseResponse{
			Success: false,
			Error:   fmt.Sprintf("CSV generation failed: %v", err),
		})
	}

	// nil marshals to JSON null, not [].
	if records == nil {
		records = []models.TransactionRecord{}
	}
	if warnings == nil {
		warnings = []ParseWarning{}
	}

	return c.JSON(ParseResponse{
		Success:      true,
		Transactions: records,
		Warnings:     warnings,
		Count:        len(records),
		CSV:          csvBuf.String(),
		Summary:      report.Build(records),
		Version:      version,
	})
}

// extractUpload saves one uploaded PDF to a temp file and extracts its
// text. Extraction failures come back as *models.ExtractionError.
func (h *Handler) extractUpload(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fh, tmpPath); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	return extractor.ExtractText(tmpPath)
}
