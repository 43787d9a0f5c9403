package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/cc-expense-ledger/internal/api"
	"github.com/insightdelivered/cc-expense-ledger/internal/categorize"
	"github.com/insightdelivered/cc-expense-ledger/internal/extractor"
	"github.com/insightdelivered/cc-expense-ledger/internal/ledger"
	"github.com/insightdelivered/cc-expense-ledger/internal/logger"
	"github.com/insightdelivered/cc-expense-ledger/internal/parser"
	"github.com/insightdelivered/cc-expense-ledger/internal/report"
	"github.com/insightdelivered/cc-expense-ledger/internal/writer"
)

const version = "1.0.0"

func main() {
	outputFlag := flag.String("output", "all_transactions_combined.csv", "Combined CSV output path")
	categoriesFlag := flag.String("categories", "", "Custom category rules YAML file (optional)")
	serveFlag := flag.String("serve", "", "Run the HTTP API on this address (e.g. :8080) instead of converting files")
	summaryFlag := flag.Bool("summary", true, "Print the expense summary after conversion")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Credit Card Statement Expense Ledger
by Insight Delivered

Parses credit card statement PDFs from Axis Bank and HDFC Bank into a
single combined, date-sorted spending ledger with categorized
transactions.

Usage:
  cc-expense-ledger [flags] <statement.pdf> [statement2.pdf ...]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Combine several statements into one ledger CSV
  cc-expense-ledger Flip_Dec.pdf Neu_Dec.pdf Swig_Dec.pdf

  # Custom output path and category rules
  cc-expense-ledger --output=ledger.csv --categories=rules.yaml dec.pdf

  # Run the HTTP API
  cc-expense-ledger --serve=:8080

Supported Banks:
  Axis Bank  (DD MMM 'YY format; Flipkart and generic cards)
  HDFC Bank  (DD/MM/YYYY format; Tata Neu, Swiggy and generic cards)
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("cc-expense-ledger v%s\n", version)
		os.Exit(0)
	}

	log := logger.New()

	categorizer := categorize.New()
	if *categoriesFlag != "" {
		rules, err := categorize.LoadRulesFile(*categoriesFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load category rules")
		}
		categorizer = categorize.NewWithRules(rules)
		log.Info().Str("path", *categoriesFlag).Int("rules", len(rules)).Msg("loaded custom category rules")
	}

	combiner := ledger.NewCombiner(parser.NewStatementParser(categorizer), log)

	if *serveFlag != "" {
		app := api.NewApp(&api.Handler{Combiner: combiner, Log: log})
		log.Info().Str("addr", *serveFlag).Msg("starting HTTP API")
		if err := app.Listen(*serveFlag); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	// Extract text from each input. An unreadable document is dropped
	// with a warning, same as a parse failure further down.
	var sources []ledger.Source
	failed := 0
	for _, inputPath := range flag.Args() {
		label := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

		text, err := extractor.ExtractText(inputPath)
		if err != nil {
			log.Warn().Str("label", label).Err(err).Msg("document excluded")
			failed++
			continue
		}
		sources = append(sources, ledger.Source{Label: label, Text: text})
	}

	records, warnings := combiner.ParseBatch(sources)
	failed += len(warnings)

	if len(records) == 0 {
		log.Error().Int("failed", failed).Msg("no transactions extracted from any file")
		os.Exit(1)
	}

	w := &writer.CSVWriter{}
	if err := w.WriteToFile(*outputFlag, records); err != nil {
		log.Fatal().Err(err).Msg("CSV write failed")
	}
	log.Info().Str("output", *outputFlag).Int("transactions", len(records)).Msg("ledger written")

	if *summaryFlag {
		fmt.Println()
		fmt.Print(report.Build(records).Render())
	}
}
