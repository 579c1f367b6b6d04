package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"listify/internal/brand"
	"listify/internal/config"
	"listify/internal/export"
	"listify/internal/logger"
	"listify/internal/models"
	"listify/internal/validator"
)

func main() {
	output := flag.String("o", "", "Path to save validation JSON (default: derived from input)")
	products := flag.String("products", "", "Optional catalog JSON to map input_id -> brand")
	csvPath := flag.String("csv", "", "Optional path for a CSV summary")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: validate [flags] <results.json>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger := logger.New(cfg.LogLevel)

	var brands validator.BrandLookup
	if *products != "" {
		m, err := brand.LoadCatalogFile(*products)
		if err != nil {
			logger.Fatal("Failed to load brand catalog: %v", err)
		}
		logger.Info("Loaded %d brand mappings from %s", len(m), *products)
		brands = m
	}

	records, err := loadRecords(inputPath)
	if err != nil {
		logger.Fatal("Failed to read input: %v", err)
	}

	v := validator.New(logger, brands)
	reports := make([]models.ValidationReport, 0, len(records))
	passed := 0
	for i, raw := range records {
		reports = append(reports, validateRow(v, raw, i))
		if reports[i].OverallPass {
			passed++
		}
	}

	outPath := *output
	if outPath == "" {
		outPath = derivedOutputPath(inputPath)
	}

	exporter := export.New(logger)
	if err := exporter.WriteJSON(outPath, reports); err != nil {
		logger.Fatal("Failed to write output: %v", err)
	}
	if *csvPath != "" {
		if err := exporter.WriteCSV(*csvPath, reports); err != nil {
			logger.Fatal("Failed to write CSV summary: %v", err)
		}
	}

	logger.Info("Validated %d items: %d passed, %d failed", len(reports), passed, len(reports)-passed)
}

// loadRecords reads the results file as raw rows so one malformed row
// cannot abort the batch.
func loadRecords(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("input must be a JSON array: %w", err)
	}
	return rows, nil
}

// validateRow decodes and validates one row. A row that does not decode
// is validated as an empty record, which yields a deterministic failing
// report instead of dropping the row.
func validateRow(v *validator.Validator, raw json.RawMessage, index int) models.ValidationReport {
	var rec models.GenerationRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		rec = models.GenerationRecord{InputID: probeInputID(raw, index)}
	}
	if rec.InputID == "" {
		rec.InputID = models.FlexIDFromInt(index)
	}
	return v.ValidateRecord(rec)
}

// probeInputID makes a best effort to recover the identifier from a row
// whose overall shape did not decode.
func probeInputID(raw json.RawMessage, index int) models.FlexID {
	var probe struct {
		InputID models.FlexID `json:"input_id"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil && probe.InputID != "" {
		return probe.InputID
	}
	return models.FlexIDFromInt(index)
}

// derivedOutputPath names the output after the input stem plus a
// timestamp, alongside the input file.
func derivedOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".json"
	}
	return filepath.Join(dir, fmt.Sprintf("%s_validated_%d%s", stem, time.Now().UnixMilli(), ext))
}
