// Package export writes validation reports to interchange files for
// downstream review tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"listify/internal/logger"
	"listify/internal/models"
)

type Exporter struct {
	logger *logger.Logger
}

func New(log *logger.Logger) *Exporter {
	return &Exporter{logger: log}
}

// WriteJSON writes the full report array, indented, with HTML left
// unescaped so descriptions stay readable.
func (e *Exporter) WriteJSON(path string, reports []models.ValidationReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}

	e.logger.Info("Wrote %s (%d rows)", path, len(reports))
	return nil
}

var csvHeader = []string{
	"input_id", "model", "overall_pass",
	"title_pass", "title_violations",
	"description_pass", "description_violations",
	"bullet_count", "lead_paragraph_length", "total_tokens",
}

// WriteCSV writes a flattened summary row per report. Violation lists
// are joined with ";" so the file stays one row per item.
func (e *Exporter) WriteCSV(path string, reports []models.ValidationReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range reports {
		row := []string{
			r.InputID,
			r.Model,
			strconv.FormatBool(r.OverallPass),
			strconv.FormatBool(r.Title.Pass),
			strings.Join(r.Title.Violations, ";"),
			strconv.FormatBool(r.Description.Pass),
			strings.Join(r.Description.Violations, ";"),
			strconv.Itoa(r.Description.BulletCount),
			strconv.Itoa(r.Description.LeadParagraphLength),
			strconv.Itoa(r.Tokens.TotalTokens),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", r.InputID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	e.logger.Info("Wrote %s (%d rows)", path, len(reports))
	return nil
}
