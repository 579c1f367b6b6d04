package validator

import (
	"listify/internal/logger"
	"listify/internal/models"
)

// BrandLookup resolves a listing identifier to its catalog brand. The
// mapping is built by the caller (catalog file or database); the
// validator never constructs it.
type BrandLookup interface {
	Brand(inputID string) (string, bool)
}

// Validator runs the full compliance rule engine over generation records.
// It is stateless per call: records can be validated concurrently without
// synchronization.
type Validator struct {
	logger       *logger.Logger
	brands       BrandLookup
	titles       *TitleRuleSet
	descriptions *DescriptionRuleSet
}

// New creates a validator. brands may be nil, in which case every
// brand-lead check is left not evaluated.
func New(log *logger.Logger, brands BrandLookup) *Validator {
	return &Validator{
		logger:       log,
		brands:       brands,
		titles:       NewTitleRuleSet(),
		descriptions: NewDescriptionRuleSet(),
	}
}

// ValidateRecord evaluates one generation record and returns its report.
// Model name and token counts are copied through unchanged.
func (v *Validator) ValidateRecord(rec models.GenerationRecord) models.ValidationReport {
	brandHint := ""
	if v.brands != nil {
		if b, ok := v.brands.Brand(rec.InputID.String()); ok {
			brandHint = b
		}
	}

	titleReport := v.titles.Evaluate(rec.Title(), brandHint)
	descReport := v.descriptions.Evaluate(rec.DescriptionHTML())

	report := models.ValidationReport{
		InputID:     rec.InputID.String(),
		Model:       rec.Model,
		OKOriginal:  rec.OK,
		OverallPass: titleReport.Pass && descReport.Pass,
		Title:       titleReport,
		Description: descReport,
		Tokens: models.TokenUsage{
			InputTokens:  rec.InputTokens,
			OutputTokens: rec.OutputTokens,
			TotalTokens:  rec.TotalTokens,
		},
	}

	if v.logger != nil {
		v.logger.Debug("Validated item %s (model=%s): overall_pass=%t title_violations=%d description_violations=%d",
			report.InputID, report.Model, report.OverallPass,
			len(titleReport.Violations), len(descReport.Violations))
	}
	return report
}

// ValidateBatch evaluates records in order, one report per record.
func (v *Validator) ValidateBatch(recs []models.GenerationRecord) []models.ValidationReport {
	reports := make([]models.ValidationReport, len(recs))
	for i, rec := range recs {
		reports[i] = v.ValidateRecord(rec)
	}
	return reports
}
