package validator

import (
	"strings"

	"listify/internal/models"
)

// Description rule thresholds.
const (
	descMinLength   = 40
	descMaxLength   = 4000
	leadMinLength   = 40
	bulletMin       = 3
	bulletMax       = 8
	previewRunes    = 160
	previewEllipsis = "…"
)

// DescriptionRuleSet evaluates an HTML listing description against the
// marketplace description rules using the markup inspector's tag
// inventory. Length checks run on the trimmed fragment; the external-link
// scan runs on the raw text so links hidden in attributes still count.
type DescriptionRuleSet struct {
	markup *MarkupInspector
}

func NewDescriptionRuleSet() *DescriptionRuleSet {
	return &DescriptionRuleSet{markup: NewMarkupInspector()}
}

// Evaluate runs all description checks. An empty description
// short-circuits to a single "missing_description" violation.
func (r *DescriptionRuleSet) Evaluate(descriptionHTML string) models.DescriptionReport {
	report := models.DescriptionReport{
		Length:                  len([]rune(descriptionHTML)),
		ValuePreview:            preview(descriptionHTML),
		FoundDisallowedTags:     make([]string, 0),
		FoundNonWhitelistedTags: make([]string, 0),
	}

	if descriptionHTML == "" {
		report.Violations = []string{models.ViolationMissingDescription}
		return report
	}

	trimmed := strings.TrimSpace(descriptionHTML)
	inv := r.markup.Inspect(trimmed)

	checks := models.DescriptionChecks{
		Present:         models.Satisfied,
		Length40To4000:  models.OutcomeOf(withinRange(len([]rune(trimmed)), descMinLength, descMaxLength)),
		LeadParagraphOK: models.OutcomeOf(inv.FirstBlockTextLen >= leadMinLength),
		BulletCount3To8: models.OutcomeOf(withinRange(inv.ListItemCount, bulletMin, bulletMax)),
		NoDisallowed:    models.OutcomeOf(len(inv.DisallowedTags) == 0),
		OnlyAllowed:     models.OutcomeOf(len(inv.NonWhitelistedTags) == 0),
		NoExternalLinks: models.OutcomeOf(!r.markup.ContainsExternalLink(trimmed)),
	}

	report.Pass = checks.Passing()
	report.Checks = checks
	report.Violations = checks.Violations()
	report.FoundDisallowedTags = inv.DisallowedTags
	report.FoundNonWhitelistedTags = inv.NonWhitelistedTags
	report.LeadParagraphLength = inv.FirstBlockTextLen
	report.BulletCount = inv.ListItemCount
	return report
}

// preview truncates the raw description to the report preview size.
func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewRunes {
		return s
	}
	return string(runes[:previewRunes]) + previewEllipsis
}

func withinRange(n, lo, hi int) bool {
	return n >= lo && n <= hi
}
