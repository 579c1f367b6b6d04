package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"listify/internal/models"
)

// Title rule thresholds.
const (
	titleMaxLength   = 80
	titleMinLength   = 10
	brandEarlyWindow = 12
	titleDoubleSpace = "  "
)

// TitleRuleSet evaluates a candidate listing title against the
// marketplace title rules. Checks are independent: every rule is
// evaluated even when an earlier one has already failed.
type TitleRuleSet struct {
	text *TextNormalizer
}

func NewTitleRuleSet() *TitleRuleSet {
	return &TitleRuleSet{text: NewTextNormalizer()}
}

// Evaluate runs all title checks. brandHint may be empty, in which case
// the brand-lead check is left NotEvaluated. An empty title short-circuits
// the whole rule set to a single "missing_title" violation.
func (r *TitleRuleSet) Evaluate(title, brandHint string) models.TitleReport {
	checks := models.TitleChecks{StartsWithBrand: models.NotEvaluated}

	if title == "" {
		return models.TitleReport{
			Value:      title,
			Pass:       false,
			Checks:     checks,
			Violations: []string{models.ViolationMissingTitle},
		}
	}

	runes := []rune(title)
	checks.Present = models.Satisfied
	checks.LengthLE80 = models.OutcomeOf(len(runes) <= titleMaxLength)
	checks.LengthGE10 = models.OutcomeOf(len([]rune(strings.TrimSpace(title))) >= titleMinLength)
	checks.OneLine = models.OutcomeOf(!strings.ContainsAny(title, "\n\r"))
	checks.NoDoubleSpaces = models.OutcomeOf(!strings.Contains(title, titleDoubleSpace))
	checks.NoEmoji = models.OutcomeOf(!r.text.ContainsEmoji(title))
	checks.NoSpamWords = models.OutcomeOf(!r.text.ContainsSpamPhrase(title))
	checks.NotAllCaps = models.OutcomeOf(!r.text.IsAllCaps(title))

	if brandHint != "" {
		checks.StartsWithBrand = models.OutcomeOf(brandLeads(title, brandHint))
	}

	return models.TitleReport{
		Value:      title,
		Pass:       checks.Passing(),
		Checks:     checks,
		Violations: checks.Violations(),
	}
}

// brandLeads reports whether the title opens with the brand or mentions
// it within the first brandEarlyWindow characters. The window counts
// characters, not bytes, so multibyte prefixes do not shift it.
func brandLeads(title, brand string) bool {
	t := strings.TrimLeftFunc(strings.ToLower(title), unicode.IsSpace)
	b := strings.TrimSpace(strings.ToLower(brand))
	if b == "" {
		return false
	}
	idx := strings.Index(t, b)
	if idx == -1 {
		return false
	}
	return utf8.RuneCountInString(t[:idx]) <= brandEarlyWindow
}
