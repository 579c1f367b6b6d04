package validator

import (
	"strings"
	"testing"

	"listify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateTitle_CompliantTitlesPass(t *testing.T) {
	r := NewTitleRuleSet()

	titles := []string{
		"Acme Steel Water Bottle 750ml Blue",
		"Nordic Oak Coffee Table 120cm Natural Finish",
		"Trailhead Hiking Backpack 40L Forest Green",
	}

	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			report := r.Evaluate(title, "")
			assert.True(t, report.Pass)
			assert.Empty(t, report.Violations)
		})
	}
}

func TestEvaluateTitle_MissingTitle(t *testing.T) {
	r := NewTitleRuleSet()

	report := r.Evaluate("", "Acme")

	assert.False(t, report.Pass)
	assert.Equal(t, []string{"missing_title"}, report.Violations)
	assert.Equal(t, models.Violated, report.Checks.Present)
	assert.Equal(t, models.NotEvaluated, report.Checks.StartsWithBrand)
}

func TestEvaluateTitle_IndependentChecks(t *testing.T) {
	r := NewTitleRuleSet()

	tests := []struct {
		name       string
		title      string
		violations []string
	}{
		{
			name:       "too long",
			title:      strings.Repeat("Water Bottle ", 7), // 91 chars
			violations: []string{"length_le_80"},
		},
		{
			name:       "too short",
			title:      "Bottleatr",
			violations: []string{"length_ge_10"},
		},
		{
			name:       "line break",
			title:      "Acme Steel Water\nBottle 750ml",
			violations: []string{"one_line"},
		},
		{
			name:       "double spaces",
			title:      "Acme Steel  Water Bottle 750ml",
			violations: []string{"no_double_spaces"},
		},
		{
			name:       "emoji",
			title:      "Acme Steel Water Bottle \U0001F4A6",
			violations: []string{"no_emoji"},
		},
		{
			name:       "spam phrase mixed case",
			title:      "Acme Water Bottle FrEe shipping",
			violations: []string{"no_spam_words"},
		},
		{
			name:       "all caps",
			title:      "ACME STEEL WATER BOTTLE",
			violations: []string{"not_all_caps"},
		},
		{
			name:       "multiple failures collected",
			title:      "ACME  BOTTLE SALE",
			violations: []string{"no_double_spaces", "no_spam_words", "not_all_caps"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := r.Evaluate(tt.title, "")
			assert.False(t, report.Pass)
			assert.Equal(t, tt.violations, report.Violations)
		})
	}
}

func TestEvaluateTitle_BrandLead(t *testing.T) {
	r := NewTitleRuleSet()

	tests := []struct {
		name  string
		title string
		brand string
		want  models.Outcome
	}{
		{"starts with brand", "Acme Steel Water Bottle 750ml Blue", "Acme", models.Satisfied},
		{"case insensitive", "acme steel water bottle 750ml", "ACME", models.Satisfied},
		{"brand early in title", "The Acme Steel Water Bottle 750ml", "Acme", models.Satisfied},
		{"brand too late", "Steel Water Bottle 750ml by Acme Co", "Acme", models.Violated},
		{"brand absent from title", "Steel Water Bottle 750ml Blue", "Acme", models.Violated},
		{"no brand hint", "Steel Water Bottle 750ml Blue", "", models.NotEvaluated},
		{"leading whitespace trimmed", "  Acme Steel Water Bottle", "Acme", models.Satisfied},
		{"leading unicode whitespace trimmed", "\u00a0Acme Steel Water Bottle", "Acme", models.Satisfied},
		// Brand at character index 10 but byte index 19; the window
		// counts characters.
		{"multibyte prefix inside window", "ööööööööö Acme Bottle 750ml", "Acme", models.Satisfied},
		{"multibyte prefix outside window", "ööööööööööööö Acme Bottle 750ml", "Acme", models.Violated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := r.Evaluate(tt.title, tt.brand)
			assert.Equal(t, tt.want, report.Checks.StartsWithBrand)
		})
	}
}

// A missing brand hint leaves starts_with_brand not evaluated, and that
// outcome does not block the title from passing.
func TestEvaluateTitle_NoBrandHintStillPasses(t *testing.T) {
	r := NewTitleRuleSet()

	report := r.Evaluate("Steel Water Bottle 750ml Blue", "")

	require.Equal(t, models.NotEvaluated, report.Checks.StartsWithBrand)
	assert.True(t, report.Pass)
	assert.NotContains(t, report.Violations, "starts_with_brand")
}

func TestEvaluateTitle_RuneLengths(t *testing.T) {
	r := NewTitleRuleSet()

	// 80 runes exactly, multibyte characters included.
	title := strings.Repeat("é", 70) + strings.Repeat("x", 10)
	report := r.Evaluate(title, "")
	assert.Equal(t, models.Satisfied, report.Checks.LengthLE80)

	report = r.Evaluate(title+"!", "")
	assert.Equal(t, models.Violated, report.Checks.LengthLE80)
}
