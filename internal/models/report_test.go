package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeJSON(t *testing.T) {
	tests := []struct {
		outcome Outcome
		json    string
	}{
		{Satisfied, "true"},
		{Violated, "false"},
		{NotEvaluated, `"not_evaluated"`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.outcome)
		require.NoError(t, err)
		assert.Equal(t, tt.json, string(data))

		var back Outcome
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, tt.outcome, back)
	}

	var bad Outcome
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &bad))
}

func TestOutcomePassing(t *testing.T) {
	assert.True(t, Satisfied.Passing())
	assert.True(t, NotEvaluated.Passing())
	assert.False(t, Violated.Passing())
}

func TestTitleChecksViolationsOrder(t *testing.T) {
	checks := TitleChecks{
		Present:         Satisfied,
		LengthLE80:      Satisfied,
		LengthGE10:      Violated,
		OneLine:         Satisfied,
		NoDoubleSpaces:  Violated,
		NoEmoji:         Satisfied,
		NoSpamWords:     Violated,
		NotAllCaps:      Satisfied,
		StartsWithBrand: NotEvaluated,
	}

	assert.Equal(t, []string{"length_ge_10", "no_double_spaces", "no_spam_words"}, checks.Violations())
	assert.False(t, checks.Passing())
}

func TestTitleChecksZeroValueViolatesEverything(t *testing.T) {
	var checks TitleChecks
	assert.False(t, checks.Passing())
	// StartsWithBrand defaults to Violated too; rule sets must set it to
	// NotEvaluated explicitly when no brand hint exists.
	assert.Len(t, checks.Violations(), 9)
}

func TestDescriptionChecksViolations(t *testing.T) {
	checks := DescriptionChecks{
		Present:         Satisfied,
		Length40To4000:  Satisfied,
		LeadParagraphOK: Violated,
		BulletCount3To8: Satisfied,
		NoDisallowed:    Satisfied,
		OnlyAllowed:     Violated,
		NoExternalLinks: Satisfied,
	}

	assert.Equal(t, []string{"lead_paragraph_ok", "only_allowed_tags"}, checks.Violations())
}

func TestFlexIDUnmarshal(t *testing.T) {
	var rec struct {
		ID FlexID `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id": "abc"}`), &rec))
	assert.Equal(t, "abc", rec.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &rec))
	assert.Equal(t, "42", rec.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &rec))
	assert.Equal(t, "", rec.ID.String())
}

func TestNewReportRecord(t *testing.T) {
	report := ValidationReport{
		InputID:     "p1",
		Model:       "gpt-4.1-mini",
		OverallPass: true,
		Title:       TitleReport{Pass: true, Violations: []string{}},
		Description: DescriptionReport{Pass: true, Violations: []string{}},
	}

	row, err := NewReportRecord(report)
	require.NoError(t, err)

	assert.Equal(t, "p1", row.InputID)
	assert.Equal(t, "gpt-4.1-mini", row.Model)
	assert.True(t, row.OverallPass)
	assert.True(t, row.TitlePass)
	assert.Equal(t, true, row.Payload["overall_pass"])
}
