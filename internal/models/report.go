package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Outcome is the result of a single compliance check. A check that was
// skipped because its precondition was not met (for example no brand hint
// for the brand-lead check) is NotEvaluated rather than Violated.
type Outcome int

const (
	Violated Outcome = iota
	Satisfied
	NotEvaluated
)

// OutcomeOf converts a plain condition result into an Outcome.
func OutcomeOf(ok bool) Outcome {
	if ok {
		return Satisfied
	}
	return Violated
}

// Passing reports whether the outcome blocks the rule set from passing.
// NotEvaluated is non-blocking.
func (o Outcome) Passing() bool {
	return o == Satisfied || o == NotEvaluated
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	switch o {
	case Satisfied:
		return []byte("true"), nil
	case NotEvaluated:
		return []byte(`"not_evaluated"`), nil
	default:
		return []byte("false"), nil
	}
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("true")):
		*o = Satisfied
	case bytes.Equal(data, []byte("false")):
		*o = Violated
	case bytes.Equal(data, []byte(`"not_evaluated"`)):
		*o = NotEvaluated
	default:
		return fmt.Errorf("invalid check outcome: %s", data)
	}
	return nil
}

// Title check names, emitted in the violations list in declaration order.
const (
	CheckTitlePresent        = "present"
	CheckTitleLengthLE80     = "length_le_80"
	CheckTitleLengthGE10     = "length_ge_10"
	CheckTitleOneLine        = "one_line"
	CheckTitleNoDoubleSpaces = "no_double_spaces"
	CheckTitleNoEmoji        = "no_emoji"
	CheckTitleNoSpamWords    = "no_spam_words"
	CheckTitleNotAllCaps     = "not_all_caps"
	CheckTitleStartsBrand    = "starts_with_brand"

	ViolationMissingTitle = "missing_title"
)

// Description check names.
const (
	CheckDescPresent       = "present"
	CheckDescLength        = "length_40_to_4000"
	CheckDescLeadParagraph = "lead_paragraph_ok"
	CheckDescBulletCount   = "bullet_count_3_to_8"
	CheckDescNoDisallowed  = "no_disallowed_tags"
	CheckDescOnlyAllowed   = "only_allowed_tags"
	CheckDescNoExternal    = "no_external_links"

	ViolationMissingDescription = "missing_description"
)

// TitleChecks holds the outcome of every title rule. Fields are a fixed
// enumeration so reports marshal with a stable key order.
type TitleChecks struct {
	Present         Outcome `json:"present"`
	LengthLE80      Outcome `json:"length_le_80"`
	LengthGE10      Outcome `json:"length_ge_10"`
	OneLine         Outcome `json:"one_line"`
	NoDoubleSpaces  Outcome `json:"no_double_spaces"`
	NoEmoji         Outcome `json:"no_emoji"`
	NoSpamWords     Outcome `json:"no_spam_words"`
	NotAllCaps      Outcome `json:"not_all_caps"`
	StartsWithBrand Outcome `json:"starts_with_brand"`
}

// Violations returns the names of violated checks in declaration order.
func (c TitleChecks) Violations() []string {
	violations := make([]string, 0)
	for _, check := range []struct {
		name    string
		outcome Outcome
	}{
		{CheckTitlePresent, c.Present},
		{CheckTitleLengthLE80, c.LengthLE80},
		{CheckTitleLengthGE10, c.LengthGE10},
		{CheckTitleOneLine, c.OneLine},
		{CheckTitleNoDoubleSpaces, c.NoDoubleSpaces},
		{CheckTitleNoEmoji, c.NoEmoji},
		{CheckTitleNoSpamWords, c.NoSpamWords},
		{CheckTitleNotAllCaps, c.NotAllCaps},
		{CheckTitleStartsBrand, c.StartsWithBrand},
	} {
		if check.outcome == Violated {
			violations = append(violations, check.name)
		}
	}
	return violations
}

// Passing reports whether every check is Satisfied or NotEvaluated.
func (c TitleChecks) Passing() bool {
	return c.Present.Passing() && c.LengthLE80.Passing() && c.LengthGE10.Passing() &&
		c.OneLine.Passing() && c.NoDoubleSpaces.Passing() && c.NoEmoji.Passing() &&
		c.NoSpamWords.Passing() && c.NotAllCaps.Passing() && c.StartsWithBrand.Passing()
}

// DescriptionChecks holds the outcome of every description rule.
type DescriptionChecks struct {
	Present         Outcome `json:"present"`
	Length40To4000  Outcome `json:"length_40_to_4000"`
	LeadParagraphOK Outcome `json:"lead_paragraph_ok"`
	BulletCount3To8 Outcome `json:"bullet_count_3_to_8"`
	NoDisallowed    Outcome `json:"no_disallowed_tags"`
	OnlyAllowed     Outcome `json:"only_allowed_tags"`
	NoExternalLinks Outcome `json:"no_external_links"`
}

func (c DescriptionChecks) Violations() []string {
	violations := make([]string, 0)
	for _, check := range []struct {
		name    string
		outcome Outcome
	}{
		{CheckDescPresent, c.Present},
		{CheckDescLength, c.Length40To4000},
		{CheckDescLeadParagraph, c.LeadParagraphOK},
		{CheckDescBulletCount, c.BulletCount3To8},
		{CheckDescNoDisallowed, c.NoDisallowed},
		{CheckDescOnlyAllowed, c.OnlyAllowed},
		{CheckDescNoExternal, c.NoExternalLinks},
	} {
		if check.outcome == Violated {
			violations = append(violations, check.name)
		}
	}
	return violations
}

func (c DescriptionChecks) Passing() bool {
	return c.Present.Passing() && c.Length40To4000.Passing() && c.LeadParagraphOK.Passing() &&
		c.BulletCount3To8.Passing() && c.NoDisallowed.Passing() && c.OnlyAllowed.Passing() &&
		c.NoExternalLinks.Passing()
}

// TitleReport is the per-title section of a validation report.
type TitleReport struct {
	Value      string      `json:"value"`
	Pass       bool        `json:"pass"`
	Checks     TitleChecks `json:"checks"`
	Violations []string    `json:"violations"`
}

// DescriptionReport is the per-description section of a validation report.
// The diagnostics fields carry the tag inventory facts that drove the
// checks so a failing report is actionable without re-parsing.
type DescriptionReport struct {
	Length                  int               `json:"length"`
	ValuePreview            string            `json:"value_preview"`
	Pass                    bool              `json:"pass"`
	Checks                  DescriptionChecks `json:"checks"`
	Violations              []string          `json:"violations"`
	FoundDisallowedTags     []string          `json:"found_disallowed_tags"`
	FoundNonWhitelistedTags []string          `json:"found_non_whitelisted_tags"`
	LeadParagraphLength     int               `json:"lead_paragraph_length"`
	BulletCount             int               `json:"bullet_count"`
}

// TokenUsage is copied through from the generation record unchanged.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// ValidationReport is the full per-item compliance report.
type ValidationReport struct {
	InputID     string            `json:"input_id"`
	Model       string            `json:"model"`
	OKOriginal  bool              `json:"ok_original"`
	OverallPass bool              `json:"overall_pass"`
	Title       TitleReport       `json:"title"`
	Description DescriptionReport `json:"description"`
	Tokens      TokenUsage        `json:"tokens"`
}

// AsJSONB converts the report into a JSONB payload for storage.
func (r ValidationReport) AsJSONB() (JSONB, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	var payload JSONB
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to build report payload: %w", err)
	}
	return payload, nil
}
