package validator

import (
	"strings"
	"testing"

	"listify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compliantDescription satisfies every description rule except
// only_allowed_tags, which its lead paragraph necessarily trips: the lead
// block tag is not on the marketplace allow list.
const compliantDescription = "<p>Keep drinks cold for a full day with this double-wall insulated steel bottle.</p>" +
	"<ul><li>750ml capacity</li><li>Leakproof straw lid</li><li>Fits car cup holders</li></ul>"

func TestEvaluateDescription_MissingDescription(t *testing.T) {
	r := NewDescriptionRuleSet()

	report := r.Evaluate("")

	assert.False(t, report.Pass)
	assert.Equal(t, []string{"missing_description"}, report.Violations)
	assert.Equal(t, 0, report.Length)
	assert.Empty(t, report.FoundDisallowedTags)
	assert.Empty(t, report.FoundNonWhitelistedTags)
}

func TestEvaluateDescription_BulletCount(t *testing.T) {
	r := NewDescriptionRuleSet()

	bullets := func(n int) string {
		var b strings.Builder
		b.WriteString("<p>A reasonably long lead paragraph describing the product in detail.</p><ul>")
		for i := 0; i < n; i++ {
			b.WriteString("<li>feature</li>")
		}
		b.WriteString("</ul>")
		return b.String()
	}

	tests := []struct {
		count int
		want  models.Outcome
	}{
		{2, models.Violated},
		{3, models.Satisfied},
		{8, models.Satisfied},
		{9, models.Violated},
	}

	for _, tt := range tests {
		report := r.Evaluate(bullets(tt.count))
		assert.Equal(t, tt.want, report.Checks.BulletCount3To8, "bullet count %d", tt.count)
		assert.Equal(t, tt.count, report.BulletCount)
	}
}

func TestEvaluateDescription_BulletsSummedAcrossLists(t *testing.T) {
	r := NewDescriptionRuleSet()

	report := r.Evaluate("<ul><li>a</li><li>b</li></ul><ol><li>c</li></ol>")
	assert.Equal(t, 3, report.BulletCount)
	assert.Equal(t, models.Satisfied, report.Checks.BulletCount3To8)
}

func TestEvaluateDescription_DisallowedTags(t *testing.T) {
	r := NewDescriptionRuleSet()

	report := r.Evaluate(compliantDescription + "<script>alert(1)</script>")

	assert.Equal(t, models.Violated, report.Checks.NoDisallowed)
	assert.Contains(t, report.FoundDisallowedTags, "script")
	assert.False(t, report.Pass)
}

func TestEvaluateDescription_LengthBounds(t *testing.T) {
	r := NewDescriptionRuleSet()

	// Under 40 characters trimmed.
	report := r.Evaluate("<b>too short</b>")
	assert.Equal(t, models.Violated, report.Checks.Length40To4000)

	// Over 4000 characters.
	long := "<p>" + strings.Repeat("very long lead paragraph text ", 140) + "</p>"
	require.Greater(t, len([]rune(long)), 4000)
	report = r.Evaluate(long)
	assert.Equal(t, models.Violated, report.Checks.Length40To4000)
}

func TestEvaluateDescription_LeadParagraph(t *testing.T) {
	r := NewDescriptionRuleSet()

	tests := []struct {
		name string
		html string
		want models.Outcome
	}{
		{
			name: "long enough lead",
			html: "<p>Keep drinks cold all day with this double-wall insulated steel bottle.</p>",
			want: models.Satisfied,
		},
		{
			name: "lead too short",
			html: "<p>Nice bottle.</p><ul><li>a</li><li>b</li><li>c</li></ul>",
			want: models.Violated,
		},
		{
			name: "no lead block",
			html: "<ul><li>a</li><li>b</li><li>c</li></ul> padding text to clear forty characters",
			want: models.Violated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := r.Evaluate(tt.html)
			assert.Equal(t, tt.want, report.Checks.LeadParagraphOK)
		})
	}
}

func TestEvaluateDescription_ExternalLinks(t *testing.T) {
	r := NewDescriptionRuleSet()

	report := r.Evaluate(compliantDescription + " more at http://example.com")
	assert.Equal(t, models.Violated, report.Checks.NoExternalLinks)

	report = r.Evaluate(compliantDescription + " write to help@example.com")
	assert.Equal(t, models.Violated, report.Checks.NoExternalLinks)

	report = r.Evaluate(compliantDescription)
	assert.Equal(t, models.Satisfied, report.Checks.NoExternalLinks)
}

func TestEvaluateDescription_ListOnlyShortFragment(t *testing.T) {
	r := NewDescriptionRuleSet()

	// 39 characters: under the length floor with a valid bullet count.
	report := r.Evaluate("<ul><li>a</li><li>b</li><li>c</li></ul>")

	assert.Equal(t, models.Violated, report.Checks.Length40To4000)
	assert.Equal(t, models.Violated, report.Checks.LeadParagraphOK)
	assert.Equal(t, models.Satisfied, report.Checks.BulletCount3To8)
	assert.False(t, report.Pass)

	// One more bullet pushes the same fragment to 49 characters, which
	// satisfies the length rule.
	report = r.Evaluate("<ul><li>a</li><li>b</li><li>c</li><li>d</li></ul>")
	assert.Equal(t, models.Satisfied, report.Checks.Length40To4000)
	assert.Equal(t, models.Satisfied, report.Checks.BulletCount3To8)
}

func TestEvaluateDescription_Preview(t *testing.T) {
	r := NewDescriptionRuleSet()

	short := "<b>short description under the preview limit</b>"
	report := r.Evaluate(short)
	assert.Equal(t, short, report.ValuePreview)

	long := strings.Repeat("x", 200)
	report = r.Evaluate(long)
	assert.Equal(t, strings.Repeat("x", 160)+"…", report.ValuePreview)
	assert.Equal(t, 200, report.Length)
}

// The allow list excludes the lead paragraph tag, so a description with a
// proper lead necessarily reports p as non-whitelisted. The checks stay
// independently meaningful; overall pass requires callers to weigh them.
func TestEvaluateDescription_LeadTagOffAllowList(t *testing.T) {
	r := NewDescriptionRuleSet()

	report := r.Evaluate(compliantDescription)

	assert.Equal(t, models.Satisfied, report.Checks.LeadParagraphOK)
	assert.Equal(t, models.Violated, report.Checks.OnlyAllowed)
	assert.Equal(t, []string{"p"}, report.FoundNonWhitelistedTags)
}
