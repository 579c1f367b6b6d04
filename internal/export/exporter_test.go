package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"listify/internal/logger"
	"listify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReports() []models.ValidationReport {
	return []models.ValidationReport{
		{
			InputID:     "p1",
			Model:       "gpt-4.1-mini",
			OverallPass: true,
			Title: models.TitleReport{
				Value:      "Acme Steel Water Bottle 750ml Blue",
				Pass:       true,
				Violations: []string{},
			},
			Description: models.DescriptionReport{
				Length:                  120,
				ValuePreview:            "<p>lead</p>",
				Pass:                    true,
				Violations:              []string{},
				FoundDisallowedTags:     []string{},
				FoundNonWhitelistedTags: []string{},
				BulletCount:             4,
				LeadParagraphLength:     62,
			},
			Tokens: models.TokenUsage{InputTokens: 100, OutputTokens: 200, TotalTokens: 300},
		},
		{
			InputID: "p2",
			Model:   "gpt-4.1-nano",
			Title: models.TitleReport{
				Violations: []string{"missing_title"},
			},
			Description: models.DescriptionReport{
				Violations:              []string{"missing_description"},
				FoundDisallowedTags:     []string{},
				FoundNonWhitelistedTags: []string{},
			},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	e := New(logger.New("error"))
	path := filepath.Join(t.TempDir(), "reports.json")

	require.NoError(t, e.WriteJSON(path, sampleReports()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []models.ValidationReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "p1", decoded[0].InputID)
	assert.True(t, decoded[0].OverallPass)
	assert.Equal(t, []string{"missing_title"}, decoded[1].Title.Violations)

	// HTML must not be escaped in the output file.
	assert.Contains(t, string(data), "<p>lead</p>")
	assert.NotContains(t, string(data), `\u003cp\u003e`)
}

func TestWriteCSV(t *testing.T) {
	e := New(logger.New("error"))
	path := filepath.Join(t.TempDir(), "reports.csv")

	require.NoError(t, e.WriteCSV(path, sampleReports()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 rows

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "p1", rows[1][0])
	assert.Equal(t, "true", rows[1][2])
	assert.Equal(t, "p2", rows[2][0])
	assert.True(t, strings.Contains(rows[2][4], "missing_title"))
}
