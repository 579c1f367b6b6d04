package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRecord is a persisted validation run for one listing candidate.
// The full report JSON is kept in Payload; the indexed columns exist so
// the API can filter without unpacking it.
type ReportRecord struct {
	ID              string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InputID         string    `json:"input_id" gorm:"not null;index"`
	Model           string    `json:"model" gorm:"index"`
	OverallPass     bool      `json:"overall_pass" gorm:"index"`
	TitlePass       bool      `json:"title_pass"`
	DescriptionPass bool      `json:"description_pass"`
	Payload         JSONB     `json:"payload" gorm:"type:jsonb"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName specifies the table name for ReportRecord
func (ReportRecord) TableName() string {
	return "validation_reports"
}

func (r *ReportRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// NewReportRecord builds a storable row from a validation report.
func NewReportRecord(report ValidationReport) (*ReportRecord, error) {
	payload, err := report.AsJSONB()
	if err != nil {
		return nil, err
	}
	return &ReportRecord{
		InputID:         report.InputID,
		Model:           report.Model,
		OverallPass:     report.OverallPass,
		TitlePass:       report.Title.Pass,
		DescriptionPass: report.Description.Pass,
		Payload:         payload,
	}, nil
}
