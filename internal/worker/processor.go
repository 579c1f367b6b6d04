package worker

import (
	"errors"
	"fmt"

	"listify/internal/generator"
	"listify/internal/logger"
	"listify/internal/models"
	"listify/internal/validator"

	"gorm.io/gorm"
)

var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrMissingRecord    = errors.New("validate event carries no record")
)

// Processor runs the listing pipeline for one event: generate a candidate
// when asked, validate it, persist the report.
type Processor struct {
	db        *gorm.DB
	logger    *logger.Logger
	client    *generator.Client
	validator *validator.Validator
	models    []string
}

func NewProcessor(db *gorm.DB, log *logger.Logger, client *generator.Client, v *validator.Validator, modelNames []string) *Processor {
	return &Processor{
		db:        db,
		logger:    log,
		client:    client,
		validator: v,
		models:    modelNames,
	}
}

func (p *Processor) Process(event Event) error {
	switch event.Type {
	case EventListingGenerate:
		return p.generateAndValidate(event.ProductID)
	case EventListingValidate:
		if event.Record == nil {
			return ErrMissingRecord
		}
		return p.validateAndStore(*event.Record)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, event.Type)
	}
}

func (p *Processor) generateAndValidate(productID string) error {
	var product models.Product
	err := p.db.
		Where("id = ? OR external_id = ?", productID, productID).
		First(&product).Error
	if err != nil {
		return fmt.Errorf("failed to load product %s: %w", productID, err)
	}

	for _, model := range p.models {
		rec := p.client.Generate(model, product)
		if err := p.validateAndStore(rec); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) validateAndStore(rec models.GenerationRecord) error {
	report := p.validator.ValidateRecord(rec)

	row, err := models.NewReportRecord(report)
	if err != nil {
		return fmt.Errorf("failed to build report row: %w", err)
	}
	if err := p.db.Create(row).Error; err != nil {
		return fmt.Errorf("failed to store report for %s: %w", report.InputID, err)
	}

	p.logger.Info("Stored validation report %s for item %s (overall_pass=%t)",
		row.ID, report.InputID, report.OverallPass)
	return nil
}
