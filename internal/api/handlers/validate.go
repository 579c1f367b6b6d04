package handlers

import (
	"net/http"

	"listify/internal/logger"
	"listify/internal/models"
	"listify/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ValidateHandler runs compliance validation on generation records posted
// by callers and persists the resulting reports.
type ValidateHandler struct {
	db        *gorm.DB
	logger    *logger.Logger
	validator *validator.Validator
}

func NewValidateHandler(db *gorm.DB, log *logger.Logger, v *validator.Validator) *ValidateHandler {
	return &ValidateHandler{
		db:        db,
		logger:    log,
		validator: v,
	}
}

// Validate validates a single generation record
// POST /api/v1/validate
func (h *ValidateHandler) Validate(c *gin.Context) {
	var rec models.GenerationRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	report := h.validator.ValidateRecord(rec)
	h.store(report)

	c.JSON(http.StatusOK, report)
}

// ValidateBatch validates an ordered batch of generation records
// POST /api/v1/validate/batch
func (h *ValidateHandler) ValidateBatch(c *gin.Context) {
	var recs []models.GenerationRecord
	if err := c.ShouldBindJSON(&recs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	reports := h.validator.ValidateBatch(recs)

	passed := 0
	for _, r := range reports {
		h.store(r)
		if r.OverallPass {
			passed++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": reports,
		"summary": gin.H{
			"total":  len(reports),
			"passed": passed,
			"failed": len(reports) - passed,
		},
	})
}

// store persists a report row. Storage failures are logged, not surfaced:
// the caller still gets its validation result.
func (h *ValidateHandler) store(report models.ValidationReport) {
	row, err := models.NewReportRecord(report)
	if err != nil {
		h.logger.Error("Failed to build report row for %s: %v", report.InputID, err)
		return
	}
	if err := h.db.Create(row).Error; err != nil {
		h.logger.Warn("Failed to store report for %s: %v", report.InputID, err)
	}
}
