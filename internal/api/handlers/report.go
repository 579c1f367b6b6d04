package handlers

import (
	"net/http"
	"strconv"

	"listify/internal/logger"
	"listify/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportHandler struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewReportHandler(db *gorm.DB, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		db:     db,
		logger: log,
	}
}

// List returns stored validation reports
// GET /api/v1/reports
func (h *ReportHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset := (page - 1) * limit

	inputID := c.Query("input_id")
	model := c.Query("model")
	pass := c.Query("pass")

	query := h.db.Model(&models.ReportRecord{})

	if inputID != "" {
		query = query.Where("input_id = ?", inputID)
	}
	if model != "" {
		query = query.Where("model = ?", model)
	}
	if pass != "" {
		query = query.Where("overall_pass = ?", pass == "true")
	}

	var total int64
	query.Count(&total)

	var reports []models.ReportRecord
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&reports).Error; err != nil {
		h.logger.Error("Failed to fetch reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": reports,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// Get returns one stored report with its full payload
// GET /api/v1/reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var report models.ReportRecord
	if err := h.db.First(&report, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

// Stats summarizes pass rates per model
// GET /api/v1/reports/stats
func (h *ReportHandler) Stats(c *gin.Context) {
	var byModel []struct {
		Model  string `json:"model"`
		Total  int64  `json:"total"`
		Passed int64  `json:"passed"`
	}

	err := h.db.Model(&models.ReportRecord{}).
		Select("model, COUNT(*) as total, SUM(CASE WHEN overall_pass THEN 1 ELSE 0 END) as passed").
		Group("model").
		Scan(&byModel).Error
	if err != nil {
		h.logger.Error("Failed to compute report stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"by_model": byModel})
}
