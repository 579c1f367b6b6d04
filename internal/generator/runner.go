package generator

import (
	"time"

	"listify/internal/logger"
	"listify/internal/models"
)

// ModelStats summarizes one model's pass over a batch of products.
type ModelStats struct {
	Model            string  `json:"model"`
	Items            int     `json:"items"`
	Success          int     `json:"success"`
	Failed           int     `json:"failed"`
	TotalInputTokens int     `json:"total_input_tokens"`
	TotalOutputTok   int     `json:"total_output_tokens"`
	TotalSeconds     float64 `json:"total_seconds"`
	AvgLatencySec    float64 `json:"avg_latency_sec"`
	ItemsPerSecond   float64 `json:"items_per_second"`
}

// Runner drives a generation client over whole catalogs, once per
// configured model, collecting token and latency statistics.
type Runner struct {
	client *Client
	logger *logger.Logger
}

func NewRunner(client *Client, log *logger.Logger) *Runner {
	return &Runner{client: client, logger: log}
}

// RunModel generates a candidate for every product with one model.
// Always returns one record per product, in input order.
func (r *Runner) RunModel(model string, products []models.Product) ([]models.GenerationRecord, ModelStats) {
	start := time.Now()
	stats := ModelStats{Model: model, Items: len(products)}
	records := make([]models.GenerationRecord, 0, len(products))

	var latencyTotal float64
	for i, product := range products {
		rec := r.client.Generate(model, product)
		if rec.InputID == "" {
			rec.InputID = models.FlexIDFromInt(i)
		}
		records = append(records, rec)
		latencyTotal += rec.LatencySec

		if rec.OK {
			stats.Success++
			stats.TotalInputTokens += rec.InputTokens
			stats.TotalOutputTok += rec.OutputTokens
			r.logger.Info("[%s] #%d/%d id=%s ok %.2fs (in=%d, out=%d)",
				model, i, len(products), rec.InputID, rec.LatencySec, rec.InputTokens, rec.OutputTokens)
		} else {
			stats.Failed++
			r.logger.Error("[%s] #%d/%d id=%s failed %.2fs: %s",
				model, i, len(products), rec.InputID, rec.LatencySec, rec.Error)
		}
	}

	stats.TotalSeconds = time.Since(start).Seconds()
	if len(products) > 0 {
		stats.AvgLatencySec = latencyTotal / float64(len(products))
	}
	if stats.TotalSeconds > 0 {
		stats.ItemsPerSecond = float64(len(products)) / stats.TotalSeconds
	}
	return records, stats
}

// Run generates candidates for every configured model in turn.
func (r *Runner) Run(modelNames []string, products []models.Product) (map[string][]models.GenerationRecord, []ModelStats) {
	results := make(map[string][]models.GenerationRecord, len(modelNames))
	allStats := make([]ModelStats, 0, len(modelNames))
	for _, model := range modelNames {
		r.logger.Info("Running model %s on %d items", model, len(products))
		records, stats := r.RunModel(model, products)
		results[model] = records
		allStats = append(allStats, stats)
		r.logger.Info("Model %s done: success=%d fail=%d tokens in=%d out=%d (%.2fs)",
			model, stats.Success, stats.Failed, stats.TotalInputTokens, stats.TotalOutputTok, stats.TotalSeconds)
	}
	return results, allStats
}
