package worker

import (
	"context"
	"encoding/json"
	"time"

	"listify/internal/config"
	"listify/internal/logger"
	"listify/internal/models"

	"github.com/segmentio/kafka-go"
)

type Worker struct {
	config    *config.Config
	logger    *logger.Logger
	reader    *kafka.Reader
	processor *Processor
}

func New(cfg *config.Config, log *logger.Logger, processor *Processor) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{cfg.KafkaBrokers},
		GroupID:        "listify-worker",
		Topic:          cfg.KafkaTopic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &Worker{
		config:    cfg,
		logger:    log,
		reader:    reader,
		processor: processor,
	}
}

func (w *Worker) Start() {
	w.logger.Info("Worker started, listening for listing events...")

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		message, err := w.reader.ReadMessage(ctx)
		cancel()

		if err != nil {
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		w.logger.Debug("Received message: %s", string(message.Value))

		var event Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			w.logger.Error("Failed to parse event: %v", err)
			continue
		}

		if err := w.processor.Process(event); err != nil {
			w.logger.Error("Failed to process event: %v", err)
			continue
		}

		w.logger.Debug("Event processed successfully")
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.reader.Close()
}

// Event is one listing pipeline message. listing.generate events name a
// catalog product to run the full generate-and-validate pipeline on;
// listing.validate events carry a ready generation record to check.
type Event struct {
	Type      string                   `json:"type"`
	ProductID string                   `json:"product_id"`
	Record    *models.GenerationRecord `json:"record,omitempty"`
	Timestamp time.Time                `json:"timestamp"`
}

const (
	EventListingGenerate = "listing.generate"
	EventListingValidate = "listing.validate"
)
