package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"listify/internal/config"
	"listify/internal/generator"
	"listify/internal/logger"
)

func main() {
	outDir := flag.String("out", "output", "Directory for per-model result files")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: generate [flags] <products.json>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger := logger.New(cfg.LogLevel)

	products, err := generator.LoadProducts(flag.Arg(0))
	if err != nil {
		logger.Fatal("Failed to load products: %v", err)
	}
	logger.Info("Loaded %d products", len(products))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("Failed to create output directory: %v", err)
	}

	runner := generator.NewRunner(generator.New(cfg, logger), logger)
	results, stats := runner.Run(cfg.GenerationModels, products)

	for model, records := range results {
		path := filepath.Join(*outDir, fmt.Sprintf("result_%s_%d.json", model, time.Now().UnixMilli()))
		if err := writeJSON(path, records); err != nil {
			logger.Fatal("Failed to write results for %s: %v", model, err)
		}
		logger.Info("Wrote %s (%d items)", path, len(records))
	}

	for _, s := range stats {
		logger.Info("%s: success=%d fail=%d avg_latency=%.2fs throughput=%.2f items/s tokens in=%d out=%d",
			s.Model, s.Success, s.Failed, s.AvgLatencySec, s.ItemsPerSecond, s.TotalInputTokens, s.TotalOutputTok)
	}
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
