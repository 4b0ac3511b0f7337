package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/export"
	"github.com/fotara-tools/invoice2excel/internal/extract"
	"github.com/fotara-tools/invoice2excel/internal/ingest"
	"github.com/fotara-tools/invoice2excel/internal/llm/openai"
	"github.com/fotara-tools/invoice2excel/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory to process invoices from (required)")
		out     = flag.String("out", "", "output XLSX file path (defaults to <dir>/../invoices.xlsx)")
		workers = flag.Int("workers", 4, "number of files processed concurrently")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}
	if *workers < 1 {
		*workers = 1
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	files, err := ingest.ListInvoiceFiles(*dir, true)
	if err != nil {
		logger.Error("failed to list invoice files", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		printError("No invoice files found in %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("batch.start", "dir", *dir, "files", len(files), "workers", *workers)

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	orch := extract.NewOrchestrator(logger,
		extract.DefaultStrategies(client, cfg.Render.DPI, logger)...)
	proc := pipeline.NewProcessor(logger, orch)

	ctx := context.Background()

	// Results are keyed by position so workbook row order follows file order.
	results := make([][]export.Row, len(files))
	var failed sync.Map

	var wg sync.WaitGroup
	sem := make(chan struct{}, *workers)
	for i, path := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			rows, err := proc.ProcessFile(ctx, path, filepath.Base(path))
			if err != nil {
				logger.Warn("batch.file.failed", "file", path, "error", err)
				failed.Store(path, err)
				return
			}
			results[i] = rows
		}(i, path)
	}
	wg.Wait()

	var allRows []export.Row
	for _, rows := range results {
		allRows = append(allRows, rows...)
	}

	failedCount := 0
	failed.Range(func(_, _ any) bool {
		failedCount++
		return true
	})

	if len(allRows) == 0 {
		printError("Failed to extract data from any of the %d files\n", len(files))
		os.Exit(1)
	}

	workbook, err := export.NewService(logger).BuildWorkbook(allRows)
	if err != nil {
		logger.Error("failed to build workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, workbook, 0o644); err != nil {
		logger.Error("failed to write workbook", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch.done",
		"out", *out,
		"processed", len(files)-failedCount,
		"failed", failedCount,
		"rows", len(allRows))
	fmt.Printf("Wrote %s (%d files processed, %d failed)\n", *out, len(files)-failedCount, failedCount)
}
