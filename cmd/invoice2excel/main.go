package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/export"
	"github.com/fotara-tools/invoice2excel/internal/extract"
	"github.com/fotara-tools/invoice2excel/internal/llm/openai"
	"github.com/fotara-tools/invoice2excel/internal/pipeline"
	"github.com/fotara-tools/invoice2excel/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly
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
	exportSvc := export.NewService(logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(cfg, proc, exportSvc, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http.serving", "addr", cfg.Server.Addr, "model", cfg.LLM.Model)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http.serve.failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("http.shutdown.start")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http.shutdown.failed", "error", err)
		os.Exit(1)
	}
	logger.Info("http.shutdown.ok")
}
