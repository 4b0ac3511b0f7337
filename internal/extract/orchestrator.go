package extract

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
	"github.com/fotara-tools/invoice2excel/internal/llm"
)

// Orchestrator tries strategies in order and returns the first result the
// validity filter accepts. Reordering strategies is a construction-time
// change, not a code change.
type Orchestrator struct {
	strategies []Strategy
	logger     *slog.Logger
}

func NewOrchestrator(logger *slog.Logger, strategies ...Strategy) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{strategies: strategies, logger: logger}
}

// DefaultStrategies is the standard priority order: text extraction with line
// alignment first (PDFs with a text layer), image vision second (everything
// else). Image-only documents skip the text strategy via its unavailability.
func DefaultStrategies(client llm.Client, renderDPI int, logger *slog.Logger) []Strategy {
	return []Strategy{
		NewTextStrategy(client, logger),
		NewVisionStrategy(client, renderDPI, logger),
	}
}

// Extract runs the strategy list for one document.
//
// Unavailable strategies are skipped and failed strategies absorbed; transient
// inference errors (auth, rate limit, quota) stop the run and surface to the
// caller, since every later strategy would hit the same wall. When no strategy
// produces an accepted result the outcome is common.ErrNoData, never a
// fabricated record.
func (o *Orchestrator) Extract(ctx context.Context, doc Document) (*invoice.Data, error) {
	start := time.Now()

	for _, s := range o.strategies {
		o.logger.Info("extract.strategy.start", "doc", doc.Name, "strategy", s.Name())

		d, err := s.Extract(ctx, doc)
		if err != nil {
			if common.IsInferenceError(err) {
				o.logger.Error("extract.strategy.inference_error",
					"doc", doc.Name, "strategy", s.Name(), "error", err)
				return nil, err
			}
			if errors.Is(err, common.ErrUnavailable) {
				o.logger.Debug("extract.strategy.unavailable",
					"doc", doc.Name, "strategy", s.Name(), "reason", err)
				continue
			}
			o.logger.Warn("extract.strategy.failed",
				"doc", doc.Name, "strategy", s.Name(), "error", err)
			continue
		}

		if !Valid(d) {
			o.logger.Warn("extract.strategy.rejected",
				"doc", doc.Name, "strategy", s.Name())
			continue
		}

		o.logger.Info("extract.strategy.accepted",
			"doc", doc.Name,
			"strategy", s.Name(),
			"items", len(d.Items),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return d, nil
	}

	o.logger.Warn("extract.no_data", "doc", doc.Name,
		"elapsed_ms", time.Since(start).Milliseconds())
	return nil, common.ErrNoData
}
