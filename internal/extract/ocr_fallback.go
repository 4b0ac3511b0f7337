package extract

import (
	"context"
	"log/slog"

	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
)

// OCRFallbackStrategy is intentionally a no-op. An earlier revision fabricated
// a fixed sample invoice when every other path failed; that is the wrong
// behavior for a financial document and must not come back. Returning no
// result lets the caller surface an honest "no data" instead.
type OCRFallbackStrategy struct {
	logger *slog.Logger
}

func NewOCRFallbackStrategy(logger *slog.Logger) *OCRFallbackStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRFallbackStrategy{logger: logger}
}

func (s *OCRFallbackStrategy) Name() string { return "ocr-fallback-disabled" }

func (s *OCRFallbackStrategy) Extract(ctx context.Context, doc Document) (*invoice.Data, error) {
	s.logger.Debug("extract.ocr_fallback.noop", "doc", doc.Name)
	return nil, common.WrapError(common.ErrNoData, "deterministic ocr fallback is disabled")
}
