// Package pipeline coordinates the per-document flow: strategy selection and
// extraction, then flattening into spreadsheet rows. Processing is stateless
// between documents, so any number of ProcessFile calls may run concurrently.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/export"
	"github.com/fotara-tools/invoice2excel/internal/extract"
)

// Processor runs one document through extraction and row flattening.
type Processor struct {
	Logger       *slog.Logger
	Orchestrator *extract.Orchestrator
}

func NewProcessor(logger *slog.Logger, orch *extract.Orchestrator) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Orchestrator: orch}
}

// ProcessFile extracts invoice data from the file at path (name carries the
// original filename for format detection and logging) and returns its
// flattened rows. A document that yields no accepted extraction returns
// common.ErrNoData; the caller decides how to surface that per-document.
func (p *Processor) ProcessFile(ctx context.Context, path, name string) ([]export.Row, error) {
	start := time.Now()

	format := constants.MapExtToFormat(filepath.Ext(name))
	if format == "" {
		return nil, common.WrapError(common.ErrInvalidInput, "unsupported file type: "+name)
	}

	doc := extract.Document{Path: path, Name: name, Format: format}
	data, err := p.Orchestrator.Extract(ctx, doc)
	if err != nil {
		p.Logger.Warn("pipeline.extract.failed", "doc", name, "err", err)
		return nil, err
	}

	rows := export.FlattenRows(data)
	p.Logger.Info("pipeline.processed",
		"doc", name,
		"items", len(data.Items),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rows, nil
}
