package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/align"
	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
	"github.com/fotara-tools/invoice2excel/internal/llm"
	"github.com/fotara-tools/invoice2excel/internal/source"
)

// TextStrategy runs inference over the document's extracted plain text and
// then aligns each item description against the original line list, so the
// final wording is provably copied from the source.
type TextStrategy struct {
	client llm.Client
	lines  func(path string) ([]string, error)
	logger *slog.Logger
}

func NewTextStrategy(client llm.Client, logger *slog.Logger) *TextStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextStrategy{client: client, lines: source.Lines, logger: logger}
}

func (s *TextStrategy) Name() string { return "text-plus-line-alignment" }

func (s *TextStrategy) Extract(ctx context.Context, doc Document) (*invoice.Data, error) {
	if doc.Format != constants.PDF {
		return nil, common.WrapError(common.ErrUnavailable, "text strategy requires a pdf")
	}

	lines, err := s.lines(doc.Path)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, llm.Request{
		System: llm.SystemPrompt,
		User:   llm.TextUserPrompt(strings.Join(lines, "\n")),
	})
	if err != nil {
		return nil, err
	}

	d, err := decodeResult(raw)
	if err != nil {
		return nil, err
	}

	align.Descriptions(d, lines)
	return d, nil
}

// decodeResult is the shared reconcile/complete tail of every
// inference-backed strategy. Schema violations and invalid JSON are strategy
// failures, never fatal.
func decodeResult(raw json.RawMessage) (*invoice.Data, error) {
	if err := llm.ValidateInvoiceJSON(raw); err != nil {
		return nil, fmt.Errorf("inference output rejected: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode inference output: %w", err)
	}
	d := invoice.Decode(invoice.Reconcile(m))
	invoice.Complete(d)
	return d, nil
}
