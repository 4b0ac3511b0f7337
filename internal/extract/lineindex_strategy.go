package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
	"github.com/fotara-tools/invoice2excel/internal/llm"
	"github.com/fotara-tools/invoice2excel/internal/numeric"
	"github.com/fotara-tools/invoice2excel/internal/source"
)

// LineIndexStrategy has the inference service select indices into the
// document's line list instead of generating description text, which
// eliminates fabrication risk for descriptions entirely. It is a valid
// high-fidelity alternative that is not part of the default order.
type LineIndexStrategy struct {
	client llm.Client
	lines  func(path string) ([]string, error)
	logger *slog.Logger
}

func NewLineIndexStrategy(client llm.Client, logger *slog.Logger) *LineIndexStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &LineIndexStrategy{client: client, lines: source.Lines, logger: logger}
}

func (s *LineIndexStrategy) Name() string { return "line-index-selection" }

func (s *LineIndexStrategy) Extract(ctx context.Context, doc Document) (*invoice.Data, error) {
	if doc.Format != constants.PDF {
		return nil, common.WrapError(common.ErrUnavailable, "line-index strategy requires a pdf")
	}

	lines, err := s.lines(doc.Path)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, llm.Request{
		System: llm.SystemPrompt,
		User:   llm.LineIndexUserPrompt(lines),
	})
	if err != nil {
		return nil, err
	}

	if err := llm.ValidateInvoiceJSON(raw); err != nil {
		return nil, fmt.Errorf("inference output rejected: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode inference output: %w", err)
	}

	resolveDescriptionLines(m, lines)

	d := invoice.Decode(invoice.Reconcile(m))
	invoice.Complete(d)
	return d, nil
}

// resolveDescriptionLines replaces each item's "description_line" index with
// the verbatim text of that source line. Out-of-range or unparseable indices
// leave the description absent rather than guessing.
func resolveDescriptionLines(m map[string]any, lines []string) {
	items, ok := m[constants.FieldItems].([]any)
	if !ok {
		if items, ok = m["البنود"].([]any); !ok {
			return
		}
	}
	for _, it := range items {
		im, ok := it.(map[string]any)
		if !ok {
			continue
		}
		idxVal, ok := im["description_line"]
		if !ok {
			continue
		}
		delete(im, "description_line")
		if f := numeric.FromAny(idxVal); f != nil {
			idx := int(*f)
			if idx >= 0 && idx < len(lines) {
				im[constants.ItemDescription] = strings.TrimSpace(lines[idx])
			}
		}
	}
}
