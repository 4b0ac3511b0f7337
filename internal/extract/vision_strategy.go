package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
	"github.com/fotara-tools/invoice2excel/internal/llm"
	"github.com/fotara-tools/invoice2excel/internal/source"
)

// VisionStrategy runs vision inference directly over the document image:
// the uploaded image itself, or the first PDF page rendered to PNG. No
// description alignment is possible on this path because there are no source
// text lines to align against.
type VisionStrategy struct {
	client llm.Client
	render func(path string, dpi int) ([]byte, error)
	dpi    int
	logger *slog.Logger
}

func NewVisionStrategy(client llm.Client, dpi int, logger *slog.Logger) *VisionStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	if dpi <= 0 {
		dpi = 300
	}
	return &VisionStrategy{client: client, render: source.RenderPNG, dpi: dpi, logger: logger}
}

func (s *VisionStrategy) Name() string { return "image-vision" }

func (s *VisionStrategy) Extract(ctx context.Context, doc Document) (*invoice.Data, error) {
	img, err := s.imageBytes(doc)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, llm.Request{
		System:   llm.SystemPrompt,
		User:     llm.VisionUserPrompt(),
		ImagePNG: img,
	})
	if err != nil {
		return nil, err
	}

	return decodeResult(raw)
}

func (s *VisionStrategy) imageBytes(doc Document) ([]byte, error) {
	switch doc.Format {
	case constants.IMAGE:
		b, err := os.ReadFile(doc.Path)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		return b, nil
	case constants.PDF:
		return s.render(doc.Path, s.dpi)
	default:
		return nil, common.WrapError(common.ErrUnavailable, "unsupported document format")
	}
}
