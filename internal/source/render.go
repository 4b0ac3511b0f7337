package source

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"

	"github.com/fotara-tools/invoice2excel/internal/common"
)

// RenderPNG rasterizes the first page of a PDF to a PNG at the given DPI.
// Rendering failure is strategy unavailability, not a pipeline error.
func RenderPNG(path string, dpi int) ([]byte, error) {
	if dpi <= 0 {
		dpi = 300
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, common.WrapError(common.ErrUnavailable, fmt.Sprintf("open pdf for rendering: %v", err))
	}
	defer func() { _ = doc.Close() }()

	if doc.NumPage() == 0 {
		return nil, common.WrapError(common.ErrUnavailable, "pdf has no pages")
	}

	img, err := doc.ImageDPI(0, float64(dpi))
	if err != nil {
		return nil, common.WrapError(common.ErrUnavailable, fmt.Sprintf("render page: %v", err))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
