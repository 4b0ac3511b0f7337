// Package source provides the two document boundaries the extraction
// strategies consume: the source-line provider (ordered verbatim text lines
// from a text-layer PDF) and the page renderer (PDF page to PNG for the
// vision path).
package source

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/fotara-tools/invoice2excel/internal/common"
)

// Lines returns the document's non-empty trimmed text lines in reading order.
// A document without an extractable text layer yields common.ErrUnavailable,
// which the orchestrator treats as strategy unavailability rather than an
// error.
func Lines(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			var b strings.Builder
			for _, word := range row.Content {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(word.S)
			}
			line := strings.TrimSpace(b.String())
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	if len(lines) == 0 {
		return nil, common.WrapError(common.ErrUnavailable, "pdf has no text layer")
	}
	return lines, nil
}
