// Package extract turns a source document into a validated invoice record by
// trying extraction strategies in priority order.
package extract

import (
	"context"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
)

// Document is one source document. Temporary on-disk artifacts are owned and
// released by the calling layer, not here.
type Document struct {
	Path   string
	Name   string
	Format constants.Format
}

// Strategy is one self-contained method of turning a document into a
// candidate record. A strategy that cannot run for this document returns
// common.ErrUnavailable; any other failure is a strategy failure the
// orchestrator absorbs before moving on.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, doc Document) (*invoice.Data, error)
}
