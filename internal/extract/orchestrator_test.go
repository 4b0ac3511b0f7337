package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
)

type stubStrategy struct {
	name string
	d    *invoice.Data
	err  error
}

func (s *stubStrategy) Name() string { return s.name }
func (s *stubStrategy) Extract(context.Context, Document) (*invoice.Data, error) {
	return s.d, s.err
}

var testDoc = Document{Path: "/tmp/x.pdf", Name: "x.pdf", Format: constants.PDF}

func TestOrchestratorFirstAcceptedWins(t *testing.T) {
	want := &invoice.Data{GrandTotal: f(75)}
	orch := NewOrchestrator(nil,
		&stubStrategy{name: "a", d: want},
		&stubStrategy{name: "b", d: &invoice.Data{GrandTotal: f(1)}},
	)

	got, err := orch.Extract(context.Background(), testDoc)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestOrchestratorFallsThroughUnavailable(t *testing.T) {
	want := &invoice.Data{BuyerName: s("محمد")}
	orch := NewOrchestrator(nil,
		&stubStrategy{name: "a", err: common.WrapError(common.ErrUnavailable, "no text layer")},
		&stubStrategy{name: "b", d: want},
	)

	got, err := orch.Extract(context.Background(), testDoc)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestOrchestratorAbsorbsStrategyFailure(t *testing.T) {
	want := &invoice.Data{GrandTotal: f(30)}
	orch := NewOrchestrator(nil,
		&stubStrategy{name: "a", err: errors.New("malformed output")},
		&stubStrategy{name: "b", d: want},
	)

	got, err := orch.Extract(context.Background(), testDoc)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestOrchestratorSkipsRejectedResult(t *testing.T) {
	want := &invoice.Data{GrandTotal: f(30)}
	orch := NewOrchestrator(nil,
		&stubStrategy{name: "a", d: &invoice.Data{ElectronicInvoiceNumber: s("Sample123")}},
		&stubStrategy{name: "b", d: want},
	)

	got, err := orch.Extract(context.Background(), testDoc)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestOrchestratorInferenceErrorStopsRun(t *testing.T) {
	second := &stubStrategy{name: "b", d: &invoice.Data{GrandTotal: f(30)}}
	orch := NewOrchestrator(nil,
		&stubStrategy{name: "a", err: common.NewAppError("RATE_LIMITED", "429 from inference service", common.ErrRateLimited)},
		second,
	)

	_, err := orch.Extract(context.Background(), testDoc)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRateLimited)
}

func TestOrchestratorExhaustedReturnsNoData(t *testing.T) {
	orch := NewOrchestrator(nil,
		&stubStrategy{name: "a", err: common.WrapError(common.ErrUnavailable, "nope")},
		&stubStrategy{name: "b", d: &invoice.Data{}},
	)

	_, err := orch.Extract(context.Background(), testDoc)
	assert.ErrorIs(t, err, common.ErrNoData)
}
