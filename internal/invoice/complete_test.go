package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestCompleteItemDerivesAmountAndTotals(t *testing.T) {
	it := &Item{Quantity: f(2), UnitPrice: f(50)}
	CompleteItem(it)

	require.NotNil(t, it.Amount)
	require.NotNil(t, it.LineSubtotal)
	require.NotNil(t, it.LineTotal)
	assert.Equal(t, 100.0, *it.Amount)
	assert.Equal(t, 100.0, *it.LineSubtotal)
	assert.Equal(t, 100.0, *it.LineTotal)
}

func TestCompleteItemAppliesDiscountAndTax(t *testing.T) {
	it := &Item{
		Quantity:  f(2),
		UnitPrice: f(50),
		Discount:  f(10),
		TaxAmount: f(14.4),
	}
	CompleteItem(it)

	require.NotNil(t, it.LineTotal)
	assert.InDelta(t, 104.4, *it.LineTotal, 1e-9)
}

func TestCompleteItemNeverOverwritesPrintedValues(t *testing.T) {
	it := &Item{Quantity: f(2), UnitPrice: f(50), Amount: f(99), LineTotal: f(95)}
	CompleteItem(it)

	assert.Equal(t, 99.0, *it.Amount)
	assert.Equal(t, 95.0, *it.LineTotal)
}

func TestCompleteBackfillsInvoiceTotals(t *testing.T) {
	d := &Data{
		Items: []*Item{
			{Quantity: f(2), UnitPrice: f(50)},
			{Quantity: f(1), UnitPrice: f(50)},
		},
		TotalTax: f(22.5),
	}
	Complete(d)

	require.NotNil(t, d.Subtotal)
	assert.Equal(t, 150.0, *d.Subtotal)
	require.NotNil(t, d.GrandTotal)
	assert.InDelta(t, 172.5, *d.GrandTotal, 1e-9)
}

func TestCompleteGrandTotalFromSubtotalOnly(t *testing.T) {
	d := &Data{Items: []*Item{{Quantity: f(3), UnitPrice: f(10)}}}
	Complete(d)

	require.NotNil(t, d.GrandTotal)
	assert.Equal(t, 30.0, *d.GrandTotal)
}

func TestCompleteIgnoresZeroSums(t *testing.T) {
	d := &Data{Items: []*Item{{Quantity: f(0), UnitPrice: f(10)}}}
	Complete(d)

	assert.Nil(t, d.Subtotal)
	assert.Nil(t, d.GrandTotal)
}

func TestCompleteNoItems(t *testing.T) {
	d := &Data{GrandTotal: f(75)}
	Complete(d)

	assert.Nil(t, d.Subtotal)
	assert.Equal(t, 75.0, *d.GrandTotal)
}

func TestCompleteIdempotent(t *testing.T) {
	d := &Data{
		Items: []*Item{{Quantity: f(2), UnitPrice: f(50), Discount: f(5)}},
	}
	Complete(d)
	first := *d.GrandTotal
	Complete(d)

	assert.Equal(t, first, *d.GrandTotal)
	assert.Len(t, d.Items, 1)
}
