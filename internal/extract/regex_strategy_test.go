package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexStrategyParsesLabelledDocument(t *testing.T) {
	lines := []string{
		"فاتورة ضريبية",
		"الاسم التجاري: شركة الأمل",
		"الرقم الضريبي: ١٢٣٤٥٦",
		"اسم المشتري: محمد",
		"3 قطعة منتج أ 10.00 30.00 0.00 30.00",
		"إجمالي قيمة الفاتورة: 30.00",
	}
	strat := &RegexStrategy{lines: func(string) ([]string, error) { return lines, nil }}

	d, err := strat.Extract(context.Background(), testDoc)
	require.NoError(t, err)

	require.NotNil(t, d.CommercialName)
	assert.Equal(t, "شركة الأمل", *d.CommercialName)
	require.NotNil(t, d.TaxNumber)
	assert.Equal(t, "123456", *d.TaxNumber)
	require.NotNil(t, d.BuyerName)
	assert.Equal(t, "محمد", *d.BuyerName)

	require.Len(t, d.Items, 1)
	assert.Equal(t, "قطعة منتج أ", *d.Items[0].Description)
	assert.Equal(t, 3.0, *d.Items[0].Quantity)
	assert.Equal(t, 10.0, *d.Items[0].UnitPrice)
	assert.Equal(t, 30.0, *d.Items[0].LineTotal)

	require.NotNil(t, d.GrandTotal)
	assert.Equal(t, 30.0, *d.GrandTotal)
}

func TestRegexStrategyNoLabelsNoItems(t *testing.T) {
	strat := &RegexStrategy{lines: func(string) ([]string, error) {
		return []string{"نص حر لا يشبه فاتورة"}, nil
	}}

	d, err := strat.Extract(context.Background(), testDoc)
	require.NoError(t, err)
	assert.False(t, Valid(d))
}

func TestParseItemRow(t *testing.T) {
	it := parseItemRow("3 قطعة منتج أ 10.00 30.00 0.00 30.00")
	require.NotNil(t, it)
	assert.Equal(t, "قطعة منتج أ", it["description"])
	assert.Equal(t, 3.0, it["quantity"])

	assert.Nil(t, parseItemRow("الاسم التجاري بدون أرقام"))
	assert.Nil(t, parseItemRow("3 10.00 30.00 0.00 30.00"))
}
