package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
)

func TestBuildWorkbook(t *testing.T) {
	rows := FlattenRows(&invoice.Data{
		CommercialName: s("شركة الأمل"),
		GrandTotal:     f(130),
		Items: []*invoice.Item{
			{Description: s("منتج أ"), Quantity: f(3), UnitPrice: f(10), LineTotal: f(30)},
			{Description: s("منتج ب"), Quantity: f(2), UnitPrice: f(50), LineTotal: f(100)},
		},
	})

	b, err := NewService(nil).BuildWorkbook(rows)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	require.Contains(t, wb.GetSheetList(), "الفواتير")

	got, err := wb.GetRows("الفواتير", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, constants.ArabicHeaders, got[0])

	// First data row carries the grand total, the second leaves it blank.
	gtCol := len(constants.ArabicHeaders) - 1
	assert.Equal(t, "130", got[1][gtCol])
	if len(got[2]) > gtCol {
		assert.Equal(t, "", got[2][gtCol])
	}
}

func TestBuildWorkbookEmptyRows(t *testing.T) {
	b, err := NewService(nil).BuildWorkbook(nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	got, err := wb.GetRows("الفواتير")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, constants.ArabicHeaders, got[0])
}
