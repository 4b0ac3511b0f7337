package export

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fotara-tools/invoice2excel/constants"
)

// Service produces the XLSX workbook for a batch of flattened invoice rows.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const sheetName = "الفواتير"

// BuildWorkbook returns an XLSX workbook (as bytes) with right-to-left view,
// bold Arabic headers, monetary number formats, and content-sized columns.
func (s *Service) BuildWorkbook(rows []Row) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	rtl := true
	if err := f.SetSheetView(sheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &moneyFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	wholeFmt := "#,##0"
	wholeStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &wholeFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	textStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	widths := make([]int, len(constants.ArabicHeaders))

	for col, header := range constants.ArabicHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
		widths[col] = max(widths[col], len([]rune(header)))
	}

	for i, row := range rows {
		for col, header := range constants.ArabicHeaders {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			value := row[header]
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
			_ = f.SetCellStyle(sheetName, cell, cell, cellStyle(header, value, moneyStyle, wholeStyle, textStyle))
			widths[col] = max(widths[col], len([]rune(fmt.Sprintf("%v", value))))
		}
	}

	for col := range constants.ArabicHeaders {
		name, _ := excelize.ColumnNumberToName(col + 1)
		width := float64(min(widths[col]+2, 50))
		_ = f.SetColWidth(sheetName, name, name, width)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// cellStyle picks the numeric format for monetary columns, a whole-number
// format for integral quantities, and centered text for everything else.
func cellStyle(header string, value any, money, whole, text int) int {
	v, isNum := value.(float64)
	if _, numericCol := constants.NumericHeaders[header]; !numericCol || !isNum {
		return text
	}
	if header == "الكمية" && v == math.Trunc(v) {
		return whole
	}
	return money
}
