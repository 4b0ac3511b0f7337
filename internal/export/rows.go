package export

import (
	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
)

// Row is one flattened spreadsheet row keyed by Arabic column header.
type Row map[string]any

// FlattenRows expands one invoice into one row per line item, repeating the
// header fields on every row. The invoice-level grand total is attached only
// to the first row so a human reading the flattened table cannot double-count
// it. An invoice without items still yields a single row.
func FlattenRows(d *invoice.Data) []Row {
	header := Row{
		"الاسم التجاري":            text(d.CommercialName),
		"الرقم الضريبي":            text(d.TaxNumber),
		"تسلسل مصدر الدخل":         text(d.IncomeSourceSequence),
		"رقم الفاتورة الإلكترونية": text(d.ElectronicInvoiceNumber),
		"رقم فاتورة البائع":        text(d.SellerInvoiceNumber),
		"تاريخ إصدار الفاتورة":     text(d.InvoiceDate),
		"نوع الفاتورة":             text(d.InvoiceType),
		"نوع العملة":               text(d.Currency),
		"اسم المشتري":              text(d.BuyerName),
		"رقم الهاتف":               text(d.PhoneNumber),
		"المدينة":                  text(d.City),
	}

	var rows []Row
	if len(d.Items) > 0 {
		for _, it := range d.Items {
			row := cloneRow(header)
			row["الوصف"] = text(it.Description)
			row["الكمية"] = num(it.Quantity)
			row["سعر الوحدة"] = num(it.UnitPrice)
			row["المبلغ"] = itemAmount(it)
			row["الخصم"] = num(it.Discount)
			row["الاجمالي"] = itemLineTotal(it)
			row["إجمالي قيمة الفاتورة"] = ""
			rows = append(rows, row)
		}
	} else {
		row := cloneRow(header)
		row["الوصف"] = ""
		row["الكمية"] = 0.0
		row["سعر الوحدة"] = 0.0
		row["المبلغ"] = 0.0
		row["الخصم"] = 0.0
		row["الاجمالي"] = 0.0
		row["إجمالي قيمة الفاتورة"] = ""
		rows = append(rows, row)
	}

	rows[0]["إجمالي قيمة الفاتورة"] = num(d.GrandTotal)
	return rows
}

// itemAmount prefers the printed amount, then quantity×unit_price, then the
// line subtotal.
func itemAmount(it *invoice.Item) float64 {
	switch {
	case it.Amount != nil:
		return *it.Amount
	case it.Quantity != nil && it.UnitPrice != nil:
		return *it.Quantity * *it.UnitPrice
	case it.LineSubtotal != nil:
		return *it.LineSubtotal
	default:
		return 0
	}
}

// itemLineTotal prefers the printed line total, then recomputes from the
// subtotal, then from amount minus discount.
func itemLineTotal(it *invoice.Item) float64 {
	switch {
	case it.LineTotal != nil:
		return *it.LineTotal
	case it.LineSubtotal != nil:
		return *it.LineSubtotal - num(it.Discount) + num(it.TaxAmount)
	default:
		return itemAmount(it) - num(it.Discount)
	}
}

func cloneRow(r Row) Row {
	out := make(Row, len(constants.ArabicHeaders))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
