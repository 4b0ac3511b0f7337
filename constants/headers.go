package constants

// ArabicHeaders is the fixed spreadsheet column order (read right-to-left in
// the rendered sheet). The export layer writes exactly these, in this order.
var ArabicHeaders = []string{
	"الاسم التجاري",            // commercial name
	"الرقم الضريبي",            // tax number
	"تسلسل مصدر الدخل",         // income source sequence
	"رقم الفاتورة الإلكترونية", // electronic invoice number
	"رقم فاتورة البائع",        // seller invoice number
	"تاريخ إصدار الفاتورة",     // invoice issue date
	"نوع الفاتورة",             // invoice type
	"نوع العملة",               // currency
	"اسم المشتري",              // buyer name
	"رقم الهاتف",               // phone number
	"المدينة",                  // city
	"الوصف",                    // description
	"الكمية",                   // quantity
	"سعر الوحدة",               // unit price
	"المبلغ",                   // amount
	"الخصم",                    // discount
	"الاجمالي",                 // line total
	"إجمالي قيمة الفاتورة",     // grand total
}

// NumericHeaders are the columns formatted as numbers in the workbook.
var NumericHeaders = map[string]struct{}{
	"الكمية":               {},
	"سعر الوحدة":           {},
	"المبلغ":               {},
	"الخصم":                {},
	"الاجمالي":             {},
	"إجمالي قيمة الفاتورة": {},
}
