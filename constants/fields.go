package constants

// Canonical schema keys for an extracted invoice. These exact strings are the
// contract between the field reconciler, the completer, and the export layer.
const (
	FieldCommercialName          = "commercial_name"
	FieldTaxNumber               = "tax_number"
	FieldIncomeSourceSequence    = "income_source_sequence"
	FieldElectronicInvoiceNumber = "electronic_invoice_number"
	FieldSellerInvoiceNumber     = "seller_invoice_number"
	FieldInvoiceDate             = "invoice_date"
	FieldInvoiceType             = "invoice_type"
	FieldCurrency                = "currency"
	FieldBuyerName               = "buyer_name"
	FieldBuyerNumber             = "buyer_number"
	FieldPhoneNumber             = "phone_number"
	FieldCity                    = "city"
	FieldItems                   = "items"
	FieldTotalDiscount           = "total_discount"
	FieldGrandTotal              = "grand_total"
	FieldSubtotal                = "subtotal"
	FieldTotalTax                = "total_tax"
)

// Item-level canonical keys.
const (
	ItemDescription  = "description"
	ItemQuantity     = "quantity"
	ItemUnitPrice    = "unit_price"
	ItemAmount       = "amount"
	ItemDiscount     = "discount"
	ItemLineSubtotal = "line_subtotal"
	ItemTaxRate      = "tax_rate"
	ItemTaxAmount    = "tax_amount"
	ItemLineTotal    = "line_total"
)

// FieldAliases maps every known alternate key the inference service may emit
// to its canonical key: the Arabic labels printed on Jordan/Iraq invoices,
// English synonyms, and legacy keys from earlier schema versions. An alias is
// only applied when the canonical key is absent.
var FieldAliases = map[string]string{
	// Arabic labels
	"الاسم التجاري":             FieldCommercialName,
	"الرقم الضريبي":             FieldTaxNumber,
	"تسلسل مصدر الدخل":          FieldIncomeSourceSequence,
	"رقم الفاتورة الإلكترونية":  FieldElectronicInvoiceNumber,
	"رقم فاتورة البائع":         FieldSellerInvoiceNumber,
	"تاريخ إصدار الفاتورة":      FieldInvoiceDate,
	"تاريخ الفاتورة":            FieldInvoiceDate,
	"نوع الفاتورة":              FieldInvoiceType,
	"نوع العملة":                FieldCurrency,
	"العملة":                    FieldCurrency,
	"اسم المشتري":               FieldBuyerName,
	"رقم المشتري":               FieldBuyerNumber,
	"رقم الهاتف":                FieldPhoneNumber,
	"المدينة":                   FieldCity,
	"البنود":                    FieldItems,
	"مجموع قيمة الخصم":          FieldTotalDiscount,
	"إجمالي قيمة الفاتورة":      FieldGrandTotal,

	// English synonyms
	"income_source_number": FieldIncomeSourceSequence,
	"electronic_invoice":   FieldElectronicInvoiceNumber,
	"invoice_total":        FieldGrandTotal,
	"total":                FieldGrandTotal,
	"phone":                FieldPhoneNumber,

	// Legacy keys retained for backwards compatibility
	"invoice_number": FieldElectronicInvoiceNumber,
	"customer_name":  FieldBuyerName,
	"seller_name":    FieldCommercialName,
}

// ItemAliases is the same duality for line-item objects.
var ItemAliases = map[string]string{
	"الوصف":      ItemDescription,
	"الكمية":     ItemQuantity,
	"سعر الوحدة": ItemUnitPrice,
	"المبلغ":     ItemAmount,
	"الخصم":      ItemDiscount,
	"الاجمالي":   ItemLineTotal,
	"الإجمالي":   ItemLineTotal,
	"نسبة الضريبة": ItemTaxRate,
	"قيمة الضريبة": ItemTaxAmount,

	"item_description": ItemDescription,
	"qty":              ItemQuantity,
	"price":            ItemUnitPrice,
	"subtotal":         ItemLineSubtotal,
	"tax":              ItemTaxAmount,
	"total":            ItemLineTotal,
}

// PlaceholderTokens are markers of fabricated sample data. An extraction whose
// identifier or buyer name contains one of these is rejected outright.
var PlaceholderTokens = []string{
	"INV123", "12345", "XYZ", "Corporation", "Company", "Test",
	"Sample", "Example", "Demo", "Placeholder",
}

// TaxExempt is the sentinel a tax_rate collapses to when the invoice marks the
// line as exempt ("exempt" or "معفى").
const TaxExempt = "exempt"
