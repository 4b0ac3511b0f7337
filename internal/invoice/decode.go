package invoice

import (
	"strings"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/numeric"
)

// Decode builds a typed record from a reconciled (canonical-key) mapping.
// Mistyped values degrade to absent fields; Decode never fails.
func Decode(m map[string]any) *Data {
	d := &Data{
		CommercialName:          textPtr(m[constants.FieldCommercialName]),
		TaxNumber:               textPtr(m[constants.FieldTaxNumber]),
		IncomeSourceSequence:    textPtr(m[constants.FieldIncomeSourceSequence]),
		ElectronicInvoiceNumber: textPtr(m[constants.FieldElectronicInvoiceNumber]),
		SellerInvoiceNumber:     textPtr(m[constants.FieldSellerInvoiceNumber]),
		InvoiceDate:             textPtr(m[constants.FieldInvoiceDate]),
		InvoiceType:             textPtr(m[constants.FieldInvoiceType]),
		Currency:                textPtr(m[constants.FieldCurrency]),
		BuyerName:               textPtr(m[constants.FieldBuyerName]),
		BuyerNumber:             textPtr(m[constants.FieldBuyerNumber]),
		PhoneNumber:             textPtr(m[constants.FieldPhoneNumber]),
		City:                    textPtr(m[constants.FieldCity]),
		TotalDiscount:           numeric.FromAny(m[constants.FieldTotalDiscount]),
		GrandTotal:              numeric.FromAny(m[constants.FieldGrandTotal]),
		Subtotal:                numeric.FromAny(m[constants.FieldSubtotal]),
		TotalTax:                numeric.FromAny(m[constants.FieldTotalTax]),
	}

	if items, ok := m[constants.FieldItems].([]any); ok {
		for _, it := range items {
			im, ok := it.(map[string]any)
			if !ok {
				continue
			}
			d.Items = append(d.Items, decodeItem(im))
		}
	}
	return d
}

func decodeItem(m map[string]any) *Item {
	return &Item{
		Description:  textPtr(m[constants.ItemDescription]),
		Quantity:     numeric.FromAny(m[constants.ItemQuantity]),
		UnitPrice:    numeric.FromAny(m[constants.ItemUnitPrice]),
		Amount:       numeric.FromAny(m[constants.ItemAmount]),
		Discount:     numeric.FromAny(m[constants.ItemDiscount]),
		LineSubtotal: numeric.FromAny(m[constants.ItemLineSubtotal]),
		TaxRate:      taxRateFromAny(m[constants.ItemTaxRate]),
		TaxAmount:    numeric.FromAny(m[constants.ItemTaxAmount]),
		LineTotal:    numeric.FromAny(m[constants.ItemLineTotal]),
	}
}

func textPtr(v any) *string {
	s := stringify(v)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
