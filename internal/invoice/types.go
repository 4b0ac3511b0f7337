// Package invoice holds the canonical invoice record extracted from a source
// document, the field reconciler that maps raw inference output onto it, and
// the completer that backfills derivable numeric fields.
//
// A record is built once per document, mutated in place by the
// reconcile/complete/align stages, and then handed to the export layer. It is
// never persisted.
package invoice

import (
	"encoding/json"
	"strings"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/numeric"
)

// Item is one row of the invoice's goods/services table. All monetary fields
// are nullable; printed values always take precedence over recomputed ones.
type Item struct {
	Description  *string  `json:"description,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	UnitPrice    *float64 `json:"unit_price,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	Discount     *float64 `json:"discount,omitempty"`
	LineSubtotal *float64 `json:"line_subtotal,omitempty"`
	TaxRate      *TaxRate `json:"tax_rate,omitempty"`
	TaxAmount    *float64 `json:"tax_amount,omitempty"`
	LineTotal    *float64 `json:"line_total,omitempty"`
}

// Data is the canonical invoice record. Every text field must derive from
// text actually present in the source document.
type Data struct {
	// Seller
	CommercialName       *string `json:"commercial_name,omitempty"`
	TaxNumber            *string `json:"tax_number,omitempty"`
	IncomeSourceSequence *string `json:"income_source_sequence,omitempty"`

	// Invoice identification
	ElectronicInvoiceNumber *string `json:"electronic_invoice_number,omitempty"`
	SellerInvoiceNumber     *string `json:"seller_invoice_number,omitempty"`
	InvoiceDate             *string `json:"invoice_date,omitempty"` // DD-MM-YYYY
	InvoiceType             *string `json:"invoice_type,omitempty"`
	Currency                *string `json:"currency,omitempty"`

	// Buyer
	BuyerName   *string `json:"buyer_name,omitempty"`
	BuyerNumber *string `json:"buyer_number,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	City        *string `json:"city,omitempty"`

	// Line items, in table row order.
	Items []*Item `json:"items,omitempty"`

	// Invoice-level totals. Subtotal and TotalTax are the legacy aliases kept
	// for backwards compatibility with earlier schema versions.
	TotalDiscount *float64 `json:"total_discount,omitempty"`
	GrandTotal    *float64 `json:"grand_total,omitempty"`
	Subtotal      *float64 `json:"subtotal,omitempty"`
	TotalTax      *float64 `json:"total_tax,omitempty"`
}

// TaxRate is either a numeric percentage or the "exempt" sentinel. When the
// source text is neither, the original wording is preserved in Raw.
type TaxRate struct {
	Exempt bool
	Rate   *float64
	Raw    string
}

func (t TaxRate) MarshalJSON() ([]byte, error) {
	switch {
	case t.Exempt:
		return json.Marshal(constants.TaxExempt)
	case t.Rate != nil:
		return json.Marshal(*t.Rate)
	default:
		return json.Marshal(t.Raw)
	}
}

func (t *TaxRate) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if tr := taxRateFromAny(v); tr != nil {
		*t = *tr
	}
	return nil
}

// taxRateFromAny normalizes a raw tax-rate value: a string containing "exempt"
// or "معفى" collapses to the sentinel, any other string goes through the
// numeric normalizer, and numbers pass through as floats.
func taxRateFromAny(v any) *TaxRate {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		f := t
		return &TaxRate{Rate: &f}
	case int:
		f := float64(t)
		return &TaxRate{Rate: &f}
	case string:
		if strings.Contains(strings.ToLower(t), constants.TaxExempt) || strings.Contains(t, "معفى") {
			return &TaxRate{Exempt: true}
		}
		if f, ok := numeric.Parse(t); ok {
			return &TaxRate{Rate: &f}
		}
		return &TaxRate{Raw: t}
	default:
		return nil
	}
}
