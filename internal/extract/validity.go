package extract

import (
	"strings"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
)

// Valid is the gate before accepting any strategy's result. It rejects only
// obvious placeholder output and fully-empty records; weak but plausible
// extractions pass. Preferring false positives over discarding real invoices
// is deliberate.
func Valid(d *invoice.Data) bool {
	if d == nil {
		return false
	}

	identifier := firstSet(d.ElectronicInvoiceNumber, d.SellerInvoiceNumber)
	if identifier != nil && containsPlaceholder(*identifier) {
		return false
	}
	if d.BuyerName != nil && containsPlaceholder(*d.BuyerName) {
		return false
	}

	if identifier == nil && d.BuyerName == nil && len(d.Items) == 0 && d.GrandTotal == nil {
		return false
	}
	return true
}

func containsPlaceholder(s string) bool {
	lower := strings.ToLower(s)
	for _, tok := range constants.PlaceholderTokens {
		if strings.Contains(lower, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}

func firstSet(ptrs ...*string) *string {
	for _, p := range ptrs {
		if p != nil && *p != "" {
			return p
		}
	}
	return nil
}
