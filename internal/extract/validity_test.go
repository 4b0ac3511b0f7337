package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fotara-tools/invoice2excel/internal/invoice"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestValidRejectsNil(t *testing.T) {
	assert.False(t, Valid(nil))
}

func TestValidRejectsPlaceholderIdentifier(t *testing.T) {
	assert.False(t, Valid(&invoice.Data{
		ElectronicInvoiceNumber: s("Sample123"),
	}))
	assert.False(t, Valid(&invoice.Data{
		SellerInvoiceNumber: s("INV123"),
		GrandTotal:          f(100),
	}))
}

func TestValidRejectsPlaceholderBuyer(t *testing.T) {
	assert.False(t, Valid(&invoice.Data{
		ElectronicInvoiceNumber: s("JO-2024-001"),
		BuyerName:               s("Test Company"),
	}))
}

func TestValidRejectsFullyEmpty(t *testing.T) {
	assert.False(t, Valid(&invoice.Data{}))
	assert.False(t, Valid(&invoice.Data{City: s("عمان")}))
}

func TestValidAcceptsWeakExtractions(t *testing.T) {
	// No identifier and no buyer, but a line item exists.
	assert.True(t, Valid(&invoice.Data{
		Items: []*invoice.Item{{Description: s("منتج")}},
	}))
	// Only a grand total.
	assert.True(t, Valid(&invoice.Data{GrandTotal: f(75)}))
	// Only a buyer name.
	assert.True(t, Valid(&invoice.Data{BuyerName: s("محمد")}))
}

func TestValidAcceptsRealRecord(t *testing.T) {
	assert.True(t, Valid(&invoice.Data{
		ElectronicInvoiceNumber: s("EIN-7781"),
		BuyerName:               s("شركة الأمل"),
		GrandTotal:              f(172.5),
	}))
}

func TestValidSellerInvoiceNumberAsFallbackIdentifier(t *testing.T) {
	// The seller number is only consulted when the electronic number is absent.
	assert.True(t, Valid(&invoice.Data{
		ElectronicInvoiceNumber: s("EIN-1"),
		SellerInvoiceNumber:     s("Sample"),
	}))
}
