package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// inference output as a generic map. It is deliberately permissive: every
// field is nullable, and unknown keys are allowed because the service may
// answer with the Arabic labels the reconciler resolves later. The schema only
// rejects structurally unusable payloads (non-object root, non-array items,
// wildly mistyped values).
func BuildInvoiceJSONSchema() map[string]any {
	textProp := map[string]any{"type": []string{"string", "number", "null"}}
	numProp := map[string]any{"type": []string{"number", "string", "null"}}

	itemProps := map[string]any{
		"description":   textProp,
		"quantity":      numProp,
		"unit_price":    numProp,
		"amount":        numProp,
		"discount":      numProp,
		"line_subtotal": numProp,
		"tax_rate":      map[string]any{"type": []string{"number", "string", "null"}},
		"tax_amount":    numProp,
		"line_total":    numProp,
	}

	props := map[string]any{
		"commercial_name":           textProp,
		"tax_number":                textProp,
		"income_source_sequence":    textProp,
		"electronic_invoice_number": textProp,
		"seller_invoice_number":     textProp,
		"invoice_date":              textProp,
		"invoice_type":              textProp,
		"currency":                  textProp,
		"buyer_name":                textProp,
		"buyer_number":              textProp,
		"phone_number":              textProp,
		"city":                      textProp,
		"items": map[string]any{
			"type": []string{"array", "null"},
			"items": map[string]any{
				"type":                 "object",
				"properties":           itemProps,
				"additionalProperties": true,
			},
		},
		"total_discount": numProp,
		"grand_total":    numProp,
		"subtotal":       numProp,
		"total_tax":      numProp,
	}

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": true,
	}
}

var (
	invoiceSchemaOnce sync.Once
	invoiceSchema     *jsonschema.Schema
	invoiceSchemaErr  error
)

// ValidateInvoiceJSON validates raw inference output against the invoice
// schema. The schema is fixed, so it is compiled once per process.
func ValidateInvoiceJSON(raw []byte) error {
	invoiceSchemaOnce.Do(func() {
		b, err := json.Marshal(BuildInvoiceJSONSchema())
		if err != nil {
			invoiceSchemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("invoice.schema.json", bytes.NewReader(b)); err != nil {
			invoiceSchemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		invoiceSchema, invoiceSchemaErr = compiler.Compile("invoice.schema.json")
	})
	if invoiceSchemaErr != nil {
		return invoiceSchemaErr
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := invoiceSchema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
