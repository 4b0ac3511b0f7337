package invoice

import (
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/numeric"
)

var (
	reNonDigit  = regexp.MustCompile(`[^\d]`)
	rePhoneJunk = regexp.MustCompile(`[\s\-\(\)]`)
	reDigitRun  = regexp.MustCompile(`\d+`)
)

// Reconcile maps a raw inference payload (keys may be canonical English names
// or the original Arabic labels, values may be mistyped) onto a mapping that
// uses only canonical keys, and cleans the individual fields. A payload that
// is not a mapping at all yields an empty mapping; downstream decoding
// supplies defaults. Reconcile is idempotent on already-canonical input.
func Reconcile(raw map[string]any) map[string]any {
	if raw == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(raw))
	canonical := canonicalKeySet()
	for k, v := range raw {
		if _, ok := canonical[k]; ok {
			out[k] = v
		}
	}

	// Alias resolution: fill a canonical key from its alias only when the
	// canonical key is absent. Sorted iteration keeps collisions deterministic.
	for _, alias := range slices.Sorted(maps.Keys(constants.FieldAliases)) {
		canon := constants.FieldAliases[alias]
		v, ok := raw[alias]
		if !ok {
			continue
		}
		if _, exists := out[canon]; !exists {
			out[canon] = v
		}
	}

	if items, ok := out[constants.FieldItems].([]any); ok {
		out[constants.FieldItems] = reconcileItems(items)
	}

	cleanField(out, constants.FieldTaxNumber, digitsOnly)
	cleanField(out, constants.FieldIncomeSourceSequence, digitsOnly)
	cleanField(out, constants.FieldPhoneNumber, cleanPhone)
	cleanField(out, constants.FieldInvoiceType, trimOnly)
	cleanField(out, constants.FieldCity, trimOnly)
	cleanSellerInvoiceNumber(out)

	return out
}

func canonicalKeySet() map[string]struct{} {
	keys := []string{
		constants.FieldCommercialName, constants.FieldTaxNumber,
		constants.FieldIncomeSourceSequence, constants.FieldElectronicInvoiceNumber,
		constants.FieldSellerInvoiceNumber, constants.FieldInvoiceDate,
		constants.FieldInvoiceType, constants.FieldCurrency,
		constants.FieldBuyerName, constants.FieldBuyerNumber,
		constants.FieldPhoneNumber, constants.FieldCity,
		constants.FieldItems, constants.FieldTotalDiscount,
		constants.FieldGrandTotal, constants.FieldSubtotal, constants.FieldTotalTax,
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// reconcileItems canonicalizes each raw item object. Items that are not
// mapping-typed are dropped silently.
func reconcileItems(items []any) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, reconcileItem(m))
	}
	return out
}

func reconcileItem(raw map[string]any) map[string]any {
	keys := []string{
		constants.ItemDescription, constants.ItemQuantity, constants.ItemUnitPrice,
		constants.ItemAmount, constants.ItemDiscount, constants.ItemLineSubtotal,
		constants.ItemTaxRate, constants.ItemTaxAmount, constants.ItemLineTotal,
	}
	out := make(map[string]any, len(raw))
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			out[k] = v
		}
	}
	for _, alias := range slices.Sorted(maps.Keys(constants.ItemAliases)) {
		canon := constants.ItemAliases[alias]
		v, ok := raw[alias]
		if !ok {
			continue
		}
		if _, exists := out[canon]; !exists {
			out[canon] = v
		}
	}
	return out
}

// cleanField applies a pure string transform to a populated field. An empty
// result removes the field.
func cleanField(m map[string]any, key string, clean func(string) string) {
	v, ok := m[key]
	if !ok || v == nil {
		return
	}
	s := stringify(v)
	if s == "" {
		return
	}
	cleaned := clean(s)
	if cleaned == "" {
		delete(m, key)
		return
	}
	m[key] = cleaned
}

// cleanSellerInvoiceNumber extracts the first contiguous run of digits from a
// textual seller invoice number ("Invoice No. 42" -> "42"). Values without
// any digits are left untouched.
func cleanSellerInvoiceNumber(m map[string]any) {
	v, ok := m[constants.FieldSellerInvoiceNumber]
	if !ok || v == nil {
		return
	}
	s, isStr := v.(string)
	if !isStr {
		return
	}
	if run := reDigitRun.FindString(numeric.Normalize(s)); run != "" {
		m[constants.FieldSellerInvoiceNumber] = run
	}
}

// digitsOnly keeps the digit characters of s. Arabic-indic digits are
// translated to Western first; patterns like \d only match ASCII here.
func digitsOnly(s string) string {
	return reNonDigit.ReplaceAllString(numeric.Normalize(s), "")
}

func cleanPhone(s string) string {
	s = rePhoneJunk.ReplaceAllString(s, "")
	return digitsOnly(s)
}

func trimOnly(s string) string {
	return strings.TrimSpace(s)
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
