// Package numeric converts mixed Arabic/Western digit strings into canonical
// numeric values. Every function degrades to "no value" on malformed input
// instead of returning an error.
package numeric

import (
	"strconv"
	"strings"
)

// digitReplacer maps each Arabic-indic digit to its Western equivalent and
// both the Arabic decimal separator (٫) and thousands separator (٬) to ".".
var digitReplacer = strings.NewReplacer(
	"٠", "0",
	"١", "1",
	"٢", "2",
	"٣", "3",
	"٤", "4",
	"٥", "5",
	"٦", "6",
	"٧", "7",
	"٨", "8",
	"٩", "9",
	"٫", ".",
	"٬", ".",
)

// Normalize translates Arabic digits and separators to Western and strips
// commas and spaces.
func Normalize(s string) string {
	normalized := digitReplacer.Replace(s)
	normalized = strings.ReplaceAll(normalized, ",", "")
	normalized = strings.ReplaceAll(normalized, " ", "")
	return normalized
}

// Parse extracts a float from an arbitrary string. After normalization it
// keeps only digit characters and decimal points; anything unparseable
// (no digits, multiple decimal points) yields ok=false.
func Parse(s string) (float64, bool) {
	normalized := Normalize(s)
	if normalized == "" {
		return 0, false
	}
	var b strings.Builder
	for _, r := range normalized {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FromAny coerces a decoded JSON value (nil, number, or string) to a float.
// Returns nil when no number can be recovered.
func FromAny(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		f := t
		return &f
	case int:
		f := float64(t)
		return &f
	case string:
		if f, ok := Parse(t); ok {
			return &f
		}
		return nil
	default:
		return nil
	}
}
