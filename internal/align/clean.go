package align

import (
	"math"
	"strings"

	"github.com/fotara-tools/invoice2excel/internal/numeric"
)

// cleanDescription strips two table-bleed artifacts from a description:
// a single row-index digit glued to the last word, and a leading quantity
// glued to the first word. Both trims are conservative and never touch
// numbers elsewhere in the string.
func cleanDescription(desc string, quantity *float64) string {
	tokens := strings.Fields(desc)
	if len(tokens) == 0 {
		return desc
	}

	tokens[len(tokens)-1] = trimTrailingRowIndex(tokens[len(tokens)-1])
	tokens[0] = trimLeadingQuantity(tokens[0], quantity)

	return strings.Join(tokens, " ")
}

// trimTrailingRowIndex removes a trailing digit 1-9 from the token only when
// that digit is the token's entire numeric suffix ("منتج5" -> "منتج").
// Longer suffixes are real numbers, not a row index.
func trimTrailingRowIndex(tok string) string {
	runes := []rune(tok)
	i := len(runes)
	for i > 0 && isDigit(runes[i-1]) {
		i--
	}
	suffix := runes[i:]
	if len(suffix) == 1 && isRowIndexDigit(suffix[0]) && i > 0 {
		return string(runes[:i])
	}
	return tok
}

// isRowIndexDigit reports a 1-9 digit in either script; zero is never a row
// index.
func isRowIndexDigit(r rune) bool {
	return (r >= '1' && r <= '9') || (r >= '١' && r <= '٩')
}

// trimLeadingQuantity removes a numeric prefix glued to the first word only
// when its value matches the item's quantity ("3قطعة" with quantity 3 ->
// "قطعة").
func trimLeadingQuantity(tok string, quantity *float64) string {
	if quantity == nil {
		return tok
	}
	runes := []rune(tok)
	i := 0
	for i < len(runes) && (isDigit(runes[i]) || runes[i] == '.') {
		i++
	}
	if i == 0 || i == len(runes) {
		return tok
	}
	v, ok := numeric.Parse(string(runes[:i]))
	if !ok || math.Abs(v-*quantity) > tolerance {
		return tok
	}
	return string(runes[i:])
}

func isDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= '٠' && r <= '٩')
}
