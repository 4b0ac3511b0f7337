// Package align restores verbatim source wording for line-item descriptions.
//
// The inference service may paraphrase or reorder a description; for
// text-layer documents the exact wording is recoverable by locating the table
// row inside the document's own text lines. Locating by numeric anchor (the
// row's known numbers) rather than text similarity guards against the
// inference step inventing phrasing that is not in the source.
package align

import (
	"math"
	"strings"

	"github.com/fotara-tools/invoice2excel/internal/invoice"
	"github.com/fotara-tools/invoice2excel/internal/numeric"
)

// tolerance is the absolute slack allowed when matching a token's numeric
// value against a known item value. Empirically chosen; may misfire on
// legitimate single-digit quantities embedded in descriptions.
const tolerance = 0.01

// maxWindow is the number of consecutive lines a wrapped description may span.
const maxWindow = 3

// Descriptions aligns every item description in d against the source lines.
// It is a no-op for items where no alignment path succeeds; the cleanup trims
// run on the final description either way.
func Descriptions(d *invoice.Data, lines []string) {
	if len(lines) == 0 {
		return
	}
	for _, it := range d.Items {
		alignItem(it, lines)
	}
}

func alignItem(it *invoice.Item, lines []string) {
	if desc, ok := numericAnchor(it, lines); ok {
		it.Description = &desc
	} else if it.Description != nil {
		if line, ok := bagOfWords(*it.Description, lines); ok {
			it.Description = &line
		}
	}

	if it.Description != nil {
		cleaned := cleanDescription(*it.Description, it.Quantity)
		it.Description = &cleaned
	}
}

// numericAnchor locates the item's table row by searching for a contiguous run
// of five numeric tokens matching (quantity, unit_price, amount, discount,
// line_total). Windows of one to three merged lines handle descriptions that
// wrap. The description is the window text preceding the first matched number;
// when the row leads with the quantity column that slice is empty, and the
// tokens between the quantity and the unit price are taken instead.
func numericAnchor(it *invoice.Item, lines []string) (string, bool) {
	if it.Quantity == nil || it.UnitPrice == nil || it.Amount == nil ||
		it.Discount == nil || it.LineTotal == nil {
		return "", false
	}
	target := [5]float64{*it.Quantity, *it.UnitPrice, *it.Amount, *it.Discount, *it.LineTotal}

	// Narrow windows first: a row fully contained in one line must win over a
	// wider window that would absorb unrelated preceding lines.
	for width := 1; width <= maxWindow; width++ {
		for start := 0; start+width <= len(lines); start++ {
			window := strings.Join(lines[start:start+width], " ")
			if desc, ok := matchWindow(window, target); ok {
				return desc, true
			}
		}
	}
	return "", false
}

type numToken struct {
	pos int
	val float64
}

func matchWindow(window string, target [5]float64) (string, bool) {
	tokens := strings.Fields(window)
	nums := make([]numToken, 0, len(tokens))
	for i, tok := range tokens {
		if v, ok := numeric.Parse(tok); ok {
			nums = append(nums, numToken{pos: i, val: v})
		}
	}

	for i := 0; i+len(target) <= len(nums); i++ {
		run := nums[i : i+len(target)]
		if !runMatches(run, target) {
			continue
		}
		desc := strings.Join(tokens[:run[0].pos], " ")
		if desc == "" {
			// Quantity-first row layout: the description sits between the
			// quantity token and the unit price token.
			desc = strings.Join(tokens[run[0].pos+1:run[1].pos], " ")
		}
		if desc == "" {
			continue
		}
		return desc, true
	}
	return "", false
}

func runMatches(run []numToken, target [5]float64) bool {
	for i, want := range target {
		if math.Abs(run[i].val-want) > tolerance {
			return false
		}
	}
	return true
}

// bagOfWords finds a single source line whose non-numeric tokens are a
// superset of the description's non-numeric tokens, and returns that line
// verbatim (trimmed), preserving the source's own word order and any extra
// tokens.
func bagOfWords(desc string, lines []string) (string, bool) {
	required := nonNumericTokens(desc)
	if len(required) == 0 {
		return "", false
	}

	for _, line := range lines {
		have := nonNumericTokens(line)
		if containsAll(have, required) {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}

func nonNumericTokens(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		if _, ok := numeric.Parse(tok); ok {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

func containsAll(have, want map[string]struct{}) bool {
	for tok := range want {
		if _, ok := have[tok]; !ok {
			return false
		}
	}
	return true
}
