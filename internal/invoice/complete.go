package invoice

// Complete deterministically fills derivable monetary fields on every item and
// then backfills invoice-level totals from the item sums. Printed values are
// never overwritten; each backfill fires only when its target is absent.
// Complete is pure relative to its input state and idempotent.
func Complete(d *Data) {
	for _, it := range d.Items {
		CompleteItem(it)
	}

	if d.Subtotal == nil {
		if sum, any := sumOf(d.Items, func(it *Item) *float64 { return it.LineSubtotal }); any && sum > 0 {
			d.Subtotal = &sum
		}
	}

	if d.TotalTax == nil {
		if sum, any := sumOf(d.Items, func(it *Item) *float64 { return it.TaxAmount }); any && sum > 0 {
			d.TotalTax = &sum
		}
	}

	if d.GrandTotal == nil {
		switch {
		case d.Subtotal != nil && d.TotalTax != nil:
			gt := *d.Subtotal + *d.TotalTax
			d.GrandTotal = &gt
		case d.Subtotal != nil:
			gt := *d.Subtotal
			d.GrandTotal = &gt
		case d.TotalTax != nil:
			// Only tax is known; fall back to summing the line totals.
			if sum, any := sumOf(d.Items, func(it *Item) *float64 { return it.LineTotal }); any && sum > 0 {
				d.GrandTotal = &sum
			}
		}
	}
}

// CompleteItem fills the item's missing monetary fields from the ones present.
//
// A zero or negative invoice-level sum is treated as "no information" by
// Complete, so partially-populated items never fabricate totals.
func CompleteItem(it *Item) {
	if it.Amount == nil && it.Quantity != nil && it.UnitPrice != nil {
		a := *it.Quantity * *it.UnitPrice
		it.Amount = &a
	}

	if it.LineSubtotal == nil && it.Quantity != nil && it.UnitPrice != nil {
		ls := *it.Quantity * *it.UnitPrice
		it.LineSubtotal = &ls
	}

	if it.LineTotal == nil && it.LineSubtotal != nil {
		discount := 0.0
		if it.Discount != nil {
			discount = *it.Discount
		}
		lt := *it.LineSubtotal - discount
		if it.TaxAmount != nil {
			lt += *it.TaxAmount
		}
		it.LineTotal = &lt
	}
}

func sumOf(items []*Item, field func(*Item) *float64) (sum float64, present bool) {
	for _, it := range items {
		if v := field(it); v != nil {
			sum += *v
			present = true
		}
	}
	return sum, present
}
