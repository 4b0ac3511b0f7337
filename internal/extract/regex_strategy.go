package extract

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/fotara-tools/invoice2excel/constants"
	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/invoice"
	"github.com/fotara-tools/invoice2excel/internal/numeric"
	"github.com/fotara-tools/invoice2excel/internal/source"
)

// RegexStrategy is the deterministic label-based parser: no inference service
// involved. It survives as a constructible alternate for documents whose text
// layer follows the printed label format closely; it is not in the default
// strategy order.
type RegexStrategy struct {
	lines  func(path string) ([]string, error)
	logger *slog.Logger
}

func NewRegexStrategy(logger *slog.Logger) *RegexStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegexStrategy{lines: source.Lines, logger: logger}
}

func (s *RegexStrategy) Name() string { return "deterministic-regex" }

// labelPatterns map a printed field label to its canonical key. Values are
// whatever follows the label and an optional colon on the same line.
var labelPatterns = []struct {
	re  *regexp.Regexp
	key string
}{
	{regexp.MustCompile(`الاسم التجاري\s*[:：]?\s*(.+)`), constants.FieldCommercialName},
	{regexp.MustCompile(`الرقم الضريبي\s*[:：]?\s*(.+)`), constants.FieldTaxNumber},
	{regexp.MustCompile(`تسلسل مصدر الدخل\s*[:：]?\s*(.+)`), constants.FieldIncomeSourceSequence},
	{regexp.MustCompile(`رقم الفاتورة الإلكترونية\s*[:：]?\s*(.+)`), constants.FieldElectronicInvoiceNumber},
	{regexp.MustCompile(`رقم فاتورة البائع\s*[:：]?\s*(.+)`), constants.FieldSellerInvoiceNumber},
	{regexp.MustCompile(`تاريخ إصدار الفاتورة\s*[:：]?\s*(.+)`), constants.FieldInvoiceDate},
	{regexp.MustCompile(`نوع الفاتورة\s*[:：]?\s*(.+)`), constants.FieldInvoiceType},
	{regexp.MustCompile(`نوع العملة\s*[:：]?\s*(.+)`), constants.FieldCurrency},
	{regexp.MustCompile(`اسم المشتري\s*[:：]?\s*(.+)`), constants.FieldBuyerName},
	{regexp.MustCompile(`رقم المشتري\s*[:：]?\s*(.+)`), constants.FieldBuyerNumber},
	{regexp.MustCompile(`رقم الهاتف\s*[:：]?\s*(.+)`), constants.FieldPhoneNumber},
	{regexp.MustCompile(`المدينة\s*[:：]?\s*(.+)`), constants.FieldCity},
	{regexp.MustCompile(`مجموع قيمة الخصم\s*[:：]?\s*(.+)`), constants.FieldTotalDiscount},
	{regexp.MustCompile(`إجمالي قيمة الفاتورة\s*[:：]?\s*(.+)`), constants.FieldGrandTotal},
}

func (s *RegexStrategy) Extract(ctx context.Context, doc Document) (*invoice.Data, error) {
	if doc.Format != constants.PDF {
		return nil, common.WrapError(common.ErrUnavailable, "regex strategy requires a pdf")
	}

	lines, err := s.lines(doc.Path)
	if err != nil {
		return nil, err
	}

	m := map[string]any{}
	var items []any
	for _, line := range lines {
		matched := false
		for _, lp := range labelPatterns {
			if _, exists := m[lp.key]; exists {
				continue
			}
			if sub := lp.re.FindStringSubmatch(line); sub != nil {
				m[lp.key] = strings.TrimSpace(sub[1])
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if it := parseItemRow(line); it != nil {
			items = append(items, it)
		}
	}
	if len(items) > 0 {
		m[constants.FieldItems] = items
	}

	d := invoice.Decode(invoice.Reconcile(m))
	invoice.Complete(d)
	return d, nil
}

// parseItemRow recognizes a quantity-first table row: a leading quantity, the
// description words, then unit price, amount, discount and line total.
func parseItemRow(line string) map[string]any {
	tokens := strings.Fields(line)
	if len(tokens) < 6 {
		return nil
	}

	qty, ok := numeric.Parse(tokens[0])
	if !ok {
		return nil
	}

	// The last four tokens must all be numeric.
	tail := tokens[len(tokens)-4:]
	vals := make([]float64, 0, 4)
	for _, tok := range tail {
		v, ok := numeric.Parse(tok)
		if !ok {
			return nil
		}
		vals = append(vals, v)
	}

	desc := strings.Join(tokens[1:len(tokens)-4], " ")
	if desc == "" {
		return nil
	}

	return map[string]any{
		constants.ItemQuantity:    qty,
		constants.ItemDescription: desc,
		constants.ItemUnitPrice:   vals[0],
		constants.ItemAmount:      vals[1],
		constants.ItemDiscount:    vals[2],
		constants.ItemLineTotal:   vals[3],
	}
}
