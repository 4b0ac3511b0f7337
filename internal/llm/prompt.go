package llm

import (
	"strconv"
	"strings"
)

// The prompt text is an external contract with the inference service: it asks
// the service to echo only text present in the input and to use null for
// missing fields. The validity filter downstream exists because this contract
// is not always honored.

// SystemPrompt is the shared system instruction for all extraction calls.
const SystemPrompt = `You are an expert at extracting structured data from Arabic/English invoices (Jordan, Iraq).

CRITICAL RULES:
1. Read the ACTUAL text visible in the input - do NOT invent or guess data
2. Normalize Arabic digits (٠١٢٣٤٥٦٧٨٩٫٬) to Western (0123456789.)
3. Extract ALL fields even if they seem small or in corners
4. Look carefully at header sections, seller info sections, buyer info sections
5. Return ONLY valid JSON matching the schema
6. If a field is missing, use null (not empty string or placeholder)
7. Numbers should be numbers (not strings with commas/spaces)
8. Dates in DD-MM-YYYY format`

// fieldGuide locates every schema field by its printed Arabic label.
const fieldGuide = `Extract ALL invoice data. Be thorough and check every section.

**SELLER INFORMATION (البائع) - Usually in top-right or header:**
Look for sections labeled "البائع" or seller info boxes:
- الاسم التجاري (Commercial Name) - Usually the first text after "الاسم التجاري:"
- الرقم الضريبي (Tax Number) - Look for label "الرقم الضريبي:" followed by numbers (e.g., 48832456)
- تسلسل مصدر الدخل (Income Source Sequence) - Look for "تسلسل مصدر الدخل:" followed by numbers (e.g., 15970493)

**INVOICE IDENTIFICATION (معلومات الفاتورة) - Usually top-left or header:**
- رقم الفاتورة الإلكترونية (Electronic Invoice Number) - Look for "رقم الفاتورة الإلكترونية:" or "EIN" prefix (e.g., EIN00001)
- رقم فاتورة البائع (Seller Invoice Number) - Look for "رقم فاتورة البائع:" or just a number (e.g., 1)
- تاريخ إصدار الفاتورة (Invoice Date) - Look for "تاريخ إصدار الفاتورة:" followed by date (e.g., 26-05-2025)
- نوع الفاتورة (Invoice Type) - Look for "نوع الفاتورة:" followed by text like "فاتورة محلية" or "Local Invoice"
- نوع العملة (Currency) - Look for "نوع العملة:" followed by "دينار أردني" or "JOD" or currency code

**BUYER INFORMATION (المشتري) - Usually middle section:**
Look for sections labeled "المشتري" or buyer info:
- اسم المشتري (Buyer Name) - Look for "اسم المشتري:" followed by name
- رقم المشتري (Buyer Number) - Look for "رقم المشتري:" followed by numbers
- رقم الهاتف (Phone Number) - Look for "رقم الهاتف:" followed by phone number (may have spaces/dashes)
- المدينة (City) - Look for "المدينة:" followed by city name (e.g., عمان)

**LINE ITEMS TABLE (جدول البنود):**
For each row in the items table, extract:
- الوصف (Description) - Item description, copied verbatim from the input
- الكمية (Quantity) - Number quantity
- سعر الوحدة (Unit Price) - Price per unit
- المبلغ (Amount) - Calculated as quantity × unit_price
- الخصم (Discount) - Discount amount (may be 0)
- الاجمالي (Line Total) - Total for this line

**TOTALS (الإجماليات) - Usually bottom-right:**
- مجموع قيمة الخصم (Total Discount) - Look for this label followed by amount
- إجمالي قيمة الفاتورة (Total Invoice Value) - Look for this label at the bottom

SPECIAL ATTENTION:
- Tax numbers are usually 8-10 digits
- Phone numbers may have formats: 0799031778 or 079-903-1778
- Income source sequence is usually a long number
- Seller invoice number is often a simple sequential number (1, 2, 3...)
- Invoice type is usually text like "فاتورة محلية" or "فاتورة ضريبية"

Return JSON with ALL fields, even if some are null.`

// VisionUserPrompt is the user instruction for image extraction.
func VisionUserPrompt() string {
	return fieldGuide
}

// TextUserPrompt wraps extracted document text with the field guide for
// text-only extraction.
func TextUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Extract invoice data from this text. Return JSON only per schema.\n\n")
	b.WriteString("---- BEGIN TEXT ----\n")
	b.WriteString(text)
	b.WriteString("\n---- END TEXT ----\n\n")
	b.WriteString(fieldGuide)
	b.WriteString("\n\n- All monetary values should be numbers without currency symbols\n")
	b.WriteString("- Dates should be in DD-MM-YYYY format")
	return b.String()
}

// LineIndexUserPrompt asks the service to answer with indices into the
// numbered line list instead of generating text, which removes any chance of
// fabricated wording.
func LineIndexUserPrompt(lines []string) string {
	var b strings.Builder
	b.WriteString("The document's text lines are numbered below. Extract invoice data per the field guide, ")
	b.WriteString("but for every line item's description return the field \"description_line\" holding the ")
	b.WriteString("NUMBER of the source line containing that description instead of the text itself. ")
	b.WriteString("Do not rewrite or reorder line text.\n\n")
	for i, line := range lines {
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fieldGuide)
	return b.String()
}
