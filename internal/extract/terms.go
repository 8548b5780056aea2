package extract

import (
	"regexp"
	"strings"
)

// ShippingTerms are the five fields of the invoice terms row.
type ShippingTerms struct {
	Incoterm     *string
	PaymentTerms *string
	ShipDate     *string
	DueDate      *string
	Method       *string
}

// The terms row is anchored on its own column header line; the leading
// alternation absorbs the common misreads of "Incoterm".
var termsRowRE = regexp.MustCompile(
	`(?is)(?:Incoterm|lncoterm|lncotenn)\s*Payment\s*Terms\s*Ship\s*Date\s*Due\s*Date\s*Method\s*of\s*Shipment\s*` +
		`(?P<incoterm>.*?)\s*` +
		`(?P<payment_terms>Net\s*\d+\s*Days|Prepaid|Collect)\s*` +
		`(?P<ship_date>\d{1,2}\s*/\s*\d{1,2}\s*/\s*\d{2,4})\s*` +
		`(?P<due_date>\d{1,2}\s*/\s*\d{1,2}\s*/\s*\d{2,4})?\s*` +
		`(?P<method>.*?)` +
		`(?:\s+Product\s*No)`)

// A due date the scanner broke apart, e.g. "11/2 5/25", swallowed into the
// method capture because the well-formed date group failed.
var brokenDueDateRE = regexp.MustCompile(`(\d{1,2}\s*/\s*\d{1,2}\s+\d{1,2}\s*/\s*\d{2,4})`)

// ExtractShippingTerms reads Incoterm, Payment Terms, Ship Date, Due Date
// and Method of Shipment from single-line invoice page text. When the due
// date is malformed it lands in the method capture; it is split back out
// afterwards.
func ExtractShippingTerms(text string) ShippingTerms {
	m := termsRowRE.FindStringSubmatch(text)
	if m == nil {
		return ShippingTerms{}
	}
	groups := make(map[string]string)
	for i, name := range termsRowRE.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}

	var t ShippingTerms
	if v := strings.TrimSpace(groups["incoterm"]); v != "" {
		v = strings.TrimSpace(strings.TrimSuffix(v, ":"))
		t.Incoterm = strptr(v)
	}
	if v := strings.TrimSpace(groups["payment_terms"]); v != "" {
		t.PaymentTerms = strptr(v)
	}
	if v := strings.TrimSpace(groups["ship_date"]); v != "" {
		t.ShipDate = strptr(v)
	}
	if v := strings.TrimSpace(groups["due_date"]); v != "" {
		t.DueDate = strptr(v)
	}

	methodRaw := strings.TrimSpace(groups["method"])
	if t.DueDate == nil && methodRaw != "" {
		if loc := brokenDueDateRE.FindStringIndex(methodRaw); loc != nil {
			t.DueDate = strptr(strings.TrimSpace(methodRaw[loc[0]:loc[1]]))
			methodRaw = strings.TrimSpace(methodRaw[loc[1]:])
		}
	}
	if methodRaw != "" {
		t.Method = strptr(methodRaw)
	}
	return t
}
