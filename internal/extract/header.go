package extract

import (
	"regexp"
	"strings"
)

var (
	invoiceNoRE   = regexp.MustCompile(`(?i)Invoice\s*No[:\s]*([A-Za-z0-9\-]+)`)
	invoiceDateRE = regexp.MustCompile(`(?i)Invoice\s*Date[:\s]*([\d\-/\s]+)`)
	headerSoRE    = regexp.MustCompile(`(?i)(?:S/O#|S/O\s*NO)\s*[:\s]*([A-Za-z0-9\-]+)`)
	soNoColonRE   = regexp.MustCompile(`(?i)S/O\s*NO\s*:\s*([A-Z0-9]+)`)
	soNoHashRE    = regexp.MustCompile(`(?i)S/O#\s*([A-Z0-9]+)`)
	wsRE          = regexp.MustCompile(`\s+`)
)

// Headers holds the three header fields read off the invoice page.
type Headers struct {
	InvoiceNo    *string
	InvoiceDate  *string
	SalesOrderNo *string
}

// ExtractHeaders pulls Invoice No, Invoice Date and the sales order number
// from single-line invoice page text. A zero misread as the letter O in the
// S/O# label is repaired before matching. Dates keep their M/D/YY shape with
// internal whitespace squeezed out.
func ExtractHeaders(text string) Headers {
	text = strings.ReplaceAll(text, "S/0#", "S/O#")

	var h Headers
	if m := invoiceNoRE.FindStringSubmatch(text); m != nil {
		h.InvoiceNo = strptr(strings.TrimSpace(m[1]))
	}
	if m := invoiceDateRE.FindStringSubmatch(text); m != nil {
		h.InvoiceDate = strptr(wsRE.ReplaceAllString(strings.TrimSpace(m[1]), ""))
	}
	if m := headerSoRE.FindStringSubmatch(text); m != nil {
		h.SalesOrderNo = strptr(strings.TrimSpace(m[1]))
	}
	return h
}

// ExtractSalesOrderNo searches the text of every page for the sales order
// number. The invoice page alone is not trusted here: the S/O# printed on
// it is sometimes misread, while packing pages repeat it with a colon
// label. The colon form wins; the hash form is the fallback.
func ExtractSalesOrderNo(fullText string) *string {
	if m := soNoColonRE.FindStringSubmatch(fullText); m != nil {
		return strptr(strings.TrimSpace(m[1]))
	}
	if m := soNoHashRE.FindStringSubmatch(fullText); m != nil {
		return strptr(strings.TrimSpace(m[1]))
	}
	return nil
}
