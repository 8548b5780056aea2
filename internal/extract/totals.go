package extract

import (
	"regexp"
	"strings"
)

var (
	subtotalRE = regexp.MustCompile(`(?i)Subtotal\s*([\d\s,.]+\.\d{2})`)
	totalRE    = regexp.MustCompile(`(?i)TOTAL\s*([\d\s,.]+\.\d{2})`)
)

// Totals holds the two money fields from the bottom of the invoice table.
type Totals struct {
	Subtotal *float64
	Total    *float64
}

// ExtractTotals reads Subtotal and TOTAL from single-line invoice page
// text. The regex guarantees the value ends in a decimal point and two
// digits; everything before those three characters is treated as an
// integer part whose separators, commas, spaces and misread extra points
// alike, are stripped. "114.371.50" therefore parses as 114371.50.
func ExtractTotals(text string) Totals {
	return Totals{
		Subtotal: parseTotalsValue(subtotalRE, text),
		Total:    parseTotalsValue(totalRE, text),
	}
}

func parseTotalsValue(re *regexp.Regexp, text string) *float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v := strings.TrimSpace(m[1])
	if len(v) < 3 {
		return nil
	}
	head := strings.NewReplacer(".", "", ",", "", " ", "").Replace(v[:len(v)-3])
	return parseAmount(head + v[len(v)-3:])
}
