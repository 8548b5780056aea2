package extract

import (
	"regexp"
	"strings"
)

var (
	newlineRE          = regexp.MustCompile(`[\r\n]+`)
	headerIndicatorRE  = regexp.MustCompile(`(?i)(Invoice\s*No|Invoice\s*Date)`)
	addressIndicatorRE = regexp.MustCompile(`(?i)(Ship\s*To|Bill\s*To)`)
)

var (
	locatorInvoiceKeywords = []string{
		"invoice no", "invoice date", "invoice#", "inv no", "inv date",
	}
	locatorAddressKeywords = []string{
		"ship to", "bill to", "consignee", "customer", "sold to",
	}
	locatorFinancialKeywords = []string{
		"subtotal", "total", "payment terms", "due date", "method of shipment", "incoterm",
	}
)

// FindInvoicePage returns the text of the first page carrying both a
// header indicator (Invoice No / Invoice Date) and a party indicator
// (Ship To / Bill To). Falls back to the first page when no page
// qualifies, and to empty on an empty document.
func FindInvoicePage(pages []string) string {
	for _, text := range pages {
		oneLine := newlineRE.ReplaceAllString(text, " ")
		if headerIndicatorRE.MatchString(oneLine) && addressIndicatorRE.MatchString(oneLine) {
			return text
		}
	}
	if len(pages) > 0 {
		return pages[0]
	}
	return ""
}

// ScoreInvoicePage returns the index of the page most likely to carry the
// invoice body, scoring each page one point per keyword hit across three
// keyword families plus a two-point bonus when a page has both header and
// party keywords. Ties go to the earlier page; a document where nothing
// scores defaults to page 0.
func ScoreInvoicePage(pages []string) int {
	bestScore := 0
	bestIndex := 0

	for i, text := range pages {
		lower := strings.ToLower(strings.ReplaceAll(text, "\n", " "))

		score := countHits(lower, locatorInvoiceKeywords) +
			countHits(lower, locatorAddressKeywords) +
			countHits(lower, locatorFinancialKeywords)
		if countHits(lower, locatorInvoiceKeywords) > 0 && countHits(lower, locatorAddressKeywords) > 0 {
			score += 2
		}

		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}
	return bestIndex
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}
