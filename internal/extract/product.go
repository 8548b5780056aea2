package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	tableGlyphNoiseRE = regexp.MustCompile(`(?i)Product\s*No\.\s*\|\s*Hem\s*Gly`)
	pipeRunRE         = regexp.MustCompile(`[\s|]+`)
	productBlockRE    = regexp.MustCompile(`(?is)Product No\.\s*(.*?)\s*(?:Subtotal|TOTAL)`)
	tableHeaderRE     = regexp.MustCompile(`(?is)^\s*Item\s*Qty\s*U/M\s*Description\s*Price\s*Each\s*Amount\s*`)
	transportInRowRE  = regexp.MustCompile(`(?i)((RAILCAR|TRUCK|VESSEL)\s*#\s*([A-Z0-9]+))`)
	// one table row: optional product number, the qty/unit/description
	// block, then the two trailing money columns
	productRowRE = regexp.MustCompile(`(?is)([A-Z0-9\-]+)?\s*(.*?)\s+([\d,.]+)\s*([\d,]+\.\d+)`)

	trailingFloatRE  = regexp.MustCompile(`([\d.]+)\s*$`)
	qtyUMSlashRE     = regexp.MustCompile(`(?is)([\d,]+)\s*/([A-Za-z]+)\s*(.*)`)
	qtyUMSpaceRE     = regexp.MustCompile(`(?is)([\d,]+)\s+([A-Za-z]+)\s+(.*)`)
	trailingModeRE   = regexp.MustCompile(`(?i)RAIL$|TRUCK$|VESSEL$`)
	transportScrubRE = regexp.MustCompile(`(?i)(RAILCAR|TRUCK|VESSEL)\s*#\s*[A-Z0-9]+`)
)

// parseAmount strips thousands commas and parses the remainder.
func parseAmount(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &f
}

// ExtractProductDetail parses the single product line of the invoice table
// from single-line invoice page text. The table is frequently mangled by
// recognition: the product number may be missing, the quantity and unit can
// fuse with the description, and a digit of the amount can split off into
// the price column. Each case is repaired here.
func ExtractProductDetail(text string) ProductLineItem {
	cleaned := tableGlyphNoiseRE.ReplaceAllString(text, "Product No. ")
	cleaned = newlineRE.ReplaceAllString(cleaned, " ")
	cleaned = pipeRunRE.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "_", " "))

	blockMatch := productBlockRE.FindStringSubmatch(cleaned)
	if blockMatch == nil {
		return ProductLineItem{}
	}
	block := strings.TrimSpace(blockMatch[1])
	block = strings.TrimSpace(tableHeaderRE.ReplaceAllString(block, " "))

	var transportNo *string
	if m := transportInRowRE.FindStringSubmatch(block); m != nil {
		transportNo = strptr(strings.TrimSpace(m[1]))
	}
	block = strings.TrimSpace(transportScrubRE.ReplaceAllString(block, ""))

	row := productRowRE.FindStringSubmatch(block)
	if row == nil {
		return ProductLineItem{TransportNo: transportNo}
	}

	item := ProductLineItem{TransportNo: transportNo}
	if row[1] != "" {
		item.ProductNo = strptr(strings.TrimSpace(row[1]))
	}
	combined := strings.TrimSpace(row[2])
	priceColumn := strings.TrimSpace(row[3])
	amountColumn := strings.TrimSpace(row[4])

	// the true unit price tends to trail the combined block; the price
	// column then holds the split-off leading digits of the amount
	priceEach := priceColumn
	if m := trailingFloatRE.FindStringSubmatch(combined); m != nil {
		priceEach = m[1]
		combined = strings.TrimSpace(trailingFloatRE.ReplaceAllString(combined, ""))
	}

	desc := combined
	if m := qtyUMSlashRE.FindStringSubmatch(combined); m != nil {
		item.ItemQty = parseAmount(strings.TrimSpace(m[1]))
		item.UnitMeasure = strptr(strings.TrimSpace(m[2]))
		desc = strings.TrimSpace(m[3])
	} else if m := qtyUMSpaceRE.FindStringSubmatch(combined); m != nil {
		item.ItemQty = parseAmount(strings.TrimSpace(m[1]))
		item.UnitMeasure = strptr(strings.TrimSpace(m[2]))
		desc = strings.TrimSpace(m[3])
	}
	desc = strings.TrimSpace(trailingModeRE.ReplaceAllString(desc, ""))
	if desc != "" {
		item.Description = strptr(desc)
	}

	// a price column with no decimal point next to a one-decimal amount is
	// the amount's leading digits split off, e.g. "112" + "585.00"
	fullAmount := amountColumn
	if !strings.Contains(priceColumn, ".") && strings.Count(amountColumn, ".") == 1 {
		fullAmount = priceColumn + amountColumn
	}

	item.PriceEach = parseAmount(priceEach)
	item.Amount = parseAmount(fullAmount)
	return item
}
