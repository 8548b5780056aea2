package extract

import (
	"path/filepath"
	"strings"
)

// Extractor turns the page texts of one document into an InvoiceRecord.
type Extractor struct {
	registry *Registry
}

func NewExtractor(registry *Registry) *Extractor {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Extractor{registry: registry}
}

// Extract assembles a record from the ordered page texts of the document
// at path. Header, party, terms, product and totals fields are read from
// the located invoice page; the sales order number and the transport
// identifier are taken from the full document because their invoice-page
// copies are the least reliable. Product and totals retry against the whole
// document when the located page yields nothing.
func (e *Extractor) Extract(path string, pages []string) InvoiceRecord {
	fullText := strings.Join(pages, "\n")
	pageText := FindInvoicePage(pages)
	oneLine := newlineRE.ReplaceAllString(strings.ReplaceAll(pageText, "\r", "\n"), " ")

	rec := InvoiceRecord{
		File:     filepath.Base(path),
		FilePath: path,
	}

	headers := ExtractHeaders(oneLine)
	rec.InvoiceNo = headers.InvoiceNo
	rec.InvoiceDate = headers.InvoiceDate
	rec.SalesOrderNo = ExtractSalesOrderNo(fullText)

	parties := ResolveParties(e.registry, oneLine)
	rec.ShipTo = parties.ShipTo
	rec.BillTo = parties.BillTo

	terms := ExtractShippingTerms(oneLine)
	rec.Incoterm = terms.Incoterm
	rec.PaymentTerms = terms.PaymentTerms
	rec.ShipDate = stripSpaces(terms.ShipDate)
	rec.DueDate = stripSpaces(terms.DueDate)
	rec.Method = terms.Method

	fullOneLine := newlineRE.ReplaceAllString(strings.ReplaceAll(fullText, "\r", "\n"), " ")

	product := ExtractProductDetail(oneLine)
	if product == (ProductLineItem{}) {
		product = ExtractProductDetail(fullOneLine)
	}
	product.TransportNo = ExtractTransportNo(fullText)
	rec.Products = []ProductLineItem{product}

	totals := ExtractTotals(oneLine)
	if totals.Subtotal == nil && totals.Total == nil {
		totals = ExtractTotals(fullOneLine)
	}
	rec.Subtotal = totals.Subtotal
	rec.Total = totals.Total

	rec.NeedsReview = strings.HasPrefix(strings.ToLower(rec.ShipTo), "arrow")
	return rec
}

// Normalize collapses runs of whitespace in every string field, addresses
// included, so that layout jitter between two scans of the same invoice
// does not change the record.
func (r *InvoiceRecord) Normalize() {
	for _, p := range []**string{
		&r.InvoiceNo, &r.InvoiceDate, &r.SalesOrderNo, &r.Incoterm,
		&r.PaymentTerms, &r.ShipDate, &r.DueDate, &r.Method,
	} {
		if *p != nil {
			**p = collapseWS(**p)
		}
	}
	r.ShipTo = collapseWS(r.ShipTo)
	r.BillTo = collapseWS(r.BillTo)
	for i := range r.Products {
		p := &r.Products[i]
		for _, s := range []*string{p.ProductNo, p.UnitMeasure, p.Description, p.TransportNo} {
			if s != nil {
				*s = collapseWS(*s)
			}
		}
	}
}

func collapseWS(s string) string {
	return wsRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

func stripSpaces(s *string) *string {
	if s == nil {
		return nil
	}
	return strptr(wsRE.ReplaceAllString(*s, ""))
}
