package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invoicePage is a realistic flattened invoice page in the layout the
// extractors expect.
const invoicePage = `Arrow Trading LLC
28789 Hardin Store Rd. Suite 230
Magnolia, TX 77354
COMMERCIAL INVOICE
Invoice No: 103694 Invoice Date: 10/28/25
Ship To: Grupo Industrial Reyma SA de CV c/o Medina Logistic Services, Inc. Laredo TX Bill To: Arrow Trading LLC 28789 Hardin Store Rd. Suite 230 Magnolia, TX 77354
Incoterm Payment Terms Ship Date Due Date Method of Shipment
DAP Laredo: Net 30 Days 10/26/25 11/25/25 RAILCAR
Product No. Item Qty U/M Description Price Each Amount
HDPE-01 195,800/LBS HDPE Resin Pellets RAILCAR # FPAX214289 0.57500 112,585.00
Subtotal 112,585.00
TOTAL 112,585.00`

const packingPage = `PACKING LIST
S/O NO: 45122
Gross Weight 198,000 LBS
RAILCAR # FPAX214289`

func TestExtractorFullDocument(t *testing.T) {
	e := NewExtractor(nil)
	rec := e.Extract("/inbox/invoice_103694.pdf", []string{packingPage, invoicePage})

	assert.Equal(t, "invoice_103694.pdf", rec.File)
	assert.Equal(t, "/inbox/invoice_103694.pdf", rec.FilePath)

	require.NotNil(t, rec.InvoiceNo)
	assert.Equal(t, "103694", *rec.InvoiceNo)
	require.NotNil(t, rec.InvoiceDate)
	assert.Equal(t, "10/28/25", *rec.InvoiceDate)
	require.NotNil(t, rec.SalesOrderNo)
	assert.Equal(t, "45122", *rec.SalesOrderNo, "sales order comes from the packing page")

	require.NotNil(t, rec.Incoterm)
	assert.Equal(t, "DAP Laredo", *rec.Incoterm)
	require.NotNil(t, rec.PaymentTerms)
	assert.Equal(t, "Net 30 Days", *rec.PaymentTerms)
	require.NotNil(t, rec.ShipDate)
	assert.Equal(t, "10/26/25", *rec.ShipDate)
	require.NotNil(t, rec.DueDate)
	assert.Equal(t, "11/25/25", *rec.DueDate)
	require.NotNil(t, rec.Method)
	assert.Equal(t, "RAILCAR", *rec.Method)

	assert.True(t, strings.HasPrefix(rec.ShipTo, "Grupo Industrial Reyma S.A. de C.V."))
	assert.Contains(t, rec.ShipTo, "Laredo")
	assert.True(t, strings.HasPrefix(rec.BillTo, "Arrow Trading LLC"))
	assert.Contains(t, rec.BillTo, "77354")
	assert.False(t, rec.NeedsReview)

	require.NotNil(t, rec.Subtotal)
	assert.Equal(t, 112585.0, *rec.Subtotal)
	require.NotNil(t, rec.Total)
	assert.Equal(t, 112585.0, *rec.Total)

	require.Len(t, rec.Products, 1)
	p := rec.Products[0]
	require.NotNil(t, p.ProductNo)
	assert.Equal(t, "HDPE-01", *p.ProductNo)
	require.NotNil(t, p.ItemQty)
	assert.Equal(t, 195800.0, *p.ItemQty)
	require.NotNil(t, p.TransportNo)
	assert.Equal(t, "FPAX214289", *p.TransportNo, "transport id comes from the full document")
}

func TestExtractorFlagsIntermediaryShipTo(t *testing.T) {
	page := `Invoice No: 200 Invoice Date: 1/2/25
Bill To: Arrow Trading LLC Magnolia TX Incoterm
Subtotal 10.00
TOTAL 10.00`
	e := NewExtractor(nil)
	rec := e.Extract("x.pdf", []string{page})

	assert.True(t, strings.HasPrefix(strings.ToLower(rec.ShipTo), "arrow"))
	assert.True(t, rec.NeedsReview)
}

func TestExtractorFallsBackToFullDocument(t *testing.T) {
	// the located page carries only the header and parties; the product
	// table and the totals spill onto the next page
	headerPage := `COMMERCIAL INVOICE
Invoice No: 104201 Invoice Date: 11/3/25
Ship To: Grupo Industrial Reyma SA de CV Bill To: Plasticos del Bajio SA de CV`
	detailPage := `Product No. Item Qty U/M Description Price Each Amount
HDPE-01 44,000/LBS HDPE Resin Pellets 0.50000 22,000.00
Subtotal 22,000.00
TOTAL 22,000.00`

	e := NewExtractor(nil)
	rec := e.Extract("x.pdf", []string{headerPage, detailPage})

	require.Len(t, rec.Products, 1)
	require.NotNil(t, rec.Products[0].ProductNo)
	assert.Equal(t, "HDPE-01", *rec.Products[0].ProductNo)
	require.NotNil(t, rec.Total)
	assert.Equal(t, 22000.0, *rec.Total)
}

func TestExtractorEmptyDocument(t *testing.T) {
	e := NewExtractor(nil)
	rec := e.Extract("empty.pdf", nil)

	assert.Nil(t, rec.InvoiceNo)
	assert.Equal(t, ShipToNotFound, rec.ShipTo)
	assert.Equal(t, BillToNotFound, rec.BillTo)
	assert.False(t, rec.NeedsReview)
	require.Len(t, rec.Products, 1)
	assert.Nil(t, rec.Products[0].ProductNo)
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	rec := InvoiceRecord{
		InvoiceNo: strptr(" 103694 "),
		ShipTo:    "Grupo Industrial Reyma S.A. de C.V.\nc/o Medina Logistic Services, Inc.",
	}
	rec.Normalize()
	assert.Equal(t, "103694", *rec.InvoiceNo)
	assert.Equal(t, "Grupo Industrial Reyma S.A. de C.V. c/o Medina Logistic Services, Inc.", rec.ShipTo)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	rec := InvoiceRecord{ShipTo: "a\nb  c"}
	rec.Normalize()
	first := rec.ShipTo
	rec.Normalize()
	assert.Equal(t, first, rec.ShipTo)
}
