package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowtc/invoice-pipeline/internal/extract"
)

func sampleRecord() extract.InvoiceRecord {
	no := "103694"
	date := "10/28/25"
	so := "45122"
	inco := "DAP Laredo"
	terms := "Net 30 Days"
	method := "RAIL"
	prodNo := "PEBD-01"
	um := "LBS"
	desc := "LOW DENSITY POLYETHYLENE"
	transport := "FPAX214289"
	qty := 195800.0
	price := 0.575
	amount := 112585.0
	total := 112585.0
	return extract.InvoiceRecord{
		File:         "103694_invoice.pdf",
		InvoiceNo:    &no,
		InvoiceDate:  &date,
		SalesOrderNo: &so,
		Incoterm:     &inco,
		PaymentTerms: &terms,
		Method:       &method,
		ShipTo:       "Laredo, TX 78045",
		BillTo:       "Magnolia, TX 77354",
		Subtotal:     &total,
		Total:        &total,
		Products: []extract.ProductLineItem{{
			ProductNo:   &prodNo,
			ItemQty:     &qty,
			UnitMeasure: &um,
			Description: &desc,
			TransportNo: &transport,
			PriceEach:   &price,
			Amount:      &amount,
		}},
	}
}

func TestRenderInvoicePDF(t *testing.T) {
	r := NewRenderer(nil)

	data, err := r.RenderInvoicePDF(sampleRecord())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderInvoiceFile(t *testing.T) {
	r := NewRenderer(nil)
	path := filepath.Join(t.TempDir(), "out.pdf")

	require.NoError(t, r.RenderInvoiceFile(sampleRecord(), path))

	count, err := api.PageCountFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestRenderEmptyRecord(t *testing.T) {
	r := NewRenderer(nil)

	data, err := r.RenderInvoicePDF(extract.InvoiceRecord{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
