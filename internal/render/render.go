// Package render produces a clean single-page PDF rendition of an
// extracted invoice record, used when the stripped source attachment is
// unusable or a normalized copy is wanted alongside the original.
package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/arrowtc/invoice-pipeline/internal/extract"
)

type Renderer struct {
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// RenderInvoicePDF lays out the record as a one-page summary document.
func (r *Renderer) RenderInvoicePDF(rec extract.InvoiceRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "INVOICE", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	writeField(pdf, "Invoice No", strOr(rec.InvoiceNo, ""))
	writeField(pdf, "Invoice Date", strOr(rec.InvoiceDate, ""))
	writeField(pdf, "S/O#", strOr(rec.SalesOrderNo, ""))
	writeField(pdf, "Incoterm", strOr(rec.Incoterm, ""))
	writeField(pdf, "Payment Terms", strOr(rec.PaymentTerms, ""))
	writeField(pdf, "Ship Date", strOr(rec.ShipDate, ""))
	writeField(pdf, "Due Date", strOr(rec.DueDate, ""))
	writeField(pdf, "Method of Shipment", strOr(rec.Method, ""))
	pdf.Ln(3)

	writeBlock(pdf, "Ship To", rec.ShipTo)
	writeBlock(pdf, "Bill To", rec.BillTo)

	if len(rec.Products) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(35, 6, "Product No.", "B", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, "Item Qty", "B", 0, "R", false, 0, "")
		pdf.CellFormat(15, 6, "U/M", "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, "Description", "B", 0, "L", false, 0, "")
		pdf.CellFormat(22, 6, "Price Each", "B", 0, "R", false, 0, "")
		pdf.CellFormat(23, 6, "Amount", "B", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, p := range rec.Products {
			pdf.CellFormat(35, 6, strOr(p.ProductNo, ""), "", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, numOr(p.ItemQty, "%.0f"), "", 0, "R", false, 0, "")
			pdf.CellFormat(15, 6, strOr(p.UnitMeasure, ""), "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 6, strOr(p.Description, ""), "", 0, "L", false, 0, "")
			pdf.CellFormat(22, 6, numOr(p.PriceEach, "%.5f"), "", 0, "R", false, 0, "")
			pdf.CellFormat(23, 6, numOr(p.Amount, "%.2f"), "", 1, "R", false, 0, "")
			if p.TransportNo != nil {
				pdf.SetFont("Arial", "I", 9)
				pdf.CellFormat(0, 5, "Transport No: "+*p.TransportNo, "", 1, "L", false, 0, "")
				pdf.SetFont("Arial", "", 10)
			}
		}
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 10)
	writeField(pdf, "Subtotal", numOr(rec.Subtotal, "%.2f"))
	writeField(pdf, "TOTAL", numOr(rec.Total, "%.2f"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating invoice pdf: %w", err)
	}
	r.logger.Debug("render.pdf.ok", "invoice_no", strOr(rec.InvoiceNo, ""), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// RenderInvoiceFile writes the rendition to path.
func (r *Renderer) RenderInvoiceFile(rec extract.InvoiceRecord, path string) error {
	data, err := r.RenderInvoicePDF(rec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing invoice pdf %s: %w", path, err)
	}
	return nil
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(45, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func writeBlock(pdf *fpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, label+":", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, value, "", "L", false)
	pdf.Ln(1)
}

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func numOr(p *float64, format string) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf(format, *p)
}
