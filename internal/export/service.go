package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/arrowtc/invoice-pipeline/internal/repository"
)

// Service produces XLSX bytes for invoice exports.
type Service struct {
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	rows, err := s.invoices.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Invoice No",
		"Issue Date",
		"S/O#",
		"Incoterm",
		"Payment Terms",
		"Ship Date",
		"Due Date",
		"Method",
		"Ship To",
		"Bill To",
		"Product No",
		"Qty",
		"U/M",
		"Transport No",
		"Price Each",
		"Subtotal",
		"Total",
		"Needs Review",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowNum := 2
	for _, inv := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			_ = f.SetCellValue(sheet, cell, v)
		}
		writeDate := func(col int, t *time.Time) {
			if t != nil && !t.IsZero() {
				write(col, t.Format("2006-01-02"))
			}
		}
		writeStr := func(col int, s *string) {
			if s != nil {
				write(col, *s)
			}
		}
		writeNum := func(col int, v *float64) {
			if v != nil {
				write(col, *v)
			}
		}

		write(1, inv.Num)
		write(2, inv.IssueDate.Format("2006-01-02"))
		writeStr(3, inv.SoNum)
		writeStr(4, inv.Incoterm)
		writeStr(5, inv.PaymentTerms)
		writeDate(6, inv.ShipDate)
		writeDate(7, inv.DueDate)
		writeStr(8, inv.MethodOfShipment)
		write(9, inv.ShipTo)
		write(10, inv.BillTo)
		writeStr(11, inv.ProductNo)
		writeNum(12, inv.ItemQty)
		writeStr(13, inv.Um)
		writeStr(14, inv.Notes)
		writeNum(15, inv.PriceEach)
		writeNum(16, inv.Subtotal)
		write(17, inv.Total)
		write(18, inv.NeedsReview)

		rowNum++
	}

	_ = f.SetColWidth(sheet, "A", "B", 14)
	_ = f.SetColWidth(sheet, "C", "H", 16)
	_ = f.SetColWidth(sheet, "I", "J", 48)
	_ = f.SetColWidth(sheet, "K", "R", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
