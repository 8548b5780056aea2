// Package server holds the gRPC handlers in front of the repository, the
// exporter and the batch loop.
package server

import (
	"strings"
	"time"

	"github.com/arrowtc/invoice-pipeline/gen/ent"
	invoicesv1 "github.com/arrowtc/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/arrowtc/invoice-pipeline/internal/common"
)

// parseDateWindow validates the optional YYYY-MM-DD bounds shared by the
// list and export calls.
func parseDateWindow(fromDate, toDate string) (*time.Time, *time.Time, error) {
	parse := func(s, name string) (*time.Time, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, common.InvalidArgumentError(name + " must be YYYY-MM-DD")
		}
		return &t, nil
	}
	from, err := parse(fromDate, "from_date")
	if err != nil {
		return nil, nil, err
	}
	to, err := parse(toDate, "to_date")
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, common.InvalidArgumentError("to_date precedes from_date")
	}
	return from, to, nil
}

func toProtoInvoice(row *ent.Invoice) *invoicesv1.Invoice {
	out := &invoicesv1.Invoice{
		Id:          row.ID.String(),
		Num:         row.Num,
		IssueDate:   row.IssueDate.Format("2006-01-02"),
		ShipTo:      row.ShipTo,
		BillTo:      row.BillTo,
		Total:       row.Total,
		NeedsReview: row.NeedsReview,
		Fingerprint: row.Fingerprint,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   row.UpdatedAt.Format(time.RFC3339Nano),
	}
	if row.SoNum != nil {
		out.SoNum = *row.SoNum
	}
	if row.Incoterm != nil {
		out.Incoterm = *row.Incoterm
	}
	if row.PaymentTerms != nil {
		out.PaymentTerms = *row.PaymentTerms
	}
	if row.ShipDate != nil {
		out.ShipDate = row.ShipDate.Format("2006-01-02")
	}
	if row.DueDate != nil {
		out.DueDate = row.DueDate.Format("2006-01-02")
	}
	if row.MethodOfShipment != nil {
		out.MethodOfShipment = *row.MethodOfShipment
	}
	if row.ProductNo != nil {
		out.ProductNo = *row.ProductNo
	}
	if row.Description != nil {
		out.Description = *row.Description
	}
	if row.Um != nil {
		out.Um = *row.Um
	}
	if row.Notes != nil {
		out.Notes = *row.Notes
	}
	if row.ItemQty != nil {
		out.ItemQty = *row.ItemQty
	}
	if row.PriceEach != nil {
		out.PriceEach = *row.PriceEach
	}
	if row.Amount != nil {
		out.Amount = *row.Amount
	}
	if row.Subtotal != nil {
		out.Subtotal = *row.Subtotal
	}
	return out
}
