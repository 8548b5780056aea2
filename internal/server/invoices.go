package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	invoicesv1 "github.com/arrowtc/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/arrowtc/invoice-pipeline/internal/common"
	"github.com/arrowtc/invoice-pipeline/internal/repository"
)

type InvoicesServer struct {
	invoicesv1.UnimplementedInvoicesServiceServer
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewInvoicesServer(invoices repository.InvoiceRepository, logger *slog.Logger) *InvoicesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoicesServer{invoices: invoices, logger: logger}
}

func (s *InvoicesServer) ListInvoices(ctx context.Context, req *invoicesv1.ListInvoicesRequest) (*invoicesv1.ListInvoicesResponse, error) {
	from, to, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}
	rows, err := s.invoices.List(ctx, from, to)
	if err != nil {
		s.logger.Error("server.invoices.list", "err", err)
		return nil, common.InternalError("listing invoices failed")
	}
	out := make([]*invoicesv1.Invoice, 0, len(rows))
	for _, row := range rows {
		out = append(out, toProtoInvoice(row))
	}
	return &invoicesv1.ListInvoicesResponse{Invoices: out}, nil
}

func (s *InvoicesServer) GetInvoice(ctx context.Context, req *invoicesv1.GetInvoiceRequest) (*invoicesv1.GetInvoiceResponse, error) {
	raw := strings.TrimSpace(req.GetId())
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	row, err := s.invoices.Get(ctx, id)
	if err != nil {
		s.logger.Warn("server.invoices.get", "id", raw, "err", err)
		return nil, common.NotFoundError("invoice not found")
	}
	return &invoicesv1.GetInvoiceResponse{Invoice: toProtoInvoice(row)}, nil
}
