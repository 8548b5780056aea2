package server

import (
	"context"
	"log/slog"

	invoicesv1 "github.com/arrowtc/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/arrowtc/invoice-pipeline/internal/common"
	"github.com/arrowtc/invoice-pipeline/internal/export"
)

type ExportServer struct {
	invoicesv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoices(ctx context.Context, req *invoicesv1.ExportInvoicesRequest) (*invoicesv1.ExportInvoicesResponse, error) {
	from, to, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}
	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, from, to)
	if err != nil {
		s.logger.Error("server.export.xlsx", "err", err)
		return nil, common.InternalError("export failed")
	}
	return &invoicesv1.ExportInvoicesResponse{Xlsx: xlsx}, nil
}
