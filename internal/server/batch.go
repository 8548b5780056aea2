package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/arrowtc/invoice-pipeline/constants"
	invoicesv1 "github.com/arrowtc/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/arrowtc/invoice-pipeline/internal/common"
	"github.com/arrowtc/invoice-pipeline/internal/pipeline"
)

// BatchRunner is the slice of the batch loop the server needs.
type BatchRunner interface {
	Run(ctx context.Context) (*pipeline.Summary, error)
}

type BatchServer struct {
	invoicesv1.UnimplementedBatchServiceServer
	batch  BatchRunner
	logger *slog.Logger

	mu sync.Mutex // one batch pass at a time
}

func NewBatchServer(batch BatchRunner, logger *slog.Logger) *BatchServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchServer{batch: batch, logger: logger}
}

func (s *BatchServer) RunBatch(ctx context.Context, _ *invoicesv1.RunBatchRequest) (*invoicesv1.RunBatchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, err := s.batch.Run(ctx)
	if err != nil {
		s.logger.Error("server.batch.run", "err", err)
		return nil, common.InternalError("batch run failed")
	}

	resp := &invoicesv1.RunBatchResponse{
		Processed:  int32(summary.Counts[constants.BatchStatusProcessed]),
		Duplicate:  int32(summary.Counts[constants.BatchStatusDuplicate]),
		Incomplete: int32(summary.Counts[constants.BatchStatusIncomplete]),
		Failed:     int32(summary.Counts[constants.BatchStatusFailed]),
	}
	for _, r := range summary.Results {
		doc := &invoicesv1.BatchDocument{
			File:          r.File,
			Status:        string(r.Status),
			InvoiceNo:     r.InvoiceNo,
			MissingFields: r.Missing,
		}
		if r.Err != nil {
			doc.Error = r.Err.Error()
		}
		resp.Documents = append(resp.Documents, doc)
	}
	return resp, nil
}
