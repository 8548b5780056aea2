package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/arrowtc/invoice-pipeline/constants"
	"github.com/arrowtc/invoice-pipeline/gen/ent"
	invoicesv1 "github.com/arrowtc/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/arrowtc/invoice-pipeline/internal/extract"
	"github.com/arrowtc/invoice-pipeline/internal/pipeline"
	"github.com/arrowtc/invoice-pipeline/internal/repository"
)

type fakeRepo struct {
	rows []*ent.Invoice
	err  error
}

func (f *fakeRepo) Insert(context.Context, extract.InvoiceRecord, string) (*repository.InsertResult, error) {
	return nil, errors.New("not used")
}

func (f *fakeRepo) List(context.Context, *time.Time, *time.Time) ([]*ent.Invoice, error) {
	return f.rows, f.err
}

func (f *fakeRepo) Get(_ context.Context, id uuid.UUID) (*ent.Invoice, error) {
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, errors.New("not found")
}

func sampleRow() *ent.Invoice {
	so := "45122"
	inco := "DAP Laredo"
	qty := 195800.0
	ship := time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC)
	return &ent.Invoice{
		ID:          uuid.New(),
		Num:         "103694",
		IssueDate:   time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC),
		SoNum:       &so,
		Incoterm:    &inco,
		ShipDate:    &ship,
		ShipTo:      "Laredo, TX",
		BillTo:      "Magnolia, TX 77354",
		ItemQty:     &qty,
		Total:       112585.0,
		Fingerprint: "abc123",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestListInvoices(t *testing.T) {
	row := sampleRow()
	s := NewInvoicesServer(&fakeRepo{rows: []*ent.Invoice{row}}, nil)

	resp, err := s.ListInvoices(context.Background(), &invoicesv1.ListInvoicesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Invoices, 1)
	got := resp.Invoices[0]
	assert.Equal(t, "103694", got.Num)
	assert.Equal(t, "2025-10-28", got.IssueDate)
	assert.Equal(t, "45122", got.SoNum)
	assert.Equal(t, "DAP Laredo", got.Incoterm)
	assert.Equal(t, "2025-10-26", got.ShipDate)
	assert.Empty(t, got.DueDate)
	assert.Equal(t, 195800.0, got.ItemQty)
	assert.Equal(t, 112585.0, got.Total)
}

func TestListInvoicesBadDates(t *testing.T) {
	s := NewInvoicesServer(&fakeRepo{}, nil)

	_, err := s.ListInvoices(context.Background(), &invoicesv1.ListInvoicesRequest{FromDate: "10/28/25"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ListInvoices(context.Background(), &invoicesv1.ListInvoicesRequest{
		FromDate: "2025-10-28",
		ToDate:   "2025-01-01",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err), "inverted window is rejected")
}

func TestGetInvoice(t *testing.T) {
	row := sampleRow()
	s := NewInvoicesServer(&fakeRepo{rows: []*ent.Invoice{row}}, nil)

	resp, err := s.GetInvoice(context.Background(), &invoicesv1.GetInvoiceRequest{Id: row.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "103694", resp.Invoice.Num)

	_, err = s.GetInvoice(context.Background(), &invoicesv1.GetInvoiceRequest{Id: "not-a-uuid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.GetInvoice(context.Background(), &invoicesv1.GetInvoiceRequest{Id: uuid.NewString()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

type fakeBatch struct {
	summary *pipeline.Summary
	err     error
}

func (f *fakeBatch) Run(context.Context) (*pipeline.Summary, error) { return f.summary, f.err }

func TestRunBatch(t *testing.T) {
	summary := &pipeline.Summary{
		Counts: map[constants.BatchStatus]int{
			constants.BatchStatusProcessed: 2,
			constants.BatchStatusFailed:    1,
		},
		Results: []pipeline.Result{
			{File: "a.pdf", Status: constants.BatchStatusProcessed, InvoiceNo: "100"},
			{File: "b.pdf", Status: constants.BatchStatusProcessed, InvoiceNo: "101"},
			{File: "c.pdf", Status: constants.BatchStatusFailed, Err: errors.New("boom")},
		},
	}
	s := NewBatchServer(&fakeBatch{summary: summary}, nil)

	resp, err := s.RunBatch(context.Background(), &invoicesv1.RunBatchRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.Processed)
	assert.Equal(t, int32(1), resp.Failed)
	require.Len(t, resp.Documents, 3)
	assert.Equal(t, "boom", resp.Documents[2].Error)
}

func TestRunBatchFailure(t *testing.T) {
	s := NewBatchServer(&fakeBatch{err: errors.New("no dir")}, nil)

	_, err := s.RunBatch(context.Background(), &invoicesv1.RunBatchRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}
