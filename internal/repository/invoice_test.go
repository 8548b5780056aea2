package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowtc/invoice-pipeline/internal/extract"
)

func TestParseInvoiceDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"10/28/25", time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC), true},
		{"1/2/25", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"10/28/2025", time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC), true},
		{"10 /28/ 25", time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC), true},
		{"10/28.25", time.Time{}, false}, // point stripped leaves 10/2825
		{"", time.Time{}, false},
		{"not a date", time.Time{}, false},
	}
	for _, tt := range tests {
		got, err := ParseInvoiceDate(tt.in)
		if tt.ok {
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		} else {
			assert.Error(t, err, tt.in)
		}
	}
}

func testRecord() extract.InvoiceRecord {
	num := "103694"
	date := "10/28/25"
	so := "45122"
	total := 112585.0
	productNo := "HDPE-01"
	qty := 195800.0
	return extract.InvoiceRecord{
		File:        "invoice_103694.pdf",
		InvoiceNo:   &num,
		InvoiceDate: &date,
		SalesOrderNo: &so,
		ShipTo:      "Grupo Industrial Reyma S.A. de C.V.",
		BillTo:      "Arrow Trading LLC",
		Total:       &total,
		Products: []extract.ProductLineItem{{
			ProductNo: &productNo,
			ItemQty:   &qty,
		}},
		OriginPath:     "/data/origin/invoice_103694.pdf",
		AttachmentPath: "/data/attachment/invoice_103694.pdf",
	}
}

func TestInvoiceRepositoryInsert(t *testing.T) {
	ctx := context.Background()
	client, err := OpenInMemory(ctx)
	require.NoError(t, err)
	defer client.Close()

	repo := NewInvoiceRepository(client, nil)

	res, err := repo.Insert(ctx, testRecord(), "fp-1")
	require.NoError(t, err)
	assert.Equal(t, InsertOK, res.Status)
	assert.Equal(t, "103694", res.Num)

	rows, err := repo.List(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "103694", rows[0].Num)
	assert.Equal(t, 112585.0, rows[0].Total)

	files, err := rows[0].QueryFiles().All(ctx)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	got, err := repo.Get(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "103694", got.Num)

	_, err = repo.Get(ctx, uuid.New())
	assert.Error(t, err)
}

func TestInvoiceRepositoryDuplicateBackstop(t *testing.T) {
	ctx := context.Background()
	client, err := OpenInMemory(ctx)
	require.NoError(t, err)
	defer client.Close()

	repo := NewInvoiceRepository(client, nil)

	_, err = repo.Insert(ctx, testRecord(), "fp-1")
	require.NoError(t, err)

	// same number, date and total under a different fingerprint is still
	// the same invoice
	res, err := repo.Insert(ctx, testRecord(), "fp-2")
	require.NoError(t, err)
	assert.Equal(t, InsertDuplicate, res.Status)

	rows, err := repo.List(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestInvoiceRepositoryRejectsIncompleteKeys(t *testing.T) {
	ctx := context.Background()
	client, err := OpenInMemory(ctx)
	require.NoError(t, err)
	defer client.Close()

	repo := NewInvoiceRepository(client, nil)

	rec := testRecord()
	rec.InvoiceNo = nil
	_, err = repo.Insert(ctx, rec, "fp")
	assert.Error(t, err)

	rec = testRecord()
	rec.Total = nil
	_, err = repo.Insert(ctx, rec, "fp")
	assert.Error(t, err)
}

func TestInvoiceRepositoryListWindow(t *testing.T) {
	ctx := context.Background()
	client, err := OpenInMemory(ctx)
	require.NoError(t, err)
	defer client.Close()

	repo := NewInvoiceRepository(client, nil)

	early := testRecord()
	earlyNum, earlyDate := "100001", "1/15/25"
	early.InvoiceNo, early.InvoiceDate = &earlyNum, &earlyDate
	_, err = repo.Insert(ctx, early, "fp-early")
	require.NoError(t, err)

	late := testRecord()
	lateNum, lateDate := "100002", "6/15/25"
	late.InvoiceNo, late.InvoiceDate = &lateNum, &lateDate
	_, err = repo.Insert(ctx, late, "fp-late")
	require.NoError(t, err)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rows, err := repo.List(ctx, &from, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "100002", rows[0].Num)
}
