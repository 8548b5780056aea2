package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/arrowtc/invoice-pipeline/internal/extract"
	"github.com/arrowtc/invoice-pipeline/internal/repository"
)

func TestExportInvoicesXLSX(t *testing.T) {
	ctx := context.Background()
	client, err := repository.OpenInMemory(ctx)
	require.NoError(t, err)
	defer client.Close()

	repo := repository.NewInvoiceRepository(client, nil)

	num, date, total := "103694", "10/28/25", 112585.0
	_, err = repo.Insert(ctx, extract.InvoiceRecord{
		InvoiceNo:   &num,
		InvoiceDate: &date,
		Total:       &total,
		ShipTo:      "Grupo Industrial Reyma S.A. de C.V.",
		BillTo:      "Arrow Trading LLC",
	}, "fp-1")
	require.NoError(t, err)

	svc := NewService(repo, nil)
	out, err := svc.ExportInvoicesXLSX(ctx, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one invoice")
	assert.Equal(t, "Invoice No", rows[0][0])
	assert.Equal(t, "103694", rows[1][0])
	assert.Equal(t, "2025-10-28", rows[1][1])
}
