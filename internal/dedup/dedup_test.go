package dedup

import (
	"os"
	"path/filepath"
	"testing"

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
	ship := "10/26/25"
	due := "11/25/25"
	method := "RAILCAR"
	sub := 112585.0
	total := 112585.0
	return extract.InvoiceRecord{
		File:         "invoice_103694.pdf",
		FilePath:     "/inbox/invoice_103694.pdf",
		InvoiceNo:    &no,
		InvoiceDate:  &date,
		SalesOrderNo: &so,
		Incoterm:     &inco,
		PaymentTerms: &terms,
		ShipDate:     &ship,
		DueDate:      &due,
		Method:       &method,
		Subtotal:     &sub,
		Total:        &total,
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a, err := Fingerprint(sampleRecord())
	require.NoError(t, err)
	b, err := Fingerprint(sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprintIgnoresNonIdentityFields(t *testing.T) {
	base, err := Fingerprint(sampleRecord())
	require.NoError(t, err)

	r := sampleRecord()
	r.File = "copy_of_invoice.pdf"
	r.FilePath = "/elsewhere/copy_of_invoice.pdf"
	r.ShipTo = "some address"
	r.BillTo = "another address"
	r.NeedsReview = true

	got, err := Fingerprint(r)
	require.NoError(t, err)
	assert.Equal(t, base, got, "file name, paths and addresses must not change identity")
}

func TestFingerprintSensitiveToIdentityFields(t *testing.T) {
	base, err := Fingerprint(sampleRecord())
	require.NoError(t, err)

	r := sampleRecord()
	other := "103695"
	r.InvoiceNo = &other
	got, err := Fingerprint(r)
	require.NoError(t, err)
	assert.NotEqual(t, base, got)

	r = sampleRecord()
	r.Total = nil
	got, err = Fingerprint(r)
	require.NoError(t, err)
	assert.NotEqual(t, base, got, "a missing total is a different identity")
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")

	s := Open(path, nil)
	assert.False(t, s.Contains("abc"))
	assert.True(t, s.Add("abc"))
	assert.False(t, s.Add("abc"), "second add reports already present")
	assert.True(t, s.Add("def"))
	require.NoError(t, s.Flush())

	reopened := Open(path, nil)
	assert.True(t, reopened.Contains("abc"))
	assert.True(t, reopened.Contains("def"))
	assert.Equal(t, 2, reopened.Len())
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "absent.json"), nil)
	assert.Equal(t, 0, s.Len())
}

func TestStoreCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	s := Open(path, nil)
	assert.Equal(t, 0, s.Len())

	// flushing rewrites the file whole
	s.Add("abc")
	require.NoError(t, s.Flush())
	assert.True(t, Open(path, nil).Contains("abc"))
}
