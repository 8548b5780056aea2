package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowtc/invoice-pipeline/constants"
	"github.com/arrowtc/invoice-pipeline/gen/ent"
	"github.com/arrowtc/invoice-pipeline/internal/common"
	"github.com/arrowtc/invoice-pipeline/internal/dedup"
	"github.com/arrowtc/invoice-pipeline/internal/extract"
	"github.com/arrowtc/invoice-pipeline/internal/ocr"
	"github.com/arrowtc/invoice-pipeline/internal/pdfdoc"
	"github.com/arrowtc/invoice-pipeline/internal/render"
	"github.com/arrowtc/invoice-pipeline/internal/repository"
)

const invoicePage = `COMMERCIAL INVOICE
Invoice No: 103694 Invoice Date: 10/28/25
Ship To: Grupo Industrial Reyma SA de CV c/o Medina Logistic Services, Inc. Laredo TX Bill To: Arrow Trading LLC 28789 Hardin Store Rd. Suite 230 Magnolia, TX 77354
Incoterm Payment Terms Ship Date Due Date Method of Shipment
DAP Laredo: Net 30 Days 10/26/25 11/25/25 RAILCAR
Product No. Item Qty U/M Description Price Each Amount
HDPE-01 195,800/LBS HDPE Resin Pellets RAILCAR # FPAX214289 0.57500 112,585.00
Subtotal 112,585.00
TOTAL 112,585.00`

const packingPage = `PACKING LIST
S/O NO: 45122
RAILCAR # FPAX214289`

const barePage = `COMMERCIAL INVOICE
Invoice No: 777
Ship To: Grupo Industrial Reyma SA de CV Bill To:`

// stubAcquirer serves canned page texts keyed by file basename; content
// sources are routed through contentPages.
type stubAcquirer struct {
	byName       map[string][]string
	contentPages []string
	err          error
}

func (s *stubAcquirer) Acquire(_ context.Context, src ocr.Source) ([]ocr.PageText, error) {
	if s.err != nil {
		return nil, s.err
	}
	var texts []string
	if src.Content != nil {
		texts = s.contentPages
	} else {
		texts = s.byName[filepath.Base(src.Path)]
	}
	pages := make([]ocr.PageText, len(texts))
	for i, t := range texts {
		pages[i] = ocr.PageText{Index: i, Text: t, Origin: ocr.OriginNative}
	}
	return pages, nil
}

type fakeRepo struct {
	inserted  []string
	duplicate bool
}

func (f *fakeRepo) Insert(_ context.Context, rec extract.InvoiceRecord, _ string) (*repository.InsertResult, error) {
	if f.duplicate {
		return &repository.InsertResult{Status: repository.InsertDuplicate}, nil
	}
	num := ""
	if rec.InvoiceNo != nil {
		num = *rec.InvoiceNo
	}
	f.inserted = append(f.inserted, num)
	return &repository.InsertResult{Status: repository.InsertOK, ID: "1", Num: num}, nil
}

func (f *fakeRepo) List(context.Context, *time.Time, *time.Time) ([]*ent.Invoice, error) {
	return nil, nil
}

func (f *fakeRepo) Get(context.Context, uuid.UUID) (*ent.Invoice, error) {
	return nil, os.ErrNotExist
}

func writeTestPDF(t *testing.T, path string, pages int) {
	t.Helper()
	doc := fpdf.New("P", "mm", "Letter", "")
	for i := 0; i < pages; i++ {
		doc.AddPage()
		doc.SetFont("Arial", "", 12)
		doc.MultiCell(0, 8, fmt.Sprintf("page %d", i+1), "", "L", false)
	}
	require.NoError(t, doc.OutputFileAndClose(path))
}

func newTestBatch(t *testing.T, dir string, acq TextAcquirer, repo repository.InvoiceRepository) (*Batch, *dedup.Store) {
	t.Helper()
	store := dedup.Open(filepath.Join(dir, "seen.json"), nil)
	cfg := common.BatchConfig{DownloadDir: dir, Workers: 2}
	b := NewBatch(cfg, acq, extract.NewExtractor(nil), pdfdoc.NewStripper(nil), render.NewRenderer(nil), store, repo, nil)
	return b, store
}

func TestBatchRun(t *testing.T) {
	dir := t.TempDir()
	writeTestPDF(t, filepath.Join(dir, "invoice_103694.pdf"), 2)
	writeTestPDF(t, filepath.Join(dir, "bare.pdf"), 1)

	acq := &stubAcquirer{byName: map[string][]string{
		"invoice_103694.pdf": {packingPage, invoicePage},
		"bare.pdf":           {barePage},
	}}
	repo := &fakeRepo{}
	b, store := newTestBatch(t, dir, acq, repo)

	summary, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 2)
	assert.Equal(t, 1, summary.Counts[constants.BatchStatusProcessed])
	assert.Equal(t, 1, summary.Counts[constants.BatchStatusIncomplete])

	// the complete invoice reached the repository, the bare one did not
	assert.Equal(t, []string{"103694"}, repo.inserted)

	// original archived, invoice page stripped from the attachment copy
	origin := filepath.Join(dir, "origin", "invoice_103694.pdf")
	attachment := filepath.Join(dir, "attachment", "invoice_103694.pdf")
	require.FileExists(t, origin)
	require.FileExists(t, attachment)
	count, err := api.PageCountFile(attachment)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "the scored invoice page is removed")

	// a clean rendition sits next to the archives
	require.FileExists(t, filepath.Join(dir, "rendered", "103694_summary.pdf"))

	// both fingerprints were recorded and flushed
	assert.Equal(t, 2, store.Len())
	require.FileExists(t, filepath.Join(dir, "seen.json"))

	// download dir holds no loose PDFs anymore
	left, err := listPDFs(dir)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestBatchRunSecondPassIsDuplicate(t *testing.T) {
	dir := t.TempDir()
	acq := &stubAcquirer{byName: map[string][]string{
		"invoice_103694.pdf": {packingPage, invoicePage},
	}}
	repo := &fakeRepo{}
	b, _ := newTestBatch(t, dir, acq, repo)

	writeTestPDF(t, filepath.Join(dir, "invoice_103694.pdf"), 2)
	first, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Counts[constants.BatchStatusProcessed])

	// the same document shows up again
	writeTestPDF(t, filepath.Join(dir, "invoice_103694.pdf"), 2)
	second, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, second.Counts[constants.BatchStatusDuplicate])
	assert.Len(t, repo.inserted, 1, "duplicates never reach the repository")
}

func TestBatchRunRepositoryBackstop(t *testing.T) {
	dir := t.TempDir()
	writeTestPDF(t, filepath.Join(dir, "invoice_103694.pdf"), 2)
	acq := &stubAcquirer{byName: map[string][]string{
		"invoice_103694.pdf": {packingPage, invoicePage},
	}}
	b, store := newTestBatch(t, dir, acq, &fakeRepo{duplicate: true})

	summary, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts[constants.BatchStatusDuplicate])
	assert.Equal(t, 1, store.Len(), "backstop duplicates still record their fingerprint")
}

func TestBatchRunAcquireFailure(t *testing.T) {
	dir := t.TempDir()
	writeTestPDF(t, filepath.Join(dir, "broken.pdf"), 1)
	acq := &stubAcquirer{err: os.ErrPermission}
	b, _ := newTestBatch(t, dir, acq, nil)

	summary, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, constants.BatchStatusFailed, summary.Results[0].Status)
	assert.Error(t, summary.Results[0].Err)
}

func TestBatchRunEmptyDir(t *testing.T) {
	dir := t.TempDir()
	b, _ := newTestBatch(t, dir, &stubAcquirer{}, nil)

	summary, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summary.Results)
}

func TestInvoiceNamer(t *testing.T) {
	acq := &stubAcquirer{contentPages: []string{invoicePage}}
	namer := InvoiceNamer(acq, nil)

	assert.Equal(t, "103694_scan.pdf", namer([]byte("%PDF"), "scan.pdf"))
	assert.Equal(t, "103694_scan.pdf", namer([]byte("%PDF"), "103694_scan.pdf"), "already prefixed names stay put")

	acq.contentPages = []string{"no header here"}
	assert.Equal(t, "scan.pdf", namer([]byte("%PDF"), "scan.pdf"))

	acq.err = os.ErrPermission
	assert.Equal(t, "scan.pdf", namer([]byte("%PDF"), "scan.pdf"))
}
