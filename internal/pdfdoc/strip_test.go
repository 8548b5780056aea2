package pdfdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPDF(t *testing.T, path string, pages ...string) {
	t.Helper()
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		pdf.AddPage()
		pdf.MultiCell(0, 8, text, "", "L", false)
	}
	require.NoError(t, pdf.OutputFileAndClose(path))
}

func TestStripInvoicePage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")

	pageTexts := []string{
		"PACKING LIST",
		"invoice no 103694 invoice date ship to bill to subtotal total",
		"CERTIFICATE OF ORIGIN",
	}
	writeTestPDF(t, in, pageTexts...)

	s := NewStripper(nil)
	require.NoError(t, s.StripInvoicePage(in, out, pageTexts))

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "the scored invoice page is removed")
}

func TestStripSinglePageCopiesThrough(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	writeTestPDF(t, in, "invoice no ship to subtotal")

	s := NewStripper(nil)
	require.NoError(t, s.StripInvoicePage(in, out, []string{"invoice no ship to subtotal"}))

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStripNoPageTextCopiesThrough(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	writeTestPDF(t, in, "a", "b")

	s := NewStripper(nil)
	require.NoError(t, s.StripInvoicePage(in, out, nil))

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStripUnreadableInputCopiesThrough(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, os.WriteFile(in, []byte("not a pdf"), 0o644))

	s := NewStripper(nil)
	require.NoError(t, s.StripInvoicePage(in, out, []string{"x", "y"}))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "not a pdf", string(raw))
}
