package ocr

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	calls []string
	out   map[string][]byte
	err   map[string]error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	if err, ok := s.err[name]; ok {
		return nil, []byte("boom"), err
	}
	if name == "pdftoppm" && len(args) > 0 {
		// fake the raster the acquirer globs for; preprocessing will fail
		// on the empty file and fall back to handing it straight to tesseract
		prefix := args[len(args)-1]
		if err := os.WriteFile(prefix+"-1.png", []byte("png"), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return s.out[name], nil, nil
}

func newTestAcquirer(stub *stubRunner) *Acquirer {
	a := NewAcquirer(Config{MinTextLength: 50}, slog.Default())
	a.runner = stub
	return a
}

func TestAcquireNativeTextSkipsOCR(t *testing.T) {
	longPage := strings.Repeat("COMMERCIAL INVOICE line ", 10)
	stub := &stubRunner{out: map[string][]byte{
		"pdftotext": []byte(longPage + "\f" + longPage + "\f"),
	}}
	a := newTestAcquirer(stub)

	pages, err := a.Acquire(context.Background(), Source{Path: "doc.pdf"})
	require.NoError(t, err)
	require.Len(t, pages, 2)

	for i, p := range pages {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, OriginNative, p.Origin)
		assert.Equal(t, longPage, p.Text)
	}
	for _, call := range stub.calls {
		assert.NotEqual(t, "pdftoppm", call)
		assert.NotEqual(t, "tesseract", call)
	}
}

func TestAcquireShortPageFallsBackToOCR(t *testing.T) {
	longPage := strings.Repeat("Ship To and terms text ", 10)
	stub := &stubRunner{out: map[string][]byte{
		"pdftotext": []byte("x\f" + longPage),
		"tesseract": []byte("RECOVERED PAGE ONE TEXT FROM SCAN"),
	}}
	a := newTestAcquirer(stub)

	pages, err := a.Acquire(context.Background(), Source{Path: "doc.pdf"})
	require.NoError(t, err)
	require.Len(t, pages, 2)

	// first page was near-empty natively: OCR volunteers more text
	assert.Equal(t, OriginOCR, pages[0].Origin)
	assert.Equal(t, "RECOVERED PAGE ONE TEXT FROM SCAN", pages[0].Text)
	// second page had plenty of native text
	assert.Equal(t, OriginNative, pages[1].Origin)
	assert.Contains(t, stub.calls, "pdftoppm")
}

func TestAcquireKeepsNativeWhenOCRIsNoBetter(t *testing.T) {
	stub := &stubRunner{out: map[string][]byte{
		"pdftotext": []byte("short native"),
		"tesseract": []byte("tiny"),
	}}
	a := newTestAcquirer(stub)

	pages, err := a.Acquire(context.Background(), Source{Path: "doc.pdf"})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, OriginNative, pages[0].Origin)
	assert.Equal(t, "short native", pages[0].Text)
}

func TestAcquireOCRFailureDegradesToNative(t *testing.T) {
	stub := &stubRunner{
		out: map[string][]byte{"pdftotext": []byte("stub")},
		err: map[string]error{"pdftoppm": assert.AnError},
	}
	a := newTestAcquirer(stub)

	pages, err := a.Acquire(context.Background(), Source{Path: "doc.pdf"})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, OriginNative, pages[0].Origin)
	assert.Equal(t, "stub", pages[0].Text)
}

func TestAcquireUnreadableDocumentReturnsError(t *testing.T) {
	stub := &stubRunner{err: map[string]error{"pdftotext": assert.AnError}}
	a := newTestAcquirer(stub)

	pages, err := a.Acquire(context.Background(), Source{Path: "corrupt.pdf"})
	assert.Error(t, err)
	assert.Empty(t, pages)
}

func TestAcquireMaxPagesCeiling(t *testing.T) {
	page := strings.Repeat("invoice text content padding out a page ", 5)
	stub := &stubRunner{out: map[string][]byte{
		"pdftotext": []byte(page + "\f" + page + "\f" + page),
	}}
	a := NewAcquirer(Config{MaxPages: 2}, slog.Default())
	a.runner = stub

	pages, err := a.Acquire(context.Background(), Source{Path: "doc.pdf"})
	require.NoError(t, err)
	assert.Len(t, pages, 2)
}

func TestAcquireRequiresPathOrContent(t *testing.T) {
	a := newTestAcquirer(&stubRunner{})
	_, err := a.Acquire(context.Background(), Source{})
	assert.Error(t, err)
}

func TestFullTextJoinsInOrder(t *testing.T) {
	got := FullText([]PageText{{Index: 0, Text: "a"}, {Index: 1, Text: "b"}})
	assert.Equal(t, "a\nb", got)
}
