// Package pdfdoc performs page-level surgery on invoice PDFs.
package pdfdoc

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/arrowtc/invoice-pipeline/internal/extract"
)

// Stripper writes attachment copies of documents with the invoice page
// removed, leaving the packing and customs pages behind for forwarding.
type Stripper struct {
	conf   *model.Configuration
	logger *slog.Logger
}

func NewStripper(logger *slog.Logger) *Stripper {
	if logger == nil {
		logger = slog.Default()
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Stripper{conf: conf, logger: logger}
}

// StripInvoicePage copies the PDF at inPath to outPath with the invoice
// page removed. The page is chosen by scoring the already-acquired page
// texts, so no second text extraction pass runs here. When the page cannot
// be determined or removed, the document is copied through unchanged; an
// attachment with the invoice page still in it beats no attachment.
func (s *Stripper) StripInvoicePage(inPath, outPath string, pageTexts []string) error {
	if len(pageTexts) == 0 {
		s.logger.Warn("no page text available, copying document unchanged", "path", inPath)
		return copyFile(inPath, outPath)
	}

	pageCount, err := api.PageCountFile(inPath)
	if err != nil {
		s.logger.Warn("unreadable pdf, copying document unchanged", "path", inPath, "error", err)
		return copyFile(inPath, outPath)
	}
	if pageCount <= 1 {
		// removing the only page would leave an empty document
		return copyFile(inPath, outPath)
	}

	idx := extract.ScoreInvoicePage(pageTexts)
	if idx >= pageCount {
		s.logger.Warn("scored page index out of range, copying document unchanged",
			"path", inPath, "page", idx+1, "pages", pageCount)
		return copyFile(inPath, outPath)
	}

	selected := []string{fmt.Sprintf("%d", idx+1)}
	if err := api.RemovePagesFile(inPath, outPath, selected, s.conf); err != nil {
		s.logger.Warn("page removal failed, copying document unchanged", "path", inPath, "error", err)
		return copyFile(inPath, outPath)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
