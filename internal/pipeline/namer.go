package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/arrowtc/invoice-pipeline/internal/extract"
	"github.com/arrowtc/invoice-pipeline/internal/mail"
	"github.com/arrowtc/invoice-pipeline/internal/ocr"
)

const namerTimeout = 2 * time.Minute

// InvoiceNamer returns a mail attachment namer that prefixes downloaded
// files with the invoice number found in their text, so the download folder
// reads "103694_scan.pdf" instead of whatever the sender attached.
func InvoiceNamer(acquirer TextAcquirer, logger *slog.Logger) mail.Namer {
	if logger == nil {
		logger = slog.Default()
	}
	return func(content []byte, filename string) string {
		ctx, cancel := context.WithTimeout(context.Background(), namerTimeout)
		defer cancel()

		pageTexts, err := acquirer.Acquire(ctx, ocr.Source{Content: content})
		if err != nil || len(pageTexts) == 0 {
			logger.Warn("namer.acquire.failed", "file", filename, "err", err)
			return filename
		}
		texts := make([]string, len(pageTexts))
		for i, p := range pageTexts {
			texts[i] = p.Text
		}
		page := extract.FindInvoicePage(texts)
		headers := extract.ExtractHeaders(strings.Join(strings.Fields(page), " "))
		if headers.InvoiceNo == nil {
			return filename
		}
		no := *headers.InvoiceNo
		if strings.HasPrefix(filename, no+"_") {
			return filename
		}
		return no + "_" + filename
	}
}
