// Package pipeline runs the batch loop: scan a download folder for PDFs,
// acquire their text, extract invoice records, deduplicate, archive the
// originals and hand completed records to the repository.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/arrowtc/invoice-pipeline/constants"
	"github.com/arrowtc/invoice-pipeline/internal/common"
	"github.com/arrowtc/invoice-pipeline/internal/dedup"
	"github.com/arrowtc/invoice-pipeline/internal/extract"
	"github.com/arrowtc/invoice-pipeline/internal/ocr"
	"github.com/arrowtc/invoice-pipeline/internal/pdfdoc"
	"github.com/arrowtc/invoice-pipeline/internal/render"
	"github.com/arrowtc/invoice-pipeline/internal/repository"
)

// TextAcquirer yields ordered page texts for a PDF.
type TextAcquirer interface {
	Acquire(ctx context.Context, src ocr.Source) ([]ocr.PageText, error)
}

// Result is the per-document outcome of one batch run.
type Result struct {
	File        string
	Status      constants.BatchStatus
	Fingerprint string
	InvoiceNo   string
	Missing     []string
	Err         error
}

// Summary aggregates a whole run.
type Summary struct {
	Results []Result
	Counts  map[constants.BatchStatus]int
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	s.Counts[r.Status]++
}

// Batch ties the stages together. Text acquisition runs concurrently up to
// the configured worker count; everything with side effects (dedup, file
// moves, inserts) runs in document order on the coordinating goroutine.
type Batch struct {
	cfg       common.BatchConfig
	acquirer  TextAcquirer
	extractor *extract.Extractor
	stripper  *pdfdoc.Stripper
	renderer  *render.Renderer
	store     *dedup.Store
	invoices  repository.InvoiceRepository
	logger    *slog.Logger
}

func NewBatch(
	cfg common.BatchConfig,
	acquirer TextAcquirer,
	extractor *extract.Extractor,
	stripper *pdfdoc.Stripper,
	renderer *render.Renderer,
	store *dedup.Store,
	invoices repository.InvoiceRepository,
	logger *slog.Logger,
) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if extractor == nil {
		extractor = extract.NewExtractor(nil)
	}
	return &Batch{
		cfg:       cfg,
		acquirer:  acquirer,
		extractor: extractor,
		stripper:  stripper,
		renderer:  renderer,
		store:     store,
		invoices:  invoices,
		logger:    logger,
	}
}

// Run processes every PDF currently in the download folder and flushes the
// dedup store once at the end. A per-document failure never aborts the run.
func (b *Batch) Run(ctx context.Context) (*Summary, error) {
	files, err := listPDFs(b.cfg.DownloadDir)
	if err != nil {
		return nil, err
	}
	summary := &Summary{Counts: map[constants.BatchStatus]int{}}
	if len(files) == 0 {
		b.logger.Info("batch.empty", "dir", b.cfg.DownloadDir)
		return summary, nil
	}
	for _, d := range []string{b.originDir(), b.attachmentDir(), b.renderedDir()} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("creating batch dir %s: %w", d, err)
		}
	}

	pages := b.acquireAll(ctx, files)

	for i, path := range files {
		res := b.processOne(ctx, path, pages[i].texts, pages[i].err)
		if res.Err != nil {
			b.logger.Error("batch.document", "file", res.File, "status", res.Status, "err", res.Err)
		} else {
			b.logger.Info("batch.document",
				"file", res.File,
				"status", res.Status,
				"invoice_no", res.InvoiceNo,
				"missing", res.Missing,
			)
		}
		summary.add(res)
	}

	if err := b.store.Flush(); err != nil {
		b.logger.Error("batch.dedup.flush", "err", err)
	}
	b.logger.Info("batch.done",
		"total", len(files),
		"processed", summary.Counts[constants.BatchStatusProcessed],
		"duplicate", summary.Counts[constants.BatchStatusDuplicate],
		"incomplete", summary.Counts[constants.BatchStatusIncomplete],
		"failed", summary.Counts[constants.BatchStatusFailed],
	)
	return summary, nil
}

type acquired struct {
	texts []string
	err   error
}

// acquireAll fans text acquisition out over the worker pool and returns the
// results indexed like files.
func (b *Batch) acquireAll(ctx context.Context, files []string) []acquired {
	out := make([]acquired, len(files))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < b.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				pageTexts, err := b.acquirer.Acquire(ctx, ocr.Source{Path: files[i]})
				texts := make([]string, len(pageTexts))
				for j, p := range pageTexts {
					texts[j] = p.Text
				}
				out[i] = acquired{texts: texts, err: err}
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}

func (b *Batch) processOne(ctx context.Context, path string, texts []string, acquireErr error) Result {
	res := Result{File: filepath.Base(path)}
	if acquireErr != nil {
		res.Status = constants.BatchStatusFailed
		res.Err = fmt.Errorf("acquiring text: %w", acquireErr)
		return res
	}

	rec := b.extractor.Extract(path, texts)
	rec.Normalize()
	res.InvoiceNo = deref(rec.InvoiceNo)

	fp, err := dedup.Fingerprint(rec)
	if err != nil {
		res.Status = constants.BatchStatusFailed
		res.Err = err
		return res
	}
	res.Fingerprint = fp
	if b.store.Contains(fp) {
		res.Status = constants.BatchStatusDuplicate
		return res
	}
	res.Missing = extract.MissingFields(rec)

	originPath := uniquePath(filepath.Join(b.originDir(), res.File))
	if err := moveFile(path, originPath); err != nil {
		res.Status = constants.BatchStatusFailed
		res.Err = fmt.Errorf("archiving original: %w", err)
		return res
	}
	rec.OriginPath = originPath

	attachmentPath := uniquePath(filepath.Join(b.attachmentDir(), res.File))
	if b.stripper != nil {
		if err := b.stripper.StripInvoicePage(originPath, attachmentPath, texts); err != nil {
			b.logger.Warn("batch.strip.failed", "file", res.File, "err", err)
			attachmentPath = ""
		}
	} else {
		attachmentPath = ""
	}
	rec.AttachmentPath = attachmentPath

	if b.invoices != nil && rec.InvoiceNo != nil && rec.InvoiceDate != nil && rec.Total != nil {
		ins, err := b.invoices.Insert(ctx, rec, fp)
		switch {
		case err != nil:
			b.logger.Warn("batch.insert.failed", "file", res.File, "err", err)
		case ins.Status == repository.InsertDuplicate:
			b.store.Add(fp)
			res.Status = constants.BatchStatusDuplicate
			return res
		}
	}

	if b.renderer != nil && rec.InvoiceNo != nil {
		rendered := filepath.Join(b.renderedDir(), *rec.InvoiceNo+"_summary.pdf")
		if err := b.renderer.RenderInvoiceFile(rec, rendered); err != nil {
			b.logger.Warn("batch.render.failed", "file", res.File, "err", err)
		}
	}

	b.store.Add(fp)
	if len(res.Missing) > 0 {
		res.Status = constants.BatchStatusIncomplete
	} else {
		res.Status = constants.BatchStatusProcessed
	}
	return res
}

func (b *Batch) originDir() string     { return filepath.Join(b.cfg.DownloadDir, "origin") }
func (b *Batch) attachmentDir() string { return filepath.Join(b.cfg.DownloadDir, "attachment") }
func (b *Batch) renderedDir() string   { return filepath.Join(b.cfg.DownloadDir, "rendered") }

// listPDFs returns the PDF files directly inside dir, sorted by name.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading download dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !constants.AllowedExt(filepath.Ext(e.Name())) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// moveFile renames, falling back to copy+remove across filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}

// uniquePath appends _1, _2, ... before the extension until the path is free.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	stem := path[:len(path)-len(ext)]
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
