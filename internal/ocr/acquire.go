package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Origin records how a page's text was obtained.
type Origin string

const (
	OriginNative Origin = "native"
	OriginOCR    Origin = "ocr"
)

// PageText is the text of one document page. Created once during
// acquisition and never mutated afterwards.
type PageText struct {
	Index  int
	Text   string
	Origin Origin
}

// Source identifies a document by filesystem path or raw byte content.
// Exactly one of the two must be set.
type Source struct {
	Path    string
	Content []byte
}

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string
	DPI           int // rasterization DPI for scanned pages, default 300
	PSM           int // page segmentation mode, default 4 (multi-column)

	MinTextLength int // below this, a page falls back to OCR; default 50
	MaxPages      int // 0 = no limit
}

// Acquirer produces per-page text for a PDF, preferring native extraction
// and falling back to optical recognition page by page.
type Acquirer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewAcquirer(cfg Config, logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 4
	}
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = 50
	}
	return &Acquirer{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Acquire returns the ordered page texts of src. A document that cannot be
// opened or parsed yields an empty slice and the error; callers are expected
// to log it and keep going rather than abort a batch.
func (a *Acquirer) Acquire(ctx context.Context, src Source) ([]PageText, error) {
	path := src.Path
	if src.Content != nil {
		tmp, err := os.CreateTemp("", "invoice-*.pdf")
		if err != nil {
			return nil, fmt.Errorf("materialize content: %w", err)
		}
		if _, err := tmp.Write(src.Content); err != nil {
			tmp.Close()
			a.removeTemp(tmp.Name())
			return nil, fmt.Errorf("materialize content: %w", err)
		}
		if err := tmp.Close(); err != nil {
			a.removeTemp(tmp.Name())
			return nil, fmt.Errorf("materialize content: %w", err)
		}
		path = tmp.Name()
		defer a.removeTemp(path)
	}
	if path == "" {
		return nil, fmt.Errorf("source has neither path nor content")
	}

	native, err := a.nativePages(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("native extraction: %w", err)
	}
	if a.cfg.MaxPages > 0 && len(native) > a.cfg.MaxPages {
		native = native[:a.cfg.MaxPages]
	}

	pages := make([]PageText, 0, len(native))
	for i, text := range native {
		page := PageText{Index: i, Text: text, Origin: OriginNative}
		if len(strings.TrimSpace(text)) < a.cfg.MinTextLength {
			ocrText, ocrErr := a.ocrPage(ctx, path, i+1)
			if ocrErr != nil {
				a.logger.Warn("page ocr failed", "path", path, "page", i+1, "error", ocrErr)
			} else if len(strings.TrimSpace(ocrText)) > len(strings.TrimSpace(text)) {
				page.Text = ocrText
				page.Origin = OriginOCR
			}
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// FullText joins page texts with newlines, in page order.
func FullText(pages []PageText) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\n")
}

// nativePages runs pdftotext over the whole document and splits on the
// form-feed page separator.
func (a *Acquirer) nativePages(ctx context.Context, path string) ([]string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := a.runner.Run(ctx, a.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w: %s", err, truncate(string(errb), 512))
	}
	text := strings.TrimSuffix(string(out), "\f")
	return strings.Split(text, "\f"), nil
}

// ocrPage rasterizes a single page, preprocesses the image, and runs
// tesseract on the result. All temp artifacts are removed before return.
func (a *Acquirer) ocrPage(ctx context.Context, path string, pageNum int) (string, error) {
	tmpDir, err := os.MkdirTemp("", "invoice-ocr-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			a.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -f N -l N -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := a.runner.Run(ctx, a.cfg.Pdftoppm,
		"-f", fmt.Sprintf("%d", pageNum), "-l", fmt.Sprintf("%d", pageNum),
		"-r", fmt.Sprintf("%d", a.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm: %w: %s", err, truncate(string(errb), 512))
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	if len(matches) == 0 {
		return "", fmt.Errorf("pdftoppm produced no image for page %d", pageNum)
	}

	processed := filepath.Join(tmpDir, "processed.png")
	if err := PreprocessImage(matches[0], processed); err != nil {
		// OCR the raw raster rather than give up on the page
		a.logger.Warn("image preprocessing failed, using raw raster", "page", pageNum, "error", err)
		processed = matches[0]
	}

	return a.tesseract(ctx, processed)
}

func (a *Acquirer) tesseract(ctx context.Context, imgPath string) (string, error) {
	args := []string{imgPath, "stdout", "-l", a.cfg.TesseractLang, "--psm", fmt.Sprintf("%d", a.cfg.PSM)}
	if a.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", a.cfg.TessdataDir)
	}
	out, errb, err := a.runner.Run(ctx, a.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}
	return string(out), nil
}

func (a *Acquirer) removeTemp(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		a.logger.Warn("failed to remove temp file", "path", path, "error", err)
	}
}
