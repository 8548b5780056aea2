package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/arrowtc/invoice-pipeline/constants"
	"github.com/arrowtc/invoice-pipeline/internal/common"
	"github.com/arrowtc/invoice-pipeline/internal/dedup"
	"github.com/arrowtc/invoice-pipeline/internal/export"
	"github.com/arrowtc/invoice-pipeline/internal/extract"
	"github.com/arrowtc/invoice-pipeline/internal/mail"
	"github.com/arrowtc/invoice-pipeline/internal/ocr"
	"github.com/arrowtc/invoice-pipeline/internal/pdfdoc"
	"github.com/arrowtc/invoice-pipeline/internal/pipeline"
	"github.com/arrowtc/invoice-pipeline/internal/render"
	"github.com/arrowtc/invoice-pipeline/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "download directory to process (overrides INVOICE_DOWNLOAD_DIR)")
		fetch   = flag.Bool("fetch", false, "pull new attachments from the mailbox first")
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		out     = flag.String("out", "", "output XLSX file path (optional)")
		fromStr = flag.String("from", "", "export from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "export to date YYYY-MM-DD")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *dir != "" {
		cfg.Batch.DownloadDir = *dir
	}
	if cfg.Batch.DownloadDir == "" {
		printError("Error: --dir or INVOICE_DOWNLOAD_DIR is required\n")
		os.Exit(1)
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	ctx := context.Background()

	registry, err := loadRegistry(cfg.Batch.RegistryFile)
	if err != nil {
		logger.Error("failed to load party registry", "path", cfg.Batch.RegistryFile, "error", err)
		os.Exit(1)
	}

	acquirer := ocr.NewAcquirer(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		PSM:           cfg.OCR.PSM,
		MinTextLength: cfg.OCR.MinTextLength,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	if *fetch {
		source := mail.NewSource(cfg.Mail, cfg.Batch.DownloadDir, pipeline.InvoiceNamer(acquirer, logger), logger)
		downloaded, err := source.Fetch(ctx)
		if err != nil {
			logger.Error("mail fetch failed", "error", err)
			os.Exit(1)
		}
		logger.Info("mail fetch complete", "downloaded", len(downloaded))
	}

	// Database is optional for a pure extraction run.
	var invoices repository.InvoiceRepository
	var exportSvc *export.Service
	switch {
	case *inmem:
		entc, err := repository.OpenInMemory(ctx)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		defer entc.Close()
		invoices = repository.NewInvoiceRepository(entc, logger)
	case cfg.Database.DSN != "":
		entc, pool, err := repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repository.Close(entc, pool, logger)
		invoices = repository.NewInvoiceRepository(entc, logger)
	default:
		logger.Warn("DB_URL not configured, records will not be persisted")
	}
	if invoices != nil {
		exportSvc = export.NewService(invoices, logger)
	}

	store := dedup.Open(cfg.Batch.DedupStore, logger)
	batch := pipeline.NewBatch(
		cfg.Batch,
		acquirer,
		extract.NewExtractor(registry),
		pdfdoc.NewStripper(logger),
		render.NewRenderer(logger),
		store,
		invoices,
		logger,
	)

	summary, err := batch.Run(ctx)
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	if *out != "" && exportSvc != nil {
		xlsxBytes, err := exportSvc.ExportInvoicesXLSX(ctx, from, to)
		if err != nil {
			logger.Error("failed to export invoices", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		logger.Info("exported invoices", "output_file", filepath.Clean(*out))
	}

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Processed: %d\n", summary.Counts[constants.BatchStatusProcessed])
	fmt.Printf("- Duplicates: %d\n", summary.Counts[constants.BatchStatusDuplicate])
	fmt.Printf("- Incomplete: %d\n", summary.Counts[constants.BatchStatusIncomplete])
	fmt.Printf("- Failed: %d\n", summary.Counts[constants.BatchStatusFailed])
}

func loadRegistry(path string) (*extract.Registry, error) {
	if path == "" {
		return nil, nil
	}
	return extract.LoadRegistry(path)
}
