package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/arrowtc/invoice-pipeline/internal/common"
	"github.com/arrowtc/invoice-pipeline/internal/dedup"
	"github.com/arrowtc/invoice-pipeline/internal/extract"
	"github.com/arrowtc/invoice-pipeline/internal/ocr"
)

// runextract acquires one PDF, extracts the invoice record and prints it as
// JSON. Handy for checking what the extractors see on a troublesome scan.
func main() {
	registryPath := flag.String("registry", "", "party-registry override file (JSON)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: runextract [-registry file.json] <invoice.pdf>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	var registry *extract.Registry
	if *registryPath != "" {
		var err error
		registry, err = extract.LoadRegistry(*registryPath)
		if err != nil {
			logger.Error("loading party registry", "path", *registryPath, "error", err)
			os.Exit(1)
		}
	}

	cfg := common.LoadConfig()
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pages, err := acquirer.Acquire(ctx, ocr.Source{Path: path})
	if err != nil {
		logger.Error("acquiring text", "file", path, "error", err)
		os.Exit(1)
	}

	texts := make([]string, len(pages))
	for i, p := range pages {
		texts[i] = p.Text
	}
	rec := extract.NewExtractor(registry).Extract(path, texts)
	rec.Normalize()

	fp, err := dedup.Fingerprint(rec)
	if err != nil {
		logger.Error("fingerprinting", "file", path, "error", err)
		os.Exit(1)
	}

	out := struct {
		Record      extract.InvoiceRecord `json:"record"`
		Fingerprint string                `json:"fingerprint"`
		Missing     []string              `json:"missing_fields"`
	}{rec, fp, extract.MissingFields(rec)}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encoding output", "error", err)
		os.Exit(1)
	}
}
