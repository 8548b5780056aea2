package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicesv1 "github.com/arrowtc/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/arrowtc/invoice-pipeline/internal/common"
	"github.com/arrowtc/invoice-pipeline/internal/dedup"
	"github.com/arrowtc/invoice-pipeline/internal/export"
	"github.com/arrowtc/invoice-pipeline/internal/extract"
	"github.com/arrowtc/invoice-pipeline/internal/ocr"
	"github.com/arrowtc/invoice-pipeline/internal/pdfdoc"
	"github.com/arrowtc/invoice-pipeline/internal/pipeline"
	"github.com/arrowtc/invoice-pipeline/internal/render"
	"github.com/arrowtc/invoice-pipeline/internal/repository"
	"github.com/arrowtc/invoice-pipeline/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	invoices := repository.NewInvoiceRepository(entc, logger)
	exportSvc := export.NewService(invoices, logger)

	var registry *extract.Registry
	if cfg.Batch.RegistryFile != "" {
		registry, err = extract.LoadRegistry(cfg.Batch.RegistryFile)
		if err != nil {
			logger.Error("loading party registry", "path", cfg.Batch.RegistryFile, "error", err)
			os.Exit(1)
		}
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

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	invoicesv1.RegisterInvoicesServiceServer(grpcServer, server.NewInvoicesServer(invoices, logger))
	invoicesv1.RegisterExportServiceServer(grpcServer, server.NewExportServer(exportSvc, logger))
	invoicesv1.RegisterBatchServiceServer(grpcServer, server.NewBatchServer(batch, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
