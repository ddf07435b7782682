package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/luminexhq/invoicevault/gen/proto/invoices/v1"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/export"
	"github.com/luminexhq/invoicevault/internal/ingest"
	"github.com/luminexhq/invoicevault/internal/lifecycle"
	"github.com/luminexhq/invoicevault/internal/queue"
	repo "github.com/luminexhq/invoicevault/internal/repository"
	svc "github.com/luminexhq/invoicevault/internal/server"
	"github.com/luminexhq/invoicevault/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
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
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewMinioStore(cfg.Storage)
	if err != nil {
		logger.Error("failed to init object storage", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Error("failed to ensure bucket", "error", err)
		os.Exit(1)
	}

	q := queue.NewClient(cfg.Queue.RedisAddr)
	defer func() { _ = q.Close() }()

	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	tasksRepo := repo.NewTaskRepository(entc, logger)

	policy := ingest.DefaultPolicy()
	policy.MaxBatchFiles = cfg.Ingest.MaxBatchFiles
	policy.MaxFileBytes = cfg.Ingest.MaxFileBytes
	policy.MaxRetries = cfg.Ingest.MaxRetries
	orch := ingest.NewOrchestrator(invoicesRepo, tasksRepo, store, q, policy, logger)

	life := lifecycle.New(logger)
	exporter := export.NewService(invoicesRepo, logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	invoiceService := svc.NewInvoiceService(orch, invoicesRepo, tasksRepo, life, q, exporter, logger)
	v1.RegisterInvoiceServiceServer(grpcServer, invoiceService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("invoiced listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
