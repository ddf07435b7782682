package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/extraction"
	"github.com/luminexhq/invoicevault/internal/queue"
	"github.com/luminexhq/invoicevault/internal/reconcile"
	repo "github.com/luminexhq/invoicevault/internal/repository"
	"github.com/luminexhq/invoicevault/internal/storage"
	"github.com/luminexhq/invoicevault/internal/worker"
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

	provider := extraction.NewPDFLocal()
	rec := reconcile.New(logger)
	processor := worker.NewProcessor(invoicesRepo, tasksRepo, store, provider, q, rec, cfg.Ingest.RetryBaseWait, logger)

	sweeper := worker.NewSweeper(invoicesRepo, tasksRepo, q, time.Minute, logger)
	go sweeper.Run(ctx)

	server := asynq.NewServer(asynq.RedisClientOpt{
		Addr: cfg.Queue.RedisAddr,
	}, asynq.Config{
		Concurrency: cfg.Queue.Concurrency,
	})

	go func() {
		<-ctx.Done()
		server.Shutdown()
	}()

	logger.Info("worker starting", "redis", cfg.Queue.RedisAddr, "concurrency", cfg.Queue.Concurrency)
	if err := server.Run(processor.Handler()); err != nil {
		logger.Error("worker stopped", "error", err)
		os.Exit(1)
	}
}
