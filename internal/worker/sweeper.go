package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/luminexhq/invoicevault/internal/queue"
	"github.com/luminexhq/invoicevault/internal/repository"
)

// Sweeper re-delivers RETRYING tasks whose wait has elapsed but whose queue
// message was lost (a crashed enqueue, a flushed redis). It is a safety net;
// the normal path is the delayed enqueue made when the retry was scheduled.
type Sweeper struct {
	invoices repository.InvoiceRepository
	tasks    repository.TaskRepository
	enq      queue.Enqueuer
	interval time.Duration
	batch    int
	logger   *slog.Logger
}

func NewSweeper(invoices repository.InvoiceRepository, tasks repository.TaskRepository, enq queue.Enqueuer, interval time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		invoices: invoices,
		tasks:    tasks,
		enq:      enq,
		interval: interval,
		batch:    100,
		logger:   logger,
	}
}

// Run loops until ctx is done. Duplicate deliveries are harmless: the task
// start is a conditional update, so only one worker claims the row.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	eligible, err := s.tasks.ListRetryEligible(ctx, time.Now(), s.batch)
	if err != nil {
		s.logger.Error("retry sweep query failed", "err", err)
		return
	}
	for _, tk := range eligible {
		if tk.InvoiceID == nil {
			continue
		}
		inv, err := s.invoices.GetByID(ctx, *tk.InvoiceID)
		if err != nil {
			s.logger.Error("retry sweep: invoice lookup failed", "task_id", tk.ID, "err", err)
			continue
		}
		key := ""
		if inv.StorageKey != nil {
			key = *inv.StorageKey
		}
		err = s.enq.EnqueueExtract(ctx, queue.ExtractPayload{
			TaskID:     tk.ID.String(),
			InvoiceID:  inv.ID.String(),
			OwnerID:    tk.OwnerID.String(),
			StorageKey: key,
			Filename:   inv.Filename,
			Format:     tk.Format,
		})
		if err != nil {
			s.logger.Error("retry sweep: enqueue failed", "task_id", tk.ID, "err", err)
			continue
		}
		s.logger.Info("retry re-delivered", "task_id", tk.ID, "attempt", tk.RetryCount)
	}
}
