// Package worker drives extraction tasks delivered over asynq: it runs the
// provider against the stored bytes and records the outcome through the task
// state machine. Retry scheduling is decided here, not by asynq.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/entity"
	"github.com/luminexhq/invoicevault/internal/extraction"
	"github.com/luminexhq/invoicevault/internal/queue"
	"github.com/luminexhq/invoicevault/internal/reconcile"
	"github.com/luminexhq/invoicevault/internal/repository"
	"github.com/luminexhq/invoicevault/internal/storage"
	"github.com/luminexhq/invoicevault/internal/task"
)

// Processor is plugged into the asynq worker loop.
type Processor struct {
	invoices  repository.InvoiceRepository
	tasks     repository.TaskRepository
	store     storage.Store
	provider  extraction.Provider
	enq       queue.Enqueuer
	rec       *reconcile.Reconciler
	retryBase time.Duration
	logger    *slog.Logger
}

func NewProcessor(
	invoices repository.InvoiceRepository,
	tasks repository.TaskRepository,
	store storage.Store,
	provider extraction.Provider,
	enq queue.Enqueuer,
	rec *reconcile.Reconciler,
	retryBase time.Duration,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		invoices:  invoices,
		tasks:     tasks,
		store:     store,
		provider:  provider,
		enq:       enq,
		rec:       rec,
		retryBase: retryBase,
		logger:    logger,
	}
}

// Handler registers the extraction job handler.
func (p *Processor) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeExtractInvoice, p.handleExtract)
	return mux
}

func (p *Processor) handleExtract(ctx context.Context, job *asynq.Task) error {
	var payload queue.ExtractPayload
	if err := json.Unmarshal(job.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	taskID, err := uuid.Parse(payload.TaskID)
	if err != nil {
		return fmt.Errorf("bad task id %q: %w", payload.TaskID, err)
	}
	invoiceID, err := uuid.Parse(payload.InvoiceID)
	if err != nil {
		return fmt.Errorf("bad invoice id %q: %w", payload.InvoiceID, err)
	}

	tk, err := p.tasks.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("load task %s: %w", taskID, err)
	}
	// A cancel recorded while the job sat in the queue wins: terminal tasks
	// are never restarted.
	if tk.Status.Terminal() || task.TerminalFailure(tk) {
		p.logger.Info("skipping terminal task", "task_id", tk.ID, "status", tk.Status)
		return nil
	}

	prev := tk.Status
	now := time.Now()
	if err := task.Start(tk, now); err != nil {
		// Delivered early for a RETRYING task: hand it back to the queue.
		p.logger.Warn("task not startable", "task_id", tk.ID, "status", prev, "err", err)
		return err
	}
	if err := p.tasks.ApplyTransition(ctx, tk, prev); err != nil {
		if isLostRace(err) {
			p.logger.Info("task claimed by concurrent transition", "task_id", tk.ID)
			return nil
		}
		return fmt.Errorf("persist task start: %w", err)
	}

	// First attempt moves the invoice along; on a retry it is already
	// PROCESSING and the conditional update is a no-op conflict.
	if err := p.invoices.UpdateStatus(ctx, invoiceID, constants.InvoiceStatusPending, constants.InvoiceStatusProcessing); err != nil && !isLostRace(err) {
		return fmt.Errorf("mark invoice processing: %w", err)
	}

	data, err := p.store.Get(ctx, payload.StorageKey)
	if err != nil {
		return p.recordFailure(ctx, tk, invoiceID, payload,
			&common.TransientExtractionError{Err: fmt.Errorf("fetch %s: %w", payload.StorageKey, err)})
	}

	res, err := p.provider.Extract(ctx, extraction.Request{
		Filename: payload.Filename,
		Format:   payload.Format,
		Data:     data,
	})
	if err != nil {
		return p.recordFailure(ctx, tk, invoiceID, payload, err)
	}

	raw, err := res.Marshal()
	if err != nil {
		return p.recordFailure(ctx, tk, invoiceID, payload, err)
	}
	return p.recordSuccess(ctx, tk, invoiceID, raw)
}

// recordSuccess completes the task and reconciles the result into the
// invoice. If a cancel won the race with the conditional update, the result
// is dropped on the floor.
func (p *Processor) recordSuccess(ctx context.Context, tk *entity.ExtractionTask, invoiceID uuid.UUID, raw json.RawMessage) error {
	now := time.Now()
	if err := task.Complete(tk, raw, now); err != nil {
		return err
	}
	name := p.provider.Name()
	tk.ProviderName = &name
	if err := p.tasks.ApplyTransition(ctx, tk, constants.TaskStatusProcessing); err != nil {
		if isLostRace(err) {
			p.logger.Info("completion lost to concurrent cancel", "task_id", tk.ID)
			return nil
		}
		return fmt.Errorf("persist task completion: %w", err)
	}

	inv, err := p.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("load invoice %s: %w", invoiceID, err)
	}
	prev := inv.Status
	if err := p.rec.Reconcile(inv, tk); err != nil {
		return fmt.Errorf("reconcile invoice %s: %w", invoiceID, err)
	}
	if err := p.invoices.ApplyExtraction(ctx, inv, prev); err != nil {
		return fmt.Errorf("persist reconciled invoice %s: %w", invoiceID, err)
	}
	p.logger.Info("extraction completed", "task_id", tk.ID, "invoice_id", invoiceID, "needs_review", inv.NeedsReview)
	return nil
}

// recordFailure marks the task FAILED, then either schedules a retry
// (transient, budget left) or settles the failure on the invoice.
func (p *Processor) recordFailure(ctx context.Context, tk *entity.ExtractionTask, invoiceID uuid.UUID, payload queue.ExtractPayload, cause error) error {
	now := time.Now()
	if err := task.Fail(tk, cause.Error(), now); err != nil {
		return err
	}
	if err := p.tasks.ApplyTransition(ctx, tk, constants.TaskStatusProcessing); err != nil {
		if isLostRace(err) {
			p.logger.Info("failure lost to concurrent cancel", "task_id", tk.ID)
			return nil
		}
		return fmt.Errorf("persist task failure: %w", err)
	}

	if common.IsTransient(cause) {
		delay := task.Backoff(p.retryBase, tk.RetryCount+1)
		if err := task.ScheduleRetry(tk, delay, now); err == nil {
			if err := p.tasks.ApplyTransition(ctx, tk, constants.TaskStatusFailed); err != nil {
				if isLostRace(err) {
					return nil
				}
				return fmt.Errorf("persist retry schedule: %w", err)
			}
			if err := p.enq.EnqueueRetry(ctx, payload, delay); err != nil {
				// The row already says RETRYING; the sweeper will pick it up.
				p.logger.Error("failed to enqueue retry", "task_id", tk.ID, "err", err)
			}
			p.logger.Warn("extraction failed, retry scheduled",
				"task_id", tk.ID, "attempt", tk.RetryCount, "delay", delay, "cause", cause)
			return nil
		} else if !errors.As(err, new(*common.RetryExhaustedError)) {
			return err
		}
	}

	// Terminal: permanent fault or a spent budget.
	inv, err := p.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("load invoice %s: %w", invoiceID, err)
	}
	prev := inv.Status
	if err := p.rec.MarkFailed(inv, tk); err != nil {
		return err
	}
	if err := p.invoices.UpdateStatus(ctx, invoiceID, prev, constants.InvoiceStatusFailed); err != nil && !isLostRace(err) {
		return fmt.Errorf("mark invoice failed: %w", err)
	}
	p.logger.Error("extraction failed for good",
		"task_id", tk.ID, "invoice_id", invoiceID, "retries", tk.RetryCount, "cause", cause)
	return nil
}

func isLostRace(err error) bool {
	var se *common.InvalidStateError
	return errors.As(err, &se)
}
