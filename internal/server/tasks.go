package server

import (
	"context"
	"time"

	"github.com/luminexhq/invoicevault/constants"
	v1 "github.com/luminexhq/invoicevault/gen/proto/invoices/v1"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/queue"
	"github.com/luminexhq/invoicevault/internal/task"
)

func (s *InvoiceService) GetExtractionTask(ctx context.Context, req *v1.GetExtractionTaskRequest) (*v1.ExtractionTask, error) {
	id, err := parseUUID("task_id", req.GetTaskId())
	if err != nil {
		return nil, err
	}
	tk, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return toProtoTask(tk), nil
}

// RetryExtraction re-drives a FAILED extraction on operator request. It
// charges the normal retry budget; a spent budget is a FailedPrecondition.
func (s *InvoiceService) RetryExtraction(ctx context.Context, req *v1.RetryExtractionRequest) (*v1.RetryExtractionResponse, error) {
	invoiceID, err := parseUUID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	tk, err := s.tasks.LatestForInvoice(ctx, invoiceID)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	if tk.Status != constants.TaskStatusFailed {
		return nil, common.ToStatus(&common.InvalidStateError{Entity: "task", From: string(tk.Status), Op: "retry"})
	}

	// Operator retries skip the backoff wait.
	delay := time.Second
	now := time.Now()
	if err := task.ScheduleRetry(tk, delay, now); err != nil {
		return nil, common.ToStatus(err)
	}
	if err := s.tasks.ApplyTransition(ctx, tk, constants.TaskStatusFailed); err != nil {
		return nil, common.ToStatus(err)
	}

	key := ""
	if inv.StorageKey != nil {
		key = *inv.StorageKey
	}
	payload := queue.ExtractPayload{
		TaskID:     tk.ID.String(),
		InvoiceID:  inv.ID.String(),
		OwnerID:    tk.OwnerID.String(),
		StorageKey: key,
		Filename:   inv.Filename,
		Format:     tk.Format,
	}
	if err := s.enq.EnqueueRetry(ctx, payload, delay); err != nil {
		s.logger.Error("failed to enqueue manual retry", "task_id", tk.ID, "err", err)
		return nil, common.InternalError("failed to enqueue retry")
	}
	s.logger.Info("manual retry scheduled", "task_id", tk.ID, "invoice_id", inv.ID, "attempt", tk.RetryCount)
	return &v1.RetryExtractionResponse{Task: toProtoTask(tk)}, nil
}

// CancelExtraction moves a non-terminal task to CANCELLED. Cancelling a task
// that already finished is a no-op and returns the task as-is.
func (s *InvoiceService) CancelExtraction(ctx context.Context, req *v1.CancelExtractionRequest) (*v1.ExtractionTask, error) {
	id, err := parseUUID("task_id", req.GetTaskId())
	if err != nil {
		return nil, err
	}
	tk, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	prev := tk.Status
	if err := task.Cancel(tk, time.Now()); err != nil {
		return nil, common.ToStatus(err)
	}
	if tk.Status == prev {
		return toProtoTask(tk), nil
	}
	if err := s.tasks.ApplyTransition(ctx, tk, prev); err != nil {
		return nil, common.ToStatus(err)
	}
	s.logger.Info("extraction cancelled", "task_id", tk.ID, "from", prev)
	return toProtoTask(tk), nil
}
