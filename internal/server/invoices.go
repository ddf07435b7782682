package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
	v1 "github.com/luminexhq/invoicevault/gen/proto/invoices/v1"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/entity"
	"github.com/luminexhq/invoicevault/internal/queue"
	"github.com/luminexhq/invoicevault/internal/task"
)

func (s *InvoiceService) GetInvoice(ctx context.Context, req *v1.GetInvoiceRequest) (*v1.Invoice, error) {
	id, err := parseUUID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return toProtoInvoice(inv), nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, req *v1.ListInvoicesRequest) (*v1.ListInvoicesResponse, error) {
	ownerID, err := parseUUID("owner_id", req.GetOwnerId())
	if err != nil {
		return nil, err
	}
	invs, err := s.invoices.ListByOwner(ctx, ownerID, req.GetIncludeDeleted())
	if err != nil {
		return nil, common.ToStatus(err)
	}
	out := &v1.ListInvoicesResponse{Invoices: make([]*v1.Invoice, 0, len(invs))}
	for _, inv := range invs {
		out.Invoices = append(out.Invoices, toProtoInvoice(inv))
	}
	return out, nil
}

// DeleteInvoice soft-deletes: the row keeps its content hash and stays
// restorable. Any in-flight extraction for the invoice is cancelled.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, req *v1.DeleteInvoiceRequest) (*v1.Invoice, error) {
	id, err := parseUUID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.SoftDelete(ctx, id, time.Now())
	if err != nil {
		return nil, common.ToStatus(err)
	}
	s.cancelLatestTask(ctx, inv.ID)
	return toProtoInvoice(inv), nil
}

func (s *InvoiceService) RestoreInvoice(ctx context.Context, req *v1.RestoreInvoiceRequest) (*v1.Invoice, error) {
	id, err := parseUUID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.Restore(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	// A retained extraction payload is reused as-is; extraction only re-runs
	// when the invoice never got one.
	if !inv.HasExtraction() {
		s.enqueueExtraction(ctx, inv)
	}
	s.logger.Info("invoice restored", "invoice_id", inv.ID, "has_extraction", inv.HasExtraction())
	return toProtoInvoice(inv), nil
}

// enqueueExtraction creates and delivers a fresh task for an invoice without
// extraction output. Best-effort: a failure leaves the invoice restorable by
// a manual retry and is only logged.
func (s *InvoiceService) enqueueExtraction(ctx context.Context, inv *entity.Invoice) {
	tk, err := s.tasks.Create(ctx, inv.OwnerID, &inv.ID, constants.FormatForExt(inv.FileExt), constants.MaxTaskRetries)
	if err != nil {
		s.logger.Error("failed to create task after restore", "invoice_id", inv.ID, "err", err)
		return
	}
	key := ""
	if inv.StorageKey != nil {
		key = *inv.StorageKey
	}
	err = s.enq.EnqueueExtract(ctx, queue.ExtractPayload{
		TaskID:     tk.ID.String(),
		InvoiceID:  inv.ID.String(),
		OwnerID:    inv.OwnerID.String(),
		StorageKey: key,
		Filename:   inv.Filename,
		Format:     tk.Format,
	})
	if err != nil {
		s.logger.Error("failed to enqueue extraction after restore", "task_id", tk.ID, "err", err)
	}
}

// ArchiveInvoice parks an invoice, from any processing status.
func (s *InvoiceService) ArchiveInvoice(ctx context.Context, req *v1.ArchiveInvoiceRequest) (*v1.Invoice, error) {
	id, err := parseUUID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	prev := inv.Status
	if err := s.life.Archive(inv); err != nil {
		return nil, common.ToStatus(err)
	}
	if prev != inv.Status {
		if err := s.invoices.UpdateStatus(ctx, id, prev, constants.InvoiceStatusArchived); err != nil {
			return nil, common.ToStatus(err)
		}
	}
	return toProtoInvoice(inv), nil
}

func (s *InvoiceService) VerifyInvoice(ctx context.Context, req *v1.VerifyInvoiceRequest) (*v1.Invoice, error) {
	id, err := parseUUID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	verifierID, err := parseUUID("verifier_id", req.GetVerifierId())
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.Verify(ctx, id, verifierID, strings.TrimSpace(req.GetNotes()), time.Now())
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return toProtoInvoice(inv), nil
}

func (s *InvoiceService) SetReimbursementStatus(ctx context.Context, req *v1.SetReimbursementStatusRequest) (*v1.Invoice, error) {
	id, err := parseUUID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	next := constants.ReimbursementStatus(strings.ToUpper(strings.TrimSpace(req.GetReimbursementStatus())))

	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	prev := inv.ReimbursementStatus
	if err := s.life.SetReimbursementStatus(inv, next); err != nil {
		return nil, common.ToStatus(err)
	}
	if err := s.invoices.SetReimbursementStatus(ctx, id, prev, next); err != nil {
		return nil, common.ToStatus(err)
	}
	inv.ReimbursementStatus = next
	return toProtoInvoice(inv), nil
}

// ReopenReimbursement is the audited exception to the forward-only
// progression; the actor and reason land in the log.
func (s *InvoiceService) ReopenReimbursement(ctx context.Context, req *v1.ReopenReimbursementRequest) (*v1.Invoice, error) {
	id, err := parseUUID("invoice_id", req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	actorID, err := parseUUID("actor_id", req.GetActorId())
	if err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(req.GetReason())
	if reason == "" {
		return nil, common.InvalidArgumentError("reason is required")
	}

	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	prev := inv.ReimbursementStatus
	if err := s.life.ReopenReimbursement(inv, actorID, reason); err != nil {
		return nil, common.ToStatus(err)
	}
	if err := s.invoices.SetReimbursementStatus(ctx, id, prev, constants.ReimbursementUnsubmitted); err != nil {
		return nil, common.ToStatus(err)
	}
	return toProtoInvoice(inv), nil
}

// cancelLatestTask is best-effort cleanup after a delete. A task that
// already reached a terminal state is left alone.
func (s *InvoiceService) cancelLatestTask(ctx context.Context, invoiceID uuid.UUID) {
	tk, err := s.tasks.LatestForInvoice(ctx, invoiceID)
	if err != nil {
		return
	}
	prev := tk.Status
	if err := task.Cancel(tk, time.Now()); err != nil || tk.Status == prev {
		return
	}
	if err := s.tasks.ApplyTransition(ctx, tk, prev); err != nil {
		s.logger.Warn("failed to cancel task after delete", "task_id", tk.ID, "err", err)
	}
}
