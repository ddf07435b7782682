// Package lifecycle owns the invoice entity's two state machines: the
// processing status and the reimbursement status. The two axes are
// independent; verification is orthogonal to both.
package lifecycle

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/entity"
)

type Manager struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{logger: logger}
}

// StartProcessing moves a PENDING invoice into PROCESSING when its
// extraction task starts.
func (m *Manager) StartProcessing(inv *entity.Invoice) error {
	if inv.Status != constants.InvoiceStatusPending {
		return &common.InvalidStateError{Entity: "invoice", From: string(inv.Status), Op: "start processing"}
	}
	inv.Status = constants.InvoiceStatusProcessing
	return nil
}

// Archive is an explicit user action, allowed from any status.
func (m *Manager) Archive(inv *entity.Invoice) error {
	if inv.Status == constants.InvoiceStatusArchived {
		return nil
	}
	inv.Status = constants.InvoiceStatusArchived
	m.logger.Info("invoice archived", "invoice_id", inv.ID)
	return nil
}

// SetReimbursementStatus applies a forward-only transition on the
// reimbursement axis. Moving backwards requires ReopenReimbursement.
func (m *Manager) SetReimbursementStatus(inv *entity.Invoice, next constants.ReimbursementStatus) error {
	allowed := map[constants.ReimbursementStatus]constants.ReimbursementStatus{
		constants.ReimbursementUnsubmitted: constants.ReimbursementSubmitted,
		constants.ReimbursementSubmitted:   constants.ReimbursementReimbursed,
	}
	if allowed[inv.ReimbursementStatus] != next {
		return &common.InvalidStateError{
			Entity: "invoice",
			From:   string(inv.ReimbursementStatus),
			Op:     "set reimbursement_status to " + string(next),
		}
	}
	inv.ReimbursementStatus = next
	m.logger.Info("reimbursement status advanced", "invoice_id", inv.ID, "status", next)
	return nil
}

// ReopenReimbursement moves SUBMITTED or REIMBURSED back to UNSUBMITTED.
// Privileged and audited; never reachable through SetReimbursementStatus.
func (m *Manager) ReopenReimbursement(inv *entity.Invoice, actorID uuid.UUID, reason string) error {
	if inv.ReimbursementStatus == constants.ReimbursementUnsubmitted {
		return &common.InvalidStateError{Entity: "invoice", From: string(inv.ReimbursementStatus), Op: "reopen"}
	}
	prev := inv.ReimbursementStatus
	inv.ReimbursementStatus = constants.ReimbursementUnsubmitted
	m.logger.Warn("reimbursement reopened",
		"invoice_id", inv.ID,
		"actor_id", actorID,
		"previous", prev,
		"reason", reason,
	)
	return nil
}

// SoftDelete stamps deleted_at. The content hash is kept so the row stays
// dedup-addressable and a later re-upload can be offered a restore.
func (m *Manager) SoftDelete(inv *entity.Invoice, now time.Time) error {
	if inv.DeletedAt != nil {
		return &common.InvalidStateError{Entity: "invoice", From: "deleted", Op: "delete"}
	}
	inv.DeletedAt = &now
	m.logger.Info("invoice soft-deleted", "invoice_id", inv.ID)
	return nil
}

// Restore clears deleted_at. The uniqueness invariant makes a live duplicate
// impossible while this row is soft-deleted, but the repository re-checks
// defensively before persisting.
func (m *Manager) Restore(inv *entity.Invoice) error {
	if inv.DeletedAt == nil {
		return &common.InvalidStateError{Entity: "invoice", From: "live", Op: "restore"}
	}
	inv.DeletedAt = nil
	m.logger.Info("invoice restored", "invoice_id", inv.ID)
	return nil
}

// Verify marks the invoice verified. Allowed from any processing status.
func (m *Manager) Verify(inv *entity.Invoice, verifierID uuid.UUID, notes string, now time.Time) error {
	inv.IsVerified = true
	inv.VerifiedBy = &verifierID
	inv.VerifiedAt = &now
	if notes != "" {
		inv.VerificationNotes = &notes
	}
	m.logger.Info("invoice verified", "invoice_id", inv.ID, "verifier_id", verifierID)
	return nil
}
