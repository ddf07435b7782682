package lifecycle

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/internal/entity"
)

func newInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:                  uuid.New(),
		OwnerID:             uuid.New(),
		Status:              constants.InvoiceStatusPending,
		ReimbursementStatus: constants.ReimbursementUnsubmitted,
	}
}

func TestReimbursementForwardOnly(t *testing.T) {
	m := New(slog.Default())
	inv := newInvoice()

	if err := m.SetReimbursementStatus(inv, constants.ReimbursementReimbursed); err == nil {
		t.Fatalf("skipping SUBMITTED must fail")
	}
	if err := m.SetReimbursementStatus(inv, constants.ReimbursementSubmitted); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := m.SetReimbursementStatus(inv, constants.ReimbursementReimbursed); err != nil {
		t.Fatalf("reimburse: %v", err)
	}
	// generic path never moves backwards
	if err := m.SetReimbursementStatus(inv, constants.ReimbursementUnsubmitted); err == nil {
		t.Fatalf("backward transition must require reopen")
	}
}

func TestReopenReimbursement(t *testing.T) {
	m := New(slog.Default())
	inv := newInvoice()
	inv.ReimbursementStatus = constants.ReimbursementReimbursed

	if err := m.ReopenReimbursement(inv, uuid.New(), "wrong invoice attached"); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if inv.ReimbursementStatus != constants.ReimbursementUnsubmitted {
		t.Fatalf("status = %s, want UNSUBMITTED", inv.ReimbursementStatus)
	}
	if err := m.ReopenReimbursement(inv, uuid.New(), "again"); err == nil {
		t.Fatalf("reopen of UNSUBMITTED must fail")
	}
}

func TestReimbursementIndependentOfStatus(t *testing.T) {
	m := New(slog.Default())
	inv := newInvoice()
	inv.Status = constants.InvoiceStatusFailed

	if err := m.SetReimbursementStatus(inv, constants.ReimbursementSubmitted); err != nil {
		t.Fatalf("reimbursement axis must not depend on processing status: %v", err)
	}
}

func TestSoftDeleteAndRestore(t *testing.T) {
	m := New(slog.Default())
	inv := newInvoice()
	inv.ContentHash = []byte{1, 2, 3}
	now := time.Now()

	if err := m.SoftDelete(inv, now); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if inv.DeletedAt == nil || inv.Live() {
		t.Fatalf("invoice should be soft-deleted")
	}
	if len(inv.ContentHash) == 0 {
		t.Fatalf("content hash must survive soft delete")
	}
	if err := m.SoftDelete(inv, now); err == nil {
		t.Fatalf("double delete must fail")
	}

	if err := m.Restore(inv); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !inv.Live() {
		t.Fatalf("restore must clear deleted_at")
	}
	if err := m.Restore(inv); err == nil {
		t.Fatalf("restore of a live invoice must fail")
	}
}

func TestVerifyOrthogonalToStatus(t *testing.T) {
	m := New(slog.Default())
	for _, s := range []constants.InvoiceStatus{
		constants.InvoiceStatusPending,
		constants.InvoiceStatusProcessing,
		constants.InvoiceStatusCompleted,
		constants.InvoiceStatusFailed,
		constants.InvoiceStatusArchived,
	} {
		inv := newInvoice()
		inv.Status = s
		verifier := uuid.New()
		if err := m.Verify(inv, verifier, "checked against PO", time.Now()); err != nil {
			t.Fatalf("verify from %s: %v", s, err)
		}
		if !inv.IsVerified || inv.VerifiedBy == nil || *inv.VerifiedBy != verifier {
			t.Fatalf("verification metadata missing for %s", s)
		}
	}
}

func TestStartProcessing(t *testing.T) {
	m := New(slog.Default())
	inv := newInvoice()
	if err := m.StartProcessing(inv); err != nil {
		t.Fatalf("start processing: %v", err)
	}
	if err := m.StartProcessing(inv); err == nil {
		t.Fatalf("start processing twice must fail")
	}
}
