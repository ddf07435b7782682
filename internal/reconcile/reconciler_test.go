package reconcile

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/internal/entity"
	"github.com/luminexhq/invoicevault/internal/extraction"
)

func completedTask(t *testing.T, res *extraction.Result) *entity.ExtractionTask {
	t.Helper()
	payload, err := res.Marshal()
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	return &entity.ExtractionTask{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		Status:        constants.TaskStatusCompleted,
		ResultPayload: payload,
	}
}

func testInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Status:  constants.InvoiceStatusProcessing,
	}
}

func TestReconcileFillsFields(t *testing.T) {
	r := New(slog.Default())
	inv := testInvoice()
	tk := completedTask(t, &extraction.Result{
		Provider: "pdflocal",
		Fields: extraction.Fields{
			InvoiceNumber: "INV-42",
			InvoiceDate:   "2024-06-01",
			IssuerName:    "ACME GmbH",
			TotalAmount:   "99.95",
			TaxAmount:     "15.95",
			CurrencyCode:  "eur",
		},
		Confidence: extraction.Confidence{Overall: 0.92},
	})

	if err := r.Reconcile(inv, tk); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if inv.Status != constants.InvoiceStatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", inv.Status)
	}
	if inv.InvoiceNumber == nil || *inv.InvoiceNumber != "INV-42" {
		t.Fatalf("invoice_number not filled")
	}
	if inv.InvoiceDate == nil || !inv.InvoiceDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("invoice_date not filled: %v", inv.InvoiceDate)
	}
	if inv.TotalAmount == nil || *inv.TotalAmount != 99.95 {
		t.Fatalf("total_amount not filled")
	}
	if inv.CurrencyCode == nil || *inv.CurrencyCode != "EUR" {
		t.Fatalf("currency_code not normalized: %v", inv.CurrencyCode)
	}
	if inv.NeedsReview {
		t.Fatalf("confidence 0.92 must not flag review")
	}
}

func TestReconcileFillIfPresent(t *testing.T) {
	r := New(slog.Default())
	inv := testInvoice()
	existing := "INV-KEEP"
	issuer := "Original Issuer"
	inv.InvoiceNumber = &existing
	inv.IssuerName = &issuer

	// result carries no invoice_number and no issuer_name
	tk := completedTask(t, &extraction.Result{
		Provider:   "pdflocal",
		Fields:     extraction.Fields{TotalAmount: "10.00"},
		Confidence: extraction.Confidence{Overall: 0.9},
	})
	if err := r.Reconcile(inv, tk); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if inv.InvoiceNumber == nil || *inv.InvoiceNumber != "INV-KEEP" {
		t.Fatalf("missing field cleared an existing value")
	}
	if inv.IssuerName == nil || *inv.IssuerName != "Original Issuer" {
		t.Fatalf("missing issuer_name cleared an existing value")
	}
	if inv.TotalAmount == nil || *inv.TotalAmount != 10.0 {
		t.Fatalf("present field not applied")
	}
}

func TestReconcileLowConfidenceFlagsReview(t *testing.T) {
	r := New(slog.Default())
	inv := testInvoice()
	tk := completedTask(t, &extraction.Result{
		Provider:   "pdflocal",
		Confidence: extraction.Confidence{Overall: 0.4},
	})
	if err := r.Reconcile(inv, tk); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !inv.NeedsReview {
		t.Fatalf("confidence 0.4 must flag needs_review")
	}
}

func TestReconcileRejectsNonCompletedTask(t *testing.T) {
	r := New(slog.Default())
	inv := testInvoice()
	tk := &entity.ExtractionTask{Status: constants.TaskStatusProcessing}
	if err := r.Reconcile(inv, tk); err == nil {
		t.Fatalf("reconcile of a PROCESSING task must fail")
	}
}

func TestReconcileRejectsMalformedPayload(t *testing.T) {
	r := New(slog.Default())
	inv := testInvoice()
	tk := &entity.ExtractionTask{
		Status:        constants.TaskStatusCompleted,
		ResultPayload: json.RawMessage(`{"provider":"x","confidence":{"overall":3.5}}`),
	}
	if err := r.Reconcile(inv, tk); err == nil {
		t.Fatalf("out-of-range confidence must be rejected by the schema")
	}
}

func TestMarkFailedPreservesFields(t *testing.T) {
	r := New(slog.Default())
	inv := testInvoice()
	partial := "INV-PARTIAL"
	inv.InvoiceNumber = &partial

	msg := "provider timeout"
	tk := &entity.ExtractionTask{Status: constants.TaskStatusFailed, ErrorMessage: &msg}
	if err := r.MarkFailed(inv, tk); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if inv.Status != constants.InvoiceStatusFailed {
		t.Fatalf("status = %s, want FAILED", inv.Status)
	}
	if inv.InvoiceNumber == nil || *inv.InvoiceNumber != "INV-PARTIAL" {
		t.Fatalf("partial fields must survive a failure")
	}
}
