package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
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
)

// memInvoices implements the invoice repository over a map, enforcing the
// same compare-and-set semantics the real one gets from conditional updates.
type memInvoices struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Invoice
}

func newMemInvoices() *memInvoices {
	return &memInvoices{rows: map[uuid.UUID]*entity.Invoice{}}
}

func (m *memInvoices) add(inv *entity.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *inv
	m.rows[inv.ID] = &cp
}

func (m *memInvoices) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (m *memInvoices) ClassifyAndCreate(context.Context, repository.CreateInvoiceRequest) (*entity.ClassifyResult, error) {
	panic("not used")
}

func (m *memInvoices) SoftDelete(context.Context, uuid.UUID, time.Time) (*entity.Invoice, error) {
	panic("not used")
}

func (m *memInvoices) Restore(context.Context, uuid.UUID) (*entity.Invoice, error) {
	panic("not used")
}

func (m *memInvoices) Verify(context.Context, uuid.UUID, uuid.UUID, string, time.Time) (*entity.Invoice, error) {
	panic("not used")
}

func (m *memInvoices) SetReimbursementStatus(context.Context, uuid.UUID, constants.ReimbursementStatus, constants.ReimbursementStatus) error {
	panic("not used")
}

func (m *memInvoices) ListByOwner(context.Context, uuid.UUID, bool) ([]*entity.Invoice, error) {
	panic("not used")
}

func (m *memInvoices) ApplyExtraction(_ context.Context, inv *entity.Invoice, prev constants.InvoiceStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[inv.ID]
	if !ok || row.Status != prev {
		return &common.InvalidStateError{Entity: "invoice", From: string(prev), Op: "apply extraction"}
	}
	cp := *inv
	m.rows[inv.ID] = &cp
	return nil
}

func (m *memInvoices) UpdateStatus(_ context.Context, id uuid.UUID, from, to constants.InvoiceStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || row.Status != from {
		return &common.InvalidStateError{Entity: "invoice", From: string(from), Op: "update status"}
	}
	row.Status = to
	return nil
}

type memTasks struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.ExtractionTask
}

func newMemTasks() *memTasks {
	return &memTasks{rows: map[uuid.UUID]*entity.ExtractionTask{}}
}

func (m *memTasks) add(tk *entity.ExtractionTask) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *tk
	m.rows[tk.ID] = &cp
}

func (m *memTasks) get(id uuid.UUID) *entity.ExtractionTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *m.rows[id]
	return &cp
}

func (m *memTasks) GetByID(_ context.Context, id uuid.UUID) (*entity.ExtractionTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (m *memTasks) Create(context.Context, uuid.UUID, *uuid.UUID, string, int) (*entity.ExtractionTask, error) {
	panic("not used")
}

func (m *memTasks) LatestForInvoice(context.Context, uuid.UUID) (*entity.ExtractionTask, error) {
	panic("not used")
}

func (m *memTasks) ApplyTransition(_ context.Context, t *entity.ExtractionTask, prev constants.TaskStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[t.ID]
	if !ok || row.Status != prev {
		return &common.InvalidStateError{Entity: "task", From: string(prev), Op: "transition to " + string(t.Status)}
	}
	cp := *t
	m.rows[t.ID] = &cp
	return nil
}

func (m *memTasks) ListRetryEligible(context.Context, time.Time, int) ([]*entity.ExtractionTask, error) {
	return nil, nil
}

type stubProvider struct {
	res *extraction.Result
	err error
}

func (p *stubProvider) Name() string { return "stub" }
func (p *stubProvider) Extract(context.Context, extraction.Request) (*extraction.Result, error) {
	return p.res, p.err
}

type recordEnqueuer struct {
	mu      sync.Mutex
	retries []time.Duration
}

func (r *recordEnqueuer) EnqueueExtract(context.Context, queue.ExtractPayload) error { return nil }
func (r *recordEnqueuer) EnqueueRetry(_ context.Context, _ queue.ExtractPayload, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retries = append(r.retries, d)
	return nil
}

// seqProvider plays a scripted sequence of outcomes, one per call.
type seqProvider struct {
	mu    sync.Mutex
	calls int
	steps []func() (*extraction.Result, error)
}

func (p *seqProvider) Name() string { return "seq" }
func (p *seqProvider) Extract(context.Context, extraction.Request) (*extraction.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	step := p.steps[p.calls]
	p.calls++
	return step()
}

type fixture struct {
	invoices *memInvoices
	tasks    *memTasks
	store    *storage.MemoryStore
	enq      *recordEnqueuer
	proc     *Processor
	invoice  *entity.Invoice
	task     *entity.ExtractionTask
	payload  queue.ExtractPayload
}

func newFixture(t *testing.T, provider extraction.Provider) *fixture {
	t.Helper()
	invoices := newMemInvoices()
	tasks := newMemTasks()
	store := storage.NewMemoryStore()
	enq := &recordEnqueuer{}

	key := "owner/hash.pdf"
	if err := store.Put(context.Background(), key, []byte("%PDF-1.4 bytes"), "application/pdf"); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	inv := &entity.Invoice{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Filename:   "doc.pdf",
		FileExt:    "pdf",
		StorageKey: &key,
		Status:     constants.InvoiceStatusPending,
	}
	invoices.add(inv)

	tk := &entity.ExtractionTask{
		ID:         uuid.New(),
		OwnerID:    inv.OwnerID,
		InvoiceID:  &inv.ID,
		Format:     "PDF",
		Status:     constants.TaskStatusPending,
		MaxRetries: constants.MaxTaskRetries,
	}
	tasks.add(tk)

	rec := reconcile.New(slog.Default())
	proc := NewProcessor(invoices, tasks, store, provider, enq, rec, time.Second, slog.Default())

	return &fixture{
		invoices: invoices,
		tasks:    tasks,
		store:    store,
		enq:      enq,
		proc:     proc,
		invoice:  inv,
		task:     tk,
		payload: queue.ExtractPayload{
			TaskID:     tk.ID.String(),
			InvoiceID:  inv.ID.String(),
			OwnerID:    inv.OwnerID.String(),
			StorageKey: key,
			Filename:   inv.Filename,
			Format:     tk.Format,
		},
	}
}

func (f *fixture) deliver(t *testing.T) error {
	t.Helper()
	data, err := json.Marshal(f.payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return f.proc.handleExtract(context.Background(), asynq.NewTask(queue.TypeExtractInvoice, data))
}

func TestHandleExtractSuccess(t *testing.T) {
	f := newFixture(t, &stubProvider{res: &extraction.Result{
		Provider: "stub",
		Fields: extraction.Fields{
			InvoiceNumber: "INV-42",
			TotalAmount:   "100.00",
			CurrencyCode:  "EUR",
		},
		Confidence: extraction.Confidence{Overall: 0.95},
	}})

	if err := f.deliver(t); err != nil {
		t.Fatalf("handleExtract: %v", err)
	}

	tk := f.tasks.get(f.task.ID)
	if tk.Status != constants.TaskStatusCompleted {
		t.Fatalf("task status = %s, want COMPLETED", tk.Status)
	}
	inv, _ := f.invoices.GetByID(context.Background(), f.invoice.ID)
	if inv.Status != constants.InvoiceStatusCompleted {
		t.Fatalf("invoice status = %s, want COMPLETED", inv.Status)
	}
	if inv.InvoiceNumber == nil || *inv.InvoiceNumber != "INV-42" {
		t.Fatalf("invoice number not merged: %+v", inv.InvoiceNumber)
	}
	if inv.NeedsReview {
		t.Fatal("high confidence must not flag review")
	}
}

func TestHandleExtractTransientFailureSchedulesRetry(t *testing.T) {
	f := newFixture(t, &stubProvider{err: &common.TransientExtractionError{Err: errors.New("provider timeout")}})

	if err := f.deliver(t); err != nil {
		t.Fatalf("handleExtract: %v", err)
	}

	tk := f.tasks.get(f.task.ID)
	if tk.Status != constants.TaskStatusRetrying {
		t.Fatalf("task status = %s, want RETRYING", tk.Status)
	}
	if tk.RetryCount != 1 {
		t.Fatalf("retry count = %d, want 1", tk.RetryCount)
	}
	if tk.NextRetryAt == nil || !tk.NextRetryAt.After(time.Now().Add(-time.Second)) {
		t.Fatalf("next_retry_at not set: %v", tk.NextRetryAt)
	}
	if len(f.enq.retries) != 1 {
		t.Fatalf("retries enqueued = %d, want 1", len(f.enq.retries))
	}
	inv, _ := f.invoices.GetByID(context.Background(), f.invoice.ID)
	if inv.Status != constants.InvoiceStatusProcessing {
		t.Fatalf("invoice status = %s, want PROCESSING while retrying", inv.Status)
	}
}

func TestHandleExtractSucceedsOnThirdAttempt(t *testing.T) {
	fail := func() (*extraction.Result, error) {
		return nil, &common.TransientExtractionError{Err: errors.New("provider timeout")}
	}
	succeed := func() (*extraction.Result, error) {
		return &extraction.Result{
			Provider:   "seq",
			Fields:     extraction.Fields{InvoiceNumber: "INV-7"},
			Confidence: extraction.Confidence{Overall: 0.9},
		}, nil
	}
	f := newFixture(t, &seqProvider{steps: []func() (*extraction.Result, error){fail, fail, succeed}})

	for attempt := 1; attempt <= 3; attempt++ {
		if err := f.deliver(t); err != nil {
			t.Fatalf("delivery %d: %v", attempt, err)
		}
		if attempt < 3 {
			// let the retry wait elapse before the next delivery
			tk := f.tasks.get(f.task.ID)
			if tk.Status != constants.TaskStatusRetrying {
				t.Fatalf("after failure %d status = %s, want RETRYING", attempt, tk.Status)
			}
			past := time.Now().Add(-time.Second)
			tk.NextRetryAt = &past
			f.tasks.add(tk)
		}
	}

	tk := f.tasks.get(f.task.ID)
	if tk.Status != constants.TaskStatusCompleted {
		t.Fatalf("task status = %s, want COMPLETED", tk.Status)
	}
	if tk.RetryCount != 2 {
		t.Fatalf("retry count = %d, want 2", tk.RetryCount)
	}
	inv, _ := f.invoices.GetByID(context.Background(), f.invoice.ID)
	if inv.Status != constants.InvoiceStatusCompleted {
		t.Fatalf("invoice status = %s, want COMPLETED", inv.Status)
	}
	if inv.InvoiceNumber == nil || *inv.InvoiceNumber != "INV-7" {
		t.Fatalf("invoice number not merged: %+v", inv.InvoiceNumber)
	}
}

func TestHandleExtractPermanentFailureIsTerminal(t *testing.T) {
	f := newFixture(t, &stubProvider{err: &common.PermanentExtractionError{Err: errors.New("not a pdf")}})

	if err := f.deliver(t); err != nil {
		t.Fatalf("handleExtract: %v", err)
	}

	tk := f.tasks.get(f.task.ID)
	if tk.Status != constants.TaskStatusFailed {
		t.Fatalf("task status = %s, want FAILED", tk.Status)
	}
	if tk.RetryCount != 0 {
		t.Fatalf("permanent failure must not consume retry budget, count = %d", tk.RetryCount)
	}
	if len(f.enq.retries) != 0 {
		t.Fatal("permanent failure must not enqueue a retry")
	}
	inv, _ := f.invoices.GetByID(context.Background(), f.invoice.ID)
	if inv.Status != constants.InvoiceStatusFailed {
		t.Fatalf("invoice status = %s, want FAILED", inv.Status)
	}
}

func TestHandleExtractExhaustedBudgetIsTerminal(t *testing.T) {
	f := newFixture(t, &stubProvider{err: errors.New("flaky")})
	f.task.RetryCount = constants.MaxTaskRetries
	f.task.Status = constants.TaskStatusRetrying
	f.tasks.add(f.task)

	if err := f.deliver(t); err != nil {
		t.Fatalf("handleExtract: %v", err)
	}

	tk := f.tasks.get(f.task.ID)
	if tk.Status != constants.TaskStatusFailed {
		t.Fatalf("task status = %s, want FAILED", tk.Status)
	}
	if len(f.enq.retries) != 0 {
		t.Fatal("exhausted budget must not enqueue a retry")
	}
}

func TestHandleExtractSkipsCancelledTask(t *testing.T) {
	f := newFixture(t, &stubProvider{res: &extraction.Result{Provider: "stub", Confidence: extraction.Confidence{Overall: 1}}})
	f.task.Status = constants.TaskStatusCancelled
	f.tasks.add(f.task)

	if err := f.deliver(t); err != nil {
		t.Fatalf("handleExtract: %v", err)
	}

	tk := f.tasks.get(f.task.ID)
	if tk.Status != constants.TaskStatusCancelled {
		t.Fatalf("task status = %s, cancellation must win", tk.Status)
	}
	inv, _ := f.invoices.GetByID(context.Background(), f.invoice.ID)
	if inv.Status != constants.InvoiceStatusPending {
		t.Fatalf("invoice must be untouched, status = %s", inv.Status)
	}
}

func TestHandleExtractEarlyRetryDelivery(t *testing.T) {
	f := newFixture(t, &stubProvider{res: &extraction.Result{Provider: "stub", Confidence: extraction.Confidence{Overall: 1}}})
	future := time.Now().Add(time.Hour)
	f.task.Status = constants.TaskStatusRetrying
	f.task.RetryCount = 1
	f.task.NextRetryAt = &future
	f.tasks.add(f.task)

	if err := f.deliver(t); err == nil {
		t.Fatal("early delivery before next_retry_at must error for redelivery")
	}

	tk := f.tasks.get(f.task.ID)
	if tk.Status != constants.TaskStatusRetrying {
		t.Fatalf("task status = %s, want RETRYING untouched", tk.Status)
	}
}
