package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/gen/ent"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/entity"
	"github.com/luminexhq/invoicevault/internal/fingerprint"
	"github.com/luminexhq/invoicevault/internal/task"
)

func newClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	client, err := OpenSQLite(context.Background(), dsn, slog.Default())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func createReq(owner uuid.UUID, content string) CreateInvoiceRequest {
	return CreateInvoiceRequest{
		OwnerID:     owner,
		ContentHash: fingerprint.Sum([]byte(content)),
		FileSize:    int64(len(content)),
		Filename:    "invoice.pdf",
		FileExt:     "pdf",
	}
}

func TestClassifyAndCreateDedup(t *testing.T) {
	repo := NewInvoiceRepository(newClient(t), slog.Default())
	ctx := context.Background()
	owner := uuid.New()

	first, err := repo.ClassifyAndCreate(ctx, createReq(owner, "same bytes"))
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	if first.Classification != entity.ClassificationNew {
		t.Fatalf("first classification = %s, want NEW", first.Classification)
	}

	// same owner, same bytes: LIVE_DUPLICATE on every subsequent attempt
	for i := 0; i < 3; i++ {
		dup, err := repo.ClassifyAndCreate(ctx, createReq(owner, "same bytes"))
		if err != nil {
			t.Fatalf("re-ingest %d: %v", i, err)
		}
		if dup.Classification != entity.ClassificationLiveDuplicate {
			t.Fatalf("re-ingest %d classification = %s, want LIVE_DUPLICATE", i, dup.Classification)
		}
		if dup.Invoice.ID != first.Invoice.ID {
			t.Fatalf("duplicate must reference the original invoice")
		}
	}

	// different bytes is a fresh invoice
	other, err := repo.ClassifyAndCreate(ctx, createReq(owner, "other bytes"))
	if err != nil {
		t.Fatalf("other ingest: %v", err)
	}
	if other.Classification != entity.ClassificationNew {
		t.Fatalf("other classification = %s, want NEW", other.Classification)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	repo := NewInvoiceRepository(newClient(t), slog.Default())
	ctx := context.Background()
	owner := uuid.New()

	created, err := repo.ClassifyAndCreate(ctx, createReq(owner, "restorable"))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if _, err := repo.SoftDelete(ctx, created.Invoice.ID, time.Now()); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	res, err := repo.ClassifyAndCreate(ctx, createReq(owner, "restorable"))
	if err != nil {
		t.Fatalf("re-ingest after delete: %v", err)
	}
	if res.Classification != entity.ClassificationRestorableDuplicate {
		t.Fatalf("classification = %s, want RESTORABLE_DUPLICATE", res.Classification)
	}

	restored, err := repo.Restore(ctx, res.Invoice.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.ID != created.Invoice.ID || !restored.Live() {
		t.Fatalf("restore must revive the original invoice id with deleted_at = null")
	}

	// restoring twice is a caller error
	if _, err := repo.Restore(ctx, res.Invoice.ID); err == nil {
		t.Fatalf("restore of a live invoice must fail")
	}

	// and a third upload is a live duplicate again
	res2, err := repo.ClassifyAndCreate(ctx, createReq(owner, "restorable"))
	if err != nil {
		t.Fatalf("re-ingest after restore: %v", err)
	}
	if res2.Classification != entity.ClassificationLiveDuplicate {
		t.Fatalf("classification = %s, want LIVE_DUPLICATE", res2.Classification)
	}
}

func TestCrossOwnerHintNeverBlocks(t *testing.T) {
	repo := NewInvoiceRepository(newClient(t), slog.Default())
	ctx := context.Background()
	ownerA, ownerB := uuid.New(), uuid.New()

	if _, err := repo.ClassifyAndCreate(ctx, createReq(ownerA, "shared doc")); err != nil {
		t.Fatalf("owner A ingest: %v", err)
	}

	res, err := repo.ClassifyAndCreate(ctx, createReq(ownerB, "shared doc"))
	if err != nil {
		t.Fatalf("owner B ingest: %v", err)
	}
	if res.Classification != entity.ClassificationNew {
		t.Fatalf("owner isolation is absolute; got %s", res.Classification)
	}
	if res.CrossOwner == nil || len(res.CrossOwner.OwnerIDs) != 1 || res.CrossOwner.OwnerIDs[0] != ownerA {
		t.Fatalf("expected a cross-owner hint naming owner A, got %+v", res.CrossOwner)
	}
}

func TestTaskTransitionCAS(t *testing.T) {
	client := newClient(t)
	invRepo := NewInvoiceRepository(client, slog.Default())
	taskRepo := NewTaskRepository(client, slog.Default())
	ctx := context.Background()
	owner := uuid.New()

	created, err := invRepo.ClassifyAndCreate(ctx, createReq(owner, "task bytes"))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	tk, err := taskRepo.Create(ctx, owner, &created.Invoice.ID, "PDF", constants.MaxTaskRetries)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if tk.Status != constants.TaskStatusPending {
		t.Fatalf("new task status = %s, want PENDING", tk.Status)
	}

	now := time.Now()
	if err := task.Start(tk, now); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := taskRepo.ApplyTransition(ctx, tk, constants.TaskStatusPending); err != nil {
		t.Fatalf("persist start: %v", err)
	}

	// a second writer holding a stale snapshot must lose
	stale := *tk
	stale.Status = constants.TaskStatusCancelled
	err = taskRepo.ApplyTransition(ctx, &stale, constants.TaskStatusPending)
	var ise *common.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("stale transition: got %v, want InvalidStateError", err)
	}

	got, err := taskRepo.GetByID(ctx, tk.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Status != constants.TaskStatusProcessing {
		t.Fatalf("persisted status = %s, want PROCESSING", got.Status)
	}
	if got.StartedAt == nil {
		t.Fatalf("started_at not persisted")
	}

	if tsk, err := taskRepo.LatestForInvoice(ctx, created.Invoice.ID); err != nil || tsk.ID != tk.ID {
		t.Fatalf("latest task lookup: %v", err)
	}
}

func TestListRetryEligible(t *testing.T) {
	client := newClient(t)
	taskRepo := NewTaskRepository(client, slog.Default())
	ctx := context.Background()
	owner := uuid.New()

	tk, err := taskRepo.Create(ctx, owner, nil, "PDF", 3)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	now := time.Now()
	_ = task.Start(tk, now)
	if err := taskRepo.ApplyTransition(ctx, tk, constants.TaskStatusPending); err != nil {
		t.Fatalf("persist start: %v", err)
	}
	_ = task.Fail(tk, "transient", now)
	if err := taskRepo.ApplyTransition(ctx, tk, constants.TaskStatusProcessing); err != nil {
		t.Fatalf("persist fail: %v", err)
	}
	_ = task.ScheduleRetry(tk, time.Minute, now)
	if err := taskRepo.ApplyTransition(ctx, tk, constants.TaskStatusFailed); err != nil {
		t.Fatalf("persist retry: %v", err)
	}

	early, err := taskRepo.ListRetryEligible(ctx, now, 10)
	if err != nil {
		t.Fatalf("list eligible: %v", err)
	}
	if len(early) != 0 {
		t.Fatalf("task eligible before next_retry_at")
	}
	late, err := taskRepo.ListRetryEligible(ctx, now.Add(2*time.Minute), 10)
	if err != nil {
		t.Fatalf("list eligible: %v", err)
	}
	if len(late) != 1 || late[0].ID != tk.ID {
		t.Fatalf("task not listed after next_retry_at")
	}
}
