package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/internal/entity"
	"github.com/luminexhq/invoicevault/internal/fingerprint"
	"github.com/luminexhq/invoicevault/internal/queue"
	"github.com/luminexhq/invoicevault/internal/repository"
	"github.com/luminexhq/invoicevault/internal/storage"
)

// fakeClassifier mimics the repository's insert-or-conflict contract with an
// in-memory map guarded by a mutex.
type fakeClassifier struct {
	mu   sync.Mutex
	rows map[string]*entity.Invoice // owner|hash -> row
}

func newFakeClassifier() *fakeClassifier {
	return &fakeClassifier{rows: map[string]*entity.Invoice{}}
}

func (f *fakeClassifier) key(owner uuid.UUID, hash []byte) string {
	return owner.String() + "|" + string(hash)
}

func (f *fakeClassifier) ClassifyAndCreate(_ context.Context, req repository.CreateInvoiceRequest) (*entity.ClassifyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[f.key(req.OwnerID, req.ContentHash)]; ok {
		cls := entity.ClassificationLiveDuplicate
		if row.DeletedAt != nil {
			cls = entity.ClassificationRestorableDuplicate
		}
		return &entity.ClassifyResult{Classification: cls, Invoice: row}, nil
	}
	row := &entity.Invoice{
		ID:          uuid.New(),
		OwnerID:     req.OwnerID,
		ContentHash: req.ContentHash,
		FileSize:    req.FileSize,
		Filename:    req.Filename,
		FileExt:     req.FileExt,
		StorageKey:  req.StorageKey,
		Status:      constants.InvoiceStatusPending,
	}
	f.rows[f.key(req.OwnerID, req.ContentHash)] = row
	return &entity.ClassifyResult{Classification: entity.ClassificationNew, Invoice: row}, nil
}

func (f *fakeClassifier) softDelete(owner uuid.UUID, hash []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	f.rows[f.key(owner, hash)].DeletedAt = &now
}

type fakeTasks struct {
	mu      sync.Mutex
	created []*entity.ExtractionTask
	fail    bool
}

func (f *fakeTasks) Create(_ context.Context, ownerID uuid.UUID, invoiceID *uuid.UUID, format string, maxRetries int) (*entity.ExtractionTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, fmt.Errorf("db down")
	}
	tk := &entity.ExtractionTask{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		InvoiceID:  invoiceID,
		Format:     format,
		Status:     constants.TaskStatusPending,
		MaxRetries: maxRetries,
	}
	f.created = append(f.created, tk)
	return tk, nil
}

type fakeEnqueuer struct {
	mu       sync.Mutex
	payloads []queue.ExtractPayload
}

func (f *fakeEnqueuer) EnqueueExtract(_ context.Context, p queue.ExtractPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, p)
	return nil
}

func (f *fakeEnqueuer) EnqueueRetry(_ context.Context, p queue.ExtractPayload, _ time.Duration) error {
	return f.EnqueueExtract(context.Background(), p)
}

func newTestOrchestrator() (*Orchestrator, *fakeClassifier, *fakeTasks, *storage.MemoryStore, *fakeEnqueuer) {
	inv := newFakeClassifier()
	tasks := &fakeTasks{}
	store := storage.NewMemoryStore()
	enq := &fakeEnqueuer{}
	o := NewOrchestrator(inv, tasks, store, enq, DefaultPolicy(), slog.Default())
	return o, inv, tasks, store, enq
}

func pdf(name, content string) File {
	return File{Name: name, Data: []byte(content)}
}

func TestIngestBatchSummary(t *testing.T) {
	o, inv, _, _, _ := newTestOrchestrator()
	owner := uuid.New()
	ctx := context.Background()

	// pre-existing live invoice for the duplicate file
	if _, err := o.Ingest(ctx, BatchRequest{OwnerID: owner, Files: []File{pdf("existing.pdf", "known bytes")}}); err != nil {
		t.Fatalf("seed ingest: %v", err)
	}
	if len(inv.rows) != 1 {
		t.Fatalf("seed row missing")
	}

	oversized := File{Name: "big.pdf", Data: bytes.Repeat([]byte("x"), int(constants.MaxFileBytes)+1)}
	res, err := o.Ingest(ctx, BatchRequest{OwnerID: owner, Files: []File{
		pdf("a.pdf", "content a"),
		pdf("b.jpg", "content b"),
		oversized,
		pdf("dup.pdf", "known bytes"),
		pdf("c.png", "content c"),
	}})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	if res.Accepted != 3 || res.Duplicates != 1 || res.Oversized != 1 {
		t.Fatalf("summary = %+v, want accepted=3 duplicates=1 oversized=1", res)
	}
	if res.Failed != 0 || res.InvalidType != 0 || res.Truncated != 0 {
		t.Fatalf("unexpected failures in summary: %+v", res)
	}
	// one bad file never blocks the others
	if len(res.Outcomes) != 5 {
		t.Fatalf("every file needs an outcome, got %d", len(res.Outcomes))
	}
}

func TestIngestRejectsDisallowedType(t *testing.T) {
	o, _, tasks, store, _ := newTestOrchestrator()
	res, err := o.Ingest(context.Background(), BatchRequest{
		OwnerID: uuid.New(),
		Files:   []File{{Name: "notes.txt", Data: []byte("hello")}, pdf("ok.pdf", "fine")},
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if res.InvalidType != 1 || res.Accepted != 1 {
		t.Fatalf("summary = %+v", res)
	}
	if len(tasks.created) != 1 || store.Len() != 1 {
		t.Fatalf("rejected file must not reach storage or tasks")
	}
}

func TestIngestTruncatesBatch(t *testing.T) {
	o, _, _, _, _ := newTestOrchestrator()
	var files []File
	for i := 0; i < constants.MaxBatchFiles+2; i++ {
		files = append(files, pdf(fmt.Sprintf("f%d.pdf", i), fmt.Sprintf("content %d", i)))
	}
	res, err := o.Ingest(context.Background(), BatchRequest{OwnerID: uuid.New(), Files: files})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if res.Truncated != 2 {
		t.Fatalf("truncated = %d, want 2", res.Truncated)
	}
	if len(res.Outcomes) != constants.MaxBatchFiles {
		t.Fatalf("outcomes = %d, want %d", len(res.Outcomes), constants.MaxBatchFiles)
	}
}

func TestIngestRestorableDuplicate(t *testing.T) {
	o, inv, _, _, _ := newTestOrchestrator()
	owner := uuid.New()
	ctx := context.Background()

	first, err := o.Ingest(ctx, BatchRequest{OwnerID: owner, Files: []File{pdf("doc.pdf", "trash me")}})
	if err != nil || first.Accepted != 1 {
		t.Fatalf("seed ingest: %v %+v", err, first)
	}
	inv.softDelete(owner, fingerprint.Sum([]byte("trash me")))

	res, err := o.Ingest(ctx, BatchRequest{OwnerID: owner, Files: []File{pdf("again.pdf", "trash me")}})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	oc := res.Outcomes[0]
	if oc.Outcome != OutcomeDuplicate || !oc.CanRestore {
		t.Fatalf("outcome = %+v, want restorable duplicate", oc)
	}
	if oc.InvoiceID == nil || *oc.InvoiceID != *first.Outcomes[0].InvoiceID {
		t.Fatalf("restorable duplicate must point at the deleted row")
	}
}

func TestIngestDuplicateSkipsUpload(t *testing.T) {
	o, _, _, store, enq := newTestOrchestrator()
	owner := uuid.New()
	ctx := context.Background()

	if _, err := o.Ingest(ctx, BatchRequest{OwnerID: owner, Files: []File{pdf("one.pdf", "same")}}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	res, err := o.Ingest(ctx, BatchRequest{OwnerID: owner, Files: []File{pdf("two.pdf", "same")}})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if res.Duplicates != 1 {
		t.Fatalf("summary = %+v", res)
	}
	if store.Len() != 1 {
		t.Fatalf("duplicate bytes must not be uploaded again, store has %d objects", store.Len())
	}
	if len(enq.payloads) != 1 {
		t.Fatalf("duplicate must not enqueue extraction, got %d payloads", len(enq.payloads))
	}
}

func TestIngestConcurrentSameContentYieldsOneNew(t *testing.T) {
	o, _, tasks, _, _ := newTestOrchestrator()
	owner := uuid.New()
	ctx := context.Background()

	const n = 8
	results := make([]*BatchResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := o.Ingest(ctx, BatchRequest{OwnerID: owner, Files: []File{pdf("same.pdf", "identical bytes")}})
			if err != nil {
				t.Errorf("ingest %d: %v", i, err)
				return
			}
			results[i] = r
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, r := range results {
		if r != nil {
			accepted += r.Accepted
		}
	}
	if accepted != 1 {
		t.Fatalf("accepted = %d, want exactly 1 under concurrency", accepted)
	}
	if len(tasks.created) != 1 {
		t.Fatalf("tasks created = %d, want 1", len(tasks.created))
	}
}
