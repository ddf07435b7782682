// Package ingest is the client-facing entry point of the pipeline: it takes a
// bounded batch of files, classifies each against the dedup index, creates
// invoice rows and extraction tasks for new content, and aggregates a single
// batch summary for the caller.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/internal/entity"
	"github.com/luminexhq/invoicevault/internal/fingerprint"
	"github.com/luminexhq/invoicevault/internal/queue"
	"github.com/luminexhq/invoicevault/internal/repository"
	"github.com/luminexhq/invoicevault/internal/storage"
)

// File is one upload in a batch: a plain value, no shared state between
// concurrent ingest calls.
type File struct {
	Name string
	Data []byte
}

// BatchRequest carries one owner's upload batch.
type BatchRequest struct {
	OwnerID uuid.UUID
	Files   []File
}

// Outcome classifies what happened to one file.
type Outcome string

const (
	OutcomeAccepted    Outcome = "ACCEPTED"
	OutcomeDuplicate   Outcome = "DUPLICATE"
	OutcomeOversized   Outcome = "OVERSIZED"
	OutcomeInvalidType Outcome = "INVALID_TYPE"
	OutcomeFailed      Outcome = "FAILED"
)

// FileOutcome is the per-file line of the batch summary.
type FileOutcome struct {
	Filename   string
	Outcome    Outcome
	InvoiceID  *uuid.UUID
	TaskID     *uuid.UUID
	HashHex    string
	CanRestore bool
	CrossOwner *entity.CrossOwnerHint
	Err        string
}

// BatchResult aggregates a batch; the caller renders one end-of-batch notice
// from it, not per-file notifications.
type BatchResult struct {
	Accepted    int
	Duplicates  int
	Oversized   int
	InvalidType int
	Failed      int
	Truncated   int
	Outcomes    []FileOutcome
}

// Classifier is the slice of the invoice repository the orchestrator needs.
type Classifier interface {
	ClassifyAndCreate(ctx context.Context, req repository.CreateInvoiceRequest) (*entity.ClassifyResult, error)
}

// TaskCreator creates the 1:1 extraction task for an accepted file.
type TaskCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, invoiceID *uuid.UUID, format string, maxRetries int) (*entity.ExtractionTask, error)
}

type Orchestrator struct {
	invoices Classifier
	tasks    TaskCreator
	store    storage.Store
	enq      queue.Enqueuer
	policy   Policy
	logger   *slog.Logger
}

func NewOrchestrator(invoices Classifier, tasks TaskCreator, store storage.Store, enq queue.Enqueuer, policy Policy, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		invoices: invoices,
		tasks:    tasks,
		store:    store,
		enq:      enq,
		policy:   policy,
		logger:   logger,
	}
}

// Ingest runs the batch. Files are processed concurrently with no ordering
// guarantee between them; each file's own pipeline is strictly sequential.
func (o *Orchestrator) Ingest(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	if req.OwnerID == uuid.Nil {
		return nil, fmt.Errorf("owner_id is required")
	}

	files := req.Files
	result := &BatchResult{}
	if len(files) > o.policy.MaxBatchFiles {
		result.Truncated = len(files) - o.policy.MaxBatchFiles
		files = files[:o.policy.MaxBatchFiles]
		o.logger.Warn("batch truncated", "owner_id", req.OwnerID, "dropped", result.Truncated)
	}

	outcomes := make([]FileOutcome, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f File) {
			defer wg.Done()
			outcomes[i] = o.ingestOne(ctx, req.OwnerID, f)
		}(i, f)
	}
	wg.Wait()

	for _, oc := range outcomes {
		switch oc.Outcome {
		case OutcomeAccepted:
			result.Accepted++
		case OutcomeDuplicate:
			result.Duplicates++
		case OutcomeOversized:
			result.Oversized++
		case OutcomeInvalidType:
			result.InvalidType++
		default:
			result.Failed++
		}
	}
	result.Outcomes = outcomes

	o.logger.Info("batch ingest completed",
		"owner_id", req.OwnerID,
		"accepted", result.Accepted,
		"duplicates", result.Duplicates,
		"oversized", result.Oversized,
		"invalid_type", result.InvalidType,
		"failed", result.Failed,
		"truncated", result.Truncated,
	)
	return result, nil
}

// ingestOne runs one file's pipeline: validate, fingerprint, classify,
// create, store bytes, enqueue extraction. Dedup and validation outcomes are
// resolved locally; they never raise past the orchestrator.
func (o *Orchestrator) ingestOne(ctx context.Context, ownerID uuid.UUID, f File) FileOutcome {
	out := FileOutcome{Filename: f.Name}

	ext := constants.NormalizeExt(filepath.Ext(f.Name))
	if err := o.policy.CheckFile(f.Name, int64(len(f.Data))); err != nil {
		if int64(len(f.Data)) > o.policy.MaxFileBytes {
			out.Outcome = OutcomeOversized
		} else {
			out.Outcome = OutcomeInvalidType
		}
		out.Err = err.Error()
		o.logger.Warn("file rejected", "owner_id", ownerID, "filename", f.Name, "reason", err)
		return out
	}

	sum := fingerprint.Sum(f.Data)
	out.HashHex = fingerprint.Hex(sum)
	key := objectKey(ownerID, out.HashHex, ext)

	res, err := o.invoices.ClassifyAndCreate(ctx, repository.CreateInvoiceRequest{
		OwnerID:     ownerID,
		ContentHash: sum,
		FileSize:    int64(len(f.Data)),
		Filename:    f.Name,
		FileExt:     ext,
		StorageKey:  &key,
	})
	if err != nil {
		out.Outcome = OutcomeFailed
		out.Err = err.Error()
		return out
	}
	out.CrossOwner = res.CrossOwner
	invID := res.Invoice.ID
	out.InvoiceID = &invID

	switch res.Classification {
	case entity.ClassificationLiveDuplicate:
		out.Outcome = OutcomeDuplicate
		return out
	case entity.ClassificationRestorableDuplicate:
		// restore is a separate explicit call, never automatic
		out.Outcome = OutcomeDuplicate
		out.CanRestore = true
		return out
	}

	// NEW: the payload is only uploaded once classification says so
	if err := o.store.Put(ctx, key, f.Data, storage.ContentType(ext)); err != nil {
		out.Outcome = OutcomeFailed
		out.Err = err.Error()
		o.logger.Error("failed to store file bytes", "owner_id", ownerID, "invoice_id", invID, "error", err)
		return out
	}

	tk, err := o.tasks.Create(ctx, ownerID, &invID, constants.FormatForExt(ext), o.policy.MaxRetries)
	if err != nil {
		out.Outcome = OutcomeFailed
		out.Err = err.Error()
		return out
	}
	taskID := tk.ID
	out.TaskID = &taskID

	if err := o.enq.EnqueueExtract(ctx, queue.ExtractPayload{
		TaskID:     tk.ID.String(),
		InvoiceID:  invID.String(),
		OwnerID:    ownerID.String(),
		StorageKey: key,
		Filename:   f.Name,
		Format:     tk.Format,
	}); err != nil {
		out.Outcome = OutcomeFailed
		out.Err = err.Error()
		o.logger.Error("enqueue failed for file", "invoice_id", invID, "task_id", tk.ID, "err", err)
		return out
	}

	out.Outcome = OutcomeAccepted
	return out
}

// objectKey derives the storage locator from the content identity, so a
// restore finds the original bytes without a re-upload.
func objectKey(ownerID uuid.UUID, hashHex, ext string) string {
	return fmt.Sprintf("%s/%s.%s", ownerID, hashHex, ext)
}
