package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/gen/ent"
	enttask "github.com/luminexhq/invoicevault/gen/ent/extractiontask"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/entity"
)

type TaskRepository interface {
	Create(ctx context.Context, ownerID uuid.UUID, invoiceID *uuid.UUID, format string, maxRetries int) (*entity.ExtractionTask, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionTask, error)
	LatestForInvoice(ctx context.Context, invoiceID uuid.UUID) (*entity.ExtractionTask, error)
	// ApplyTransition persists a task the state machine already mutated,
	// conditional on the row still holding prev. Zero rows updated means a
	// concurrent writer got there first; the caller re-reads and re-decides.
	ApplyTransition(ctx context.Context, t *entity.ExtractionTask, prev constants.TaskStatus) error
	ListRetryEligible(ctx context.Context, now time.Time, limit int) ([]*entity.ExtractionTask, error)
}

type taskRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewTaskRepository(entc *ent.Client, logger *slog.Logger) TaskRepository {
	return &taskRepo{ent: entc, logger: logger}
}

func (r *taskRepo) Create(ctx context.Context, ownerID uuid.UUID, invoiceID *uuid.UUID, format string, maxRetries int) (*entity.ExtractionTask, error) {
	create := r.ent.ExtractionTask.Create().
		SetOwnerID(ownerID).
		SetFormat(format).
		SetMaxRetries(maxRetries)
	if invoiceID != nil {
		create = create.SetInvoiceID(*invoiceID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create extraction task", "owner_id", ownerID, "error", err)
		return nil, err
	}
	r.logger.Info("extraction task created", "task_id", row.ID, "owner_id", ownerID, "format", format)
	return toTask(row), nil
}

func (r *taskRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionTask, error) {
	row, err := r.ent.ExtractionTask.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get extraction task", "task_id", id, "error", err)
		return nil, err
	}
	return toTask(row), nil
}

func (r *taskRepo) LatestForInvoice(ctx context.Context, invoiceID uuid.UUID) (*entity.ExtractionTask, error) {
	row, err := r.ent.ExtractionTask.Query().
		Where(enttask.InvoiceID(invoiceID)).
		Order(enttask.ByCreatedAt(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get latest task for invoice", "invoice_id", invoiceID, "error", err)
		return nil, err
	}
	return toTask(row), nil
}

func (r *taskRepo) ApplyTransition(ctx context.Context, t *entity.ExtractionTask, prev constants.TaskStatus) error {
	upd := r.ent.ExtractionTask.Update().
		Where(
			enttask.ID(t.ID),
			enttask.StatusEQ(string(prev)),
		).
		SetStatus(string(t.Status)).
		SetRetryCount(t.RetryCount)

	if t.NextRetryAt != nil {
		upd = upd.SetNextRetryAt(*t.NextRetryAt)
	} else {
		upd = upd.ClearNextRetryAt()
	}
	if t.StartedAt != nil {
		upd = upd.SetStartedAt(*t.StartedAt)
	}
	if t.CompletedAt != nil {
		upd = upd.SetCompletedAt(*t.CompletedAt)
	} else {
		upd = upd.ClearCompletedAt()
	}
	if t.ErrorMessage != nil {
		upd = upd.SetErrorMessage(*t.ErrorMessage)
	} else {
		upd = upd.ClearErrorMessage()
	}
	if len(t.ResultPayload) > 0 {
		upd = upd.SetResultPayload(t.ResultPayload)
	}
	if t.ProviderName != nil {
		upd = upd.SetProviderName(*t.ProviderName)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to persist task transition", "task_id", t.ID, "to", t.Status, "error", err)
		return err
	}
	if n == 0 {
		// lost the row to a concurrent transition (e.g. a cancel racing a
		// completion); surface it so the caller re-reads
		return &common.InvalidStateError{Entity: "task", From: string(prev), Op: "transition to " + string(t.Status)}
	}
	r.logger.Info("task transition persisted", "task_id", t.ID, "from", prev, "to", t.Status)
	return nil
}

func (r *taskRepo) ListRetryEligible(ctx context.Context, now time.Time, limit int) ([]*entity.ExtractionTask, error) {
	q := r.ent.ExtractionTask.Query().
		Where(
			enttask.StatusEQ(string(constants.TaskStatusRetrying)),
			enttask.NextRetryAtLTE(now),
		).
		Order(enttask.ByNextRetryAt())
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list retry-eligible tasks", "error", err)
		return nil, err
	}
	out := make([]*entity.ExtractionTask, len(rows))
	for i, row := range rows {
		out[i] = toTask(row)
	}
	return out, nil
}
