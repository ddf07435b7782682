package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/gen/ent"
	entinvoice "github.com/luminexhq/invoicevault/gen/ent/invoice"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/entity"
)

// CreateInvoiceRequest wraps the content identity of a newly accepted file.
type CreateInvoiceRequest struct {
	OwnerID     uuid.UUID
	ContentHash []byte
	FileSize    int64
	Filename    string
	FileExt     string
	StorageKey  *string
}

type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// ClassifyAndCreate classifies (owner, content_hash) and, for NEW, creates
	// the invoice row in the same step. The partial unique index on live rows
	// makes the insert the linearization point: two concurrent uploads of the
	// same file cannot both observe NEW.
	ClassifyAndCreate(ctx context.Context, req CreateInvoiceRequest) (*entity.ClassifyResult, error)
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) (*entity.Invoice, error)
	Restore(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// ApplyExtraction persists a reconciled invoice. prev guards the row
	// against concurrent writers (compare-and-set on status).
	ApplyExtraction(ctx context.Context, inv *entity.Invoice, prev constants.InvoiceStatus) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to constants.InvoiceStatus) error
	Verify(ctx context.Context, id, verifierID uuid.UUID, notes string, now time.Time) (*entity.Invoice, error)
	SetReimbursementStatus(ctx context.Context, id uuid.UUID, from, to constants.ReimbursementStatus) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, includeDeleted bool) ([]*entity.Invoice, error)
}

type invoiceRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(entc *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepo{ent: entc, logger: logger}
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.ent.Invoice.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	return toInvoice(row), nil
}

func (r *invoiceRepo) ClassifyAndCreate(ctx context.Context, req CreateInvoiceRequest) (*entity.ClassifyResult, error) {
	// Cheap pre-check so a duplicate upload is answered without an insert
	// attempt. The unique index below still backs this up under races.
	if res, err := r.classifyExisting(ctx, req.OwnerID, req.ContentHash); err != nil {
		return nil, err
	} else if res != nil {
		return res, nil
	}

	row, err := r.ent.Invoice.Create().
		SetOwnerID(req.OwnerID).
		SetContentHash(req.ContentHash).
		SetFileSize(req.FileSize).
		SetFilename(req.Filename).
		SetFileExt(req.FileExt).
		SetNillableStorageKey(req.StorageKey).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// a concurrent upload won the insert; reclassify against its row
			res, cErr := r.classifyExisting(ctx, req.OwnerID, req.ContentHash)
			if cErr != nil {
				return nil, cErr
			}
			if res != nil {
				return res, nil
			}
		}
		r.logger.Error("failed to create invoice", "owner_id", req.OwnerID, "filename", req.Filename, "error", err)
		return nil, err
	}

	result := &entity.ClassifyResult{
		Classification: entity.ClassificationNew,
		Invoice:        toInvoice(row),
	}
	result.CrossOwner = r.crossOwnerHint(ctx, req.OwnerID, req.ContentHash)
	r.logger.Info("invoice created", "invoice_id", row.ID, "owner_id", req.OwnerID, "filename", req.Filename)
	return result, nil
}

// classifyExisting returns a duplicate classification, or nil when the pair is unseen.
func (r *invoiceRepo) classifyExisting(ctx context.Context, ownerID uuid.UUID, hash []byte) (*entity.ClassifyResult, error) {
	rows, err := r.ent.Invoice.Query().
		Where(
			entinvoice.OwnerID(ownerID),
			entinvoice.ContentHashEQ(hash),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to classify content hash", "owner_id", ownerID, "error", err)
		return nil, err
	}
	var deleted *ent.Invoice
	for _, row := range rows {
		if row.DeletedAt == nil {
			return &entity.ClassifyResult{
				Classification: entity.ClassificationLiveDuplicate,
				Invoice:        toInvoice(row),
			}, nil
		}
		deleted = row
	}
	if deleted != nil {
		return &entity.ClassifyResult{
			Classification: entity.ClassificationRestorableDuplicate,
			Invoice:        toInvoice(deleted),
		}, nil
	}
	return nil, nil
}

// crossOwnerHint reports other accounts holding the same bytes. Informational
// only; a lookup failure is logged and swallowed rather than failing ingest.
func (r *invoiceRepo) crossOwnerHint(ctx context.Context, ownerID uuid.UUID, hash []byte) *entity.CrossOwnerHint {
	owners, err := r.ent.Invoice.Query().
		Where(
			entinvoice.ContentHashEQ(hash),
			entinvoice.OwnerIDNEQ(ownerID),
			entinvoice.DeletedAtIsNil(),
		).
		Select(entinvoice.FieldOwnerID).
		Strings(ctx)
	if err != nil {
		r.logger.Warn("cross-owner lookup failed", "owner_id", ownerID, "error", err)
		return nil
	}
	if len(owners) == 0 {
		return nil
	}
	hint := &entity.CrossOwnerHint{}
	seen := map[string]struct{}{}
	for _, s := range owners {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if id, err := uuid.Parse(s); err == nil {
			hint.OwnerIDs = append(hint.OwnerIDs, id)
		}
	}
	return hint
}

func (r *invoiceRepo) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) (*entity.Invoice, error) {
	n, err := r.ent.Invoice.Update().
		Where(
			entinvoice.ID(id),
			entinvoice.DeletedAtIsNil(),
		).
		SetDeletedAt(now).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to soft-delete invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	if n == 0 {
		return nil, &common.InvalidStateError{Entity: "invoice", From: "deleted or missing", Op: "delete"}
	}
	r.logger.Info("invoice soft-deleted", "invoice_id", id)
	return r.GetByID(ctx, id)
}

func (r *invoiceRepo) Restore(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.ent.Invoice.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if row.DeletedAt == nil {
		return nil, &common.InvalidStateError{Entity: "invoice", From: "live", Op: "restore"}
	}

	// Defensive: the uniqueness invariant should make a live twin impossible,
	// but restore must never be the operation that breaks it.
	live, err := r.ent.Invoice.Query().
		Where(
			entinvoice.OwnerID(row.OwnerID),
			entinvoice.ContentHashEQ(row.ContentHash),
			entinvoice.DeletedAtIsNil(),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if live != nil {
		return nil, &common.DuplicateConflictError{OwnerID: row.OwnerID, InvoiceID: live.ID}
	}

	n, err := r.ent.Invoice.Update().
		Where(
			entinvoice.ID(id),
			entinvoice.DeletedAtNotNil(),
		).
		ClearDeletedAt().
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// lost a race with a concurrent upload of the same bytes
			return nil, &common.DuplicateConflictError{OwnerID: row.OwnerID, InvoiceID: row.ID}
		}
		r.logger.Error("failed to restore invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	if n == 0 {
		return nil, &common.InvalidStateError{Entity: "invoice", From: "live", Op: "restore"}
	}
	r.logger.Info("invoice restored", "invoice_id", id)
	return r.GetByID(ctx, id)
}

func (r *invoiceRepo) ApplyExtraction(ctx context.Context, inv *entity.Invoice, prev constants.InvoiceStatus) error {
	n, err := r.ent.Invoice.Update().
		Where(
			entinvoice.ID(inv.ID),
			entinvoice.StatusEQ(string(prev)),
		).
		SetNillableInvoiceNumber(inv.InvoiceNumber).
		SetNillableInvoiceDate(inv.InvoiceDate).
		SetNillableIssuerName(inv.IssuerName).
		SetNillablePayerName(inv.PayerName).
		SetNillableAmount(inv.Amount).
		SetNillableTaxAmount(inv.TaxAmount).
		SetNillableTotalAmount(inv.TotalAmount).
		SetNillableCurrencyCode(inv.CurrencyCode).
		SetExtraction(inv.Extraction).
		SetNillableProviderName(inv.ProviderName).
		SetNillableExtractionConfidence(inv.ExtractionConfidence).
		SetNeedsReview(inv.NeedsReview).
		SetStatus(string(inv.Status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to apply extraction", "invoice_id", inv.ID, "error", err)
		return err
	}
	if n == 0 {
		return &common.InvalidStateError{Entity: "invoice", From: string(prev), Op: "apply extraction"}
	}
	return nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to constants.InvoiceStatus) error {
	n, err := r.ent.Invoice.Update().
		Where(
			entinvoice.ID(id),
			entinvoice.StatusEQ(string(from)),
		).
		SetStatus(string(to)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update invoice status", "invoice_id", id, "from", from, "to", to, "error", err)
		return err
	}
	if n == 0 {
		return &common.InvalidStateError{Entity: "invoice", From: string(from), Op: "set status to " + string(to)}
	}
	return nil
}

func (r *invoiceRepo) Verify(ctx context.Context, id, verifierID uuid.UUID, notes string, now time.Time) (*entity.Invoice, error) {
	upd := r.ent.Invoice.UpdateOneID(id).
		SetIsVerified(true).
		SetVerifiedBy(verifierID).
		SetVerifiedAt(now)
	if notes != "" {
		upd = upd.SetVerificationNotes(notes)
	}
	row, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to verify invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("invoice verified", "invoice_id", id, "verifier_id", verifierID)
	return toInvoice(row), nil
}

func (r *invoiceRepo) SetReimbursementStatus(ctx context.Context, id uuid.UUID, from, to constants.ReimbursementStatus) error {
	n, err := r.ent.Invoice.Update().
		Where(
			entinvoice.ID(id),
			entinvoice.ReimbursementStatusEQ(string(from)),
		).
		SetReimbursementStatus(string(to)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update reimbursement status", "invoice_id", id, "error", err)
		return err
	}
	if n == 0 {
		return &common.InvalidStateError{Entity: "invoice", From: string(from), Op: "set reimbursement_status to " + string(to)}
	}
	return nil
}

func (r *invoiceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, includeDeleted bool) ([]*entity.Invoice, error) {
	q := r.ent.Invoice.Query().Where(entinvoice.OwnerID(ownerID))
	if !includeDeleted {
		q = q.Where(entinvoice.DeletedAtIsNil())
	}
	rows, err := q.Order(entinvoice.ByUploadedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "owner_id", ownerID, "error", err)
		return nil, err
	}
	out := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		out[i] = toInvoice(row)
	}
	return out, nil
}
