// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/luminexhq/invoicevault/gen/ent/extractiontask"
	"github.com/luminexhq/invoicevault/gen/ent/invoice"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *InvoiceCreate) SetOwnerID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *InvoiceCreate) SetContentHash(v []byte) *InvoiceCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *InvoiceCreate) SetFileSize(v int64) *InvoiceCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *InvoiceCreate) SetFilename(v string) *InvoiceCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *InvoiceCreate) SetFileExt(v string) *InvoiceCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *InvoiceCreate) SetStorageKey(v string) *InvoiceCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableStorageKey(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetStorageKey(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *InvoiceCreate) SetUploadedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUploadedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *InvoiceCreate) SetInvoiceNumber(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceNumber(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *InvoiceCreate) SetInvoiceDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetIssuerName sets the "issuer_name" field.
func (_c *InvoiceCreate) SetIssuerName(v string) *InvoiceCreate {
	_c.mutation.SetIssuerName(v)
	return _c
}

// SetNillableIssuerName sets the "issuer_name" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableIssuerName(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetIssuerName(*v)
	}
	return _c
}

// SetPayerName sets the "payer_name" field.
func (_c *InvoiceCreate) SetPayerName(v string) *InvoiceCreate {
	_c.mutation.SetPayerName(v)
	return _c
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePayerName(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPayerName(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *InvoiceCreate) SetAmount(v float64) *InvoiceCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableAmount(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *InvoiceCreate) SetTaxAmount(v float64) *InvoiceCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTaxAmount(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *InvoiceCreate) SetTotalAmount(v float64) *InvoiceCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTotalAmount(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *InvoiceCreate) SetCurrencyCode(v string) *InvoiceCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCurrencyCode(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetExtraction sets the "extraction" field.
func (_c *InvoiceCreate) SetExtraction(v json.RawMessage) *InvoiceCreate {
	_c.mutation.SetExtraction(v)
	return _c
}

// SetProviderName sets the "provider_name" field.
func (_c *InvoiceCreate) SetProviderName(v string) *InvoiceCreate {
	_c.mutation.SetProviderName(v)
	return _c
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableProviderName(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetProviderName(*v)
	}
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *InvoiceCreate) SetExtractionConfidence(v float32) *InvoiceCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableExtractionConfidence(v *float32) *InvoiceCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *InvoiceCreate) SetNeedsReview(v bool) *InvoiceCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableNeedsReview(v *bool) *InvoiceCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvoiceCreate) SetStatus(v string) *InvoiceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableStatus(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReimbursementStatus sets the "reimbursement_status" field.
func (_c *InvoiceCreate) SetReimbursementStatus(v string) *InvoiceCreate {
	_c.mutation.SetReimbursementStatus(v)
	return _c
}

// SetNillableReimbursementStatus sets the "reimbursement_status" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableReimbursementStatus(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetReimbursementStatus(*v)
	}
	return _c
}

// SetIsVerified sets the "is_verified" field.
func (_c *InvoiceCreate) SetIsVerified(v bool) *InvoiceCreate {
	_c.mutation.SetIsVerified(v)
	return _c
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableIsVerified(v *bool) *InvoiceCreate {
	if v != nil {
		_c.SetIsVerified(*v)
	}
	return _c
}

// SetVerifiedBy sets the "verified_by" field.
func (_c *InvoiceCreate) SetVerifiedBy(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetVerifiedBy(v)
	return _c
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVerifiedBy(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetVerifiedBy(*v)
	}
	return _c
}

// SetVerifiedAt sets the "verified_at" field.
func (_c *InvoiceCreate) SetVerifiedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetVerifiedAt(v)
	return _c
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVerifiedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetVerifiedAt(*v)
	}
	return _c
}

// SetVerificationNotes sets the "verification_notes" field.
func (_c *InvoiceCreate) SetVerificationNotes(v string) *InvoiceCreate {
	_c.mutation.SetVerificationNotes(v)
	return _c
}

// SetNillableVerificationNotes sets the "verification_notes" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVerificationNotes(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetVerificationNotes(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *InvoiceCreate) SetDeletedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDeletedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddTaskIDs adds the "tasks" edge to the ExtractionTask entity by IDs.
func (_c *InvoiceCreate) AddTaskIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the ExtractionTask entity.
func (_c *InvoiceCreate) AddTasks(v ...*ExtractionTask) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := invoice.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := invoice.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := invoice.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ReimbursementStatus(); !ok {
		v := invoice.DefaultReimbursementStatus
		_c.mutation.SetReimbursementStatus(v)
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		v := invoice.DefaultIsVerified
		_c.mutation.SetIsVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Invoice.owner_id"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Invoice.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := invoice.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Invoice.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Invoice.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := invoice.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Invoice.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := invoice.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Invoice.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "Invoice.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := invoice.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Invoice.uploaded_at"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Invoice.needs_review"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Invoice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReimbursementStatus(); !ok {
		return &ValidationError{Name: "reimbursement_status", err: errors.New(`ent: missing required field "Invoice.reimbursement_status"`)}
	}
	if v, ok := _c.mutation.ReimbursementStatus(); ok {
		if err := invoice.ReimbursementStatusValidator(v); err != nil {
			return &ValidationError{Name: "reimbursement_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.reimbursement_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		return &ValidationError{Name: "is_verified", err: errors.New(`ent: missing required field "Invoice.is_verified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(invoice.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(invoice.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(invoice.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(invoice.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(invoice.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(invoice.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(invoice.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.IssuerName(); ok {
		_spec.SetField(invoice.FieldIssuerName, field.TypeString, value)
		_node.IssuerName = &value
	}
	if value, ok := _c.mutation.PayerName(); ok {
		_spec.SetField(invoice.FieldPayerName, field.TypeString, value)
		_node.PayerName = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = &value
	}
	if value, ok := _c.mutation.Extraction(); ok {
		_spec.SetField(invoice.FieldExtraction, field.TypeJSON, value)
		_node.Extraction = value
	}
	if value, ok := _c.mutation.ProviderName(); ok {
		_spec.SetField(invoice.FieldProviderName, field.TypeString, value)
		_node.ProviderName = &value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(invoice.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReimbursementStatus(); ok {
		_spec.SetField(invoice.FieldReimbursementStatus, field.TypeString, value)
		_node.ReimbursementStatus = value
	}
	if value, ok := _c.mutation.IsVerified(); ok {
		_spec.SetField(invoice.FieldIsVerified, field.TypeBool, value)
		_node.IsVerified = value
	}
	if value, ok := _c.mutation.VerifiedBy(); ok {
		_spec.SetField(invoice.FieldVerifiedBy, field.TypeUUID, value)
		_node.VerifiedBy = &value
	}
	if value, ok := _c.mutation.VerifiedAt(); ok {
		_spec.SetField(invoice.FieldVerifiedAt, field.TypeTime, value)
		_node.VerifiedAt = &value
	}
	if value, ok := _c.mutation.VerificationNotes(); ok {
		_spec.SetField(invoice.FieldVerificationNotes, field.TypeString, value)
		_node.VerificationNotes = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(invoice.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.TasksTable,
			Columns: []string{invoice.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
