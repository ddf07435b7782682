// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/luminexhq/invoicevault/gen/ent/extractiontask"
	"github.com/luminexhq/invoicevault/gen/ent/invoice"
	"github.com/luminexhq/invoicevault/gen/ent/predicate"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *InvoiceUpdate) SetOwnerID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableOwnerID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *InvoiceUpdate) SetContentHash(v []byte) *InvoiceUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *InvoiceUpdate) SetFileSize(v int64) *InvoiceUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFileSize(v *int64) *InvoiceUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *InvoiceUpdate) AddFileSize(v int64) *InvoiceUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *InvoiceUpdate) SetFilename(v string) *InvoiceUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFilename(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *InvoiceUpdate) SetFileExt(v string) *InvoiceUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFileExt(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *InvoiceUpdate) SetStorageKey(v string) *InvoiceUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStorageKey(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// ClearStorageKey clears the value of the "storage_key" field.
func (_u *InvoiceUpdate) ClearStorageKey() *InvoiceUpdate {
	_u.mutation.ClearStorageKey()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *InvoiceUpdate) SetUploadedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableUploadedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetIssuerName sets the "issuer_name" field.
func (_u *InvoiceUpdate) SetIssuerName(v string) *InvoiceUpdate {
	_u.mutation.SetIssuerName(v)
	return _u
}

// SetNillableIssuerName sets the "issuer_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableIssuerName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetIssuerName(*v)
	}
	return _u
}

// ClearIssuerName clears the value of the "issuer_name" field.
func (_u *InvoiceUpdate) ClearIssuerName() *InvoiceUpdate {
	_u.mutation.ClearIssuerName()
	return _u
}

// SetPayerName sets the "payer_name" field.
func (_u *InvoiceUpdate) SetPayerName(v string) *InvoiceUpdate {
	_u.mutation.SetPayerName(v)
	return _u
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePayerName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPayerName(*v)
	}
	return _u
}

// ClearPayerName clears the value of the "payer_name" field.
func (_u *InvoiceUpdate) ClearPayerName() *InvoiceUpdate {
	_u.mutation.ClearPayerName()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InvoiceUpdate) SetAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InvoiceUpdate) AddAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *InvoiceUpdate) ClearAmount() *InvoiceUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdate) SetTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdate) AddTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceUpdate) ClearTaxAmount() *InvoiceUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdate) SetTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdate) AddTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *InvoiceUpdate) ClearTotalAmount() *InvoiceUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdate) SetCurrencyCode(v string) *InvoiceUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrencyCode(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *InvoiceUpdate) ClearCurrencyCode() *InvoiceUpdate {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetExtraction sets the "extraction" field.
func (_u *InvoiceUpdate) SetExtraction(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetExtraction(v)
	return _u
}

// AppendExtraction appends value to the "extraction" field.
func (_u *InvoiceUpdate) AppendExtraction(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendExtraction(v)
	return _u
}

// ClearExtraction clears the value of the "extraction" field.
func (_u *InvoiceUpdate) ClearExtraction() *InvoiceUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// SetProviderName sets the "provider_name" field.
func (_u *InvoiceUpdate) SetProviderName(v string) *InvoiceUpdate {
	_u.mutation.SetProviderName(v)
	return _u
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableProviderName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetProviderName(*v)
	}
	return _u
}

// ClearProviderName clears the value of the "provider_name" field.
func (_u *InvoiceUpdate) ClearProviderName() *InvoiceUpdate {
	_u.mutation.ClearProviderName()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *InvoiceUpdate) SetExtractionConfidence(v float32) *InvoiceUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableExtractionConfidence(v *float32) *InvoiceUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *InvoiceUpdate) AddExtractionConfidence(v float32) *InvoiceUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *InvoiceUpdate) ClearExtractionConfidence() *InvoiceUpdate {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *InvoiceUpdate) SetNeedsReview(v bool) *InvoiceUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNeedsReview(v *bool) *InvoiceUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdate) SetStatus(v string) *InvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReimbursementStatus sets the "reimbursement_status" field.
func (_u *InvoiceUpdate) SetReimbursementStatus(v string) *InvoiceUpdate {
	_u.mutation.SetReimbursementStatus(v)
	return _u
}

// SetNillableReimbursementStatus sets the "reimbursement_status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableReimbursementStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetReimbursementStatus(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *InvoiceUpdate) SetIsVerified(v bool) *InvoiceUpdate {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableIsVerified(v *bool) *InvoiceUpdate {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetVerifiedBy sets the "verified_by" field.
func (_u *InvoiceUpdate) SetVerifiedBy(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetVerifiedBy(v)
	return _u
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVerifiedBy(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetVerifiedBy(*v)
	}
	return _u
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (_u *InvoiceUpdate) ClearVerifiedBy() *InvoiceUpdate {
	_u.mutation.ClearVerifiedBy()
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *InvoiceUpdate) SetVerifiedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVerifiedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *InvoiceUpdate) ClearVerifiedAt() *InvoiceUpdate {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetVerificationNotes sets the "verification_notes" field.
func (_u *InvoiceUpdate) SetVerificationNotes(v string) *InvoiceUpdate {
	_u.mutation.SetVerificationNotes(v)
	return _u
}

// SetNillableVerificationNotes sets the "verification_notes" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVerificationNotes(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVerificationNotes(*v)
	}
	return _u
}

// ClearVerificationNotes clears the value of the "verification_notes" field.
func (_u *InvoiceUpdate) ClearVerificationNotes() *InvoiceUpdate {
	_u.mutation.ClearVerificationNotes()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InvoiceUpdate) SetDeletedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDeletedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InvoiceUpdate) ClearDeletedAt() *InvoiceUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the ExtractionTask entity by IDs.
func (_u *InvoiceUpdate) AddTaskIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the ExtractionTask entity.
func (_u *InvoiceUpdate) AddTasks(v ...*ExtractionTask) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the ExtractionTask entity.
func (_u *InvoiceUpdate) ClearTasks() *InvoiceUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to ExtractionTask entities by IDs.
func (_u *InvoiceUpdate) RemoveTaskIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to ExtractionTask entities.
func (_u *InvoiceUpdate) RemoveTasks(v ...*ExtractionTask) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := invoice.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Invoice.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := invoice.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := invoice.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Invoice.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := invoice.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReimbursementStatus(); ok {
		if err := invoice.ReimbursementStatusValidator(v); err != nil {
			return &ValidationError{Name: "reimbursement_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.reimbursement_status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(invoice.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(invoice.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(invoice.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(invoice.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(invoice.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(invoice.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(invoice.FieldStorageKey, field.TypeString, value)
	}
	if _u.mutation.StorageKeyCleared() {
		_spec.ClearField(invoice.FieldStorageKey, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(invoice.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IssuerName(); ok {
		_spec.SetField(invoice.FieldIssuerName, field.TypeString, value)
	}
	if _u.mutation.IssuerNameCleared() {
		_spec.ClearField(invoice.FieldIssuerName, field.TypeString)
	}
	if value, ok := _u.mutation.PayerName(); ok {
		_spec.SetField(invoice.FieldPayerName, field.TypeString, value)
	}
	if _u.mutation.PayerNameCleared() {
		_spec.ClearField(invoice.FieldPayerName, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(invoice.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(invoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(invoice.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.Extraction(); ok {
		_spec.SetField(invoice.FieldExtraction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtraction(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldExtraction, value)
		})
	}
	if _u.mutation.ExtractionCleared() {
		_spec.ClearField(invoice.FieldExtraction, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProviderName(); ok {
		_spec.SetField(invoice.FieldProviderName, field.TypeString, value)
	}
	if _u.mutation.ProviderNameCleared() {
		_spec.ClearField(invoice.FieldProviderName, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(invoice.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(invoice.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(invoice.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReimbursementStatus(); ok {
		_spec.SetField(invoice.FieldReimbursementStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(invoice.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerifiedBy(); ok {
		_spec.SetField(invoice.FieldVerifiedBy, field.TypeUUID, value)
	}
	if _u.mutation.VerifiedByCleared() {
		_spec.ClearField(invoice.FieldVerifiedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(invoice.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(invoice.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerificationNotes(); ok {
		_spec.SetField(invoice.FieldVerificationNotes, field.TypeString, value)
	}
	if _u.mutation.VerificationNotesCleared() {
		_spec.ClearField(invoice.FieldVerificationNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(invoice.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(invoice.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *InvoiceUpdateOne) SetOwnerID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableOwnerID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *InvoiceUpdateOne) SetContentHash(v []byte) *InvoiceUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *InvoiceUpdateOne) SetFileSize(v int64) *InvoiceUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFileSize(v *int64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *InvoiceUpdateOne) AddFileSize(v int64) *InvoiceUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *InvoiceUpdateOne) SetFilename(v string) *InvoiceUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFilename(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *InvoiceUpdateOne) SetFileExt(v string) *InvoiceUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFileExt(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *InvoiceUpdateOne) SetStorageKey(v string) *InvoiceUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStorageKey(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// ClearStorageKey clears the value of the "storage_key" field.
func (_u *InvoiceUpdateOne) ClearStorageKey() *InvoiceUpdateOne {
	_u.mutation.ClearStorageKey()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *InvoiceUpdateOne) SetUploadedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableUploadedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetIssuerName sets the "issuer_name" field.
func (_u *InvoiceUpdateOne) SetIssuerName(v string) *InvoiceUpdateOne {
	_u.mutation.SetIssuerName(v)
	return _u
}

// SetNillableIssuerName sets the "issuer_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableIssuerName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetIssuerName(*v)
	}
	return _u
}

// ClearIssuerName clears the value of the "issuer_name" field.
func (_u *InvoiceUpdateOne) ClearIssuerName() *InvoiceUpdateOne {
	_u.mutation.ClearIssuerName()
	return _u
}

// SetPayerName sets the "payer_name" field.
func (_u *InvoiceUpdateOne) SetPayerName(v string) *InvoiceUpdateOne {
	_u.mutation.SetPayerName(v)
	return _u
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePayerName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPayerName(*v)
	}
	return _u
}

// ClearPayerName clears the value of the "payer_name" field.
func (_u *InvoiceUpdateOne) ClearPayerName() *InvoiceUpdateOne {
	_u.mutation.ClearPayerName()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InvoiceUpdateOne) SetAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InvoiceUpdateOne) AddAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *InvoiceUpdateOne) ClearAmount() *InvoiceUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdateOne) SetTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdateOne) AddTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceUpdateOne) ClearTaxAmount() *InvoiceUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdateOne) SetTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdateOne) AddTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *InvoiceUpdateOne) ClearTotalAmount() *InvoiceUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdateOne) SetCurrencyCode(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrencyCode(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *InvoiceUpdateOne) ClearCurrencyCode() *InvoiceUpdateOne {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetExtraction sets the "extraction" field.
func (_u *InvoiceUpdateOne) SetExtraction(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetExtraction(v)
	return _u
}

// AppendExtraction appends value to the "extraction" field.
func (_u *InvoiceUpdateOne) AppendExtraction(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendExtraction(v)
	return _u
}

// ClearExtraction clears the value of the "extraction" field.
func (_u *InvoiceUpdateOne) ClearExtraction() *InvoiceUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// SetProviderName sets the "provider_name" field.
func (_u *InvoiceUpdateOne) SetProviderName(v string) *InvoiceUpdateOne {
	_u.mutation.SetProviderName(v)
	return _u
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableProviderName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetProviderName(*v)
	}
	return _u
}

// ClearProviderName clears the value of the "provider_name" field.
func (_u *InvoiceUpdateOne) ClearProviderName() *InvoiceUpdateOne {
	_u.mutation.ClearProviderName()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *InvoiceUpdateOne) SetExtractionConfidence(v float32) *InvoiceUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableExtractionConfidence(v *float32) *InvoiceUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *InvoiceUpdateOne) AddExtractionConfidence(v float32) *InvoiceUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *InvoiceUpdateOne) ClearExtractionConfidence() *InvoiceUpdateOne {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *InvoiceUpdateOne) SetNeedsReview(v bool) *InvoiceUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNeedsReview(v *bool) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdateOne) SetStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReimbursementStatus sets the "reimbursement_status" field.
func (_u *InvoiceUpdateOne) SetReimbursementStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetReimbursementStatus(v)
	return _u
}

// SetNillableReimbursementStatus sets the "reimbursement_status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableReimbursementStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetReimbursementStatus(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *InvoiceUpdateOne) SetIsVerified(v bool) *InvoiceUpdateOne {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableIsVerified(v *bool) *InvoiceUpdateOne {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetVerifiedBy sets the "verified_by" field.
func (_u *InvoiceUpdateOne) SetVerifiedBy(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetVerifiedBy(v)
	return _u
}

// SetNillableVerifiedBy sets the "verified_by" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVerifiedBy(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVerifiedBy(*v)
	}
	return _u
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (_u *InvoiceUpdateOne) ClearVerifiedBy() *InvoiceUpdateOne {
	_u.mutation.ClearVerifiedBy()
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *InvoiceUpdateOne) SetVerifiedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVerifiedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *InvoiceUpdateOne) ClearVerifiedAt() *InvoiceUpdateOne {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetVerificationNotes sets the "verification_notes" field.
func (_u *InvoiceUpdateOne) SetVerificationNotes(v string) *InvoiceUpdateOne {
	_u.mutation.SetVerificationNotes(v)
	return _u
}

// SetNillableVerificationNotes sets the "verification_notes" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVerificationNotes(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVerificationNotes(*v)
	}
	return _u
}

// ClearVerificationNotes clears the value of the "verification_notes" field.
func (_u *InvoiceUpdateOne) ClearVerificationNotes() *InvoiceUpdateOne {
	_u.mutation.ClearVerificationNotes()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InvoiceUpdateOne) SetDeletedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDeletedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InvoiceUpdateOne) ClearDeletedAt() *InvoiceUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the ExtractionTask entity by IDs.
func (_u *InvoiceUpdateOne) AddTaskIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the ExtractionTask entity.
func (_u *InvoiceUpdateOne) AddTasks(v ...*ExtractionTask) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the ExtractionTask entity.
func (_u *InvoiceUpdateOne) ClearTasks() *InvoiceUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to ExtractionTask entities by IDs.
func (_u *InvoiceUpdateOne) RemoveTaskIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to ExtractionTask entities.
func (_u *InvoiceUpdateOne) RemoveTasks(v ...*ExtractionTask) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := invoice.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Invoice.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := invoice.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := invoice.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Invoice.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := invoice.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReimbursementStatus(); ok {
		if err := invoice.ReimbursementStatusValidator(v); err != nil {
			return &ValidationError{Name: "reimbursement_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.reimbursement_status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(invoice.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(invoice.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(invoice.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(invoice.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(invoice.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(invoice.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(invoice.FieldStorageKey, field.TypeString, value)
	}
	if _u.mutation.StorageKeyCleared() {
		_spec.ClearField(invoice.FieldStorageKey, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(invoice.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IssuerName(); ok {
		_spec.SetField(invoice.FieldIssuerName, field.TypeString, value)
	}
	if _u.mutation.IssuerNameCleared() {
		_spec.ClearField(invoice.FieldIssuerName, field.TypeString)
	}
	if value, ok := _u.mutation.PayerName(); ok {
		_spec.SetField(invoice.FieldPayerName, field.TypeString, value)
	}
	if _u.mutation.PayerNameCleared() {
		_spec.ClearField(invoice.FieldPayerName, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(invoice.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(invoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(invoice.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.Extraction(); ok {
		_spec.SetField(invoice.FieldExtraction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtraction(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldExtraction, value)
		})
	}
	if _u.mutation.ExtractionCleared() {
		_spec.ClearField(invoice.FieldExtraction, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProviderName(); ok {
		_spec.SetField(invoice.FieldProviderName, field.TypeString, value)
	}
	if _u.mutation.ProviderNameCleared() {
		_spec.ClearField(invoice.FieldProviderName, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(invoice.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(invoice.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(invoice.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(invoice.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReimbursementStatus(); ok {
		_spec.SetField(invoice.FieldReimbursementStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(invoice.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerifiedBy(); ok {
		_spec.SetField(invoice.FieldVerifiedBy, field.TypeUUID, value)
	}
	if _u.mutation.VerifiedByCleared() {
		_spec.ClearField(invoice.FieldVerifiedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(invoice.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(invoice.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerificationNotes(); ok {
		_spec.SetField(invoice.FieldVerificationNotes, field.TypeString, value)
	}
	if _u.mutation.VerificationNotesCleared() {
		_spec.ClearField(invoice.FieldVerificationNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(invoice.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(invoice.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
