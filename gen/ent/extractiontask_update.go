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

// ExtractionTaskUpdate is the builder for updating ExtractionTask entities.
type ExtractionTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionTaskMutation
}

// Where appends a list predicates to the ExtractionTaskUpdate builder.
func (_u *ExtractionTaskUpdate) Where(ps ...predicate.ExtractionTask) *ExtractionTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ExtractionTaskUpdate) SetOwnerID(v uuid.UUID) *ExtractionTaskUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableOwnerID(v *uuid.UUID) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *ExtractionTaskUpdate) SetInvoiceID(v uuid.UUID) *ExtractionTaskUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableInvoiceID(v *uuid.UUID) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (_u *ExtractionTaskUpdate) ClearInvoiceID() *ExtractionTaskUpdate {
	_u.mutation.ClearInvoiceID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractionTaskUpdate) SetFormat(v string) *ExtractionTaskUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableFormat(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionTaskUpdate) SetStatus(v string) *ExtractionTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableStatus(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ExtractionTaskUpdate) SetRetryCount(v int) *ExtractionTaskUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableRetryCount(v *int) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ExtractionTaskUpdate) AddRetryCount(v int) *ExtractionTaskUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *ExtractionTaskUpdate) SetMaxRetries(v int) *ExtractionTaskUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableMaxRetries(v *int) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *ExtractionTaskUpdate) AddMaxRetries(v int) *ExtractionTaskUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *ExtractionTaskUpdate) SetNextRetryAt(v time.Time) *ExtractionTaskUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableNextRetryAt(v *time.Time) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *ExtractionTaskUpdate) ClearNextRetryAt() *ExtractionTaskUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionTaskUpdate) SetStartedAt(v time.Time) *ExtractionTaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableStartedAt(v *time.Time) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionTaskUpdate) ClearStartedAt() *ExtractionTaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExtractionTaskUpdate) SetCompletedAt(v time.Time) *ExtractionTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableCompletedAt(v *time.Time) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExtractionTaskUpdate) ClearCompletedAt() *ExtractionTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionTaskUpdate) SetErrorMessage(v string) *ExtractionTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableErrorMessage(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionTaskUpdate) ClearErrorMessage() *ExtractionTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultPayload sets the "result_payload" field.
func (_u *ExtractionTaskUpdate) SetResultPayload(v json.RawMessage) *ExtractionTaskUpdate {
	_u.mutation.SetResultPayload(v)
	return _u
}

// AppendResultPayload appends value to the "result_payload" field.
func (_u *ExtractionTaskUpdate) AppendResultPayload(v json.RawMessage) *ExtractionTaskUpdate {
	_u.mutation.AppendResultPayload(v)
	return _u
}

// ClearResultPayload clears the value of the "result_payload" field.
func (_u *ExtractionTaskUpdate) ClearResultPayload() *ExtractionTaskUpdate {
	_u.mutation.ClearResultPayload()
	return _u
}

// SetProviderName sets the "provider_name" field.
func (_u *ExtractionTaskUpdate) SetProviderName(v string) *ExtractionTaskUpdate {
	_u.mutation.SetProviderName(v)
	return _u
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableProviderName(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetProviderName(*v)
	}
	return _u
}

// ClearProviderName clears the value of the "provider_name" field.
func (_u *ExtractionTaskUpdate) ClearProviderName() *ExtractionTaskUpdate {
	_u.mutation.ClearProviderName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionTaskUpdate) SetCreatedAt(v time.Time) *ExtractionTaskUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionTaskUpdate) SetUpdatedAt(v time.Time) *ExtractionTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *ExtractionTaskUpdate) SetInvoice(v *Invoice) *ExtractionTaskUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the ExtractionTaskMutation object of the builder.
func (_u *ExtractionTaskUpdate) Mutation() *ExtractionTaskMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *ExtractionTaskUpdate) ClearInvoice() *ExtractionTaskUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractiontask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionTaskUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := extractiontask.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractiontask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := extractiontask.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := extractiontask.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.max_retries": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractiontask.Table, extractiontask.Columns, sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(extractiontask.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractiontask.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractiontask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(extractiontask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(extractiontask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(extractiontask.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(extractiontask.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(extractiontask.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(extractiontask.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractiontask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractiontask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(extractiontask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(extractiontask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractiontask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractiontask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultPayload(); ok {
		_spec.SetField(extractiontask.FieldResultPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractiontask.FieldResultPayload, value)
		})
	}
	if _u.mutation.ResultPayloadCleared() {
		_spec.ClearField(extractiontask.FieldResultPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProviderName(); ok {
		_spec.SetField(extractiontask.FieldProviderName, field.TypeString, value)
	}
	if _u.mutation.ProviderNameCleared() {
		_spec.ClearField(extractiontask.FieldProviderName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractiontask.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractiontask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractiontask.InvoiceTable,
			Columns: []string{extractiontask.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractiontask.InvoiceTable,
			Columns: []string{extractiontask.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractiontask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionTaskUpdateOne is the builder for updating a single ExtractionTask entity.
type ExtractionTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionTaskMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *ExtractionTaskUpdateOne) SetOwnerID(v uuid.UUID) *ExtractionTaskUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableOwnerID(v *uuid.UUID) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *ExtractionTaskUpdateOne) SetInvoiceID(v uuid.UUID) *ExtractionTaskUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (_u *ExtractionTaskUpdateOne) ClearInvoiceID() *ExtractionTaskUpdateOne {
	_u.mutation.ClearInvoiceID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractionTaskUpdateOne) SetFormat(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableFormat(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionTaskUpdateOne) SetStatus(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableStatus(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ExtractionTaskUpdateOne) SetRetryCount(v int) *ExtractionTaskUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableRetryCount(v *int) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ExtractionTaskUpdateOne) AddRetryCount(v int) *ExtractionTaskUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *ExtractionTaskUpdateOne) SetMaxRetries(v int) *ExtractionTaskUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableMaxRetries(v *int) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *ExtractionTaskUpdateOne) AddMaxRetries(v int) *ExtractionTaskUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *ExtractionTaskUpdateOne) SetNextRetryAt(v time.Time) *ExtractionTaskUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableNextRetryAt(v *time.Time) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *ExtractionTaskUpdateOne) ClearNextRetryAt() *ExtractionTaskUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionTaskUpdateOne) SetStartedAt(v time.Time) *ExtractionTaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionTaskUpdateOne) ClearStartedAt() *ExtractionTaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExtractionTaskUpdateOne) SetCompletedAt(v time.Time) *ExtractionTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExtractionTaskUpdateOne) ClearCompletedAt() *ExtractionTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionTaskUpdateOne) SetErrorMessage(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableErrorMessage(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionTaskUpdateOne) ClearErrorMessage() *ExtractionTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultPayload sets the "result_payload" field.
func (_u *ExtractionTaskUpdateOne) SetResultPayload(v json.RawMessage) *ExtractionTaskUpdateOne {
	_u.mutation.SetResultPayload(v)
	return _u
}

// AppendResultPayload appends value to the "result_payload" field.
func (_u *ExtractionTaskUpdateOne) AppendResultPayload(v json.RawMessage) *ExtractionTaskUpdateOne {
	_u.mutation.AppendResultPayload(v)
	return _u
}

// ClearResultPayload clears the value of the "result_payload" field.
func (_u *ExtractionTaskUpdateOne) ClearResultPayload() *ExtractionTaskUpdateOne {
	_u.mutation.ClearResultPayload()
	return _u
}

// SetProviderName sets the "provider_name" field.
func (_u *ExtractionTaskUpdateOne) SetProviderName(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetProviderName(v)
	return _u
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableProviderName(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetProviderName(*v)
	}
	return _u
}

// ClearProviderName clears the value of the "provider_name" field.
func (_u *ExtractionTaskUpdateOne) ClearProviderName() *ExtractionTaskUpdateOne {
	_u.mutation.ClearProviderName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionTaskUpdateOne) SetCreatedAt(v time.Time) *ExtractionTaskUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionTaskUpdateOne) SetUpdatedAt(v time.Time) *ExtractionTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *ExtractionTaskUpdateOne) SetInvoice(v *Invoice) *ExtractionTaskUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the ExtractionTaskMutation object of the builder.
func (_u *ExtractionTaskUpdateOne) Mutation() *ExtractionTaskMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *ExtractionTaskUpdateOne) ClearInvoice() *ExtractionTaskUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the ExtractionTaskUpdate builder.
func (_u *ExtractionTaskUpdateOne) Where(ps ...predicate.ExtractionTask) *ExtractionTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionTaskUpdateOne) Select(field string, fields ...string) *ExtractionTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionTask entity.
func (_u *ExtractionTaskUpdateOne) Save(ctx context.Context) (*ExtractionTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionTaskUpdateOne) SaveX(ctx context.Context) *ExtractionTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractiontask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := extractiontask.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractiontask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := extractiontask.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := extractiontask.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.max_retries": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionTaskUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractiontask.Table, extractiontask.Columns, sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractiontask.FieldID)
		for _, f := range fields {
			if !extractiontask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractiontask.FieldID {
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
		_spec.SetField(extractiontask.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractiontask.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractiontask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(extractiontask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(extractiontask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(extractiontask.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(extractiontask.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(extractiontask.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(extractiontask.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractiontask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractiontask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(extractiontask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(extractiontask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractiontask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractiontask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultPayload(); ok {
		_spec.SetField(extractiontask.FieldResultPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractiontask.FieldResultPayload, value)
		})
	}
	if _u.mutation.ResultPayloadCleared() {
		_spec.ClearField(extractiontask.FieldResultPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProviderName(); ok {
		_spec.SetField(extractiontask.FieldProviderName, field.TypeString, value)
	}
	if _u.mutation.ProviderNameCleared() {
		_spec.ClearField(extractiontask.FieldProviderName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractiontask.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractiontask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractiontask.InvoiceTable,
			Columns: []string{extractiontask.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractiontask.InvoiceTable,
			Columns: []string{extractiontask.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractiontask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
