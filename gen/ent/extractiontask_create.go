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

// ExtractionTaskCreate is the builder for creating a ExtractionTask entity.
type ExtractionTaskCreate struct {
	config
	mutation *ExtractionTaskMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ExtractionTaskCreate) SetOwnerID(v uuid.UUID) *ExtractionTaskCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *ExtractionTaskCreate) SetInvoiceID(v uuid.UUID) *ExtractionTaskCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableInvoiceID(v *uuid.UUID) *ExtractionTaskCreate {
	if v != nil {
		_c.SetInvoiceID(*v)
	}
	return _c
}

// SetFormat sets the "format" field.
func (_c *ExtractionTaskCreate) SetFormat(v string) *ExtractionTaskCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionTaskCreate) SetStatus(v string) *ExtractionTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableStatus(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *ExtractionTaskCreate) SetRetryCount(v int) *ExtractionTaskCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableRetryCount(v *int) *ExtractionTaskCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *ExtractionTaskCreate) SetMaxRetries(v int) *ExtractionTaskCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableMaxRetries(v *int) *ExtractionTaskCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *ExtractionTaskCreate) SetNextRetryAt(v time.Time) *ExtractionTaskCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableNextRetryAt(v *time.Time) *ExtractionTaskCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractionTaskCreate) SetStartedAt(v time.Time) *ExtractionTaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableStartedAt(v *time.Time) *ExtractionTaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExtractionTaskCreate) SetCompletedAt(v time.Time) *ExtractionTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableCompletedAt(v *time.Time) *ExtractionTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionTaskCreate) SetErrorMessage(v string) *ExtractionTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableErrorMessage(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResultPayload sets the "result_payload" field.
func (_c *ExtractionTaskCreate) SetResultPayload(v json.RawMessage) *ExtractionTaskCreate {
	_c.mutation.SetResultPayload(v)
	return _c
}

// SetProviderName sets the "provider_name" field.
func (_c *ExtractionTaskCreate) SetProviderName(v string) *ExtractionTaskCreate {
	_c.mutation.SetProviderName(v)
	return _c
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableProviderName(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetProviderName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionTaskCreate) SetCreatedAt(v time.Time) *ExtractionTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableCreatedAt(v *time.Time) *ExtractionTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionTaskCreate) SetUpdatedAt(v time.Time) *ExtractionTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionTaskCreate) SetID(v uuid.UUID) *ExtractionTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableID(v *uuid.UUID) *ExtractionTaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *ExtractionTaskCreate) SetInvoice(v *Invoice) *ExtractionTaskCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the ExtractionTaskMutation object of the builder.
func (_c *ExtractionTaskCreate) Mutation() *ExtractionTaskMutation {
	return _c.mutation
}

// Save creates the ExtractionTask in the database.
func (_c *ExtractionTaskCreate) Save(ctx context.Context) (*ExtractionTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionTaskCreate) SaveX(ctx context.Context) *ExtractionTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := extractiontask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := extractiontask.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := extractiontask.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractiontask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractiontask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractiontask.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionTaskCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ExtractionTask.owner_id"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ExtractionTask.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := extractiontask.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractiontask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "ExtractionTask.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := extractiontask.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "ExtractionTask.max_retries"`)}
	}
	if v, ok := _c.mutation.MaxRetries(); ok {
		if err := extractiontask.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.max_retries": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionTask.updated_at"`)}
	}
	return nil
}

func (_c *ExtractionTaskCreate) sqlSave(ctx context.Context) (*ExtractionTask, error) {
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

func (_c *ExtractionTaskCreate) createSpec() (*ExtractionTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractiontask.Table, sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(extractiontask.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(extractiontask.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractiontask.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(extractiontask.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(extractiontask.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(extractiontask.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractiontask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(extractiontask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractiontask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ResultPayload(); ok {
		_spec.SetField(extractiontask.FieldResultPayload, field.TypeJSON, value)
		_node.ResultPayload = value
	}
	if value, ok := _c.mutation.ProviderName(); ok {
		_spec.SetField(extractiontask.FieldProviderName, field.TypeString, value)
		_node.ProviderName = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractiontask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractiontask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_node.InvoiceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionTaskCreateBulk is the builder for creating many ExtractionTask entities in bulk.
type ExtractionTaskCreateBulk struct {
	config
	err      error
	builders []*ExtractionTaskCreate
}

// Save creates the ExtractionTask entities in the database.
func (_c *ExtractionTaskCreateBulk) Save(ctx context.Context) ([]*ExtractionTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionTaskMutation)
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
func (_c *ExtractionTaskCreateBulk) SaveX(ctx context.Context) []*ExtractionTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
