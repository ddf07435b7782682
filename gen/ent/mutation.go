// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/luminexhq/invoicevault/gen/ent/extractiontask"
	"github.com/luminexhq/invoicevault/gen/ent/invoice"
	"github.com/luminexhq/invoicevault/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractionTask = "ExtractionTask"
	TypeInvoice        = "Invoice"
)

// ExtractionTaskMutation represents an operation that mutates the ExtractionTask nodes in the graph.
type ExtractionTaskMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	owner_id             *uuid.UUID
	format               *string
	status               *string
	retry_count          *int
	addretry_count       *int
	max_retries          *int
	addmax_retries       *int
	next_retry_at        *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	error_message        *string
	result_payload       *json.RawMessage
	appendresult_payload json.RawMessage
	provider_name        *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	invoice              *uuid.UUID
	clearedinvoice       bool
	done                 bool
	oldValue             func(context.Context) (*ExtractionTask, error)
	predicates           []predicate.ExtractionTask
}

var _ ent.Mutation = (*ExtractionTaskMutation)(nil)

// extractiontaskOption allows management of the mutation configuration using functional options.
type extractiontaskOption func(*ExtractionTaskMutation)

// newExtractionTaskMutation creates new mutation for the ExtractionTask entity.
func newExtractionTaskMutation(c config, op Op, opts ...extractiontaskOption) *ExtractionTaskMutation {
	m := &ExtractionTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionTaskID sets the ID field of the mutation.
func withExtractionTaskID(id uuid.UUID) extractiontaskOption {
	return func(m *ExtractionTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionTask
		)
		m.oldValue = func(ctx context.Context) (*ExtractionTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionTask sets the old ExtractionTask of the mutation.
func withExtractionTask(node *ExtractionTask) extractiontaskOption {
	return func(m *ExtractionTaskMutation) {
		m.oldValue = func(context.Context) (*ExtractionTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionTask entities.
func (m *ExtractionTaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionTaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionTaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ExtractionTaskMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ExtractionTaskMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ExtractionTaskMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetInvoiceID sets the "invoice_id" field.
func (m *ExtractionTaskMutation) SetInvoiceID(u uuid.UUID) {
	m.invoice = &u
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *ExtractionTaskMutation) InvoiceID() (r uuid.UUID, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldInvoiceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (m *ExtractionTaskMutation) ClearInvoiceID() {
	m.invoice = nil
	m.clearedFields[extractiontask.FieldInvoiceID] = struct{}{}
}

// InvoiceIDCleared returns if the "invoice_id" field was cleared in this mutation.
func (m *ExtractionTaskMutation) InvoiceIDCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldInvoiceID]
	return ok
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *ExtractionTaskMutation) ResetInvoiceID() {
	m.invoice = nil
	delete(m.clearedFields, extractiontask.FieldInvoiceID)
}

// SetFormat sets the "format" field.
func (m *ExtractionTaskMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractionTaskMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractionTaskMutation) ResetFormat() {
	m.format = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionTaskMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionTaskMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionTaskMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *ExtractionTaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *ExtractionTaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *ExtractionTaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *ExtractionTaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *ExtractionTaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *ExtractionTaskMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *ExtractionTaskMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *ExtractionTaskMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *ExtractionTaskMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *ExtractionTaskMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *ExtractionTaskMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *ExtractionTaskMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *ExtractionTaskMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[extractiontask.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *ExtractionTaskMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *ExtractionTaskMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, extractiontask.FieldNextRetryAt)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionTaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionTaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExtractionTaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[extractiontask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExtractionTaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionTaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, extractiontask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExtractionTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExtractionTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExtractionTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[extractiontask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExtractionTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExtractionTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, extractiontask.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractiontask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractiontask.FieldErrorMessage)
}

// SetResultPayload sets the "result_payload" field.
func (m *ExtractionTaskMutation) SetResultPayload(jm json.RawMessage) {
	m.result_payload = &jm
	m.appendresult_payload = nil
}

// ResultPayload returns the value of the "result_payload" field in the mutation.
func (m *ExtractionTaskMutation) ResultPayload() (r json.RawMessage, exists bool) {
	v := m.result_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldResultPayload returns the old "result_payload" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldResultPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultPayload: %w", err)
	}
	return oldValue.ResultPayload, nil
}

// AppendResultPayload adds jm to the "result_payload" field.
func (m *ExtractionTaskMutation) AppendResultPayload(jm json.RawMessage) {
	m.appendresult_payload = append(m.appendresult_payload, jm...)
}

// AppendedResultPayload returns the list of values that were appended to the "result_payload" field in this mutation.
func (m *ExtractionTaskMutation) AppendedResultPayload() (json.RawMessage, bool) {
	if len(m.appendresult_payload) == 0 {
		return nil, false
	}
	return m.appendresult_payload, true
}

// ClearResultPayload clears the value of the "result_payload" field.
func (m *ExtractionTaskMutation) ClearResultPayload() {
	m.result_payload = nil
	m.appendresult_payload = nil
	m.clearedFields[extractiontask.FieldResultPayload] = struct{}{}
}

// ResultPayloadCleared returns if the "result_payload" field was cleared in this mutation.
func (m *ExtractionTaskMutation) ResultPayloadCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldResultPayload]
	return ok
}

// ResetResultPayload resets all changes to the "result_payload" field.
func (m *ExtractionTaskMutation) ResetResultPayload() {
	m.result_payload = nil
	m.appendresult_payload = nil
	delete(m.clearedFields, extractiontask.FieldResultPayload)
}

// SetProviderName sets the "provider_name" field.
func (m *ExtractionTaskMutation) SetProviderName(s string) {
	m.provider_name = &s
}

// ProviderName returns the value of the "provider_name" field in the mutation.
func (m *ExtractionTaskMutation) ProviderName() (r string, exists bool) {
	v := m.provider_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderName returns the old "provider_name" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldProviderName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderName: %w", err)
	}
	return oldValue.ProviderName, nil
}

// ClearProviderName clears the value of the "provider_name" field.
func (m *ExtractionTaskMutation) ClearProviderName() {
	m.provider_name = nil
	m.clearedFields[extractiontask.FieldProviderName] = struct{}{}
}

// ProviderNameCleared returns if the "provider_name" field was cleared in this mutation.
func (m *ExtractionTaskMutation) ProviderNameCleared() bool {
	_, ok := m.clearedFields[extractiontask.FieldProviderName]
	return ok
}

// ResetProviderName resets all changes to the "provider_name" field.
func (m *ExtractionTaskMutation) ResetProviderName() {
	m.provider_name = nil
	delete(m.clearedFields, extractiontask.FieldProviderName)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionTask entity.
// If the ExtractionTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (m *ExtractionTaskMutation) ClearInvoice() {
	m.clearedinvoice = true
	m.clearedFields[extractiontask.FieldInvoiceID] = struct{}{}
}

// InvoiceCleared reports if the "invoice" edge to the Invoice entity was cleared.
func (m *ExtractionTaskMutation) InvoiceCleared() bool {
	return m.InvoiceIDCleared() || m.clearedinvoice
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *ExtractionTaskMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *ExtractionTaskMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// Where appends a list predicates to the ExtractionTaskMutation builder.
func (m *ExtractionTaskMutation) Where(ps ...predicate.ExtractionTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionTask).
func (m *ExtractionTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionTaskMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.owner_id != nil {
		fields = append(fields, extractiontask.FieldOwnerID)
	}
	if m.invoice != nil {
		fields = append(fields, extractiontask.FieldInvoiceID)
	}
	if m.format != nil {
		fields = append(fields, extractiontask.FieldFormat)
	}
	if m.status != nil {
		fields = append(fields, extractiontask.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, extractiontask.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, extractiontask.FieldMaxRetries)
	}
	if m.next_retry_at != nil {
		fields = append(fields, extractiontask.FieldNextRetryAt)
	}
	if m.started_at != nil {
		fields = append(fields, extractiontask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, extractiontask.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, extractiontask.FieldErrorMessage)
	}
	if m.result_payload != nil {
		fields = append(fields, extractiontask.FieldResultPayload)
	}
	if m.provider_name != nil {
		fields = append(fields, extractiontask.FieldProviderName)
	}
	if m.created_at != nil {
		fields = append(fields, extractiontask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractiontask.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractiontask.FieldOwnerID:
		return m.OwnerID()
	case extractiontask.FieldInvoiceID:
		return m.InvoiceID()
	case extractiontask.FieldFormat:
		return m.Format()
	case extractiontask.FieldStatus:
		return m.Status()
	case extractiontask.FieldRetryCount:
		return m.RetryCount()
	case extractiontask.FieldMaxRetries:
		return m.MaxRetries()
	case extractiontask.FieldNextRetryAt:
		return m.NextRetryAt()
	case extractiontask.FieldStartedAt:
		return m.StartedAt()
	case extractiontask.FieldCompletedAt:
		return m.CompletedAt()
	case extractiontask.FieldErrorMessage:
		return m.ErrorMessage()
	case extractiontask.FieldResultPayload:
		return m.ResultPayload()
	case extractiontask.FieldProviderName:
		return m.ProviderName()
	case extractiontask.FieldCreatedAt:
		return m.CreatedAt()
	case extractiontask.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractiontask.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case extractiontask.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case extractiontask.FieldFormat:
		return m.OldFormat(ctx)
	case extractiontask.FieldStatus:
		return m.OldStatus(ctx)
	case extractiontask.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case extractiontask.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case extractiontask.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case extractiontask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractiontask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case extractiontask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractiontask.FieldResultPayload:
		return m.OldResultPayload(ctx)
	case extractiontask.FieldProviderName:
		return m.OldProviderName(ctx)
	case extractiontask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractiontask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractiontask.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case extractiontask.FieldInvoiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case extractiontask.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractiontask.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractiontask.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case extractiontask.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case extractiontask.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case extractiontask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractiontask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case extractiontask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractiontask.FieldResultPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultPayload(v)
		return nil
	case extractiontask.FieldProviderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderName(v)
		return nil
	case extractiontask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractiontask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionTaskMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, extractiontask.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, extractiontask.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractiontask.FieldRetryCount:
		return m.AddedRetryCount()
	case extractiontask.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractiontask.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case extractiontask.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractiontask.FieldInvoiceID) {
		fields = append(fields, extractiontask.FieldInvoiceID)
	}
	if m.FieldCleared(extractiontask.FieldNextRetryAt) {
		fields = append(fields, extractiontask.FieldNextRetryAt)
	}
	if m.FieldCleared(extractiontask.FieldStartedAt) {
		fields = append(fields, extractiontask.FieldStartedAt)
	}
	if m.FieldCleared(extractiontask.FieldCompletedAt) {
		fields = append(fields, extractiontask.FieldCompletedAt)
	}
	if m.FieldCleared(extractiontask.FieldErrorMessage) {
		fields = append(fields, extractiontask.FieldErrorMessage)
	}
	if m.FieldCleared(extractiontask.FieldResultPayload) {
		fields = append(fields, extractiontask.FieldResultPayload)
	}
	if m.FieldCleared(extractiontask.FieldProviderName) {
		fields = append(fields, extractiontask.FieldProviderName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionTaskMutation) ClearField(name string) error {
	switch name {
	case extractiontask.FieldInvoiceID:
		m.ClearInvoiceID()
		return nil
	case extractiontask.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case extractiontask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case extractiontask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case extractiontask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractiontask.FieldResultPayload:
		m.ClearResultPayload()
		return nil
	case extractiontask.FieldProviderName:
		m.ClearProviderName()
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionTaskMutation) ResetField(name string) error {
	switch name {
	case extractiontask.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case extractiontask.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case extractiontask.FieldFormat:
		m.ResetFormat()
		return nil
	case extractiontask.FieldStatus:
		m.ResetStatus()
		return nil
	case extractiontask.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case extractiontask.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case extractiontask.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case extractiontask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractiontask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case extractiontask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractiontask.FieldResultPayload:
		m.ResetResultPayload()
		return nil
	case extractiontask.FieldProviderName:
		m.ResetProviderName()
		return nil
	case extractiontask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractiontask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoice != nil {
		edges = append(edges, extractiontask.EdgeInvoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractiontask.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoice {
		edges = append(edges, extractiontask.EdgeInvoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case extractiontask.EdgeInvoice:
		return m.clearedinvoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionTaskMutation) ClearEdge(name string) error {
	switch name {
	case extractiontask.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionTaskMutation) ResetEdge(name string) error {
	switch name {
	case extractiontask.EdgeInvoice:
		m.ResetInvoice()
		return nil
	}
	return fmt.Errorf("unknown ExtractionTask edge %s", name)
}

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	owner_id                 *uuid.UUID
	content_hash             *[]byte
	file_size                *int64
	addfile_size             *int64
	filename                 *string
	file_ext                 *string
	storage_key              *string
	uploaded_at              *time.Time
	invoice_number           *string
	invoice_date             *time.Time
	issuer_name              *string
	payer_name               *string
	amount                   *float64
	addamount                *float64
	tax_amount               *float64
	addtax_amount            *float64
	total_amount             *float64
	addtotal_amount          *float64
	currency_code            *string
	extraction               *json.RawMessage
	appendextraction         json.RawMessage
	provider_name            *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	needs_review             *bool
	status                   *string
	reimbursement_status     *string
	is_verified              *bool
	verified_by              *uuid.UUID
	verified_at              *time.Time
	verification_notes       *string
	deleted_at               *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	tasks                    map[uuid.UUID]struct{}
	removedtasks             map[uuid.UUID]struct{}
	clearedtasks             bool
	done                     bool
	oldValue                 func(context.Context) (*Invoice, error)
	predicates               []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *InvoiceMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *InvoiceMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *InvoiceMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetContentHash sets the "content_hash" field.
func (m *InvoiceMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *InvoiceMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *InvoiceMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFileSize sets the "file_size" field.
func (m *InvoiceMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *InvoiceMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *InvoiceMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *InvoiceMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *InvoiceMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetFilename sets the "filename" field.
func (m *InvoiceMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *InvoiceMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *InvoiceMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *InvoiceMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *InvoiceMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *InvoiceMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *InvoiceMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *InvoiceMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldStorageKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ClearStorageKey clears the value of the "storage_key" field.
func (m *InvoiceMutation) ClearStorageKey() {
	m.storage_key = nil
	m.clearedFields[invoice.FieldStorageKey] = struct{}{}
}

// StorageKeyCleared returns if the "storage_key" field was cleared in this mutation.
func (m *InvoiceMutation) StorageKeyCleared() bool {
	_, ok := m.clearedFields[invoice.FieldStorageKey]
	return ok
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *InvoiceMutation) ResetStorageKey() {
	m.storage_key = nil
	delete(m.clearedFields, invoice.FieldStorageKey)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *InvoiceMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *InvoiceMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *InvoiceMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *InvoiceMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[invoice.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, invoice.FieldInvoiceNumber)
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *InvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *InvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (m *InvoiceMutation) ClearInvoiceDate() {
	m.invoice_date = nil
	m.clearedFields[invoice.FieldInvoiceDate] = struct{}{}
}

// InvoiceDateCleared returns if the "invoice_date" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceDate]
	return ok
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *InvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
	delete(m.clearedFields, invoice.FieldInvoiceDate)
}

// SetIssuerName sets the "issuer_name" field.
func (m *InvoiceMutation) SetIssuerName(s string) {
	m.issuer_name = &s
}

// IssuerName returns the value of the "issuer_name" field in the mutation.
func (m *InvoiceMutation) IssuerName() (r string, exists bool) {
	v := m.issuer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuerName returns the old "issuer_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldIssuerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuerName: %w", err)
	}
	return oldValue.IssuerName, nil
}

// ClearIssuerName clears the value of the "issuer_name" field.
func (m *InvoiceMutation) ClearIssuerName() {
	m.issuer_name = nil
	m.clearedFields[invoice.FieldIssuerName] = struct{}{}
}

// IssuerNameCleared returns if the "issuer_name" field was cleared in this mutation.
func (m *InvoiceMutation) IssuerNameCleared() bool {
	_, ok := m.clearedFields[invoice.FieldIssuerName]
	return ok
}

// ResetIssuerName resets all changes to the "issuer_name" field.
func (m *InvoiceMutation) ResetIssuerName() {
	m.issuer_name = nil
	delete(m.clearedFields, invoice.FieldIssuerName)
}

// SetPayerName sets the "payer_name" field.
func (m *InvoiceMutation) SetPayerName(s string) {
	m.payer_name = &s
}

// PayerName returns the value of the "payer_name" field in the mutation.
func (m *InvoiceMutation) PayerName() (r string, exists bool) {
	v := m.payer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPayerName returns the old "payer_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPayerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayerName: %w", err)
	}
	return oldValue.PayerName, nil
}

// ClearPayerName clears the value of the "payer_name" field.
func (m *InvoiceMutation) ClearPayerName() {
	m.payer_name = nil
	m.clearedFields[invoice.FieldPayerName] = struct{}{}
}

// PayerNameCleared returns if the "payer_name" field was cleared in this mutation.
func (m *InvoiceMutation) PayerNameCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPayerName]
	return ok
}

// ResetPayerName resets all changes to the "payer_name" field.
func (m *InvoiceMutation) ResetPayerName() {
	m.payer_name = nil
	delete(m.clearedFields, invoice.FieldPayerName)
}

// SetAmount sets the "amount" field.
func (m *InvoiceMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *InvoiceMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *InvoiceMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *InvoiceMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *InvoiceMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[invoice.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *InvoiceMutation) AmountCleared() bool {
	_, ok := m.clearedFields[invoice.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *InvoiceMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, invoice.FieldAmount)
}

// SetTaxAmount sets the "tax_amount" field.
func (m *InvoiceMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *InvoiceMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTaxAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *InvoiceMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *InvoiceMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (m *InvoiceMutation) ClearTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	m.clearedFields[invoice.FieldTaxAmount] = struct{}{}
}

// TaxAmountCleared returns if the "tax_amount" field was cleared in this mutation.
func (m *InvoiceMutation) TaxAmountCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTaxAmount]
	return ok
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *InvoiceMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	delete(m.clearedFields, invoice.FieldTaxAmount)
}

// SetTotalAmount sets the "total_amount" field.
func (m *InvoiceMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *InvoiceMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *InvoiceMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *InvoiceMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *InvoiceMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[invoice.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *InvoiceMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *InvoiceMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, invoice.FieldTotalAmount)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *InvoiceMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *InvoiceMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCurrencyCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (m *InvoiceMutation) ClearCurrencyCode() {
	m.currency_code = nil
	m.clearedFields[invoice.FieldCurrencyCode] = struct{}{}
}

// CurrencyCodeCleared returns if the "currency_code" field was cleared in this mutation.
func (m *InvoiceMutation) CurrencyCodeCleared() bool {
	_, ok := m.clearedFields[invoice.FieldCurrencyCode]
	return ok
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *InvoiceMutation) ResetCurrencyCode() {
	m.currency_code = nil
	delete(m.clearedFields, invoice.FieldCurrencyCode)
}

// SetExtraction sets the "extraction" field.
func (m *InvoiceMutation) SetExtraction(jm json.RawMessage) {
	m.extraction = &jm
	m.appendextraction = nil
}

// Extraction returns the value of the "extraction" field in the mutation.
func (m *InvoiceMutation) Extraction() (r json.RawMessage, exists bool) {
	v := m.extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraction returns the old "extraction" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldExtraction(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraction: %w", err)
	}
	return oldValue.Extraction, nil
}

// AppendExtraction adds jm to the "extraction" field.
func (m *InvoiceMutation) AppendExtraction(jm json.RawMessage) {
	m.appendextraction = append(m.appendextraction, jm...)
}

// AppendedExtraction returns the list of values that were appended to the "extraction" field in this mutation.
func (m *InvoiceMutation) AppendedExtraction() (json.RawMessage, bool) {
	if len(m.appendextraction) == 0 {
		return nil, false
	}
	return m.appendextraction, true
}

// ClearExtraction clears the value of the "extraction" field.
func (m *InvoiceMutation) ClearExtraction() {
	m.extraction = nil
	m.appendextraction = nil
	m.clearedFields[invoice.FieldExtraction] = struct{}{}
}

// ExtractionCleared returns if the "extraction" field was cleared in this mutation.
func (m *InvoiceMutation) ExtractionCleared() bool {
	_, ok := m.clearedFields[invoice.FieldExtraction]
	return ok
}

// ResetExtraction resets all changes to the "extraction" field.
func (m *InvoiceMutation) ResetExtraction() {
	m.extraction = nil
	m.appendextraction = nil
	delete(m.clearedFields, invoice.FieldExtraction)
}

// SetProviderName sets the "provider_name" field.
func (m *InvoiceMutation) SetProviderName(s string) {
	m.provider_name = &s
}

// ProviderName returns the value of the "provider_name" field in the mutation.
func (m *InvoiceMutation) ProviderName() (r string, exists bool) {
	v := m.provider_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderName returns the old "provider_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldProviderName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderName: %w", err)
	}
	return oldValue.ProviderName, nil
}

// ClearProviderName clears the value of the "provider_name" field.
func (m *InvoiceMutation) ClearProviderName() {
	m.provider_name = nil
	m.clearedFields[invoice.FieldProviderName] = struct{}{}
}

// ProviderNameCleared returns if the "provider_name" field was cleared in this mutation.
func (m *InvoiceMutation) ProviderNameCleared() bool {
	_, ok := m.clearedFields[invoice.FieldProviderName]
	return ok
}

// ResetProviderName resets all changes to the "provider_name" field.
func (m *InvoiceMutation) ResetProviderName() {
	m.provider_name = nil
	delete(m.clearedFields, invoice.FieldProviderName)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *InvoiceMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *InvoiceMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *InvoiceMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *InvoiceMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *InvoiceMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[invoice.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *InvoiceMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[invoice.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *InvoiceMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, invoice.FieldExtractionConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *InvoiceMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *InvoiceMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *InvoiceMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetStatus sets the "status" field.
func (m *InvoiceMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InvoiceMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvoiceMutation) ResetStatus() {
	m.status = nil
}

// SetReimbursementStatus sets the "reimbursement_status" field.
func (m *InvoiceMutation) SetReimbursementStatus(s string) {
	m.reimbursement_status = &s
}

// ReimbursementStatus returns the value of the "reimbursement_status" field in the mutation.
func (m *InvoiceMutation) ReimbursementStatus() (r string, exists bool) {
	v := m.reimbursement_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReimbursementStatus returns the old "reimbursement_status" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldReimbursementStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReimbursementStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReimbursementStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReimbursementStatus: %w", err)
	}
	return oldValue.ReimbursementStatus, nil
}

// ResetReimbursementStatus resets all changes to the "reimbursement_status" field.
func (m *InvoiceMutation) ResetReimbursementStatus() {
	m.reimbursement_status = nil
}

// SetIsVerified sets the "is_verified" field.
func (m *InvoiceMutation) SetIsVerified(b bool) {
	m.is_verified = &b
}

// IsVerified returns the value of the "is_verified" field in the mutation.
func (m *InvoiceMutation) IsVerified() (r bool, exists bool) {
	v := m.is_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerified returns the old "is_verified" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldIsVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerified: %w", err)
	}
	return oldValue.IsVerified, nil
}

// ResetIsVerified resets all changes to the "is_verified" field.
func (m *InvoiceMutation) ResetIsVerified() {
	m.is_verified = nil
}

// SetVerifiedBy sets the "verified_by" field.
func (m *InvoiceMutation) SetVerifiedBy(u uuid.UUID) {
	m.verified_by = &u
}

// VerifiedBy returns the value of the "verified_by" field in the mutation.
func (m *InvoiceMutation) VerifiedBy() (r uuid.UUID, exists bool) {
	v := m.verified_by
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedBy returns the old "verified_by" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldVerifiedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedBy: %w", err)
	}
	return oldValue.VerifiedBy, nil
}

// ClearVerifiedBy clears the value of the "verified_by" field.
func (m *InvoiceMutation) ClearVerifiedBy() {
	m.verified_by = nil
	m.clearedFields[invoice.FieldVerifiedBy] = struct{}{}
}

// VerifiedByCleared returns if the "verified_by" field was cleared in this mutation.
func (m *InvoiceMutation) VerifiedByCleared() bool {
	_, ok := m.clearedFields[invoice.FieldVerifiedBy]
	return ok
}

// ResetVerifiedBy resets all changes to the "verified_by" field.
func (m *InvoiceMutation) ResetVerifiedBy() {
	m.verified_by = nil
	delete(m.clearedFields, invoice.FieldVerifiedBy)
}

// SetVerifiedAt sets the "verified_at" field.
func (m *InvoiceMutation) SetVerifiedAt(t time.Time) {
	m.verified_at = &t
}

// VerifiedAt returns the value of the "verified_at" field in the mutation.
func (m *InvoiceMutation) VerifiedAt() (r time.Time, exists bool) {
	v := m.verified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedAt returns the old "verified_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldVerifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedAt: %w", err)
	}
	return oldValue.VerifiedAt, nil
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (m *InvoiceMutation) ClearVerifiedAt() {
	m.verified_at = nil
	m.clearedFields[invoice.FieldVerifiedAt] = struct{}{}
}

// VerifiedAtCleared returns if the "verified_at" field was cleared in this mutation.
func (m *InvoiceMutation) VerifiedAtCleared() bool {
	_, ok := m.clearedFields[invoice.FieldVerifiedAt]
	return ok
}

// ResetVerifiedAt resets all changes to the "verified_at" field.
func (m *InvoiceMutation) ResetVerifiedAt() {
	m.verified_at = nil
	delete(m.clearedFields, invoice.FieldVerifiedAt)
}

// SetVerificationNotes sets the "verification_notes" field.
func (m *InvoiceMutation) SetVerificationNotes(s string) {
	m.verification_notes = &s
}

// VerificationNotes returns the value of the "verification_notes" field in the mutation.
func (m *InvoiceMutation) VerificationNotes() (r string, exists bool) {
	v := m.verification_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationNotes returns the old "verification_notes" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldVerificationNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationNotes: %w", err)
	}
	return oldValue.VerificationNotes, nil
}

// ClearVerificationNotes clears the value of the "verification_notes" field.
func (m *InvoiceMutation) ClearVerificationNotes() {
	m.verification_notes = nil
	m.clearedFields[invoice.FieldVerificationNotes] = struct{}{}
}

// VerificationNotesCleared returns if the "verification_notes" field was cleared in this mutation.
func (m *InvoiceMutation) VerificationNotesCleared() bool {
	_, ok := m.clearedFields[invoice.FieldVerificationNotes]
	return ok
}

// ResetVerificationNotes resets all changes to the "verification_notes" field.
func (m *InvoiceMutation) ResetVerificationNotes() {
	m.verification_notes = nil
	delete(m.clearedFields, invoice.FieldVerificationNotes)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *InvoiceMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *InvoiceMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *InvoiceMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[invoice.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *InvoiceMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[invoice.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *InvoiceMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, invoice.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTaskIDs adds the "tasks" edge to the ExtractionTask entity by ids.
func (m *InvoiceMutation) AddTaskIDs(ids ...uuid.UUID) {
	if m.tasks == nil {
		m.tasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the ExtractionTask entity.
func (m *InvoiceMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the ExtractionTask entity was cleared.
func (m *InvoiceMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the ExtractionTask entity by IDs.
func (m *InvoiceMutation) RemoveTaskIDs(ids ...uuid.UUID) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the ExtractionTask entity.
func (m *InvoiceMutation) RemovedTasksIDs() (ids []uuid.UUID) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *InvoiceMutation) TasksIDs() (ids []uuid.UUID) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *InvoiceMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.owner_id != nil {
		fields = append(fields, invoice.FieldOwnerID)
	}
	if m.content_hash != nil {
		fields = append(fields, invoice.FieldContentHash)
	}
	if m.file_size != nil {
		fields = append(fields, invoice.FieldFileSize)
	}
	if m.filename != nil {
		fields = append(fields, invoice.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, invoice.FieldFileExt)
	}
	if m.storage_key != nil {
		fields = append(fields, invoice.FieldStorageKey)
	}
	if m.uploaded_at != nil {
		fields = append(fields, invoice.FieldUploadedAt)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.invoice_date != nil {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.issuer_name != nil {
		fields = append(fields, invoice.FieldIssuerName)
	}
	if m.payer_name != nil {
		fields = append(fields, invoice.FieldPayerName)
	}
	if m.amount != nil {
		fields = append(fields, invoice.FieldAmount)
	}
	if m.tax_amount != nil {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.total_amount != nil {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	if m.currency_code != nil {
		fields = append(fields, invoice.FieldCurrencyCode)
	}
	if m.extraction != nil {
		fields = append(fields, invoice.FieldExtraction)
	}
	if m.provider_name != nil {
		fields = append(fields, invoice.FieldProviderName)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, invoice.FieldExtractionConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, invoice.FieldNeedsReview)
	}
	if m.status != nil {
		fields = append(fields, invoice.FieldStatus)
	}
	if m.reimbursement_status != nil {
		fields = append(fields, invoice.FieldReimbursementStatus)
	}
	if m.is_verified != nil {
		fields = append(fields, invoice.FieldIsVerified)
	}
	if m.verified_by != nil {
		fields = append(fields, invoice.FieldVerifiedBy)
	}
	if m.verified_at != nil {
		fields = append(fields, invoice.FieldVerifiedAt)
	}
	if m.verification_notes != nil {
		fields = append(fields, invoice.FieldVerificationNotes)
	}
	if m.deleted_at != nil {
		fields = append(fields, invoice.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldOwnerID:
		return m.OwnerID()
	case invoice.FieldContentHash:
		return m.ContentHash()
	case invoice.FieldFileSize:
		return m.FileSize()
	case invoice.FieldFilename:
		return m.Filename()
	case invoice.FieldFileExt:
		return m.FileExt()
	case invoice.FieldStorageKey:
		return m.StorageKey()
	case invoice.FieldUploadedAt:
		return m.UploadedAt()
	case invoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case invoice.FieldIssuerName:
		return m.IssuerName()
	case invoice.FieldPayerName:
		return m.PayerName()
	case invoice.FieldAmount:
		return m.Amount()
	case invoice.FieldTaxAmount:
		return m.TaxAmount()
	case invoice.FieldTotalAmount:
		return m.TotalAmount()
	case invoice.FieldCurrencyCode:
		return m.CurrencyCode()
	case invoice.FieldExtraction:
		return m.Extraction()
	case invoice.FieldProviderName:
		return m.ProviderName()
	case invoice.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case invoice.FieldNeedsReview:
		return m.NeedsReview()
	case invoice.FieldStatus:
		return m.Status()
	case invoice.FieldReimbursementStatus:
		return m.ReimbursementStatus()
	case invoice.FieldIsVerified:
		return m.IsVerified()
	case invoice.FieldVerifiedBy:
		return m.VerifiedBy()
	case invoice.FieldVerifiedAt:
		return m.VerifiedAt()
	case invoice.FieldVerificationNotes:
		return m.VerificationNotes()
	case invoice.FieldDeletedAt:
		return m.DeletedAt()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	case invoice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case invoice.FieldContentHash:
		return m.OldContentHash(ctx)
	case invoice.FieldFileSize:
		return m.OldFileSize(ctx)
	case invoice.FieldFilename:
		return m.OldFilename(ctx)
	case invoice.FieldFileExt:
		return m.OldFileExt(ctx)
	case invoice.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case invoice.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case invoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case invoice.FieldIssuerName:
		return m.OldIssuerName(ctx)
	case invoice.FieldPayerName:
		return m.OldPayerName(ctx)
	case invoice.FieldAmount:
		return m.OldAmount(ctx)
	case invoice.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case invoice.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case invoice.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case invoice.FieldExtraction:
		return m.OldExtraction(ctx)
	case invoice.FieldProviderName:
		return m.OldProviderName(ctx)
	case invoice.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case invoice.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case invoice.FieldStatus:
		return m.OldStatus(ctx)
	case invoice.FieldReimbursementStatus:
		return m.OldReimbursementStatus(ctx)
	case invoice.FieldIsVerified:
		return m.OldIsVerified(ctx)
	case invoice.FieldVerifiedBy:
		return m.OldVerifiedBy(ctx)
	case invoice.FieldVerifiedAt:
		return m.OldVerifiedAt(ctx)
	case invoice.FieldVerificationNotes:
		return m.OldVerificationNotes(ctx)
	case invoice.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case invoice.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case invoice.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case invoice.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case invoice.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case invoice.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case invoice.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case invoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case invoice.FieldIssuerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuerName(v)
		return nil
	case invoice.FieldPayerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayerName(v)
		return nil
	case invoice.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case invoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case invoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case invoice.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case invoice.FieldExtraction:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraction(v)
		return nil
	case invoice.FieldProviderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderName(v)
		return nil
	case invoice.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case invoice.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case invoice.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case invoice.FieldReimbursementStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReimbursementStatus(v)
		return nil
	case invoice.FieldIsVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerified(v)
		return nil
	case invoice.FieldVerifiedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedBy(v)
		return nil
	case invoice.FieldVerifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedAt(v)
		return nil
	case invoice.FieldVerificationNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationNotes(v)
		return nil
	case invoice.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, invoice.FieldFileSize)
	}
	if m.addamount != nil {
		fields = append(fields, invoice.FieldAmount)
	}
	if m.addtax_amount != nil {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.addtotal_amount != nil {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	if m.addextraction_confidence != nil {
		fields = append(fields, invoice.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldFileSize:
		return m.AddedFileSize()
	case invoice.FieldAmount:
		return m.AddedAmount()
	case invoice.FieldTaxAmount:
		return m.AddedTaxAmount()
	case invoice.FieldTotalAmount:
		return m.AddedTotalAmount()
	case invoice.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case invoice.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case invoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	case invoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case invoice.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldStorageKey) {
		fields = append(fields, invoice.FieldStorageKey)
	}
	if m.FieldCleared(invoice.FieldInvoiceNumber) {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.FieldCleared(invoice.FieldInvoiceDate) {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.FieldCleared(invoice.FieldIssuerName) {
		fields = append(fields, invoice.FieldIssuerName)
	}
	if m.FieldCleared(invoice.FieldPayerName) {
		fields = append(fields, invoice.FieldPayerName)
	}
	if m.FieldCleared(invoice.FieldAmount) {
		fields = append(fields, invoice.FieldAmount)
	}
	if m.FieldCleared(invoice.FieldTaxAmount) {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.FieldCleared(invoice.FieldTotalAmount) {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	if m.FieldCleared(invoice.FieldCurrencyCode) {
		fields = append(fields, invoice.FieldCurrencyCode)
	}
	if m.FieldCleared(invoice.FieldExtraction) {
		fields = append(fields, invoice.FieldExtraction)
	}
	if m.FieldCleared(invoice.FieldProviderName) {
		fields = append(fields, invoice.FieldProviderName)
	}
	if m.FieldCleared(invoice.FieldExtractionConfidence) {
		fields = append(fields, invoice.FieldExtractionConfidence)
	}
	if m.FieldCleared(invoice.FieldVerifiedBy) {
		fields = append(fields, invoice.FieldVerifiedBy)
	}
	if m.FieldCleared(invoice.FieldVerifiedAt) {
		fields = append(fields, invoice.FieldVerifiedAt)
	}
	if m.FieldCleared(invoice.FieldVerificationNotes) {
		fields = append(fields, invoice.FieldVerificationNotes)
	}
	if m.FieldCleared(invoice.FieldDeletedAt) {
		fields = append(fields, invoice.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldStorageKey:
		m.ClearStorageKey()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case invoice.FieldInvoiceDate:
		m.ClearInvoiceDate()
		return nil
	case invoice.FieldIssuerName:
		m.ClearIssuerName()
		return nil
	case invoice.FieldPayerName:
		m.ClearPayerName()
		return nil
	case invoice.FieldAmount:
		m.ClearAmount()
		return nil
	case invoice.FieldTaxAmount:
		m.ClearTaxAmount()
		return nil
	case invoice.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case invoice.FieldCurrencyCode:
		m.ClearCurrencyCode()
		return nil
	case invoice.FieldExtraction:
		m.ClearExtraction()
		return nil
	case invoice.FieldProviderName:
		m.ClearProviderName()
		return nil
	case invoice.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case invoice.FieldVerifiedBy:
		m.ClearVerifiedBy()
		return nil
	case invoice.FieldVerifiedAt:
		m.ClearVerifiedAt()
		return nil
	case invoice.FieldVerificationNotes:
		m.ClearVerificationNotes()
		return nil
	case invoice.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case invoice.FieldContentHash:
		m.ResetContentHash()
		return nil
	case invoice.FieldFileSize:
		m.ResetFileSize()
		return nil
	case invoice.FieldFilename:
		m.ResetFilename()
		return nil
	case invoice.FieldFileExt:
		m.ResetFileExt()
		return nil
	case invoice.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case invoice.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case invoice.FieldIssuerName:
		m.ResetIssuerName()
		return nil
	case invoice.FieldPayerName:
		m.ResetPayerName()
		return nil
	case invoice.FieldAmount:
		m.ResetAmount()
		return nil
	case invoice.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case invoice.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case invoice.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case invoice.FieldExtraction:
		m.ResetExtraction()
		return nil
	case invoice.FieldProviderName:
		m.ResetProviderName()
		return nil
	case invoice.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case invoice.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case invoice.FieldStatus:
		m.ResetStatus()
		return nil
	case invoice.FieldReimbursementStatus:
		m.ResetReimbursementStatus()
		return nil
	case invoice.FieldIsVerified:
		m.ResetIsVerified()
		return nil
	case invoice.FieldVerifiedBy:
		m.ResetVerifiedBy()
		return nil
	case invoice.FieldVerifiedAt:
		m.ResetVerifiedAt()
		return nil
	case invoice.FieldVerificationNotes:
		m.ResetVerificationNotes()
		return nil
	case invoice.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, invoice.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, invoice.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, invoice.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case invoice.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	switch name {
	case invoice.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Invoice edge %s", name)
}
