package common

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// ValidationError rejects a single file before it reaches the backend
// (oversized, disallowed type, batch overflow). It never aborts a batch.
type ValidationError struct {
	Filename string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("file %q rejected: %s", e.Filename, e.Reason)
}

// DuplicateConflictError reports a live duplicate for (owner, content hash),
// or a restore attempted while a live duplicate exists.
type DuplicateConflictError struct {
	OwnerID   uuid.UUID
	InvoiceID uuid.UUID
}

func (e *DuplicateConflictError) Error() string {
	return fmt.Sprintf("live invoice %s already holds this content for owner %s", e.InvoiceID, e.OwnerID)
}

// InvalidStateError is a caller error: an operation applied to an entity in a
// state that does not permit it. Always surfaced, never swallowed.
type InvalidStateError struct {
	Entity string
	From   string
	Op     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s from state %s", e.Entity, e.Op, e.From)
}

// RetryExhaustedError marks a task whose retry budget is spent.
type RetryExhaustedError struct {
	TaskID     uuid.UUID
	RetryCount int
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("task %s: retries exhausted after %d attempts", e.TaskID, e.RetryCount)
}

// TransientExtractionError wraps a provider failure worth retrying
// (timeouts, network faults). PermanentExtractionError marks documents the
// provider will never read; it consumes no retry budget.
type TransientExtractionError struct{ Err error }

func (e *TransientExtractionError) Error() string { return fmt.Sprintf("transient: %v", e.Err) }
func (e *TransientExtractionError) Unwrap() error { return e.Err }

type PermanentExtractionError struct{ Err error }

func (e *PermanentExtractionError) Error() string { return fmt.Sprintf("permanent: %v", e.Err) }
func (e *PermanentExtractionError) Unwrap() error { return e.Err }

// IsTransient reports whether err should be retried under the task policy.
// Unclassified errors default to transient so a flaky provider integration
// does not burn documents.
func IsTransient(err error) bool {
	var perm *PermanentExtractionError
	return !errors.As(err, &perm)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// ToStatus maps domain errors onto gRPC status codes at the API boundary.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	var (
		ve *ValidationError
		de *DuplicateConflictError
		se *InvalidStateError
		re *RetryExhaustedError
	)
	switch {
	case errors.As(err, &ve):
		return InvalidArgumentError(ve.Error())
	case errors.As(err, &de):
		return status.Error(codes.AlreadyExists, de.Error())
	case errors.As(err, &se):
		return FailedPreconditionError(se.Error())
	case errors.As(err, &re):
		return FailedPreconditionError(re.Error())
	case errors.Is(err, ErrNotFound):
		return NotFoundError(err.Error())
	default:
		return InternalError(err.Error())
	}
}
