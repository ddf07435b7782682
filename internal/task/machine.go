// Package task owns the extraction task state machine.
//
// The machine only records transitions; extraction itself runs
// out-of-process and reports back through Complete or Fail. Persistence is
// the repository's job: callers apply a transition here, then store the
// mutated row with a conditional update on the previous status.
package task

import (
	"encoding/json"
	"time"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/entity"
)

// Start moves a task into PROCESSING and records started_at.
// Legal from PENDING, or from RETRYING once the retry wait has elapsed.
func Start(t *entity.ExtractionTask, now time.Time) error {
	switch t.Status {
	case constants.TaskStatusPending:
	case constants.TaskStatusRetrying:
		if !RetryEligible(t, now) {
			return &common.InvalidStateError{Entity: "task", From: string(t.Status), Op: "start before next_retry_at"}
		}
	default:
		return &common.InvalidStateError{Entity: "task", From: string(t.Status), Op: "start"}
	}
	t.Status = constants.TaskStatusProcessing
	t.StartedAt = &now
	t.NextRetryAt = nil
	return nil
}

// Complete records a successful extraction result. Legal only from PROCESSING.
func Complete(t *entity.ExtractionTask, payload json.RawMessage, now time.Time) error {
	if t.Status != constants.TaskStatusProcessing {
		return &common.InvalidStateError{Entity: "task", From: string(t.Status), Op: "complete"}
	}
	t.Status = constants.TaskStatusCompleted
	t.ResultPayload = payload
	t.CompletedAt = &now
	t.ErrorMessage = nil
	return nil
}

// Fail records an extraction failure. Legal only from PROCESSING. Whether the
// failure is terminal depends on the remaining retry budget; callers decide
// between ScheduleRetry and leaving the task FAILED.
func Fail(t *entity.ExtractionTask, message string, now time.Time) error {
	if t.Status != constants.TaskStatusProcessing {
		return &common.InvalidStateError{Entity: "task", From: string(t.Status), Op: "fail"}
	}
	t.Status = constants.TaskStatusFailed
	t.ErrorMessage = &message
	t.CompletedAt = &now
	return nil
}

// ScheduleRetry moves a FAILED task into RETRYING, charging one unit of the
// retry budget. delay must be positive; next_retry_at is always in the future
// relative to the transition.
func ScheduleRetry(t *entity.ExtractionTask, delay time.Duration, now time.Time) error {
	if t.Status != constants.TaskStatusFailed {
		return &common.InvalidStateError{Entity: "task", From: string(t.Status), Op: "schedule_retry"}
	}
	if t.RetryCount >= t.MaxRetries {
		return &common.RetryExhaustedError{TaskID: t.ID, RetryCount: t.RetryCount}
	}
	if delay <= 0 {
		delay = time.Second
	}
	next := now.Add(delay)
	t.RetryCount++
	t.Status = constants.TaskStatusRetrying
	t.NextRetryAt = &next
	t.CompletedAt = nil
	return nil
}

// Cancel moves any non-terminal task to CANCELLED. Cancelling an
// already-terminal task is a no-op, not an error; cancellation of a task the
// worker is still holding wins once recorded, because the worker re-reads
// status before completing.
func Cancel(t *entity.ExtractionTask, now time.Time) error {
	if t.Status.Terminal() {
		return nil
	}
	if t.Status == constants.TaskStatusFailed && t.RetryCount >= t.MaxRetries {
		return nil // terminal failure, nothing left to cancel
	}
	t.Status = constants.TaskStatusCancelled
	t.CompletedAt = &now
	t.NextRetryAt = nil
	return nil
}

// RetryEligible reports whether a RETRYING task may be re-started.
func RetryEligible(t *entity.ExtractionTask, now time.Time) bool {
	return t.Status == constants.TaskStatusRetrying &&
		(t.NextRetryAt == nil || !now.Before(*t.NextRetryAt))
}

// TerminalFailure reports whether a task has failed for good.
func TerminalFailure(t *entity.ExtractionTask) bool {
	return t.Status == constants.TaskStatusFailed && t.RetryCount >= t.MaxRetries
}

// Backoff returns the wait before retry attempt n (1-based): base doubled per
// attempt, monotonically non-decreasing, capped at 10 minutes.
func Backoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		base = 30 * time.Second
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= 10*time.Minute {
			return 10 * time.Minute
		}
	}
	return d
}
