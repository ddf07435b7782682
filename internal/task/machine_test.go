package task

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/entity"
)

func newTask() *entity.ExtractionTask {
	return &entity.ExtractionTask{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Format:     "PDF",
		Status:     constants.TaskStatusPending,
		MaxRetries: 3,
	}
}

func TestStartFromPending(t *testing.T) {
	tk := newTask()
	now := time.Now()
	if err := Start(tk, now); err != nil {
		t.Fatalf("start: %v", err)
	}
	if tk.Status != constants.TaskStatusProcessing {
		t.Fatalf("status = %s, want PROCESSING", tk.Status)
	}
	if tk.StartedAt == nil || !tk.StartedAt.Equal(now) {
		t.Fatalf("started_at not recorded")
	}
}

func TestStartRejectsWrongStates(t *testing.T) {
	for _, s := range []constants.TaskStatus{
		constants.TaskStatusProcessing,
		constants.TaskStatusCompleted,
		constants.TaskStatusFailed,
		constants.TaskStatusCancelled,
	} {
		tk := newTask()
		tk.Status = s
		err := Start(tk, time.Now())
		var ise *common.InvalidStateError
		if !errors.As(err, &ise) {
			t.Fatalf("start from %s: got %v, want InvalidStateError", s, err)
		}
	}
}

func TestCompleteOnlyFromProcessing(t *testing.T) {
	tk := newTask()
	if err := Complete(tk, json.RawMessage(`{}`), time.Now()); err == nil {
		t.Fatalf("complete from PENDING should fail")
	}

	now := time.Now()
	_ = Start(tk, now)
	payload := json.RawMessage(`{"total_amount":"12.50"}`)
	if err := Complete(tk, payload, now); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if tk.Status != constants.TaskStatusCompleted || tk.CompletedAt == nil {
		t.Fatalf("completion not recorded: %+v", tk)
	}
	if string(tk.ResultPayload) != string(payload) {
		t.Fatalf("result payload not stored")
	}
}

func TestFailThenRetryBound(t *testing.T) {
	tk := newTask()
	now := time.Now()

	// the task always fails; it must stop after max_retries
	for attempt := 0; ; attempt++ {
		if err := Start(tk, now); err != nil {
			t.Fatalf("attempt %d start: %v", attempt, err)
		}
		if err := Fail(tk, "provider timeout", now); err != nil {
			t.Fatalf("attempt %d fail: %v", attempt, err)
		}
		err := ScheduleRetry(tk, time.Second, now)
		if err != nil {
			var ree *common.RetryExhaustedError
			if !errors.As(err, &ree) {
				t.Fatalf("attempt %d: got %v, want RetryExhaustedError", attempt, err)
			}
			break
		}
		now = tk.NextRetryAt.Add(time.Millisecond)
	}

	if tk.RetryCount != tk.MaxRetries {
		t.Fatalf("retry_count = %d, want %d", tk.RetryCount, tk.MaxRetries)
	}
	if !TerminalFailure(tk) {
		t.Fatalf("task should be a terminal failure")
	}
	// nothing moves a terminally failed task except cancel, which is a no-op here
	if err := Start(tk, now); err == nil {
		t.Fatalf("start after terminal failure should fail")
	}
	if err := Cancel(tk, now); err != nil {
		t.Fatalf("cancel of terminal failure: %v", err)
	}
	if tk.Status != constants.TaskStatusFailed {
		t.Fatalf("cancel must not rewrite a terminal failure, got %s", tk.Status)
	}
}

func TestScheduleRetrySetsFutureDeadline(t *testing.T) {
	tk := newTask()
	now := time.Now()
	_ = Start(tk, now)
	_ = Fail(tk, "transient", now)

	if err := ScheduleRetry(tk, 30*time.Second, now); err != nil {
		t.Fatalf("schedule_retry: %v", err)
	}
	if tk.Status != constants.TaskStatusRetrying || tk.NextRetryAt == nil {
		t.Fatalf("retry not recorded: %+v", tk)
	}
	if !tk.NextRetryAt.After(now) {
		t.Fatalf("next_retry_at must be in the future")
	}
	if RetryEligible(tk, now) {
		t.Fatalf("task eligible before next_retry_at")
	}
	if !RetryEligible(tk, tk.NextRetryAt.Add(time.Millisecond)) {
		t.Fatalf("task not eligible after next_retry_at")
	}
}

func TestStartFromRetryingHonorsDeadline(t *testing.T) {
	tk := newTask()
	now := time.Now()
	_ = Start(tk, now)
	_ = Fail(tk, "transient", now)
	_ = ScheduleRetry(tk, time.Minute, now)

	if err := Start(tk, now); err == nil {
		t.Fatalf("start before next_retry_at should fail")
	}
	later := tk.NextRetryAt.Add(time.Second)
	if err := Start(tk, later); err != nil {
		t.Fatalf("start after next_retry_at: %v", err)
	}
	if tk.NextRetryAt != nil {
		t.Fatalf("next_retry_at must be cleared on re-start")
	}
}

func TestCancelWinsAndIsIdempotent(t *testing.T) {
	tk := newTask()
	now := time.Now()
	_ = Start(tk, now)

	if err := Cancel(tk, now); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if tk.Status != constants.TaskStatusCancelled {
		t.Fatalf("status = %s, want CANCELLED", tk.Status)
	}
	// the worker reports back after cancellation; its completion must lose
	if err := Complete(tk, json.RawMessage(`{}`), now); err == nil {
		t.Fatalf("complete after cancel should fail")
	}
	if err := Cancel(tk, now); err != nil {
		t.Fatalf("second cancel must be a no-op, got %v", err)
	}
}

func TestBackoffMonotonic(t *testing.T) {
	base := 30 * time.Second
	prev := time.Duration(0)
	for attempt := 1; attempt <= 8; attempt++ {
		d := Backoff(base, attempt)
		if d < prev {
			t.Fatalf("backoff decreased at attempt %d: %v < %v", attempt, d, prev)
		}
		if d > 10*time.Minute {
			t.Fatalf("backoff exceeds cap: %v", d)
		}
		prev = d
	}
	if Backoff(base, 1) != base {
		t.Fatalf("first attempt should wait the base delay")
	}
	if Backoff(base, 2) != 2*base {
		t.Fatalf("second attempt should double")
	}
}
