// Package queue carries extraction work to the worker over asynq.
//
// asynq only delivers; the task state machine owns the retry budget, so every
// enqueue uses MaxRetry(0) and retries are re-enqueued explicitly with the
// delay the machine computed.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TypeExtractInvoice is scheduled for every newly accepted file and for
	// every retry re-start.
	TypeExtractInvoice = "extraction:process"
)

// ExtractPayload tells the worker which task to drive and where the bytes live.
type ExtractPayload struct {
	TaskID     string `json:"task_id"`
	InvoiceID  string `json:"invoice_id"`
	OwnerID    string `json:"owner_id"`
	StorageKey string `json:"storage_key"`
	Filename   string `json:"file_name"`
	Format     string `json:"format"`
}

// Enqueuer abstracts the asynq client for the orchestrator and scheduler.
type Enqueuer interface {
	EnqueueExtract(ctx context.Context, payload ExtractPayload) error
	EnqueueRetry(ctx context.Context, payload ExtractPayload, delay time.Duration) error
}

// Client wraps an asynq.Client as an Enqueuer.
type Client struct {
	c *asynq.Client
}

func NewClient(redisAddr string) *Client {
	return &Client{c: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})}
}

func (q *Client) EnqueueExtract(ctx context.Context, payload ExtractPayload) error {
	return q.enqueue(ctx, payload)
}

// EnqueueRetry delivers the task again once the machine's next_retry_at has
// passed; asynq holds it until then.
func (q *Client) EnqueueRetry(ctx context.Context, payload ExtractPayload, delay time.Duration) error {
	return q.enqueue(ctx, payload, asynq.ProcessIn(delay))
}

func (q *Client) enqueue(ctx context.Context, payload ExtractPayload, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	t := asynq.NewTask(TypeExtractInvoice, data)
	opts = append(opts, asynq.MaxRetry(0))
	if _, err := q.c.EnqueueContext(ctx, t, opts...); err != nil {
		return fmt.Errorf("enqueue extract task: %w", err)
	}
	return nil
}

func (q *Client) Close() error { return q.c.Close() }
