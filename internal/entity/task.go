package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
)

// ExtractionTask represents one asynchronous extraction attempt for data
// transfer between layers.
type ExtractionTask struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	InvoiceID *uuid.UUID `json:"invoice_id,omitempty"`

	Format string               `json:"format"`
	Status constants.TaskStatus `json:"status"`

	RetryCount  int        `json:"retry_count"`
	MaxRetries  int        `json:"max_retries"`
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`

	StartedAt     *time.Time      `json:"started_at,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	ResultPayload json.RawMessage `json:"result_payload,omitempty"`
	ProviderName  *string         `json:"provider_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
