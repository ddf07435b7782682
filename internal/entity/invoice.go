package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/luminexhq/invoicevault/constants"
)

// Invoice represents an invoice record for data transfer between layers.
type Invoice struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`

	ContentHash []byte    `json:"content_hash"`
	FileSize    int64     `json:"file_size"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	StorageKey  *string   `json:"storage_key,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`

	InvoiceNumber *string    `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time `json:"invoice_date,omitempty"`
	IssuerName    *string    `json:"issuer_name,omitempty"`
	PayerName     *string    `json:"payer_name,omitempty"`
	Amount        *float64   `json:"amount,omitempty"`
	TaxAmount     *float64   `json:"tax_amount,omitempty"`
	TotalAmount   *float64   `json:"total_amount,omitempty"`
	CurrencyCode  *string    `json:"currency_code,omitempty"`

	Extraction           json.RawMessage `json:"extraction,omitempty"`
	ProviderName         *string         `json:"provider_name,omitempty"`
	ExtractionConfidence *float32        `json:"extraction_confidence,omitempty"`
	NeedsReview          bool            `json:"needs_review"`

	Status              constants.InvoiceStatus       `json:"status"`
	ReimbursementStatus constants.ReimbursementStatus `json:"reimbursement_status"`

	IsVerified        bool       `json:"is_verified"`
	VerifiedBy        *uuid.UUID `json:"verified_by,omitempty"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
	VerificationNotes *string    `json:"verification_notes,omitempty"`

	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Live reports whether the invoice is dedup-blocking for new uploads.
func (i *Invoice) Live() bool { return i.DeletedAt == nil }

// HasExtraction reports whether a prior extraction payload is retained,
// which lets a restore skip re-running extraction entirely.
func (i *Invoice) HasExtraction() bool { return len(i.Extraction) > 0 }
