// Package extraction defines the contract with the out-of-process document
// extraction provider and the payload it reports back.
package extraction

import (
	"context"
	"encoding/json"
)

// Request identifies one document handed to the provider.
type Request struct {
	Filename string
	Format   string // "PDF" | "IMAGE"
	Data     []byte
}

// Fields is the structured section of a provider result. Every field is
// optional: an empty string means the provider could not read it, and
// reconciliation must leave the invoice's existing value untouched.
type Fields struct {
	InvoiceNumber string `json:"invoice_number,omitempty"`
	InvoiceDate   string `json:"invoice_date,omitempty"` // YYYY-MM-DD
	IssuerName    string `json:"issuer_name,omitempty"`
	PayerName     string `json:"payer_name,omitempty"`
	Amount        string `json:"amount,omitempty"`
	TaxAmount     string `json:"tax_amount,omitempty"`
	TotalAmount   string `json:"total_amount,omitempty"`
	CurrencyCode  string `json:"currency_code,omitempty"`
}

// Confidence carries the provider's self-assessment.
type Confidence struct {
	Overall  float32            `json:"overall"`
	PerField map[string]float32 `json:"per_field,omitempty"`
}

// Result is the completion payload stored on the task and later reconciled
// into the invoice.
type Result struct {
	Provider   string     `json:"provider"`
	Fields     Fields     `json:"fields"`
	Confidence Confidence `json:"confidence"`
	RawText    string     `json:"raw_text,omitempty"`
	Pages      int        `json:"pages,omitempty"`
}

// Marshal serializes the result for storage in the task row.
func (r *Result) Marshal() (json.RawMessage, error) {
	return json.Marshal(r)
}

// Provider turns a raw document into a Result. Implementations classify
// their failures: errors wrapped in common.PermanentExtractionError are never
// retried, anything else is treated as transient.
type Provider interface {
	Name() string
	Extract(ctx context.Context, req Request) (*Result, error)
}
