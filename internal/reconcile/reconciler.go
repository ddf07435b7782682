// Package reconcile merges a completed extraction result into the invoice's
// persisted fields. Merging is fill-if-present: a field the provider could
// not read never clears a value the invoice already holds.
package reconcile

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/entity"
	"github.com/luminexhq/invoicevault/internal/extraction"
)

type Reconciler struct {
	threshold float32
	schema    map[string]any
	logger    *slog.Logger
}

func New(logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		threshold: constants.ReviewThreshold,
		schema:    BuildResultJSONSchema(),
		logger:    logger,
	}
}

// WithThreshold overrides the needs-review confidence cutoff.
func (r *Reconciler) WithThreshold(t float32) *Reconciler {
	r.threshold = t
	return r
}

// Reconcile applies a COMPLETED task's result to the invoice: business fields
// via fill-if-present, the raw payload, confidence, the needs_review flag,
// and the COMPLETED status. The caller persists the mutated invoice.
func (r *Reconciler) Reconcile(inv *entity.Invoice, t *entity.ExtractionTask) error {
	if t.Status != constants.TaskStatusCompleted {
		return &common.InvalidStateError{Entity: "task", From: string(t.Status), Op: "reconcile"}
	}
	if err := ValidateJSONAgainstSchema(r.schema, t.ResultPayload); err != nil {
		r.logger.Error("extraction payload rejected", "task_id", t.ID, "err", err)
		return common.WrapError(err, "result payload")
	}
	var res extraction.Result
	if err := json.Unmarshal(t.ResultPayload, &res); err != nil {
		return common.WrapError(err, "decode result payload")
	}

	mergeFields(inv, res.Fields)

	inv.Extraction = t.ResultPayload
	inv.ProviderName = &res.Provider
	conf := res.Confidence.Overall
	inv.ExtractionConfidence = &conf
	inv.NeedsReview = conf < r.threshold
	inv.Status = constants.InvoiceStatusCompleted

	r.logger.Info("invoice reconciled",
		"invoice_id", inv.ID,
		"task_id", t.ID,
		"provider", res.Provider,
		"confidence", conf,
		"needs_review", inv.NeedsReview,
	)
	return nil
}

// MarkFailed records a terminal task failure on the invoice. Partial fields
// from earlier attempts are preserved and the row stays visible for manual
// correction or re-upload.
func (r *Reconciler) MarkFailed(inv *entity.Invoice, t *entity.ExtractionTask) error {
	if t.Status != constants.TaskStatusFailed {
		return &common.InvalidStateError{Entity: "task", From: string(t.Status), Op: "mark invoice failed"}
	}
	inv.Status = constants.InvoiceStatusFailed
	msg := ""
	if t.ErrorMessage != nil {
		msg = *t.ErrorMessage
	}
	r.logger.Warn("invoice failed", "invoice_id", inv.ID, "task_id", t.ID, "error", msg)
	return nil
}

func mergeFields(inv *entity.Invoice, f extraction.Fields) {
	setStr(&inv.InvoiceNumber, f.InvoiceNumber)
	setStr(&inv.IssuerName, f.IssuerName)
	setStr(&inv.PayerName, f.PayerName)
	setDate(&inv.InvoiceDate, f.InvoiceDate)
	setDec(&inv.Amount, f.Amount)
	setDec(&inv.TaxAmount, f.TaxAmount)
	setDec(&inv.TotalAmount, f.TotalAmount)
	if c := strings.ToUpper(strings.TrimSpace(f.CurrencyCode)); len(c) == 3 {
		inv.CurrencyCode = &c
	}
}

func setStr(dst **string, v string) {
	if s := strings.TrimSpace(v); s != "" {
		*dst = &s
	}
}

func setDate(dst **time.Time, v string) {
	if v == "" {
		return
	}
	if t, err := time.ParseInLocation("2006-01-02", v, time.UTC); err == nil {
		*dst = &t
	}
}

func setDec(dst **float64, v string) {
	if v == "" {
		return
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		*dst = &f
	}
}
