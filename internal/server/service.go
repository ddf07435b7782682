// Package server exposes the pipeline over gRPC. Handlers validate inputs,
// delegate to the domain packages, and map domain errors onto status codes.
package server

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1 "github.com/luminexhq/invoicevault/gen/proto/invoices/v1"
	"github.com/luminexhq/invoicevault/internal/entity"
	"github.com/luminexhq/invoicevault/internal/export"
	"github.com/luminexhq/invoicevault/internal/fingerprint"
	"github.com/luminexhq/invoicevault/internal/ingest"
	"github.com/luminexhq/invoicevault/internal/lifecycle"
	"github.com/luminexhq/invoicevault/internal/queue"
	"github.com/luminexhq/invoicevault/internal/repository"
)

type InvoiceService struct {
	v1.UnimplementedInvoiceServiceServer
	orch     *ingest.Orchestrator
	invoices repository.InvoiceRepository
	tasks    repository.TaskRepository
	life     *lifecycle.Manager
	enq      queue.Enqueuer
	exporter *export.Service
	logger   *slog.Logger
}

func NewInvoiceService(
	orch *ingest.Orchestrator,
	invoices repository.InvoiceRepository,
	tasks repository.TaskRepository,
	life *lifecycle.Manager,
	enq queue.Enqueuer,
	exporter *export.Service,
	logger *slog.Logger,
) *InvoiceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceService{
		orch:     orch,
		invoices: invoices,
		tasks:    tasks,
		life:     life,
		enq:      enq,
		exporter: exporter,
		logger:   logger,
	}
}

// parseUUID validates a required UUID field.
func parseUUID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func parseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be YYYY-MM-DD", field)
	}
	return &t, nil
}

func toProtoInvoice(inv *entity.Invoice) *v1.Invoice {
	out := &v1.Invoice{
		Id:                  inv.ID.String(),
		OwnerId:             inv.OwnerID.String(),
		ContentHash:         fingerprint.Hex(inv.ContentHash),
		FileSize:            inv.FileSize,
		FileName:            inv.Filename,
		FileExt:             inv.FileExt,
		UploadedAt:          timestamppb.New(inv.UploadedAt),
		Status:              string(inv.Status),
		ReimbursementStatus: string(inv.ReimbursementStatus),
		NeedsReview:         inv.NeedsReview,
		Verified:            inv.IsVerified,
	}
	if inv.InvoiceNumber != nil {
		out.InvoiceNumber = *inv.InvoiceNumber
	}
	if inv.InvoiceDate != nil {
		out.InvoiceDate = inv.InvoiceDate.Format("2006-01-02")
	}
	if inv.IssuerName != nil {
		out.IssuerName = *inv.IssuerName
	}
	if inv.PayerName != nil {
		out.PayerName = *inv.PayerName
	}
	if inv.Amount != nil {
		out.Amount = *inv.Amount
	}
	if inv.TaxAmount != nil {
		out.TaxAmount = *inv.TaxAmount
	}
	if inv.TotalAmount != nil {
		out.TotalAmount = *inv.TotalAmount
	}
	if inv.CurrencyCode != nil {
		out.CurrencyCode = *inv.CurrencyCode
	}
	if inv.ProviderName != nil {
		out.ProviderName = *inv.ProviderName
	}
	if inv.ExtractionConfidence != nil {
		out.ExtractionConfidence = *inv.ExtractionConfidence
	}
	if inv.VerificationNotes != nil {
		out.VerificationNotes = *inv.VerificationNotes
	}
	if inv.DeletedAt != nil {
		out.DeletedAt = timestamppb.New(*inv.DeletedAt)
	}
	return out
}

func toProtoTask(t *entity.ExtractionTask) *v1.ExtractionTask {
	out := &v1.ExtractionTask{
		Id:         t.ID.String(),
		OwnerId:    t.OwnerID.String(),
		Format:     t.Format,
		Status:     string(t.Status),
		RetryCount: int32(t.RetryCount),
		MaxRetries: int32(t.MaxRetries),
	}
	if t.InvoiceID != nil {
		out.InvoiceId = t.InvoiceID.String()
	}
	if t.NextRetryAt != nil {
		out.NextRetryAt = timestamppb.New(*t.NextRetryAt)
	}
	if t.StartedAt != nil {
		out.StartedAt = timestamppb.New(*t.StartedAt)
	}
	if t.CompletedAt != nil {
		out.CompletedAt = timestamppb.New(*t.CompletedAt)
	}
	if t.ErrorMessage != nil {
		out.ErrorMessage = *t.ErrorMessage
	}
	if t.ProviderName != nil {
		out.ProviderName = *t.ProviderName
	}
	return out
}
