package repository

import (
	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/gen/ent"
	"github.com/luminexhq/invoicevault/internal/entity"
)

func toInvoice(e *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:                   e.ID,
		OwnerID:              e.OwnerID,
		ContentHash:          e.ContentHash,
		FileSize:             e.FileSize,
		Filename:             e.Filename,
		FileExt:              e.FileExt,
		StorageKey:           e.StorageKey,
		UploadedAt:           e.UploadedAt,
		InvoiceNumber:        e.InvoiceNumber,
		InvoiceDate:          e.InvoiceDate,
		IssuerName:           e.IssuerName,
		PayerName:            e.PayerName,
		Amount:               e.Amount,
		TaxAmount:            e.TaxAmount,
		TotalAmount:          e.TotalAmount,
		CurrencyCode:         e.CurrencyCode,
		Extraction:           e.Extraction,
		ProviderName:         e.ProviderName,
		ExtractionConfidence: e.ExtractionConfidence,
		NeedsReview:          e.NeedsReview,
		Status:               constants.InvoiceStatus(e.Status),
		ReimbursementStatus:  constants.ReimbursementStatus(e.ReimbursementStatus),
		IsVerified:           e.IsVerified,
		VerifiedBy:           e.VerifiedBy,
		VerifiedAt:           e.VerifiedAt,
		VerificationNotes:    e.VerificationNotes,
		DeletedAt:            e.DeletedAt,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func toTask(e *ent.ExtractionTask) *entity.ExtractionTask {
	return &entity.ExtractionTask{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		InvoiceID:     e.InvoiceID,
		Format:        e.Format,
		Status:        constants.TaskStatus(e.Status),
		RetryCount:    e.RetryCount,
		MaxRetries:    e.MaxRetries,
		NextRetryAt:   e.NextRetryAt,
		StartedAt:     e.StartedAt,
		CompletedAt:   e.CompletedAt,
		ErrorMessage:  e.ErrorMessage,
		ResultPayload: e.ResultPayload,
		ProviderName:  e.ProviderName,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
