package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/luminexhq/invoicevault/internal/entity"
	"github.com/luminexhq/invoicevault/internal/repository"
)

// Service is a tiny façade over the invoice repository that produces XLSX
// bytes for exports.
type Service struct {
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the given owner
// and date window over invoice_date.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all live invoices for the owner.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	invs, err := s.invoices.ListByOwner(ctx, ownerID, false)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	invs = filterByDate(invs, fromDate, toDate)

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Invoice Date",
		"Invoice Number",
		"Issuer",
		"Payer",
		"Amount",
		"Tax",
		"Total",
		"Currency",
		"Status",
		"Reimbursement",
		"Needs Review",
		"File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if inv.InvoiceDate != nil {
			write(1, inv.InvoiceDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, strOrEmpty(inv.InvoiceNumber))
		write(3, strOrEmpty(inv.IssuerName))
		write(4, strOrEmpty(inv.PayerName))
		write(5, decOrEmpty(inv.Amount))
		write(6, decOrEmpty(inv.TaxAmount))
		write(7, decOrEmpty(inv.TotalAmount))
		write(8, strOrEmpty(inv.CurrencyCode))
		write(9, string(inv.Status))
		write(10, string(inv.ReimbursementStatus))
		write(11, inv.NeedsReview)
		write(12, inv.Filename)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 20) // number
	_ = f.SetColWidth(sheet, "C", "D", 28) // parties
	_ = f.SetColWidth(sheet, "E", "G", 14) // amounts
	_ = f.SetColWidth(sheet, "I", "J", 16) // statuses
	_ = f.SetColWidth(sheet, "L", "L", 48) // file name

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export generated",
		"owner_id", ownerID,
		"rows", row-2,
		"bytes", buf.Len(),
		"elapsed", time.Since(start),
	)
	return buf.Bytes(), nil
}

func filterByDate(invs []*entity.Invoice, from, to *time.Time) []*entity.Invoice {
	if from == nil && to == nil {
		return invs
	}
	out := invs[:0]
	for _, inv := range invs {
		if inv.InvoiceDate == nil {
			continue
		}
		d := *inv.InvoiceDate
		if from != nil && d.Before(*from) {
			continue
		}
		if to != nil && d.After(to.Add(24*time.Hour-time.Nanosecond)) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func decOrEmpty(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
