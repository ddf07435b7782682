package server

import (
	"context"
	"fmt"
	"time"

	v1 "github.com/luminexhq/invoicevault/gen/proto/invoices/v1"
	"github.com/luminexhq/invoicevault/internal/common"
)

// ExportInvoices returns an XLSX workbook over the owner's live invoices,
// optionally windowed by invoice date.
func (s *InvoiceService) ExportInvoices(ctx context.Context, req *v1.ExportInvoicesRequest) (*v1.ExportInvoicesResponse, error) {
	ownerID, err := parseUUID("owner_id", req.GetOwnerId())
	if err != nil {
		return nil, err
	}
	from, err := parseDate("from_date", req.GetFromDate())
	if err != nil {
		return nil, err
	}
	to, err := parseDate("to_date", req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportInvoicesXLSX(ctx, ownerID, from, to)
	if err != nil {
		s.logger.Error("export failed", "owner_id", ownerID, "err", err)
		return nil, common.ToStatus(err)
	}
	return &v1.ExportInvoicesResponse{
		Xlsx:     xlsx,
		FileName: fmt.Sprintf("invoices-%s.xlsx", time.Now().UTC().Format("20060102")),
	}, nil
}
