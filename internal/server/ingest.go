package server

import (
	"context"

	v1 "github.com/luminexhq/invoicevault/gen/proto/invoices/v1"
	"github.com/luminexhq/invoicevault/internal/common"
	"github.com/luminexhq/invoicevault/internal/ingest"
)

// IngestBatch implements v1.InvoiceServiceServer. One rejected file never
// aborts the batch; the response carries a per-file outcome line.
func (s *InvoiceService) IngestBatch(ctx context.Context, req *v1.IngestBatchRequest) (*v1.IngestBatchResponse, error) {
	ownerID, err := parseUUID("owner_id", req.GetOwnerId())
	if err != nil {
		return nil, err
	}
	if len(req.GetFiles()) == 0 {
		return nil, common.InvalidArgumentError("at least one file is required")
	}

	files := make([]ingest.File, 0, len(req.GetFiles()))
	for _, f := range req.GetFiles() {
		files = append(files, ingest.File{Name: f.GetFileName(), Data: f.GetContent()})
	}

	res, err := s.orch.Ingest(ctx, ingest.BatchRequest{OwnerID: ownerID, Files: files})
	if err != nil {
		s.logger.Error("batch ingest failed", "owner_id", ownerID, "error", err)
		return nil, common.ToStatus(err)
	}

	out := &v1.IngestBatchResponse{
		Accepted:    int32(res.Accepted),
		Duplicates:  int32(res.Duplicates),
		Oversized:   int32(res.Oversized),
		InvalidType: int32(res.InvalidType),
		Failed:      int32(res.Failed),
		Truncated:   int32(res.Truncated),
	}
	for _, oc := range res.Outcomes {
		line := &v1.FileOutcome{
			FileName:    oc.Filename,
			Outcome:     string(oc.Outcome),
			ContentHash: oc.HashHex,
			CanRestore:  oc.CanRestore,
			Error:       oc.Err,
		}
		if oc.InvoiceID != nil {
			line.InvoiceId = oc.InvoiceID.String()
		}
		if oc.TaskID != nil {
			line.TaskId = oc.TaskID.String()
		}
		if oc.CrossOwner != nil {
			for _, id := range oc.CrossOwner.OwnerIDs {
				line.CrossOwnerIds = append(line.CrossOwnerIds, id.String())
			}
		}
		out.Outcomes = append(out.Outcomes, line)
	}
	return out, nil
}
