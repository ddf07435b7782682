// invoicevault is a thin gRPC client for day-to-day operations against a
// running invoiced server: uploading batches, inspecting invoices, driving
// retries and exports.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "github.com/luminexhq/invoicevault/gen/proto/invoices/v1"
)

var serverAddr string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "invoicevault: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "invoicevault",
		Short:        "Invoice ingestion client",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&serverAddr, "server", "s", "localhost:8080", "invoiced gRPC address")
	cmd.AddCommand(
		newIngestCmd(),
		newListCmd(),
		newGetCmd(),
		newDeleteCmd(),
		newRestoreCmd(),
		newArchiveCmd(),
		newRetryCmd(),
		newCancelCmd(),
		newVerifyCmd(),
		newReimburseCmd(),
		newExportCmd(),
	)
	return cmd
}

func dial() (v1.InvoiceServiceClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("connect %s: %w", serverAddr, err)
	}
	return v1.NewInvoiceServiceClient(conn), conn, nil
}

func newIngestCmd() *cobra.Command {
	var ownerID string
	cmd := &cobra.Command{
		Use:   "ingest [files...]",
		Short: "Upload a batch of invoice files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			req := &v1.IngestBatchRequest{OwnerId: ownerID}
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				req.Files = append(req.Files, &v1.FileUpload{
					FileName: filepath.Base(path),
					Content:  data,
				})
			}

			res, err := client.IngestBatch(ctx, req)
			if err != nil {
				return err
			}
			fmt.Printf("accepted=%d duplicates=%d oversized=%d invalid_type=%d failed=%d truncated=%d\n",
				res.GetAccepted(), res.GetDuplicates(), res.GetOversized(),
				res.GetInvalidType(), res.GetFailed(), res.GetTruncated())
			for _, oc := range res.GetOutcomes() {
				line := fmt.Sprintf("  %-28s %-13s", oc.GetFileName(), oc.GetOutcome())
				if oc.GetInvoiceId() != "" {
					line += " invoice=" + oc.GetInvoiceId()
				}
				if oc.GetCanRestore() {
					line += " (restorable)"
				}
				if oc.GetError() != "" {
					line += " error=" + oc.GetError()
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&ownerID, "owner", "o", "", "owner UUID")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func newListCmd() *cobra.Command {
	var ownerID string
	var includeDeleted bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an owner's invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			res, err := client.ListInvoices(ctx, &v1.ListInvoicesRequest{
				OwnerId:        ownerID,
				IncludeDeleted: includeDeleted,
			})
			if err != nil {
				return err
			}
			for _, inv := range res.GetInvoices() {
				deleted := ""
				if inv.GetDeletedAt() != nil {
					deleted = " [deleted]"
				}
				fmt.Printf("%s  %-10s %-12s %s%s\n",
					inv.GetId(), inv.GetStatus(), inv.GetReimbursementStatus(), inv.GetFileName(), deleted)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&ownerID, "owner", "o", "", "owner UUID")
	cmd.Flags().BoolVar(&includeDeleted, "deleted", false, "include soft-deleted invoices")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <invoice-id>",
		Short: "Show one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			inv, err := client.GetInvoice(ctx, &v1.GetInvoiceRequest{InvoiceId: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("id:            %s\n", inv.GetId())
			fmt.Printf("file:          %s (%d bytes)\n", inv.GetFileName(), inv.GetFileSize())
			fmt.Printf("status:        %s\n", inv.GetStatus())
			fmt.Printf("reimbursement: %s\n", inv.GetReimbursementStatus())
			fmt.Printf("number:        %s\n", inv.GetInvoiceNumber())
			fmt.Printf("date:          %s\n", inv.GetInvoiceDate())
			fmt.Printf("issuer:        %s\n", inv.GetIssuerName())
			fmt.Printf("total:         %v %s\n", inv.GetTotalAmount(), inv.GetCurrencyCode())
			fmt.Printf("needs review:  %v\n", inv.GetNeedsReview())
			fmt.Printf("verified:      %v\n", inv.GetVerified())
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <invoice-id>",
		Short: "Soft-delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			inv, err := client.DeleteInvoice(ctx, &v1.DeleteInvoiceRequest{InvoiceId: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("deleted %s (restorable)\n", inv.GetId())
			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <invoice-id>",
		Short: "Restore a soft-deleted invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			inv, err := client.RestoreInvoice(ctx, &v1.RestoreInvoiceRequest{InvoiceId: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("restored %s status=%s\n", inv.GetId(), inv.GetStatus())
			return nil
		},
	}
}

func newArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <invoice-id>",
		Short: "Archive an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			inv, err := client.ArchiveInvoice(ctx, &v1.ArchiveInvoiceRequest{InvoiceId: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("archived %s\n", inv.GetId())
			return nil
		},
	}
}

func newRetryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retry <invoice-id>",
		Short: "Retry a failed extraction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			res, err := client.RetryExtraction(ctx, &v1.RetryExtractionRequest{InvoiceId: args[0]})
			if err != nil {
				return err
			}
			tk := res.GetTask()
			fmt.Printf("retry scheduled: task=%s attempt=%d/%d\n",
				tk.GetId(), tk.GetRetryCount(), tk.GetMaxRetries())
			return nil
		},
	}
}

func newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <task-id>",
		Short: "Cancel an in-flight extraction task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			tk, err := client.CancelExtraction(ctx, &v1.CancelExtractionRequest{TaskId: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("task %s status=%s\n", tk.GetId(), tk.GetStatus())
			return nil
		},
	}
}

func newVerifyCmd() *cobra.Command {
	var verifierID, notes string
	cmd := &cobra.Command{
		Use:   "verify <invoice-id>",
		Short: "Mark an invoice as human-verified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			inv, err := client.VerifyInvoice(ctx, &v1.VerifyInvoiceRequest{
				InvoiceId:  args[0],
				VerifierId: verifierID,
				Notes:      notes,
			})
			if err != nil {
				return err
			}
			fmt.Printf("verified %s\n", inv.GetId())
			return nil
		},
	}
	cmd.Flags().StringVar(&verifierID, "verifier", "", "verifier UUID")
	cmd.Flags().StringVar(&notes, "notes", "", "verification notes")
	_ = cmd.MarkFlagRequired("verifier")
	return cmd
}

func newReimburseCmd() *cobra.Command {
	var reopen bool
	var actorID, reason string
	cmd := &cobra.Command{
		Use:   "reimburse <invoice-id> <status>",
		Short: "Advance the reimbursement status (or reopen with --reopen)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			if reopen {
				inv, err := client.ReopenReimbursement(ctx, &v1.ReopenReimbursementRequest{
					InvoiceId: args[0],
					ActorId:   actorID,
					Reason:    reason,
				})
				if err != nil {
					return err
				}
				fmt.Printf("reopened %s reimbursement=%s\n", inv.GetId(), inv.GetReimbursementStatus())
				return nil
			}
			if len(args) < 2 {
				return fmt.Errorf("status argument is required")
			}
			inv, err := client.SetReimbursementStatus(ctx, &v1.SetReimbursementStatusRequest{
				InvoiceId:           args[0],
				ReimbursementStatus: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Printf("invoice %s reimbursement=%s\n", inv.GetId(), inv.GetReimbursementStatus())
			return nil
		},
	}
	cmd.Flags().BoolVar(&reopen, "reopen", false, "reopen to UNSUBMITTED (audited)")
	cmd.Flags().StringVar(&actorID, "actor", "", "actor UUID for reopen")
	cmd.Flags().StringVar(&reason, "reason", "", "reason for reopen")
	return cmd
}

func newExportCmd() *cobra.Command {
	var ownerID, fromDate, toDate, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export invoices to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			res, err := client.ExportInvoices(ctx, &v1.ExportInvoicesRequest{
				OwnerId:  ownerID,
				FromDate: fromDate,
				ToDate:   toDate,
			})
			if err != nil {
				return err
			}
			path := outPath
			if path == "" {
				path = res.GetFileName()
			}
			if err := os.WriteFile(path, res.GetXlsx(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Printf("wrote %s (%d bytes)\n", path, len(res.GetXlsx()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&ownerID, "owner", "o", "", "owner UUID")
	cmd.Flags().StringVar(&fromDate, "from", "", "from date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "to date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&outPath, "out", "", "output path")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
