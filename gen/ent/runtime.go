// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/luminexhq/invoicevault/db/ent/schema"
	"github.com/luminexhq/invoicevault/gen/ent/extractiontask"
	"github.com/luminexhq/invoicevault/gen/ent/invoice"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractiontaskFields := schema.ExtractionTask{}.Fields()
	_ = extractiontaskFields
	// extractiontaskDescFormat is the schema descriptor for format field.
	extractiontaskDescFormat := extractiontaskFields[3].Descriptor()
	// extractiontask.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractiontask.FormatValidator = func() func(string) error {
		validators := extractiontaskDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractiontaskDescStatus is the schema descriptor for status field.
	extractiontaskDescStatus := extractiontaskFields[4].Descriptor()
	// extractiontask.DefaultStatus holds the default value on creation for the status field.
	extractiontask.DefaultStatus = extractiontaskDescStatus.Default.(string)
	// extractiontask.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractiontask.StatusValidator = extractiontaskDescStatus.Validators[0].(func(string) error)
	// extractiontaskDescRetryCount is the schema descriptor for retry_count field.
	extractiontaskDescRetryCount := extractiontaskFields[5].Descriptor()
	// extractiontask.DefaultRetryCount holds the default value on creation for the retry_count field.
	extractiontask.DefaultRetryCount = extractiontaskDescRetryCount.Default.(int)
	// extractiontask.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	extractiontask.RetryCountValidator = extractiontaskDescRetryCount.Validators[0].(func(int) error)
	// extractiontaskDescMaxRetries is the schema descriptor for max_retries field.
	extractiontaskDescMaxRetries := extractiontaskFields[6].Descriptor()
	// extractiontask.DefaultMaxRetries holds the default value on creation for the max_retries field.
	extractiontask.DefaultMaxRetries = extractiontaskDescMaxRetries.Default.(int)
	// extractiontask.MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	extractiontask.MaxRetriesValidator = extractiontaskDescMaxRetries.Validators[0].(func(int) error)
	// extractiontaskDescCreatedAt is the schema descriptor for created_at field.
	extractiontaskDescCreatedAt := extractiontaskFields[13].Descriptor()
	// extractiontask.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractiontask.DefaultCreatedAt = extractiontaskDescCreatedAt.Default.(func() time.Time)
	// extractiontaskDescUpdatedAt is the schema descriptor for updated_at field.
	extractiontaskDescUpdatedAt := extractiontaskFields[14].Descriptor()
	// extractiontask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractiontask.DefaultUpdatedAt = extractiontaskDescUpdatedAt.Default.(func() time.Time)
	// extractiontask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractiontask.UpdateDefaultUpdatedAt = extractiontaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractiontaskDescID is the schema descriptor for id field.
	extractiontaskDescID := extractiontaskFields[0].Descriptor()
	// extractiontask.DefaultID holds the default value on creation for the id field.
	extractiontask.DefaultID = extractiontaskDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescContentHash is the schema descriptor for content_hash field.
	invoiceDescContentHash := invoiceFields[2].Descriptor()
	// invoice.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	invoice.ContentHashValidator = invoiceDescContentHash.Validators[0].(func([]byte) error)
	// invoiceDescFileSize is the schema descriptor for file_size field.
	invoiceDescFileSize := invoiceFields[3].Descriptor()
	// invoice.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	invoice.FileSizeValidator = invoiceDescFileSize.Validators[0].(func(int64) error)
	// invoiceDescFilename is the schema descriptor for filename field.
	invoiceDescFilename := invoiceFields[4].Descriptor()
	// invoice.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoice.FilenameValidator = invoiceDescFilename.Validators[0].(func(string) error)
	// invoiceDescFileExt is the schema descriptor for file_ext field.
	invoiceDescFileExt := invoiceFields[5].Descriptor()
	// invoice.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	invoice.FileExtValidator = invoiceDescFileExt.Validators[0].(func(string) error)
	// invoiceDescUploadedAt is the schema descriptor for uploaded_at field.
	invoiceDescUploadedAt := invoiceFields[7].Descriptor()
	// invoice.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	invoice.DefaultUploadedAt = invoiceDescUploadedAt.Default.(func() time.Time)
	// invoiceDescNeedsReview is the schema descriptor for needs_review field.
	invoiceDescNeedsReview := invoiceFields[19].Descriptor()
	// invoice.DefaultNeedsReview holds the default value on creation for the needs_review field.
	invoice.DefaultNeedsReview = invoiceDescNeedsReview.Default.(bool)
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceFields[20].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoice.StatusValidator = invoiceDescStatus.Validators[0].(func(string) error)
	// invoiceDescReimbursementStatus is the schema descriptor for reimbursement_status field.
	invoiceDescReimbursementStatus := invoiceFields[21].Descriptor()
	// invoice.DefaultReimbursementStatus holds the default value on creation for the reimbursement_status field.
	invoice.DefaultReimbursementStatus = invoiceDescReimbursementStatus.Default.(string)
	// invoice.ReimbursementStatusValidator is a validator for the "reimbursement_status" field. It is called by the builders before save.
	invoice.ReimbursementStatusValidator = invoiceDescReimbursementStatus.Validators[0].(func(string) error)
	// invoiceDescIsVerified is the schema descriptor for is_verified field.
	invoiceDescIsVerified := invoiceFields[22].Descriptor()
	// invoice.DefaultIsVerified holds the default value on creation for the is_verified field.
	invoice.DefaultIsVerified = invoiceDescIsVerified.Default.(bool)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[27].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[28].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
}
