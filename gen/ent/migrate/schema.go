// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractionTasksColumns holds the columns for the "extraction_tasks" table.
	ExtractionTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "result_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "provider_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
	}
	// ExtractionTasksTable holds the schema information for the "extraction_tasks" table.
	ExtractionTasksTable = &schema.Table{
		Name:       "extraction_tasks",
		Columns:    ExtractionTasksColumns,
		PrimaryKey: []*schema.Column{ExtractionTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_tasks_invoices_tasks",
				Columns:    []*schema.Column{ExtractionTasksColumns[14]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractiontask_owner_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionTasksColumns[1], ExtractionTasksColumns[3], ExtractionTasksColumns[12]},
			},
			{
				Name:    "extractiontask_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionTasksColumns[14]},
			},
			{
				Name:    "extractiontask_status_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionTasksColumns[3], ExtractionTasksColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'RETRYING'",
				},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "issuer_name", Type: field.TypeString, Nullable: true},
		{Name: "payer_name", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency_code", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "extraction", Type: field.TypeJSON, Nullable: true},
		{Name: "provider_name", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "reimbursement_status", Type: field.TypeString, Default: "UNSUBMITTED"},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "verified_by", Type: field.TypeUUID, Nullable: true},
		{Name: "verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "verification_notes", Type: field.TypeString, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_owner_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NULL",
				},
			},
			{
				Name:    "invoice_content_hash",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[2]},
			},
			{
				Name:    "invoice_owner_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[7]},
			},
			{
				Name:    "invoice_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[20]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractionTasksTable,
		InvoicesTable,
	}
)

func init() {
	ExtractionTasksTable.ForeignKeys[0].RefTable = InvoicesTable
	ExtractionTasksTable.Annotation = &entsql.Annotation{
		Table: "extraction_tasks",
	}
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
}
