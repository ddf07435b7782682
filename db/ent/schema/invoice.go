package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}),
		// content identity
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int64("file_size").NonNegative(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("storage_key").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
		// business fields, filled by reconciliation
		field.String("invoice_number").Optional().Nillable(),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("issuer_name").Optional().Nillable(),
		field.String("payer_name").Optional().Nillable(),
		field.Float("amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency_code").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		// extraction payload
		field.JSON("extraction", json.RawMessage{}).Optional(),
		field.String("provider_name").Optional().Nillable(),
		field.Float32("extraction_confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		// lifecycle
		field.String("status").
			Default(string(constants.InvoiceStatusPending)).
			Validate(utils.EnumValidator(constants.InvoiceStatuses...)),
		field.String("reimbursement_status").
			Default(string(constants.ReimbursementUnsubmitted)).
			Validate(utils.EnumValidator(constants.ReimbursementStatuses...)),
		field.Bool("is_verified").Default(false),
		field.UUID("verified_by", uuid.UUID{}).Optional().Nillable(),
		field.Time("verified_at").Optional().Nillable(),
		field.String("verification_notes").Optional().Nillable(),
		field.Time("deleted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE invoice -> MANY tasks
		edge.To("tasks", ExtractionTask.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		// At most one LIVE invoice per (owner, hash). Soft-deleted rows are
		// excluded so a re-upload can be offered a restore instead of a crash.
		index.Fields("owner_id", "content_hash").
			Unique().
			Annotations(entsql.IndexWhere("deleted_at IS NULL")),
		// cross-owner lookup, informational only
		index.Fields("content_hash"),
		index.Fields("owner_id", "uploaded_at"),
		index.Fields("owner_id", "status"),
	}
}
