package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/luminexhq/invoicevault/constants"
	"github.com/luminexhq/invoicevault/db/ent/schema/utils"
)

type ExtractionTask struct{ ent.Schema }

func (ExtractionTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_tasks"},
	}
}

func (ExtractionTask) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}),
		// nil when classification failed before an invoice row existed
		field.UUID("invoice_id", uuid.UUID{}).Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("status").
			Default(string(constants.TaskStatusPending)).
			Validate(utils.EnumValidator(constants.TaskStatuses...)),
		field.Int("retry_count").Default(0).NonNegative(),
		field.Int("max_retries").Default(constants.MaxTaskRetries).NonNegative(),
		field.Time("next_retry_at").Optional().Nillable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.JSON("result_payload", json.RawMessage{}).Optional(),
		field.String("provider_name").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("tasks").
			Field("invoice_id").
			Unique(),
	}
}

func (ExtractionTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status", "created_at"),
		index.Fields("invoice_id"),
		// scheduler scan for retry-eligible tasks
		index.Fields("status", "next_retry_at").
			Annotations(entsql.IndexWhere("status = 'RETRYING'")),
	}
}
