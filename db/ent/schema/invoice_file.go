package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type InvoiceFile struct{ ent.Schema }

func (InvoiceFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_files"},
	}
}

func (InvoiceFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so the composite index below can name it
		field.UUID("invoice_id", uuid.UUID{}),
		field.Enum("role").Values("origin", "attachment"),
		field.String("path").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (InvoiceFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE invoice (FK: invoice_files.invoice_id)
		edge.From("invoice", Invoice.Type).
			Ref("files").
			Field("invoice_id").
			Required().
			Unique(),
	}
}

func (InvoiceFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id", "role").Unique(),
	}
}
