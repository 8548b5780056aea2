package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
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
		field.String("num").NotEmpty(),
		field.Time("issue_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("so_num").Optional().Nillable(),
		field.String("incoterm").Optional().Nillable(),
		field.String("payment_terms").Optional().Nillable(),
		field.Time("ship_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("method_of_shipment").Optional().Nillable(),
		field.String("ship_to").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("bill_to").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// the single product line, flattened onto the invoice row
		field.String("product_no").Optional().Nillable(),
		field.String("description").Optional().Nillable(),
		field.String("um").Optional().Nillable(),
		// transport/vehicle id, kept under the column name the ledger uses
		field.String("notes").Optional().Nillable(),
		field.Float("item_qty").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,3)"}),
		field.Float("price_each").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,5)"}),
		field.Float("amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("subtotal").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Bool("needs_review").Default(false),
		field.String("fingerprint").NotEmpty().MaxLen(64),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE invoice -> MANY files (origin scan, stripped attachment)
		edge.To("files", InvoiceFile.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fingerprint").Unique(),
		index.Fields("num", "issue_date"),
	}
}
