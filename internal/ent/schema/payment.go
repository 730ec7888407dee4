package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Payment holds the schema definition for the Payment entity.
type Payment struct {
	ent.Schema
}

// Fields of the Payment.
func (Payment) Fields() []ent.Field {
	return []ent.Field{
		field.String("stripe_session_id").
			Unique().
			NotEmpty().
			Comment("Uniqueness is the webhook replay guard."),
		field.Int64("amount_cents").
			Default(0),
		field.String("currency").
			Default("usd"),
		field.Int("tokens_added"),
		field.String("status").
			Default("completed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Payment.
func (Payment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("payments").
			Unique().
			Required(),
	}
}
