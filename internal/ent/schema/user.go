package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("name").
			Optional().
			Default(""),
		field.Int("tokens").
			Default(0).
			Comment("Spendable balance. Every change pairs with a SpendingEntry."),
		field.Bool("is_admin").
			Default(false),
		field.Bool("is_active").
			Default(true),
		field.String("stripe_customer_id").
			Unique().
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transcriptions", Transcription.Type),
		edge.To("spending_entries", SpendingEntry.Type),
		edge.To("payments", Payment.Type),
	}
}
