package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// SpendingEntry holds the schema definition for the SpendingEntry entity.
// Append-only: replaying tokens_changed in creation order reconstructs
// the owner's current balance.
type SpendingEntry struct {
	ent.Schema
}

// Fields of the SpendingEntry.
func (SpendingEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty(),
		field.Int("tokens_changed"),
		field.Int("balance_after"),
		field.String("description").
			Optional().
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SpendingEntry.
func (SpendingEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("spending_entries").
			Unique().
			Required(),
	}
}
