package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AnonymousUser holds the schema definition for the AnonymousUser entity.
// One row per fingerprint; tracks free-tier consumption before sign-up.
type AnonymousUser struct {
	ent.Schema
}

// Fields of the AnonymousUser.
func (AnonymousUser) Fields() []ent.Field {
	return []ent.Field{
		field.String("fingerprint").
			Unique().
			NotEmpty(),
		field.String("ip").
			Optional().
			Default(""),
		field.String("user_agent").
			Optional().
			Default(""),
		field.Int("transcription_count").
			Default(0).
			NonNegative(),
		field.Bool("is_transfer_used").
			Default(false).
			Comment("Terminal once true: no further increments or transfers."),
		field.Int("transferred_to_user_id").
			Optional(),
		field.Time("transferred_at").
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
