package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Transcription holds the schema definition for the Transcription entity.
type Transcription struct {
	ent.Schema
}

// Fields of the Transcription.
func (Transcription) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_url").
			NotEmpty(),
		field.String("title").
			Optional().
			Default(""),
		field.Float("duration_seconds").
			Default(0),
		field.String("language").
			Optional().
			Default(""),
		field.String("status").
			Default("queued"),
		field.Text("transcript").
			Optional().
			Default(""),
		field.String("error").
			Optional().
			Default(""),
		field.String("share_token").
			Unique().
			Optional().
			Nillable(),
		field.String("fingerprint").
			Optional().
			Default("").
			Comment("Set for jobs created by anonymous clients."),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Transcription.
func (Transcription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("transcriptions").
			Unique(),
	}
}
