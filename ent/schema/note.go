package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Note is a processed study note with its extracted key concepts.
// Extraction happens upstream; this table is the engine's read model.
type Note struct {
	ent.Schema
}

func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("Note UUID"),
		field.String("user_id").
			Immutable(),
		field.String("title").
			Default(""),
		field.String("subject").
			Default(""),
		field.JSON("concepts", []map[string]any{}).
			Comment("Extracted key concepts: name and difficulty"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Note) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
