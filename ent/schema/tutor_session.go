package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TutorSession is one tutoring session. The scalar columns exist for
// lookups and conditional writes; the full session document (concepts,
// turns, misconceptions, completion report) lives in the data JSON.
type TutorSession struct {
	ent.Schema
}

func (TutorSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("Session UUID, assigned by the engine"),
		field.String("user_id").
			Immutable(),
		field.String("note_id").
			Immutable(),
		field.String("mode").
			Default("adaptive").
			Comment("adaptive or fixed"),
		field.Bool("is_completed").
			Default(false),
		field.Int64("version").
			Default(0).
			Comment("Optimistic-concurrency token; every write must match and bump it"),
		field.JSON("data", map[string]any{}).
			Comment("Full session document"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (TutorSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "is_completed"),
	}
}
