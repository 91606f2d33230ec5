package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single review pass over a mistake record.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").
			Comment("Mistake record id"),
		field.String("topic").
			Comment("Learning domain of the record"),
		field.String("focus").
			Comment("Skill area of the record"),
		field.Bool("correct").
			Comment("Whether the learner answered correctly this pass"),
		field.Int("review_count").
			Comment("Review count after this pass"),
		field.Bool("mastered").
			Comment("Whether this pass reached mastery"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("record_id"),
		index.Fields("topic"),
	}
}
