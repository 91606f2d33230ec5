package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OperationEvent records the terminal transition of a tracked operation.
// Active-state churn (progress updates) is deliberately not logged.
type OperationEvent struct {
	ent.Schema
}

func (OperationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (OperationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("operation_id").
			Comment("Handle id assigned at registration"),
		field.String("context").
			Comment("Operation kind: quiz-generation, answer-verification, ..."),
		field.String("outcome").
			Comment("Terminal status: success, error, cancelled"),
		field.String("message").
			Default("").
			Comment("Final display message"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Time from registration to terminal transition"),
	}
}

func (OperationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("context"),
		index.Fields("outcome"),
	}
}
