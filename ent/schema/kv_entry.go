package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// KVEntry is an opaque key-value record. The ledger persists its full
// collection under a single key; callers outside the core use it for
// profile and quiz-history blobs.
type KVEntry struct {
	ent.Schema
}

func (KVEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable().
			Comment("Namespaced key, e.g. linguo.mistakes.v1"),
		field.Bytes("value").
			Comment("Opaque payload, typically JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}
