package domain

import (
	"maps"
	"time"
)

// Record field names assigned by the repository.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Kind names an entity collection.
type Kind string

const (
	KindUsers         Kind = "users"
	KindConversations Kind = "conversations"
	KindMessages      Kind = "messages"
	KindPortfolio     Kind = "portfolio"
)

// Kinds lists every collection in a stable order.
var Kinds = []Kind{KindUsers, KindConversations, KindMessages, KindPortfolio}

// ParseKind validates a collection name.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Expires reports whether records of this kind age out.
func (k Kind) Expires() bool {
	return k == KindConversations || k == KindMessages
}

// Record is a persisted entity as stored: a flat JSON object.
type Record map[string]any

// ID returns the record id, or "" when missing or not a string.
func (r Record) ID() string {
	id, _ := r[FieldID].(string)
	return id
}

// CreatedAt parses the createdAt field. ok is false when absent or invalid.
func (r Record) CreatedAt() (time.Time, bool) {
	s, _ := r[FieldCreatedAt].(string)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Clone returns a shallow copy.
func (r Record) Clone() Record {
	return maps.Clone(r)
}

// Fields is an untyped set of field values. It is its own Patch.
type Fields map[string]any

func (f Fields) Fields() Fields { return f }

// Patch is anything that can be flattened into record fields.
type Patch interface {
	Fields() Fields
}
