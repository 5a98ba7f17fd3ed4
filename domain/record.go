package domain

import "time"

// Reserved record fields managed by the store. Callers may read them but the
// store owns their lifecycle; client-supplied values for computed fields are
// discarded on write.
const (
	FieldID            = "id"
	FieldCreatedAt     = "created_at"
	FieldUpdatedAt     = "updated_at"
	FieldDeletedAt     = "deleted_at"
	FieldVersion       = "version"
	FieldRelationships = "relationships"
)

// Record is a schema-less CRM document. The schema is defined per entity by
// the caller, so records are plain key-value maps rather than fixed structs.
type Record map[string]any

// ID returns the record id, or "" when unset.
func (r Record) ID() string {
	id, _ := r[FieldID].(string)
	return id
}

// Version returns the record version, tolerating the numeric types JSON
// decoding produces. Zero when unset.
func (r Record) Version() int64 {
	switch v := r[FieldVersion].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// StringField returns the named field rendered as a string, with ok=false
// when the field is absent or not a scalar.
func (r Record) StringField(name string) (string, bool) {
	v, present := r[name]
	if !present || v == nil {
		return "", false
	}
	return stringify(v)
}

// Clone returns a deep copy of the record. Used at every store boundary so
// callers can never mutate stored state through returned references.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return cloneValue(r).(Record)
}

// CloneValue deep-copies a single field value with the same semantics as
// Record.Clone, for projections that lift individual fields across the
// store boundary.
func CloneValue(v any) any {
	return cloneValue(v)
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Record:
		out := make(Record, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []Record:
		out := make([]Record, len(val))
		for i, item := range val {
			out[i] = item.Clone()
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case time.Time:
		return val
	default:
		// Scalars (and anything else JSON-shaped) are value types already.
		return val
	}
}
