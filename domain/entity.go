package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// EntityDefinition registers a named collection of schema-less records along
// with the query and relationship behavior the store applies to it.
type EntityDefinition struct {
	// Name is the canonical entity key. Lookups are case-insensitive.
	Name string
	// Aliases are alternate names that resolve to this entity.
	Aliases []string
	// SearchFields are matched (case-insensitive substring) by list search.
	SearchFields []string
	// FilterFields maps querystring filter keys to record field names.
	// Keys absent from the map filter on a field of the same name.
	FilterFields map[string]string
	// LabelFields are tried in order when resolving a display label.
	LabelFields []string
	BelongsTo   []BelongsTo
	HasMany     []HasMany
}

// BelongsTo declares a foreign-key pointer to a single record in another
// entity.
type BelongsTo struct {
	// Entity is the target entity name.
	Entity string
	// ForeignKey is the local field holding the target record id.
	ForeignKey string
	// Relation names the computed relationships entry. Defaults to Entity.
	Relation string
	// Project copies target fields onto the record at read time,
	// local field name -> target field name.
	Project map[string]string
	// MatchBy resolves the target by value match when no id was supplied.
	MatchBy *MatchBy
}

// MatchBy configures free-text resolution of a belongs-to target: the local
// SourceField is compared (case-insensitive) against the target entity's
// TargetField, and on a hit the foreign key is populated and the canonical
// target value mirrored back onto the source field.
type MatchBy struct {
	SourceField string
	TargetField string
}

// HasMany declares a computed reverse view: records in Entity whose
// ForeignKey equals this record's id.
type HasMany struct {
	Entity     string
	ForeignKey string
	Relation   string
}

// CanonicalName returns the lower-cased store key for the entity.
func (d EntityDefinition) CanonicalName() string {
	return strings.ToLower(strings.TrimSpace(d.Name))
}

// FilterField resolves a querystring filter key to a record field name.
func (d EntityDefinition) FilterField(key string) string {
	if d.FilterFields != nil {
		if mapped, ok := d.FilterFields[key]; ok && mapped != "" {
			return mapped
		}
	}
	return key
}

// labelFallbacks are tried after the configured label fields, matching how
// the CRM picks names for relationship summaries.
var labelFallbacks = []string{"name", "title", "subject"}

// Label resolves a human-readable label for the record: configured label
// fields first, then name/title/subject, then first+last name, then email,
// finally the id.
func (d EntityDefinition) Label(rec Record) string {
	for _, field := range d.LabelFields {
		if v, ok := rec.StringField(field); ok && v != "" {
			return v
		}
	}
	for _, field := range labelFallbacks {
		if v, ok := rec.StringField(field); ok && v != "" {
			return v
		}
	}
	first, _ := rec.StringField("first_name")
	last, _ := rec.StringField("last_name")
	if full := strings.TrimSpace(first + " " + last); full != "" {
		return full
	}
	if email, ok := rec.StringField("email"); ok && email != "" {
		return email
	}
	return rec.ID()
}

func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case fmt.Stringer:
		return val.String(), true
	default:
		return "", false
	}
}
