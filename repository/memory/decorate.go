package memory

import (
	"strings"

	"github.com/relatecrm/backend/domain"
)

// decorate attaches relationship projections to an outbound record: configured
// target fields are copied onto the record and compact summaries are gathered
// under a computed relationships map. Pure read-time projection over the live
// collections; stored data is never touched. Caller holds at least the read
// lock and passes a clone it owns.
func (s *Store) decorate(def domain.EntityDefinition, rec domain.Record) domain.Record {
	if rec == nil {
		return nil
	}

	relationships := make(map[string]any)

	for _, rel := range def.BelongsTo {
		target := s.canonical(rel.Entity)
		fk, ok := rec.StringField(rel.ForeignKey)
		if !ok || fk == "" {
			continue
		}
		related, exists := s.records[target][fk]
		if !exists {
			continue
		}

		// Denormalized fields always reflect the target's current state
		// rather than a stale copy taken at write time. Copied deeply so
		// the caller never aliases the stored target record.
		for localField, targetField := range rel.Project {
			if v, present := related[targetField]; present {
				rec[localField] = domain.CloneValue(v)
			}
		}

		name := rel.Relation
		if name == "" {
			name = target
		}
		relationships[name] = s.summarize(target, related)
	}

	id := rec.ID()
	for _, rel := range def.HasMany {
		target := s.canonical(rel.Entity)
		if id == "" {
			continue
		}
		var summaries []domain.RelationSummary
		for _, candidateID := range s.order[target] {
			candidate, ok := s.records[target][candidateID]
			if !ok {
				continue
			}
			if fk, ok := candidate.StringField(rel.ForeignKey); ok && fk == id {
				summaries = append(summaries, s.summarize(target, candidate))
			}
		}
		if len(summaries) > 0 {
			name := rel.Relation
			if name == "" {
				name = target
			}
			relationships[name] = summaries
		}
	}

	if len(relationships) > 0 {
		rec[domain.FieldRelationships] = relationships
	}
	return rec
}

// summarize builds the compact related-record projection: id, entity, label,
// and a few scalars. Summaries never embed full records, so decoration cannot
// produce cycles.
func (s *Store) summarize(entity string, rec domain.Record) domain.RelationSummary {
	def := s.defs[entity]
	summary := domain.RelationSummary{
		ID:      rec.ID(),
		Entity:  entity,
		Name:    def.Label(rec),
		Version: rec.Version(),
	}
	if v, ok := rec.StringField("status"); ok {
		summary.Status = v
	}
	if v, ok := rec.StringField("stage"); ok {
		summary.Stage = v
	}
	if v, present := rec["value"]; present {
		summary.Value = domain.CloneValue(v)
	}
	if v, ok := rec.StringField(domain.FieldUpdatedAt); ok {
		summary.UpdatedAt = v
	}
	return summary
}

func (s *Store) canonical(entity string) string {
	name := strings.ToLower(strings.TrimSpace(entity))
	if canonical, ok := s.aliases[name]; ok {
		return canonical
	}
	return name
}
