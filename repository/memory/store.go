// Package memory implements the in-memory entity store backing the CRM API.
// It emulates a small document store: schema-less records grouped by entity,
// relationship resolution at read time, and an append-only version history
// per record id.
package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/relatecrm/backend/domain"
	"github.com/relatecrm/backend/repository"
)

// Store holds all entity collections. A single RWMutex guards the maps so
// every operation stays atomic under concurrent handlers; record versions are
// change markers for history, not concurrency-control tokens.
type Store struct {
	mu      sync.RWMutex
	defs    map[string]domain.EntityDefinition
	aliases map[string]string
	records map[string]map[string]domain.Record
	order   map[string][]string
	history map[string]map[string][]domain.HistoryEntry
}

// New creates an empty store.
func New() *Store {
	return &Store{
		defs:    make(map[string]domain.EntityDefinition),
		aliases: make(map[string]string),
		records: make(map[string]map[string]domain.Record),
		order:   make(map[string][]string),
		history: make(map[string]map[string][]domain.HistoryEntry),
	}
}

var _ repository.EntityStore = (*Store)(nil)

// Define registers or replaces an entity configuration. Stored records under
// an existing name are kept; only the config is swapped.
func (s *Store) Define(def domain.EntityDefinition) {
	name := def.CanonicalName()
	if name == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.defs[name] = def
	for _, alias := range def.Aliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias != "" && alias != name {
			s.aliases[alias] = name
		}
	}
	if _, ok := s.records[name]; !ok {
		s.records[name] = make(map[string]domain.Record)
		s.history[name] = make(map[string][]domain.HistoryEntry)
	}
}

// Seed bulk-inserts initial records through the create pipeline, recording
// history action "seed". Ids and timestamps present in the seed data pass
// through untouched. Entities are processed belongs-to targets first so seed
// records can reference each other regardless of map iteration order.
func (s *Store) Seed(data map[string][]domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sortStrings(keys)

	// Batches keyed under an alias merge into their canonical entity so no
	// seed records are silently dropped.
	names := make([]string, 0, len(data))
	batches := make(map[string][]domain.Record, len(data))
	for _, key := range keys {
		entity, _, err := s.resolveEntity(key)
		if err != nil {
			return err
		}
		if _, seen := batches[entity]; !seen {
			names = append(names, entity)
		}
		batches[entity] = append(batches[entity], data[key]...)
	}

	for _, entity := range s.seedOrder(names) {
		for _, rec := range batches[entity] {
			if _, err := s.insert(entity, rec, domain.ActionSeed); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedOrder topologically sorts the seeded entities along their belongs-to
// edges, breaking ties (and cycles) alphabetically. Self references do not
// block an entity.
func (s *Store) seedOrder(names []string) []string {
	remaining := make(map[string]bool, len(names))
	for _, name := range names {
		remaining[name] = true
	}
	sortStrings(names)

	order := make([]string, 0, len(names))
	for len(order) < len(names) {
		picked := ""
		for _, name := range names {
			if !remaining[name] {
				continue
			}
			blocked := false
			for _, rel := range s.defs[name].BelongsTo {
				target := s.canonical(rel.Entity)
				if target != name && remaining[target] {
					blocked = true
					break
				}
			}
			if !blocked {
				picked = name
				break
			}
		}
		if picked == "" {
			// Cycle among the rest; fall back to alphabetical order.
			for _, name := range names {
				if remaining[name] {
					picked = name
					break
				}
			}
		}
		remaining[picked] = false
		order = append(order, picked)
	}
	return order
}

// Create inserts a new record and returns its decorated form.
func (s *Store) Create(entity string, payload domain.Record) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, _, err := s.resolveEntity(entity)
	if err != nil {
		return nil, err
	}
	return s.insert(name, payload, domain.ActionCreate)
}

// Get reads a single record. Deleted ids fall back to their latest history
// snapshot; WithVersion performs a point-in-time read. A nil record with nil
// error means not found.
func (s *Store) Get(entity, id string, opts ...repository.GetOption) (domain.Record, error) {
	if id == "" {
		return nil, nil
	}

	var options repository.GetOptions
	for _, opt := range opts {
		opt(&options)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	name, def, err := s.resolveEntity(entity)
	if err != nil {
		return nil, err
	}

	if options.Version != nil {
		entries := s.history[name][id]
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].Version == *options.Version {
				return s.decorate(def, entries[i].Data.Clone()), nil
			}
		}
		return nil, nil
	}

	if rec, ok := s.records[name][id]; ok {
		return s.decorate(def, rec.Clone()), nil
	}
	if entries := s.history[name][id]; len(entries) > 0 {
		return s.decorate(def, entries[len(entries)-1].Data.Clone()), nil
	}
	return nil, nil
}

// Update shallow-merges payload over the live record: fields in the payload
// overwrite, absent fields are retained, id and created_at always survive.
// Deleted records are never resurrected; nil record means no live record.
func (s *Store) Update(entity, id string, payload domain.Record) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, def, err := s.resolveEntity(entity)
	if err != nil {
		return nil, err
	}

	existing, ok := s.records[name][id]
	if !ok {
		return nil, nil
	}

	merged := existing.Clone()
	incoming := payload.Clone()
	delete(incoming, domain.FieldRelationships)
	delete(incoming, domain.FieldVersion)
	delete(incoming, domain.FieldID)
	delete(incoming, domain.FieldCreatedAt)
	for k, v := range incoming {
		merged[k] = v
	}

	if ts, ok := merged.StringField(domain.FieldUpdatedAt); !ok || !validTimestamp(ts) ||
		payload[domain.FieldUpdatedAt] == nil {
		merged[domain.FieldUpdatedAt] = nowISO()
	}
	merged[domain.FieldVersion] = existing.Version() + 1

	s.sanitizeForeignKeys(def, merged)
	s.resolveBelongsTo(name, def, merged)

	s.records[name][id] = merged
	s.appendHistory(name, merged, domain.ActionUpdate)

	return s.decorate(def, merged.Clone()), nil
}

// Delete removes the live record, appending a tombstone snapshot so the
// record stays addressable through Get and History. False when nothing was
// live under the id.
func (s *Store) Delete(entity, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, _, err := s.resolveEntity(entity)
	if err != nil {
		return false, err
	}

	rec, ok := s.records[name][id]
	if !ok {
		return false, nil
	}

	tombstone := rec.Clone()
	tombstone[domain.FieldVersion] = rec.Version() + 1
	tombstone[domain.FieldDeletedAt] = nowISO()
	s.appendHistory(name, tombstone, domain.ActionDelete)

	delete(s.records[name], id)
	s.order[name] = removeID(s.order[name], id)
	return true, nil
}

// History returns every snapshot recorded for an id, ascending by version
// with ties broken by timestamp. Deleted records keep their history forever.
func (s *Store) History(entity, id string) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name, def, err := s.resolveEntity(entity)
	if err != nil {
		return nil, err
	}

	entries := s.history[name][id]
	out := make([]domain.HistoryEntry, len(entries))
	for i, entry := range entries {
		out[i] = domain.HistoryEntry{
			Version:   entry.Version,
			Action:    entry.Action,
			Timestamp: entry.Timestamp,
			Data:      s.decorate(def, entry.Data.Clone()),
		}
	}
	sortHistory(out)
	return out, nil
}

// ExportState snapshots every live record across all entities, decorated.
func (s *Store) ExportState() (map[string][]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]domain.Record, len(s.defs))
	for name, def := range s.defs {
		records := make([]domain.Record, 0, len(s.records[name]))
		for _, id := range s.order[name] {
			if rec, ok := s.records[name][id]; ok {
				records = append(records, s.decorate(def, rec.Clone()))
			}
		}
		out[name] = records
	}
	return out, nil
}

// Entities lists the registered canonical entity names, sorted.
func (s *Store) Entities() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	sortStrings(names)
	return names
}

// insert runs the shared create pipeline. Caller holds the write lock.
func (s *Store) insert(name string, payload domain.Record, action domain.HistoryAction) (domain.Record, error) {
	def := s.defs[name]

	rec := payload.Clone()
	if rec == nil {
		rec = domain.Record{}
	}

	// Store-computed fields are never client-settable, but an explicit
	// positive version in the payload seeds the counter.
	delete(rec, domain.FieldRelationships)
	suppliedVersion := rec.Version()
	delete(rec, domain.FieldVersion)

	s.sanitizeForeignKeys(def, rec)
	s.resolveBelongsTo(name, def, rec)

	id := strings.TrimSpace(rec.ID())
	if id == "" {
		id = name + "-" + uuid.NewString()
	}
	if _, exists := s.records[name][id]; exists {
		return nil, domain.ErrDuplicateID(name, id)
	}
	rec[domain.FieldID] = id

	now := nowISO()
	if ts, ok := rec.StringField(domain.FieldCreatedAt); !ok || !validTimestamp(ts) {
		rec[domain.FieldCreatedAt] = now
	}
	if ts, ok := rec.StringField(domain.FieldUpdatedAt); !ok || !validTimestamp(ts) {
		rec[domain.FieldUpdatedAt] = now
	}

	version := int64(1)
	if suppliedVersion >= 1 {
		version = suppliedVersion
	}
	rec[domain.FieldVersion] = version

	s.records[name][id] = rec
	s.order[name] = append(s.order[name], id)
	s.appendHistory(name, rec, action)

	return s.decorate(def, rec.Clone()), nil
}

// resolveEntity maps a caller-supplied name (case-insensitive, alias-aware)
// to its canonical key. Caller holds at least the read lock.
func (s *Store) resolveEntity(entity string) (string, domain.EntityDefinition, error) {
	name := strings.ToLower(strings.TrimSpace(entity))
	if canonical, ok := s.aliases[name]; ok {
		name = canonical
	}
	def, ok := s.defs[name]
	if !ok {
		return "", domain.EntityDefinition{}, domain.ErrUnknownEntity(entity)
	}
	return name, def, nil
}

// sanitizeForeignKeys drops empty belongs-to keys so a missing relation never
// resolves against a stale or default record.
func (s *Store) sanitizeForeignKeys(def domain.EntityDefinition, rec domain.Record) {
	for _, rel := range def.BelongsTo {
		v, present := rec[rel.ForeignKey]
		if !present {
			continue
		}
		if v == nil {
			delete(rec, rel.ForeignKey)
			continue
		}
		if str, ok := v.(string); ok && strings.TrimSpace(str) == "" {
			delete(rec, rel.ForeignKey)
		}
	}
}

// resolveBelongsTo validates foreign keys against the live target collection,
// dropping dangling ids, and performs match-by lookups for records that carry
// a free-text value instead of an id.
func (s *Store) resolveBelongsTo(name string, def domain.EntityDefinition, rec domain.Record) {
	for _, rel := range def.BelongsTo {
		target := strings.ToLower(rel.Entity)
		if canonical, ok := s.aliases[target]; ok {
			target = canonical
		}
		collection := s.records[target]

		if fk, ok := rec.StringField(rel.ForeignKey); ok && fk != "" {
			if _, exists := collection[fk]; !exists {
				delete(rec, rel.ForeignKey)
			}
			continue
		}

		if rel.MatchBy == nil {
			continue
		}
		needle, ok := rec.StringField(rel.MatchBy.SourceField)
		if !ok || strings.TrimSpace(needle) == "" {
			continue
		}
		for _, id := range s.order[target] {
			candidate, ok := collection[id]
			if !ok {
				continue
			}
			value, ok := candidate.StringField(rel.MatchBy.TargetField)
			if ok && strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(needle)) {
				rec[rel.ForeignKey] = candidate.ID()
				// Mirror the canonical stored value back onto the record.
				rec[rel.MatchBy.SourceField] = value
				break
			}
		}
	}
}

// appendHistory snapshots the record. Relationships are never part of
// stored or historical data.
func (s *Store) appendHistory(name string, rec domain.Record, action domain.HistoryAction) {
	snapshot := rec.Clone()
	delete(snapshot, domain.FieldRelationships)
	id := snapshot.ID()
	s.history[name][id] = append(s.history[name][id], domain.HistoryEntry{
		Version:   snapshot.Version(),
		Action:    action,
		Timestamp: nowISO(),
		Data:      snapshot,
	})
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func validTimestamp(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	_, err := time.Parse(time.RFC3339, value)
	return err == nil
}
