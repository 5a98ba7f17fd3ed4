package memory

import (
	"sort"
	"strings"

	"github.com/relatecrm/backend/domain"
)

// List applies search, filters, sort, and pagination over an entity's live
// collection and returns the decorated page plus the pre-pagination total.
func (s *Store) List(entity string, opts domain.ListOptions) (domain.ListResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name, def, err := s.resolveEntity(entity)
	if err != nil {
		return domain.ListResult{}, err
	}

	matched := make([]domain.Record, 0, len(s.records[name]))
	for _, id := range s.order[name] {
		rec, ok := s.records[name][id]
		if !ok {
			continue
		}
		if !matchesSearch(def, rec, opts.Search) {
			continue
		}
		if !matchesFilters(def, rec, opts.Filters) {
			continue
		}
		matched = append(matched, rec)
	}

	sortRecords(matched, opts.Sort)

	total := len(matched)
	limit := opts.Limit
	if limit <= 0 {
		limit = total
	}
	page := opts.Page
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * limit
	if start >= total {
		// Out-of-range pages clamp back to the first page rather than
		// returning an empty slice; the UI relies on this.
		start = 0
	}
	end := start + limit
	if end > total {
		end = total
	}

	data := make([]domain.Record, 0, end-start)
	for _, rec := range matched[start:end] {
		data = append(data, s.decorate(def, rec.Clone()))
	}

	return domain.ListResult{
		Data:  data,
		Total: total,
		Limit: limit,
		Page:  page,
	}, nil
}

// matchesSearch reports whether any configured search field contains the
// query, case-insensitively. Blank queries and entities without search
// fields match everything.
func matchesSearch(def domain.EntityDefinition, rec domain.Record, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" || len(def.SearchFields) == 0 {
		return true
	}
	for _, field := range def.SearchFields {
		if value, ok := rec.StringField(field); ok {
			if strings.Contains(strings.ToLower(value), needle) {
				return true
			}
		}
	}
	return false
}

// matchesFilters requires every non-empty filter to match its mapped field
// by case-insensitive exact comparison. Records missing a filtered field
// fail that filter.
func matchesFilters(def domain.EntityDefinition, rec domain.Record, filters map[string]string) bool {
	for key, want := range filters {
		if strings.TrimSpace(want) == "" {
			continue
		}
		got, ok := rec.StringField(def.FilterField(key))
		if !ok || !strings.EqualFold(got, want) {
			return false
		}
	}
	return true
}

// sortRecords applies the fixed sort vocabulary in place. Unrecognized sorts
// leave the collection order untouched.
func sortRecords(records []domain.Record, sortKey string) {
	switch sortKey {
	case "date":
		sort.SliceStable(records, func(i, j int) bool {
			return dateKey(records[i]) > dateKey(records[j])
		})
	case "created_at":
		sort.SliceStable(records, func(i, j int) bool {
			return createdKey(records[i]) > createdKey(records[j])
		})
	case "-created_at":
		sort.SliceStable(records, func(i, j int) bool {
			return createdKey(records[i]) < createdKey(records[j])
		})
	}
}

// dateKey prefers the record's date field, falling back to updated_at.
// ISO-8601 timestamps order correctly as strings.
func dateKey(rec domain.Record) string {
	if v, ok := rec.StringField("date"); ok && v != "" {
		return v
	}
	v, _ := rec.StringField(domain.FieldUpdatedAt)
	return v
}

func createdKey(rec domain.Record) string {
	v, _ := rec.StringField(domain.FieldCreatedAt)
	return v
}

func sortHistory(entries []domain.HistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Version != entries[j].Version {
			return entries[i].Version < entries[j].Version
		}
		return entries[i].Timestamp < entries[j].Timestamp
	})
}

func sortStrings(values []string) {
	sort.Strings(values)
}
