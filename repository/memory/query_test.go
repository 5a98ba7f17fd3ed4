package memory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatecrm/backend/domain"
	"github.com/relatecrm/backend/repository/memory"
)

func newLeadStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New()
	s.Define(domain.EntityDefinition{
		Name:         "leads",
		SearchFields: []string{"name", "email"},
		FilterFields: map[string]string{"status": "status", "source": "source"},
		LabelFields:  []string{"name"},
	})

	seed := []domain.Record{
		{"id": "lead-1", "name": "Oda Jensen", "email": "oda@example.org", "status": "Qualified", "source": "Referral", "created_at": "2025-06-01T09:00:00Z"},
		{"id": "lead-2", "name": "Piotr Nowak", "email": "piotr@example.org", "status": "New", "source": "Web", "created_at": "2025-06-02T09:00:00Z"},
		{"id": "lead-3", "name": "Ines Castro", "email": "ines@example.org", "status": "Qualified", "source": "Event", "created_at": "2025-06-03T09:00:00Z"},
		{"id": "lead-4", "name": "Dara O'Brien", "email": "dara@example.org", "status": "Contacted", "source": "Web", "created_at": "2025-06-04T09:00:00Z"},
		{"id": "lead-5", "name": "Mei Tanaka", "email": "mei@example.org", "status": "qualified", "source": "Referral", "created_at": "2025-06-05T09:00:00Z"},
	}
	require.NoError(t, s.Seed(map[string][]domain.Record{"leads": seed}))
	return s
}

func TestListAll(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
	assert.Len(t, result.Data, 5)
	// Unpaginated requests default the limit to the total count.
	assert.Equal(t, 5, result.Limit)
	assert.Equal(t, 1, result.Page)
}

func TestListSearchCaseInsensitive(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{Search: "TANAKA"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "lead-5", result.Data[0].ID())
}

func TestListBlankSearchMatchesEverything(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{Search: "   "})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
}

func TestListSearchIgnoredWithoutSearchFields(t *testing.T) {
	s := newLeadStore(t)
	s.Define(domain.EntityDefinition{Name: "notes"})
	_, err := s.Create("notes", domain.Record{"body": "hello"})
	require.NoError(t, err)

	result, err := s.List("notes", domain.ListOptions{Search: "no such text"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestListFilterConjunction(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{
		Filters: map[string]string{"status": "Qualified", "source": "Referral"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	for _, rec := range result.Data {
		status, _ := rec.StringField("status")
		source, _ := rec.StringField("source")
		assert.True(t, status == "Qualified" || status == "qualified")
		assert.Equal(t, "Referral", source)
	}
}

func TestListFilterMissingFieldFails(t *testing.T) {
	s := newLeadStore(t)
	_, err := s.Create("leads", domain.Record{"id": "lead-6", "name": "No Status"})
	require.NoError(t, err)

	result, err := s.List("leads", domain.ListOptions{
		Filters: map[string]string{"status": "Qualified"},
	})
	require.NoError(t, err)
	for _, rec := range result.Data {
		assert.NotEqual(t, "lead-6", rec.ID())
	}
}

func TestListEmptyFilterValueIgnored(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{
		Filters: map[string]string{"status": "  "},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
}

func TestListSortCreatedAtDescending(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{Sort: "created_at"})
	require.NoError(t, err)
	require.Len(t, result.Data, 5)
	assert.Equal(t, "lead-5", result.Data[0].ID())
	assert.Equal(t, "lead-1", result.Data[4].ID())
}

func TestListSortCreatedAtAscending(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{Sort: "-created_at"})
	require.NoError(t, err)
	require.Len(t, result.Data, 5)
	assert.Equal(t, "lead-1", result.Data[0].ID())
	assert.Equal(t, "lead-5", result.Data[4].ID())
}

func TestListSortDateFallsBackToUpdatedAt(t *testing.T) {
	s := memory.New()
	s.Define(domain.EntityDefinition{Name: "activities"})
	require.NoError(t, s.Seed(map[string][]domain.Record{
		"activities": {
			{"id": "activity-1", "date": "2025-06-10T09:00:00Z", "updated_at": "2025-06-01T09:00:00Z"},
			{"id": "activity-2", "updated_at": "2025-06-20T09:00:00Z"},
			{"id": "activity-3", "date": "2025-06-15T09:00:00Z", "updated_at": "2025-06-02T09:00:00Z"},
		},
	}))

	result, err := s.List("activities", domain.ListOptions{Sort: "date"})
	require.NoError(t, err)
	require.Len(t, result.Data, 3)
	assert.Equal(t, "activity-2", result.Data[0].ID())
	assert.Equal(t, "activity-3", result.Data[1].ID())
	assert.Equal(t, "activity-1", result.Data[2].ID())
}

func TestListUnrecognizedSortKeepsOrder(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{Sort: "priority"})
	require.NoError(t, err)
	ids := make([]string, len(result.Data))
	for i, rec := range result.Data {
		ids[i] = rec.ID()
	}
	assert.Equal(t, []string{"lead-1", "lead-2", "lead-3", "lead-4", "lead-5"}, ids)
}

func TestListPagination(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 2, result.Limit)
	assert.Equal(t, 2, result.Page)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "lead-3", result.Data[0].ID())
	assert.Equal(t, "lead-4", result.Data[1].ID())
}

func TestListPaginationClampsOutOfRangePage(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{Page: 99, Limit: 2})
	require.NoError(t, err)
	// Out-of-range pages return the first page instead of an empty slice.
	require.Len(t, result.Data, 2)
	assert.Equal(t, "lead-1", result.Data[0].ID())
	assert.Equal(t, 5, result.Total)
}

func TestListQualifiedLeadsScenario(t *testing.T) {
	s := newLeadStore(t)

	result, err := s.List("leads", domain.ListOptions{
		Filters: map[string]string{"status": "Qualified"},
		Sort:    "created_at",
		Page:    1,
		Limit:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Data, 2)
	// Newest created_at first within the qualified subset.
	assert.Equal(t, "lead-5", result.Data[0].ID())
	assert.Equal(t, "lead-3", result.Data[1].ID())
}

func TestListTotalReflectsFilteredCount(t *testing.T) {
	s := newLeadStore(t)
	for i := 0; i < 10; i++ {
		_, err := s.Create("leads", domain.Record{
			"id":     fmt.Sprintf("extra-%d", i),
			"name":   "Extra Lead",
			"status": "New",
		})
		require.NoError(t, err)
	}

	result, err := s.List("leads", domain.ListOptions{
		Filters: map[string]string{"status": "New"},
		Limit:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, result.Total)
	assert.Len(t, result.Data, 3)
}
