package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatecrm/backend/domain"
	"github.com/relatecrm/backend/internal/seed"
	"github.com/relatecrm/backend/repository/memory"
)

func TestLoadDefinesWithoutData(t *testing.T) {
	s := memory.New()
	require.NoError(t, seed.Load(s, false))

	assert.Equal(t,
		[]string{"activities", "companies", "contacts", "leads", "opportunities", "tasks"},
		s.Entities(),
	)

	result, err := s.List("contacts", domain.ListOptions{})
	require.NoError(t, err)
	assert.Zero(t, result.Total)
}

func TestLoadDemoDataset(t *testing.T) {
	s := memory.New()
	require.NoError(t, seed.Load(s, true))

	counts := map[string]int{
		"companies":     5,
		"contacts":      8,
		"leads":         5,
		"opportunities": 4,
		"tasks":         5,
		"activities":    6,
	}
	for entity, want := range counts {
		result, err := s.List(entity, domain.ListOptions{})
		require.NoError(t, err)
		assert.Equal(t, want, result.Total, entity)
	}
}

func TestLoadIsDeterministic(t *testing.T) {
	s := memory.New()
	require.NoError(t, seed.Load(s, true))

	contact, err := s.Get("contacts", "contact-1")
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, "2025-05-10T09:00:00Z", contact["created_at"])
	assert.EqualValues(t, 1, contact.Version())
}

func TestSeedResolvesCompanyNameMatch(t *testing.T) {
	s := memory.New()
	require.NoError(t, seed.Load(s, true))

	// contact-5 carries only a company name; the seed pipeline resolves it
	// against the companies collection.
	contact, err := s.Get("contacts", "contact-5")
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, "company-4", contact["company_id"])
	assert.Equal(t, "Bluepeak Medical", contact["company_name"])
}

func TestSeedDropsDanglingCompanyID(t *testing.T) {
	s := memory.New()
	require.NoError(t, seed.Load(s, true))

	contact, err := s.Get("contacts", "contact-7")
	require.NoError(t, err)
	require.NotNil(t, contact)
	_, present := contact["company_id"]
	assert.False(t, present)
}

func TestSeedQualifiedLeads(t *testing.T) {
	s := memory.New()
	require.NoError(t, seed.Load(s, true))

	result, err := s.List("leads", domain.ListOptions{
		Filters: map[string]string{"status": "Qualified"},
		Sort:    "created_at",
		Page:    1,
		Limit:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "lead-5", result.Data[0].ID())
	assert.Equal(t, "lead-3", result.Data[1].ID())
}

func TestSeedCompanyHasContacts(t *testing.T) {
	s := memory.New()
	require.NoError(t, seed.Load(s, true))

	company, err := s.Get("companies", "company-1")
	require.NoError(t, err)
	require.NotNil(t, company)

	rels, ok := company[domain.FieldRelationships].(map[string]any)
	require.True(t, ok)
	contacts, ok := rels["contacts"].([]domain.RelationSummary)
	require.True(t, ok)
	assert.Len(t, contacts, 2)
}

func TestSeedSubsidiaryRelationship(t *testing.T) {
	s := memory.New()
	require.NoError(t, seed.Load(s, true))

	parent, err := s.Get("companies", "company-3")
	require.NoError(t, err)
	rels, ok := parent[domain.FieldRelationships].(map[string]any)
	require.True(t, ok)
	subsidiaries, ok := rels["subsidiaries"].([]domain.RelationSummary)
	require.True(t, ok)
	require.Len(t, subsidiaries, 1)
	assert.Equal(t, "company-4", subsidiaries[0].ID)
}
