package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatecrm/backend/domain"
	"github.com/relatecrm/backend/repository/memory"
)

func relationships(t *testing.T, rec domain.Record) map[string]any {
	t.Helper()
	rels, ok := rec[domain.FieldRelationships].(map[string]any)
	require.True(t, ok, "record has no relationships map")
	return rels
}

func TestDecorateBelongsToSummary(t *testing.T) {
	s := newTestStore(t)
	seedCompany(t, s)

	created, err := s.Create("contacts", domain.Record{
		"first_name": "Ann",
		"last_name":  "Lee",
		"company_id": "company-1",
	})
	require.NoError(t, err)

	rels := relationships(t, created)
	summary, ok := rels["company"].(domain.RelationSummary)
	require.True(t, ok)
	assert.Equal(t, "company-1", summary.ID)
	assert.Equal(t, "companies", summary.Entity)
	assert.Equal(t, "Acme Corp", summary.Name)
}

func TestDecorateProjectionTracksTargetState(t *testing.T) {
	s := newTestStore(t)
	seedCompany(t, s)

	created, err := s.Create("contacts", domain.Record{
		"first_name": "Ann",
		"company_id": "company-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", created["company_name"])

	// Renaming the company must be reflected on the next read; the
	// denormalized field is a live projection, not a stored copy.
	_, err = s.Update("companies", "company-1", domain.Record{"name": "Acme Holdings"})
	require.NoError(t, err)

	got, err := s.Get("contacts", created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", got["company_name"])
}

func TestDecorateHasMany(t *testing.T) {
	s := newTestStore(t)
	seedCompany(t, s)

	first, err := s.Create("contacts", domain.Record{"first_name": "Ann", "company_id": "company-1"})
	require.NoError(t, err)
	second, err := s.Create("contacts", domain.Record{"first_name": "Bob", "company_id": "company-1"})
	require.NoError(t, err)

	company, err := s.Get("companies", "company-1")
	require.NoError(t, err)

	rels := relationships(t, company)
	contacts, ok := rels["contacts"].([]domain.RelationSummary)
	require.True(t, ok)
	require.Len(t, contacts, 2)
	assert.Equal(t, first.ID(), contacts[0].ID)
	assert.Equal(t, second.ID(), contacts[1].ID)
	assert.Equal(t, "Ann", contacts[0].Name)
}

func TestDecorateHasManyShrinksOnDelete(t *testing.T) {
	s := newTestStore(t)
	seedCompany(t, s)

	contact, err := s.Create("contacts", domain.Record{"first_name": "Ann", "company_id": "company-1"})
	require.NoError(t, err)

	_, err = s.Delete("contacts", contact.ID())
	require.NoError(t, err)

	company, err := s.Get("companies", "company-1")
	require.NoError(t, err)
	_, present := company[domain.FieldRelationships]
	assert.False(t, present)
}

func TestDecorateSummaryScalars(t *testing.T) {
	s := newTestStore(t)
	s.Define(domain.EntityDefinition{
		Name:        "opportunities",
		LabelFields: []string{"name"},
		BelongsTo: []domain.BelongsTo{
			{Entity: "companies", ForeignKey: "company_id", Relation: "company"},
		},
	})
	s.Define(domain.EntityDefinition{
		Name: "quotes",
		BelongsTo: []domain.BelongsTo{
			{Entity: "opportunities", ForeignKey: "opportunity_id", Relation: "opportunity"},
		},
	})
	seedCompany(t, s)

	_, err := s.Create("opportunities", domain.Record{
		"id":    "opportunity-1",
		"name":  "Fleet renewal",
		"stage": "Proposal",
		"value": 84000,
	})
	require.NoError(t, err)

	quote, err := s.Create("quotes", domain.Record{"opportunity_id": "opportunity-1"})
	require.NoError(t, err)

	rels := relationships(t, quote)
	summary, ok := rels["opportunity"].(domain.RelationSummary)
	require.True(t, ok)
	assert.Equal(t, "Fleet renewal", summary.Name)
	assert.Equal(t, "Proposal", summary.Stage)
	assert.EqualValues(t, 84000, summary.Value)
	assert.EqualValues(t, 1, summary.Version)
}

func TestDecorateProjectionCopiesNonScalars(t *testing.T) {
	s := memory.New()
	s.Define(domain.EntityDefinition{
		Name:        "companies",
		LabelFields: []string{"name"},
	})
	s.Define(domain.EntityDefinition{
		Name: "contacts",
		BelongsTo: []domain.BelongsTo{
			{
				Entity:     "companies",
				ForeignKey: "company_id",
				Relation:   "company",
				Project:    map[string]string{"company_tags": "tags"},
			},
		},
	})

	_, err := s.Create("companies", domain.Record{
		"id":   "company-1",
		"name": "Acme Corp",
		"tags": []any{"vip", "priority"},
	})
	require.NoError(t, err)

	contact, err := s.Create("contacts", domain.Record{"first_name": "Ann", "company_id": "company-1"})
	require.NoError(t, err)

	projected, ok := contact["company_tags"].([]any)
	require.True(t, ok)
	projected[0] = "mutated"

	company, err := s.Get("companies", "company-1")
	require.NoError(t, err)
	assert.Equal(t, []any{"vip", "priority"}, company["tags"])
}

func TestDecorateSummaryValueDetached(t *testing.T) {
	s := memory.New()
	s.Define(domain.EntityDefinition{
		Name:        "opportunities",
		LabelFields: []string{"name"},
	})
	s.Define(domain.EntityDefinition{
		Name: "quotes",
		BelongsTo: []domain.BelongsTo{
			{Entity: "opportunities", ForeignKey: "opportunity_id", Relation: "opportunity"},
		},
	})

	_, err := s.Create("opportunities", domain.Record{
		"id":    "opportunity-1",
		"name":  "Fleet renewal",
		"value": map[string]any{"amount": float64(84000), "currency": "EUR"},
	})
	require.NoError(t, err)

	quote, err := s.Create("quotes", domain.Record{"opportunity_id": "opportunity-1"})
	require.NoError(t, err)

	rels := relationships(t, quote)
	summary, ok := rels["opportunity"].(domain.RelationSummary)
	require.True(t, ok)
	value, ok := summary.Value.(map[string]any)
	require.True(t, ok)
	value["amount"] = float64(1)

	opportunity, err := s.Get("opportunities", "opportunity-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"amount": float64(84000), "currency": "EUR"}, opportunity["value"])
}

func TestLabelFallbackChain(t *testing.T) {
	def := domain.EntityDefinition{LabelFields: []string{"display_name"}}

	assert.Equal(t, "Custom", def.Label(domain.Record{"display_name": "Custom", "name": "ignored"}))
	assert.Equal(t, "Named", def.Label(domain.Record{"name": "Named"}))
	assert.Equal(t, "Titled", def.Label(domain.Record{"title": "Titled"}))
	assert.Equal(t, "Subject line", def.Label(domain.Record{"subject": "Subject line"}))
	assert.Equal(t, "Ann Lee", def.Label(domain.Record{"first_name": "Ann", "last_name": "Lee"}))
	assert.Equal(t, "Ann", def.Label(domain.Record{"first_name": "Ann"}))
	assert.Equal(t, "ann@example.org", def.Label(domain.Record{"email": "ann@example.org"}))
	assert.Equal(t, "contact-1", def.Label(domain.Record{"id": "contact-1"}))
}
