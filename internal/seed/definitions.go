// Package seed registers the CRM entity definitions and loads the
// deterministic demo dataset the front-end boots against.
package seed

import (
	"github.com/relatecrm/backend/domain"
	"github.com/relatecrm/backend/repository"
)

// Definitions returns the entity configurations for the CRM collections.
func Definitions() []domain.EntityDefinition {
	return []domain.EntityDefinition{
		{
			Name:         "companies",
			Aliases:      []string{"company"},
			SearchFields: []string{"name", "industry", "city"},
			FilterFields: map[string]string{"industry": "industry", "size": "size"},
			LabelFields:  []string{"name"},
			BelongsTo: []domain.BelongsTo{
				{Entity: "companies", ForeignKey: "parent_company_id", Relation: "parent_company"},
			},
			HasMany: []domain.HasMany{
				{Entity: "companies", ForeignKey: "parent_company_id", Relation: "subsidiaries"},
				{Entity: "contacts", ForeignKey: "company_id", Relation: "contacts"},
				{Entity: "opportunities", ForeignKey: "company_id", Relation: "opportunities"},
			},
		},
		{
			Name:         "contacts",
			Aliases:      []string{"contact", "people"},
			SearchFields: []string{"first_name", "last_name", "email", "company_name"},
			FilterFields: map[string]string{"status": "status", "company": "company_id"},
			BelongsTo: []domain.BelongsTo{
				{
					Entity:     "companies",
					ForeignKey: "company_id",
					Relation:   "company",
					Project:    map[string]string{"company_name": "name"},
					MatchBy:    &domain.MatchBy{SourceField: "company_name", TargetField: "name"},
				},
			},
			HasMany: []domain.HasMany{
				{Entity: "tasks", ForeignKey: "contact_id", Relation: "tasks"},
				{Entity: "activities", ForeignKey: "contact_id", Relation: "activities"},
			},
		},
		{
			Name:         "leads",
			Aliases:      []string{"lead"},
			SearchFields: []string{"name", "company_name", "email"},
			FilterFields: map[string]string{"status": "status", "source": "source"},
			LabelFields:  []string{"name"},
			BelongsTo: []domain.BelongsTo{
				{
					Entity:     "companies",
					ForeignKey: "company_id",
					Relation:   "company",
					MatchBy:    &domain.MatchBy{SourceField: "company_name", TargetField: "name"},
				},
			},
		},
		{
			Name:         "opportunities",
			Aliases:      []string{"opportunity", "deals"},
			SearchFields: []string{"name"},
			FilterFields: map[string]string{"stage": "stage", "company": "company_id"},
			LabelFields:  []string{"name"},
			BelongsTo: []domain.BelongsTo{
				{
					Entity:     "companies",
					ForeignKey: "company_id",
					Relation:   "company",
					Project:    map[string]string{"company_name": "name"},
				},
				{
					Entity:     "contacts",
					ForeignKey: "contact_id",
					Relation:   "contact",
				},
			},
		},
		{
			Name:         "tasks",
			Aliases:      []string{"task", "todos"},
			SearchFields: []string{"title", "description"},
			FilterFields: map[string]string{"status": "status", "priority": "priority"},
			LabelFields:  []string{"title"},
			BelongsTo: []domain.BelongsTo{
				{Entity: "contacts", ForeignKey: "contact_id", Relation: "contact"},
				{Entity: "opportunities", ForeignKey: "opportunity_id", Relation: "opportunity"},
			},
		},
		{
			Name:         "activities",
			Aliases:      []string{"activity"},
			SearchFields: []string{"subject", "notes"},
			FilterFields: map[string]string{"type": "type"},
			LabelFields:  []string{"subject"},
			BelongsTo: []domain.BelongsTo{
				{Entity: "contacts", ForeignKey: "contact_id", Relation: "contact"},
				{Entity: "companies", ForeignKey: "company_id", Relation: "company"},
			},
		},
	}
}

// Load defines all CRM entities on the store and, when requested, seeds the
// demo dataset.
func Load(store repository.EntityStore, withData bool) error {
	for _, def := range Definitions() {
		store.Define(def)
	}
	if !withData {
		return nil
	}
	return store.Seed(DemoData())
}
