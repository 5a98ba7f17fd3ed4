package repository

import (
	"github.com/relatecrm/backend/domain"
)

// GetOptions tunes single-record reads.
type GetOptions struct {
	// Version, when set, requests the exact historical snapshot with that
	// version instead of the live record.
	Version *int64
}

// GetOption mutates GetOptions.
type GetOption func(*GetOptions)

// WithVersion requests a point-in-time read of the given version.
func WithVersion(version int64) GetOption {
	return func(o *GetOptions) {
		o.Version = &version
	}
}

// EntityStore is the single source of truth for all CRM entities. Every
// record crossing the interface is deep-cloned in both directions, so the
// caller owns what it receives and the store never aliases caller memory.
type EntityStore interface {
	// Define registers or replaces an entity configuration. Records stored
	// under an existing name are kept.
	Define(def domain.EntityDefinition)

	// Seed bulk-inserts initial records through the create pipeline,
	// letting pre-existing ids and timestamps pass through.
	Seed(data map[string][]domain.Record) error

	Create(entity string, payload domain.Record) (domain.Record, error)

	// Get returns the live record, falling back to the latest history
	// snapshot for deleted ids. A nil record with nil error means not found.
	Get(entity, id string, opts ...GetOption) (domain.Record, error)

	// Update shallow-merges payload over the live record. Nil record with
	// nil error when no live record exists; deleted records never resurrect.
	Update(entity, id string, payload domain.Record) (domain.Record, error)

	// Delete removes the live record, appending a tombstone history entry.
	// False when no live record exists.
	Delete(entity, id string) (bool, error)

	List(entity string, opts domain.ListOptions) (domain.ListResult, error)

	// History returns all snapshots for an id, ascending by version.
	History(entity, id string) ([]domain.HistoryEntry, error)

	// ExportState snapshots every live record across all entities.
	ExportState() (map[string][]domain.Record, error)

	// Entities lists the registered canonical entity names.
	Entities() []string
}
