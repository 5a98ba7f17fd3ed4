package monitor

import "time"

// Status summarizes service health: per-entity record counts from the store
// and the file-tree database availability.
type Status struct {
	Entities     map[string]int `json:"entities"`
	TotalRecords int            `json:"total_records"`
	FileTree     bool           `json:"filetree"`
	LastCheck    time.Time      `json:"last_check"`
}
