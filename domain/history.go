package domain

// HistoryAction classifies the mutation that produced a history entry.
type HistoryAction string

const (
	ActionCreate HistoryAction = "create"
	ActionUpdate HistoryAction = "update"
	ActionDelete HistoryAction = "delete"
	ActionSeed   HistoryAction = "seed"
)

// HistoryEntry is an immutable snapshot of a record at a specific version.
// Entries are append-only per record id and survive deletion of the record.
type HistoryEntry struct {
	Version   int64         `json:"version"`
	Action    HistoryAction `json:"action"`
	Timestamp string        `json:"timestamp"`
	Data      Record        `json:"data"`
}
