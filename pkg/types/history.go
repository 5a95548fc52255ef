package types

import "time"

// History operation names, one per mutating Refrigerator operation.
const (
	OpCreateFloor     = "create_floor"
	OpCreateContainer = "create_container"
	OpAddItem         = "add_item"
	OpRemoveItem      = "remove_item"
	OpClearContainer  = "clear_container"
)

// HistoryEntry records one successful mutation of a stored refrigerator.
// Fields that do not apply to the operation are nil.
type HistoryEntry struct {
	// HistoryID is a UUID v7, generated when the entry is appended.
	HistoryID string `json:"history_id"`

	// Operation is one of the Op constants.
	Operation string `json:"operation"`

	Floor       *int   `json:"floor,omitempty"`
	Container   *int   `json:"container,omitempty"`
	Position    *int   `json:"position,omitempty"`
	Item        *Item  `json:"item,omitempty"`
	Description string `json:"description,omitempty"`

	// CreatedAt is the time the entry was appended.
	CreatedAt time.Time `json:"created_at"`
}
