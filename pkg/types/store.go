package types

import "errors"

// Store persists a Refrigerator and the history of changes made to it.
// Callers attach to a backend, load, mutate, save, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrStoreDetached.
	Detach() error

	// Load returns the stored refrigerator, or an empty one if nothing has
	// been saved yet. The configured container cap is applied.
	Load() (*Refrigerator, error)

	// Save replaces the stored refrigerator with r.
	Save(r *Refrigerator) error

	// AppendHistory records entry and returns the generated HistoryID.
	AppendHistory(entry HistoryEntry) (string, error)

	// History returns all entries in the order they were appended.
	History() ([]HistoryEntry, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
