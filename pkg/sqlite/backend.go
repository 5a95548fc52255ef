// Package sqlite exposes the SQLite-backed fridge store while keeping the
// table and JSONL details internal.
package sqlite

import (
	"github.com/mesh-intelligence/fridge/internal/sqlite"
	"github.com/mesh-intelligence/fridge/pkg/types"
)

// NewBackend creates a new SQLite store. The store is not attached; call
// Attach with a Config to initialize it.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".fridge/data",
//	})
//	defer store.Detach()
func NewBackend() types.Store {
	return sqlite.NewBackend()
}
