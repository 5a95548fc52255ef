package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/fridge/pkg/types"
)

// dbFileName is the SQLite database created in DataDir. It is rebuilt from
// the JSONL files on every Attach.
const dbFileName = "fridge.db"

// Backend implements types.Store using SQLite as the query engine and JSONL
// files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, recreates the SQLite schema and loads
// the JSONL files into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	// The database is a cache of the JSONL files; start from a fresh schema.
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1)

	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := initJSONLFiles(dataDir); err != nil {
		db.Close()
		return err
	}
	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	config.DataDir = dataDir
	b.config = config
	b.db = db
	b.attached = true
	return nil
}

// Detach releases all resources held by the backend.
// After Detach, all operations return ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		return err
	}
	return nil
}

// Load rebuilds the stored refrigerator. An empty store yields an empty
// refrigerator. Items whose container is missing are ignored.
func (b *Backend) Load() (*types.Refrigerator, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	snap, err := b.readSnapshot()
	if err != nil {
		return nil, err
	}
	r, err := types.Restore(snap, b.config.Limits())
	if err != nil {
		return nil, fmt.Errorf("load refrigerator: %w", err)
	}
	return r, nil
}

func (b *Backend) readSnapshot() (types.Snapshot, error) {
	var snap types.Snapshot

	floorRows, err := b.db.Query("SELECT floor_number, description FROM floors ORDER BY floor_number")
	if err != nil {
		return snap, fmt.Errorf("querying floors: %w", err)
	}
	defer floorRows.Close()
	floorIndex := make(map[int]int)
	for floorRows.Next() {
		var f types.FloorSnapshot
		if err := floorRows.Scan(&f.Number, &f.Description); err != nil {
			return snap, fmt.Errorf("scanning floor: %w", err)
		}
		f.Containers = []types.ContainerSnapshot{}
		floorIndex[f.Number] = len(snap.Floors)
		snap.Floors = append(snap.Floors, f)
	}
	if err := floorRows.Err(); err != nil {
		return snap, fmt.Errorf("iterating floors: %w", err)
	}

	type containerKey struct{ floor, container int }
	containerIndex := make(map[containerKey]int)

	containerRows, err := b.db.Query("SELECT floor_number, container_number FROM containers ORDER BY floor_number, ordinal")
	if err != nil {
		return snap, fmt.Errorf("querying containers: %w", err)
	}
	defer containerRows.Close()
	for containerRows.Next() {
		var floor, number int
		if err := containerRows.Scan(&floor, &number); err != nil {
			return snap, fmt.Errorf("scanning container: %w", err)
		}
		fi, ok := floorIndex[floor]
		if !ok {
			continue
		}
		containerIndex[containerKey{floor, number}] = len(snap.Floors[fi].Containers)
		snap.Floors[fi].Containers = append(snap.Floors[fi].Containers, types.ContainerSnapshot{
			Number: number,
			Items:  []types.ItemSnapshot{},
		})
	}
	if err := containerRows.Err(); err != nil {
		return snap, fmt.Errorf("iterating containers: %w", err)
	}

	itemRows, err := b.db.Query("SELECT floor_number, container_number, position, item_id, description FROM items ORDER BY floor_number, container_number, position")
	if err != nil {
		return snap, fmt.Errorf("querying items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var floor, container int
		var is types.ItemSnapshot
		if err := itemRows.Scan(&floor, &container, &is.Position, &is.Item.ID, &is.Item.Description); err != nil {
			return snap, fmt.Errorf("scanning item: %w", err)
		}
		ci, ok := containerIndex[containerKey{floor, container}]
		if !ok {
			continue
		}
		c := &snap.Floors[floorIndex[floor]].Containers[ci]
		c.Items = append(c.Items, is)
	}
	if err := itemRows.Err(); err != nil {
		return snap, fmt.Errorf("iterating items: %w", err)
	}

	return snap, nil
}

// Save replaces the stored refrigerator with r and persists the JSONL files.
// Each file is replaced atomically, but the set of files is not: a failure
// partway can leave floors.jsonl newer than items.jsonl.
func (b *Backend) Save(r *types.Refrigerator) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	if err := b.writeSnapshot(r.Snapshot()); err != nil {
		return err
	}
	for _, t := range snapshotTables {
		if err := persistTable(b.db, b.config.DataDir, t); err != nil {
			return fmt.Errorf("persist %s: %w", t.file, err)
		}
	}
	return nil
}

func (b *Backend) writeSnapshot(snap types.Snapshot) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"items", "containers", "floors"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, f := range snap.Floors {
		if _, err := tx.Exec("INSERT INTO floors (floor_number, description) VALUES (?, ?)", f.Number, f.Description); err != nil {
			return fmt.Errorf("inserting floor %d: %w", f.Number, err)
		}
		for ordinal, c := range f.Containers {
			if _, err := tx.Exec("INSERT INTO containers (floor_number, container_number, ordinal) VALUES (?, ?, ?)",
				f.Number, c.Number, ordinal); err != nil {
				return fmt.Errorf("inserting container %d on floor %d: %w", c.Number, f.Number, err)
			}
			for _, is := range c.Items {
				if _, err := tx.Exec("INSERT INTO items (floor_number, container_number, position, item_id, description) VALUES (?, ?, ?, ?, ?)",
					f.Number, c.Number, is.Position, is.Item.ID, is.Item.Description); err != nil {
					return fmt.Errorf("inserting item at %d/%d/%d: %w", f.Number, c.Number, is.Position, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

// AppendHistory records entry with a new UUID v7 and persists history.jsonl.
// A zero CreatedAt is set to the current time.
func (b *Backend) AppendHistory(entry types.HistoryEntry) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}

	entry.HistoryID = generateUUID()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	var itemID, itemDesc any
	if entry.Item != nil {
		itemID, itemDesc = entry.Item.ID, entry.Item.Description
	}
	_, err := b.db.Exec(insertSQL(historyTable),
		entry.HistoryID,
		entry.Operation,
		nullableInt(entry.Floor),
		nullableInt(entry.Container),
		nullableInt(entry.Position),
		itemID,
		itemDesc,
		entry.Description,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("inserting history: %w", err)
	}
	if err := persistTable(b.db, b.config.DataDir, historyTable); err != nil {
		return "", fmt.Errorf("persist %s: %w", historyTable.file, err)
	}
	return entry.HistoryID, nil
}

// History returns every history entry, oldest first.
func (b *Backend) History() ([]types.HistoryEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(`SELECT history_id, operation, floor_number, container_number, position,
		item_id, item_description, description, created_at FROM history ORDER BY history_id`)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	entries := []types.HistoryEntry{}
	for rows.Next() {
		var (
			e                          types.HistoryEntry
			floor, container, position sql.NullInt64
			itemID                     sql.NullInt64
			itemDesc, desc             sql.NullString
			createdAt                  string
		)
		if err := rows.Scan(&e.HistoryID, &e.Operation, &floor, &container, &position,
			&itemID, &itemDesc, &desc, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		e.Floor = intPtr(floor)
		e.Container = intPtr(container)
		e.Position = intPtr(position)
		if itemID.Valid {
			e.Item = &types.Item{ID: int(itemID.Int64), Description: itemDesc.String}
		}
		e.Description = desc.String
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing history created_at: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// generateUUID generates a new UUID v7 for history entry IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
