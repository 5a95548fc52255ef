// Package sqlite implements the SQLite storage backend for the fridge.
// SQLite is the query engine; one JSONL file per table is the source of
// truth and is reloaded on every Attach.
package sqlite

// Schema DDL for all tables. Floors and containers keep their creation
// order: floors by number, containers by ordinal within the floor. Integer
// columns accept only integer values; the loader drops records that hold
// anything else.
const (
	createFloors = `CREATE TABLE floors (
    floor_number INTEGER PRIMARY KEY CHECK (typeof(floor_number) = 'integer'),
    description TEXT NOT NULL
);`

	createContainers = `CREATE TABLE containers (
    floor_number INTEGER NOT NULL CHECK (typeof(floor_number) = 'integer'),
    container_number INTEGER NOT NULL CHECK (typeof(container_number) = 'integer'),
    ordinal INTEGER NOT NULL CHECK (typeof(ordinal) = 'integer'),
    PRIMARY KEY (floor_number, container_number),
    FOREIGN KEY (floor_number) REFERENCES floors(floor_number)
);`

	createItems = `CREATE TABLE items (
    floor_number INTEGER NOT NULL CHECK (typeof(floor_number) = 'integer'),
    container_number INTEGER NOT NULL CHECK (typeof(container_number) = 'integer'),
    position INTEGER NOT NULL CHECK (typeof(position) = 'integer' AND position >= 0 AND position < 4),
    item_id INTEGER NOT NULL CHECK (typeof(item_id) = 'integer'),
    description TEXT NOT NULL,
    PRIMARY KEY (floor_number, container_number, position),
    FOREIGN KEY (floor_number, container_number) REFERENCES containers(floor_number, container_number)
);`

	createHistory = `CREATE TABLE history (
    history_id TEXT PRIMARY KEY,
    operation TEXT NOT NULL,
    floor_number INTEGER CHECK (floor_number IS NULL OR typeof(floor_number) = 'integer'),
    container_number INTEGER CHECK (container_number IS NULL OR typeof(container_number) = 'integer'),
    position INTEGER CHECK (position IS NULL OR typeof(position) = 'integer'),
    item_id INTEGER CHECK (item_id IS NULL OR typeof(item_id) = 'integer'),
    item_description TEXT,
    description TEXT,
    created_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxContainersOrdinal = `CREATE INDEX idx_containers_ordinal ON containers(floor_number, ordinal);`
	idxHistoryCreated    = `CREATE INDEX idx_history_created ON history(created_at);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createFloors,
	createContainers,
	createItems,
	createHistory,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxContainersOrdinal,
	idxHistoryCreated,
}
