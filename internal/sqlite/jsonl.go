package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONL file names in DataDir, one per table.
const (
	floorsJSONL     = "floors.jsonl"
	containersJSONL = "containers.jsonl"
	itemsJSONL      = "items.jsonl"
	historyJSONL    = "history.jsonl"
)

// jsonlTable binds a JSONL file to its SQLite table. Record fields are named
// after the columns. The order matters: tables referencing others come after
// them.
type jsonlTable struct {
	file    string
	table   string
	columns []string
	orderBy string
}

var jsonlTables = []jsonlTable{
	{floorsJSONL, "floors", []string{"floor_number", "description"}, "floor_number"},
	{containersJSONL, "containers", []string{"floor_number", "container_number", "ordinal"}, "floor_number, ordinal"},
	{itemsJSONL, "items", []string{"floor_number", "container_number", "position", "item_id", "description"}, "floor_number, container_number, position"},
	{historyJSONL, "history", []string{"history_id", "operation", "floor_number", "container_number", "position", "item_id", "item_description", "description", "created_at"}, "history_id"},
}

// snapshotTables are the tables rewritten by Save.
var snapshotTables = jsonlTables[:3]

// historyTable is the append-only table written by AppendHistory.
var historyTable = jsonlTables[3]

// readJSONL reads a JSONL file and returns each non-empty, parseable line as
// a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically replaces path with records using the temp-file,
// fsync, rename pattern. A failed write leaves the previous file in place.
func writeJSONL(path string, records []json.RawMessage) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err = w.Write(rec); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		if err = w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// initJSONLFiles creates an empty JSONL file for every table that has none.
func initJSONLFiles(dataDir string) error {
	for _, t := range jsonlTables {
		path := filepath.Join(dataDir, t.file)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("creating %s: %w", t.file, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", t.file, err)
		}
	}
	return nil
}
