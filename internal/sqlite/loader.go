package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// loadAllJSONL reads each JSONL file from dataDir and inserts its records
// into the matching SQLite table. Loading is transactional: all tables load
// or the database stays empty. Malformed lines and records that violate a
// constraint are skipped. Unknown fields are ignored.
func loadAllJSONL(db *sql.DB, dataDir string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range jsonlTables {
		records, err := readJSONL(filepath.Join(dataDir, t.file))
		if err != nil {
			return fmt.Errorf("reading %s: %w", t.file, err)
		}
		if len(records) == 0 {
			continue
		}
		if err := insertRecords(tx, t, records); err != nil {
			return fmt.Errorf("loading %s into %s: %w", t.file, t.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// insertRecords inserts parsed JSONL records into t. Only the columns of t
// are extracted; missing fields become NULL.
func insertRecords(tx *sql.Tx, t jsonlTable, records []json.RawMessage) error {
	stmt, err := tx.Prepare(insertSQL(t))
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", t.table, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var obj map[string]any
		if err := json.Unmarshal(rec, &obj); err != nil {
			continue
		}
		args := make([]any, len(t.columns))
		for i, col := range t.columns {
			args[i] = columnValue(obj[col])
		}
		if _, err := stmt.Exec(args...); err != nil {
			// Constraint violations (duplicate keys, positions out of range)
			// drop the record, not the load.
			continue
		}
	}
	return nil
}

// columnValue converts a decoded JSON value for binding. JSON numbers decode
// as float64; whole numbers are bound as int64 so they satisfy the integer
// column checks, while fractional values stay float64 and are rejected.
func columnValue(v any) any {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || math.Abs(f) > maxExactFloatInt {
		return v
	}
	return int64(f)
}

// maxExactFloatInt is the largest magnitude at which every integer is
// exactly representable as a float64.
const maxExactFloatInt = 1 << 53

func insertSQL(t jsonlTable) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.table, strings.Join(t.columns, ", "), placeholders)
}

// persistTable writes every row of t to its JSONL file, one JSON object per
// row keyed by column name.
func persistTable(db *sql.DB, dataDir string, t jsonlTable) error {
	rows, err := db.Query(fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(t.columns, ", "), t.table, t.orderBy))
	if err != nil {
		return fmt.Errorf("querying %s: %w", t.table, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		values := make([]any, len(t.columns))
		ptrs := make([]any, len(t.columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("scanning %s: %w", t.table, err)
		}
		obj := make(map[string]any, len(t.columns))
		for i, col := range t.columns {
			if b, ok := values[i].([]byte); ok {
				values[i] = string(b)
			}
			obj[col] = values[i]
		}
		rec, err := json.Marshal(obj)
		if err != nil {
			return fmt.Errorf("encoding %s row: %w", t.table, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating %s: %w", t.table, err)
	}

	return writeJSONL(filepath.Join(dataDir, t.file), records)
}
