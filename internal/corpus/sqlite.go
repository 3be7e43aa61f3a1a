package corpus

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the ephemeral SQLite cache of the corpus. The JSONL file is
// the canonical store; the database is rebuilt from it and only ever
// queried.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates the corpus cache at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			title TEXT,
			countries_json TEXT NOT NULL,
			subjareas TEXT
		);
	`
	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the cache and reloads it from the canonical
// JSONL file. Returns the number of records loaded.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	records, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return 0, fmt.Errorf("clearing records table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO records (id, title, countries_json, subjareas)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		countriesJSON, err := json.Marshal(rec.Countries)
		if err != nil {
			return 0, fmt.Errorf("encoding countries for %s: %w", rec.ID, err)
		}
		if _, err := stmt.Exec(rec.ID, rec.Title, string(countriesJSON), rec.SubjectAreas); err != nil {
			return 0, fmt.Errorf("inserting %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return len(records), nil
}

// AllRecords returns every record in the cache, ordered by id.
func (d *DB) AllRecords() ([]Record, error) {
	rows, err := d.db.Query(`
		SELECT id, title, countries_json, subjareas
		FROM records ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var countriesJSON string
		var title, subjareas sql.NullString
		if err := rows.Scan(&rec.ID, &title, &countriesJSON, &subjareas); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if err := json.Unmarshal([]byte(countriesJSON), &rec.Countries); err != nil {
			return nil, fmt.Errorf("decoding countries for %s: %w", rec.ID, err)
		}
		rec.Title = title.String
		rec.SubjectAreas = subjareas.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return records, nil
}

// CountRecords returns the number of records in the cache.
func (d *DB) CountRecords() (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}
