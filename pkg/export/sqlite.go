package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteExporter appends assignments to a SQLite database, one row per
// examinee, tagged with the run id.
type SQLiteExporter struct {
	Path string
}

const assignmentsSchema = `CREATE TABLE IF NOT EXISTS assignments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    item_index INTEGER NOT NULL,
    day INTEGER NOT NULL,
    round INTEGER NOT NULL,
    time TEXT,
    center TEXT,
    lab TEXT,
    link TEXT,
    record TEXT
);`

func (e *SQLiteExporter) Name() string { return "sqlite" }

func (e *SQLiteExporter) Export(ctx context.Context, b Batch) (err error) {
	if err := os.MkdirAll(filepath.Dir(e.Path), 0o755); err != nil {
		return err
	}
	db, err := sql.Open("sqlite", e.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if _, err := db.ExecContext(ctx, assignmentsSchema); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO assignments (run_id, item_index, day, round, time, center, lab, link, record)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer func() { _ = stmt.Close() }()
	for _, g := range b.Groups {
		for _, en := range g.Entries {
			rec, err := json.Marshal(recordMap(b.Header, en.Record.Values))
			if err != nil {
				_ = tx.Rollback()
				return err
			}
			if _, err := stmt.ExecContext(ctx, b.RunID, en.Index, g.Day, g.Round, g.Label,
				en.Unit.Center, en.Unit.Name, en.Unit.Link, string(rec)); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("insert item %d: %w", en.Index, err)
			}
		}
	}
	return tx.Commit()
}
