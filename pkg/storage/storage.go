// Package storage mirrors the flat-file collection into a local SQLite
// database for ad-hoc querying and reporting.
package storage

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/zocchihedron/dicetrack/pkg/dice"
)

type DB struct {
	sql *sql.DB
}

func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS dice (
  code  TEXT PRIMARY KEY,
  color TEXT NOT NULL,
  size  TEXT NOT NULL,
  sides INTEGER NOT NULL,
  faces INTEGER NOT NULL,
  flags INTEGER NOT NULL CHECK (flags BETWEEN 0 AND 31),
  count INTEGER NOT NULL CHECK (count >= 0)
);
CREATE INDEX IF NOT EXISTS idx_dice_color ON dice(color);
CREATE INDEX IF NOT EXISTS idx_dice_size ON dice(size);
	`); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// Sync replaces the mirrored rows with the given collection.
func (d *DB) Sync(ctx context.Context, collection []*dice.Die) (err error) {
	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM dice"); err != nil {
		return err
	}
	for _, die := range collection {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO dice(code, color, size, sides, faces, flags, count) VALUES(?,?,?,?,?,?,?)",
			die.Code, die.Color, die.Size, die.Sides, die.Faces, die.FlagMask(), die.Count)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Stat is one row of the per-size roll-up.
type Stat struct {
	Size     string
	DieTypes int
	DieCount int
}

// GetStats reports die types and total dice per size.
func (d *DB) GetStats(ctx context.Context) ([]Stat, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT size, COUNT(*), SUM(count) FROM dice GROUP BY size ORDER BY size")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []Stat
	for rows.Next() {
		var s Stat
		if err := rows.Scan(&s.Size, &s.DieTypes, &s.DieCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// ListCodes returns every mirrored code with its count.
func (d *DB) ListCodes(ctx context.Context) (map[string]int, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT code, count FROM dice ORDER BY code")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var code string
		var count int
		if err := rows.Scan(&code, &count); err != nil {
			return nil, err
		}
		counts[code] = count
	}
	return counts, rows.Err()
}
