// Package sqlite writes the took log to a SQLite database for ad-hoc SQL
// analysis. The JSON store stays the source of truth; the database is a
// derived artifact rebuilt on every `took export`.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/joaohenriqueluz/took/internal/domain"
)

// DB wraps a SQLite connection with migrations applied.
type DB struct {
	db *sql.DB
}

// Open creates or opens the export database at path and migrates its
// schema. Missing parent directories are created.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create export dir: %w", err)
		}
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			name            TEXT PRIMARY KEY,
			status          TEXT NOT NULL,
			created_at      INTEGER NOT NULL,
			last_updated_at INTEGER NOT NULL,
			total_seconds   INTEGER NOT NULL
		)`,

		// One row per interval, in log order. end_time and seconds are
		// NULL while the interval is still open.
		`CREATE TABLE IF NOT EXISTS intervals (
			task_name  TEXT NOT NULL REFERENCES tasks(name) ON DELETE CASCADE,
			position   INTEGER NOT NULL,
			start_time INTEGER NOT NULL,
			end_time   INTEGER,
			seconds    INTEGER,
			PRIMARY KEY (task_name, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_intervals_start ON intervals(start_time)`,

		// Day buckets, precomputed so reports are a plain GROUP BY away.
		`CREATE TABLE IF NOT EXISTS day_totals (
			date      TEXT NOT NULL,
			task_name TEXT NOT NULL,
			seconds   INTEGER NOT NULL,
			PRIMARY KEY (date, task_name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_day_totals_date ON day_totals(date)`,

		`CREATE TABLE IF NOT EXISTS export_info (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Export Writer ──────────────────────────────────────────────────────────

// Reset drops all exported rows so a rerun replaces the previous export
// instead of merging with it. export_info survives until SetInfo
// overwrites it.
func (d *DB) Reset() error {
	// Delete order respects the intervals → tasks foreign key.
	for _, table := range []string{"day_totals", "intervals", "tasks"} {
		if _, err := d.db.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// WriteTask stores one task with its intervals and per-day totals in a
// single transaction.
func (d *DB) WriteTask(snap domain.Snapshot, intervals []domain.Interval, days []domain.DayTotal) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO tasks (name, status, created_at, last_updated_at, total_seconds)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			status=excluded.status,
			created_at=excluded.created_at,
			last_updated_at=excluded.last_updated_at,
			total_seconds=excluded.total_seconds`,
		snap.Name, string(snap.Status), snap.CreatedAt.Unix(),
		snap.LastUpdatedAt.Unix(), snap.TotalSeconds,
	); err != nil {
		return fmt.Errorf("insert task %q: %w", snap.Name, err)
	}

	for i, iv := range intervals {
		var end, secs sql.NullInt64
		if iv.End != nil {
			end = sql.NullInt64{Int64: iv.End.Unix(), Valid: true}
			secs = sql.NullInt64{Int64: iv.Seconds(*iv.End), Valid: true}
		}
		if _, err := tx.Exec(
			`INSERT INTO intervals (task_name, position, start_time, end_time, seconds)
			 VALUES (?, ?, ?, ?, ?)`,
			snap.Name, i, iv.Start.Unix(), end, secs,
		); err != nil {
			return fmt.Errorf("insert interval %d of %q: %w", i, snap.Name, err)
		}
	}

	for _, day := range days {
		if _, err := tx.Exec(
			`INSERT INTO day_totals (date, task_name, seconds) VALUES (?, ?, ?)`,
			day.Date, snap.Name, day.Seconds,
		); err != nil {
			return fmt.Errorf("insert day %s of %q: %w", day.Date, snap.Name, err)
		}
	}

	return tx.Commit()
}

// ─── Export Info ────────────────────────────────────────────────────────────

// SetInfo stores a key-value pair describing the export run.
func (d *DB) SetInfo(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO export_info (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetInfo retrieves a value from export_info. A missing key is "".
func (d *DB) GetInfo(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM export_info WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}
