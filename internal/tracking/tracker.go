package tracking

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const defaultRetentionDays = 90

// Tracker records browser launches in SQLite.
type Tracker struct {
	db            *sql.DB
	retentionDays int
}

// NewTracker opens or creates a SQLite database for tracking.
func NewTracker(dbPath string) (*Tracker, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &Tracker{db: db, retentionDays: defaultRetentionDays}, nil
}

// SetRetention sets how many days of history are kept. Non-positive
// values restore the default.
func (t *Tracker) SetRetention(days int) {
	if days <= 0 {
		days = defaultRetentionDays
	}
	t.retentionDays = days
}

// Record stores one launch.
func (t *Tracker) Record(args string, debug bool, exitCode int, execTimeMs int64) error {
	if _, err := t.db.Exec(insertSQL, args, boolToInt(debug), exitCode, execTimeMs); err != nil {
		return fmt.Errorf("record: %w", err)
	}

	if _, err := t.db.Exec(cleanupSQL, fmt.Sprintf("-%d", t.retentionDays)); err != nil {
		return fmt.Errorf("prune history: %w", err)
	}

	return nil
}

// GetSummary returns aggregate launch stats.
func (t *Tracker) GetSummary() (*Summary, error) {
	var s Summary
	err := t.db.QueryRow(summarySQL).Scan(&s.TotalLaunches, &s.Failures, &s.DebugLaunches, &s.TotalTimeMs)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	return &s, nil
}

// GetRecent returns the last n launches, most recent first.
func (t *Tracker) GetRecent(n int) ([]LaunchRecord, error) {
	rows, err := t.db.Query(recentSQL, n)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	defer rows.Close()

	var records []LaunchRecord
	for rows.Next() {
		var r LaunchRecord
		var debug int
		if err := rows.Scan(&r.Args, &debug, &r.ExitCode, &r.ExecTimeMs, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("recent scan: %w", err)
		}
		r.Debug = debug != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the database connection.
func (t *Tracker) Close() error {
	return t.db.Close()
}

// DBPath resolves the history database path.
func DBPath(configPath string) string {
	if configPath != "" {
		return configPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "carbonyl", "history.db")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
