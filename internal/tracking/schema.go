package tracking

const createTableSQL = `
CREATE TABLE IF NOT EXISTS launches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME DEFAULT (datetime('now')),
	args TEXT NOT NULL,
	debug INTEGER NOT NULL,
	exit_code INTEGER NOT NULL,
	exec_time_ms INTEGER NOT NULL
);
`

const cleanupSQL = `DELETE FROM launches WHERE timestamp < datetime('now', ? || ' days');`

const insertSQL = `
INSERT INTO launches (args, debug, exit_code, exec_time_ms)
VALUES (?, ?, ?, ?);
`

const summarySQL = `
SELECT
	COUNT(*) as total_launches,
	COALESCE(SUM(CASE WHEN exit_code != 0 THEN 1 ELSE 0 END), 0) as failures,
	COALESCE(SUM(debug), 0) as debug_launches,
	COALESCE(SUM(exec_time_ms), 0) as total_time_ms
FROM launches;
`

const recentSQL = `
SELECT args, debug, exit_code, exec_time_ms, CAST(timestamp AS TEXT)
FROM launches
ORDER BY id DESC
LIMIT ?;
`

// Summary holds aggregate launch stats.
type Summary struct {
	TotalLaunches int
	Failures      int
	DebugLaunches int
	TotalTimeMs   int64
}

// LaunchRecord holds a single recorded launch.
type LaunchRecord struct {
	Args       string
	Debug      bool
	ExitCode   int
	ExecTimeMs int64
	Timestamp  string
}
