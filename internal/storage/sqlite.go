// Package storage persists headless run results in SQLite, using the
// pure-Go modernc.org/sqlite driver to avoid CGO. The recorded checksums
// are what let two machines prove they simulated the exact same thing.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry is one recorded headless run.
type RunEntry struct {
	ID        int64
	Scene     string
	Ticks     int
	Impacts   int
	Checksum  uint64
	CreatedAt time.Time
}

// Open creates or opens the database at the given path, expanding a
// leading ~ and creating parent directories as needed.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			impacts INTEGER NOT NULL,
			checksum TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scene ON runs(scene, id DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its row ID. The checksum is
// stored as hex text because SQLite integers are signed 64-bit.
func (s *Store) SaveRun(sceneName string, ticks, impacts int, checksum uint64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (scene, ticks, impacts, checksum) VALUES (?, ?, ?, ?)",
		sceneName, ticks, impacts, fmt.Sprintf("%016x", checksum),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns the most recent runs for a scene, newest first. An
// empty scene name returns runs across all scenes.
func (s *Store) RecentRuns(sceneName string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scene, ticks, impacts, checksum, created_at
		 FROM runs WHERE (? = '' OR scene = ?)
		 ORDER BY id DESC LIMIT ?`,
		sceneName, sceneName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		entry, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// LastChecksum returns the checksum of the most recent run of a scene at
// the given tick count. ok is false when no such run exists.
func (s *Store) LastChecksum(sceneName string, ticks int) (checksum uint64, ok bool, err error) {
	var hexSum string
	err = s.db.QueryRow(
		"SELECT checksum FROM runs WHERE scene = ? AND ticks = ? ORDER BY id DESC LIMIT 1",
		sceneName, ticks,
	).Scan(&hexSum)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query checksum: %w", err)
	}

	if _, err := fmt.Sscanf(hexSum, "%016x", &checksum); err != nil {
		return 0, false, fmt.Errorf("storage: malformed checksum %q: %w", hexSum, err)
	}
	return checksum, true, nil
}

// ClearRuns deletes all runs for the given scene.
func (s *Store) ClearRuns(sceneName string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE scene = ?", sceneName); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRun(rows *sql.Rows) (RunEntry, error) {
	var e RunEntry
	var hexSum string
	var createdAt any
	if err := rows.Scan(&e.ID, &e.Scene, &e.Ticks, &e.Impacts, &hexSum, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	if _, err := fmt.Sscanf(hexSum, "%016x", &e.Checksum); err != nil {
		return e, fmt.Errorf("storage: malformed checksum %q: %w", hexSum, err)
	}

	// The driver may hand back DATETIME as time.Time or string.
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
