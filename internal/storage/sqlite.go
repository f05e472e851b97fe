// Package storage provides SQLite-based persistence for levels and their
// edit history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/sector-shift/internal/maps"
)

// Store manages the SQLite database connection for level persistence.
type Store struct {
	db *sql.DB
}

// LevelInfo describes a stored level without decoding it.
type LevelInfo struct {
	Name      string
	Width     int
	Height    int
	UpdatedAt time.Time
}

// Edit is one recorded editing operation on a level.
type Edit struct {
	ID        int64
	Level     string
	Brush     string
	Shape     string
	Cells     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			name TEXT PRIMARY KEY,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS edits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			brush TEXT NOT NULL,
			shape TEXT NOT NULL,
			cells INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_edits_level ON edits(level, id DESC);
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

// SaveLevel validates a level and inserts or replaces it by name.
func (s *Store) SaveLevel(l *maps.Level) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("storage: cannot save level: %w", err)
	}

	data, err := maps.Encode(l)
	if err != nil {
		return fmt.Errorf("storage: cannot save level: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO levels (name, width, height, data, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   width = excluded.width,
		   height = excluded.height,
		   data = excluded.data,
		   updated_at = CURRENT_TIMESTAMP`,
		l.Name, l.Width(), l.Height(), string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %s: %w", l.Name, err)
	}
	return nil
}

// LoadLevel retrieves a level by name.
// Returns nil without an error if no level has that name.
func (s *Store) LoadLevel(name string) (*maps.Level, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM levels WHERE name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level %s: %w", name, err)
	}

	l, err := maps.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("storage: level %s is corrupt: %w", name, err)
	}
	return l, nil
}

// ListLevels returns every stored level ordered by name.
func (s *Store) ListLevels() ([]LevelInfo, error) {
	rows, err := s.db.Query(
		`SELECT name, width, height, updated_at
		 FROM levels
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var infos []LevelInfo
	for rows.Next() {
		var info LevelInfo
		var updatedAt any
		if err := rows.Scan(&info.Name, &info.Width, &info.Height, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteLevel removes a level and its edit history.
// Returns false if the level did not exist.
func (s *Store) DeleteLevel(name string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM levels WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete level %s: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM edits WHERE level = ?", name); err != nil {
		return false, fmt.Errorf("storage: cannot delete edits of %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit delete: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// RecordEdit appends an edit to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordEdit(e Edit) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO edits (level, brush, shape, cells) VALUES (?, ?, ?, ?)",
		e.Level, e.Brush, e.Shape, e.Cells,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record edit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentEdits retrieves the latest edits, newest first.
// An empty level name returns edits of every level.
func (s *Store) RecentEdits(level string, limit int) ([]Edit, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level, brush, shape, cells, created_at
		 FROM edits
		 WHERE ? = '' OR level = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query edits: %w", err)
	}
	defer rows.Close()

	var edits []Edit
	for rows.Next() {
		var e Edit
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Brush, &e.Shape, &e.Cells, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		edits = append(edits, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return edits, nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
