// Package history persists which code objects the user has picked, so
// past uploads can be reviewed. It records user choices only — scan
// results are never cached.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
)

// Pick is one recorded selection.
type Pick struct {
	Path      string          `json:"Path"`
	Toolchain model.Toolchain `json:"Toolchain"`
	PickedAt  time.Time       `json:"PickedAt"`
}

// Store is a sqlite-backed pick log.
type Store struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS picks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	path TEXT NOT NULL,
	toolchain TEXT NOT NULL,
	picked_at INTEGER NOT NULL
)`

// DefaultPath returns the pick log location
// (e.g. ~/.local/share/v5sym/history.db on Linux).
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "v5sym", "history.db"), nil
}

// Open opens (creating if needed) the pick log at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a pick.
func (s *Store) Record(obj model.Object) error {
	_, err := s.db.Exec(
		"INSERT INTO picks (path, toolchain, picked_at) VALUES (?, ?, ?)",
		obj.Path, string(obj.Toolchain), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record pick: %w", err)
	}
	return nil
}

// List returns picks newest first, up to limit (0 = unlimited).
func (s *Store) List(limit int) ([]Pick, error) {
	q := "SELECT path, toolchain, picked_at FROM picks ORDER BY picked_at DESC, id DESC"
	args := []interface{}{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	defer rows.Close()

	var picks []Pick
	for rows.Next() {
		var p Pick
		var toolchain string
		var pickedAt int64
		if err := rows.Scan(&p.Path, &toolchain, &pickedAt); err != nil {
			return nil, fmt.Errorf("scan pick: %w", err)
		}
		p.Toolchain = model.Toolchain(toolchain)
		p.PickedAt = time.UnixMilli(pickedAt)
		picks = append(picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	return picks, nil
}

// Clear deletes all recorded picks.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM picks"); err != nil {
		return fmt.Errorf("clear picks: %w", err)
	}
	return nil
}
