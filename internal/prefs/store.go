package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"modebar/internal/mode"
	"modebar/internal/preset"
)

// ErrUnknownGeometry rejects favorites that no add mode could draw.
var ErrUnknownGeometry = errors.New("unknown geometry")

const schema = `
CREATE TABLE IF NOT EXISTS favorites (
	position  INTEGER PRIMARY KEY AUTOINCREMENT,
	preset_id TEXT NOT NULL,
	geom      TEXT NOT NULL,
	UNIQUE (preset_id, geom)
);`

// Store keeps the favorite preset list in a local sqlite database.
// Insertion order is display order.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the favorites database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	// modernc.org/sqlite registers the "sqlite" driver name.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open favorites db: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create favorites table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// List returns favorites in the order they were added.
func (s *Store) List(ctx context.Context) ([]preset.Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT preset_id, geom FROM favorites ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()
	var out []preset.Favorite
	for rows.Next() {
		var f preset.Favorite
		if err := rows.Scan(&f.PresetID, &f.Geom); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Add appends f unless it is already a favorite. It reports whether a row
// was inserted.
func (s *Store) Add(ctx context.Context, f preset.Favorite) (bool, error) {
	if _, ok := mode.ParseGeometry(f.Geom); !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownGeometry, f.Geom)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO favorites (preset_id, geom) VALUES (?, ?)`, f.PresetID, f.Geom)
	if err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Remove deletes f and reports whether it was present.
func (s *Store) Remove(ctx context.Context, f preset.Favorite) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE preset_id = ? AND geom = ?`, f.PresetID, f.Geom)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Toggle removes f if present, otherwise adds it.
func (s *Store) Toggle(ctx context.Context, f preset.Favorite) (bool, error) {
	removed, err := s.Remove(ctx, f)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}
	return s.Add(ctx, f)
}
