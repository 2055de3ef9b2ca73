// Package sqlite provides a SQLite-backed preference store using the pure
// Go driver (no CGO).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"eventboard/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS view_preferences (
	profile       TEXT PRIMARY KEY,
	sort_field    TEXT NOT NULL,
	sort_dir      TEXT NOT NULL,
	filter_status TEXT NOT NULL,
	group_by      TEXT NOT NULL,
	updated_at    TIMESTAMP NOT NULL
)`

type preferenceRepository struct {
	db *sql.DB
}

var _ domain.PreferenceRepository = (*preferenceRepository)(nil)

// Open opens (creating if needed) the preference database at path and
// ensures the schema exists.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

// NewPreferenceRepository returns a preference store over db. The schema
// must already exist (see Open).
func NewPreferenceRepository(db *sql.DB) domain.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Load(ctx context.Context, profile string) (domain.Preferences, error) {
	query := `
		SELECT sort_field, sort_dir, filter_status, group_by
		FROM view_preferences
		WHERE profile = ?
	`
	var p domain.Preferences
	err := r.db.QueryRowContext(ctx, query, profile).Scan(
		&p.SortField, &p.SortDir, &p.FilterStatus, &p.GroupBy,
	)
	if err != nil {
		// A missing record means "use defaults", not failure.
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultPreferences(), nil
		}
		return domain.Preferences{}, err
	}
	return p.Normalize(), nil
}

func (r *preferenceRepository) Save(ctx context.Context, profile string, prefs domain.Preferences) error {
	query := `
		INSERT INTO view_preferences (profile, sort_field, sort_dir, filter_status, group_by, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (profile) DO UPDATE SET
			sort_field = excluded.sort_field,
			sort_dir = excluded.sort_dir,
			filter_status = excluded.filter_status,
			group_by = excluded.group_by,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		profile, string(prefs.SortField), string(prefs.SortDir),
		string(prefs.FilterStatus), string(prefs.GroupBy), time.Now().UTC(),
	)
	return err
}
