// Package postgres provides a PostgreSQL-backed preference store for
// deployments that already run a database server. Selected via
// PREFS_DRIVER=postgres.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
)

type preferenceRepository struct {
	DB *sql.DB
}

var _ domain.PreferenceRepository = (*preferenceRepository)(nil)

// NewPreferenceRepository returns a preference store over db.
func NewPreferenceRepository(db *sql.DB) domain.PreferenceRepository {
	return &preferenceRepository{DB: db}
}

// EnsureSchema creates the view_preferences table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS view_preferences (
			profile       TEXT PRIMARY KEY,
			sort_field    TEXT NOT NULL,
			sort_dir      TEXT NOT NULL,
			filter_status TEXT NOT NULL,
			group_by      TEXT NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create view_preferences: %w", err)
	}
	return nil
}

func (r *preferenceRepository) Load(ctx context.Context, profile string) (domain.Preferences, error) {
	query := `
		SELECT sort_field, sort_dir, filter_status, group_by
		FROM view_preferences
		WHERE profile = $1
	`
	var p domain.Preferences
	err := r.DB.QueryRowContext(ctx, query, profile).Scan(
		&p.SortField, &p.SortDir, &p.FilterStatus, &p.GroupBy,
	)
	if err != nil {
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
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (profile) DO UPDATE SET
			sort_field = EXCLUDED.sort_field,
			sort_dir = EXCLUDED.sort_dir,
			filter_status = EXCLUDED.filter_status,
			group_by = EXCLUDED.group_by,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query,
		profile, string(prefs.SortField), string(prefs.SortDir),
		string(prefs.FilterStatus), string(prefs.GroupBy), time.Now().UTC(),
	)
	return err
}
