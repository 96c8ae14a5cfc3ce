package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository is a database-backed store for the activity catalog.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new catalog Repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// SeedDefaults inserts the built-in catalog if the table is empty. Safe to
// call on every startup.
func (r *Repository) SeedDefaults(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, a := range Seed {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO activities (name, category, duration, mood, icon, description, is_indoor)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.Name, string(a.Category), a.DurationHours, string(a.Mood), a.Icon, a.Description, a.IsIndoor,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to seed activity %q: %w", a.Name, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return inserted, nil
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Category Category
	Mood     Mood
}

// List returns activities in catalog order, optionally filtered by category
// and mood.
func (r *Repository) List(ctx context.Context, f Filter) ([]Activity, error) {
	query := `SELECT id, name, category, duration, mood, icon, description, is_indoor FROM activities`
	var args []any
	switch {
	case f.Category != "" && f.Mood != "":
		query += ` WHERE category = ? AND mood = ?`
		args = append(args, string(f.Category), string(f.Mood))
	case f.Category != "":
		query += ` WHERE category = ?`
		args = append(args, string(f.Category))
	case f.Mood != "":
		query += ` WHERE mood = ?`
		args = append(args, string(f.Mood))
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.DurationHours, &a.Mood, &a.Icon, &a.Description, &a.IsIndoor); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// GetByID fetches a single activity. sql.ErrNoRows passes through when the
// id is unknown.
func (r *Repository) GetByID(ctx context.Context, id int64) (Activity, error) {
	var a Activity
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, duration, mood, icon, description, is_indoor
		FROM activities WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &a.Category, &a.DurationHours, &a.Mood, &a.Icon, &a.Description, &a.IsIndoor)
	if err != nil {
		return Activity{}, err
	}
	return a, nil
}
