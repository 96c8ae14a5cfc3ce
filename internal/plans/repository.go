// Package plans persists weekend plans. The two day schedules travel as one
// JSON document; title, theme and the long-weekend flag are lifted into
// columns for listing without unmarshalling every plan.
package plans

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"weekend-planner/internal/engine"
)

// Record is a stored weekend plan with its persistence metadata.
type Record struct {
	Plan      engine.WeekendPlan `json:"plan"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Repository is a database-backed store for weekend plans.
type Repository struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewRepository creates a new plan Repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *Repository) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), r.entropy).String()
}

type planDoc struct {
	Saturday engine.DayPlan `json:"saturday"`
	Sunday   engine.DayPlan `json:"sunday"`
}

// Save inserts a new plan and returns it with its assigned ID.
func (r *Repository) Save(ctx context.Context, plan engine.WeekendPlan) (engine.WeekendPlan, error) {
	plan.ID = r.newID()

	data, err := json.Marshal(planDoc{Saturday: plan.Saturday, Sunday: plan.Sunday})
	if err != nil {
		return engine.WeekendPlan{}, fmt.Errorf("failed to marshal plan days: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO plans (id, title, theme, is_long_weekend, plan_data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.Title, string(plan.Theme), plan.IsLongWeekend, data, now, now,
	)
	if err != nil {
		return engine.WeekendPlan{}, fmt.Errorf("failed to insert plan: %w", err)
	}
	return plan, nil
}

// Get retrieves a plan by ID. sql.ErrNoRows passes through for unknown IDs.
func (r *Repository) Get(ctx context.Context, id string) (Record, error) {
	var (
		rec   Record
		theme string
		data  []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, theme, is_long_weekend, plan_data, created_at, updated_at
		FROM plans WHERE id = ?`, id,
	).Scan(&rec.Plan.ID, &rec.Plan.Title, &theme, &rec.Plan.IsLongWeekend, &data, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return Record{}, err
	}

	rec.Plan.Theme = engine.Theme(theme)
	var doc planDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Record{}, fmt.Errorf("failed to unmarshal plan %s: %w", id, err)
	}
	rec.Plan.Saturday = doc.Saturday
	rec.Plan.Sunday = doc.Sunday
	return rec, nil
}

// List returns all stored plans, newest first.
func (r *Repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, theme, is_long_weekend, plan_data, created_at, updated_at
		FROM plans ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec   Record
			theme string
			data  []byte
		)
		if err := rows.Scan(&rec.Plan.ID, &rec.Plan.Title, &theme, &rec.Plan.IsLongWeekend, &data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		rec.Plan.Theme = engine.Theme(theme)
		var doc planDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan %s: %w", rec.Plan.ID, err)
		}
		rec.Plan.Saturday = doc.Saturday
		rec.Plan.Sunday = doc.Sunday
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update overwrites an existing plan. Returns sql.ErrNoRows when the ID is
// unknown.
func (r *Repository) Update(ctx context.Context, plan engine.WeekendPlan) error {
	data, err := json.Marshal(planDoc{Saturday: plan.Saturday, Sunday: plan.Sunday})
	if err != nil {
		return fmt.Errorf("failed to marshal plan days: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE plans SET title = ?, theme = ?, is_long_weekend = ?, plan_data = ?, updated_at = ?
		WHERE id = ?`,
		plan.Title, string(plan.Theme), plan.IsLongWeekend, data, time.Now().UTC(), plan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plan %s: %w", plan.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a plan by ID. Returns sql.ErrNoRows when the ID is unknown.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
