// Package repository implements the record store interfaces on top of the
// SQL layer for the self-hosted mode.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"learnquest/internal/database"
	"learnquest/internal/models"
	"learnquest/internal/store"
)

// ActivityRepository handles activity database operations
type ActivityRepository struct {
	db *database.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *database.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = `id, child_id, level_id, completed_at, stars_earned,
       correct_answers, total_questions, time_spent_seconds`

func scanActivity(row interface{ Scan(...interface{}) error }) (*models.Activity, error) {
	a := &models.Activity{}
	err := row.Scan(
		&a.ID,
		&a.ChildID,
		&a.LevelID,
		&a.CompletedAt,
		&a.StarsEarned,
		&a.CorrectAnswers,
		&a.TotalQuestions,
		&a.TimeSpentSeconds,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ActivityRepository) queryActivities(query string, args ...interface{}) ([]models.Activity, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

// GetAll retrieves every activity, most recent first
func (r *ActivityRepository) GetAll(ctx context.Context) ([]models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY completed_at DESC`
	return r.queryActivities(query)
}

// GetByID retrieves one activity
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	a, err := scanActivity(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return a, err
}

// GetByChildID retrieves a child's activities, most recent first
func (r *ActivityRepository) GetByChildID(ctx context.Context, childID int64) ([]models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE child_id = ? ORDER BY completed_at DESC`
	return r.queryActivities(query, childID)
}

// GetByLevelID retrieves the activities recorded against one level
func (r *ActivityRepository) GetByLevelID(ctx context.Context, levelID int64) ([]models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE level_id = ? ORDER BY completed_at DESC`
	return r.queryActivities(query, levelID)
}

// Create inserts a new activity and returns it with its id
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	query := `
		INSERT INTO activities (child_id, level_id, completed_at, stars_earned,
		                        correct_answers, total_questions, time_spent_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		activity.ChildID,
		activity.LevelID,
		activity.CompletedAt,
		activity.StarsEarned,
		activity.CorrectAnswers,
		activity.TotalQuestions,
		activity.TimeSpentSeconds,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Update overwrites an existing activity
func (r *ActivityRepository) Update(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	query := `
		UPDATE activities
		SET child_id = ?, level_id = ?, completed_at = ?, stars_earned = ?,
		    correct_answers = ?, total_questions = ?, time_spent_seconds = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		activity.ChildID,
		activity.LevelID,
		activity.CompletedAt,
		activity.StarsEarned,
		activity.CorrectAnswers,
		activity.TotalQuestions,
		activity.TimeSpentSeconds,
		activity.ID,
	)
	if err != nil {
		return nil, err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, store.ErrNotFound
	}

	return r.GetByID(ctx, activity.ID)
}

// Delete removes an activity
func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec("DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
