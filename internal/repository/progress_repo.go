package repository

import (
	"context"
	"database/sql"
	"errors"

	"learnquest/internal/database"
	"learnquest/internal/models"
	"learnquest/internal/store"
)

// ProgressRepository handles mastery record database operations.
// The progress table carries a unique constraint on
// (child_id, subject, skill_area); a duplicate insert surfaces as a
// validation error rather than a driver error.
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const progressColumns = `id, child_id, subject, skill_area, mastery_level,
       practice_count, last_practiced_at`

func scanProgress(row interface{ Scan(...interface{}) error }) (*models.Progress, error) {
	p := &models.Progress{}
	err := row.Scan(
		&p.ID,
		&p.ChildID,
		&p.Subject,
		&p.SkillArea,
		&p.MasteryLevel,
		&p.PracticeCount,
		&p.LastPracticedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProgressRepository) queryProgress(query string, args ...interface{}) ([]models.Progress, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Progress{}
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *p)
	}
	return records, rows.Err()
}

// GetAll retrieves every progress record
func (r *ProgressRepository) GetAll(ctx context.Context) ([]models.Progress, error) {
	return r.queryProgress(`SELECT ` + progressColumns + ` FROM progress ORDER BY id`)
}

// GetByChildID retrieves a child's progress records
func (r *ProgressRepository) GetByChildID(ctx context.Context, childID int64) ([]models.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE child_id = ? ORDER BY id`
	return r.queryProgress(query, childID)
}

// GetByChildAndSubject retrieves a child's progress within one subject
func (r *ProgressRepository) GetByChildAndSubject(ctx context.Context, childID int64, subject models.Subject) ([]models.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE child_id = ? AND subject = ? ORDER BY id`
	return r.queryProgress(query, childID, string(subject))
}

func (r *ProgressRepository) getByID(ctx context.Context, id int64) (*models.Progress, error) {
	p, err := scanProgress(r.db.QueryRow(`SELECT `+progressColumns+` FROM progress WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return p, err
}

// Create inserts a new progress record
func (r *ProgressRepository) Create(ctx context.Context, progress *models.Progress) (*models.Progress, error) {
	query := `
		INSERT INTO progress (child_id, subject, skill_area, mastery_level,
		                      practice_count, last_practiced_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		progress.ChildID,
		string(progress.Subject),
		progress.SkillArea,
		progress.MasteryLevel,
		progress.PracticeCount,
		progress.LastPracticedAt,
	)
	if err != nil {
		return nil, &store.ValidationError{Fields: []store.FieldError{
			{Field: "skillArea", Message: err.Error()},
		}}
	}

	return r.getByID(ctx, id)
}

// Update overwrites an existing progress record
func (r *ProgressRepository) Update(ctx context.Context, progress *models.Progress) (*models.Progress, error) {
	query := `
		UPDATE progress
		SET mastery_level = ?, practice_count = ?, last_practiced_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		progress.MasteryLevel,
		progress.PracticeCount,
		progress.LastPracticedAt,
		progress.ID,
	)
	if err != nil {
		return nil, err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, store.ErrNotFound
	}

	return r.getByID(ctx, progress.ID)
}
