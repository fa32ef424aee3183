package repository

import (
	"context"
	"database/sql"
	"errors"

	"learnquest/internal/database"
	"learnquest/internal/models"
	"learnquest/internal/store"
)

// LevelRepository handles level catalogue database operations
type LevelRepository struct {
	db *database.DB
}

// NewLevelRepository creates a new level repository
func NewLevelRepository(db *database.DB) *LevelRepository {
	return &LevelRepository{db: db}
}

const levelColumns = `id, name, subject, difficulty, type, order_index, is_locked, required_stars`

func scanLevel(row interface{ Scan(...interface{}) error }) (*models.Level, error) {
	l := &models.Level{}
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Subject,
		&l.Difficulty,
		&l.Type,
		&l.OrderIndex,
		&l.IsLocked,
		&l.RequiredStars,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LevelRepository) queryLevels(query string, args ...interface{}) ([]models.Level, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := []models.Level{}
	for rows.Next() {
		l, err := scanLevel(rows)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *l)
	}
	return levels, rows.Err()
}

// GetAll retrieves the full level catalogue in canonical order
func (r *LevelRepository) GetAll(ctx context.Context) ([]models.Level, error) {
	return r.queryLevels(`SELECT ` + levelColumns + ` FROM levels ORDER BY order_index`)
}

// GetByID retrieves one level
func (r *LevelRepository) GetByID(ctx context.Context, id int64) (*models.Level, error) {
	l, err := scanLevel(r.db.QueryRow(`SELECT `+levelColumns+` FROM levels WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return l, err
}

// GetBySubject retrieves a subject's levels in canonical order
func (r *LevelRepository) GetBySubject(ctx context.Context, subject models.Subject) ([]models.Level, error) {
	query := `SELECT ` + levelColumns + ` FROM levels WHERE subject = ? ORDER BY order_index`
	return r.queryLevels(query, string(subject))
}

// Create inserts a new level into the catalogue
func (r *LevelRepository) Create(ctx context.Context, level *models.Level) (*models.Level, error) {
	query := `
		INSERT INTO levels (name, subject, difficulty, type, order_index, is_locked, required_stars)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		level.Name,
		string(level.Subject),
		level.Difficulty,
		level.Type,
		level.OrderIndex,
		level.IsLocked,
		level.RequiredStars,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Update overwrites an existing level
func (r *LevelRepository) Update(ctx context.Context, level *models.Level) (*models.Level, error) {
	query := `
		UPDATE levels
		SET name = ?, subject = ?, difficulty = ?, type = ?,
		    order_index = ?, is_locked = ?, required_stars = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		level.Name,
		string(level.Subject),
		level.Difficulty,
		level.Type,
		level.OrderIndex,
		level.IsLocked,
		level.RequiredStars,
		level.ID,
	)
	if err != nil {
		return nil, err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, store.ErrNotFound
	}

	return r.GetByID(ctx, level.ID)
}
