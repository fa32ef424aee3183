package repository

import (
	"context"
	"database/sql"
	"errors"

	"learnquest/internal/database"
	"learnquest/internal/models"
	"learnquest/internal/store"
)

// ChildRepository handles child profile database operations
type ChildRepository struct {
	db *database.DB
}

// NewChildRepository creates a new child repository
func NewChildRepository(db *database.DB) *ChildRepository {
	return &ChildRepository{db: db}
}

const childColumns = `id, name, age, avatar_id, current_level, total_stars`

func scanChild(row interface{ Scan(...interface{}) error }) (*models.Child, error) {
	c := &models.Child{}
	err := row.Scan(&c.ID, &c.Name, &c.Age, &c.AvatarID, &c.CurrentLevel, &c.TotalStars)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetAll retrieves every child profile
func (r *ChildRepository) GetAll(ctx context.Context) ([]models.Child, error) {
	rows, err := r.db.Query(`SELECT ` + childColumns + ` FROM children ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	children := []models.Child{}
	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, err
		}
		children = append(children, *c)
	}
	return children, rows.Err()
}

// GetByID retrieves one child profile
func (r *ChildRepository) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	c, err := scanChild(r.db.QueryRow(`SELECT `+childColumns+` FROM children WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return c, err
}

// Create inserts a new child profile
func (r *ChildRepository) Create(ctx context.Context, child *models.Child) (*models.Child, error) {
	query := `
		INSERT INTO children (name, age, avatar_id, current_level, total_stars)
		VALUES (?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		child.Name, child.Age, child.AvatarID, child.CurrentLevel, child.TotalStars)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Update overwrites an existing child profile
func (r *ChildRepository) Update(ctx context.Context, child *models.Child) (*models.Child, error) {
	query := `
		UPDATE children
		SET name = ?, age = ?, avatar_id = ?, current_level = ?, total_stars = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		child.Name, child.Age, child.AvatarID, child.CurrentLevel, child.TotalStars, child.ID)
	if err != nil {
		return nil, err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, store.ErrNotFound
	}

	return r.GetByID(ctx, child.ID)
}

// Delete removes a child profile
func (r *ChildRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec("DELETE FROM children WHERE id = ?", id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
