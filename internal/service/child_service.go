package service

import (
	"context"
	"fmt"

	"learnquest/internal/models"
	"learnquest/internal/store"
)

// ChildService handles child profile business logic
type ChildService struct {
	children store.ChildStore
}

// NewChildService creates a new child service
func NewChildService(children store.ChildStore) *ChildService {
	return &ChildService{children: children}
}

// ListChildren returns every child profile
func (s *ChildService) ListChildren(ctx context.Context) ([]models.Child, error) {
	return s.children.GetAll(ctx)
}

// GetChild returns one child profile
func (s *ChildService) GetChild(ctx context.Context, id int64) (*models.Child, error) {
	return s.children.GetByID(ctx, id)
}

// CreateChild validates and stores a new child profile. New children start
// at level 1 with no stars.
func (s *ChildService) CreateChild(ctx context.Context, child *models.Child) (*models.Child, error) {
	if child.CurrentLevel == 0 {
		child.CurrentLevel = 1
	}
	if err := child.Validate(); err != nil {
		return nil, err
	}
	return s.children.Create(ctx, child)
}

// UpdateChild validates and overwrites an existing child profile
func (s *ChildService) UpdateChild(ctx context.Context, child *models.Child) (*models.Child, error) {
	if err := child.Validate(); err != nil {
		return nil, err
	}
	return s.children.Update(ctx, child)
}

// DeleteChild removes a child profile
func (s *ChildService) DeleteChild(ctx context.Context, id int64) error {
	return s.children.Delete(ctx, id)
}

// AddStars credits newly earned stars to a child's running total and
// returns the updated profile
func (s *ChildService) AddStars(ctx context.Context, childID int64, stars int) (*models.Child, error) {
	if stars < 0 {
		return nil, fmt.Errorf("cannot add %d stars", stars)
	}

	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return nil, err
	}

	child.TotalStars += stars
	return s.children.Update(ctx, child)
}
