package service

import (
	"context"
	"fmt"
	"log"

	"learnquest/internal/models"
	"learnquest/internal/store"
)

// LevelService handles level catalogue business logic
type LevelService struct {
	levels store.LevelStore
}

// NewLevelService creates a new level service
func NewLevelService(levels store.LevelStore) *LevelService {
	return &LevelService{levels: levels}
}

// ListLevels returns the level catalogue in canonical OrderIndex order,
// optionally narrowed to one subject
func (s *LevelService) ListLevels(ctx context.Context, subject models.Subject) ([]models.Level, error) {
	if subject == "" {
		return s.levels.GetAll(ctx)
	}
	if !models.ValidSubject(subject) {
		return nil, fmt.Errorf("unknown subject %q", subject)
	}
	return s.levels.GetBySubject(ctx, subject)
}

// GetLevel returns one level
func (s *LevelService) GetLevel(ctx context.Context, id int64) (*models.Level, error) {
	return s.levels.GetByID(ctx, id)
}

// SetLocked updates a level's lock status
func (s *LevelService) SetLocked(ctx context.Context, id int64, locked bool) (*models.Level, error) {
	level, err := s.levels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	level.IsLocked = locked
	return s.levels.Update(ctx, level)
}

// UnlockEligible unlocks every level whose star requirement the child now
// meets and returns the levels that changed. Store failures on individual
// levels are logged and skipped; unlocking is retried naturally on the
// next completed activity.
func (s *LevelService) UnlockEligible(ctx context.Context, child *models.Child) ([]models.Level, error) {
	levels, err := s.levels.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	unlocked := []models.Level{}
	for _, level := range levels {
		if !level.IsLocked || level.RequiredStars > child.TotalStars {
			continue
		}

		level.IsLocked = false
		updated, err := s.levels.Update(ctx, &level)
		if err != nil {
			log.Printf("Failed to unlock level %d: %v", level.ID, err)
			continue
		}
		unlocked = append(unlocked, *updated)
	}

	return unlocked, nil
}
