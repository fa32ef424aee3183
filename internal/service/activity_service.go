package service

import (
	"context"
	"log"
	"time"

	"learnquest/internal/analytics"
	"learnquest/internal/models"
	"learnquest/internal/store"
)

// ActivityService records completed level attempts and applies their
// side effects: star totals on the child and level unlocks.
type ActivityService struct {
	activities   store.ActivityStore
	childService *ChildService
	levelService *LevelService
	now          func() time.Time
}

// NewActivityService creates a new activity service
func NewActivityService(activities store.ActivityStore, childService *ChildService, levelService *LevelService) *ActivityService {
	return &ActivityService{
		activities:   activities,
		childService: childService,
		levelService: levelService,
		now:          time.Now,
	}
}

// RecordActivity validates and stores one completed attempt, credits the
// earned stars to the child, and unlocks any levels the child now
// qualifies for. The activity is the source of truth; if the follow-up
// updates fail they are logged and the recorded activity is still
// returned, since totals are recomputed from activities on the next pass.
func (s *ActivityService) RecordActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if activity.CompletedAt.IsZero() {
		activity.CompletedAt = s.now()
	}
	if err := activity.Validate(); err != nil {
		return nil, err
	}

	created, err := s.activities.Create(ctx, activity)
	if err != nil {
		return nil, err
	}

	if created.StarsEarned > 0 {
		child, err := s.childService.AddStars(ctx, created.ChildID, created.StarsEarned)
		if err != nil {
			log.Printf("Failed to credit stars to child %d: %v", created.ChildID, err)
			return created, nil
		}

		if _, err := s.levelService.UnlockEligible(ctx, child); err != nil {
			log.Printf("Failed to unlock levels for child %d: %v", child.ID, err)
		}
	}

	return created, nil
}

// ActivitiesForChild returns a child's activities, most recent first,
// filtered to the requested time window
func (s *ActivityService) ActivitiesForChild(ctx context.Context, childID int64, window analytics.Window) ([]models.Activity, error) {
	activities, err := s.activities.GetByChildID(ctx, childID)
	if err != nil {
		return nil, err
	}
	return analytics.FilterByWindow(activities, window, s.now()), nil
}

// DeleteActivity removes one recorded attempt
func (s *ActivityService) DeleteActivity(ctx context.Context, id int64) error {
	return s.activities.Delete(ctx, id)
}
