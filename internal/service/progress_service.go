package service

import (
	"context"
	"time"

	"learnquest/internal/analytics"
	"learnquest/internal/models"
	"learnquest/internal/store"
)

// ProgressService handles mastery tracking business logic
type ProgressService struct {
	progress store.ProgressStore
	now      func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(progress store.ProgressStore) *ProgressService {
	return &ProgressService{progress: progress, now: time.Now}
}

// ProgressForChild returns a child's mastery records
func (s *ProgressService) ProgressForChild(ctx context.Context, childID int64) ([]models.Progress, error) {
	return s.progress.GetByChildID(ctx, childID)
}

// ProgressForSubject returns a child's mastery records within one subject
func (s *ProgressService) ProgressForSubject(ctx context.Context, childID int64, subject models.Subject) ([]models.Progress, error) {
	return s.progress.GetByChildAndSubject(ctx, childID, subject)
}

// RecordProgress upserts the mastery record for one skill area: the new
// mastery level overwrites the old one, the practice count increments,
// and the practice timestamp is refreshed. A fresh key creates a record
// with PracticeCount 1.
//
// This is a read-then-write sequence with no cross-call atomicity; two
// concurrent upserts for the same key can lose one increment. A single
// child practices one session at a time, so this stays last-writer-wins
// rather than paying for server-side atomicity.
func (s *ProgressService) RecordProgress(ctx context.Context, childID int64, subject models.Subject, skillArea string, masteryLevel float64) (*models.Progress, error) {
	candidate := &models.Progress{
		ChildID:         childID,
		Subject:         subject,
		SkillArea:       skillArea,
		MasteryLevel:    masteryLevel,
		PracticeCount:   1,
		LastPracticedAt: s.now(),
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.progress.GetByChildAndSubject(ctx, childID, subject)
	if err != nil {
		return nil, err
	}

	for _, record := range existing {
		if record.SkillArea != skillArea {
			continue
		}
		record.MasteryLevel = masteryLevel
		record.PracticeCount++
		record.LastPracticedAt = s.now()
		return s.progress.Update(ctx, &record)
	}

	return s.progress.Create(ctx, candidate)
}

// RankSkills returns a child's strongest and weakest skill areas
func (s *ProgressService) RankSkills(ctx context.Context, childID int64) (analytics.SkillRanking, error) {
	records, err := s.progress.GetByChildID(ctx, childID)
	if err != nil {
		return analytics.SkillRanking{}, err
	}
	return analytics.RankSkills(records), nil
}
