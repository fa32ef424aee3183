package service

import (
	"context"
	"testing"
	"time"

	"learnquest/internal/analytics"
	"learnquest/internal/models"
	"learnquest/internal/store/memory"
)

// newActivityFixture wires an activity service over a fresh memory store
// with one child and a locked level waiting at 5 stars
func newActivityFixture(t *testing.T) (*ActivityService, *ChildService, *LevelService, *memory.Store, models.Child, models.Level) {
	t.Helper()
	mem := memory.New()
	stores := mem.Stores()

	childService := NewChildService(stores.Children)
	levelService := NewLevelService(stores.Levels)
	svc := NewActivityService(stores.Activities, childService, levelService)

	child, err := childService.CreateChild(context.Background(), &models.Child{Name: "Maya", Age: 6})
	if err != nil {
		t.Fatalf("CreateChild() error = %v", err)
	}

	locked := mem.SeedLevel(models.Level{
		Name:          "Addition to 20",
		Subject:       models.SubjectMath,
		Difficulty:    models.DifficultyMedium,
		OrderIndex:    2,
		IsLocked:      true,
		RequiredStars: 5,
	})

	return svc, childService, levelService, mem, *child, locked
}

func TestRecordActivityCreditsStars(t *testing.T) {
	svc, childService, _, _, child, _ := newActivityFixture(t)
	ctx := context.Background()

	created, err := svc.RecordActivity(ctx, &models.Activity{
		ChildID:          child.ID,
		LevelID:          1,
		StarsEarned:      3,
		CorrectAnswers:   9,
		TotalQuestions:   10,
		TimeSpentSeconds: 300,
	})
	if err != nil {
		t.Fatalf("RecordActivity() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("RecordActivity() did not assign an id")
	}

	updated, err := childService.GetChild(ctx, child.ID)
	if err != nil {
		t.Fatalf("GetChild() error = %v", err)
	}
	if updated.TotalStars != 3 {
		t.Errorf("TotalStars = %d, want 3", updated.TotalStars)
	}
}

func TestRecordActivityStampsCompletedAt(t *testing.T) {
	svc, _, _, _, child, _ := newActivityFixture(t)
	fixed := time.Date(2026, 3, 10, 16, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.RecordActivity(context.Background(), &models.Activity{
		ChildID:        child.ID,
		LevelID:        1,
		CorrectAnswers: 5,
		TotalQuestions: 10,
	})
	if err != nil {
		t.Fatalf("RecordActivity() error = %v", err)
	}
	if !created.CompletedAt.Equal(fixed) {
		t.Errorf("CompletedAt = %v, want %v", created.CompletedAt, fixed)
	}

	// An explicit timestamp is kept as sent
	explicit := fixed.Add(-2 * time.Hour)
	created, err = svc.RecordActivity(context.Background(), &models.Activity{
		ChildID:        child.ID,
		LevelID:        1,
		CompletedAt:    explicit,
		CorrectAnswers: 5,
		TotalQuestions: 10,
	})
	if err != nil {
		t.Fatalf("RecordActivity() error = %v", err)
	}
	if !created.CompletedAt.Equal(explicit) {
		t.Errorf("CompletedAt = %v, want %v", created.CompletedAt, explicit)
	}
}

func TestRecordActivityUnlocksEligibleLevels(t *testing.T) {
	svc, _, levelService, _, child, locked := newActivityFixture(t)
	ctx := context.Background()

	// Two 3-star sessions push the child past the 5-star requirement
	for i := 0; i < 2; i++ {
		if _, err := svc.RecordActivity(ctx, &models.Activity{
			ChildID:        child.ID,
			LevelID:        1,
			StarsEarned:    3,
			CorrectAnswers: 10,
			TotalQuestions: 10,
		}); err != nil {
			t.Fatalf("RecordActivity() error = %v", err)
		}
	}

	level, err := levelService.GetLevel(ctx, locked.ID)
	if err != nil {
		t.Fatalf("GetLevel() error = %v", err)
	}
	if level.IsLocked {
		t.Error("level is still locked after the star requirement was met")
	}
}

func TestRecordActivityRejectsInvalidRecords(t *testing.T) {
	svc, _, _, _, child, _ := newActivityFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		activity models.Activity
	}{
		{"missing child", models.Activity{LevelID: 1, TotalQuestions: 10}},
		{"missing level", models.Activity{ChildID: child.ID, TotalQuestions: 10}},
		{"too many stars", models.Activity{ChildID: child.ID, LevelID: 1, StarsEarned: 4}},
		{"correct exceeds total", models.Activity{ChildID: child.ID, LevelID: 1, CorrectAnswers: 11, TotalQuestions: 10}},
		{"negative time", models.Activity{ChildID: child.ID, LevelID: 1, TimeSpentSeconds: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.RecordActivity(ctx, &tt.activity); err == nil {
				t.Error("RecordActivity() accepted an invalid record")
			}
		})
	}
}

func TestActivitiesForChildWindow(t *testing.T) {
	svc, _, _, _, child, _ := newActivityFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	timestamps := []time.Time{
		now.Add(-2 * time.Hour),       // today
		now.Add(-3 * 24 * time.Hour),  // this week
		now.Add(-20 * 24 * time.Hour), // this month
		now.Add(-90 * 24 * time.Hour), // older
	}
	for _, ts := range timestamps {
		if _, err := svc.RecordActivity(ctx, &models.Activity{
			ChildID:        child.ID,
			LevelID:        1,
			CompletedAt:    ts,
			CorrectAnswers: 5,
			TotalQuestions: 10,
		}); err != nil {
			t.Fatalf("RecordActivity() error = %v", err)
		}
	}

	tests := []struct {
		window  analytics.Window
		wantLen int
	}{
		{analytics.WindowToday, 1},
		{analytics.WindowWeek, 2},
		{analytics.WindowMonth, 3},
		{analytics.WindowAll, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			got, err := svc.ActivitiesForChild(ctx, child.ID, tt.window)
			if err != nil {
				t.Fatalf("ActivitiesForChild() error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("ActivitiesForChild(%s) returned %d activities, want %d", tt.window, len(got), tt.wantLen)
			}
		})
	}
}

func TestDeleteActivity(t *testing.T) {
	svc, _, _, _, child, _ := newActivityFixture(t)
	ctx := context.Background()

	created, err := svc.RecordActivity(ctx, &models.Activity{
		ChildID:        child.ID,
		LevelID:        1,
		CorrectAnswers: 5,
		TotalQuestions: 10,
	})
	if err != nil {
		t.Fatalf("RecordActivity() error = %v", err)
	}

	if err := svc.DeleteActivity(ctx, created.ID); err != nil {
		t.Fatalf("DeleteActivity() error = %v", err)
	}

	got, err := svc.ActivitiesForChild(ctx, child.ID, analytics.WindowAll)
	if err != nil {
		t.Fatalf("ActivitiesForChild() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ActivitiesForChild() returned %d activities after delete, want 0", len(got))
	}
}
