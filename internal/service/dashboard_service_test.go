package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"learnquest/internal/analytics"
	"learnquest/internal/models"
	"learnquest/internal/store"
	"learnquest/internal/store/memory"
)

func TestDashboard(t *testing.T) {
	mem := memory.New()
	stores := mem.Stores()
	ctx := context.Background()

	child, err := stores.Children.Create(ctx, &models.Child{Name: "Leo", Age: 7, CurrentLevel: 2})
	if err != nil {
		t.Fatalf("Create child error = %v", err)
	}

	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	// 100% today, 50% three days ago, plus one old record outside the week
	activities := []models.Activity{
		{ChildID: child.ID, LevelID: 1, CompletedAt: now.Add(-1 * time.Hour), StarsEarned: 3, CorrectAnswers: 10, TotalQuestions: 10, TimeSpentSeconds: 400},
		{ChildID: child.ID, LevelID: 1, CompletedAt: now.Add(-3 * 24 * time.Hour), StarsEarned: 1, CorrectAnswers: 5, TotalQuestions: 10, TimeSpentSeconds: 200},
		{ChildID: child.ID, LevelID: 2, CompletedAt: now.Add(-40 * 24 * time.Hour), StarsEarned: 2, CorrectAnswers: 8, TotalQuestions: 10, TimeSpentSeconds: 600},
	}
	for i := range activities {
		if _, err := stores.Activities.Create(ctx, &activities[i]); err != nil {
			t.Fatalf("Create activity error = %v", err)
		}
	}

	for skill, mastery := range map[string]float64{"addition": 90, "subtraction": 40} {
		if _, err := stores.Progress.Create(ctx, &models.Progress{
			ChildID: child.ID, Subject: models.SubjectMath, SkillArea: skill,
			MasteryLevel: mastery, PracticeCount: 1, LastPracticedAt: now,
		}); err != nil {
			t.Fatalf("Create progress error = %v", err)
		}
	}

	svc := NewDashboardService(stores.Activities, stores.Progress, stores.Children)
	svc.now = func() time.Time { return now }

	dash, err := svc.Dashboard(ctx, child.ID, analytics.WindowWeek)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if dash.Child.ID != child.ID {
		t.Errorf("Child.ID = %d, want %d", dash.Child.ID, child.ID)
	}
	if dash.Window != analytics.WindowWeek {
		t.Errorf("Window = %s, want week", dash.Window)
	}

	// Weekly summary covers the two recent activities only
	if dash.Summary.Count != 2 {
		t.Errorf("Summary.Count = %d, want 2", dash.Summary.Count)
	}
	if dash.Summary.TotalStars != 4 {
		t.Errorf("Summary.TotalStars = %d, want 4", dash.Summary.TotalStars)
	}
	if dash.Summary.TotalTimeSpentSeconds != 600 {
		t.Errorf("Summary.TotalTimeSpentSeconds = %d, want 600", dash.Summary.TotalTimeSpentSeconds)
	}
	if dash.Summary.AverageAccuracyPercent != 75 {
		t.Errorf("Summary.AverageAccuracyPercent = %d, want 75", dash.Summary.AverageAccuracyPercent)
	}

	// 400 seconds today rounds to 7 minutes
	if dash.TodayMinutes != 7 {
		t.Errorf("TodayMinutes = %d, want 7", dash.TodayMinutes)
	}

	if len(dash.WeeklyChart) != weeklyChartDays {
		t.Fatalf("WeeklyChart has %d buckets, want %d", len(dash.WeeklyChart), weeklyChartDays)
	}
	last := dash.WeeklyChart[weeklyChartDays-1]
	if last.Stars != 3 || last.TimeSpentSeconds != 400 {
		t.Errorf("today's bucket = %+v, want 3 stars and 400 seconds", last)
	}

	if len(dash.Skills.Strengths) == 0 || dash.Skills.Strengths[0].SkillArea != "addition" {
		t.Errorf("Skills.Strengths = %+v, want addition first", dash.Skills.Strengths)
	}
	if len(dash.Skills.Weaknesses) == 0 || dash.Skills.Weaknesses[0].SkillArea != "subtraction" {
		t.Errorf("Skills.Weaknesses = %+v, want subtraction first", dash.Skills.Weaknesses)
	}

	if len(dash.Activities) != 2 {
		t.Errorf("Activities has %d entries, want 2", len(dash.Activities))
	}
}

func TestDashboardEmptyChild(t *testing.T) {
	mem := memory.New()
	stores := mem.Stores()
	ctx := context.Background()

	child, err := stores.Children.Create(ctx, &models.Child{Name: "Nora", Age: 5, CurrentLevel: 1})
	if err != nil {
		t.Fatalf("Create child error = %v", err)
	}

	svc := NewDashboardService(stores.Activities, stores.Progress, stores.Children)

	dash, err := svc.Dashboard(ctx, child.ID, analytics.WindowAll)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if dash.Summary != (analytics.Summary{}) {
		t.Errorf("Summary = %+v, want zero value", dash.Summary)
	}
	if dash.TodayMinutes != 0 {
		t.Errorf("TodayMinutes = %d, want 0", dash.TodayMinutes)
	}
	if len(dash.WeeklyChart) != weeklyChartDays {
		t.Errorf("WeeklyChart has %d buckets, want %d even with no activity", len(dash.WeeklyChart), weeklyChartDays)
	}
	if len(dash.Skills.Strengths) != 0 || len(dash.Skills.Weaknesses) != 0 {
		t.Errorf("Skills = %+v, want empty rankings", dash.Skills)
	}
}

func TestDashboardUnknownChild(t *testing.T) {
	stores := memory.New().Stores()
	svc := NewDashboardService(stores.Activities, stores.Progress, stores.Children)

	if _, err := svc.Dashboard(context.Background(), 42, analytics.WindowWeek); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Dashboard() error = %v, want store.ErrNotFound", err)
	}
}
