package service

import (
	"context"
	"time"

	"learnquest/internal/analytics"
	"learnquest/internal/models"
	"learnquest/internal/store"
)

// weeklyChartDays is how many calendar days the dashboard chart covers
const weeklyChartDays = 7

// Dashboard aggregates everything the parent view needs for one child
type Dashboard struct {
	Child        models.Child           `json:"child"`
	Window       analytics.Window       `json:"window"`
	Summary      analytics.Summary      `json:"summary"`
	WeeklyChart  []analytics.DayBucket  `json:"weeklyChart"`
	TodayMinutes int                    `json:"todayMinutes"`
	Skills       analytics.SkillRanking `json:"skills"`
	Activities   []models.Activity      `json:"activities"`
}

// DashboardService assembles the parent dashboard from raw activity and
// progress records
type DashboardService struct {
	activities store.ActivityStore
	progress   store.ProgressStore
	children   store.ChildStore
	now        func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(activities store.ActivityStore, progress store.ProgressStore, children store.ChildStore) *DashboardService {
	return &DashboardService{
		activities: activities,
		progress:   progress,
		children:   children,
		now:        time.Now,
	}
}

// Dashboard computes the aggregated view for one child over the given
// time window. The aggregation itself is pure; records are fetched once
// and every metric derives from those transient copies.
func (s *DashboardService) Dashboard(ctx context.Context, childID int64, window analytics.Window) (*Dashboard, error) {
	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activities.GetByChildID(ctx, childID)
	if err != nil {
		return nil, err
	}

	progress, err := s.progress.GetByChildID(ctx, childID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := analytics.FilterByWindow(activities, window, now)
	today := analytics.FilterByWindow(activities, analytics.WindowToday, now)
	todaySeconds := analytics.Summarize(today).TotalTimeSpentSeconds

	return &Dashboard{
		Child:        *child,
		Window:       window,
		Summary:      analytics.Summarize(filtered),
		WeeklyChart:  analytics.BucketByDay(activities, now, weeklyChartDays),
		TodayMinutes: (todaySeconds + 30) / 60,
		Skills:       analytics.RankSkills(progress),
		Activities:   filtered,
	}, nil
}
