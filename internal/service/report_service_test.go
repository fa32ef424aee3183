package service

import (
	"strings"
	"testing"

	"learnquest/internal/analytics"
	"learnquest/internal/models"
	"learnquest/internal/store/memory"
)

func TestRenderWeeklyReport(t *testing.T) {
	dash := &Dashboard{
		Child:  models.Child{ID: 1, Name: "Maya"},
		Window: analytics.WindowWeek,
		Summary: analytics.Summary{
			TotalTimeSpentSeconds:  1800,
			TotalStars:             9,
			AverageAccuracyPercent: 82,
			Count:                  4,
		},
		Skills: analytics.SkillRanking{
			Strengths:  []models.Progress{{SkillArea: "addition", MasteryLevel: 90}},
			Weaknesses: []models.Progress{{SkillArea: "subtraction", MasteryLevel: 40}},
		},
	}

	htmlBody, textBody := renderWeeklyReport(dash)

	for _, want := range []string{"Maya", "9", "30", "82%", "addition (90%)", "subtraction (40%)"} {
		if !strings.Contains(textBody, want) {
			t.Errorf("text body missing %q", want)
		}
		if !strings.Contains(htmlBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestReportServiceDisabledWithoutFromAddress(t *testing.T) {
	stores := memory.New().Stores()
	dashboard := NewDashboardService(stores.Activities, stores.Progress, stores.Children)

	svc, err := NewReportService("eu-west-1", "", "LearnQuest", dashboard)
	if err != nil {
		t.Fatalf("NewReportService() error = %v", err)
	}
	if svc.IsEnabled() {
		t.Error("report service should be disabled when no from address is configured")
	}
}
