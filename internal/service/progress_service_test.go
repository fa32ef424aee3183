package service

import (
	"context"
	"testing"
	"time"

	"learnquest/internal/models"
	"learnquest/internal/store/memory"
)

func TestRecordProgressCreatesFreshRecord(t *testing.T) {
	mem := memory.New()
	svc := NewProgressService(mem.Stores().Progress)
	practiced := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return practiced }

	got, err := svc.RecordProgress(context.Background(), 1, models.SubjectMath, "addition", 75)
	if err != nil {
		t.Fatalf("RecordProgress() error = %v", err)
	}

	if got.PracticeCount != 1 {
		t.Errorf("PracticeCount = %d, want 1", got.PracticeCount)
	}
	if got.MasteryLevel != 75 {
		t.Errorf("MasteryLevel = %v, want 75", got.MasteryLevel)
	}
	if !got.LastPracticedAt.Equal(practiced) {
		t.Errorf("LastPracticedAt = %v, want %v", got.LastPracticedAt, practiced)
	}
}

func TestRecordProgressUpsertsExistingSkill(t *testing.T) {
	mem := memory.New()
	svc := NewProgressService(mem.Stores().Progress)

	first := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }
	if _, err := svc.RecordProgress(context.Background(), 1, models.SubjectMath, "addition", 60); err != nil {
		t.Fatalf("first RecordProgress() error = %v", err)
	}

	second := first.Add(24 * time.Hour)
	svc.now = func() time.Time { return second }
	got, err := svc.RecordProgress(context.Background(), 1, models.SubjectMath, "addition", 80)
	if err != nil {
		t.Fatalf("second RecordProgress() error = %v", err)
	}

	if got.PracticeCount != 2 {
		t.Errorf("PracticeCount = %d, want 2", got.PracticeCount)
	}
	if got.MasteryLevel != 80 {
		t.Errorf("MasteryLevel = %v, want 80 (new value overwrites old)", got.MasteryLevel)
	}
	if !got.LastPracticedAt.Equal(second) {
		t.Errorf("LastPracticedAt = %v, want %v", got.LastPracticedAt, second)
	}

	// Still exactly one record for the key
	records, err := svc.ProgressForChild(context.Background(), 1)
	if err != nil {
		t.Fatalf("ProgressForChild() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("ProgressForChild() returned %d records, want 1", len(records))
	}
}

func TestRecordProgressSeparatesKeys(t *testing.T) {
	mem := memory.New()
	svc := NewProgressService(mem.Stores().Progress)
	ctx := context.Background()

	// Same skill name under a different subject or child is a distinct record
	if _, err := svc.RecordProgress(ctx, 1, models.SubjectMath, "counting", 50); err != nil {
		t.Fatalf("RecordProgress() error = %v", err)
	}
	if _, err := svc.RecordProgress(ctx, 1, models.SubjectReading, "counting", 60); err != nil {
		t.Fatalf("RecordProgress() error = %v", err)
	}
	if _, err := svc.RecordProgress(ctx, 2, models.SubjectMath, "counting", 70); err != nil {
		t.Fatalf("RecordProgress() error = %v", err)
	}

	records, err := svc.ProgressForChild(ctx, 1)
	if err != nil {
		t.Fatalf("ProgressForChild() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("ProgressForChild(1) returned %d records, want 2", len(records))
	}
	for _, r := range records {
		if r.PracticeCount != 1 {
			t.Errorf("record %d/%s: PracticeCount = %d, want 1", r.ChildID, r.Subject, r.PracticeCount)
		}
	}
}

func TestRecordProgressValidation(t *testing.T) {
	svc := NewProgressService(memory.New().Stores().Progress)
	ctx := context.Background()

	tests := []struct {
		name      string
		childID   int64
		subject   models.Subject
		skillArea string
		mastery   float64
	}{
		{"missing child", 0, models.SubjectMath, "addition", 50},
		{"unknown subject", 1, "science", "addition", 50},
		{"blank skill area", 1, models.SubjectMath, "  ", 50},
		{"mastery above 100", 1, models.SubjectMath, "addition", 101},
		{"negative mastery", 1, models.SubjectMath, "addition", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.RecordProgress(ctx, tt.childID, tt.subject, tt.skillArea, tt.mastery); err == nil {
				t.Error("RecordProgress() accepted an invalid record")
			}
		})
	}
}

func TestRankSkillsForChild(t *testing.T) {
	mem := memory.New()
	svc := NewProgressService(mem.Stores().Progress)
	ctx := context.Background()

	skills := map[string]float64{
		"addition":    90,
		"subtraction": 40,
		"counting":    70,
		"shapes":      85,
	}
	for skill, mastery := range skills {
		if _, err := svc.RecordProgress(ctx, 1, models.SubjectMath, skill, mastery); err != nil {
			t.Fatalf("RecordProgress(%s) error = %v", skill, err)
		}
	}

	ranking, err := svc.RankSkills(ctx, 1)
	if err != nil {
		t.Fatalf("RankSkills() error = %v", err)
	}

	if len(ranking.Strengths) != 3 {
		t.Fatalf("Strengths has %d entries, want 3", len(ranking.Strengths))
	}
	if ranking.Strengths[0].SkillArea != "addition" {
		t.Errorf("top strength = %s, want addition", ranking.Strengths[0].SkillArea)
	}
	if len(ranking.Weaknesses) != 3 {
		t.Fatalf("Weaknesses has %d entries, want 3", len(ranking.Weaknesses))
	}
	if ranking.Weaknesses[0].SkillArea != "subtraction" {
		t.Errorf("top weakness = %s, want subtraction", ranking.Weaknesses[0].SkillArea)
	}
}

func TestProgressForSubject(t *testing.T) {
	mem := memory.New()
	svc := NewProgressService(mem.Stores().Progress)
	ctx := context.Background()

	if _, err := svc.RecordProgress(ctx, 1, models.SubjectMath, "addition", 50); err != nil {
		t.Fatalf("RecordProgress() error = %v", err)
	}
	if _, err := svc.RecordProgress(ctx, 1, models.SubjectReading, "phonics", 60); err != nil {
		t.Fatalf("RecordProgress() error = %v", err)
	}

	records, err := svc.ProgressForSubject(ctx, 1, models.SubjectReading)
	if err != nil {
		t.Fatalf("ProgressForSubject() error = %v", err)
	}
	if len(records) != 1 || records[0].SkillArea != "phonics" {
		t.Errorf("ProgressForSubject(reading) = %+v, want one phonics record", records)
	}
}
