package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"learnquest/internal/models"
	"learnquest/internal/store/memory"
)

func TestBackupExportImportRoundTrip(t *testing.T) {
	mem := memory.New()
	stores := mem.Stores()
	ctx := context.Background()

	child, err := stores.Children.Create(ctx, &models.Child{Name: "Maya", Age: 6, CurrentLevel: 1, TotalStars: 4})
	if err != nil {
		t.Fatalf("Create child error = %v", err)
	}
	level := mem.SeedLevel(models.Level{Name: "Counting", Subject: models.SubjectMath, Difficulty: models.DifficultyEasy, OrderIndex: 1})
	mem.SeedQuestion(models.Question{
		Text: "What is 1 + 1?", CorrectAnswer: "2", LevelID: level.ID,
		Subject: models.SubjectMath, Type: "multiple_choice", Options: []string{"1", "2", "3"},
	})
	if _, err := stores.Activities.Create(ctx, &models.Activity{
		ChildID: child.ID, LevelID: level.ID,
		CompletedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		StarsEarned: 2, CorrectAnswers: 8, TotalQuestions: 10, TimeSpentSeconds: 300,
	}); err != nil {
		t.Fatalf("Create activity error = %v", err)
	}
	if _, err := stores.Progress.Create(ctx, &models.Progress{
		ChildID: child.ID, Subject: models.SubjectMath, SkillArea: "counting",
		MasteryLevel: 80, PracticeCount: 3, LastPracticedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("Create progress error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "snapshot.json")

	snapshot, err := NewBackupService(stores).Export(ctx, path)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if snapshot.Version != snapshotVersion {
		t.Errorf("Version = %q, want %q", snapshot.Version, snapshotVersion)
	}
	if snapshot.SnapshotID == "" {
		t.Error("Export() did not assign a snapshot id")
	}
	if len(snapshot.Children) != 1 || len(snapshot.Levels) != 1 || len(snapshot.Questions) != 1 ||
		len(snapshot.Activities) != 1 || len(snapshot.Progress) != 1 {
		t.Fatalf("snapshot counts = %d/%d/%d/%d/%d, want 1 of each",
			len(snapshot.Children), len(snapshot.Levels), len(snapshot.Questions),
			len(snapshot.Activities), len(snapshot.Progress))
	}

	// Restore into a fresh store
	target := memory.New().Stores()
	result, err := NewBackupService(target).Import(ctx, path)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Children != 1 || result.Levels != 1 || result.Questions != 1 ||
		result.Activities != 1 || result.Progress != 1 || result.Skipped != 0 {
		t.Errorf("import result = %+v, want 1 of each and none skipped", result)
	}

	children, err := target.Children.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll children error = %v", err)
	}
	if len(children) != 1 || children[0].Name != "Maya" || children[0].TotalStars != 4 {
		t.Errorf("restored children = %+v, want Maya with 4 stars", children)
	}

	questions, err := target.Questions.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll questions error = %v", err)
	}
	if len(questions) != 1 || len(questions[0].Options) != 3 {
		t.Errorf("restored questions = %+v, want one question with 3 options", questions)
	}
}

func TestBackupImportRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	writeFileOrFail(t, path, `{"version":"9.9","snapshotId":"x","exportedAt":"2026-03-10T00:00:00Z"}`)

	svc := NewBackupService(memory.New().Stores())
	if _, err := svc.Import(context.Background(), path); err == nil {
		t.Error("Import() accepted an unsupported snapshot version")
	}
}

func TestBackupImportSkipsBadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	// The second progress record duplicates the first's key and must be
	// skipped without aborting the rest of the restore
	writeFileOrFail(t, path, `{
		"version": "1.0",
		"snapshotId": "test",
		"exportedAt": "2026-03-10T00:00:00Z",
		"children": [{"name": "Leo", "age": 7, "currentLevel": 1}],
		"progress": [
			{"childId": 1, "subject": "math", "skillArea": "addition", "masteryLevel": 50, "practiceCount": 1},
			{"childId": 1, "subject": "math", "skillArea": "addition", "masteryLevel": 60, "practiceCount": 1}
		]
	}`)

	svc := NewBackupService(memory.New().Stores())
	result, err := svc.Import(context.Background(), path)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Children != 1 {
		t.Errorf("Children = %d, want 1", result.Children)
	}
	if result.Progress != 1 {
		t.Errorf("Progress = %d, want 1", result.Progress)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
}

func writeFileOrFail(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
