package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"learnquest/internal/models"
	"learnquest/internal/store"
)

// snapshotVersion identifies the snapshot layout for forward compatibility
const snapshotVersion = "1.0"

// Snapshot is the portable JSON representation of every collection
type Snapshot struct {
	Version    string            `json:"version"`
	SnapshotID string            `json:"snapshotId"`
	ExportedAt time.Time         `json:"exportedAt"`
	Children   []models.Child    `json:"children"`
	Levels     []models.Level    `json:"levels"`
	Questions  []models.Question `json:"questions"`
	Activities []models.Activity `json:"activities"`
	Progress   []models.Progress `json:"progress"`
}

// BackupService exports and restores the full record set as a JSON
// snapshot, independent of which backend holds it
type BackupService struct {
	stores store.Stores
	now    func() time.Time
}

// NewBackupService creates a new backup service
func NewBackupService(stores store.Stores) *BackupService {
	return &BackupService{stores: stores, now: time.Now}
}

// Export writes every collection to path as one JSON document
func (s *BackupService) Export(ctx context.Context, path string) (*Snapshot, error) {
	snapshot := &Snapshot{
		Version:    snapshotVersion,
		SnapshotID: uuid.NewString(),
		ExportedAt: s.now().UTC(),
	}

	var err error
	if snapshot.Children, err = s.stores.Children.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export children: %w", err)
	}
	if snapshot.Levels, err = s.stores.Levels.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export levels: %w", err)
	}
	if snapshot.Questions, err = s.stores.Questions.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export questions: %w", err)
	}
	if snapshot.Activities, err = s.stores.Activities.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export activities: %w", err)
	}
	if snapshot.Progress, err = s.stores.Progress.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export progress: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write snapshot file: %w", err)
	}

	log.Printf("Exported snapshot %s to %s (%d children, %d levels, %d questions, %d activities, %d progress)",
		snapshot.SnapshotID, path,
		len(snapshot.Children), len(snapshot.Levels), len(snapshot.Questions),
		len(snapshot.Activities), len(snapshot.Progress))
	return snapshot, nil
}

// ImportResult counts what a restore actually wrote per collection
type ImportResult struct {
	Children   int
	Levels     int
	Questions  int
	Activities int
	Progress   int
	Skipped    int
}

// Import reads a snapshot file and recreates its records in the target
// store. Records are inserted as new rows with store-assigned ids, so a
// restore belongs in an empty store; importing into a populated one
// duplicates records instead of merging them. Rejected records are
// logged and skipped so one bad row cannot abort a restore.
func (s *BackupService) Import(ctx context.Context, path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}
	if snapshot.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %q", snapshot.Version)
	}

	result := &ImportResult{}

	for i := range snapshot.Children {
		record := snapshot.Children[i]
		record.ID = 0
		if _, err := s.stores.Children.Create(ctx, &record); err != nil {
			log.Printf("Skipping child %q: %v", record.Name, err)
			result.Skipped++
			continue
		}
		result.Children++
	}

	for i := range snapshot.Levels {
		record := snapshot.Levels[i]
		record.ID = 0
		if _, err := s.stores.Levels.Create(ctx, &record); err != nil {
			log.Printf("Skipping level %q: %v", record.Name, err)
			result.Skipped++
			continue
		}
		result.Levels++
	}

	for i := range snapshot.Questions {
		record := snapshot.Questions[i]
		record.ID = 0
		if _, err := s.stores.Questions.Create(ctx, &record); err != nil {
			log.Printf("Skipping question %d: %v", snapshot.Questions[i].ID, err)
			result.Skipped++
			continue
		}
		result.Questions++
	}

	for i := range snapshot.Activities {
		record := snapshot.Activities[i]
		record.ID = 0
		if _, err := s.stores.Activities.Create(ctx, &record); err != nil {
			log.Printf("Skipping activity %d: %v", snapshot.Activities[i].ID, err)
			result.Skipped++
			continue
		}
		result.Activities++
	}

	for i := range snapshot.Progress {
		record := snapshot.Progress[i]
		record.ID = 0
		if _, err := s.stores.Progress.Create(ctx, &record); err != nil {
			log.Printf("Skipping progress record %d: %v", snapshot.Progress[i].ID, err)
			result.Skipped++
			continue
		}
		result.Progress++
	}

	log.Printf("Imported snapshot %s from %s (%d children, %d levels, %d questions, %d activities, %d progress, %d skipped)",
		snapshot.SnapshotID, path,
		result.Children, result.Levels, result.Questions,
		result.Activities, result.Progress, result.Skipped)
	return result, nil
}
