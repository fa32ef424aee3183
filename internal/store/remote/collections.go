package remote

import (
	"context"
	"net/http"

	"learnquest/internal/models"
)

// Collection names on the record service
const (
	collectionActivities = "activities"
	collectionChildren   = "children"
	collectionLevels     = "levels"
	collectionProgress   = "progress"
	collectionQuestions  = "questions"
)

// questionPageLimit bounds how many questions are pulled per level fetch
const questionPageLimit = 50

type activityStore struct{ client *Client }

func (s *activityStore) GetAll(ctx context.Context) ([]models.Activity, error) {
	var records []activityRecord
	s.client.fetch(ctx, collectionActivities, fetchParams{}, &records)
	return activityModels(records), nil
}

func (s *activityStore) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	var record activityRecord
	if err := s.client.getByID(ctx, collectionActivities, formatID(id), &record); err != nil {
		return nil, err
	}
	a := record.toModel()
	return &a, nil
}

func (s *activityStore) GetByChildID(ctx context.Context, childID int64) ([]models.Activity, error) {
	params := fetchParams{
		Where:   []condition{{FieldName: "childId", Operator: "EqualTo", Values: []string{formatID(childID)}}},
		OrderBy: []ordering{{FieldName: "completedAt", Direction: "desc"}},
	}
	var records []activityRecord
	s.client.fetch(ctx, collectionActivities, params, &records)
	return activityModels(records), nil
}

func (s *activityStore) GetByLevelID(ctx context.Context, levelID int64) ([]models.Activity, error) {
	params := fetchParams{
		Where: []condition{{FieldName: "levelId", Operator: "EqualTo", Values: []string{formatID(levelID)}}},
	}
	var records []activityRecord
	s.client.fetch(ctx, collectionActivities, params, &records)
	return activityModels(records), nil
}

func (s *activityStore) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	var record activityRecord
	if err := s.client.write(ctx, http.MethodPost, collectionActivities, activityToRecord(activity), &record); err != nil {
		return nil, err
	}
	a := record.toModel()
	return &a, nil
}

func (s *activityStore) Update(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	var record activityRecord
	if err := s.client.write(ctx, http.MethodPatch, collectionActivities, activityToRecord(activity), &record); err != nil {
		return nil, err
	}
	a := record.toModel()
	return &a, nil
}

func (s *activityStore) Delete(ctx context.Context, id int64) error {
	return s.client.deleteByID(ctx, collectionActivities, formatID(id))
}

func activityModels(records []activityRecord) []models.Activity {
	out := make([]models.Activity, len(records))
	for i, r := range records {
		out[i] = r.toModel()
	}
	return out
}

type childStore struct{ client *Client }

func (s *childStore) GetAll(ctx context.Context) ([]models.Child, error) {
	var records []childRecord
	s.client.fetch(ctx, collectionChildren, fetchParams{}, &records)
	out := make([]models.Child, len(records))
	for i, r := range records {
		out[i] = r.toModel()
	}
	return out, nil
}

func (s *childStore) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	var record childRecord
	if err := s.client.getByID(ctx, collectionChildren, formatID(id), &record); err != nil {
		return nil, err
	}
	c := record.toModel()
	return &c, nil
}

func (s *childStore) Create(ctx context.Context, child *models.Child) (*models.Child, error) {
	var record childRecord
	if err := s.client.write(ctx, http.MethodPost, collectionChildren, childToRecord(child), &record); err != nil {
		return nil, err
	}
	c := record.toModel()
	return &c, nil
}

func (s *childStore) Update(ctx context.Context, child *models.Child) (*models.Child, error) {
	var record childRecord
	if err := s.client.write(ctx, http.MethodPatch, collectionChildren, childToRecord(child), &record); err != nil {
		return nil, err
	}
	c := record.toModel()
	return &c, nil
}

func (s *childStore) Delete(ctx context.Context, id int64) error {
	return s.client.deleteByID(ctx, collectionChildren, formatID(id))
}

type levelStore struct{ client *Client }

func (s *levelStore) GetAll(ctx context.Context) ([]models.Level, error) {
	params := fetchParams{
		OrderBy: []ordering{{FieldName: "orderIndex", Direction: "asc"}},
	}
	var records []levelRecord
	s.client.fetch(ctx, collectionLevels, params, &records)
	return levelModels(records), nil
}

func (s *levelStore) GetByID(ctx context.Context, id int64) (*models.Level, error) {
	var record levelRecord
	if err := s.client.getByID(ctx, collectionLevels, formatID(id), &record); err != nil {
		return nil, err
	}
	l := record.toModel()
	return &l, nil
}

func (s *levelStore) GetBySubject(ctx context.Context, subject models.Subject) ([]models.Level, error) {
	params := fetchParams{
		Where:   []condition{{FieldName: "subject", Operator: "EqualTo", Values: []string{string(subject)}}},
		OrderBy: []ordering{{FieldName: "orderIndex", Direction: "asc"}},
	}
	var records []levelRecord
	s.client.fetch(ctx, collectionLevels, params, &records)
	return levelModels(records), nil
}

func (s *levelStore) Create(ctx context.Context, level *models.Level) (*models.Level, error) {
	var record levelRecord
	if err := s.client.write(ctx, http.MethodPost, collectionLevels, levelToRecord(level), &record); err != nil {
		return nil, err
	}
	l := record.toModel()
	return &l, nil
}

func (s *levelStore) Update(ctx context.Context, level *models.Level) (*models.Level, error) {
	var record levelRecord
	if err := s.client.write(ctx, http.MethodPatch, collectionLevels, levelToRecord(level), &record); err != nil {
		return nil, err
	}
	l := record.toModel()
	return &l, nil
}

func levelModels(records []levelRecord) []models.Level {
	out := make([]models.Level, len(records))
	for i, r := range records {
		out[i] = r.toModel()
	}
	return out
}

type progressStore struct{ client *Client }

func (s *progressStore) GetAll(ctx context.Context) ([]models.Progress, error) {
	var records []progressRecord
	s.client.fetch(ctx, collectionProgress, fetchParams{}, &records)
	return progressModels(records), nil
}

func (s *progressStore) GetByChildID(ctx context.Context, childID int64) ([]models.Progress, error) {
	params := fetchParams{
		Where: []condition{{FieldName: "childId", Operator: "EqualTo", Values: []string{formatID(childID)}}},
	}
	var records []progressRecord
	s.client.fetch(ctx, collectionProgress, params, &records)
	return progressModels(records), nil
}

func (s *progressStore) GetByChildAndSubject(ctx context.Context, childID int64, subject models.Subject) ([]models.Progress, error) {
	params := fetchParams{
		Where: []condition{
			{FieldName: "childId", Operator: "EqualTo", Values: []string{formatID(childID)}},
			{FieldName: "subject", Operator: "EqualTo", Values: []string{string(subject)}},
		},
	}
	var records []progressRecord
	s.client.fetch(ctx, collectionProgress, params, &records)
	return progressModels(records), nil
}

func (s *progressStore) Create(ctx context.Context, progress *models.Progress) (*models.Progress, error) {
	var record progressRecord
	if err := s.client.write(ctx, http.MethodPost, collectionProgress, progressToRecord(progress), &record); err != nil {
		return nil, err
	}
	p := record.toModel()
	return &p, nil
}

func (s *progressStore) Update(ctx context.Context, progress *models.Progress) (*models.Progress, error) {
	var record progressRecord
	if err := s.client.write(ctx, http.MethodPatch, collectionProgress, progressToRecord(progress), &record); err != nil {
		return nil, err
	}
	p := record.toModel()
	return &p, nil
}

func progressModels(records []progressRecord) []models.Progress {
	out := make([]models.Progress, len(records))
	for i, r := range records {
		out[i] = r.toModel()
	}
	return out
}

type questionStore struct{ client *Client }

func (s *questionStore) GetAll(ctx context.Context) ([]models.Question, error) {
	var records []questionRecord
	s.client.fetch(ctx, collectionQuestions, fetchParams{}, &records)
	return questionModels(records), nil
}

func (s *questionStore) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	var record questionRecord
	if err := s.client.getByID(ctx, collectionQuestions, formatID(id), &record); err != nil {
		return nil, err
	}
	q := record.toModel()
	return &q, nil
}

func (s *questionStore) GetByLevelID(ctx context.Context, levelID int64) ([]models.Question, error) {
	params := fetchParams{
		Where:  []condition{{FieldName: "levelId", Operator: "EqualTo", Values: []string{formatID(levelID)}}},
		Paging: &paging{Limit: questionPageLimit, Offset: 0},
	}
	var records []questionRecord
	s.client.fetch(ctx, collectionQuestions, params, &records)
	return questionModels(records), nil
}

func (s *questionStore) GetBySubject(ctx context.Context, subject models.Subject) ([]models.Question, error) {
	params := fetchParams{
		Where: []condition{{FieldName: "subject", Operator: "EqualTo", Values: []string{string(subject)}}},
	}
	var records []questionRecord
	s.client.fetch(ctx, collectionQuestions, params, &records)
	return questionModels(records), nil
}

func (s *questionStore) Create(ctx context.Context, question *models.Question) (*models.Question, error) {
	var record questionRecord
	if err := s.client.write(ctx, http.MethodPost, collectionQuestions, questionToRecord(question), &record); err != nil {
		return nil, err
	}
	q := record.toModel()
	return &q, nil
}

func questionModels(records []questionRecord) []models.Question {
	out := make([]models.Question, len(records))
	for i, r := range records {
		out[i] = r.toModel()
	}
	return out
}
