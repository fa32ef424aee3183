package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"learnquest/internal/database"
	"learnquest/internal/models"
	"learnquest/internal/store"
)

// QuestionRepository handles question bank database operations.
// Answer options are stored as a JSON array in a text column so their
// order survives the round trip.
type QuestionRepository struct {
	db *database.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *database.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = `id, question, correct_answer, description, image,
       level_id, subject, type, options`

func scanQuestion(row interface{ Scan(...interface{}) error }) (*models.Question, error) {
	q := &models.Question{}
	var rawOptions string

	err := row.Scan(
		&q.ID,
		&q.Text,
		&q.CorrectAnswer,
		&q.Description,
		&q.Image,
		&q.LevelID,
		&q.Subject,
		&q.Type,
		&rawOptions,
	)
	if err != nil {
		return nil, err
	}

	if rawOptions != "" {
		if err := json.Unmarshal([]byte(rawOptions), &q.Options); err != nil {
			return nil, err
		}
	}

	return q, nil
}

func (r *QuestionRepository) queryQuestions(query string, args ...interface{}) ([]models.Question, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

// GetAll retrieves the full question bank
func (r *QuestionRepository) GetAll(ctx context.Context) ([]models.Question, error) {
	return r.queryQuestions(`SELECT ` + questionColumns + ` FROM questions ORDER BY id`)
}

// GetByID retrieves one question
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	q, err := scanQuestion(r.db.QueryRow(`SELECT `+questionColumns+` FROM questions WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return q, err
}

// GetByLevelID retrieves every question belonging to one level
func (r *QuestionRepository) GetByLevelID(ctx context.Context, levelID int64) ([]models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE level_id = ? ORDER BY id`
	return r.queryQuestions(query, levelID)
}

// GetBySubject retrieves every question within one subject
func (r *QuestionRepository) GetBySubject(ctx context.Context, subject models.Subject) ([]models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE subject = ? ORDER BY id`
	return r.queryQuestions(query, string(subject))
}

// Create inserts a new question into the bank
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) (*models.Question, error) {
	rawOptions, err := json.Marshal(question.Options)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO questions (question, correct_answer, description, image, level_id, subject, type, options)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		question.Text,
		question.CorrectAnswer,
		question.Description,
		question.Image,
		question.LevelID,
		string(question.Subject),
		question.Type,
		string(rawOptions),
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}
