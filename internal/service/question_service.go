package service

import (
	"context"
	"math/rand"
	"strings"

	"learnquest/internal/models"
	"learnquest/internal/store"
)

// DefaultQuestionLimit is how many questions a level session gets when no
// limit is configured
const DefaultQuestionLimit = 10

// QuestionService handles question selection and answer checking
type QuestionService struct {
	questions store.QuestionStore
	limit     int
}

// NewQuestionService creates a new question service. limit bounds how many
// questions one session receives; 0 means the default.
func NewQuestionService(questions store.QuestionStore, limit int) *QuestionService {
	if limit <= 0 {
		limit = DefaultQuestionLimit
	}
	return &QuestionService{questions: questions, limit: limit}
}

// QuestionsForLevel returns a randomized subset of the level's question
// bank. A positive limit overrides the configured session limit.
func (s *QuestionService) QuestionsForLevel(ctx context.Context, levelID int64, limit int) ([]models.Question, error) {
	if limit <= 0 {
		limit = s.limit
	}

	all, err := s.questions.GetByLevelID(ctx, levelID)
	if err != nil {
		return nil, err
	}
	return SampleQuestions(all, limit), nil
}

// CheckAnswer reports whether the submitted option answers the question
// correctly. Comparison ignores case and surrounding whitespace so young
// typists aren't penalized for formatting.
func (s *QuestionService) CheckAnswer(ctx context.Context, questionID int64, answer string) (bool, *models.Question, error) {
	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return false, nil, err
	}

	submitted := strings.ToLower(strings.TrimSpace(answer))
	correct := strings.ToLower(strings.TrimSpace(question.CorrectAnswer))
	return submitted == correct, question, nil
}

// SampleQuestions draws a uniformly random subset of size min(limit, n)
// without mutating its input. Every permutation of the copy is equally
// likely, so no question is systematically favored or excluded.
func SampleQuestions(questions []models.Question, limit int) []models.Question {
	if limit <= 0 || len(questions) == 0 {
		return []models.Question{}
	}

	shuffled := make([]models.Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if limit > len(shuffled) {
		limit = len(shuffled)
	}
	return shuffled[:limit]
}
