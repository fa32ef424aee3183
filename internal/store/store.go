// Package store defines the record-store contract shared by the remote,
// SQL and in-memory backends. Stores are constructed explicitly and passed
// into services; there is no package-level client state.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"learnquest/internal/models"
)

// ErrNotFound is returned when a record id does not exist in a collection
var ErrNotFound = errors.New("record not found")

// ErrUnavailable is returned when the backing store cannot be reached.
// Read paths degrade to empty results instead; only writes surface this.
var ErrUnavailable = errors.New("record store unavailable")

// FieldError describes a single failing field reported by the store on
// create or update
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError carries the per-field errors of a rejected write
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "record validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "record validation failed: " + strings.Join(parts, "; ")
}

// ActivityStore manages completed question-session attempts
type ActivityStore interface {
	GetAll(ctx context.Context) ([]models.Activity, error)
	GetByID(ctx context.Context, id int64) (*models.Activity, error)
	GetByChildID(ctx context.Context, childID int64) ([]models.Activity, error)
	GetByLevelID(ctx context.Context, levelID int64) ([]models.Activity, error)
	Create(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	Update(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	Delete(ctx context.Context, id int64) error
}

// ChildStore manages child profiles
type ChildStore interface {
	GetAll(ctx context.Context) ([]models.Child, error)
	GetByID(ctx context.Context, id int64) (*models.Child, error)
	Create(ctx context.Context, child *models.Child) (*models.Child, error)
	Update(ctx context.Context, child *models.Child) (*models.Child, error)
	Delete(ctx context.Context, id int64) error
}

// LevelStore manages the level catalogue. GetAll and GetBySubject return
// levels in OrderIndex order.
type LevelStore interface {
	GetAll(ctx context.Context) ([]models.Level, error)
	GetByID(ctx context.Context, id int64) (*models.Level, error)
	GetBySubject(ctx context.Context, subject models.Subject) ([]models.Level, error)
	Create(ctx context.Context, level *models.Level) (*models.Level, error)
	Update(ctx context.Context, level *models.Level) (*models.Level, error)
}

// ProgressStore manages per-skill mastery records
type ProgressStore interface {
	GetAll(ctx context.Context) ([]models.Progress, error)
	GetByChildID(ctx context.Context, childID int64) ([]models.Progress, error)
	GetByChildAndSubject(ctx context.Context, childID int64, subject models.Subject) ([]models.Progress, error)
	Create(ctx context.Context, progress *models.Progress) (*models.Progress, error)
	Update(ctx context.Context, progress *models.Progress) (*models.Progress, error)
}

// QuestionStore manages the question bank
type QuestionStore interface {
	GetAll(ctx context.Context) ([]models.Question, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	GetByLevelID(ctx context.Context, levelID int64) ([]models.Question, error)
	GetBySubject(ctx context.Context, subject models.Subject) ([]models.Question, error)
	Create(ctx context.Context, question *models.Question) (*models.Question, error)
}

// Stores bundles one store per collection for wiring
type Stores struct {
	Activities ActivityStore
	Children   ChildStore
	Levels     LevelStore
	Progress   ProgressStore
	Questions  QuestionStore
}
