package models

// Subject identifies which part of the curriculum an entity belongs to
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectReading Subject = "reading"
)

// ValidSubject reports whether s is a known subject
func ValidSubject(s Subject) bool {
	return s == SubjectMath || s == SubjectReading
}

// Difficulty buckets for levels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Level represents one playable level in a subject.
// OrderIndex defines the canonical level sequence.
type Level struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Subject       Subject `json:"subject"`
	Difficulty    string  `json:"difficulty"`
	Type          string  `json:"type"`
	OrderIndex    int     `json:"orderIndex"`
	IsLocked      bool    `json:"isLocked"`
	RequiredStars int     `json:"requiredStars"`
}
