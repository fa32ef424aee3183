package models

// Question represents a multiple-choice question belonging to a level.
// Options is ordered and always contains CorrectAnswer.
type Question struct {
	ID            int64    `json:"id"`
	Text          string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	Description   string   `json:"description,omitempty"`
	Image         string   `json:"image,omitempty"`
	LevelID       int64    `json:"levelId"`
	Subject       Subject  `json:"subject"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
}
