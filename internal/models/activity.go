package models

import "time"

// Activity represents one completed attempt at a level's question set
type Activity struct {
	ID               int64     `json:"id"`
	ChildID          int64     `json:"childId"`
	LevelID          int64     `json:"levelId"`
	CompletedAt      time.Time `json:"completedAt"`
	StarsEarned      int       `json:"starsEarned"`
	CorrectAnswers   int       `json:"correctAnswers"`
	TotalQuestions   int       `json:"totalQuestions"`
	TimeSpentSeconds int       `json:"timeSpentSeconds"`
}

// Validate checks that an activity record is well-formed before it is written
func (a *Activity) Validate() error {
	if a.ChildID <= 0 {
		return invalid("activity must reference a child")
	}
	if a.LevelID <= 0 {
		return invalid("activity must reference a level")
	}
	if a.StarsEarned < 0 || a.StarsEarned > 3 {
		return invalid("stars earned must be between 0 and 3")
	}
	if a.CorrectAnswers < 0 || a.TotalQuestions < 0 {
		return invalid("answer counts cannot be negative")
	}
	if a.CorrectAnswers > a.TotalQuestions {
		return invalid("correct answers cannot exceed total questions")
	}
	if a.TimeSpentSeconds < 0 {
		return invalid("time spent cannot be negative")
	}
	return nil
}

// AccuracyPercent returns the accuracy of this attempt as a percentage.
// The second return value is false when the activity has no questions,
// in which case accuracy is undefined and the record must be excluded
// from averages.
func (a *Activity) AccuracyPercent() (float64, bool) {
	if a.TotalQuestions <= 0 {
		return 0, false
	}
	return float64(a.CorrectAnswers) / float64(a.TotalQuestions) * 100, true
}
