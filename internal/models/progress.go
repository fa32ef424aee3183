package models

import (
	"strings"
	"time"
)

// Progress represents a child's mastery of one skill area within one subject.
// At most one record exists per (ChildID, Subject, SkillArea); updates use
// upsert semantics.
type Progress struct {
	ID              int64     `json:"id"`
	ChildID         int64     `json:"childId"`
	Subject         Subject   `json:"subject"`
	SkillArea       string    `json:"skillArea"`
	MasteryLevel    float64   `json:"masteryLevel"` // 0-100
	PracticeCount   int       `json:"practiceCount"`
	LastPracticedAt time.Time `json:"lastPracticedAt"`
}

// Validate checks that a progress record is well-formed before it is written
func (p *Progress) Validate() error {
	if p.ChildID <= 0 {
		return invalid("progress must reference a child")
	}
	if !ValidSubject(p.Subject) {
		return invalid("subject must be math or reading")
	}
	if strings.TrimSpace(p.SkillArea) == "" {
		return invalid("skill area is required")
	}
	if p.MasteryLevel < 0 || p.MasteryLevel > 100 {
		return invalid("mastery level must be between 0 and 100")
	}
	if p.PracticeCount < 0 {
		return invalid("practice count cannot be negative")
	}
	return nil
}
