package models

import "learnquest/internal/validation"

// Child represents a child profile in the system
type Child struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	AvatarID     string `json:"avatarId"`
	CurrentLevel int    `json:"currentLevel"`
	TotalStars   int    `json:"totalStars"`
}

// Validate checks that a child record is well-formed before it is written
func (c *Child) Validate() error {
	if err := validation.ChildName(c.Name); err != nil {
		return invalid(err.Error())
	}
	if c.Age < 0 {
		return invalid("child age cannot be negative")
	}
	if c.CurrentLevel < 0 {
		return invalid("current level cannot be negative")
	}
	if c.TotalStars < 0 {
		return invalid("total stars cannot be negative")
	}
	return nil
}
