package remote

import (
	"strconv"
	"time"

	"learnquest/internal/models"
)

// Wire representations of the five collections. The record service carries
// every identifier as a string and every timestamp as ISO-8601; these types
// are the only place that convention appears.

type activityRecord struct {
	ID               string `json:"id,omitempty"`
	ChildID          string `json:"childId"`
	LevelID          string `json:"levelId"`
	CompletedAt      string `json:"completedAt"`
	StarsEarned      int    `json:"starsEarned"`
	CorrectAnswers   int    `json:"correctAnswers"`
	TotalQuestions   int    `json:"totalQuestions"`
	TimeSpentSeconds int    `json:"timeSpent"`
}

type childRecord struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	AvatarID     string `json:"avatarId"`
	CurrentLevel int    `json:"currentLevel"`
	TotalStars   int    `json:"totalStars"`
}

type levelRecord struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Subject       string `json:"subject"`
	Difficulty    string `json:"difficulty"`
	Type          string `json:"type"`
	OrderIndex    int    `json:"orderIndex"`
	IsLocked      bool   `json:"isLocked"`
	RequiredStars int    `json:"requiredStars"`
}

type progressRecord struct {
	ID              string  `json:"id,omitempty"`
	ChildID         string  `json:"childId"`
	Subject         string  `json:"subject"`
	SkillArea       string  `json:"skillArea"`
	MasteryLevel    float64 `json:"masteryLevel"`
	PracticeCount   int     `json:"practiceCount"`
	LastPracticedAt string  `json:"lastPracticedAt"`
}

type questionRecord struct {
	ID            string   `json:"id,omitempty"`
	Text          string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	LevelID       string   `json:"levelId"`
	Subject       string   `json:"subject"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r activityRecord) toModel() models.Activity {
	return models.Activity{
		ID:               parseID(r.ID),
		ChildID:          parseID(r.ChildID),
		LevelID:          parseID(r.LevelID),
		CompletedAt:      parseTime(r.CompletedAt),
		StarsEarned:      r.StarsEarned,
		CorrectAnswers:   r.CorrectAnswers,
		TotalQuestions:   r.TotalQuestions,
		TimeSpentSeconds: r.TimeSpentSeconds,
	}
}

func activityToRecord(a *models.Activity) activityRecord {
	rec := activityRecord{
		ChildID:          formatID(a.ChildID),
		LevelID:          formatID(a.LevelID),
		CompletedAt:      formatTime(a.CompletedAt),
		StarsEarned:      a.StarsEarned,
		CorrectAnswers:   a.CorrectAnswers,
		TotalQuestions:   a.TotalQuestions,
		TimeSpentSeconds: a.TimeSpentSeconds,
	}
	if a.ID != 0 {
		rec.ID = formatID(a.ID)
	}
	return rec
}

func (r childRecord) toModel() models.Child {
	return models.Child{
		ID:           parseID(r.ID),
		Name:         r.Name,
		Age:          r.Age,
		AvatarID:     r.AvatarID,
		CurrentLevel: r.CurrentLevel,
		TotalStars:   r.TotalStars,
	}
}

func childToRecord(c *models.Child) childRecord {
	rec := childRecord{
		Name:         c.Name,
		Age:          c.Age,
		AvatarID:     c.AvatarID,
		CurrentLevel: c.CurrentLevel,
		TotalStars:   c.TotalStars,
	}
	if c.ID != 0 {
		rec.ID = formatID(c.ID)
	}
	return rec
}

func (r levelRecord) toModel() models.Level {
	return models.Level{
		ID:            parseID(r.ID),
		Name:          r.Name,
		Subject:       models.Subject(r.Subject),
		Difficulty:    r.Difficulty,
		Type:          r.Type,
		OrderIndex:    r.OrderIndex,
		IsLocked:      r.IsLocked,
		RequiredStars: r.RequiredStars,
	}
}

func levelToRecord(l *models.Level) levelRecord {
	rec := levelRecord{
		Name:          l.Name,
		Subject:       string(l.Subject),
		Difficulty:    l.Difficulty,
		Type:          l.Type,
		OrderIndex:    l.OrderIndex,
		IsLocked:      l.IsLocked,
		RequiredStars: l.RequiredStars,
	}
	if l.ID != 0 {
		rec.ID = formatID(l.ID)
	}
	return rec
}

func (r progressRecord) toModel() models.Progress {
	return models.Progress{
		ID:              parseID(r.ID),
		ChildID:         parseID(r.ChildID),
		Subject:         models.Subject(r.Subject),
		SkillArea:       r.SkillArea,
		MasteryLevel:    r.MasteryLevel,
		PracticeCount:   r.PracticeCount,
		LastPracticedAt: parseTime(r.LastPracticedAt),
	}
}

func progressToRecord(p *models.Progress) progressRecord {
	rec := progressRecord{
		ChildID:         formatID(p.ChildID),
		Subject:         string(p.Subject),
		SkillArea:       p.SkillArea,
		MasteryLevel:    p.MasteryLevel,
		PracticeCount:   p.PracticeCount,
		LastPracticedAt: formatTime(p.LastPracticedAt),
	}
	if p.ID != 0 {
		rec.ID = formatID(p.ID)
	}
	return rec
}

func (r questionRecord) toModel() models.Question {
	return models.Question{
		ID:            parseID(r.ID),
		Text:          r.Text,
		CorrectAnswer: r.CorrectAnswer,
		Description:   r.Description,
		Image:         r.Image,
		LevelID:       parseID(r.LevelID),
		Subject:       models.Subject(r.Subject),
		Type:          r.Type,
		Options:       r.Options,
	}
}

func questionToRecord(q *models.Question) questionRecord {
	rec := questionRecord{
		Text:          q.Text,
		CorrectAnswer: q.CorrectAnswer,
		Description:   q.Description,
		Image:         q.Image,
		LevelID:       formatID(q.LevelID),
		Subject:       string(q.Subject),
		Type:          q.Type,
		Options:       q.Options,
	}
	if q.ID != 0 {
		rec.ID = formatID(q.ID)
	}
	return rec
}
