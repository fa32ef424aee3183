package analytics

import (
	"math"
	"sort"
	"time"

	"learnquest/internal/models"
)

// DayBucket aggregates one calendar day of activity for charting
type DayBucket struct {
	Label            string `json:"label"` // short weekday name, e.g. "Mon"
	Stars            int    `json:"stars"`
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
}

// Summary holds the headline metrics for a set of activities
type Summary struct {
	TotalTimeSpentSeconds  int `json:"totalTimeSpentSeconds"`
	TotalStars             int `json:"totalStars"`
	AverageAccuracyPercent int `json:"averageAccuracyPercent"`
	Count                  int `json:"count"`
}

// SkillRanking separates a child's progress records into their strongest
// and weakest skill areas. With fewer than six records the two lists may
// overlap; that is expected.
type SkillRanking struct {
	Strengths  []models.Progress `json:"strengths"`
	Weaknesses []models.Progress `json:"weaknesses"`
}

// Window selects a time range for filtering activities
type Window string

const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

// ParseWindow maps a query-string value to a Window, defaulting to "week"
func ParseWindow(raw string) Window {
	switch Window(raw) {
	case WindowToday, WindowWeek, WindowMonth, WindowAll:
		return Window(raw)
	default:
		return WindowWeek
	}
}

// sameDay reports whether two times fall on the same local calendar day
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BucketByDay groups activities into one bucket per calendar day, oldest
// first, covering windowDays days and ending on ref's day. Membership is
// by local calendar-date equality, not elapsed time. An empty input still
// yields windowDays zeroed buckets with weekday labels populated.
func BucketByDay(activities []models.Activity, ref time.Time, windowDays int) []DayBucket {
	if windowDays <= 0 {
		return nil
	}

	buckets := make([]DayBucket, windowDays)
	for i := 0; i < windowDays; i++ {
		day := ref.AddDate(0, 0, -(windowDays - 1 - i))
		bucket := DayBucket{Label: day.Format("Mon")}

		for _, a := range activities {
			if sameDay(a.CompletedAt, day) {
				bucket.Stars += a.StarsEarned
				bucket.TimeSpentSeconds += a.TimeSpentSeconds
			}
		}

		buckets[i] = bucket
	}

	return buckets
}

// FilterByWindow returns the activities that fall inside the given window,
// preserving their original order. "today" uses calendar-day equality with
// now; "week" and "month" use rolling elapsed-time windows of 7 and 30 days
// (strictly after the cutoff); "all" returns everything.
func FilterByWindow(activities []models.Activity, window Window, now time.Time) []models.Activity {
	if window == WindowAll {
		out := make([]models.Activity, len(activities))
		copy(out, activities)
		return out
	}

	var cutoff time.Time
	switch window {
	case WindowToday:
		// handled below by calendar-day equality
	case WindowWeek:
		cutoff = now.Add(-7 * 24 * time.Hour)
	case WindowMonth:
		cutoff = now.Add(-30 * 24 * time.Hour)
	default:
		return []models.Activity{}
	}

	out := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		switch window {
		case WindowToday:
			if sameDay(a.CompletedAt, now) {
				out = append(out, a)
			}
		default:
			if a.CompletedAt.After(cutoff) {
				out = append(out, a)
			}
		}
	}

	return out
}

// Summarize computes totals and the average accuracy across activities.
// Activities with no questions have undefined accuracy and are excluded
// from the accuracy denominator. An empty input yields the zero Summary
// rather than a division artifact.
func Summarize(activities []models.Activity) Summary {
	if len(activities) == 0 {
		return Summary{}
	}

	s := Summary{Count: len(activities)}
	accuracySum := 0.0
	accuracyCount := 0

	for _, a := range activities {
		s.TotalTimeSpentSeconds += a.TimeSpentSeconds
		s.TotalStars += a.StarsEarned
		if pct, ok := a.AccuracyPercent(); ok {
			accuracySum += pct
			accuracyCount++
		}
	}

	if accuracyCount > 0 {
		s.AverageAccuracyPercent = int(math.Round(accuracySum / float64(accuracyCount)))
	}

	return s
}

// RankSkills sorts progress records by mastery level descending and takes
// the top three as strengths and the bottom three, weakest first, as
// weaknesses. The sort is stable so records with equal mastery keep their
// original relative order.
func RankSkills(records []models.Progress) SkillRanking {
	sorted := make([]models.Progress, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MasteryLevel > sorted[j].MasteryLevel
	})

	top := 3
	if top > len(sorted) {
		top = len(sorted)
	}

	strengths := make([]models.Progress, top)
	copy(strengths, sorted[:top])

	weaknesses := make([]models.Progress, top)
	copy(weaknesses, sorted[len(sorted)-top:])
	for i, j := 0, len(weaknesses)-1; i < j; i, j = i+1, j-1 {
		weaknesses[i], weaknesses[j] = weaknesses[j], weaknesses[i]
	}

	return SkillRanking{Strengths: strengths, Weaknesses: weaknesses}
}
