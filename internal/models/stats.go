package models

import "time"

// SessionStats holds aggregate training statistics derived from the full
// session history. It is recomputed from scratch on every read and never
// persisted.
type SessionStats struct {
	TotalSessions     int
	TotalHours        float64
	SessionsThisWeek  int
	SessionsThisMonth int
	HoursThisMonth    float64
	CurrentStreak     int
	AverageIntensity  float64
	AverageDuration   int
}

// WeeklyVolumePoint is one week's training hours, used by the dashboard chart.
type WeeklyVolumePoint struct {
	WeekStart time.Time
	Hours     float64
	Sessions  int
}

// CompetitionRecord aggregates match outcomes across all tournaments.
type CompetitionRecord struct {
	Wins           int
	Losses         int
	Draws          int
	SubmissionWins int
	Tournaments    int
}

// TotalMatches returns the total number of recorded matches.
func (r CompetitionRecord) TotalMatches() int {
	return r.Wins + r.Losses + r.Draws
}

// TechniqueSummary aggregates the technique library by category.
type TechniqueSummary struct {
	Total              int
	ByCategory         map[TechniqueCategory]int
	AverageProficiency float64
}
