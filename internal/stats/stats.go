// Package stats derives training statistics from session history.
// All functions are pure: the reference time is a parameter, never read
// from the wall clock, and nothing is cached between calls.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/olivercappis/BJJ-diary/internal/models"
)

// Compute derives SessionStats from the full session set relative to now.
// The input needs no ordering and may contain several sessions per day.
func Compute(records []models.Session, now time.Time) models.SessionStats {
	if len(records) == 0 {
		return models.SessionStats{}
	}

	weekStart := StartOfWeek(now)
	monthStart := StartOfMonth(now)

	totalMinutes := 0
	monthMinutes := 0
	sessionsThisWeek := 0
	sessionsThisMonth := 0
	intensitySum := 0
	ratedCount := 0

	dates := make([]time.Time, 0, len(records))
	for _, s := range records {
		totalMinutes += s.Duration
		dates = append(dates, s.Date)

		if !s.Date.Before(weekStart) {
			sessionsThisWeek++
		}
		if !s.Date.Before(monthStart) {
			sessionsThisMonth++
			monthMinutes += s.Duration
		}
		if s.Rated() {
			intensitySum += s.Intensity
			ratedCount++
		}
	}

	averageIntensity := 0.0
	if ratedCount > 0 {
		averageIntensity = round1(float64(intensitySum) / float64(ratedCount))
	}

	return models.SessionStats{
		TotalSessions:     len(records),
		TotalHours:        round1(float64(totalMinutes) / 60),
		SessionsThisWeek:  sessionsThisWeek,
		SessionsThisMonth: sessionsThisMonth,
		HoursThisMonth:    round1(float64(monthMinutes) / 60),
		CurrentStreak:     Streak(dates, now),
		AverageIntensity:  averageIntensity,
		AverageDuration:   int(math.Round(float64(totalMinutes) / float64(len(records)))),
	}
}

// Streak returns the number of consecutive calendar days with at least one
// session, walking backward from the most recent training day. The streak
// is alive only while the most recent day is today or yesterday: training
// yesterday keeps it current until midnight, so it never resets before the
// user has had a chance to train today.
func Streak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	// Collapse to distinct calendar days; same-day sessions count once.
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := StartOfDay(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := StartOfDay(now)
	if daysBetween(days[0], today) > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i], days[i-1]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the most recent Monday at local midnight, per ISO week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// StartOfMonth returns the first day of t's month at local midnight.
func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, both local midnights.
// AddDate is used instead of dividing a duration so DST transitions do not
// skew the count.
func daysBetween(a, b time.Time) int {
	days := 0
	for a.Before(b) {
		a = a.AddDate(0, 0, 1)
		days++
	}
	return days
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
