package services

import (
	"testing"
	"time"

	"github.com/olivercappis/BJJ-diary/internal/stats"
)

func TestReminder_Due(t *testing.T) {
	r := newReminder(nil, 20)

	morning := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	if r.due(morning) {
		t.Error("Reminder should not be due before the configured hour")
	}

	evening := time.Date(2025, 3, 10, 20, 30, 0, 0, time.Local)
	if !r.due(evening) {
		t.Error("Reminder should be due after the configured hour")
	}

	r.notified = stats.StartOfDay(evening)
	if r.due(evening) {
		t.Error("Reminder should fire at most once per day")
	}

	nextEvening := evening.AddDate(0, 0, 1)
	if !r.due(nextEvening) {
		t.Error("Reminder should be due again the next day")
	}
}

func TestStreakAtRisk(t *testing.T) {
	now := time.Date(2025, 3, 10, 21, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)
	twoDaysAgo := now.AddDate(0, 0, -2)

	tests := []struct {
		name   string
		dates  []time.Time
		streak int
		want   bool
	}{
		{"no streak", nil, 0, false},
		{"trained today", []time.Time{now.Add(-2 * time.Hour), yesterday}, 2, false},
		{"only grace day left", []time.Time{yesterday, twoDaysAgo}, 2, true},
		{"single day streak from yesterday", []time.Time{yesterday}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := streakAtRisk(tt.dates, tt.streak, now); got != tt.want {
				t.Errorf("streakAtRisk() = %v, want %v", got, tt.want)
			}
		})
	}
}
