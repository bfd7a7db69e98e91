package services

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/olivercappis/BJJ-diary/internal/logger"
	"github.com/olivercappis/BJJ-diary/internal/stats"
)

// reminder fires a desktop notification in the evening when an active
// training streak would break at midnight. It notifies at most once per day.
type reminder struct {
	manager  *Manager
	hour     int
	notified time.Time
}

func newReminder(manager *Manager, hour int) *reminder {
	return &reminder{manager: manager, hour: hour}
}

// run checks the streak periodically until stop is closed.
func (r *reminder) run(stop <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	r.check(r.manager.now())

	for {
		select {
		case <-ticker.C:
			r.check(r.manager.now())
		case <-stop:
			return
		}
	}
}

func (r *reminder) check(now time.Time) {
	if !r.due(now) {
		return
	}

	sessions, err := r.manager.Sessions()
	if err != nil {
		logger.Error("reminder: failed to list sessions", "error", err)
		return
	}

	dates := make([]time.Time, len(sessions))
	for i, s := range sessions {
		dates[i] = s.Date
	}

	streak := stats.Streak(dates, now)
	if !streakAtRisk(dates, streak, now) {
		return
	}

	r.notified = stats.StartOfDay(now)
	r.manager.broadcast(StreakReminderEvent{Streak: streak})

	title := "Training streak at risk"
	body := fmt.Sprintf("Your %d-day streak ends at midnight. Time to roll?", streak)
	_ = beeep.Notify(title, body, "")
}

// due reports whether the reminder window for today is open and has not
// fired yet.
func (r *reminder) due(now time.Time) bool {
	if now.Hour() < r.hour {
		return false
	}
	return !r.notified.Equal(stats.StartOfDay(now))
}

// streakAtRisk reports whether an active streak would break at midnight,
// meaning the streak is alive only through the grace day and no session has
// been logged today.
func streakAtRisk(dates []time.Time, streak int, now time.Time) bool {
	if streak == 0 {
		return false
	}

	today := stats.StartOfDay(now)
	for _, d := range dates {
		if stats.StartOfDay(d).Equal(today) {
			return false
		}
	}
	return true
}
