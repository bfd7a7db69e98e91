package stats

import (
	"testing"
	"time"

	"github.com/olivercappis/BJJ-diary/internal/models"
)

func TestWeeklyVolume(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 30, 0, 0, time.Local) // Friday
	currentWeek := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	records := []models.Session{
		session(now, 60, 0),                             // current week
		session(now.AddDate(0, 0, -2), 30, 0),           // current week
		session(currentWeek.AddDate(0, 0, -7), 90, 0),   // previous week
		session(currentWeek.AddDate(0, 0, -100), 60, 0), // far outside the window
	}

	points := WeeklyVolume(records, now, 4)

	if len(points) != 4 {
		t.Fatalf("Expected 4 points, got %d", len(points))
	}

	// Oldest first; last point is the current week.
	last := points[3]
	if !last.WeekStart.Equal(currentWeek) {
		t.Errorf("Last point week = %v, want %v", last.WeekStart, currentWeek)
	}
	if last.Sessions != 2 {
		t.Errorf("Current week sessions = %d, want 2", last.Sessions)
	}
	if last.Hours != 1.5 {
		t.Errorf("Current week hours = %v, want 1.5", last.Hours)
	}

	prev := points[2]
	if prev.Sessions != 1 || prev.Hours != 1.5 {
		t.Errorf("Previous week = %d sessions %vh, want 1 session 1.5h", prev.Sessions, prev.Hours)
	}

	// Empty weeks stay zero.
	if points[0].Sessions != 0 || points[0].Hours != 0 {
		t.Errorf("Expected zero point for empty week, got %+v", points[0])
	}
}

func TestWeeklyVolume_NoWeeks(t *testing.T) {
	if got := WeeklyVolume(nil, time.Now(), 0); got != nil {
		t.Errorf("Expected nil for zero weeks, got %v", got)
	}
}

func TestRecord(t *testing.T) {
	tournaments := []models.Tournament{{ID: "t1"}, {ID: "t2"}}
	matches := []models.Match{
		{Result: models.ResultWin, Method: models.MethodSubmission},
		{Result: models.ResultWin, Method: models.MethodPoints},
		{Result: models.ResultLoss, Method: models.MethodSubmission},
		{Result: models.ResultDraw},
	}

	rec := Record(tournaments, matches)

	if rec.Wins != 2 || rec.Losses != 1 || rec.Draws != 1 {
		t.Errorf("Record = %+v, want 2W 1L 1D", rec)
	}
	if rec.SubmissionWins != 1 {
		t.Errorf("SubmissionWins = %d, want 1 (losses by submission do not count)", rec.SubmissionWins)
	}
	if rec.Tournaments != 2 {
		t.Errorf("Tournaments = %d, want 2", rec.Tournaments)
	}
	if rec.TotalMatches() != 4 {
		t.Errorf("TotalMatches() = %d, want 4", rec.TotalMatches())
	}
}

func TestSummarize(t *testing.T) {
	techniques := []models.Technique{
		{Category: models.CategorySubmission, ProficiencyLevel: 4},
		{Category: models.CategorySubmission, ProficiencyLevel: 2},
		{Category: models.CategorySweep, ProficiencyLevel: 3},
	}

	sum := Summarize(techniques)

	if sum.Total != 3 {
		t.Errorf("Total = %d, want 3", sum.Total)
	}
	if sum.ByCategory[models.CategorySubmission] != 2 {
		t.Errorf("Submissions = %d, want 2", sum.ByCategory[models.CategorySubmission])
	}
	if sum.AverageProficiency != 3.0 {
		t.Errorf("AverageProficiency = %v, want 3.0", sum.AverageProficiency)
	}
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)
	if sum.Total != 0 || sum.AverageProficiency != 0 {
		t.Errorf("Expected zero summary, got %+v", sum)
	}
}
