package stats

import (
	"time"

	"github.com/olivercappis/BJJ-diary/internal/models"
)

// WeeklyVolume buckets session hours into the trailing ISO weeks ending with
// the current one, oldest first. Weeks with no training produce a zero point
// so the chart keeps a continuous time axis.
func WeeklyVolume(records []models.Session, now time.Time, weeks int) []models.WeeklyVolumePoint {
	if weeks <= 0 {
		return nil
	}

	currentWeek := StartOfWeek(now)
	points := make([]models.WeeklyVolumePoint, weeks)
	minutes := make([]int, weeks)
	index := make(map[time.Time]int, weeks)
	for i := 0; i < weeks; i++ {
		start := currentWeek.AddDate(0, 0, -7*(weeks-1-i))
		points[i] = models.WeeklyVolumePoint{WeekStart: start}
		index[start] = i
	}

	for _, s := range records {
		week := StartOfWeek(s.Date)
		i, ok := index[week]
		if !ok {
			continue
		}
		points[i].Sessions++
		minutes[i] += s.Duration
	}

	for i := range points {
		points[i].Hours = round1(float64(minutes[i]) / 60)
	}

	return points
}

// Record tallies match outcomes across all tournaments.
func Record(tournaments []models.Tournament, matches []models.Match) models.CompetitionRecord {
	rec := models.CompetitionRecord{Tournaments: len(tournaments)}
	for _, m := range matches {
		switch m.Result {
		case models.ResultWin:
			rec.Wins++
			if m.Method == models.MethodSubmission {
				rec.SubmissionWins++
			}
		case models.ResultLoss:
			rec.Losses++
		case models.ResultDraw:
			rec.Draws++
		}
	}
	return rec
}

// Summarize aggregates the technique library by category.
func Summarize(techniques []models.Technique) models.TechniqueSummary {
	sum := models.TechniqueSummary{
		Total:      len(techniques),
		ByCategory: make(map[models.TechniqueCategory]int),
	}
	if len(techniques) == 0 {
		return sum
	}

	profSum := 0
	for _, t := range techniques {
		sum.ByCategory[t.Category]++
		profSum += t.ProficiencyLevel
	}
	sum.AverageProficiency = round1(float64(profSum) / float64(len(techniques)))
	return sum
}
