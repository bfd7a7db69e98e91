package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/ui/components"
	"github.com/olivercappis/BJJ-diary/internal/ui/styles"
)

// View renders the dashboard component.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderStatCards())
	sections = append(sections, m.renderVolumeChart())
	sections = append(sections, m.renderWeekPattern())
	sections = append(sections, m.renderCompetitionCard())
	sections = append(sections, m.renderRecentSessions())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

// renderTitle renders the dashboard title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Training Dashboard")

	subtitle := styles.HelpStyle.Render("Your mat time at a glance")
	if ago, ok := lastTrained(m.state.GetSessions(), time.Now()); ok {
		days := int(ago.Hours() / 24)
		switch {
		case days == 0:
			subtitle = styles.HelpStyle.Render("Last trained today")
		case days == 1:
			subtitle = styles.HelpStyle.Render("Last trained yesterday")
		default:
			subtitle = styles.HelpStyle.Render(fmt.Sprintf("Last trained %d days ago", days))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderStatCards renders the headline stat cards.
func (m *Model) renderStatCards() string {
	stats, ok := m.state.GetStats()
	if !ok {
		return styles.CardStyle.Render(styles.HelpStyle.Render("No sessions logged yet. Press '2' then 'n' to log your first session."))
	}

	cardWidth := max((m.width-12)/4, 16)

	streakValue := styles.GetStreakStyle(stats.CurrentStreak).
		Render(fmt.Sprintf("%d days", stats.CurrentStreak))

	spark := components.RenderSparkline(
		intensityTrend(m.state.GetSessions(), 20), max(cardWidth-4, 8))

	cards := []string{
		m.renderStatCard("Sessions", fmt.Sprintf("%d", stats.TotalSessions),
			fmt.Sprintf("%d this month", stats.SessionsThisMonth), "", cardWidth),
		m.renderStatCard("Mat Hours", fmt.Sprintf("%.1f", stats.TotalHours),
			fmt.Sprintf("%.1f this month", stats.HoursThisMonth), "", cardWidth),
		m.renderStatCard("Streak", streakValue,
			fmt.Sprintf("%d this week", stats.SessionsThisWeek), "", cardWidth),
		m.renderStatCard("Avg Intensity", fmt.Sprintf("%.1f / 10", stats.AverageIntensity),
			fmt.Sprintf("%d min avg", stats.AverageDuration), spark, cardWidth),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) renderStatCard(label, value, detail, spark string, width int) string {
	rows := []string{
		styles.CardTitleStyle.Render(label),
		lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimary).Render(value),
		styles.HelpStyle.Render(detail),
	}
	if spark != "" {
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.Primary).Render(spark))
	}

	return styles.CardStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderVolumeChart renders the weekly training volume chart.
func (m *Model) renderVolumeChart() string {
	volume := m.state.GetVolume()
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Weekly Volume"))

	if len(volume) == 0 {
		rows = append(rows, "")
		rows = append(rows, styles.HelpStyle.Render("No training data yet"))
		return styles.CardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...),
		)
	}

	gi, nogi := weeklySplit(m.state.GetSessions(), volume)

	chartWidth := max(cardWidth-14, 20)
	rows = append(rows, components.RenderDualLineChart(gi, nogi, chartWidth, 6, "hours per week"))
	rows = append(rows, "")
	rows = append(rows, components.RenderLegend([]components.LegendItem{
		{Label: "Gi", Color: components.ChartGiColor},
		{Label: "No-Gi", Color: components.ChartNoGiColor},
	}))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderWeekPattern renders the sessions-per-weekday bar chart.
func (m *Model) renderWeekPattern() string {
	sessions := m.state.GetSessions()
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Training Days"))

	if len(sessions) == 0 {
		rows = append(rows, "")
		rows = append(rows, styles.HelpStyle.Render("No training data yet"))
	} else {
		rows = append(rows, components.RenderWeeklyPattern(dayPattern(sessions), nil))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderCompetitionCard renders the competition record summary.
func (m *Model) renderCompetitionCard() string {
	record := m.state.GetRecord()
	summary := m.state.GetSummary()
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Competition & Library"))
	rows = append(rows, "")

	if record.TotalMatches() == 0 {
		rows = append(rows, styles.HelpStyle.Render("No matches recorded"))
	} else {
		recordLine := fmt.Sprintf("%s  %s  %s",
			styles.WinStyle.Render(fmt.Sprintf("%dW", record.Wins)),
			styles.LossStyle.Render(fmt.Sprintf("%dL", record.Losses)),
			styles.DrawStyle.Render(fmt.Sprintf("%dD", record.Draws)),
		)
		rows = append(rows, fmt.Sprintf("  Record: %s across %d tournaments", recordLine, record.Tournaments))
		rows = append(rows, fmt.Sprintf("  Submission wins: %d", record.SubmissionWins))

		winRate := float64(record.Wins) / float64(record.TotalMatches()) * 100
		rows = append(rows, "  "+components.SimpleProgressBar(winRate, "Win rate", cardWidth-8))
	}

	rows = append(rows, "")
	if summary.Total == 0 {
		rows = append(rows, styles.HelpStyle.Render("Technique library is empty"))
	} else {
		rows = append(rows, fmt.Sprintf("  Techniques: %d tracked, avg proficiency %.1f/%d",
			summary.Total, summary.AverageProficiency, models.MaxProficiency))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderRecentSessions renders the five most recent sessions.
func (m *Model) renderRecentSessions() string {
	sessions := recentSessions(m.state.GetSessions(), 5)
	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Recent Sessions"))
	rows = append(rows, "")

	if len(sessions) == 0 {
		rows = append(rows, styles.HelpStyle.Render("Nothing logged yet"))
	}

	for _, s := range sessions {
		rows = append(rows, m.renderSessionLine(s, cardWidth-6))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderSessionLine(s models.Session, width int) string {
	date := s.Date.Format("Mon Jan 02")
	typeStr := styles.GetSessionTypeStyle(s.Type).Render(s.Type.String())

	intensity := ""
	if s.Rated() {
		intensity = styles.GetIntensityStyle(s.Intensity).Render(fmt.Sprintf("intensity %d", s.Intensity))
	}

	focus := s.Focus
	if focus == "" {
		focus = "-"
	}
	if len(focus) > 30 {
		focus = focus[:27] + "..."
	}

	return fmt.Sprintf("  %s  %s  %dm  %s  %s",
		styles.HelpStyle.Render(date),
		typeStr,
		s.Duration,
		focus,
		intensity,
	)
}
