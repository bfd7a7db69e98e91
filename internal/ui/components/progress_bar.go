package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivercappis/BJJ-diary/internal/logger"
	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/ui/styles"
)

// ProficiencyBar renders a technique proficiency level as a progress bar.
type ProficiencyBar struct {
	progress progress.Model
}

// NewProficiencyBar creates a proficiency bar with gradient colors.
func NewProficiencyBar(width int) ProficiencyBar {
	p := progress.New(
		progress.WithScaledGradient("#ff6b6b", "#51cf66"),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)

	return ProficiencyBar{progress: p}
}

// View renders a proficiency level (1-5) with a label.
func (p ProficiencyBar) View(level int, label string, width int) string {
	if level < models.MinProficiency {
		level = models.MinProficiency
	}
	if level > models.MaxProficiency {
		level = models.MaxProficiency
	}

	barWidth := width - 25 // Reserve space for label and level
	if barWidth < 10 {
		barWidth = 10
	}
	p.progress.Width = barWidth

	percent := float64(level) / float64(models.MaxProficiency)
	bar := p.progress.ViewAs(percent)

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(18).
		Render(label)

	levelStr := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Width(5).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%d/%d", level, models.MaxProficiency))

	return lipgloss.JoinHorizontal(lipgloss.Center, labelStr, bar, " ", levelStr)
}

// RenderGradientBar renders just the bar part with gradient colors.
func RenderGradientBar(percent float64, width int) string {
	if width < 1 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor("#ff6b6b", "#51cf66", t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.Subtle)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

// SimpleProgressBar renders a labeled ASCII progress bar with gradient colors.
func SimpleProgressBar(percent float64, label string, width int) string {
	labelWidth := len(label) + 1
	percentWidth := 6
	barWidth := width - labelWidth - percentWidth - 4

	if barWidth < 5 {
		barWidth = 5
	}

	bar := RenderGradientBar(percent, barWidth)

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(label)

	percentStr := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Width(percentWidth).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%.0f%%", percent))

	return fmt.Sprintf("%s [%s] %s", labelStr, bar, percentStr)
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
