package tournaments

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/ui/components"
	"github.com/olivercappis/BJJ-diary/internal/ui/styles"
)

// View renders the tournaments tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	var sections []string

	sections = append(sections, m.renderTitle())

	switch {
	case m.confirmDelete:
		sections = append(sections, m.renderDeleteConfirm())
	case m.mode == modeForm:
		sections = append(sections, m.renderForm())
	case m.mode == modeMatches:
		sections = append(sections, m.renderMatches())
	case m.mode == modeMatchForm:
		sections = append(sections, m.renderMatchForm())
	default:
		sections = append(sections, m.renderTable())
	}

	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

// renderTitle renders the tournaments tab title with the overall record.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Competition")

	record := m.state.GetRecord()
	subtitle := styles.HelpStyle.Render("No matches recorded yet")
	if record.TotalMatches() > 0 {
		subtitle = fmt.Sprintf("%s %s %s  |  %d submission wins  |  %d tournaments",
			styles.WinStyle.Render(fmt.Sprintf("%dW", record.Wins)),
			styles.LossStyle.Render(fmt.Sprintf("%dL", record.Losses)),
			styles.DrawStyle.Render(fmt.Sprintf("%dD", record.Draws)),
			record.SubmissionWins,
			record.Tournaments,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderTable renders the tournaments table.
func (m *Model) renderTable() string {
	tournaments := m.state.GetTournaments()

	if len(tournaments) == 0 {
		return m.renderEmptyState()
	}

	m.updateTableData()

	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}

	return styles.CardStyle.Width(cardWidth).Render(m.table.View())
}

// renderEmptyState renders the empty state when no tournaments exist.
func (m *Model) renderEmptyState() string {
	cardWidth := m.width - 6
	if cardWidth < 40 {
		cardWidth = 40
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.SubTitleStyle.Render("No Tournaments Recorded"),
		"",
		styles.HelpStyle.Render("Track your competition history and record."),
		"",
		styles.InfoTextStyle.Render("Press 'n' to add a tournament"),
		"",
	)

	return styles.CardStyle.Width(cardWidth).Render(content)
}

// renderMatches renders the match list for the selected tournament.
func (m *Model) renderMatches() string {
	matches := m.state.GetMatches(m.viewingID)

	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render(m.viewingName))
	rows = append(rows, "")

	if len(matches) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No matches recorded for this tournament"))
		rows = append(rows, "")
		rows = append(rows, styles.InfoTextStyle.Render("  Press 'n' to record a match"))
	}

	for i, match := range matches {
		rows = append(rows, m.renderMatchLine(match, i == m.matchCursor))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderMatchLine renders one match in the list.
func (m *Model) renderMatchLine(match models.Match, selected bool) string {
	prefix := "  "
	if selected {
		prefix = styles.FocusedStyle.Render("> ")
	}

	result := styles.GetResultStyle(match.Result).Render(string(match.Result))

	opponent := match.OpponentName
	if opponent == "" {
		opponent = "unknown"
	}

	score := ""
	if match.Method == models.MethodPoints {
		score = fmt.Sprintf(" (%d-%d)", match.MyScore, match.OpponentScore)
	}

	return fmt.Sprintf("%s%s vs %s by %s%s",
		prefix, result, opponent, string(match.Method), score)
}

// renderForm renders the tournament entry form.
func (m *Model) renderForm() string {
	cardWidth := m.width - 10
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
	}

	var rows []string

	formTitle := "Add Tournament"
	if m.editID != "" {
		formTitle = "Edit Tournament"
	}
	rows = append(rows, styles.CardTitleStyle.Render(formTitle))
	rows = append(rows, "")

	rows = append(rows, m.renderInput("Name", m.nameInput.View(), m.focusedField == fieldName, cardWidth))
	rows = append(rows, m.renderInput("Date", m.dateInput.View(), m.focusedField == fieldDate, cardWidth))
	rows = append(rows, m.renderInput("Location", m.locationInput.View(), m.focusedField == fieldLocation, cardWidth))

	tournType := "Gi"
	if m.typeIndex == 1 {
		tournType = "No-Gi"
	}
	rows = append(rows, m.renderSelector("Type", tournType, m.focusedField == fieldType, cardWidth))
	rows = append(rows, m.renderSelector("Belt", string(models.BeltRanks[m.beltIndex]), m.focusedField == fieldBelt, cardWidth))
	rows = append(rows, m.renderInput("Weight class", m.weightInput.View(), m.focusedField == fieldWeight, cardWidth))
	rows = append(rows, m.renderInput("Placement", m.placementInput.View(), m.focusedField == fieldPlacement, cardWidth))
	rows = append(rows, m.renderInput("Notes", m.notesInput.View(), m.focusedField == fieldNotes, cardWidth))

	if m.formError != "" {
		rows = append(rows, styles.ErrorTextStyle.Render("  "+m.formError))
		rows = append(rows, "")
	}

	rows = append(rows, m.renderButtons(m.focusedField == fieldSubmit, m.focusedField == fieldCancel))
	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render("Tab: next field | Enter: submit | Esc: cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return styles.ModalContentStyle.Width(cardWidth).Render(content)
}

// renderMatchForm renders the match entry form.
func (m *Model) renderMatchForm() string {
	cardWidth := m.width - 10
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
	}

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Record Match: "+m.viewingName))
	rows = append(rows, "")

	rows = append(rows, m.renderInput("Opponent", m.oppInput.View(), m.matchField == matchFieldOpponent, cardWidth))
	rows = append(rows, m.renderSelector("Result", string(matchResults[m.resultIndex]), m.matchField == matchFieldResult, cardWidth))
	rows = append(rows, m.renderSelector("Method", string(models.MatchMethods[m.methodIndex]), m.matchField == matchFieldMethod, cardWidth))
	rows = append(rows, m.renderInput("My score", m.myScoreInput.View(), m.matchField == matchFieldMyScore, cardWidth))
	rows = append(rows, m.renderInput("Opponent score", m.opScoreInput.View(), m.matchField == matchFieldOppScore, cardWidth))
	rows = append(rows, m.renderInput("Notes", m.mNotesInput.View(), m.matchField == matchFieldNotes, cardWidth))

	if m.matchError != "" {
		rows = append(rows, styles.ErrorTextStyle.Render("  "+m.matchError))
		rows = append(rows, "")
	}

	rows = append(rows, m.renderButtons(m.matchField == matchFieldSubmit, m.matchField == matchFieldCancel))
	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render("Tab: next field | ←/→: change value | Enter: submit | Esc: cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return styles.ModalContentStyle.Width(cardWidth).Render(content)
}

// renderInput renders a labeled text input.
func (m *Model) renderInput(label, inputView string, focused bool, cardWidth int) string {
	labelStr := styles.BlurredStyle.Render("  " + label + ":")
	inputStyle := styles.BlurredBorderStyle
	if focused {
		labelStr = styles.FocusedStyle.Render("> " + label + ":")
		inputStyle = styles.FocusedBorderStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStr,
		inputStyle.Width(cardWidth-10).Render(inputView),
	)
}

// renderSelector renders a cycling selector field.
func (m *Model) renderSelector(label, value string, focused bool, cardWidth int) string {
	labelStr := styles.BlurredStyle.Render("  " + label + ":")
	valueStyle := styles.BlurredBorderStyle
	if focused {
		labelStr = styles.FocusedStyle.Render("> " + label + ":")
		valueStyle = styles.FocusedBorderStyle
		value = fmt.Sprintf("< %s >", value)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStr,
		valueStyle.Width(cardWidth-10).Render(value),
	)
}

// renderButtons renders the submit and cancel buttons.
func (m *Model) renderButtons(submitFocused, cancelFocused bool) string {
	submitStyle := styles.ButtonInactiveStyle
	cancelStyle := styles.ButtonInactiveStyle
	if submitFocused {
		submitStyle = styles.ButtonActiveStyle
	}
	if cancelFocused {
		cancelStyle = styles.ButtonActiveStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		submitStyle.Render(" Save "),
		"  ",
		cancelStyle.Render(" Cancel "),
	)
}

// renderDeleteConfirm renders the delete confirmation dialog.
func (m *Model) renderDeleteConfirm() string {
	cardWidth := 50

	what := "Tournament"
	if m.deleteMatch {
		what = "Match"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.WarningTextStyle.Bold(true).Render("Delete "+what+"?"),
		"",
		"Are you sure you want to delete:",
		styles.ErrorTextStyle.Render(m.deleteLabel),
		"",
		"This action cannot be undone.",
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			styles.ButtonActiveStyle.Render(" (Y)es "),
			"  ",
			styles.ButtonInactiveStyle.Render(" (N)o "),
		),
		"",
	)

	return styles.CenterHorizontal(
		styles.ModalContentStyle.Width(cardWidth).Render(content),
		m.width,
	)
}

// renderFooter renders the footer with keyboard shortcuts.
func (m *Model) renderFooter() string {
	var shortcuts []string

	switch {
	case m.confirmDelete:
		shortcuts = []string{
			styles.HelpKeyStyle.Render("Y") + " confirm",
			styles.HelpKeyStyle.Render("N") + " cancel",
		}
	case m.mode == modeForm || m.mode == modeMatchForm:
		shortcuts = []string{
			styles.HelpKeyStyle.Render("Tab") + " next",
			styles.HelpKeyStyle.Render("Enter") + " submit",
			styles.HelpKeyStyle.Render("Esc") + " cancel",
		}
	case m.mode == modeMatches:
		shortcuts = []string{
			styles.HelpKeyStyle.Render("n") + " record match",
			styles.HelpKeyStyle.Render("d") + " delete",
			styles.HelpKeyStyle.Render("Esc") + " back",
		}
	default:
		shortcuts = []string{
			styles.HelpKeyStyle.Render("n") + " add",
			styles.HelpKeyStyle.Render("Enter") + " matches",
			styles.HelpKeyStyle.Render("e") + " edit",
			styles.HelpKeyStyle.Render("d") + " delete",
		}
	}

	footer := ""
	for i, s := range shortcuts {
		if i > 0 {
			footer += styles.HelpSeparatorStyle.Render(" | ")
		}
		footer += s
	}

	return lipgloss.NewStyle().
		MarginTop(1).
		Foreground(styles.TextMuted).
		Render(footer)
}
