package sessions

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/ui/components"
	"github.com/olivercappis/BJJ-diary/internal/ui/styles"
)

// View renders the sessions tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	var sections []string

	sections = append(sections, m.renderTitle())

	if m.editing {
		sections = append(sections, m.renderForm())
	} else if m.confirmDelete {
		sections = append(sections, m.renderDeleteConfirm())
		sections = append(sections, m.renderTable())
	} else {
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

// renderTitle renders the sessions tab title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Session Log")

	total := len(m.state.GetSessions())
	text := fmt.Sprintf("%d sessions logged", total)
	if m.hasFilter() {
		text = fmt.Sprintf("%d of %d sessions", len(m.visibleSessions(m.state.GetSessions())), total)
	}
	subtitle := styles.HelpStyle.Render(text)

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderFilterBar renders the search input and the active type filter.
func (m *Model) renderFilterBar() string {
	inputStyle := styles.BlurredStyle
	if m.filtering {
		inputStyle = styles.FocusedStyle
	}

	typeLabel := styles.HelpStyle.Render("type: " + m.filterTypeLabel())

	return lipgloss.JoinHorizontal(lipgloss.Center,
		inputStyle.Render("/ "),
		m.filterInput.View(),
		"   ",
		typeLabel,
	)
}

// renderTable renders the sessions table.
func (m *Model) renderTable() string {
	sessions := m.state.GetSessions()

	if len(sessions) == 0 {
		return m.renderEmptyState()
	}

	m.updateTableData()

	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}

	var rows []string
	if m.filtering || m.hasFilter() {
		rows = append(rows, m.renderFilterBar(), "")
	}

	if len(m.sessions) == 0 {
		rows = append(rows, styles.HelpStyle.Render("No sessions match the current filter."))
	} else {
		rows = append(rows, m.table.View())
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderEmptyState renders the empty state when no sessions exist.
func (m *Model) renderEmptyState() string {
	cardWidth := m.width - 6
	if cardWidth < 40 {
		cardWidth = 40
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.SubTitleStyle.Render("No Sessions Logged"),
		"",
		styles.HelpStyle.Render("Every journey starts with the first roll."),
		"",
		styles.InfoTextStyle.Render("Press 'n' to log your first session"),
		"",
	)

	return styles.CardStyle.Width(cardWidth).Render(content)
}

// renderForm renders the session entry form.
func (m *Model) renderForm() string {
	cardWidth := m.width - 10
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
	}

	var rows []string

	formTitle := "Log Session"
	if m.editID != "" {
		formTitle = "Edit Session"
	}
	rows = append(rows, styles.CardTitleStyle.Render(formTitle))
	rows = append(rows, "")

	rows = append(rows, m.renderInputField("Date", m.dateInput.View(), fieldDate, cardWidth))
	rows = append(rows, m.renderTypeField(cardWidth))
	rows = append(rows, m.renderInputField("Duration (min)", m.durationInput.View(), fieldDuration, cardWidth))
	rows = append(rows, m.renderInputField("Focus", m.focusInput.View(), fieldFocus, cardWidth))
	rows = append(rows, m.renderInputField("Intensity", m.intensityInput.View(), fieldIntensity, cardWidth))
	rows = append(rows, m.renderInputField("Sparring rounds", m.roundsInput.View(), fieldRounds, cardWidth))
	rows = append(rows, m.renderInputField("Notes", m.notesInput.View(), fieldNotes, cardWidth))

	if m.formError != "" {
		rows = append(rows, styles.ErrorTextStyle.Render("  "+m.formError))
		rows = append(rows, "")
	}

	submitStyle := styles.ButtonInactiveStyle
	cancelStyle := styles.ButtonInactiveStyle
	if m.focusedField == fieldSubmit {
		submitStyle = styles.ButtonActiveStyle
	}
	if m.focusedField == fieldCancel {
		cancelStyle = styles.ButtonActiveStyle
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		submitStyle.Render(" Save "),
		"  ",
		cancelStyle.Render(" Cancel "),
	)
	rows = append(rows, buttons)
	rows = append(rows, "")

	rows = append(rows, styles.HelpStyle.Render("Tab: next field | Enter: submit | Esc: cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return styles.ModalContentStyle.Width(cardWidth).Render(content)
}

// renderInputField renders a single labeled text input.
func (m *Model) renderInputField(label, inputView string, field formField, cardWidth int) string {
	labelStr := styles.BlurredStyle.Render("  " + label + ":")
	inputStyle := styles.BlurredBorderStyle
	if m.focusedField == field {
		labelStr = styles.FocusedStyle.Render("> " + label + ":")
		inputStyle = styles.FocusedBorderStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStr,
		inputStyle.Width(cardWidth-10).Render(inputView),
	)
}

// renderTypeField renders the session type selector.
func (m *Model) renderTypeField(cardWidth int) string {
	labelStr := styles.BlurredStyle.Render("  Type:")
	valueStyle := styles.BlurredBorderStyle
	value := models.SessionTypes[m.typeIndex].String()
	if m.focusedField == fieldType {
		labelStr = styles.FocusedStyle.Render("> Type:")
		valueStyle = styles.FocusedBorderStyle
		value = fmt.Sprintf("< %s >", value)
	}

	typeStr := styles.GetSessionTypeStyle(models.SessionTypes[m.typeIndex]).Render(value)

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStr,
		valueStyle.Width(cardWidth-10).Render(typeStr),
	)
}

// renderDeleteConfirm renders the delete confirmation dialog.
func (m *Model) renderDeleteConfirm() string {
	cardWidth := 50

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.WarningTextStyle.Bold(true).Render("Delete Session?"),
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

	if m.editing {
		shortcuts = []string{
			styles.HelpKeyStyle.Render("Tab") + " next",
			styles.HelpKeyStyle.Render("Enter") + " submit",
			styles.HelpKeyStyle.Render("Esc") + " cancel",
		}
	} else if m.confirmDelete {
		shortcuts = []string{
			styles.HelpKeyStyle.Render("Y") + " confirm",
			styles.HelpKeyStyle.Render("N") + " cancel",
		}
	} else if m.filtering {
		shortcuts = []string{
			styles.HelpKeyStyle.Render("Enter") + " apply",
			styles.HelpKeyStyle.Render("Esc") + " clear",
		}
	} else {
		shortcuts = []string{
			styles.HelpKeyStyle.Render("n") + " log",
			styles.HelpKeyStyle.Render("e") + " edit",
			styles.HelpKeyStyle.Render("d") + " delete",
			styles.HelpKeyStyle.Render("/") + " search",
			styles.HelpKeyStyle.Render("f") + " filter type",
			styles.HelpKeyStyle.Render("r") + " refresh",
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
