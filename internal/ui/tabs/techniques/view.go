package techniques

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/ui/components"
	"github.com/olivercappis/BJJ-diary/internal/ui/styles"
)

// View renders the techniques tab.
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
		sections = append(sections, m.renderDetail())
		sections = append(sections, m.renderCategoryBreakdown())
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

// renderTitle renders the techniques tab title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Technique Library")

	summary := m.state.GetSummary()
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("%d techniques tracked", summary.Total))
	if summary.Total > 0 {
		subtitle = styles.HelpStyle.Render(fmt.Sprintf(
			"%d techniques tracked, avg proficiency %.1f/%d",
			summary.Total, summary.AverageProficiency, models.MaxProficiency))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderTable renders the techniques table.
func (m *Model) renderTable() string {
	techniques := m.state.GetTechniques()

	if len(techniques) == 0 {
		return m.renderEmptyState()
	}

	m.updateTableData()

	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}

	return styles.CardStyle.Width(cardWidth).Render(m.table.View())
}

// renderDetail renders the proficiency bar for the selected technique.
func (m *Model) renderDetail() string {
	tech := m.selectedTechnique()
	if tech == nil {
		return ""
	}

	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}

	var rows []string
	rows = append(rows, m.profBar.View(tech.ProficiencyLevel, tech.Name, cardWidth-6))

	if tech.Description != "" {
		desc := tech.Description
		if len(desc) > cardWidth-10 {
			desc = desc[:cardWidth-13] + "..."
		}
		rows = append(rows, styles.HelpStyle.Render("  "+desc))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderCategoryBreakdown renders a bar chart of techniques per category.
func (m *Model) renderCategoryBreakdown() string {
	summary := m.state.GetSummary()
	if summary.Total == 0 {
		return ""
	}

	var values []float64
	var labels []string
	for _, cat := range models.TechniqueCategories {
		count := summary.ByCategory[cat]
		if count == 0 {
			continue
		}
		values = append(values, float64(count))
		labels = append(labels, string(cat))
	}

	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.CardTitleStyle.Render("By Category"),
		components.RenderBarChart(values, labels, cardWidth-8),
	)

	return styles.CardStyle.Width(cardWidth).Render(content)
}

// renderEmptyState renders the empty state when no techniques exist.
func (m *Model) renderEmptyState() string {
	cardWidth := m.width - 6
	if cardWidth < 40 {
		cardWidth = 40
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.SubTitleStyle.Render("No Techniques Tracked"),
		"",
		styles.HelpStyle.Render("Build your personal technique library."),
		"",
		styles.InfoTextStyle.Render("Press 'n' to add a technique"),
		"",
	)

	return styles.CardStyle.Width(cardWidth).Render(content)
}

// renderForm renders the technique entry form.
func (m *Model) renderForm() string {
	cardWidth := m.width - 10
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
	}

	var rows []string

	formTitle := "Add Technique"
	if m.editID != "" {
		formTitle = "Edit Technique"
	}
	rows = append(rows, styles.CardTitleStyle.Render(formTitle))
	rows = append(rows, "")

	rows = append(rows, m.renderInputField("Name", m.nameInput.View(), fieldName, cardWidth))
	rows = append(rows, m.renderSelectorField("Category",
		string(models.TechniqueCategories[m.categoryIndex]), fieldCategory, cardWidth))
	rows = append(rows, m.renderSelectorField("Position",
		string(models.Positions[m.positionIndex]), fieldPosition, cardWidth))

	giValue := "Both"
	if m.giOnly {
		giValue = "Gi only"
	}
	rows = append(rows, m.renderSelectorField("Gi", giValue, fieldGiOnly, cardWidth))
	rows = append(rows, m.renderSelectorField("Proficiency",
		fmt.Sprintf("%d/%d", m.proficiency, models.MaxProficiency), fieldProficiency, cardWidth))

	rows = append(rows, m.renderInputField("Description", m.descInput.View(), fieldDescription, cardWidth))
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

	rows = append(rows, styles.HelpStyle.Render("Tab: next field | ←/→: change value | Enter: submit | Esc: cancel"))

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

// renderSelectorField renders a cycling selector field.
func (m *Model) renderSelectorField(label, value string, field formField, cardWidth int) string {
	labelStr := styles.BlurredStyle.Render("  " + label + ":")
	valueStyle := styles.BlurredBorderStyle
	if m.focusedField == field {
		labelStr = styles.FocusedStyle.Render("> " + label + ":")
		valueStyle = styles.FocusedBorderStyle
		value = fmt.Sprintf("< %s >", value)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStr,
		valueStyle.Width(cardWidth-10).Render(value),
	)
}

// renderDeleteConfirm renders the delete confirmation dialog.
func (m *Model) renderDeleteConfirm() string {
	cardWidth := 50

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.WarningTextStyle.Bold(true).Render("Delete Technique?"),
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
	} else {
		shortcuts = []string{
			styles.HelpKeyStyle.Render("n") + " add",
			styles.HelpKeyStyle.Render("e") + " edit",
			styles.HelpKeyStyle.Render("d") + " delete",
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
