// Package techniques provides the technique library tab for the BJJ diary TUI.
package techniques

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivercappis/BJJ-diary/internal/app"
	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/ui/components"
	"github.com/olivercappis/BJJ-diary/internal/ui/styles"
)

var errNameRequired = errors.New("name is required")

// formField represents which field is currently focused in the technique form.
type formField int

const (
	fieldName formField = iota
	fieldCategory
	fieldPosition
	fieldGiOnly
	fieldProficiency
	fieldDescription
	fieldNotes
	fieldSubmit
	fieldCancel

	fieldCount
)

// keyMap defines the key bindings specific to the techniques tab.
type keyMap struct {
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Raise   key.Binding
	Lower   key.Binding
	Refresh key.Binding
	Escape  key.Binding
}

// defaultKeyMap returns the default key bindings for the techniques tab.
func defaultKeyMap() keyMap {
	return keyMap{
		New: key.NewBinding(
			key.WithKeys("n", "a"),
			key.WithHelp("n", "add technique"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Raise: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise proficiency"),
		),
		Lower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "lower proficiency"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Model represents the techniques tab state.
type Model struct {
	state         *app.State
	cmds          *app.Commands
	table         table.Model
	techniques    []models.Technique
	profBar       components.ProficiencyBar
	spinner       components.LoadingSpinner
	keys          keyMap
	width         int
	height        int
	editing       bool
	editID        string
	focusedField  formField
	categoryIndex int
	positionIndex int
	giOnly        bool
	proficiency   int
	nameInput     textinput.Model
	descInput     textinput.Model
	notesInput    textinput.Model
	formError     string
	confirmDelete bool
	deleteID      string
	deleteLabel   string
}

// New creates a new techniques model.
func New(state *app.State, cmds *app.Commands) *Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "Armbar from closed guard"
	nameInput.CharLimit = 100
	nameInput.Width = 40

	descInput := textinput.New()
	descInput.Placeholder = "Key details..."
	descInput.CharLimit = 500
	descInput.Width = 40

	notesInput := textinput.New()
	notesInput.Placeholder = "Notes..."
	notesInput.CharLimit = 500
	notesInput.Width = 40

	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Category", Width: 12},
		{Title: "Position", Width: 16},
		{Title: "Gi", Width: 6},
		{Title: "Proficiency", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.TextPrimary).
		Background(styles.BgAccent).
		Bold(true)
	t.SetStyles(s)

	return &Model{
		state:       state,
		cmds:        cmds,
		table:       t,
		profBar:     components.NewProficiencyBar(30),
		spinner:     components.NewSpinner("Loading techniques..."),
		keys:        defaultKeyMap(),
		proficiency: models.MinProficiency,
		nameInput:   nameInput,
		descInput:   descInput,
		notesInput:  notesInput,
	}
}

// Init initializes the techniques tab.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the techniques tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	if m.editing {
		return m.updateForm(msg)
	}

	if m.confirmDelete {
		return m.updateDeleteConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.New):
			m.openForm(nil)
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Edit):
			if tech := m.selectedTechnique(); tech != nil {
				m.openForm(tech)
				return m, textinput.Blink
			}

		case key.Matches(msg, m.keys.Delete):
			if tech := m.selectedTechnique(); tech != nil {
				m.confirmDelete = true
				m.deleteID = tech.ID
				m.deleteLabel = tech.Name
			}

		case key.Matches(msg, m.keys.Raise):
			return m, m.adjustProficiency(1)

		case key.Matches(msg, m.keys.Lower):
			return m, m.adjustProficiency(-1)

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}

	case app.TechniquesLoadedMsg:
		m.updateTableData()
	}

	return m, tea.Batch(cmds...)
}

// openForm prepares the form for a new technique or for editing an existing one.
func (m *Model) openForm(tech *models.Technique) {
	m.editing = true
	m.focusedField = fieldName
	m.formError = ""

	if tech == nil {
		m.editID = ""
		m.categoryIndex = 0
		m.positionIndex = 0
		m.giOnly = false
		m.proficiency = models.MinProficiency
		m.nameInput.SetValue("")
		m.descInput.SetValue("")
		m.notesInput.SetValue("")
	} else {
		m.editID = tech.ID
		m.categoryIndex = categoryIndexOf(tech.Category)
		m.positionIndex = positionIndexOf(tech.Position)
		m.giOnly = tech.GiOnly
		m.proficiency = tech.ProficiencyLevel
		if m.proficiency < models.MinProficiency {
			m.proficiency = models.MinProficiency
		}
		m.nameInput.SetValue(tech.Name)
		m.descInput.SetValue(tech.Description)
		m.notesInput.SetValue(tech.Notes)
	}

	m.updateFormFocus()
}

func categoryIndexOf(c models.TechniqueCategory) int {
	for i, tc := range models.TechniqueCategories {
		if tc == c {
			return i
		}
	}
	return 0
}

func positionIndexOf(p models.Position) int {
	for i, pos := range models.Positions {
		if pos == p {
			return i
		}
	}
	return 0
}

// updateForm handles the technique entry form.
func (m *Model) updateForm(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.closeForm()
			return m, nil

		case "tab", "down":
			m.focusedField = (m.focusedField + 1) % fieldCount
			m.updateFormFocus()
			return m, textinput.Blink

		case "shift+tab", "up":
			m.focusedField = (m.focusedField - 1 + fieldCount) % fieldCount
			m.updateFormFocus()
			return m, textinput.Blink

		case "left", "right":
			if m.cycleField(msg.String() == "right") {
				return m, nil
			}

		case " ":
			if m.focusedField == fieldGiOnly {
				m.giOnly = !m.giOnly
				return m, nil
			}

		case "enter":
			switch m.focusedField {
			case fieldSubmit:
				return m.submitForm()
			case fieldCancel:
				m.closeForm()
				return m, nil
			default:
				m.focusedField = (m.focusedField + 1) % fieldCount
				m.updateFormFocus()
				return m, textinput.Blink
			}
		}
	}

	var cmd tea.Cmd
	switch m.focusedField {
	case fieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case fieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	case fieldNotes:
		m.notesInput, cmd = m.notesInput.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// cycleField advances the focused selector field. It reports whether the
// key was consumed.
func (m *Model) cycleField(forward bool) bool {
	step := -1
	if forward {
		step = 1
	}

	switch m.focusedField {
	case fieldCategory:
		n := len(models.TechniqueCategories)
		m.categoryIndex = (m.categoryIndex + step + n) % n
	case fieldPosition:
		n := len(models.Positions)
		m.positionIndex = (m.positionIndex + step + n) % n
	case fieldGiOnly:
		m.giOnly = !m.giOnly
	case fieldProficiency:
		m.proficiency += step
		if m.proficiency < models.MinProficiency {
			m.proficiency = models.MinProficiency
		}
		if m.proficiency > models.MaxProficiency {
			m.proficiency = models.MaxProficiency
		}
	default:
		return false
	}
	return true
}

// adjustProficiency moves the selected technique's proficiency by delta
// and saves it. Levels are clamped to the valid range.
func (m *Model) adjustProficiency(delta int) tea.Cmd {
	tech := m.selectedTechnique()
	if tech == nil {
		return nil
	}

	level := tech.ProficiencyLevel + delta
	if level < models.MinProficiency {
		level = models.MinProficiency
	}
	if level > models.MaxProficiency {
		level = models.MaxProficiency
	}
	if level == tech.ProficiencyLevel {
		return nil
	}

	updated := *tech
	updated.ProficiencyLevel = level
	return m.cmds.SaveTechnique(&updated)
}

// submitForm validates the form and dispatches the save.
func (m *Model) submitForm() (app.Tab, tea.Cmd) {
	tech, err := m.buildTechnique()
	if err != nil {
		m.formError = err.Error()
		return m, nil
	}

	m.closeForm()
	return m, m.cmds.SaveTechnique(tech)
}

// buildTechnique parses the form inputs into a technique.
func (m *Model) buildTechnique() (*models.Technique, error) {
	name := m.nameInput.Value()
	if name == "" {
		return nil, errNameRequired
	}

	return &models.Technique{
		ID:               m.editID,
		Name:             name,
		Category:         models.TechniqueCategories[m.categoryIndex],
		Position:         models.Positions[m.positionIndex],
		GiOnly:           m.giOnly,
		Description:      m.descInput.Value(),
		Notes:            m.notesInput.Value(),
		ProficiencyLevel: m.proficiency,
	}, nil
}

func (m *Model) closeForm() {
	m.editing = false
	m.formError = ""
	m.nameInput.Blur()
	m.descInput.Blur()
	m.notesInput.Blur()
}

// updateFormFocus updates which form field is focused.
func (m *Model) updateFormFocus() {
	m.nameInput.Blur()
	m.descInput.Blur()
	m.notesInput.Blur()

	switch m.focusedField {
	case fieldName:
		m.nameInput.Focus()
	case fieldDescription:
		m.descInput.Focus()
	case fieldNotes:
		m.notesInput.Focus()
	}
}

// updateDeleteConfirm handles the delete confirmation.
func (m *Model) updateDeleteConfirm(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmDelete = false
			id := m.deleteID
			m.deleteID = ""
			m.deleteLabel = ""
			return m, m.cmds.DeleteTechnique(id)
		case "n", "N", "esc":
			m.confirmDelete = false
			m.deleteID = ""
			m.deleteLabel = ""
			return m, nil
		}
	}
	return m, nil
}

// selectedTechnique returns the technique under the table cursor.
func (m *Model) selectedTechnique() *models.Technique {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.techniques) {
		return nil
	}
	return &m.techniques[idx]
}

// updateTableData updates the table with current technique data.
func (m *Model) updateTableData() {
	m.techniques = m.state.GetTechniques()
	rows := make([]table.Row, 0, len(m.techniques))

	for _, tech := range m.techniques {
		gi := "Both"
		if tech.GiOnly {
			gi = "Gi"
		}

		name := tech.Name
		if len(name) > 28 {
			name = name[:25] + "..."
		}

		rows = append(rows, table.Row{
			name,
			string(tech.Category),
			string(tech.Position),
			gi,
			strconv.Itoa(tech.ProficiencyLevel) + "/" + strconv.Itoa(models.MaxProficiency),
		})
	}

	m.table.SetRows(rows)
}

// SetSize sets the available size for the techniques tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-12, 4))

	nameWidth := width - 52
	if nameWidth < 20 {
		nameWidth = 20
	}
	if nameWidth > 40 {
		nameWidth = 40
	}

	columns := []table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Category", Width: 12},
		{Title: "Position", Width: 16},
		{Title: "Gi", Width: 6},
		{Title: "Proficiency", Width: 12},
	}
	m.table.SetColumns(columns)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	if m.editing {
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
			m.keys.Escape,
		}
	}
	return []key.Binding{
		m.keys.New,
		m.keys.Edit,
		m.keys.Delete,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.New, m.keys.Edit, m.keys.Delete},
		{m.keys.Raise, m.keys.Lower, m.keys.Refresh},
	}
}
