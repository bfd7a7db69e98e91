// Package sessions provides the session log tab for the BJJ diary TUI.
package sessions

import (
	"fmt"
	"strconv"
	"strings"
	"time"

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

const dateLayout = "2006-01-02"

// formField represents which field is currently focused in the session form.
type formField int

const (
	fieldDate formField = iota
	fieldType
	fieldDuration
	fieldFocus
	fieldIntensity
	fieldRounds
	fieldNotes
	fieldSubmit
	fieldCancel

	fieldCount
)

// keyMap defines the key bindings specific to the sessions tab.
type keyMap struct {
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Filter     key.Binding
	FilterType key.Binding
	Refresh    key.Binding
	Escape     key.Binding
}

// defaultKeyMap returns the default key bindings for the sessions tab.
func defaultKeyMap() keyMap {
	return keyMap{
		New: key.NewBinding(
			key.WithKeys("n", "a"),
			key.WithHelp("n", "log session"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		FilterType: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter type"),
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

// Model represents the sessions tab state.
type Model struct {
	state          *app.State
	cmds           *app.Commands
	table          table.Model
	sessions       []models.Session
	spinner        components.LoadingSpinner
	keys           keyMap
	width          int
	height         int
	editing        bool
	editID         string
	focusedField   formField
	typeIndex      int
	dateInput      textinput.Model
	durationInput  textinput.Model
	focusInput     textinput.Model
	intensityInput textinput.Model
	roundsInput    textinput.Model
	notesInput     textinput.Model
	formError      string
	confirmDelete  bool
	deleteID       string
	deleteLabel    string

	// Filter state. filterTypeIndex 0 means all types; i > 0 selects
	// models.SessionTypes[i-1].
	filtering       bool
	filterInput     textinput.Model
	filterTypeIndex int
}

// New creates a new sessions model.
func New(state *app.State, cmds *app.Commands) *Model {
	dateInput := textinput.New()
	dateInput.Placeholder = dateLayout
	dateInput.CharLimit = 10
	dateInput.Width = 12

	durationInput := textinput.New()
	durationInput.Placeholder = "90"
	durationInput.CharLimit = 4
	durationInput.Width = 6

	focusInput := textinput.New()
	focusInput.Placeholder = "Guard retention, leg locks..."
	focusInput.CharLimit = 100
	focusInput.Width = 40

	intensityInput := textinput.New()
	intensityInput.Placeholder = "1-10"
	intensityInput.CharLimit = 2
	intensityInput.Width = 6

	roundsInput := textinput.New()
	roundsInput.Placeholder = "0"
	roundsInput.CharLimit = 3
	roundsInput.Width = 6

	notesInput := textinput.New()
	notesInput.Placeholder = "Notes..."
	notesInput.CharLimit = 500
	notesInput.Width = 40

	filterInput := textinput.New()
	filterInput.Placeholder = "Search focus, notes, gym..."
	filterInput.CharLimit = 50
	filterInput.Width = 30

	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 14},
		{Title: "Duration", Width: 10},
		{Title: "Intensity", Width: 10},
		{Title: "Rounds", Width: 8},
		{Title: "Focus", Width: 30},
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
		state:          state,
		cmds:           cmds,
		table:          t,
		spinner:        components.NewSpinner("Loading sessions..."),
		keys:           defaultKeyMap(),
		dateInput:      dateInput,
		durationInput:  durationInput,
		focusInput:     focusInput,
		intensityInput: intensityInput,
		roundsInput:    roundsInput,
		notesInput:     notesInput,
		filterInput:    filterInput,
	}
}

// Init initializes the sessions tab.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the sessions tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	if m.editing {
		return m.updateForm(msg)
	}

	if m.confirmDelete {
		return m.updateDeleteConfirm(msg)
	}

	if m.filtering {
		return m.updateFilter(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.New):
			m.openForm(nil)
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Edit):
			if s := m.selectedSession(); s != nil {
				m.openForm(s)
				return m, textinput.Blink
			}

		case key.Matches(msg, m.keys.Delete):
			if s := m.selectedSession(); s != nil {
				m.confirmDelete = true
				m.deleteID = s.ID
				m.deleteLabel = fmt.Sprintf("%s %s session", s.Date.Format(dateLayout), s.Type.String())
			}

		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			m.filterInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.FilterType):
			m.filterTypeIndex = (m.filterTypeIndex + 1) % (len(models.SessionTypes) + 1)
			m.updateTableData()
			return m, nil

		case key.Matches(msg, m.keys.Escape):
			if m.hasFilter() {
				m.clearFilter()
				return m, nil
			}

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}

	case app.SessionsLoadedMsg:
		m.updateTableData()
	}

	return m, tea.Batch(cmds...)
}

// updateFilter handles the search input while it has focus.
func (m *Model) updateFilter(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.clearFilter()
			return m, nil

		case "enter":
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		}

	case app.SessionsLoadedMsg:
		m.updateTableData()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.updateTableData()
	return m, cmd
}

// hasFilter reports whether any filter narrows the session list.
func (m *Model) hasFilter() bool {
	return m.filterTypeIndex > 0 || strings.TrimSpace(m.filterInput.Value()) != ""
}

func (m *Model) clearFilter() {
	m.filtering = false
	m.filterTypeIndex = 0
	m.filterInput.SetValue("")
	m.filterInput.Blur()
	m.updateTableData()
}

// filterTypeLabel names the active type filter.
func (m *Model) filterTypeLabel() string {
	if m.filterTypeIndex == 0 {
		return "All"
	}
	return models.SessionTypes[m.filterTypeIndex-1].String()
}

// visibleSessions applies the type and text filters.
func (m *Model) visibleSessions(sessions []models.Session) []models.Session {
	if !m.hasFilter() {
		return sessions
	}

	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))

	var out []models.Session
	for _, s := range sessions {
		if m.filterTypeIndex > 0 && s.Type != models.SessionTypes[m.filterTypeIndex-1] {
			continue
		}
		if query != "" && !sessionMatches(s, query) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func sessionMatches(s models.Session, query string) bool {
	for _, field := range []string{s.Focus, s.Notes, s.Gym, s.Instructor} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// openForm prepares the form for a new session or for editing an existing one.
func (m *Model) openForm(s *models.Session) {
	m.editing = true
	m.focusedField = fieldDate
	m.formError = ""

	if s == nil {
		m.editID = ""
		m.typeIndex = 0
		m.dateInput.SetValue(time.Now().Format(dateLayout))
		m.durationInput.SetValue("")
		m.focusInput.SetValue("")
		m.intensityInput.SetValue("")
		m.roundsInput.SetValue("")
		m.notesInput.SetValue("")
	} else {
		m.editID = s.ID
		m.typeIndex = typeIndexOf(s.Type)
		m.dateInput.SetValue(s.Date.Format(dateLayout))
		m.durationInput.SetValue(strconv.Itoa(s.Duration))
		m.focusInput.SetValue(s.Focus)
		if s.Intensity > 0 {
			m.intensityInput.SetValue(strconv.Itoa(s.Intensity))
		} else {
			m.intensityInput.SetValue("")
		}
		m.roundsInput.SetValue(strconv.Itoa(s.SparringRounds))
		m.notesInput.SetValue(s.Notes)
	}

	m.updateFormFocus()
}

func typeIndexOf(t models.SessionType) int {
	for i, st := range models.SessionTypes {
		if st == t {
			return i
		}
	}
	return 0
}

// updateForm handles the session entry form.
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
			if m.focusedField == fieldType {
				n := len(models.SessionTypes)
				if msg.String() == "right" {
					m.typeIndex = (m.typeIndex + 1) % n
				} else {
					m.typeIndex = (m.typeIndex - 1 + n) % n
				}
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
	case fieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case fieldDuration:
		m.durationInput, cmd = m.durationInput.Update(msg)
	case fieldFocus:
		m.focusInput, cmd = m.focusInput.Update(msg)
	case fieldIntensity:
		m.intensityInput, cmd = m.intensityInput.Update(msg)
	case fieldRounds:
		m.roundsInput, cmd = m.roundsInput.Update(msg)
	case fieldNotes:
		m.notesInput, cmd = m.notesInput.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submitForm validates the form and dispatches the save.
func (m *Model) submitForm() (app.Tab, tea.Cmd) {
	s, err := m.buildSession()
	if err != nil {
		m.formError = err.Error()
		return m, nil
	}

	m.closeForm()
	return m, m.cmds.SaveSession(s)
}

// buildSession parses the form inputs into a session.
func (m *Model) buildSession() (*models.Session, error) {
	date, err := time.ParseInLocation(dateLayout, m.dateInput.Value(), time.Local)
	if err != nil {
		return nil, fmt.Errorf("date must be %s", dateLayout)
	}

	duration, err := strconv.Atoi(m.durationInput.Value())
	if err != nil || duration <= 0 {
		return nil, fmt.Errorf("duration must be a positive number of minutes")
	}

	intensity := 0
	if v := m.intensityInput.Value(); v != "" {
		intensity, err = strconv.Atoi(v)
		if err != nil || intensity < 1 || intensity > 10 {
			return nil, fmt.Errorf("intensity must be between 1 and 10")
		}
	}

	rounds := 0
	if v := m.roundsInput.Value(); v != "" {
		rounds, err = strconv.Atoi(v)
		if err != nil || rounds < 0 {
			return nil, fmt.Errorf("rounds must be a non-negative number")
		}
	}

	return &models.Session{
		ID:             m.editID,
		Date:           date,
		Duration:       duration,
		Type:           models.SessionTypes[m.typeIndex],
		Focus:          m.focusInput.Value(),
		Intensity:      intensity,
		SparringRounds: rounds,
		Notes:          m.notesInput.Value(),
	}, nil
}

func (m *Model) closeForm() {
	m.editing = false
	m.formError = ""
	m.blurInputs()
}

func (m *Model) blurInputs() {
	m.dateInput.Blur()
	m.durationInput.Blur()
	m.focusInput.Blur()
	m.intensityInput.Blur()
	m.roundsInput.Blur()
	m.notesInput.Blur()
}

// updateFormFocus updates which form field is focused.
func (m *Model) updateFormFocus() {
	m.blurInputs()

	switch m.focusedField {
	case fieldDate:
		m.dateInput.Focus()
	case fieldDuration:
		m.durationInput.Focus()
	case fieldFocus:
		m.focusInput.Focus()
	case fieldIntensity:
		m.intensityInput.Focus()
	case fieldRounds:
		m.roundsInput.Focus()
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
			return m, m.cmds.DeleteSession(id)
		case "n", "N", "esc":
			m.confirmDelete = false
			m.deleteID = ""
			m.deleteLabel = ""
			return m, nil
		}
	}
	return m, nil
}

// selectedSession returns the session under the table cursor.
func (m *Model) selectedSession() *models.Session {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.sessions) {
		return nil
	}
	return &m.sessions[idx]
}

// updateTableData updates the table with current session data, applying
// any active filters. The cursor indexes m.sessions, so edit and delete
// act on the filtered view.
func (m *Model) updateTableData() {
	m.sessions = m.visibleSessions(m.state.GetSessions())
	rows := make([]table.Row, 0, len(m.sessions))

	for _, s := range m.sessions {
		intensity := "-"
		if s.Intensity > 0 {
			intensity = strconv.Itoa(s.Intensity)
		}

		focus := s.Focus
		if len(focus) > 28 {
			focus = focus[:25] + "..."
		}

		rows = append(rows, table.Row{
			s.Date.Format(dateLayout),
			s.Type.String(),
			fmt.Sprintf("%d min", s.Duration),
			intensity,
			strconv.Itoa(s.SparringRounds),
			focus,
		})
	}

	m.table.SetRows(rows)
}

// SetSize sets the available size for the sessions tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-10, 4))

	focusWidth := width - 66
	if focusWidth < 20 {
		focusWidth = 20
	}
	if focusWidth > 40 {
		focusWidth = 40
	}

	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 14},
		{Title: "Duration", Width: 10},
		{Title: "Intensity", Width: 10},
		{Title: "Rounds", Width: 8},
		{Title: "Focus", Width: focusWidth},
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
	if m.filtering {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	return []key.Binding{
		m.keys.New,
		m.keys.Edit,
		m.keys.Delete,
		m.keys.Filter,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.New, m.keys.Edit, m.keys.Delete},
		{m.keys.Filter, m.keys.FilterType, m.keys.Refresh},
	}
}
