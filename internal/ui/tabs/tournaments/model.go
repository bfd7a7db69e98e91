// Package tournaments provides the competition tracking tab for the BJJ diary TUI.
package tournaments

import (
	"fmt"
	"strconv"
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

// mode tracks which view the tab is showing.
type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeMatches
	modeMatchForm
)

// formField represents which field is currently focused in the tournament form.
type formField int

const (
	fieldName formField = iota
	fieldDate
	fieldLocation
	fieldType
	fieldBelt
	fieldWeight
	fieldPlacement
	fieldNotes
	fieldSubmit
	fieldCancel

	fieldCount
)

// matchField represents which field is currently focused in the match form.
type matchField int

const (
	matchFieldOpponent matchField = iota
	matchFieldResult
	matchFieldMethod
	matchFieldMyScore
	matchFieldOppScore
	matchFieldNotes
	matchFieldSubmit
	matchFieldCancel

	matchFieldCount
)

var matchResults = []models.MatchResult{models.ResultWin, models.ResultLoss, models.ResultDraw}

// keyMap defines the key bindings specific to the tournaments tab.
type keyMap struct {
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Enter   key.Binding
	Back    key.Binding
	Refresh key.Binding
}

// defaultKeyMap returns the default key bindings for the tournaments tab.
func defaultKeyMap() keyMap {
	return keyMap{
		New: key.NewBinding(
			key.WithKeys("n", "a"),
			key.WithHelp("n", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "matches"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// Model represents the tournaments tab state.
type Model struct {
	state       *app.State
	cmds        *app.Commands
	table       table.Model
	tournaments []models.Tournament
	spinner     components.LoadingSpinner
	keys        keyMap
	width       int
	height      int
	mode        mode

	// tournament form
	editID         string
	focusedField   formField
	typeIndex      int
	beltIndex      int
	nameInput      textinput.Model
	dateInput      textinput.Model
	locationInput  textinput.Model
	weightInput    textinput.Model
	placementInput textinput.Model
	notesInput     textinput.Model
	formError      string

	// matches view
	viewingID    string
	viewingName  string
	matchCursor  int
	matchField   matchField
	resultIndex  int
	methodIndex  int
	oppInput     textinput.Model
	myScoreInput textinput.Model
	opScoreInput textinput.Model
	mNotesInput  textinput.Model
	matchError   string

	confirmDelete bool
	deleteID      string
	deleteLabel   string
	deleteMatch   bool
}

// New creates a new tournaments model.
func New(state *app.State, cmds *app.Commands) *Model {
	mkInput := func(placeholder string, limit, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = width
		return in
	}

	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Name", Width: 28},
		{Title: "Type", Width: 8},
		{Title: "Belt", Width: 8},
		{Title: "Division", Width: 14},
		{Title: "Placement", Width: 10},
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
		spinner:        components.NewSpinner("Loading tournaments..."),
		keys:           defaultKeyMap(),
		nameInput:      mkInput("IBJJF Open", 100, 40),
		dateInput:      mkInput(dateLayout, 10, 12),
		locationInput:  mkInput("City, Country", 100, 40),
		weightInput:    mkInput("-76kg", 20, 12),
		placementInput: mkInput("0 for none", 2, 12),
		notesInput:     mkInput("Notes...", 500, 40),
		oppInput:       mkInput("Opponent name", 100, 40),
		myScoreInput:   mkInput("0", 3, 6),
		opScoreInput:   mkInput("0", 3, 6),
		mNotesInput:    mkInput("Notes...", 500, 40),
	}
}

// Init initializes the tournaments tab.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the tournaments tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	if m.confirmDelete {
		return m.updateDeleteConfirm(msg)
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeMatches:
		return m.updateMatches(msg)
	case modeMatchForm:
		return m.updateMatchForm(msg)
	}

	return m.updateBrowse(msg)
}

func (m *Model) updateBrowse(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.New):
			m.openForm(nil)
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Edit):
			if t := m.selectedTournament(); t != nil {
				m.openForm(t)
				return m, textinput.Blink
			}

		case key.Matches(msg, m.keys.Enter):
			if t := m.selectedTournament(); t != nil {
				m.mode = modeMatches
				m.viewingID = t.ID
				m.viewingName = t.Name
				m.matchCursor = 0
				return m, m.cmds.LoadMatches(t.ID)
			}

		case key.Matches(msg, m.keys.Delete):
			if t := m.selectedTournament(); t != nil {
				m.confirmDelete = true
				m.deleteMatch = false
				m.deleteID = t.ID
				m.deleteLabel = t.Name
			}

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}

	case app.TournamentsLoadedMsg:
		m.updateTableData()
	}

	return m, tea.Batch(cmds...)
}

// openForm prepares the form for a new tournament or for editing an existing one.
func (m *Model) openForm(t *models.Tournament) {
	m.mode = modeForm
	m.focusedField = fieldName
	m.formError = ""

	if t == nil {
		m.editID = ""
		m.typeIndex = 0
		m.beltIndex = 0
		m.nameInput.SetValue("")
		m.dateInput.SetValue(time.Now().Format(dateLayout))
		m.locationInput.SetValue("")
		m.weightInput.SetValue("")
		m.placementInput.SetValue("")
		m.notesInput.SetValue("")
	} else {
		m.editID = t.ID
		if t.Type == models.SessionNoGi {
			m.typeIndex = 1
		} else {
			m.typeIndex = 0
		}
		m.beltIndex = beltIndexOf(t.BeltRank)
		m.nameInput.SetValue(t.Name)
		m.dateInput.SetValue(t.Date.Format(dateLayout))
		m.locationInput.SetValue(t.Location)
		m.weightInput.SetValue(t.WeightClass)
		if t.Placement > 0 {
			m.placementInput.SetValue(strconv.Itoa(t.Placement))
		} else {
			m.placementInput.SetValue("")
		}
		m.notesInput.SetValue(t.Notes)
	}

	m.updateFormFocus()
}

func beltIndexOf(b models.BeltRank) int {
	for i, br := range models.BeltRanks {
		if br == b {
			return i
		}
	}
	return 0
}

// updateForm handles the tournament entry form.
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
			forward := msg.String() == "right"
			switch m.focusedField {
			case fieldType:
				m.typeIndex = (m.typeIndex + 1) % 2
				return m, nil
			case fieldBelt:
				n := len(models.BeltRanks)
				if forward {
					m.beltIndex = (m.beltIndex + 1) % n
				} else {
					m.beltIndex = (m.beltIndex - 1 + n) % n
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
	case fieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case fieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case fieldLocation:
		m.locationInput, cmd = m.locationInput.Update(msg)
	case fieldWeight:
		m.weightInput, cmd = m.weightInput.Update(msg)
	case fieldPlacement:
		m.placementInput, cmd = m.placementInput.Update(msg)
	case fieldNotes:
		m.notesInput, cmd = m.notesInput.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submitForm validates the tournament form and dispatches the save.
func (m *Model) submitForm() (app.Tab, tea.Cmd) {
	t, err := m.buildTournament()
	if err != nil {
		m.formError = err.Error()
		return m, nil
	}

	m.closeForm()
	return m, m.cmds.SaveTournament(t)
}

// buildTournament parses the form inputs into a tournament.
func (m *Model) buildTournament() (*models.Tournament, error) {
	name := m.nameInput.Value()
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	date, err := time.ParseInLocation(dateLayout, m.dateInput.Value(), time.Local)
	if err != nil {
		return nil, fmt.Errorf("date must be %s", dateLayout)
	}

	placement := 0
	if v := m.placementInput.Value(); v != "" {
		placement, err = strconv.Atoi(v)
		if err != nil || placement < 0 {
			return nil, fmt.Errorf("placement must be a non-negative number")
		}
	}

	tournType := models.SessionGi
	if m.typeIndex == 1 {
		tournType = models.SessionNoGi
	}

	return &models.Tournament{
		ID:          m.editID,
		Name:        name,
		Date:        date,
		Location:    m.locationInput.Value(),
		Type:        tournType,
		WeightClass: m.weightInput.Value(),
		BeltRank:    models.BeltRanks[m.beltIndex],
		Placement:   placement,
		Notes:       m.notesInput.Value(),
	}, nil
}

func (m *Model) closeForm() {
	m.mode = modeBrowse
	m.formError = ""
	m.blurInputs()
}

func (m *Model) blurInputs() {
	m.nameInput.Blur()
	m.dateInput.Blur()
	m.locationInput.Blur()
	m.weightInput.Blur()
	m.placementInput.Blur()
	m.notesInput.Blur()
}

// updateFormFocus updates which form field is focused.
func (m *Model) updateFormFocus() {
	m.blurInputs()

	switch m.focusedField {
	case fieldName:
		m.nameInput.Focus()
	case fieldDate:
		m.dateInput.Focus()
	case fieldLocation:
		m.locationInput.Focus()
	case fieldWeight:
		m.weightInput.Focus()
	case fieldPlacement:
		m.placementInput.Focus()
	case fieldNotes:
		m.notesInput.Focus()
	}
}

// updateMatches handles the match list view.
func (m *Model) updateMatches(msg tea.Msg) (app.Tab, tea.Cmd) {
	matches := m.state.GetMatches(m.viewingID)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.mode = modeBrowse
			m.viewingID = ""
			m.viewingName = ""
			return m, nil

		case key.Matches(msg, m.keys.New):
			m.openMatchForm()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Delete):
			if m.matchCursor >= 0 && m.matchCursor < len(matches) {
				match := matches[m.matchCursor]
				m.confirmDelete = true
				m.deleteMatch = true
				m.deleteID = match.ID
				m.deleteLabel = fmt.Sprintf("match vs %s", match.OpponentName)
			}

		default:
			switch msg.String() {
			case "j", "down":
				if m.matchCursor < len(matches)-1 {
					m.matchCursor++
				}
			case "k", "up":
				if m.matchCursor > 0 {
					m.matchCursor--
				}
			}
		}
	}

	return m, nil
}

// openMatchForm prepares the match entry form.
func (m *Model) openMatchForm() {
	m.mode = modeMatchForm
	m.matchField = matchFieldOpponent
	m.matchError = ""
	m.resultIndex = 0
	m.methodIndex = 0
	m.oppInput.SetValue("")
	m.myScoreInput.SetValue("")
	m.opScoreInput.SetValue("")
	m.mNotesInput.SetValue("")
	m.updateMatchFocus()
}

// updateMatchForm handles the match entry form.
func (m *Model) updateMatchForm(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = modeMatches
			m.matchError = ""
			return m, nil

		case "tab", "down":
			m.matchField = (m.matchField + 1) % matchFieldCount
			m.updateMatchFocus()
			return m, textinput.Blink

		case "shift+tab", "up":
			m.matchField = (m.matchField - 1 + matchFieldCount) % matchFieldCount
			m.updateMatchFocus()
			return m, textinput.Blink

		case "left", "right":
			forward := msg.String() == "right"
			switch m.matchField {
			case matchFieldResult:
				n := len(matchResults)
				if forward {
					m.resultIndex = (m.resultIndex + 1) % n
				} else {
					m.resultIndex = (m.resultIndex - 1 + n) % n
				}
				return m, nil
			case matchFieldMethod:
				n := len(models.MatchMethods)
				if forward {
					m.methodIndex = (m.methodIndex + 1) % n
				} else {
					m.methodIndex = (m.methodIndex - 1 + n) % n
				}
				return m, nil
			}

		case "enter":
			switch m.matchField {
			case matchFieldSubmit:
				return m.submitMatchForm()
			case matchFieldCancel:
				m.mode = modeMatches
				return m, nil
			default:
				m.matchField = (m.matchField + 1) % matchFieldCount
				m.updateMatchFocus()
				return m, textinput.Blink
			}
		}
	}

	var cmd tea.Cmd
	switch m.matchField {
	case matchFieldOpponent:
		m.oppInput, cmd = m.oppInput.Update(msg)
	case matchFieldMyScore:
		m.myScoreInput, cmd = m.myScoreInput.Update(msg)
	case matchFieldOppScore:
		m.opScoreInput, cmd = m.opScoreInput.Update(msg)
	case matchFieldNotes:
		m.mNotesInput, cmd = m.mNotesInput.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submitMatchForm validates the match form and dispatches the save.
func (m *Model) submitMatchForm() (app.Tab, tea.Cmd) {
	match, err := m.buildMatch()
	if err != nil {
		m.matchError = err.Error()
		return m, nil
	}

	m.mode = modeMatches
	return m, m.cmds.SaveMatch(match)
}

// buildMatch parses the match form inputs.
func (m *Model) buildMatch() (*models.Match, error) {
	myScore := 0
	oppScore := 0
	var err error

	if v := m.myScoreInput.Value(); v != "" {
		myScore, err = strconv.Atoi(v)
		if err != nil || myScore < 0 {
			return nil, fmt.Errorf("score must be a non-negative number")
		}
	}
	if v := m.opScoreInput.Value(); v != "" {
		oppScore, err = strconv.Atoi(v)
		if err != nil || oppScore < 0 {
			return nil, fmt.Errorf("score must be a non-negative number")
		}
	}

	return &models.Match{
		TournamentID:  m.viewingID,
		OpponentName:  m.oppInput.Value(),
		Result:        matchResults[m.resultIndex],
		Method:        models.MatchMethods[m.methodIndex],
		MyScore:       myScore,
		OpponentScore: oppScore,
		Notes:         m.mNotesInput.Value(),
	}, nil
}

// updateMatchFocus updates which match form field is focused.
func (m *Model) updateMatchFocus() {
	m.oppInput.Blur()
	m.myScoreInput.Blur()
	m.opScoreInput.Blur()
	m.mNotesInput.Blur()

	switch m.matchField {
	case matchFieldOpponent:
		m.oppInput.Focus()
	case matchFieldMyScore:
		m.myScoreInput.Focus()
	case matchFieldOppScore:
		m.opScoreInput.Focus()
	case matchFieldNotes:
		m.mNotesInput.Focus()
	}
}

// updateDeleteConfirm handles the delete confirmation for tournaments and matches.
func (m *Model) updateDeleteConfirm(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmDelete = false
			id := m.deleteID
			m.deleteID = ""
			m.deleteLabel = ""
			if m.deleteMatch {
				return m, m.cmds.DeleteMatch(id, m.viewingID)
			}
			return m, m.cmds.DeleteTournament(id)
		case "n", "N", "esc":
			m.confirmDelete = false
			m.deleteID = ""
			m.deleteLabel = ""
			return m, nil
		}
	}
	return m, nil
}

// selectedTournament returns the tournament under the table cursor.
func (m *Model) selectedTournament() *models.Tournament {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tournaments) {
		return nil
	}
	return &m.tournaments[idx]
}

// updateTableData updates the table with current tournament data.
func (m *Model) updateTableData() {
	m.tournaments = m.state.GetTournaments()
	rows := make([]table.Row, 0, len(m.tournaments))

	for _, t := range m.tournaments {
		placement := "-"
		if t.Placement > 0 {
			placement = ordinal(t.Placement)
		}

		name := t.Name
		if len(name) > 26 {
			name = name[:23] + "..."
		}

		division := t.WeightClass
		if division == "" {
			division = t.Division
		}
		if division == "" {
			division = "-"
		}

		rows = append(rows, table.Row{
			t.Date.Format(dateLayout),
			name,
			t.Type.String(),
			string(t.BeltRank),
			division,
			placement,
		})
	}

	m.table.SetRows(rows)
}

// ordinal formats a placement as 1st, 2nd, 3rd...
func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// SetSize sets the available size for the tournaments tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-10, 4))
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	switch m.mode {
	case modeForm, modeMatchForm:
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
			m.keys.Back,
		}
	case modeMatches:
		return []key.Binding{
			m.keys.New,
			m.keys.Delete,
			m.keys.Back,
		}
	}
	return []key.Binding{
		m.keys.New,
		m.keys.Enter,
		m.keys.Delete,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.New, m.keys.Edit},
		{m.keys.Enter, m.keys.Delete},
		{m.keys.Refresh},
	}
}
