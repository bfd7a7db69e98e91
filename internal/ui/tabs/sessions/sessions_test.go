package sessions

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivercappis/BJJ-diary/internal/app"
	"github.com/olivercappis/BJJ-diary/internal/models"
)

func newTestModel() *Model {
	state := app.NewState()
	state.SetLoading("initial", false)
	return New(state, app.NewCommands(nil))
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew(t *testing.T) {
	m := newTestModel()
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.editing {
		t.Error("Should start in browse mode")
	}
}

func TestModel_Init(t *testing.T) {
	m := newTestModel()
	if m.Init() == nil {
		t.Error("Init returned nil")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel()
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Session Log") {
		t.Error("View should contain title")
	}
	if !strings.Contains(view, "No Sessions Logged") {
		t.Error("Empty state should be shown")
	}

	m.state.SetSessions([]models.Session{
		{ID: "s1", Date: time.Now(), Duration: 90, Type: models.SessionGi, Focus: "Half guard", Intensity: 7},
	}, models.SessionStats{TotalSessions: 1}, nil)

	view = m.View()
	if !strings.Contains(view, "Half guard") {
		t.Error("View should contain session focus")
	}
	if !strings.Contains(view, "90 min") {
		t.Error("View should contain duration")
	}
}

func TestModel_OpenForm(t *testing.T) {
	m := newTestModel()

	m.Update(keyRunes('n'))
	if !m.editing {
		t.Fatal("Should be in form mode after 'n'")
	}
	if m.editID != "" {
		t.Error("New form should have empty edit ID")
	}
	if m.dateInput.Value() != time.Now().Format(dateLayout) {
		t.Error("Date should default to today")
	}

	m.SetSize(100, 40)
	view := m.View()
	if !strings.Contains(view, "Log Session") {
		t.Error("Form view should show form title")
	}
}

func TestModel_FormNavigation(t *testing.T) {
	m := newTestModel()
	m.openForm(nil)

	if m.focusedField != fieldDate {
		t.Error("Form should start on date field")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedField != fieldType {
		t.Error("Tab should move to type field")
	}

	// Cycle session type
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.typeIndex != 1 {
		t.Errorf("typeIndex = %d, want 1", m.typeIndex)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.typeIndex != 0 {
		t.Errorf("typeIndex = %d, want 0", m.typeIndex)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focusedField != fieldDate {
		t.Error("Shift+tab should move back to date field")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.editing {
		t.Error("Esc should close the form")
	}
}

func TestModel_BuildSession(t *testing.T) {
	m := newTestModel()
	m.openForm(nil)

	m.dateInput.SetValue("2025-03-14")
	m.durationInput.SetValue("90")
	m.typeIndex = 1 // no-gi
	m.focusInput.SetValue("Leg locks")
	m.intensityInput.SetValue("8")
	m.roundsInput.SetValue("6")
	m.notesInput.SetValue("Good rounds")

	s, err := m.buildSession()
	if err != nil {
		t.Fatalf("buildSession failed: %v", err)
	}
	if s.Date.Format(dateLayout) != "2025-03-14" {
		t.Errorf("Date = %v", s.Date)
	}
	if s.Duration != 90 {
		t.Errorf("Duration = %d, want 90", s.Duration)
	}
	if s.Type != models.SessionNoGi {
		t.Errorf("Type = %v, want no-gi", s.Type)
	}
	if s.Intensity != 8 || s.SparringRounds != 6 {
		t.Errorf("Intensity = %d, Rounds = %d", s.Intensity, s.SparringRounds)
	}
}

func TestModel_BuildSession_Validation(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		duration  string
		intensity string
		rounds    string
	}{
		{"bad date", "14/03/2025", "60", "", ""},
		{"missing duration", "2025-03-14", "", "", ""},
		{"zero duration", "2025-03-14", "0", "", ""},
		{"intensity too high", "2025-03-14", "60", "11", ""},
		{"negative rounds", "2025-03-14", "60", "5", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			m.openForm(nil)
			m.dateInput.SetValue(tt.date)
			m.durationInput.SetValue(tt.duration)
			m.intensityInput.SetValue(tt.intensity)
			m.roundsInput.SetValue(tt.rounds)

			if _, err := m.buildSession(); err == nil {
				t.Error("buildSession should fail")
			}
		})
	}
}

func TestModel_SubmitForm(t *testing.T) {
	m := newTestModel()
	m.openForm(nil)

	// Invalid form keeps the form open with an error
	m.durationInput.SetValue("")
	m.focusedField = fieldSubmit
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.editing {
		t.Error("Invalid submit should keep form open")
	}
	if m.formError == "" {
		t.Error("Invalid submit should set form error")
	}

	// Valid form closes and dispatches the save
	m.durationInput.SetValue("60")
	m.focusedField = fieldSubmit
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.editing {
		t.Error("Valid submit should close form")
	}
	if cmd == nil {
		t.Error("Valid submit should dispatch save command")
	}
}

func TestModel_EditForm(t *testing.T) {
	m := newTestModel()
	sessions := []models.Session{
		{ID: "s1", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
			Duration: 75, Type: models.SessionNoGi, Focus: "Wrestling", Intensity: 6, SparringRounds: 5},
	}
	m.state.SetSessions(sessions, models.SessionStats{}, nil)
	m.updateTableData()

	m.Update(keyRunes('e'))
	if !m.editing {
		t.Fatal("Should be editing after 'e' with a selection")
	}
	if m.editID != "s1" {
		t.Errorf("editID = %q, want s1", m.editID)
	}
	if m.durationInput.Value() != "75" {
		t.Errorf("Duration prefill = %q, want 75", m.durationInput.Value())
	}
	if models.SessionTypes[m.typeIndex] != models.SessionNoGi {
		t.Error("Type prefill mismatch")
	}
}

func TestModel_DeleteConfirm(t *testing.T) {
	m := newTestModel()
	sessions := []models.Session{
		{ID: "s1", Date: time.Now(), Duration: 60, Type: models.SessionGi},
	}
	m.state.SetSessions(sessions, models.SessionStats{}, nil)
	m.updateTableData()

	m.Update(keyRunes('d'))
	if !m.confirmDelete {
		t.Fatal("Should be confirming delete")
	}

	// Cancel leaves the session alone
	m.Update(keyRunes('n'))
	if m.confirmDelete {
		t.Error("N should cancel confirmation")
	}

	// Confirm dispatches the delete
	m.Update(keyRunes('d'))
	_, cmd := m.Update(keyRunes('y'))
	if m.confirmDelete {
		t.Error("Y should close confirmation")
	}
	if cmd == nil {
		t.Error("Y should dispatch delete command")
	}
}

func TestModel_SelectedSession(t *testing.T) {
	m := newTestModel()
	if m.selectedSession() != nil {
		t.Error("Empty table should have no selection")
	}

	m.state.SetSessions([]models.Session{
		{ID: "s1", Date: time.Now(), Duration: 60, Type: models.SessionGi},
	}, models.SessionStats{}, nil)
	m.updateTableData()

	s := m.selectedSession()
	if s == nil || s.ID != "s1" {
		t.Error("Selected session should be s1")
	}
}

func TestModel_Help(t *testing.T) {
	m := newTestModel()
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}

	m.openForm(nil)
	if len(m.ShortHelp()) == 0 {
		t.Error("Form ShortHelp empty")
	}
}

func TestModel_SetSize(t *testing.T) {
	m := newTestModel()
	m.SetSize(120, 50)
	if m.width != 120 {
		t.Error("Width not set")
	}
}

func filterTestModel() *Model {
	m := newTestModel()
	m.state.SetSessions([]models.Session{
		{ID: "s1", Date: time.Date(2025, 3, 12, 19, 0, 0, 0, time.Local),
			Duration: 90, Type: models.SessionGi, Focus: "Half guard", Gym: "Alliance HQ"},
		{ID: "s2", Date: time.Date(2025, 3, 11, 19, 0, 0, 0, time.Local),
			Duration: 60, Type: models.SessionNoGi, Focus: "Leg locks"},
		{ID: "s3", Date: time.Date(2025, 3, 10, 19, 0, 0, 0, time.Local),
			Duration: 75, Type: models.SessionGi, Focus: "Passing", Notes: "worked on leg drags"},
	}, models.SessionStats{TotalSessions: 3}, nil)
	m.updateTableData()
	return m
}

func TestModel_TextFilter(t *testing.T) {
	m := filterTestModel()

	m.Update(keyRunes('/'))
	if !m.filtering {
		t.Fatal("Should be in filter mode after '/'")
	}

	for _, r := range "leg" {
		m.Update(keyRunes(r))
	}
	if len(m.sessions) != 2 {
		t.Fatalf("Expected 2 sessions matching %q, got %d", "leg", len(m.sessions))
	}

	// Enter keeps the filter applied but returns key focus to the table
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filtering {
		t.Error("Enter should leave filter input mode")
	}
	if !m.hasFilter() {
		t.Error("Filter should stay applied after enter")
	}
	if len(m.sessions) != 2 {
		t.Errorf("Expected filter to persist, got %d sessions", len(m.sessions))
	}

	// Esc in browse mode clears the applied filter
	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.hasFilter() {
		t.Error("Esc should clear the filter")
	}
	if len(m.sessions) != 3 {
		t.Errorf("Expected all sessions after clearing, got %d", len(m.sessions))
	}
}

func TestModel_TextFilter_MatchesGymAndNotes(t *testing.T) {
	m := filterTestModel()

	m.Update(keyRunes('/'))
	for _, r := range "alliance" {
		m.Update(keyRunes(r))
	}
	if len(m.sessions) != 1 || m.sessions[0].ID != "s1" {
		t.Errorf("Expected gym match for s1, got %+v", m.sessions)
	}
}

func TestModel_TypeFilter(t *testing.T) {
	m := filterTestModel()

	m.Update(keyRunes('f'))
	if m.filterTypeLabel() != models.SessionGi.String() {
		t.Fatalf("filterTypeLabel = %q, want %q", m.filterTypeLabel(), models.SessionGi.String())
	}
	if len(m.sessions) != 2 {
		t.Errorf("Expected 2 gi sessions, got %d", len(m.sessions))
	}

	m.Update(keyRunes('f'))
	if len(m.sessions) != 1 || m.sessions[0].Type != models.SessionNoGi {
		t.Errorf("Expected 1 no-gi session, got %d", len(m.sessions))
	}

	// Cycling through every type wraps back to all
	for i := 0; i < len(models.SessionTypes)-1; i++ {
		m.Update(keyRunes('f'))
	}
	if m.filterTypeLabel() != "All" {
		t.Errorf("filterTypeLabel = %q, want All", m.filterTypeLabel())
	}
	if len(m.sessions) != 3 {
		t.Errorf("Expected all sessions after wrap, got %d", len(m.sessions))
	}
}

func TestModel_FilterView(t *testing.T) {
	m := filterTestModel()
	m.SetSize(100, 40)

	m.Update(keyRunes('/'))
	for _, r := range "halfguardxyz" {
		m.Update(keyRunes(r))
	}

	view := m.View()
	if !strings.Contains(view, "No sessions match the current filter.") {
		t.Error("View should show the no-match message")
	}
	if !strings.Contains(view, "0 of 3 sessions") {
		t.Error("Subtitle should show the filtered count")
	}
}

func TestModel_FilteredSelection(t *testing.T) {
	m := filterTestModel()

	m.Update(keyRunes('/'))
	for _, r := range "passing" {
		m.Update(keyRunes(r))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	s := m.selectedSession()
	if s == nil || s.ID != "s3" {
		t.Errorf("Expected selection to follow the filtered view, got %+v", s)
	}
}
