package tournaments

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

func sampleTournaments() []models.Tournament {
	return []models.Tournament{
		{ID: "t1", Name: "Spring Open", Date: time.Date(2025, 4, 12, 0, 0, 0, 0, time.Local),
			Type: models.SessionGi, BeltRank: models.BeltBlue, WeightClass: "-76kg", Placement: 2},
	}
}

func TestNew(t *testing.T) {
	m := newTestModel()
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.mode != modeBrowse {
		t.Error("Should start in browse mode")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel()
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Competition") {
		t.Error("View should contain title")
	}
	if !strings.Contains(view, "No Tournaments Recorded") {
		t.Error("Empty state should be shown")
	}

	m.state.SetTournaments(sampleTournaments(), models.CompetitionRecord{
		Wins: 2, Losses: 1, SubmissionWins: 1, Tournaments: 1,
	})

	view = m.View()
	if !strings.Contains(view, "Spring Open") {
		t.Error("View should contain tournament name")
	}
	if !strings.Contains(view, "2W") {
		t.Error("View should show the record")
	}
	if !strings.Contains(view, "2nd") {
		t.Error("View should show placement as ordinal")
	}
}

func TestModel_OpenForm(t *testing.T) {
	m := newTestModel()
	m.SetSize(100, 40)

	m.Update(keyRunes('n'))
	if m.mode != modeForm {
		t.Fatal("Should be in form mode after 'n'")
	}

	view := m.View()
	if !strings.Contains(view, "Add Tournament") {
		t.Error("Form view should show form title")
	}
}

func TestModel_BuildTournament(t *testing.T) {
	m := newTestModel()
	m.openForm(nil)

	if _, err := m.buildTournament(); err == nil {
		t.Error("buildTournament should require a name")
	}

	m.nameInput.SetValue("Winter Open")
	m.dateInput.SetValue("2025-11-02")
	m.typeIndex = 1
	m.beltIndex = 1 // blue
	m.weightInput.SetValue("-70kg")
	m.placementInput.SetValue("1")

	tourn, err := m.buildTournament()
	if err != nil {
		t.Fatalf("buildTournament failed: %v", err)
	}
	if tourn.Type != models.SessionNoGi {
		t.Errorf("Type = %v, want no-gi", tourn.Type)
	}
	if tourn.BeltRank != models.BeltBlue {
		t.Errorf("BeltRank = %v, want blue", tourn.BeltRank)
	}
	if tourn.Placement != 1 {
		t.Errorf("Placement = %d, want 1", tourn.Placement)
	}

	// Bad date
	m.dateInput.SetValue("02/11/2025")
	if _, err := m.buildTournament(); err == nil {
		t.Error("buildTournament should reject bad date")
	}
}

func TestModel_EditForm(t *testing.T) {
	m := newTestModel()
	m.state.SetTournaments(sampleTournaments(), models.CompetitionRecord{})
	m.updateTableData()

	m.Update(keyRunes('e'))
	if m.mode != modeForm {
		t.Fatal("Should be in form mode after 'e'")
	}
	if m.editID != "t1" {
		t.Errorf("editID = %q, want t1", m.editID)
	}
	if m.nameInput.Value() != "Spring Open" {
		t.Error("Name prefill mismatch")
	}
	if models.BeltRanks[m.beltIndex] != models.BeltBlue {
		t.Error("Belt prefill mismatch")
	}
}

func TestModel_MatchesView(t *testing.T) {
	m := newTestModel()
	m.SetSize(100, 40)
	m.state.SetTournaments(sampleTournaments(), models.CompetitionRecord{})
	m.updateTableData()

	// Enter opens the match list and requests a load
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeMatches {
		t.Fatal("Enter should open the matches view")
	}
	if m.viewingID != "t1" {
		t.Errorf("viewingID = %q, want t1", m.viewingID)
	}
	if cmd == nil {
		t.Error("Opening matches should dispatch a load command")
	}

	view := m.View()
	if !strings.Contains(view, "No matches recorded") {
		t.Error("Empty match list should be shown")
	}

	m.state.SetMatches("t1", []models.Match{
		{ID: "m1", TournamentID: "t1", OpponentName: "A. Silva",
			Result: models.ResultWin, Method: models.MethodPoints, MyScore: 6, OpponentScore: 2},
		{ID: "m2", TournamentID: "t1", OpponentName: "B. Costa",
			Result: models.ResultLoss, Method: models.MethodSubmission},
	})

	view = m.View()
	if !strings.Contains(view, "A. Silva") {
		t.Error("Match list should show opponents")
	}
	if !strings.Contains(view, "(6-2)") {
		t.Error("Points matches should show the score")
	}

	// Cursor movement
	m.Update(keyRunes('j'))
	if m.matchCursor != 1 {
		t.Errorf("matchCursor = %d, want 1", m.matchCursor)
	}
	m.Update(keyRunes('k'))
	if m.matchCursor != 0 {
		t.Errorf("matchCursor = %d, want 0", m.matchCursor)
	}

	// Esc returns to browse
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeBrowse {
		t.Error("Esc should return to browse mode")
	}
}

func TestModel_MatchForm(t *testing.T) {
	m := newTestModel()
	m.state.SetTournaments(sampleTournaments(), models.CompetitionRecord{})
	m.updateTableData()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Update(keyRunes('n'))
	if m.mode != modeMatchForm {
		t.Fatal("Should be in match form mode")
	}

	// Cycle result to loss
	m.matchField = matchFieldResult
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if matchResults[m.resultIndex] != models.ResultLoss {
		t.Error("Right should cycle the result")
	}

	m.oppInput.SetValue("C. Dias")
	m.myScoreInput.SetValue("4")
	m.opScoreInput.SetValue("2")

	match, err := m.buildMatch()
	if err != nil {
		t.Fatalf("buildMatch failed: %v", err)
	}
	if match.TournamentID != "t1" {
		t.Errorf("TournamentID = %q, want t1", match.TournamentID)
	}
	if match.Result != models.ResultLoss || match.MyScore != 4 {
		t.Error("Match fields mismatch")
	}

	// Invalid score
	m.myScoreInput.SetValue("x")
	if _, err := m.buildMatch(); err == nil {
		t.Error("buildMatch should reject non-numeric score")
	}

	// Valid submit dispatches save
	m.myScoreInput.SetValue("4")
	m.matchField = matchFieldSubmit
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeMatches {
		t.Error("Submit should return to the match list")
	}
	if cmd == nil {
		t.Error("Submit should dispatch save command")
	}
}

func TestModel_DeleteConfirm(t *testing.T) {
	m := newTestModel()
	m.state.SetTournaments(sampleTournaments(), models.CompetitionRecord{})
	m.updateTableData()

	m.Update(keyRunes('d'))
	if !m.confirmDelete {
		t.Fatal("Should be confirming delete")
	}
	if m.deleteMatch {
		t.Error("Should be a tournament delete")
	}

	_, cmd := m.Update(keyRunes('y'))
	if cmd == nil {
		t.Error("Y should dispatch delete command")
	}
}

func TestModel_DeleteMatchConfirm(t *testing.T) {
	m := newTestModel()
	m.state.SetTournaments(sampleTournaments(), models.CompetitionRecord{})
	m.updateTableData()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.state.SetMatches("t1", []models.Match{
		{ID: "m1", TournamentID: "t1", OpponentName: "A. Silva", Result: models.ResultWin},
	})

	m.Update(keyRunes('d'))
	if !m.confirmDelete || !m.deleteMatch {
		t.Fatal("Should be confirming a match delete")
	}

	_, cmd := m.Update(keyRunes('y'))
	if cmd == nil {
		t.Error("Y should dispatch match delete command")
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"}, {21, "21st"},
	}

	for _, tt := range tests {
		if got := ordinal(tt.n); got != tt.want {
			t.Errorf("ordinal(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestModel_Help(t *testing.T) {
	m := newTestModel()
	if len(m.ShortHelp()) == 0 || len(m.FullHelp()) == 0 {
		t.Error("Help bindings empty")
	}

	m.mode = modeMatches
	if len(m.ShortHelp()) == 0 {
		t.Error("Matches ShortHelp empty")
	}
}
