package app

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivercappis/BJJ-diary/internal/config"
	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/services"
)

func TestNewModel(t *testing.T) {
	model := NewModel(nil)
	if model == nil {
		t.Fatal("NewModel returned nil")
	}
	if model.state == nil {
		t.Error("State should be initialized")
	}
	if model.activeTab != TabDashboard {
		t.Error("Default tab should be Dashboard")
	}
	if len(model.tabs) != 4 {
		t.Errorf("Should have 4 tabs placeholder, got %d", len(model.tabs))
	}
}

func TestModel_Init(t *testing.T) {
	model := NewModel(nil)
	cmd := model.Init()
	if cmd == nil {
		t.Error("Init returned nil command")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	model := NewModel(nil)
	msg := tea.WindowSizeMsg{Width: 100, Height: 50}

	newModel, _ := model.Update(msg)

	m, ok := newModel.(*Model)
	if !ok {
		t.Fatal("Update returned wrong model type")
	}

	if m.width != 100 {
		t.Errorf("Width = %d, want 100", m.width)
	}
	if m.height != 50 {
		t.Errorf("Height = %d, want 50", m.height)
	}
	if !m.ready {
		t.Error("Model should be ready after WindowSizeMsg")
	}
}

func TestModel_Update_TabSwitch(t *testing.T) {
	model := NewModel(nil)
	model.ready = true
	model.width = 100
	model.height = 50

	msg := TabSwitchMsg{Tab: TabSessions}
	newModel, _ := model.Update(msg)
	m := newModel.(*Model)

	if m.activeTab != TabSessions {
		t.Errorf("ActiveTab = %v, want Sessions", m.activeTab)
	}

	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if model.activeTab != TabTechniques {
		t.Errorf("ActiveTab = %v, want Techniques after key '3'", model.activeTab)
	}

	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	if model.activeTab != TabTournaments {
		t.Errorf("ActiveTab = %v, want Tournaments after key '4'", model.activeTab)
	}
}

func TestModel_Update_Tick(t *testing.T) {
	model := NewModel(nil)
	msg := TickMsg{Time: time.Now()}

	_, cmd := model.Update(msg)
	if cmd == nil {
		t.Error("TickMsg should return a command (next tick)")
	}
}

func TestModel_View(t *testing.T) {
	model := NewModel(nil)

	// Not ready
	view := model.View()
	if !strings.Contains(view, "Loading...") {
		t.Error("View should show Loading when not ready")
	}

	// Ready
	model.ready = true
	model.width = 80
	model.height = 24

	view = model.View()
	if !strings.Contains(view, "Dashboard") {
		t.Error("View should show Dashboard tab")
	}
	// Should show placeholder since tabs are nil
	if !strings.Contains(view, "not yet implemented") {
		t.Error("View should show placeholder text")
	}
}

func TestModel_Help(t *testing.T) {
	model := NewModel(nil)
	model.ready = true
	model.width = 80
	model.height = 24

	model.Update(ToggleHelpMsg{})
	if !model.showHelp {
		t.Error("showHelp should be true")
	}

	view := model.View()
	if !strings.Contains(view, "Keyboard Shortcuts") {
		t.Error("View should show help modal")
	}

	// Toggle off via key
	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if model.showHelp {
		t.Error("showHelp should be false after toggle")
	}
}

func TestModel_Notifications(t *testing.T) {
	model := NewModel(nil)

	msg := AddNotificationMsg{
		Message:  "Test Note",
		Type:     NotificationInfo,
		Duration: 0,
	}

	model.Update(msg)

	notifs := model.state.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification, got %d", len(notifs))
	}

	model.ready = true
	model.width = 80
	model.height = 24
	view := model.View()
	if !strings.Contains(view, "Test Note") {
		t.Error("View should show notification")
	}
}

func TestModel_HandleServiceEvent(t *testing.T) {
	model := NewModel(nil)

	// Stale revision is ignored
	model.state.SetRevision(5)
	if cmd := model.handleServiceEvent(services.DataChangedEvent{Revision: 5}); cmd != nil {
		t.Error("Stale DataChangedEvent should not trigger a reload")
	}

	// Newer revision is recorded (no reload cmd while services is nil)
	model.handleServiceEvent(services.DataChangedEvent{Revision: 6})
	if model.state.GetRevision() != 6 {
		t.Errorf("Revision = %d, want 6", model.state.GetRevision())
	}

	// Streak reminder triggers a warning notification
	if cmd := model.handleServiceEvent(services.StreakReminderEvent{Streak: 4}); cmd == nil {
		t.Error("StreakReminderEvent should trigger notification command")
	}

	// Error event
	errEvent := services.ErrorEvent{Service: "test", Error: nil}
	if cmd := model.handleServiceEvent(errEvent); cmd == nil {
		t.Error("Error event should trigger notification command")
	}
}

func TestModel_Update_Messages(t *testing.T) {
	model := NewModel(nil)

	model.Update(StartLoadingMsg{Resource: "sessions"})
	if !model.state.Loading.Sessions {
		t.Error("Loading.Sessions should be true")
	}

	model.Update(StopLoadingMsg{Resource: "sessions"})
	if model.state.Loading.Sessions {
		t.Error("Loading.Sessions should be false")
	}

	sessions := []models.Session{{ID: "s1", Duration: 60, Type: models.SessionGi}}
	stats := models.SessionStats{TotalSessions: 1, TotalHours: 1}
	model.Update(SessionsLoadedMsg{Sessions: sessions, Stats: stats})
	if len(model.state.GetSessions()) != 1 {
		t.Error("Sessions should be updated")
	}
	if model.state.Loading.Initial {
		t.Error("Initial loading should be false")
	}

	model.Update(TechniquesLoadedMsg{
		Techniques: []models.Technique{{ID: "t1", Name: "Armbar"}},
		Summary:    models.TechniqueSummary{Total: 1},
	})
	if len(model.state.GetTechniques()) != 1 {
		t.Error("Techniques should be updated")
	}

	model.Update(TournamentsLoadedMsg{
		Tournaments: []models.Tournament{{ID: "t1", Name: "Open"}},
		Record:      models.CompetitionRecord{Wins: 1},
	})
	if model.state.GetRecord().Wins != 1 {
		t.Error("Record should be updated")
	}

	model.Update(MatchesLoadedMsg{TournamentID: "t1", Matches: []models.Match{{ID: "m1"}}})
	if len(model.state.GetMatches("t1")) != 1 {
		t.Error("Matches should be updated")
	}

	// Save results produce notifications
	cmds := model.handleSessionSaved(SessionSavedMsg{Session: &models.Session{}, Created: true})
	msg := cmds[0]()
	if addMsg, ok := msg.(AddNotificationMsg); ok {
		if !strings.Contains(addMsg.Message, "logged") {
			t.Errorf("Message = %q, want session logged", addMsg.Message)
		}
	} else {
		t.Error("Command should return AddNotificationMsg")
	}

	cmds = model.handleSessionSaved(SessionSavedMsg{Error: assertError(t, "fail")})
	msg = cmds[0]()
	if addMsg, ok := msg.(AddNotificationMsg); ok {
		if addMsg.Type != NotificationError {
			t.Error("Failed save should add error notification")
		}
	}

	cmds = model.handleSessionDeleted(SessionDeletedMsg{ID: "s1"})
	msg = cmds[0]()
	if addMsg, ok := msg.(AddNotificationMsg); ok {
		if !strings.Contains(addMsg.Message, "deleted") {
			t.Errorf("Message = %q, want session deleted", addMsg.Message)
		}
	}

	// RefreshMsg with nil services just covers the switch
	model.Update(RefreshMsg{Resource: "all"})
	model.Update(RefreshMsg{Resource: "sessions"})
	model.Update(RefreshMsg{Resource: "techniques"})
	model.Update(RefreshMsg{Resource: "tournaments"})

	model.Update(AddNotificationMsg{Message: "test", Type: NotificationInfo})
	model.Update(RemoveNotificationMsg{ID: "nonexistent"})
	model.Update(ClearExpiredNotificationsMsg{})
}

func TestModel_HandleSpinnerTick(t *testing.T) {
	model := NewModel(nil)
	_, cmd := model.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Error("Spinner tick should return command")
	}
}

func assertError(t *testing.T, msg string) error {
	t.Helper()
	return &testError{msg}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestTabID_String(t *testing.T) {
	if TabDashboard.String() != "Dashboard" {
		t.Error("TabDashboard.String() mismatch")
	}
	if TabSessions.String() != "Sessions" {
		t.Error("TabSessions.String() mismatch")
	}
	if TabTechniques.String() != "Techniques" {
		t.Error("TabTechniques.String() mismatch")
	}
	if TabTournaments.String() != "Tournaments" {
		t.Error("TabTournaments.String() mismatch")
	}
	if TabID(999).String() != "Unknown" {
		t.Error("Unknown tab string mismatch")
	}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(km.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}

func TestNewModel_TickInterval(t *testing.T) {
	model := NewModel(nil)
	if model.tickInterval != DefaultTickInterval {
		t.Errorf("tickInterval = %v, want %v", model.tickInterval, DefaultTickInterval)
	}

	cfg := &config.Config{
		DatabasePath: t.TempDir() + "/test.db",
		ChartWeeks:   12,
		TickInterval: 250 * time.Millisecond,
	}
	mgr, err := services.NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer func() {
		if err := mgr.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	}()

	model = NewModel(mgr)
	if model.tickInterval != 250*time.Millisecond {
		t.Errorf("tickInterval = %v, want 250ms", model.tickInterval)
	}
}
