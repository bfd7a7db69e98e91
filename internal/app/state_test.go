package app

import (
	"testing"
	"time"

	"github.com/olivercappis/BJJ-diary/internal/models"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if len(s.Sessions) != 0 {
		t.Error("Sessions should be empty")
	}
	if s.Loading.Initial != true {
		t.Error("Initial loading should be true")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewState()

	s.SetLoading("sessions", true)
	if !s.Loading.Sessions {
		t.Error("Sessions loading should be true")
	}
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true")
	}

	s.SetLoading("sessions", false)
	// Initial is still true
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (Initial is true)")
	}

	s.SetLoading("initial", false)
	if s.AnyLoading() {
		t.Error("AnyLoading should be false")
	}
}

func TestState_Sessions(t *testing.T) {
	s := NewState()

	sessions := []models.Session{
		{ID: "a", Duration: 60, Type: models.SessionGi},
		{ID: "b", Duration: 90, Type: models.SessionNoGi},
	}
	stats := models.SessionStats{TotalSessions: 2, TotalHours: 2.5}

	s.SetSessions(sessions, stats, nil)

	got := s.GetSessions()
	if len(got) != 2 {
		t.Errorf("GetSessions returned %d items", len(got))
	}

	gotStats, ok := s.GetStats()
	if !ok {
		t.Fatal("GetStats reported no stats after SetSessions")
	}
	if gotStats.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", gotStats.TotalSessions)
	}

	// Copies must not share backing storage with the state
	got[0].ID = "mutated"
	if s.GetSessions()[0].ID != "a" {
		t.Error("GetSessions should return a copy")
	}
}

func TestState_Techniques(t *testing.T) {
	s := NewState()

	techniques := []models.Technique{
		{ID: "t1", Name: "Armbar", Category: models.CategorySubmission},
	}
	summary := models.TechniqueSummary{Total: 1}

	s.SetTechniques(techniques, summary)

	if len(s.GetTechniques()) != 1 {
		t.Errorf("GetTechniques len = %d, want 1", len(s.GetTechniques()))
	}
	if s.GetSummary().Total != 1 {
		t.Errorf("Summary.Total = %d, want 1", s.GetSummary().Total)
	}
}

func TestState_Tournaments(t *testing.T) {
	s := NewState()

	tournaments := []models.Tournament{{ID: "t1", Name: "Spring Open"}}
	record := models.CompetitionRecord{Wins: 3, Losses: 1}

	s.SetTournaments(tournaments, record)

	if len(s.GetTournaments()) != 1 {
		t.Errorf("GetTournaments len = %d, want 1", len(s.GetTournaments()))
	}
	if s.GetRecord().Wins != 3 {
		t.Errorf("Record.Wins = %d, want 3", s.GetRecord().Wins)
	}

	matches := []models.Match{{ID: "m1", TournamentID: "t1", Result: models.ResultWin}}
	s.SetMatches("t1", matches)
	if len(s.GetMatches("t1")) != 1 {
		t.Errorf("GetMatches len = %d, want 1", len(s.GetMatches("t1")))
	}
	if len(s.GetMatches("missing")) != 0 {
		t.Error("GetMatches for unknown tournament should be empty")
	}
}

func TestState_Revision(t *testing.T) {
	s := NewState()

	if s.GetRevision() != 0 {
		t.Errorf("GetRevision = %d, want 0", s.GetRevision())
	}
	s.SetRevision(7)
	if s.GetRevision() != 7 {
		t.Errorf("GetRevision = %d, want 7", s.GetRevision())
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationInfo, "test", time.Minute)
	if id == "" {
		t.Error("AddNotification returned empty ID")
	}

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("GetNotifications len = %d, want 1", len(notifs))
	}
	if notifs[0].Message != "test" {
		t.Errorf("Notification message = %s, want test", notifs[0].Message)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("Notification should be removed")
	}
}

func TestState_ClearExpiredNotifications(t *testing.T) {
	s := NewState()

	// Expired
	s.notifications = append(s.notifications, Notification{
		ID:        "expired",
		CreatedAt: time.Now().Add(-2 * time.Minute),
		Duration:  time.Minute,
	})

	// Active
	s.notifications = append(s.notifications, Notification{
		ID:        "active",
		CreatedAt: time.Now(),
		Duration:  time.Minute,
	})

	s.ClearExpiredNotifications()

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != "active" {
		t.Errorf("Expected active notification, got %s", notifs[0].ID)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("loading...")
	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != LoadingNotificationID {
		t.Errorf("Expected ID %s, got %s", LoadingNotificationID, notifs[0].ID)
	}
	if notifs[0].Message != "loading..." {
		t.Errorf("Expected message loading..., got %s", notifs[0].Message)
	}

	// Update message
	s.SetLoadingNotification("still loading...")
	notifs = s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification after update")
	}
	if notifs[0].Message != "still loading..." {
		t.Errorf("Expected message still loading..., got %s", notifs[0].Message)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("Loading notification should be cleared")
	}
}

func TestState_TimeSinceUpdate(t *testing.T) {
	s := NewState()

	if s.TimeSinceUpdate() != 0 {
		t.Error("TimeSinceUpdate should be 0 before any update")
	}

	s.SetSessions(nil, models.SessionStats{}, nil)
	time.Sleep(time.Millisecond)

	if s.TimeSinceUpdate() == 0 {
		t.Error("TimeSinceUpdate should be > 0")
	}
}

func TestNotificationType_String(t *testing.T) {
	tests := []struct {
		t    NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
		{NotificationType(999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
