package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivercappis/BJJ-diary/internal/models"
)

func TestCommands_Tick(t *testing.T) {
	cmds := NewCommands(nil)
	cmd := cmds.Tick(time.Millisecond)
	if cmd == nil {
		t.Error("Tick returned nil")
	}
}

func TestCommands_Notifications(t *testing.T) {
	cmds := NewCommands(nil)

	tests := []struct {
		name string
		fn   func(string) tea.Cmd
		want NotificationType
	}{
		{"Success", cmds.NotifySuccess, NotificationSuccess},
		{"Error", cmds.NotifyError, NotificationError},
		{"Warning", cmds.NotifyWarning, NotificationWarning},
		{"Info", cmds.NotifyInfo, NotificationInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.fn("msg")
			msg := cmd()

			addMsg, ok := msg.(AddNotificationMsg)
			if !ok {
				t.Fatalf("Expected AddNotificationMsg, got %T", msg)
			}
			if addMsg.Type != tt.want {
				t.Errorf("Type = %v, want %v", addMsg.Type, tt.want)
			}
			if addMsg.Message != "msg" {
				t.Errorf("Message = %q, want msg", addMsg.Message)
			}
		})
	}
}

func TestCommands_CrudDispatch(t *testing.T) {
	cmds := NewCommands(nil)

	tests := []struct {
		name string
		cmd  tea.Cmd
	}{
		{"LoadInitialData", cmds.LoadInitialData()},
		{"LoadSessions", cmds.LoadSessions()},
		{"LoadTechniques", cmds.LoadTechniques()},
		{"LoadTournaments", cmds.LoadTournaments()},
		{"LoadMatches", cmds.LoadMatches("t1")},
		{"SaveSession", cmds.SaveSession(&models.Session{})},
		{"DeleteSession", cmds.DeleteSession("s1")},
		{"SaveTechnique", cmds.SaveTechnique(&models.Technique{})},
		{"DeleteTechnique", cmds.DeleteTechnique("t1")},
		{"SaveTournament", cmds.SaveTournament(&models.Tournament{})},
		{"DeleteTournament", cmds.DeleteTournament("t1")},
		{"SaveMatch", cmds.SaveMatch(&models.Match{})},
		{"DeleteMatch", cmds.DeleteMatch("m1", "t1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd == nil {
				t.Error("Expected a command, got nil")
			}
		})
	}
}

func TestCommands_ClearNotification(t *testing.T) {
	cmds := NewCommands(nil)
	cmd := cmds.ClearNotification("id", time.Millisecond)
	if cmd == nil {
		t.Error("ClearNotification returned nil")
	}
}

func TestCommands_Quit(t *testing.T) {
	cmds := NewCommands(nil)
	cmd := cmds.Quit()
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Errorf("Expected QuitMsg, got %T", msg)
	}
}

func TestCommands_Delayed(t *testing.T) {
	cmds := NewCommands(nil)
	cmd := cmds.Delayed(time.Millisecond, ToggleHelpMsg{})
	if cmd == nil {
		t.Error("Delayed returned nil")
	}
}
