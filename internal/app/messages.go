package app

import (
	"time"

	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// SessionsLoadedMsg contains the session list with its derived statistics.
type SessionsLoadedMsg struct {
	Sessions []models.Session
	Stats    models.SessionStats
	Volume   []models.WeeklyVolumePoint
}

// TechniquesLoadedMsg contains the technique library.
type TechniquesLoadedMsg struct {
	Techniques []models.Technique
	Summary    models.TechniqueSummary
}

// TournamentsLoadedMsg contains the tournament list and competition record.
type TournamentsLoadedMsg struct {
	Tournaments []models.Tournament
	Record      models.CompetitionRecord
}

// MatchesLoadedMsg contains the matches of one tournament.
type MatchesLoadedMsg struct {
	TournamentID string
	Matches      []models.Match
}

// SessionSavedMsg contains the result of creating or updating a session.
type SessionSavedMsg struct {
	Session *models.Session
	Created bool
	Error   error
}

// SessionDeletedMsg contains the result of deleting a session.
type SessionDeletedMsg struct {
	ID    string
	Error error
}

// TechniqueSavedMsg contains the result of creating or updating a technique.
type TechniqueSavedMsg struct {
	Technique *models.Technique
	Created   bool
	Error     error
}

// TechniqueDeletedMsg contains the result of deleting a technique.
type TechniqueDeletedMsg struct {
	ID    string
	Error error
}

// TournamentSavedMsg contains the result of creating or updating a tournament.
type TournamentSavedMsg struct {
	Tournament *models.Tournament
	Created    bool
	Error      error
}

// TournamentDeletedMsg contains the result of deleting a tournament.
type TournamentDeletedMsg struct {
	ID    string
	Error error
}

// MatchSavedMsg contains the result of recording a match.
type MatchSavedMsg struct {
	Match *models.Match
	Error error
}

// MatchDeletedMsg contains the result of deleting a match.
type MatchDeletedMsg struct {
	ID           string
	TournamentID string
	Error        error
}

// RefreshMsg requests a refresh of data.
type RefreshMsg struct {
	Resource string // "all", "sessions", "techniques", "tournaments"
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearNotificationsMsg requests clearing all notifications.
type ClearNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}
