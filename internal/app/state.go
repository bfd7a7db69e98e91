// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/olivercappis/BJJ-diary/internal/models"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// LoadingState tracks loading states for different resources.
type LoadingState struct {
	Initial     bool
	Sessions    bool
	Techniques  bool
	Tournaments bool
}

// State is the shared application state read by all tabs.
type State struct {
	mu sync.RWMutex

	Sessions    []models.Session
	Techniques  []models.Technique
	Tournaments []models.Tournament
	Matches     map[string][]models.Match

	Stats    models.SessionStats
	Volume   []models.WeeklyVolumePoint
	Record   models.CompetitionRecord
	Summary  models.TechniqueSummary
	Revision uint64
	HasStats bool

	Loading LoadingState

	LastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates an empty application state.
func NewState() *State {
	return &State{
		Sessions:      make([]models.Session, 0),
		Techniques:    make([]models.Technique, 0),
		Tournaments:   make([]models.Tournament, 0),
		Matches:       make(map[string][]models.Match),
		notifications: make([]Notification, 0),
		Loading: LoadingState{
			Initial: true,
		},
	}
}

// SetLoading sets the loading state for a specific resource.
func (s *State) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case "initial":
		s.Loading.Initial = loading
	case "sessions":
		s.Loading.Sessions = loading
	case "techniques":
		s.Loading.Techniques = loading
	case "tournaments":
		s.Loading.Tournaments = loading
	}
}

// AnyLoading returns true if any resource is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial ||
		s.Loading.Sessions ||
		s.Loading.Techniques ||
		s.Loading.Tournaments
}

// IsInitialLoading returns true if initial data is still loading.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Initial
}

// SetSessions updates the session list with its derived statistics.
func (s *State) SetSessions(sessions []models.Session, stats models.SessionStats, volume []models.WeeklyVolumePoint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Sessions = sessions
	s.Stats = stats
	s.Volume = volume
	s.HasStats = true
	s.LastUpdated = time.Now()
}

// GetSessions returns a copy of the session list.
func (s *State) GetSessions() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]models.Session, len(s.Sessions))
	copy(sessions, s.Sessions)
	return sessions
}

// GetStats returns the current session statistics.
func (s *State) GetStats() (models.SessionStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Stats, s.HasStats
}

// GetVolume returns the weekly training volume series.
func (s *State) GetVolume() []models.WeeklyVolumePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	volume := make([]models.WeeklyVolumePoint, len(s.Volume))
	copy(volume, s.Volume)
	return volume
}

// SetTechniques updates the technique library.
func (s *State) SetTechniques(techniques []models.Technique, summary models.TechniqueSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Techniques = techniques
	s.Summary = summary
	s.LastUpdated = time.Now()
}

// GetTechniques returns a copy of the technique library.
func (s *State) GetTechniques() []models.Technique {
	s.mu.RLock()
	defer s.mu.RUnlock()

	techniques := make([]models.Technique, len(s.Techniques))
	copy(techniques, s.Techniques)
	return techniques
}

// GetSummary returns the technique library summary.
func (s *State) GetSummary() models.TechniqueSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Summary
}

// SetTournaments updates the tournament list and competition record.
func (s *State) SetTournaments(tournaments []models.Tournament, record models.CompetitionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Tournaments = tournaments
	s.Record = record
	s.LastUpdated = time.Now()
}

// GetTournaments returns a copy of the tournament list.
func (s *State) GetTournaments() []models.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tournaments := make([]models.Tournament, len(s.Tournaments))
	copy(tournaments, s.Tournaments)
	return tournaments
}

// GetRecord returns the aggregate competition record.
func (s *State) GetRecord() models.CompetitionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Record
}

// SetMatches stores the matches of one tournament.
func (s *State) SetMatches(tournamentID string, matches []models.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Matches == nil {
		s.Matches = make(map[string][]models.Match)
	}
	s.Matches[tournamentID] = matches
}

// GetMatches returns the matches of one tournament.
func (s *State) GetMatches(tournamentID string) []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]models.Match, len(s.Matches[tournamentID]))
	copy(matches, s.Matches[tournamentID])
	return matches
}

// SetRevision records the data revision the state was loaded at.
func (s *State) SetRevision(rev uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Revision = rev
}

// GetRevision returns the data revision the state was loaded at.
func (s *State) GetRevision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Revision
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Clear expired inline when reading
	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// ClearAllNotifications removes all notifications.
func (s *State) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// GetLastUpdated returns the last time the state was updated.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}

// TimeSinceUpdate returns the duration since the last update.
func (s *State) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.LastUpdated)
}
