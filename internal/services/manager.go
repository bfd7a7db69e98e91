// Package services provides service orchestration for the TUI.
package services

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivercappis/BJJ-diary/internal/config"
	"github.com/olivercappis/BJJ-diary/internal/db"
	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/stats"
)

type (
	// DataChangedEvent is emitted after any mutation of the diary, or when
	// the database file changes on disk. Revision increases monotonically
	// so consumers can tell a fresh snapshot from one they already loaded.
	DataChangedEvent struct {
		Revision uint64
	}

	// StreakReminderEvent is emitted when today has no session yet and the
	// active streak would break at midnight.
	StreakReminderEvent struct {
		Streak int
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (DataChangedEvent) isServiceEvent()    {}
func (StreakReminderEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()          {}

// Manager owns the database and derives all statistics. Stats are never
// cached: every read refetches the full session set and recomputes, so a
// consumer holding the latest revision always sees committed writes.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	database    *db.DB
	revision    uint64
	subscribers []chan ServiceEvent
	stopChan    chan struct{}
	watcher     *dbWatcher
	reminder    *reminder
	now         func() time.Time
}

// NewManager opens the database and starts the file watcher and the streak
// reminder loop.
func NewManager(cfg *config.Config) (*Manager, error) {
	database, err := db.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	m := &Manager{
		cfg:      cfg,
		database: database,
		stopChan: make(chan struct{}),
		now:      time.Now,
	}

	m.watcher, err = newDBWatcher(cfg.DatabasePath, m)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to start database watcher: %w", err)
	}

	if cfg.ReminderEnabled {
		m.reminder = newReminder(m, cfg.ReminderHour)
		go m.reminder.run(m.stopChan)
	}

	return m, nil
}

// Revision returns the current data revision.
func (m *Manager) Revision() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revision
}

// bump advances the revision and notifies subscribers.
func (m *Manager) bump() {
	m.mu.Lock()
	m.revision++
	rev := m.revision
	m.mu.Unlock()

	m.broadcast(DataChangedEvent{Revision: rev})
}

// broadcast sends an event to all subscribers without blocking.
func (m *Manager) broadcast(event ServiceEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, WaitForEvent(ch)
}

// WaitForEvent returns a tea.Cmd that waits for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Sessions returns all training sessions, newest first.
func (m *Manager) Sessions() ([]models.Session, error) {
	return m.database.ListSessions()
}

// SessionStats recomputes aggregate statistics from the full session set.
func (m *Manager) SessionStats() (models.SessionStats, error) {
	sessions, err := m.database.ListSessions()
	if err != nil {
		return models.SessionStats{}, err
	}
	return stats.Compute(sessions, m.now()), nil
}

// WeeklyVolume returns the configured number of trailing weekly hour buckets.
func (m *Manager) WeeklyVolume() ([]models.WeeklyVolumePoint, error) {
	sessions, err := m.database.ListSessions()
	if err != nil {
		return nil, err
	}
	return stats.WeeklyVolume(sessions, m.now(), m.cfg.ChartWeeks), nil
}

// CreateSession stores a new session.
func (m *Manager) CreateSession(s *models.Session) error {
	if err := m.database.InsertSession(s); err != nil {
		return err
	}
	m.bump()
	return nil
}

// UpdateSession rewrites an existing session.
func (m *Manager) UpdateSession(s *models.Session) error {
	if err := m.database.UpdateSession(s); err != nil {
		return err
	}
	m.bump()
	return nil
}

// DeleteSession removes a session.
func (m *Manager) DeleteSession(id string) error {
	if err := m.database.DeleteSession(id); err != nil {
		return err
	}
	m.bump()
	return nil
}

// Techniques returns the technique library sorted by name.
func (m *Manager) Techniques() ([]models.Technique, error) {
	return m.database.ListTechniques()
}

// TechniqueSummary aggregates the technique library.
func (m *Manager) TechniqueSummary() (models.TechniqueSummary, error) {
	techniques, err := m.database.ListTechniques()
	if err != nil {
		return models.TechniqueSummary{}, err
	}
	return stats.Summarize(techniques), nil
}

// CreateTechnique stores a new technique.
func (m *Manager) CreateTechnique(t *models.Technique) error {
	if err := m.database.InsertTechnique(t); err != nil {
		return err
	}
	m.bump()
	return nil
}

// UpdateTechnique rewrites an existing technique.
func (m *Manager) UpdateTechnique(t *models.Technique) error {
	if err := m.database.UpdateTechnique(t); err != nil {
		return err
	}
	m.bump()
	return nil
}

// DeleteTechnique removes a technique.
func (m *Manager) DeleteTechnique(id string) error {
	if err := m.database.DeleteTechnique(id); err != nil {
		return err
	}
	m.bump()
	return nil
}

// Tournaments returns all tournaments, newest first.
func (m *Manager) Tournaments() ([]models.Tournament, error) {
	return m.database.ListTournaments()
}

// Matches returns the matches of one tournament.
func (m *Manager) Matches(tournamentID string) ([]models.Match, error) {
	return m.database.ListMatches(tournamentID)
}

// CompetitionRecord tallies match outcomes across all tournaments.
func (m *Manager) CompetitionRecord() (models.CompetitionRecord, error) {
	tournaments, err := m.database.ListTournaments()
	if err != nil {
		return models.CompetitionRecord{}, err
	}
	matches, err := m.database.ListAllMatches()
	if err != nil {
		return models.CompetitionRecord{}, err
	}
	return stats.Record(tournaments, matches), nil
}

// CreateTournament stores a new tournament.
func (m *Manager) CreateTournament(t *models.Tournament) error {
	if err := m.database.InsertTournament(t); err != nil {
		return err
	}
	m.bump()
	return nil
}

// UpdateTournament rewrites an existing tournament.
func (m *Manager) UpdateTournament(t *models.Tournament) error {
	if err := m.database.UpdateTournament(t); err != nil {
		return err
	}
	m.bump()
	return nil
}

// DeleteTournament removes a tournament and its matches.
func (m *Manager) DeleteTournament(id string) error {
	if err := m.database.DeleteTournament(id); err != nil {
		return err
	}
	m.bump()
	return nil
}

// CreateMatch stores a match under a tournament.
func (m *Manager) CreateMatch(match *models.Match) error {
	if err := m.database.InsertMatch(match); err != nil {
		return err
	}
	m.bump()
	return nil
}

// DeleteMatch removes a match.
func (m *Manager) DeleteMatch(id string) error {
	if err := m.database.DeleteMatch(id); err != nil {
		return err
	}
	m.bump()
	return nil
}

// Database returns the database instance for direct access.
func (m *Manager) Database() *db.DB {
	return m.database
}

// Config returns the active configuration.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// Close closes the manager and all its services. The watcher goes down
// first so no debounce timer can fire into closed subscriber channels.
func (m *Manager) Close() error {
	var errs []error

	if m.watcher != nil {
		if err := m.watcher.close(); err != nil {
			errs = append(errs, err)
		}
	}

	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
