package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// loadInitialData returns a command that loads all initial data.
func loadInitialData(mgr *services.Manager) tea.Cmd {
	return tea.Batch(
		loadSessionsCmd(mgr),
		loadTechniquesCmd(mgr),
		loadTournamentsCmd(mgr),
	)
}

// loadSessionsCmd returns a command that loads sessions with derived statistics.
func loadSessionsCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		sessions, err := mgr.Sessions()
		if err != nil {
			return ErrorMsg{Error: err, Context: "load sessions"}
		}
		stats, err := mgr.SessionStats()
		if err != nil {
			return ErrorMsg{Error: err, Context: "compute stats"}
		}
		volume, err := mgr.WeeklyVolume()
		if err != nil {
			return ErrorMsg{Error: err, Context: "compute volume"}
		}

		return SessionsLoadedMsg{
			Sessions: sessions,
			Stats:    stats,
			Volume:   volume,
		}
	}
}

// loadTechniquesCmd returns a command that loads the technique library.
func loadTechniquesCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		techniques, err := mgr.Techniques()
		if err != nil {
			return ErrorMsg{Error: err, Context: "load techniques"}
		}
		summary, err := mgr.TechniqueSummary()
		if err != nil {
			return ErrorMsg{Error: err, Context: "summarize techniques"}
		}

		return TechniquesLoadedMsg{
			Techniques: techniques,
			Summary:    summary,
		}
	}
}

// loadTournamentsCmd returns a command that loads tournaments and the record.
func loadTournamentsCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		tournaments, err := mgr.Tournaments()
		if err != nil {
			return ErrorMsg{Error: err, Context: "load tournaments"}
		}
		record, err := mgr.CompetitionRecord()
		if err != nil {
			return ErrorMsg{Error: err, Context: "compute record"}
		}

		return TournamentsLoadedMsg{
			Tournaments: tournaments,
			Record:      record,
		}
	}
}

// loadMatchesCmd returns a command that loads the matches of a tournament.
func loadMatchesCmd(mgr *services.Manager, tournamentID string) tea.Cmd {
	return func() tea.Msg {
		matches, err := mgr.Matches(tournamentID)
		if err != nil {
			return ErrorMsg{Error: err, Context: "load matches"}
		}
		return MatchesLoadedMsg{TournamentID: tournamentID, Matches: matches}
	}
}

// saveSessionCmd returns a command that creates or updates a session.
func saveSessionCmd(mgr *services.Manager, s *models.Session) tea.Cmd {
	return func() tea.Msg {
		var err error
		created := s.ID == ""
		if created {
			err = mgr.CreateSession(s)
		} else {
			err = mgr.UpdateSession(s)
		}
		return SessionSavedMsg{Session: s, Created: created, Error: err}
	}
}

// deleteSessionCmd returns a command that deletes a session.
func deleteSessionCmd(mgr *services.Manager, id string) tea.Cmd {
	return func() tea.Msg {
		return SessionDeletedMsg{ID: id, Error: mgr.DeleteSession(id)}
	}
}

// saveTechniqueCmd returns a command that creates or updates a technique.
func saveTechniqueCmd(mgr *services.Manager, t *models.Technique) tea.Cmd {
	return func() tea.Msg {
		var err error
		created := t.ID == ""
		if created {
			err = mgr.CreateTechnique(t)
		} else {
			err = mgr.UpdateTechnique(t)
		}
		return TechniqueSavedMsg{Technique: t, Created: created, Error: err}
	}
}

// deleteTechniqueCmd returns a command that deletes a technique.
func deleteTechniqueCmd(mgr *services.Manager, id string) tea.Cmd {
	return func() tea.Msg {
		return TechniqueDeletedMsg{ID: id, Error: mgr.DeleteTechnique(id)}
	}
}

// saveTournamentCmd returns a command that creates or updates a tournament.
func saveTournamentCmd(mgr *services.Manager, t *models.Tournament) tea.Cmd {
	return func() tea.Msg {
		var err error
		created := t.ID == ""
		if created {
			err = mgr.CreateTournament(t)
		} else {
			err = mgr.UpdateTournament(t)
		}
		return TournamentSavedMsg{Tournament: t, Created: created, Error: err}
	}
}

// deleteTournamentCmd returns a command that deletes a tournament and its matches.
func deleteTournamentCmd(mgr *services.Manager, id string) tea.Cmd {
	return func() tea.Msg {
		return TournamentDeletedMsg{ID: id, Error: mgr.DeleteTournament(id)}
	}
}

// saveMatchCmd returns a command that records a match.
func saveMatchCmd(mgr *services.Manager, match *models.Match) tea.Cmd {
	return func() tea.Msg {
		return MatchSavedMsg{Match: match, Error: mgr.CreateMatch(match)}
	}
}

// deleteMatchCmd returns a command that deletes a match.
func deleteMatchCmd(mgr *services.Manager, id, tournamentID string) tea.Cmd {
	return func() tea.Msg {
		return MatchDeletedMsg{ID: id, TournamentID: tournamentID, Error: mgr.DeleteMatch(id)}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// WaitForServiceEvent is the public version for use in models.
func WaitForServiceEvent(ch <-chan services.ServiceEvent) tea.Cmd {
	return services.WaitForEvent(ch)
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyWarningCmd returns a command that adds a warning notification.
func notifyWarningCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationWarning,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}

// delayedCmd returns a command that sends a message after a delay.
func delayedCmd(delay time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return msg
	})
}

// Commands provides a public interface to the command functions.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// Tick returns a tick command with the specified interval.
func (c *Commands) Tick(interval time.Duration) tea.Cmd {
	return tickCmd(interval)
}

// LoadInitialData returns a command that loads all initial data.
func (c *Commands) LoadInitialData() tea.Cmd {
	return loadInitialData(c.manager)
}

// LoadSessions returns a command that loads sessions and statistics.
func (c *Commands) LoadSessions() tea.Cmd {
	return loadSessionsCmd(c.manager)
}

// LoadTechniques returns a command that loads the technique library.
func (c *Commands) LoadTechniques() tea.Cmd {
	return loadTechniquesCmd(c.manager)
}

// LoadTournaments returns a command that loads tournaments and the record.
func (c *Commands) LoadTournaments() tea.Cmd {
	return loadTournamentsCmd(c.manager)
}

// LoadMatches returns a command that loads the matches of a tournament.
func (c *Commands) LoadMatches(tournamentID string) tea.Cmd {
	return loadMatchesCmd(c.manager, tournamentID)
}

// SaveSession returns a command that creates or updates a session.
func (c *Commands) SaveSession(s *models.Session) tea.Cmd {
	return saveSessionCmd(c.manager, s)
}

// DeleteSession returns a command that deletes a session.
func (c *Commands) DeleteSession(id string) tea.Cmd {
	return deleteSessionCmd(c.manager, id)
}

// SaveTechnique returns a command that creates or updates a technique.
func (c *Commands) SaveTechnique(t *models.Technique) tea.Cmd {
	return saveTechniqueCmd(c.manager, t)
}

// DeleteTechnique returns a command that deletes a technique.
func (c *Commands) DeleteTechnique(id string) tea.Cmd {
	return deleteTechniqueCmd(c.manager, id)
}

// SaveTournament returns a command that creates or updates a tournament.
func (c *Commands) SaveTournament(t *models.Tournament) tea.Cmd {
	return saveTournamentCmd(c.manager, t)
}

// DeleteTournament returns a command that deletes a tournament.
func (c *Commands) DeleteTournament(id string) tea.Cmd {
	return deleteTournamentCmd(c.manager, id)
}

// SaveMatch returns a command that records a match.
func (c *Commands) SaveMatch(match *models.Match) tea.Cmd {
	return saveMatchCmd(c.manager, match)
}

// DeleteMatch returns a command that deletes a match.
func (c *Commands) DeleteMatch(id, tournamentID string) tea.Cmd {
	return deleteMatchCmd(c.manager, id, tournamentID)
}

// SubscribeToServices returns a command that subscribes to service events.
func (c *Commands) SubscribeToServices() tea.Cmd {
	return subscribeToServicesCmd(c.manager)
}

// NotifySuccess returns a command that adds a success notification.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifySuccessCmd(message)
}

// NotifyError returns a command that adds an error notification.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyErrorCmd(message)
}

// NotifyWarning returns a command that adds a warning notification.
func (c *Commands) NotifyWarning(message string) tea.Cmd {
	return notifyWarningCmd(message)
}

// NotifyInfo returns a command that adds an info notification.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyInfoCmd(message)
}

// ClearNotification returns a command that removes a notification after a delay.
func (c *Commands) ClearNotification(id string, delay time.Duration) tea.Cmd {
	return clearNotificationCmd(id, delay)
}

// Delayed returns a command that sends a message after a delay.
func (c *Commands) Delayed(delay time.Duration, msg tea.Msg) tea.Cmd {
	return delayedCmd(delay, msg)
}

// Quit returns a command that quits the application.
func (c *Commands) Quit() tea.Cmd {
	return tea.Quit
}
