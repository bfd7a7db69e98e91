// Package dashboard provides the training overview tab for the BJJ diary TUI.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivercappis/BJJ-diary/internal/app"
	"github.com/olivercappis/BJJ-diary/internal/models"
	"github.com/olivercappis/BJJ-diary/internal/ui/components"
)

// keyMap defines the key bindings specific to the dashboard tab.
type keyMap struct {
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Refresh    key.Binding
}

// defaultKeyMap returns the default key bindings for the dashboard tab.
func defaultKeyMap() keyMap {
	return keyMap{
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "scroll up"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// Model represents the dashboard tab state.
type Model struct {
	state    *app.State
	spinner  components.LoadingSpinner
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new dashboard model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		spinner:  components.NewSpinner("Loading sessions..."),
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// SetSize sets the available size for the dashboard.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// weeklySplit buckets session hours into gi and no-gi series aligned with
// the weekly volume points. Sessions not explicitly no-gi count as gi.
func weeklySplit(sessions []models.Session, volume []models.WeeklyVolumePoint) (gi, nogi []float64) {
	if len(volume) == 0 {
		return nil, nil
	}

	gi = make([]float64, len(volume))
	nogi = make([]float64, len(volume))

	for _, s := range sessions {
		for i, wp := range volume {
			weekEnd := wp.WeekStart.AddDate(0, 0, 7)
			if !s.Date.Before(wp.WeekStart) && s.Date.Before(weekEnd) {
				if s.Type == models.SessionNoGi {
					nogi[i] += s.Hours()
				} else {
					gi[i] += s.Hours()
				}
				break
			}
		}
	}

	return gi, nogi
}

// dayPattern counts sessions per weekday, Monday first.
func dayPattern(sessions []models.Session) []float64 {
	pattern := make([]float64, 7)
	for _, s := range sessions {
		// time.Weekday is Sunday-based
		idx := (int(s.Date.Weekday()) + 6) % 7
		pattern[idx]++
	}
	return pattern
}

// intensityTrend returns the intensities of the most recent rated
// sessions, oldest first, capped at n.
func intensityTrend(sessions []models.Session, n int) []float64 {
	var vals []float64
	for _, s := range sessions {
		if !s.Rated() {
			continue
		}
		vals = append(vals, float64(s.Intensity))
		if len(vals) == n {
			break
		}
	}

	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	return vals
}

// recentSessions returns the n most recent sessions. The session list
// arrives sorted by date descending from the store.
func recentSessions(sessions []models.Session, n int) []models.Session {
	if len(sessions) <= n {
		return sessions
	}
	return sessions[:n]
}

// lastTrained returns how long ago the most recent session was.
func lastTrained(sessions []models.Session, now time.Time) (time.Duration, bool) {
	if len(sessions) == 0 {
		return 0, false
	}
	return now.Sub(sessions[0].Date), true
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.ScrollDown,
		m.keys.ScrollUp,
		m.keys.Refresh,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.ScrollDown, m.keys.ScrollUp},
		{m.keys.Top, m.keys.Bottom},
		{m.keys.Refresh},
	}
}
