// Package main is the entry point for the BJJ diary TUI application.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivercappis/BJJ-diary/internal/app"
	"github.com/olivercappis/BJJ-diary/internal/config"
	"github.com/olivercappis/BJJ-diary/internal/logger"
	"github.com/olivercappis/BJJ-diary/internal/services"
	"github.com/olivercappis/BJJ-diary/internal/ui/tabs/dashboard"
	"github.com/olivercappis/BJJ-diary/internal/ui/tabs/sessions"
	"github.com/olivercappis/BJJ-diary/internal/ui/tabs/techniques"
	"github.com/olivercappis/BJJ-diary/internal/ui/tabs/tournaments"
	"github.com/olivercappis/BJJ-diary/internal/version"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Handle help flag
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	// Run the application
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Set up file logging (stdout belongs to the TUI)
	if err := logger.Init(cfg.LogPath); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// 3. Initialize the service manager
	// This opens the database and starts the file watcher and streak reminder
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Ensure cleanup on exit
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	// 4. Create the root Bubble Tea model
	model := app.NewModel(svcManager)

	// 5. Initialize tabs with shared state and commands
	// Each tab receives the shared application state for consistent data access
	state := model.GetState()
	cmds := model.GetCommands()
	tabs := []app.Tab{
		dashboard.New(state),          // Tab 0: Dashboard - training overview
		sessions.New(state, cmds),     // Tab 1: Sessions - training log
		techniques.New(state, cmds),   // Tab 2: Techniques - personal library
		tournaments.New(state, cmds),  // Tab 3: Tournaments - competition record
	}
	model.SetTabs(tabs)

	// 6. Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// 7. Create and configure the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer (full terminal)
		tea.WithMouseCellMotion(), // Enable mouse support for selection
	)

	// 8. Handle signals in a separate goroutine
	go func() {
		<-sigChan
		// Send quit message to the program
		p.Send(tea.Quit())
	}()

	// 9. Run the TUI program
	// This blocks until the user quits or an error occurs
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`BJJ Diary TUI - Terminal training diary for grapplers

Usage:
  bjjdiary [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-4             Switch between tabs (Dashboard, Sessions, Techniques, Tournaments)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  n               New entry
  e               Edit selected entry
  d               Delete selected entry
  /               Search sessions
  f               Filter sessions by type
  Enter           Select/confirm
  r               Refresh data
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  BJJ_DATABASE_PATH   SQLite database path
  BJJ_LOG_PATH        Log file path
  BJJ_REMINDER        Enable the streak reminder (default: true)
  BJJ_REMINDER_HOUR   Hour of day to check the streak (default: 20)
  BJJ_CHART_WEEKS     Weeks shown in the volume chart (default: 12)
  BJJ_TICK_INTERVAL   UI housekeeping tick cadence (default: 2s)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/bjjdiary/.env
  - ~/.bjjdiary/.env

For more information, visit: https://github.com/olivercappis/BJJ-diary`)
}
