// Package main is the entry point for the Traffic Buddy dashboard TUI.
// It initializes configuration, logging and services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/trafficbuddy-tui/internal/app"
	"github.com/j-veylop/trafficbuddy-tui/internal/config"
	"github.com/j-veylop/trafficbuddy-tui/internal/logger"
	"github.com/j-veylop/trafficbuddy-tui/internal/services"
	"github.com/j-veylop/trafficbuddy-tui/internal/ui/tabs/dashboard"
	"github.com/j-veylop/trafficbuddy-tui/internal/ui/tabs/info"
	"github.com/j-veylop/trafficbuddy-tui/internal/version"
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

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := logger.Init(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger.Info("starting", "version", version.GetVersion(), "backend", cfg.BackendURL, "env_file", cfg.EnvFile)

	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			logger.Warn("error closing services", "error", closeErr)
		}
	}()

	model := app.NewModel(svcManager)
	defer model.Close()

	state := model.GetState()
	model.SetTabs([]app.Tab{
		dashboard.New(state),
		info.New(state, svcManager),
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		if _, ok := <-sigChan; ok {
			p.Send(tea.Quit())
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`Traffic Buddy Dashboard - traffic report overview for the terminal

Usage:
  tbd [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-2             Switch between tabs (Dashboard, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Scroll
  r               Reload dashboard data
  c               Copy backend address (Info tab)
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  BACKEND_URL       Backend base URL (default: http://localhost:3000)
  VITE_Backend_URL  Fallback for BACKEND_URL (name used by the web build)
  VITE_BACKEND_URL  Fallback for VITE_Backend_URL
  REQUEST_TIMEOUT   Deadline for each dashboard request (default: 10s)
  WATCH_ENV         Reload when the .env file changes (default: true)
  DESKTOP_NOTIFY    Desktop notification when loading fails (default: false)
  LOG_FILE          Log file path (default: ~/.config/trafficbuddy/tbd.log)
  LOG_LEVEL         debug, info, warn or error (default: info)

Configuration:
  The application loads the first .env file found in:
  - Current directory
  - ~/.config/trafficbuddy/.env
  - ~/.trafficbuddy/.env
  - Parent directory`)
}
