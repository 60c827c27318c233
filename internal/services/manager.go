// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/trafficbuddy-tui/internal/config"
	"github.com/j-veylop/trafficbuddy-tui/internal/logger"
	"github.com/j-veylop/trafficbuddy-tui/internal/models"
	"github.com/j-veylop/trafficbuddy-tui/internal/services/envwatch"
	"github.com/j-veylop/trafficbuddy-tui/internal/services/report"
)

type (
	// AddressChangedEvent is emitted when the backend address in the env file changes.
	AddressChangedEvent struct {
		Address string
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

func (AddressChangedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()          {}

// Option configures a Manager.
type Option func(*Manager)

// WithHTTPClient sets the HTTP client used for backend requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(m *Manager) {
		m.httpClient = hc
	}
}

// WithNotifier replaces the desktop notifier.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		if n != nil {
			m.notifier = n
		}
	}
}

// Manager orchestrates the report client, the env watcher and notifications.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	httpClient  *http.Client
	client      *report.Client
	watcher     *envwatch.Watcher
	notifier    Notifier
	stopChan    chan struct{}
	subscribers []chan ServiceEvent
	closeOnce   sync.Once
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	m := &Manager{
		cfg:      cfg,
		notifier: noopNotifier{},
		stopChan: make(chan struct{}),
	}
	if cfg.DesktopNotify {
		m.notifier = DesktopNotifier{AppName: "Traffic Buddy"}
	}
	for _, opt := range opts {
		opt(m)
	}

	m.client = m.newClient(cfg.BackendURL)

	if cfg.WatchEnv && cfg.EnvFile != "" && !cfg.AddressPinned {
		w, err := envwatch.New(cfg.EnvFile, cfg.BackendURL)
		if err != nil {
			// The dashboard still works without hot reload.
			logger.Warn("env watcher disabled", "path", cfg.EnvFile, "error", err)
		} else {
			m.watcher = w
			go m.routeEvents()
		}
	}

	return m, nil
}

func (m *Manager) newClient(address string) *report.Client {
	opts := []report.Option{report.WithTimeout(m.cfg.RequestTimeout)}
	if m.httpClient != nil {
		opts = append(opts, report.WithHTTPClient(m.httpClient))
	}
	return report.New(address, opts...)
}

// routeEvents routes watcher events to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.watcher.Events():
			m.handleWatchEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) handleWatchEvent(event envwatch.Event) {
	switch event.Type {
	case envwatch.EventAddressChanged:
		m.broadcast(AddressChangedEvent{Address: event.Address})

	case envwatch.EventError:
		m.broadcast(ErrorEvent{
			Service: "envwatch",
			Error:   event.Error,
		})
	}
}

// Address returns the backend address of the current client.
func (m *Manager) Address() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client.BaseURL()
}

// Client returns a report client for address, reusing the current one when
// the address has not changed.
func (m *Manager) Client(address string) *report.Client {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client.BaseURL() != strings.TrimRight(address, "/") {
		m.client = m.newClient(address)
	}
	return m.client
}

// FetchDashboard loads the summary and recent activity from address.
func (m *Manager) FetchDashboard(ctx context.Context, address string) (*models.Dashboard, error) {
	start := time.Now()
	d, err := m.Client(address).FetchDashboard(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("dashboard loaded",
		"address", address,
		"entries", len(d.Activity),
		"duration", time.Since(start),
	)
	return d, nil
}

// Notify sends a desktop notification. Failures are logged and otherwise ignored.
func (m *Manager) Notify(title, message string) {
	if err := m.notifier.Notify(title, message); err != nil {
		logger.Warn("desktop notification failed", "error", err)
	}
}

// Config returns the configuration the manager was built with.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// Watching reports whether the env file is being watched.
func (m *Manager) Watching() bool {
	return m.watcher != nil
}

// broadcast sends an event to all subscribers.
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

// WaitForEvent returns a tea.Cmd for the next event on a channel.
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

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.stopChan)

		m.mu.Lock()
		for _, sub := range m.subscribers {
			close(sub)
		}
		m.subscribers = nil
		m.mu.Unlock()

		if m.watcher != nil {
			err = m.watcher.Close()
		}
	})
	return err
}
