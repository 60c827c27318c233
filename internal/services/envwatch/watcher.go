// Package envwatch watches the loaded .env file and reports backend address changes.
package envwatch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"

	"github.com/j-veylop/trafficbuddy-tui/internal/config"
	"github.com/j-veylop/trafficbuddy-tui/internal/logger"
)

// DebounceInterval coalesces the burst of events editors produce on save.
const DebounceInterval = 100 * time.Millisecond

// EventType defines the type of watcher event.
type EventType int

const (
	// EventAddressChanged carries a new, validated backend address.
	EventAddressChanged EventType = iota
	// EventError reports a watcher failure or an invalid address in the file.
	EventError
)

// Event represents a watcher event.
type Event struct {
	Type    EventType
	Address string
	Error   error
}

// Watcher re-reads an env file on change and emits the resolved backend address
// whenever it differs from the last one seen.
type Watcher struct {
	mu            sync.Mutex
	path          string
	address       string
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
	closed        bool
}

// New starts watching path. address is the backend address currently in use.
func New(path, address string) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("env file path is empty")
	}

	w := &Watcher{
		path:      path,
		address:   address,
		eventChan: make(chan Event, 16),
		stopChan:  make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w.watcher = watcher

	// Watch the directory so editors that replace the file are still seen
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	go w.watchLoop()
	return w, nil
}

// Events returns the event channel.
func (w *Watcher) Events() <-chan Event {
	return w.eventChan
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				if w.debounceTimer != nil {
					w.debounceTimer.Stop()
				}
				if !w.closed {
					w.debounceTimer = time.AfterFunc(DebounceInterval, w.handleFileChange)
				}
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendEvent(Event{Type: EventError, Error: err})

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) handleFileChange() {
	values, err := godotenv.Read(w.path)
	if err != nil {
		// A rename-away leaves nothing to read until the new file lands.
		logger.Debug("env file unreadable", "path", w.path, "error", err)
		return
	}

	address := config.ResolveBackendURL(values)
	if err := config.ValidateBackendURL(address); err != nil {
		w.sendEvent(Event{Type: EventError, Error: err})
		return
	}

	w.mu.Lock()
	if address == w.address || w.closed {
		w.mu.Unlock()
		return
	}
	w.address = address
	w.mu.Unlock()

	logger.Info("backend address changed", "address", address, "path", w.path)
	w.sendEvent(Event{Type: EventAddressChanged, Address: address})
}

// sendEvent sends an event to the event channel non-blocking.
func (w *Watcher) sendEvent(event Event) {
	select {
	case w.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-w.eventChan:
		default:
		}
		select {
		case w.eventChan <- event:
		default:
		}
	}
}

// Close stops the file watcher and cleans up resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()

	close(w.stopChan)
	return w.watcher.Close()
}
