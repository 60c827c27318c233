// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/j-veylop/trafficbuddy-tui/internal/models"
)

// FetchFailureMessage is the only failure text shown to the user.
const FetchFailureMessage = "Failed to load dashboard data. Please try again later."

// ErrFetchFailure is carried by DashboardFailedMsg in place of the raw client error.
var ErrFetchFailure = errors.New(FetchFailureMessage)

// Phase is the lifecycle phase of the dashboard data.
type Phase int

const (
	// PhaseIdle is the state before the first load was requested.
	PhaseIdle Phase = iota
	// PhaseLoading means a fetch is in flight.
	PhaseLoading
	// PhaseReady means the last fetch succeeded.
	PhaseReady
	// PhaseFailed means the last fetch failed.
	PhaseFailed
)

// String returns the string representation of a Phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchToken identifies one load request. Only the newest token may commit.
type FetchToken struct {
	Generation uint64
	Address    string
}

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

	maxNotifications = 10
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
	case NotificationLoading:
		return "loading"
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

// State is the dashboard view state. Model.Update is its only writer; the
// lock lets tabs read it while rendering.
type State struct {
	mu sync.RWMutex

	phase      Phase
	generation uint64
	address    string

	summary     models.DashboardSummary
	activity    []models.ActivityEntry
	errMessage  string
	lastUpdated time.Time

	notifications []Notification
}

// NewState returns an idle state with an empty summary.
func NewState() *State {
	return &State{
		phase:         PhaseIdle,
		summary:       models.EmptySummary(),
		activity:      make([]models.ActivityEntry, 0),
		notifications: make([]Notification, 0),
	}
}

// BeginLoad enters Loading for address and returns the token of the new
// request. Every earlier token becomes stale.
func (s *State) BeginLoad(address string) FetchToken {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.address = address
	s.phase = PhaseLoading

	return FetchToken{Generation: s.generation, Address: address}
}

// isCurrent must be called with s.mu held.
func (s *State) isCurrent(token FetchToken) bool {
	return s.phase == PhaseLoading &&
		token.Generation == s.generation &&
		token.Address == s.address
}

// ApplyLoaded commits a successful fetch if token is still current. Summary
// and activity are replaced together.
func (s *State) ApplyLoaded(token FetchToken, d *models.Dashboard) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d == nil || !s.isCurrent(token) {
		return false
	}

	s.summary = d.Summary
	s.activity = d.Activity
	if s.activity == nil {
		s.activity = make([]models.ActivityEntry, 0)
	}
	s.errMessage = ""
	s.phase = PhaseReady
	s.lastUpdated = time.Now()
	return true
}

// ApplyFailed records a failed fetch if token is still current. Previously
// loaded data is kept.
func (s *State) ApplyFailed(token FetchToken, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCurrent(token) {
		return false
	}

	if message == "" {
		message = FetchFailureMessage
	}
	s.errMessage = message
	s.phase = PhaseFailed
	return true
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Address returns the backend address of the latest load request.
func (s *State) Address() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address
}

// Generation returns the generation of the latest load request.
func (s *State) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Summary returns the last committed summary.
func (s *State) Summary() models.DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// Activity returns a copy of the last committed activity entries.
func (s *State) Activity() []models.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity := make([]models.ActivityEntry, len(s.activity))
	copy(activity, s.activity)
	return activity
}

// Error returns the user-facing error message, or "" when there is none.
func (s *State) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMessage
}

// GetLastUpdated returns the time of the last successful load.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.notifications = append(s.notifications, Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	})

	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
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
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.RemoveNotification(LoadingNotificationID)
}
