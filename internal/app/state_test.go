package app

import (
	"testing"
	"time"

	"github.com/j-veylop/trafficbuddy-tui/internal/models"
)

func sampleDashboard(total int) *models.Dashboard {
	summary := models.EmptySummary()
	summary.TotalQueries = total
	summary.QueryStatus.Pending = total / 2
	return &models.Dashboard{
		Summary:  summary,
		Activity: []models.ActivityEntry{{ID: "r1", Status: models.StatusPending}},
	}
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want idle", s.Phase())
	}
	if s.Error() != "" {
		t.Errorf("Error = %q, want empty", s.Error())
	}
	summary := s.Summary()
	if summary.QueriesPerDay == nil || summary.QueryTypes == nil {
		t.Error("initial summary should have non-nil empty slices")
	}
	if len(s.Activity()) != 0 {
		t.Error("initial activity should be empty")
	}
	if !s.GetLastUpdated().IsZero() {
		t.Error("LastUpdated should be zero before the first load")
	}
}

func TestState_LoadSuccess(t *testing.T) {
	s := NewState()

	token := s.BeginLoad("http://a")
	if s.Phase() != PhaseLoading {
		t.Fatalf("Phase = %v, want loading", s.Phase())
	}
	if token.Address != "http://a" || token.Generation != 1 {
		t.Errorf("token = %+v", token)
	}

	if !s.ApplyLoaded(token, sampleDashboard(100)) {
		t.Fatal("ApplyLoaded returned false for the current token")
	}
	if s.Phase() != PhaseReady {
		t.Errorf("Phase = %v, want ready", s.Phase())
	}
	if s.Summary().TotalQueries != 100 {
		t.Errorf("TotalQueries = %d, want 100", s.Summary().TotalQueries)
	}
	if len(s.Activity()) != 1 {
		t.Errorf("len(Activity) = %d, want 1", len(s.Activity()))
	}
	if s.Error() != "" {
		t.Errorf("Error = %q, want empty", s.Error())
	}
	if s.GetLastUpdated().IsZero() {
		t.Error("LastUpdated should be set")
	}

	// A duplicate delivery of the same result is ignored.
	if s.ApplyLoaded(token, sampleDashboard(5)) {
		t.Error("ApplyLoaded accepted a token outside Loading")
	}
	if s.Summary().TotalQueries != 100 {
		t.Error("summary changed after duplicate delivery")
	}
}

func TestState_LoadFailureKeepsData(t *testing.T) {
	s := NewState()

	first := s.BeginLoad("http://a")
	s.ApplyLoaded(first, sampleDashboard(100))

	second := s.BeginLoad("http://a")
	if !s.ApplyFailed(second, FetchFailureMessage) {
		t.Fatal("ApplyFailed returned false for the current token")
	}
	if s.Phase() != PhaseFailed {
		t.Errorf("Phase = %v, want failed", s.Phase())
	}
	if s.Error() != FetchFailureMessage {
		t.Errorf("Error = %q", s.Error())
	}
	if s.Summary().TotalQueries != 100 || len(s.Activity()) != 1 {
		t.Error("data should be unchanged on failure")
	}

	// Retry clears the error on success.
	third := s.BeginLoad("http://a")
	s.ApplyLoaded(third, sampleDashboard(7))
	if s.Error() != "" || s.Phase() != PhaseReady {
		t.Errorf("after retry: phase %v, error %q", s.Phase(), s.Error())
	}
}

func TestState_ApplyFailedDefaultMessage(t *testing.T) {
	s := NewState()
	token := s.BeginLoad("http://a")
	s.ApplyFailed(token, "")
	if s.Error() != FetchFailureMessage {
		t.Errorf("Error = %q, want %q", s.Error(), FetchFailureMessage)
	}
}

func TestState_StaleTokens(t *testing.T) {
	tests := []struct {
		name  string
		apply func(s *State, stale FetchToken) bool
	}{
		{
			name: "Loaded",
			apply: func(s *State, stale FetchToken) bool {
				return s.ApplyLoaded(stale, sampleDashboard(1))
			},
		},
		{
			name: "Failed",
			apply: func(s *State, stale FetchToken) bool {
				return s.ApplyFailed(stale, FetchFailureMessage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			stale := s.BeginLoad("http://a")
			current := s.BeginLoad("http://b")

			if tt.apply(s, stale) {
				t.Error("stale token was applied")
			}
			if s.Phase() != PhaseLoading {
				t.Errorf("Phase = %v, want loading", s.Phase())
			}
			if s.Address() != "http://b" || s.Generation() != current.Generation {
				t.Errorf("address %q generation %d", s.Address(), s.Generation())
			}

			if !s.ApplyLoaded(current, sampleDashboard(42)) {
				t.Fatal("current token rejected")
			}
			if s.Summary().TotalQueries != 42 {
				t.Errorf("TotalQueries = %d, want 42", s.Summary().TotalQueries)
			}
		})
	}
}

func TestState_SameAddressDifferentGeneration(t *testing.T) {
	s := NewState()
	old := s.BeginLoad("http://a")
	s.BeginLoad("http://a")

	if s.ApplyLoaded(old, sampleDashboard(1)) {
		t.Error("older generation for the same address was applied")
	}
}

func TestState_ApplyLoadedNil(t *testing.T) {
	s := NewState()
	token := s.BeginLoad("http://a")
	if s.ApplyLoaded(token, nil) {
		t.Error("ApplyLoaded(nil) should be rejected")
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseLoading, "loading"},
		{PhaseReady, "ready"},
		{PhaseFailed, "failed"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationInfo, "test", time.Minute)
	if id == "" {
		t.Error("AddNotification returned empty ID")
	}

	notifs := s.GetNotifications()
	if len(notifs) != 1 || notifs[0].Message != "test" {
		t.Fatalf("GetNotifications = %+v", notifs)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("notification not removed")
	}

	s.AddNotification(NotificationError, "expired", time.Nanosecond)
	time.Sleep(time.Millisecond)
	s.ClearExpiredNotifications()
	if len(s.GetNotifications()) != 0 {
		t.Error("expired notification not cleared")
	}

	for range 15 {
		s.AddNotification(NotificationInfo, "n", time.Minute)
	}
	if len(s.GetNotifications()) != 10 {
		t.Errorf("len = %d, want 10", len(s.GetNotifications()))
	}

	s.ClearAllNotifications()
	if len(s.GetNotifications()) != 0 {
		t.Error("ClearAllNotifications did not clear")
	}
}

func TestState_NotificationIDsUnique(t *testing.T) {
	s := NewState()
	seen := make(map[string]bool)
	for range 50 {
		id := s.AddNotification(NotificationInfo, "n", time.Minute)
		if seen[id] {
			t.Fatalf("duplicate notification ID %q", id)
		}
		seen[id] = true
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("Loading...")
	s.SetLoadingNotification("Refreshing...")

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("len = %d, want 1", len(notifs))
	}
	if notifs[0].Type != NotificationLoading || notifs[0].Message != "Refreshing..." {
		t.Errorf("loading notification = %+v", notifs[0])
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("loading notification not cleared")
	}
}

func TestNotificationType_String(t *testing.T) {
	tests := []struct {
		typ  NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
		{NotificationLoading, "loading"},
		{NotificationType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
