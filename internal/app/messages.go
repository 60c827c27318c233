package app

import (
	"time"

	"github.com/j-veylop/trafficbuddy-tui/internal/models"
	"github.com/j-veylop/trafficbuddy-tui/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// DashboardLoadedMsg carries a successful fetch for the request identified by Token.
type DashboardLoadedMsg struct {
	Token     FetchToken
	Dashboard *models.Dashboard
}

// DashboardFailedMsg reports a failed fetch. Err is the raw client error and
// is only logged; the UI shows Message.
type DashboardFailedMsg struct {
	Token   FetchToken
	Err     error
	Message string
}

// AddressChangedMsg requests a reload from a new backend address.
type AddressChangedMsg struct {
	Address string
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg reports a background service error. Context names the service.
type ErrorMsg struct {
	Error   error
	Context string
}

// CopyToClipboardMsg requests copying text to clipboard.
type CopyToClipboardMsg struct {
	Text string
}

// ClipboardResultMsg contains the result of a clipboard operation.
type ClipboardResultMsg struct {
	Error error
	Text  string
}
