package app

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/trafficbuddy-tui/internal/logger"
	"github.com/j-veylop/trafficbuddy-tui/internal/services"
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

	desktopNotificationTitle = "Traffic Buddy"
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// fetchDashboardCmd runs both dashboard requests for token.Address and
// reports the outcome tagged with token.
func fetchDashboardCmd(ctx context.Context, mgr *services.Manager, token FetchToken) tea.Cmd {
	return func() tea.Msg {
		d, err := mgr.FetchDashboard(ctx, token.Address)
		if err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				logger.Debug("dashboard fetch superseded",
					"address", token.Address,
					"generation", token.Generation,
				)
			} else {
				logger.Error("dashboard fetch failed",
					"address", token.Address,
					"generation", token.Generation,
					"error", err,
				)
			}
			return DashboardFailedMsg{Token: token, Err: err, Message: FetchFailureMessage}
		}
		return DashboardLoadedMsg{Token: token, Dashboard: d}
	}
}

// desktopNotifyCmd sends a desktop notification off the event loop.
func desktopNotifyCmd(mgr *services.Manager, message string) tea.Cmd {
	return func() tea.Msg {
		mgr.Notify(desktopNotificationTitle, message)
		return nil
	}
}

// copyToClipboardCmd writes text to the system clipboard.
func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardResultMsg{Text: text, Error: writeClipboard(text)}
	}
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

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

// addressChangedCmd turns a watcher event into a reload request.
func addressChangedCmd(address string) tea.Cmd {
	return func() tea.Msg {
		return AddressChangedMsg{Address: address}
	}
}

// serviceErrorCmd reports a service error to the event loop.
func serviceErrorCmd(service string, err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err, Context: service}
	}
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
