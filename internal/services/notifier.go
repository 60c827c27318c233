package services

import (
	"github.com/gen2brain/beeep"
)

// Notifier delivers desktop notifications.
type Notifier interface {
	Notify(title, message string) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, message string) error

// Notify calls f(title, message).
func (f NotifierFunc) Notify(title, message string) error {
	return f(title, message)
}

// DesktopNotifier sends notifications through the OS notification center.
type DesktopNotifier struct {
	AppName string
}

// Notify shows a desktop notification.
func (d DesktopNotifier) Notify(title, message string) error {
	if d.AppName != "" {
		beeep.AppName = d.AppName
	}
	return beeep.Notify(title, message, "")
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, string) error { return nil }
