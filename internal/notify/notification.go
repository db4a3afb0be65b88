// Package notify delivers tracker notifications to the desktop and to any
// configured mirror backends.
package notify

// Notification is one outbound banner.
type Notification struct {
	Title   string
	Message string
}

// Notifier sends notifications. Implementations must never block the
// caller for long; delivery failures are reported, not retried.
type Notifier interface {
	Send(n Notification) error
}
