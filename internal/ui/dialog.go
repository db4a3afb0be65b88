// Package ui renders the modal forms and alerts. All dialogs block until
// the user dismisses them.
package ui

// LoginInput is what the login form produces. CreateUser distinguishes the
// Create User button; both buttons emit the same downstream login event.
type LoginInput struct {
	Name       string
	UserNumber string
	CreateUser bool
}

// Dialogs is the modal surface the tray shell talks to.
type Dialogs interface {
	// PromptLogin shows the login form. ok is false when the user cancels.
	PromptLogin() (in LoginInput, ok bool)
	// PromptReminder shows the lunch-reminder form and returns the raw
	// HH:MM text. ok is false when the user cancels.
	PromptReminder() (raw string, ok bool)
	// Alert shows a blocking informational dialog.
	Alert(title, message string)
	// Warn shows a blocking warning dialog.
	Warn(title, message string)
}
