// Package tray is the menu-bar shell: icon, dropdown menu and the single
// event loop that turns clicks into tracker calls.
package tray

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/systray"

	"worktray/internal/service"
	"worktray/internal/ui"
)

const appTitle = "Time Tracker"

// App wires the menu-bar shell to the session tracker. All menu actions
// stay visible regardless of login state; invalid combinations surface as
// dialogs, never as disabled items.
type App struct {
	tracker *service.SessionTracker
	dialogs ui.Dialogs
}

func New(tracker *service.SessionTracker, dialogs ui.Dialogs) *App {
	return &App{tracker: tracker, dialogs: dialogs}
}

// Run blocks until ctx is cancelled or Quit is clicked.
func (a *App) Run(ctx context.Context) {
	systray.Run(func() { a.onReady(ctx) }, func() {})
}

func (a *App) onReady(ctx context.Context) {
	systray.SetTitle(appTitle)
	systray.SetTooltip(appTitle)

	mStatus := systray.AddMenuItem("Show Status", "Elapsed time and current user")
	systray.AddSeparator()
	mLogin := systray.AddMenuItem("Login", "")
	mLogout := systray.AddMenuItem("Logout", "")
	mChangeUser := systray.AddMenuItem("Change User", "")
	mReminder := systray.AddMenuItem("Set Lunch Reminder", "")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "")

	// The tray title doubles as a live elapsed-time display.
	a.tracker.OnStatus(func(st service.Status) {
		systray.SetTitle(st.ElapsedText())
	})

	// Single consumer for every menu click keeps tracker calls serialized.
	go func() {
		for {
			select {
			case <-ctx.Done():
				systray.Quit()
				return
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			case <-mStatus.ClickedCh:
				a.showStatus(ctx)
			case <-mLogin.ClickedCh:
				a.promptLogin(ctx)
			case <-mChangeUser.ClickedCh:
				a.promptLogin(ctx)
			case <-mLogout.ClickedCh:
				a.logout()
			case <-mReminder.ClickedCh:
				a.promptReminder()
			}
		}
	}()
}

// showStatus mirrors the original icon-click behavior: a status alert while
// logged in, the login form otherwise.
func (a *App) showStatus(ctx context.Context) {
	st, err := a.tracker.Status()
	if errors.Is(err, service.ErrNotLoggedIn) {
		a.promptLogin(ctx)
		return
	}
	a.dialogs.Alert(appTitle, fmt.Sprintf("Time Worked Today: %s\nCurrent User: %s", st.ElapsedText(), st.User.Label()))
}

func (a *App) promptLogin(ctx context.Context) {
	in, ok := a.dialogs.PromptLogin()
	if !ok {
		return
	}
	// Empty fields never become a login event.
	if in.Name == "" || in.UserNumber == "" {
		return
	}

	var err error
	if in.CreateUser {
		err = a.tracker.CreateUser(ctx, in.Name, in.UserNumber)
	} else {
		err = a.tracker.Login(ctx, in.Name, in.UserNumber)
	}
	if err != nil {
		log.Printf("login: %v", err)
	}
}

func (a *App) logout() {
	err := a.tracker.Logout()
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		a.dialogs.Warn(appTitle, "You are not logged in.")
	case err != nil:
		log.Printf("logout: %v", err)
	default:
		systray.SetTitle(appTitle)
	}
}

// promptReminder keeps the form open until the input parses or the user
// cancels.
func (a *App) promptReminder() {
	for {
		raw, ok := a.dialogs.PromptReminder()
		if !ok {
			return
		}
		if err := a.tracker.SetLunchReminderText(raw); err != nil {
			a.dialogs.Warn("Invalid Time", "Please enter a valid time in the format HH:MM.")
			continue
		}
		return
	}
}
