package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"worktray/internal/config"
	"worktray/internal/model"
	"worktray/internal/notify"
)

// ErrNotLoggedIn is returned by operations that need an active session.
var ErrNotLoggedIn = errors.New("not logged in")

const notificationTitle = "Time Tracker"

// LastUserStore persists the single auto-resume identity.
type LastUserStore interface {
	Get(ctx context.Context) (*model.Identity, error)
	Replace(ctx context.Context, id model.Identity) error
}

// UserStore records created identities.
type UserStore interface {
	Create(ctx context.Context, id model.Identity) error
}

// TickScheduler starts and stops the periodic tick.
type TickScheduler interface {
	Every(interval time.Duration, job func()) (cron.EntryID, error)
	Remove(id cron.EntryID)
}

// Status is a point-in-time snapshot of the running session.
type Status struct {
	User      model.Identity
	Elapsed   time.Duration // truncated to whole seconds
	Remaining time.Duration // until end of day, clamped at zero
}

// ElapsedText renders the elapsed time as H:MM:SS.
func (s Status) ElapsedText() string {
	total := int(s.Elapsed / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// SessionTracker holds the login state, the running session and the
// in-memory monthly hours accumulator. State is mutated from the tray
// event loop and from the tick job, so it is mutex-guarded.
type SessionTracker struct {
	lastUsers LastUserStore
	users     UserStore
	scheduler TickScheduler
	notifier  notify.Notifier
	sound     notify.SoundPlayer
	endOfDay  config.Clock
	now       func() time.Time

	mu           sync.Mutex
	loggedIn     bool
	current      model.Identity
	startTime    time.Time
	reminder     *config.Clock
	monthlyHours float64
	tickID       cron.EntryID
	onStatus     func(Status)
}

func NewSessionTracker(lastUsers LastUserStore, users UserStore, scheduler TickScheduler, notifier notify.Notifier, sound notify.SoundPlayer, endOfDay config.Clock) *SessionTracker {
	return &SessionTracker{
		lastUsers: lastUsers,
		users:     users,
		scheduler: scheduler,
		notifier:  notifier,
		sound:     sound,
		endOfDay:  endOfDay,
		now:       time.Now,
	}
}

// OnStatus registers a listener that receives a snapshot on every tick
// while logged in. Used by the tray shell to keep its title current.
func (t *SessionTracker) OnStatus(fn func(Status)) {
	t.mu.Lock()
	t.onStatus = fn
	t.mu.Unlock()
}

// Resume logs in with the persisted last user, if any. Re-persisting the
// identity on resume is idempotent.
func (t *SessionTracker) Resume(ctx context.Context) (bool, error) {
	id, err := t.lastUsers.Get(ctx)
	if err != nil {
		return false, err
	}
	if id == nil {
		return false, nil
	}
	if err := t.Login(ctx, id.Name, id.UserNumber); err != nil {
		return false, err
	}
	return true, nil
}

// Login stores the identity as the last-logged user, marks the session
// active and starts the tick. Calling Login while already logged in (the
// Change User path) replaces the identity and restarts the session clock
// without touching the monthly accumulator.
func (t *SessionTracker) Login(ctx context.Context, name, userNumber string) error {
	id := model.Identity{Name: name, UserNumber: userNumber}
	if err := t.lastUsers.Replace(ctx, id); err != nil {
		return fmt.Errorf("persist last user: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = id
	t.startTime = t.now()
	if !t.loggedIn {
		t.loggedIn = true
		t.startTickLocked()
	}
	return nil
}

// CreateUser records the identity in the users table and logs in with it.
// Downstream of the insert, the path is identical to Login.
func (t *SessionTracker) CreateUser(ctx context.Context, name, userNumber string) error {
	id := model.Identity{Name: name, UserNumber: userNumber}
	if err := t.users.Create(ctx, id); err != nil {
		return err
	}
	return t.Login(ctx, name, userNumber)
}

// Logout folds the elapsed session time into the monthly accumulator,
// stops the tick and announces the running total. Logging out without an
// active session returns ErrNotLoggedIn.
func (t *SessionTracker) Logout() error {
	t.mu.Lock()
	if !t.loggedIn {
		t.mu.Unlock()
		return ErrNotLoggedIn
	}
	elapsed := t.now().Sub(t.startTime)
	t.monthlyHours += elapsed.Hours()
	hours := t.monthlyHours
	t.loggedIn = false
	t.startTime = time.Time{}
	t.scheduler.Remove(t.tickID)
	t.tickID = 0
	t.mu.Unlock()

	t.send(fmt.Sprintf("Goodbye! Monthly worked hours: %.2f", hours))
	return nil
}

// SetLunchReminder stores the reminder time of day and confirms it.
// Out-of-range values are rejected without touching the stored time.
func (t *SessionTracker) SetLunchReminder(hour, minute int) error {
	clock, err := config.NewClock(hour, minute)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.reminder = &clock
	t.mu.Unlock()

	t.send("Lunch reminder set for " + clock.String())
	return nil
}

// SetLunchReminderText parses HH:MM form input before storing it.
func (t *SessionTracker) SetLunchReminderText(raw string) error {
	clock, err := config.ParseClock(raw)
	if err != nil {
		return err
	}
	return t.SetLunchReminder(clock.Hour, clock.Minute)
}

// LunchReminder returns the stored reminder time, if one is set.
func (t *SessionTracker) LunchReminder() (config.Clock, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.reminder == nil {
		return config.Clock{}, false
	}
	return *t.reminder, true
}

// MonthlyHours returns the in-memory accumulator. It survives login cycles
// but not a process restart.
func (t *SessionTracker) MonthlyHours() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.monthlyHours
}

// Status returns a snapshot of the running session, or ErrNotLoggedIn so
// the caller can open the login form instead.
func (t *SessionTracker) Status() (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.loggedIn {
		return Status{}, ErrNotLoggedIn
	}
	return t.statusLocked(t.now()), nil
}

// Tick runs once per second while logged in. The reminder fires only when
// a tick lands exactly on the stored HH:MM:00; if the process is suspended
// across that second the reminder is skipped silently. Known limitation,
// kept from the observed behavior.
func (t *SessionTracker) Tick(now time.Time) {
	t.mu.Lock()
	if !t.loggedIn {
		t.mu.Unlock()
		return
	}
	st := t.statusLocked(now)
	reminderDue := t.reminder != nil && t.reminder.Matches(now)
	onStatus := t.onStatus
	t.mu.Unlock()

	if reminderDue {
		t.sound.Play()
	}
	if onStatus != nil {
		onStatus(st)
	}
}

func (t *SessionTracker) statusLocked(now time.Time) Status {
	remaining := t.endOfDay.At(now).Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return Status{
		User:      t.current,
		Elapsed:   now.Sub(t.startTime).Truncate(time.Second),
		Remaining: remaining,
	}
}

func (t *SessionTracker) startTickLocked() {
	id, err := t.scheduler.Every(time.Second, func() { t.Tick(t.now()) })
	if err != nil {
		log.Printf("schedule tick: %v", err)
		return
	}
	t.tickID = id
}

func (t *SessionTracker) send(message string) {
	if err := t.notifier.Send(notify.Notification{Title: notificationTitle, Message: message}); err != nil {
		log.Printf("notify: %v", err)
	}
}
