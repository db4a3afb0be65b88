package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// NewClock validates hour and minute ranges.
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 {
		return Clock{}, fmt.Errorf("invalid hour %d", hour)
	}
	if minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("invalid minute %d", minute)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// ParseClock parses an HH:MM string.
func ParseClock(raw string) (Clock, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return Clock{}, fmt.Errorf("invalid hour in %q", raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("invalid minute in %q", raw)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// String renders the clock as H:MM with a zero-padded minute.
func (c Clock) String() string {
	return fmt.Sprintf("%d:%02d", c.Hour, c.Minute)
}

// At anchors the clock to the date of ref, in ref's location.
func (c Clock) At(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), c.Hour, c.Minute, 0, 0, ref.Location())
}

// Matches reports whether t lands exactly on this clock time, at second
// granularity.
func (c Clock) Matches(t time.Time) bool {
	return t.Hour() == c.Hour && t.Minute() == c.Minute && t.Second() == 0
}
