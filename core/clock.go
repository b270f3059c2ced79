package core

import (
	"strconv"
	"time"
)

// Clock supplies the text substituted for the &(time)% placeholder.
// Handlers call Now once per rendered record and never cache the result,
// so implementations may be stateful.
type Clock interface {
	Now() string
}

// EpochClock renders whole seconds since the Unix epoch. It is the
// default Clock of every Handler.
type EpochClock struct{}

// Now returns the current Unix time in seconds
func (EpochClock) Now() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

// LayoutClock formats the wall clock with a time layout
type LayoutClock struct {
	// Layout passed to time.Format (empty for time.RFC3339)
	Layout string
	// UTC converts the time to UTC before formatting
	UTC bool
}

// Now returns the current time formatted with Layout
func (c LayoutClock) Now() string {
	t := time.Now()
	if c.UTC {
		t = t.UTC()
	}
	layout := c.Layout
	if layout == "" {
		layout = time.RFC3339
	}
	return t.Format(layout)
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() string

// Now calls f()
func (f ClockFunc) Now() string {
	return f()
}
