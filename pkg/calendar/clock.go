// File: clock.go
// Title: Injectable Clock
// Description: Clock abstraction for reading the current time, with a system
//              implementation and a fixed one for tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"strings"
	"time"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock in Location (time.Local when nil).
type SystemClock struct {
	Location *time.Location
}

// Now implements Clock.
func (c SystemClock) Now() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// FixedClock always returns Instant.
type FixedClock struct {
	Instant time.Time
}

// Now implements Clock.
func (c FixedClock) Now() time.Time {
	return c.Instant
}

// LoadLocation resolves a configured location name. "local" and the empty
// string map to time.Local, "utc" to time.UTC; anything else is an IANA name.
func LoadLocation(name string) (*time.Location, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

// Now reads clock and returns the reading as a Timestamp. The reading is
// rendered in Layout and parsed again, so it passes the same validation as
// any other input. A nil clock means SystemClock{}.
func Now(clock Clock) (Timestamp, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	return Parse(clock.Now().Format(Layout))
}
