// Package timing reads the wall clock and measures how long calls take.
//
// Every reading goes through the Clock interface so that tests and the
// scenario harness can substitute a deterministic clock.
package timing

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimeParts is a time of day broken into its components.
type TimeParts struct {
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	Seconds      int `json:"seconds"`
	Milliseconds int `json:"milliseconds"`
}

// Slice returns [hours, minutes, seconds, milliseconds].
func (p TimeParts) Slice() []int {
	return []int{p.Hours, p.Minutes, p.Seconds, p.Milliseconds}
}

// CurrentTimeParts returns the current time of day according to c, in the
// location of the time c returns.
func CurrentTimeParts(c Clock) TimeParts {
	return PartsOf(c.Now())
}

// PartsOf breaks t into its time-of-day components.
func PartsOf(t time.Time) TimeParts {
	return TimeParts{
		Hours:        t.Hour(),
		Minutes:      t.Minute(),
		Seconds:      t.Second(),
		Milliseconds: t.Nanosecond() / int(time.Millisecond),
	}
}
