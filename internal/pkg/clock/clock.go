// Package clock provides a tiny time abstraction.
//
// Code that needs the current time should depend on Clocker instead of calling
// time.Now() directly, so tests can substitute a deterministic clock.
package clock

import "time"

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock implementation backed by time.Now.
type TimeClocker struct{}

// New returns a TimeClocker that reads the current system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// Func adapts an ordinary function to the Clocker interface.
type Func func() time.Time

// Now returns the result of calling the wrapped function.
func (f Func) Now() time.Time {
	return f()
}
