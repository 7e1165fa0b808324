// Package clock abstracts time for cache timestamps and test determinism.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using system time.
type Real struct{}

// Now returns the current time.
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a real clock.
func New() Clock {
	return &Real{}
}
