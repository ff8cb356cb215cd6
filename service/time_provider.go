package service

import (
	"time"

	"campaignclient/helpers"
	"campaignclient/interfaces"
)

// clock implements interfaces.TimeProvider over an injected now func so recorded events carry deterministic
// timestamps in tests.
type clock struct {
	now func() time.Time
}

// NewTimeProvider wraps now. Panics on nil now.
//
// Called from cmd/campaign-stub with a UTC wall clock and from handler tests with helpers.TestNow.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &clock{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

// Now returns the injected time truncated to milliseconds, the resolution event records are stored with.
func (c *clock) Now() time.Time {
	return c.now().Truncate(time.Millisecond)
}
