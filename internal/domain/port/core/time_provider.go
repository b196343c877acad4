package core

import (
	"context"
	"time"
)

// Duration wraps time.Duration so domain code depends on this package's
// clock abstraction rather than on the standard library directly
type Duration time.Duration

// Duration units, mirroring the standard library's
const (
	Nanosecond  Duration = Duration(time.Nanosecond)
	Microsecond          = Duration(time.Microsecond)
	Millisecond          = Duration(time.Millisecond)
	Second               = Duration(time.Second)
	Minute               = Duration(time.Minute)
	Hour                 = Duration(time.Hour)
)

// Std converts back to a time.Duration for standard library calls
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock port. Production wires the system clock;
// tests substitute a fixed one so balance timestamps are deterministic.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	Until(t time.Time) Duration
	Sleep(d Duration)
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
	ParseDuration(s string) (Duration, error)
}
