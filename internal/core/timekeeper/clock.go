package timekeeper

import "time"

// Clock abstracts wall time so runs can be simulated in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
