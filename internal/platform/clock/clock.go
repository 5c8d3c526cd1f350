package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// Sleeper blocks the calling goroutine for a duration.
type Sleeper interface {
	Sleep(d time.Duration)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type SystemSleeper struct{}

func (SystemSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}
