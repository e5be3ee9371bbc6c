package waiter

import "time"

// Clock supplies the current time and the means to sleep
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock uses the system clock
type RealClock struct{}

// Now returns the current local time
func (RealClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine for the given duration
func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }
