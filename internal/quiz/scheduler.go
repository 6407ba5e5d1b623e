package quiz

import "time"

// Scheduler abstracts deferred execution so the engine can be driven
// deterministically in tests.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable handle to a scheduled callback. Stop reports
// whether it prevented the callback from firing.
type Timer interface {
	Stop() bool
}

type realScheduler struct{}

// NewScheduler returns a Scheduler backed by time.AfterFunc
func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
