package overlay

import "time"

type timeScheduler struct {
	dispatch func(func())
}

// NewScheduler returns a Scheduler backed by time.AfterFunc. Every callback is
// handed to dispatch, which must run it on the UI goroutine (fyne.Do for the
// desktop app). A nil dispatch runs callbacks on the timer goroutine.
func NewScheduler(dispatch func(func())) Scheduler {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &timeScheduler{dispatch: dispatch}
}

// AfterFunc schedules f after d
func (s *timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() {
		s.dispatch(f)
	})
}
