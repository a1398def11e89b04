package coordinator

import "time"

// Scheduler runs deferred work without blocking the caller
type Scheduler interface {
	// AfterFunc calls f after d; stop prevents the call if it has not happened yet
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// TimerScheduler schedules with time.AfterFunc.
// Dispatch, when set, is used to hand the callback to the host's UI thread.
type TimerScheduler struct {
	Dispatch func(func())
}

// NewTimerScheduler creates a scheduler that delivers callbacks through dispatch
func NewTimerScheduler(dispatch func(func())) *TimerScheduler {
	return &TimerScheduler{Dispatch: dispatch}
}

// AfterFunc schedules f after d
func (s *TimerScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	timer := time.AfterFunc(d, func() {
		if s.Dispatch != nil {
			s.Dispatch(f)
			return
		}
		f()
	})
	return timer.Stop
}

// ImmediateScheduler runs deferred work synchronously.
// Used by headless tools where there is no layout pass to wait for.
type ImmediateScheduler struct{}

// AfterFunc calls f right away
func (ImmediateScheduler) AfterFunc(_ time.Duration, f func()) func() bool {
	f()
	return func() bool { return false }
}
