package core

// Timer is a callback due at an mtime deadline
type Timer struct {
	WakeTime uint64 // mtime in ms
	Handler  func(*Timer) uint8
	Next     *Timer
}

// Handler results
const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

// Scheduler keeps timers sorted by WakeTime and runs them from the main
// loop. Handlers run with interrupts enabled: SysTick only latches one
// pending tick, so a handler that held the section for over a period
// would lose time.
type Scheduler struct {
	cs        CriticalSection
	timerList *Timer
}

// NewScheduler returns an empty scheduler guarded by cs
func NewScheduler(cs CriticalSection) *Scheduler {
	return &Scheduler{cs: cs}
}

// ScheduleTimer adds a timer to the schedule
func (s *Scheduler) ScheduleTimer(t *Timer) {
	Free(s.cs, func() {
		s.insertTimer(t)
	})
}

// insertTimer inserts a timer in sorted order by WakeTime; equal wake
// times run in insertion order
func (s *Scheduler) insertTimer(t *Timer) {
	if s.timerList == nil || t.WakeTime < s.timerList.WakeTime {
		t.Next = s.timerList
		s.timerList = t
		return
	}

	current := s.timerList
	for current.Next != nil && current.Next.WakeTime <= t.WakeTime {
		current = current.Next
	}

	t.Next = current.Next
	current.Next = t
}

// popDue removes and returns the first timer due at now, or nil
func (s *Scheduler) popDue(now uint64) *Timer {
	var t *Timer
	Free(s.cs, func() {
		if s.timerList != nil && s.timerList.WakeTime <= now {
			t = s.timerList
			s.timerList = t.Next
			t.Next = nil
		}
	})
	return t
}

// TimerDispatch runs every timer due at now and returns how many ran.
// A handler that returns SF_RESCHEDULE must move WakeTime forward, or it
// runs again in the same dispatch.
func (s *Scheduler) TimerDispatch(now uint64) int {
	ran := 0
	for t := s.popDue(now); t != nil; t = s.popDue(now) {
		ran++
		if t.Handler(t) == SF_RESCHEDULE {
			s.ScheduleTimer(t)
		}
	}
	return ran
}

// Pending returns the number of scheduled timers
func (s *Scheduler) Pending() int {
	n := 0
	Free(s.cs, func() {
		for t := s.timerList; t != nil; t = t.Next {
			n++
		}
	})
	return n
}

// Every returns a timer that calls fn every periodMS starting at start.
// If dispatch falls behind, the missed periods run back to back.
func Every(start, periodMS uint64, fn func(now uint64)) *Timer {
	return &Timer{
		WakeTime: start,
		Handler: func(t *Timer) uint8 {
			fn(t.WakeTime)
			t.WakeTime += periodMS
			return SF_RESCHEDULE
		},
	}
}
