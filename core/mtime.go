package core

// Timebase counts periodic ticks since Start. It is either stopped (no
// counter yet) or running; the only transition is Start.
//
// Every access goes through the critical section: on a 32-bit core a
// 64-bit load is two instructions and could otherwise straddle a tick.
type Timebase struct {
	cs CriticalSection

	started bool
	count   uint64
	source  TickSource // owned after Start, kept only to hold the timer
}

// NewTimebase returns a stopped timebase guarded by cs
func NewTimebase(cs CriticalSection) *Timebase {
	return &Timebase{cs: cs}
}

// Start configures and arms src and begins counting from zero.
// The timebase takes ownership of src; callers must not touch it again.
// Starting twice is a programming error and is fatal.
func (tb *Timebase) Start(src TickSource, period uint32) {
	Free(tb.cs, func() {
		if tb.started {
			Fatal("mtime: timebase already started")
		}
		if err := src.Configure(period); err != nil {
			Fatal("mtime: configure tick source: " + err.Error())
		}
		src.Enable()
		src.EnableInterrupt()

		tb.count = 0
		tb.source = src
		tb.started = true
	})
}

// Tick records one period. It is called from the tick interrupt, which
// is only armed by Start, so a tick on a stopped timebase is fatal.
func (tb *Timebase) Tick() {
	Free(tb.cs, func() {
		if !tb.started {
			Fatal("mtime: tick before start")
		}
		tb.count++
	})
}

// Read returns the number of ticks since Start. ok is false before Start,
// which is an ordinary outcome and not an error.
func (tb *Timebase) Read() (count uint64, ok bool) {
	Free(tb.cs, func() {
		count, ok = tb.count, tb.started
	})
	return count, ok
}

// Started reports whether Start has run
func (tb *Timebase) Started() bool {
	_, ok := tb.Read()
	return ok
}

// mtime is the process-wide timebase driven by the board's tick interrupt
var mtime = NewTimebase(NewCriticalSection())

// StartMTime starts the process-wide millisecond timebase
func StartMTime(src TickSource, period uint32) {
	mtime.Start(src, period)
}

// MTime returns milliseconds since StartMTime, or ok=false if it has not run
func MTime() (uint64, bool) {
	return mtime.Read()
}

// MTimeStarted reports whether StartMTime has run
func MTimeStarted() bool {
	return mtime.Started()
}

// MTimeTick is the tick interrupt body. Targets call it from their
// timer handler.
func MTimeTick() {
	mtime.Tick()
}
