package core

// CriticalSection suspends asynchronous notifications between Enter and Exit.
// It is the only mutual exclusion primitive the timebase uses.
type CriticalSection interface {
	// Enter suspends notifications and returns the state to hand back to Exit
	Enter() InterruptState

	// Exit resumes notifications as they were before the matching Enter
	Exit(state InterruptState)
}

// NewCriticalSection returns the platform section: interrupt masking on
// TinyGo, a mutex on regular Go.
func NewCriticalSection() CriticalSection {
	return platformCriticalSection
}

// Free runs fn inside cs. The section is exited on every path out of fn,
// including a panic raised by Fatal.
func Free(cs CriticalSection, fn func()) {
	state := cs.Enter()
	defer cs.Exit(state)
	fn()
}
