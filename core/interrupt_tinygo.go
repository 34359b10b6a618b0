//go:build tinygo

package core

import "runtime/interrupt"

// InterruptState is the saved interrupt mask returned by Enter
type InterruptState = interrupt.State

// interruptMask suspends every interrupt for the duration of the section.
// It nests: Exit restores whatever mask was active at Enter.
type interruptMask struct{}

func (interruptMask) Enter() InterruptState {
	return interrupt.Disable()
}

func (interruptMask) Exit(state InterruptState) {
	interrupt.Restore(state)
}

// platformCriticalSection is the section used by the package-level timebase
var platformCriticalSection CriticalSection = interruptMask{}
