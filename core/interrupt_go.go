//go:build !tinygo

package core

import "sync"

// InterruptState is a placeholder for interrupt state on regular Go
type InterruptState uintptr

// mutexSection stands in for interrupt masking on regular Go (for testing).
// A goroutine blocked in Enter plays the part of a pending interrupt.
// Unlike the hardware mask it does not nest.
type mutexSection struct {
	mu sync.Mutex
}

func (m *mutexSection) Enter() InterruptState {
	m.mu.Lock()
	return 0
}

func (m *mutexSection) Exit(state InterruptState) {
	m.mu.Unlock()
}

var platformCriticalSection CriticalSection = &mutexSection{}
