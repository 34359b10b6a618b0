package core

import "errors"

// Clock defaults for an STM32G4 straight out of reset
const (
	CoreClockHz   = 16000000 // HSI16 drives SYSCLK, no PLL configured
	MTimePeriodUS = 1000     // 1ms timebase tick
)

var ErrPeriodZero = errors.New("tick period must be non-zero")

// TickSource is a hardware timer that raises a notification once per period.
// The platform delivers each notification to MTimeTick.
type TickSource interface {
	// Configure sets the period in the source's native unit (a reload value)
	Configure(period uint32) error

	// Enable starts counting
	Enable()

	// EnableInterrupt turns on notification delivery
	EnableInterrupt()
}

// ReloadFor converts a period in microseconds into a down-counter reload
// value for a timer clocked at clockHz. The counter wraps after reload+1
// cycles.
func ReloadFor(clockHz, periodUS uint32) (uint32, error) {
	cycles := uint64(clockHz) * uint64(periodUS) / 1000000
	if cycles == 0 {
		return 0, ErrPeriodZero
	}
	return uint32(cycles - 1), nil
}
