//go:build stm32g4

package stm32g4

import (
	"errors"
	"runtime/volatile"

	"nucleog4/core"
)

// SysTick register offsets and CSR bits
const (
	systCSR = sysTickBase + 0x0 // control and status
	systRVR = sysTickBase + 0x4 // reload value
	systCVR = sysTickBase + 0x8 // current value

	systCSREnable    = 1 << 0
	systCSRTickInt   = 1 << 1
	systCSRClkSource = 1 << 2 // 1 = processor clock
	systCSRCountFlag = 1 << 16

	// SysTickReloadMax is the largest value the 24-bit reload register holds
	SysTickReloadMax = 0x00FFFFFF
)

var ErrReloadRange = errors.New("systick: reload must be 1..0xFFFFFF")

// SysTick is the Cortex-M system timer. There is one per core, so the
// only way to get one is TakeSysTick.
type SysTick struct {
	csr, rvr, cvr *volatile.Register32
}

var sysTickTaken bool

// TakeSysTick hands out the SysTick peripheral the first time it is
// called and nil, false after that.
func TakeSysTick() (*SysTick, bool) {
	var st *SysTick
	core.Free(core.NewCriticalSection(), func() {
		if sysTickTaken {
			return
		}
		sysTickTaken = true
		st = &SysTick{csr: reg(systCSR), rvr: reg(systRVR), cvr: reg(systCVR)}
	})
	return st, st != nil
}

// Configure selects the processor clock and sets the reload value. The
// counter wraps every reload+1 cycles. It does not start the timer.
func (s *SysTick) Configure(reload uint32) error {
	if reload == 0 || reload > SysTickReloadMax {
		return ErrReloadRange
	}
	s.csr.SetBits(systCSRClkSource)
	s.rvr.Set(reload)
	s.ClearCurrent()
	return nil
}

// ClearCurrent zeroes the counter and the wrap flag
func (s *SysTick) ClearCurrent() {
	s.cvr.Set(0)
}

// Enable starts the counter
func (s *SysTick) Enable() {
	s.csr.SetBits(systCSREnable)
}

// Disable stops the counter
func (s *SysTick) Disable() {
	s.csr.ClearBits(systCSREnable)
}

// EnableInterrupt raises the SysTick exception on every wrap
func (s *SysTick) EnableInterrupt() {
	s.csr.SetBits(systCSRTickInt)
}

// HasWrapped reports whether the counter reached zero since the last
// call. Reading CSR clears the flag.
func (s *SysTick) HasWrapped() bool {
	return s.csr.Get()&systCSRCountFlag != 0
}

// Current returns the counter value; it counts down from the reload value
func (s *SysTick) Current() uint32 {
	return s.cvr.Get()
}

var _ core.TickSource = (*SysTick)(nil)
