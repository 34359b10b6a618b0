//go:build stm32g4

package stm32g4

import (
	"device/arm"
	"unsafe"
)

// Semihosting operation numbers
const (
	semihostingWrite0 = 0x04 // write a NUL-terminated string to the debug console
)

// SemihostingPrintln writes s and a newline to the host console through the
// debugger. Without a debugger attached the BKPT faults, so only use it
// while debugging. It is slow: each call stops the core.
func SemihostingPrintln(s string) {
	buf := make([]byte, len(s)+2)
	copy(buf, s)
	buf[len(s)] = '\n'
	arm.SemihostingCall(semihostingWrite0, uintptr(unsafe.Pointer(&buf[0])))
}
