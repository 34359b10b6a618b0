//go:build stm32g4

// Package stm32g4 is the board support for a NUCLEO-G474RE: just enough
// register-level access to SysTick, RCC, GPIO and LPUART1 for the
// examples, plus ARM semihosting for console output.
//
// Clock tree is left at reset: SYSCLK = HCLK = PCLK = HSI16 (16MHz).
package stm32g4

import (
	"runtime/volatile"
	"unsafe"
)

// Peripheral base addresses (RM0440 section 2.2)
const (
	sysTickBase = 0xE000E010 // Cortex-M4 system timer

	rccBase     = 0x40021000
	lpuart1Base = 0x40008000

	gpioABase = 0x48000000
	gpioBBase = 0x48000400
	gpioCBase = 0x48000800
)

// reg returns the 32-bit register at addr
func reg(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}
