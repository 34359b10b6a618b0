//go:build stm32g4

package stm32g4

import "nucleog4/core"

// sysTickHandler is the SysTick exception. It is only armed by
// core.StartMTime.
//
//export SysTick_Handler
func sysTickHandler() {
	core.MTimeTick()
}
