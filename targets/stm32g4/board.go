//go:build stm32g4

package stm32g4

import "nucleog4/core"

// CoreClockHz is the SysTick and PCLK frequency out of reset
const CoreClockHz = core.CoreClockHz

// BadAddress is past the end of SRAM1 and outside every other region;
// reading it raises a bus fault that escalates to HardFault.
const BadAddress = 0x2FFFFFFF
