//go:build stm32g4

package stm32g4

// RCC registers used by the examples
const (
	rccAHB2ENR  = rccBase + 0x4C
	rccAPB1ENR2 = rccBase + 0x5C
	rccCCIPR    = rccBase + 0x88

	rccAHB2ENRGPIOAEN     = 1 << 0
	rccAHB2ENRGPIOBEN     = 1 << 1
	rccAHB2ENRGPIOCEN     = 1 << 2
	rccAPB1ENR2LPUART1EN  = 1 << 0
	rccCCIPRLPUART1SELPos = 10
	rccCCIPRLPUART1SELMsk = 0x3
)

// enablePortClock turns on the AHB2 clock for a GPIO port. Writes to a
// port whose clock is off are silently dropped.
func enablePortClock(p Port) {
	var bit uint32
	switch p {
	case PortA:
		bit = rccAHB2ENRGPIOAEN
	case PortB:
		bit = rccAHB2ENRGPIOBEN
	case PortC:
		bit = rccAHB2ENRGPIOCEN
	}
	reg(rccAHB2ENR).SetBits(bit)
	// Two cycles must pass before the port responds (RM0440 7.4.17)
	_ = reg(rccAHB2ENR).Get()
}

// enableLPUART1Clock clocks LPUART1 from PCLK1
func enableLPUART1Clock() {
	reg(rccCCIPR).ReplaceBits(0, rccCCIPRLPUART1SELMsk, rccCCIPRLPUART1SELPos)
	reg(rccAPB1ENR2).SetBits(rccAPB1ENR2LPUART1EN)
	_ = reg(rccAPB1ENR2).Get()
}
