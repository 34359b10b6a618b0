//go:build stm32g4

package stm32g4

// Port selects a GPIO bank
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
)

// GPIO register offsets
const (
	gpioMODER = 0x00
	gpioPUPDR = 0x0C
	gpioIDR   = 0x10
	gpioBSRR  = 0x18
	gpioAFRL  = 0x20
	gpioAFRH  = 0x24
)

// Pin modes (MODER field values)
const (
	modeInput  = 0b00
	modeOutput = 0b01
	modeAlt    = 0b10
)

// Pull is a PUPDR setting
type Pull uint8

const (
	PullNone Pull = 0b00
	PullUp   Pull = 0b01
	PullDown Pull = 0b10
)

// Pin is one GPIO line
type Pin struct {
	Port Port
	Num  uint8
}

// Board pins
var (
	LED    = Pin{PortA, 5}  // LD2, user LED
	Button = Pin{PortC, 13} // B1, user button, high when pressed

	LPUART1TX = Pin{PortA, 2} // ST-LINK virtual COM port
	LPUART1RX = Pin{PortA, 3}
)

func (p Pin) base() uintptr {
	switch p.Port {
	case PortB:
		return gpioBBase
	case PortC:
		return gpioCBase
	default:
		return gpioABase
	}
}

func (p Pin) setMode(mode uint32) {
	enablePortClock(p.Port)
	// Read-modify-write: PA13/PA14 are the SWD pins and must stay in AF mode
	reg(p.base()+gpioMODER).ReplaceBits(mode, 0b11, p.Num*2)
}

// ConfigureOutput makes the pin a push-pull output, driven low
func (p Pin) ConfigureOutput() {
	enablePortClock(p.Port)
	p.Low()
	p.setMode(modeOutput)
}

// ConfigureInput makes the pin an input with the given pull
func (p Pin) ConfigureInput(pull Pull) {
	p.setMode(modeInput)
	reg(p.base()+gpioPUPDR).ReplaceBits(uint32(pull), 0b11, p.Num*2)
}

// ConfigureAlt routes the pin to alternate function af
func (p Pin) ConfigureAlt(af uint8) {
	afr := reg(p.base() + gpioAFRL)
	n := p.Num
	if n >= 8 {
		afr = reg(p.base() + gpioAFRH)
		n -= 8
	}
	afr.ReplaceBits(uint32(af), 0xF, n*4)
	p.setMode(modeAlt)
}

// Set drives the pin high or low. BSRR makes this atomic with respect to
// other pins on the same port.
func (p Pin) Set(high bool) {
	if high {
		p.High()
	} else {
		p.Low()
	}
}

// High drives the pin high
func (p Pin) High() {
	reg(p.base() + gpioBSRR).Set(1 << p.Num)
}

// Low drives the pin low
func (p Pin) Low() {
	reg(p.base() + gpioBSRR).Set(1 << (p.Num + 16))
}

// Get reads the input level
func (p Pin) Get() bool {
	return reg(p.base()+gpioIDR).Get()&(1<<p.Num) != 0
}
