//go:build stm32g4

package stm32g4

import (
	"errors"

	"nucleog4/core"
)

var ErrInvalidPin = errors.New("gpio: no such pin")

// Pin numbers as seen by core code
var (
	LEDPin    = PinNumber(LED)
	ButtonPin = PinNumber(Button)
)

// PinNumber encodes p as a core.GPIOPin (port*16 + pin)
func PinNumber(p Pin) core.GPIOPin {
	return core.GPIOPin(uint32(p.Port)*16 + uint32(p.Num))
}

// GPIODriver implements core.GPIODriver on the G474's GPIO ports
type GPIODriver struct{}

// NewGPIODriver creates a new GPIO driver
func NewGPIODriver() *GPIODriver {
	return &GPIODriver{}
}

// pin converts a core pin number, rejecting ports the board doesn't use
func (d *GPIODriver) pin(n core.GPIOPin) (Pin, error) {
	port := Port(n / 16)
	if port > PortC {
		return Pin{}, ErrInvalidPin
	}
	return Pin{Port: port, Num: uint8(n % 16)}, nil
}

// ConfigureOutput configures a pin as a digital output
func (d *GPIODriver) ConfigureOutput(n core.GPIOPin) error {
	p, err := d.pin(n)
	if err != nil {
		return err
	}
	p.ConfigureOutput()
	return nil
}

// ConfigureInput configures a pin as a floating input
func (d *GPIODriver) ConfigureInput(n core.GPIOPin) error {
	p, err := d.pin(n)
	if err != nil {
		return err
	}
	p.ConfigureInput(PullNone)
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *GPIODriver) SetPin(n core.GPIOPin, value bool) error {
	p, err := d.pin(n)
	if err != nil {
		return err
	}
	p.Set(value)
	return nil
}

// ReadPin reads the current pin state; invalid pins read low
func (d *GPIODriver) ReadPin(n core.GPIOPin) bool {
	p, err := d.pin(n)
	if err != nil {
		return false
	}
	return p.Get()
}

var _ core.GPIODriver = (*GPIODriver)(nil)
