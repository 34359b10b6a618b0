package core

// GPIOPin identifies a hardware GPIO line as port*16 + pin
type GPIOPin uint32

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a push-pull output, driven low
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInput configures a pin as a floating digital input
	ConfigureInput(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// ReadPin reads the current pin state
	ReadPin(pin GPIOPin) bool
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or stops if none is registered.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		Fatal("GPIO driver not configured")
	}
	return gpioDriver
}
