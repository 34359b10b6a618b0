package core

// ButtonReporter polls a button, mirrors its debounced level on an LED
// and reports mtime each time it is pressed.
type ButtonReporter struct {
	gpio        GPIODriver
	button      GPIOPin
	led         GPIOPin
	pressedHigh bool
	debounce    *Debouncer
	reporter    *Reporter

	// Presses counts accepted presses
	Presses int
}

// NewButtonReporter configures the pins. pressedHigh is the level the
// button reads while held.
func NewButtonReporter(gpio GPIODriver, button, led GPIOPin, pressedHigh bool, r *Reporter) (*ButtonReporter, error) {
	if err := gpio.ConfigureInput(button); err != nil {
		return nil, err
	}
	if err := gpio.ConfigureOutput(led); err != nil {
		return nil, err
	}
	return &ButtonReporter{
		gpio:        gpio,
		button:      button,
		led:         led,
		pressedHigh: pressedHigh,
		debounce:    NewDebouncer(DebounceSamples, pressedHigh),
		reporter:    r,
	}, nil
}

// Poll takes one button sample. It returns true when the sample completes
// a press, after the reading has been printed and reported.
func (b *ButtonReporter) Poll() (bool, error) {
	if !b.debounce.Sample(b.gpio.ReadPin(b.button)) {
		return false, nil
	}

	pressed := b.debounce.Level() == b.pressedHigh
	if err := b.gpio.SetPin(b.led, pressed); err != nil {
		return false, err
	}
	if !pressed {
		return false, nil
	}

	b.Presses++
	if ms, ok := b.reporter.tb.Read(); ok {
		DebugValue("mtime()", ms)
	} else {
		DebugPrintln("mtime not started")
	}
	return true, b.reporter.ReportMTime()
}
