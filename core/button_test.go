package core

import (
	"bytes"
	"errors"
	"testing"

	"nucleog4/protocol"
)

// mockGPIODriver is a test implementation of GPIODriver
type mockGPIODriver struct {
	inputs  map[GPIOPin]bool
	outputs map[GPIOPin]bool
	levels  map[GPIOPin]bool
	failOn  GPIOPin
}

func newMockGPIODriver() *mockGPIODriver {
	return &mockGPIODriver{
		inputs:  make(map[GPIOPin]bool),
		outputs: make(map[GPIOPin]bool),
		levels:  make(map[GPIOPin]bool),
		failOn:  0xFFFF,
	}
}

func (m *mockGPIODriver) ConfigureOutput(pin GPIOPin) error {
	if pin == m.failOn {
		return errors.New("pin in use")
	}
	m.outputs[pin] = true
	m.levels[pin] = false
	return nil
}

func (m *mockGPIODriver) ConfigureInput(pin GPIOPin) error {
	if pin == m.failOn {
		return errors.New("pin in use")
	}
	m.inputs[pin] = true
	return nil
}

func (m *mockGPIODriver) SetPin(pin GPIOPin, value bool) error {
	m.levels[pin] = value
	return nil
}

func (m *mockGPIODriver) ReadPin(pin GPIOPin) bool {
	return m.levels[pin]
}

const (
	testLED    = GPIOPin(5)
	testButton = GPIOPin(2*16 + 13)
)

func pollN(t *testing.T, b *ButtonReporter, n int) (presses int) {
	t.Helper()
	for i := 0; i < n; i++ {
		pressed, err := b.Poll()
		if err != nil {
			t.Fatalf("Poll() error = %v", err)
		}
		if pressed {
			presses++
		}
	}
	return presses
}

func TestButtonReporterConfiguresPins(t *testing.T) {
	gpio := newMockGPIODriver()
	var buf bytes.Buffer
	if _, err := NewButtonReporter(gpio, testButton, testLED, true, NewReporter(&buf, NewTimebase(&mutexSection{}))); err != nil {
		t.Fatalf("NewButtonReporter() error = %v", err)
	}
	if !gpio.inputs[testButton] {
		t.Error("button not configured as input")
	}
	if !gpio.outputs[testLED] {
		t.Error("LED not configured as output")
	}
}

func TestButtonReporterConfigureError(t *testing.T) {
	gpio := newMockGPIODriver()
	gpio.failOn = testLED
	var buf bytes.Buffer
	if _, err := NewButtonReporter(gpio, testButton, testLED, true, NewReporter(&buf, NewTimebase(&mutexSection{}))); err == nil {
		t.Error("expected configure error")
	}
}

func TestButtonReporterPressReportsMTime(t *testing.T) {
	tb := NewTimebase(&mutexSection{})
	tb.Start(&mockTickSource{}, 15999)
	for i := 0; i < 1000; i++ {
		tb.Tick()
	}

	gpio := newMockGPIODriver()
	var buf bytes.Buffer
	b, err := NewButtonReporter(gpio, testButton, testLED, true, NewReporter(&buf, tb))
	if err != nil {
		t.Fatalf("NewButtonReporter() error = %v", err)
	}

	// Released: nothing happens
	if n := pollN(t, b, 200); n != 0 {
		t.Fatalf("%d presses while released", n)
	}

	// Hold the button: exactly one press, LED follows
	gpio.levels[testButton] = true
	if n := pollN(t, b, 200); n != 1 {
		t.Fatalf("held button gave %d presses, want 1", n)
	}
	if !gpio.levels[testLED] {
		t.Error("LED off while button held")
	}

	// Release: LED off, no report
	gpio.levels[testButton] = false
	if n := pollN(t, b, DebounceSamples); n != 0 {
		t.Fatalf("release counted as %d presses", n)
	}
	if gpio.levels[testLED] {
		t.Error("LED on after release")
	}

	// Second press after one more tick
	tb.Tick()
	gpio.levels[testButton] = true
	pollN(t, b, DebounceSamples)

	if b.Presses != 2 {
		t.Errorf("Presses = %d, want 2", b.Presses)
	}

	frames, _ := protocol.NewDecoder().Feed(buf.Bytes())
	var got []uint64
	for _, f := range frames {
		msgs, err := protocol.DecodeMessages(f.Payload)
		if err != nil {
			t.Fatalf("DecodeMessages() error = %v", err)
		}
		for _, m := range msgs {
			got = append(got, m.MTime)
		}
	}
	if len(got) != 2 || got[0] != 1000 || got[1] != 1001 {
		t.Errorf("reported %v, want [1000 1001]", got)
	}
}

func TestButtonReporterBounceIgnored(t *testing.T) {
	gpio := newMockGPIODriver()
	var buf bytes.Buffer
	b, _ := NewButtonReporter(gpio, testButton, testLED, true, NewReporter(&buf, NewTimebase(&mutexSection{})))

	for i := 0; i < 500; i++ {
		gpio.levels[testButton] = i%10 < 5
		if pressed, _ := b.Poll(); pressed {
			t.Fatalf("bouncing input accepted at sample %d", i)
		}
	}
}

func TestMustGPIO(t *testing.T) {
	SetGPIODriver(nil)
	expectFatal(t, func() { MustGPIO() })

	d := newMockGPIODriver()
	SetGPIODriver(d)
	defer SetGPIODriver(nil)
	if MustGPIO() != d {
		t.Error("MustGPIO() did not return the registered driver")
	}
}
