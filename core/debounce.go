package core

// DebounceSamples is the number of identical consecutive samples needed
// before a button level is accepted
const DebounceSamples = 50

// Debouncer accepts an input level once it has been read the same way
// threshold times in a row. After each accepted level it waits for the
// opposite one, so a held button is reported once.
type Debouncer struct {
	threshold uint32
	expect    bool
	count     uint32
	level     bool
}

// NewDebouncer returns a debouncer waiting for the level expect
func NewDebouncer(threshold uint32, expect bool) *Debouncer {
	if threshold == 0 {
		threshold = 1
	}
	return &Debouncer{threshold: threshold, expect: expect}
}

// Sample feeds one reading and reports whether it completed a stable run
// of the expected level.
func (d *Debouncer) Sample(level bool) bool {
	if level != d.expect {
		d.count = 0
		return false
	}
	d.count++
	if d.count < d.threshold {
		return false
	}

	d.count = 0
	d.level = d.expect
	d.expect = !d.expect
	return true
}

// Level returns the most recently accepted level
func (d *Debouncer) Level() bool {
	return d.level
}

// Expecting returns the level the debouncer is currently waiting for
func (d *Debouncer) Expecting() bool {
	return d.expect
}
