package core

import "testing"

func TestDebouncerAcceptsStableRun(t *testing.T) {
	d := NewDebouncer(3, true)

	for i := 0; i < 2; i++ {
		if d.Sample(true) {
			t.Fatalf("accepted after %d samples, want 3", i+1)
		}
	}
	if !d.Sample(true) {
		t.Fatal("third high sample not accepted")
	}
	if !d.Level() {
		t.Error("Level() = false after accepting high")
	}
	if d.Expecting() {
		t.Error("debouncer should wait for low after accepting high")
	}
}

func TestDebouncerBounceResetsCount(t *testing.T) {
	d := NewDebouncer(3, true)

	samples := []bool{true, true, false, true, true}
	for i, s := range samples {
		if d.Sample(s) {
			t.Fatalf("sample %d accepted during bounce", i)
		}
	}
	if !d.Sample(true) {
		t.Error("expected acceptance after three clean samples")
	}
}

func TestDebouncerHeldLevelReportedOnce(t *testing.T) {
	d := NewDebouncer(2, true)

	accepted := 0
	for i := 0; i < 10; i++ {
		if d.Sample(true) {
			accepted++
		}
	}
	if accepted != 1 {
		t.Errorf("held level accepted %d times, want 1", accepted)
	}

	d.Sample(false)
	if !d.Sample(false) {
		t.Error("release not accepted")
	}
	if d.Level() {
		t.Error("Level() = true after accepting low")
	}
}

func TestDebouncerZeroThreshold(t *testing.T) {
	d := NewDebouncer(0, false)
	if !d.Sample(false) {
		t.Error("zero threshold should accept the first matching sample")
	}
}
