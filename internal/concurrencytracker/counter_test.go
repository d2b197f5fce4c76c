package concurrencytracker

import (
	"testing"
)

func TestCounter(t *testing.T) {
	var cct Counter
	if peak := cct.Peak(false); peak != 0 {
		t.Error("Peak should start life at zero, not", peak)
	}
	cct.Add() // current=1, peak=1
	cct.Add() // current=2, peak=2
	if cct.Current() != 2 {
		t.Error("Current should reflect two Adds, not", cct.Current())
	}
	if peak := cct.Peak(false); peak != 2 {
		t.Error("Peak should reflect Add->2, not", peak)
	}

	cct.Done()                            // current=1, peak=2
	if peak := cct.Peak(true); peak != 2 { // Reset to current=1, peak=1
		t.Error("Peak should not decrement until reset. Expect 2, not", peak)
	}
	if peak := cct.Peak(false); peak != 1 {
		t.Error("Peak should have been reset down to current. Expect 1, not", peak)
	}

	cct.Done()
	if cct.Current() != 0 {
		t.Error("Current should be back to zero, not", cct.Current())
	}
}

// Add only reports an increase when the peak is strictly exceeded
func TestAddStrictlyGreater(t *testing.T) {
	var cct Counter
	if !cct.Add() { // curr=1, peak=1
		t.Error("Expected first add to set new peak")
	}
	if !cct.Add() { // curr=2, peak=2
		t.Error("Expected second add to set new peak")
	}
	cct.Done()     // curr=1, peak=2
	if cct.Add() { // curr=2, peak=2
		t.Error("Equalling the peak should not count as an increase", cct.Peak(false))
	}
	if !cct.Add() { // curr=3, peak=3
		t.Error("Expected fourth add to set new peak")
	}
}

func TestPanic(t *testing.T) {
	gotPanic := false
	panicFunc(&gotPanic)
	if !gotPanic {
		t.Error("Expected a panic/recover sequence, but nadda")
	}
}

func panicFunc(gotPanic *bool) {
	var cct Counter
	cct.Add()
	cct.Done()
	defer func() {
		if x := recover(); x != nil {
			*gotPanic = true
		}
	}()
	cct.Done() // Should cause panic and set the gotPanic flag
}
