/*
concurrencytracker reconstructs concurrency from a set of method Intervals. The main entry point
is Sweep() which computes the peak number of concurrently open intervals and which methods were
open at that peak. Typical usage:

	res, err := concurrencytracker.Sweep(intervals, concurrencytracker.EndsFirst)
	if err != nil {
		... the interval stream is corrupt
	}
	fmt.Println("Peak Concurrency", res.MaxConcurrency, res.Peak)

Sweep is built on Counter which keeps track of how many things are currently active and the peak
that value has ever reached. Counter is also usable in its own right:

	var ct concurrencytracker.Counter

	func ServeSomething() {
	   ct.Add()
	   defer ct.Done()
	   ... do some work
	}

and in some reporting function

	fmt.Println("Peak Concurrency", ct.Peak(true))
*/
package concurrencytracker

import (
	"sync"
)

type Counter struct {
	sync.Mutex
	current int // Count of pending Done() calls
	peak    int // Max 'current' has ever reached
}

// Add increments 'current' and if a new peak has been reached, the peak value is updated. Return
// true if the peak has increased as a result of this call.
func (t *Counter) Add() (increased bool) {
	t.Lock()
	defer t.Unlock()
	t.current++
	if t.current > t.peak {
		t.peak = t.current
		increased = true
	}

	return
}

// Done decrements 'current'. Done() must only be called after an Add() call, otherwise a panic
// ensues.
func (t *Counter) Done() {
	t.Lock()
	defer t.Unlock()
	if t.current == 0 {
		panic("concurrencytracker.Done() lacks matching .Add()") // Someone goofed
	}
	t.current--
}

// Current returns the number of Add() calls still waiting on a Done()
func (t *Counter) Current() int {
	t.Lock()
	defer t.Unlock()

	return t.current
}

// Peak returns the peak concurrency count and optionally resets the peak value to the current
// concurrency value. Note that the current counter is *not* reset by this call. The reset occurs
// *after* the return value is set so the impact of the reset is not visible until a subsequent
// call to Peak().
func (t *Counter) Peak(resetCounters bool) (peak int) {
	t.Lock()
	defer t.Unlock()
	peak = t.peak
	if resetCounters {
		t.peak = t.current
	}

	return
}
