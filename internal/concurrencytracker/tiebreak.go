package concurrencytracker

import (
	"github.com/cockroachdb/errors"
)

// TieBreak determines the order in which begin and end events sharing a timestamp are processed.
// The choice matters: two intervals which merely touch, say [0,10] and [10,20], are concurrent
// if the begin at 10 is processed before the end at 10 and are not otherwise.
type TieBreak int

const (
	// EndsFirst treats intervals as half-open, [start,end). At any given time all ends are
	// processed before any begins, with the exception of zero-length intervals whose ends are
	// processed after all begins at that time so an interval never ends before it begins.
	EndsFirst TieBreak = iota

	// BeginsFirst treats intervals as closed, [start,end]. All begins at a given time are
	// processed before any ends.
	BeginsFirst

	// Stable orders by time alone so ties resolve by input order, each interval contributing its
	// begin then its end. This reproduces what a plain stable sort on time would do and is
	// sensitive to the order of the input.
	Stable
)

var tieBreakNames = []string{"ends-first", "begins-first", "stable"}

func (tb TieBreak) String() string {
	if tb < 0 || int(tb) >= len(tieBreakNames) {
		return "unknown"
	}

	return tieBreakNames[tb]
}

// ParseTieBreak converts the String() form of a TieBreak back into a TieBreak
func ParseTieBreak(s string) (TieBreak, error) {
	for ix, n := range tieBreakNames {
		if n == s {
			return TieBreak(ix), nil
		}
	}

	return EndsFirst, errors.Newf("unknown tie-break policy %q (want one of %v)", s, tieBreakNames)
}

// rank returns the secondary sort key of an event. Lower ranks are processed first among events
// with the same timestamp.
func (tb TieBreak) rank(ev event) int {
	switch tb {
	case EndsFirst:
		switch {
		case ev.begin:
			return 1
		case ev.zeroLength:
			return 2
		}
		return 0

	case BeginsFirst:
		if ev.begin {
			return 0
		}
		return 1
	}

	return 0 // Stable
}
