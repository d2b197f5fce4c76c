/*
Package interval converts tabular PerfLogger records into typed method Intervals and optionally
filters out uninteresting methods prior to concurrency analysis.

A record is the 7-field tabular form produced by the perflog package (or read back via the
tabular package):

	[0] record marker   (ignored)
	[1] thread marker   (ignored)
	[2] ignored
	[3] method=<name>
	[4] start=<int>
	[5] end=<int>
	[6] duration=<int>

Typical usage:

	ivs, err := interval.ExtractAll(records)
	if err != nil {
		return err // Any malformed record invalidates the whole batch
	}
	ivs = interval.Filter(ivs, interval.DefaultExclusions())
*/
package interval

import (
	"fmt"

	"github.com/markdingo/perfpeak/internal/constants"
)

var consts = constants.Get()

// Interval is one observed method invocation. It is a value type and nothing in this package hands
// out a way to modify one once constructed.
type Interval struct {
	Method   string // Bare method name, without the "method=" label
	Start    int64
	End      int64 // Expected to be GE Start, but not enforced
	Duration int64 // Informational only
}

// New constructs an Interval. Mostly a convenience for tests and callers which already have typed
// values in hand.
func New(method string, start, end, duration int64) Interval {
	return Interval{Method: method, Start: start, End: end, Duration: duration}
}

// Field returns the method as it appears in the log, i.e. "method=<name>". This is the value
// exclusion substrings are matched against.
func (t Interval) Field() string {
	return consts.MethodLabel + "=" + t.Method
}

// ZeroLength is true if the interval begins and ends at the same instant
func (t Interval) ZeroLength() bool {
	return t.Start == t.End
}

func (t Interval) String() string {
	return fmt.Sprintf("%s [%d,%d] %d", t.Method, t.Start, t.End, t.Duration)
}
