// Package analysis runs the whole peak-concurrency pipeline over a batch of tabular records:
// extraction, overall frequency tabulation, optional filtering and the concurrency sweep.
package analysis

import (
	"github.com/cockroachdb/errors"

	"github.com/markdingo/perfpeak/internal/concurrencytracker"
	"github.com/markdingo/perfpeak/internal/frequency"
	"github.com/markdingo/perfpeak/internal/interval"
	"github.com/markdingo/perfpeak/internal/reporter"
)

// Options controls a Run. Filtering is a flag rather than a separate code path: with Filter
// false the Exclusions are ignored and every interval reaches the sweep.
type Options struct {
	Filter     bool
	Exclusions interval.Exclusions
	TieBreak   concurrencytracker.TieBreak
}

// Result is everything a reporter needs to know about a Run
type Result struct {
	Frequency *frequency.Table // Over all intervals, prior to filtering
	Intervals int              // Number extracted
	Analyzed  int              // Number which reached the sweep
	Sweep     concurrencytracker.Result
}

// Run extracts intervals from records and analyzes them. Any error aborts the whole Run; there
// are no partial results.
func Run(records [][]string, opts Options) (*Result, error) {
	ivs, err := interval.ExtractAll(records)
	if err != nil {
		return nil, errors.Wrap(err, "extract")
	}

	return RunIntervals(ivs, opts)
}

// RunIntervals is Run for callers which already have intervals in hand
func RunIntervals(ivs []interval.Interval, opts Options) (*Result, error) {
	res := &Result{Frequency: frequency.New("Frequency"), Intervals: len(ivs)}
	for _, iv := range ivs {
		res.Frequency.Increment(iv.Method)
	}

	if opts.Filter {
		ivs = interval.Filter(ivs, opts.Exclusions)
	}
	res.Analyzed = len(ivs)

	var err error
	res.Sweep, err = concurrencytracker.Sweep(ivs, opts.TieBreak)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Reporters returns the reportable components of the Result in presentation order
func (t *Result) Reporters() []reporter.Reporter {
	return []reporter.Reporter{t.Frequency, t.Sweep}
}
