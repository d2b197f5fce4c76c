package concurrencytracker

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/markdingo/perfpeak/internal/frequency"
	"github.com/markdingo/perfpeak/internal/interval"
)

// event is one edge of an interval
type event struct {
	time       int64
	begin      bool
	zeroLength bool
	method     string
}

// Result is the outcome of a Sweep
type Result struct {
	MaxConcurrency int
	Peak           map[string]int // Open intervals per method when MaxConcurrency was first reached
	PeakTime       int64          // Timestamp at which MaxConcurrency was first reached
	Events         int
	TieBreak       TieBreak
}

// Sweep computes the maximum number of intervals open at any one time along with the per-method
// composition at the moment that maximum was first reached. Events sharing a timestamp are ordered
// according to tb.
//
// The input slice is not modified. An empty input results in a zero MaxConcurrency and an empty
// Peak.
//
// An end event for a method with no open interval returns a wrapped *frequency.UnderflowError. This
// only occurs if an interval ends before it begins, i.e. the stream is corrupt, and there is no
// point continuing as all subsequent counts are meaningless.
func Sweep(in []interval.Interval, tb TieBreak) (Result, error) {
	events := make([]event, 0, len(in)*2)
	for _, iv := range in {
		zl := iv.ZeroLength()
		events = append(events,
			event{time: iv.Start, begin: true, zeroLength: zl, method: iv.Method},
			event{time: iv.End, begin: false, zeroLength: zl, method: iv.Method})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].time != events[j].time {
			return events[i].time < events[j].time
		}
		return tb.rank(events[i]) < tb.rank(events[j])
	})

	res := Result{Peak: make(map[string]int), Events: len(events), TieBreak: tb}
	active := frequency.New("Active")
	var cnt Counter
	for _, ev := range events {
		if ev.begin {
			active.Increment(ev.method)
			if cnt.Add() {
				res.Peak = active.Snapshot() // By value so later events can't alter it
				res.PeakTime = ev.time
			}
			continue
		}
		if err := active.Decrement(ev.method); err != nil {
			return Result{}, errors.Wrapf(err, "sweep at time %d", ev.time)
		}
		cnt.Done() // Cannot panic as active was non-empty
	}

	if cnt.Current() != 0 || active.Len() != 0 {
		return Result{}, errors.AssertionFailedf("sweep finished with %d open intervals (%d methods)",
			cnt.Current(), active.Len())
	}
	res.MaxConcurrency = cnt.Peak(false)

	return res, nil
}
