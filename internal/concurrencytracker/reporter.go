package concurrencytracker

import (
	"fmt"
	"strings"

	"github.com/markdingo/perfpeak/internal/frequency"
)

// Name implements the reporter interface
func (t Result) Name() string {
	return "Concurrency"
}

// Report implements the reporter interface. The first line summarizes the sweep and each
// subsequent line is one method active at the peak. A Result is immutable so resetCounters has no
// effect.
func (t Result) Report(resetCounters bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "max=%d at=%d events=%d tie=%s", t.MaxConcurrency, t.PeakTime, t.Events, t.TieBreak)
	for _, e := range frequency.SortedEntries(t.Peak) {
		fmt.Fprintf(&sb, "\n%s=%d", e.Method, e.Count)
	}

	return sb.String()
}
