package frequency

import (
	"fmt"
	"strings"
)

// Name implements the reporter interface
func (t *Table) Name() string {
	return t.name
}

// Report implements the reporter interface. One line per method in Sorted() order. The first
// line is a summary. resetCounters empties the table after the report is produced.
func (t *Table) Report(resetCounters bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "methods=%d total=%d", t.Len(), t.Total())
	for _, e := range t.Sorted() {
		fmt.Fprintf(&sb, "\n%s=%d", e.Method, e.Count)
	}
	if resetCounters {
		t.counts = make(map[string]int)
	}

	return sb.String()
}
