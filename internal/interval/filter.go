package interval

import (
	"strings"
)

// Exclusions is a set of case-sensitive substrings. An Interval is excluded if its Field()
// contains any one of them.
type Exclusions []string

// DefaultExclusions returns a fresh copy of the exclusion set applied when filtering is enabled
// and no other set has been configured.
func DefaultExclusions() Exclusions {
	return append(Exclusions{}, consts.DefaultExclusions...)
}

// Excludes returns true if the interval matches any of the exclusion substrings
func (ex Exclusions) Excludes(iv Interval) bool {
	field := iv.Field()
	for _, s := range ex {
		if strings.Contains(field, s) {
			return true
		}
	}

	return false
}

// Filter returns the subsequence of intervals not excluded by ex. Order is preserved and the
// input slice is never modified. An empty exclusion set returns a copy of the input.
func Filter(in []Interval, ex Exclusions) []Interval {
	out := make([]Interval, 0, len(in))
	for _, iv := range in {
		if !ex.Excludes(iv) {
			out = append(out, iv)
		}
	}

	return out
}
