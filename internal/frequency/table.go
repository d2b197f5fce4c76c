/*
Package frequency maintains a mapping from method name to an occurrence count. It serves two
purposes: tabulating how often each method appears across a whole log and, during the
concurrency sweep, tracking how many invocations of each method are currently open.

A Table never holds an entry with a zero count. This matters to callers which treat membership
as "currently active".

	tab := frequency.New("Methods")
	tab.Increment("get_table")
	if err := tab.Decrement("get_table"); err != nil {
		... the stream had an end without a begin
	}
	copy := tab.Snapshot()
*/
package frequency

import (
	"sort"
)

// Table is the method->count mapping. The zero value is not usable, call New().
type Table struct {
	name   string
	counts map[string]int
}

// Entry is one method and its count as returned by Sorted()
type Entry struct {
	Method string
	Count  int
}

// New constructs an empty Table. The name is only used for reporting.
func New(name string) *Table {
	return &Table{name: name, counts: make(map[string]int)}
}

// Increment adds one to the count for method, creating the entry if need be
func (t *Table) Increment(method string) {
	t.counts[method]++
}

// Decrement subtracts one from the count for method and removes the entry when it reaches
// zero. An *UnderflowError is returned if method has no entry, in which case the Table is
// unchanged.
func (t *Table) Decrement(method string) error {
	c, ok := t.counts[method]
	if !ok {
		return &UnderflowError{Method: method}
	}
	if c == 1 {
		delete(t.counts, method)
	} else {
		t.counts[method] = c - 1
	}

	return nil
}

// Count returns the current count for method, zero if absent
func (t *Table) Count(method string) int {
	return t.counts[method]
}

// Len returns the number of distinct methods present
func (t *Table) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts
func (t *Table) Total() (total int) {
	for _, c := range t.counts {
		total += c
	}

	return
}

// Snapshot returns a copy of the current contents. The copy is completely independent of the
// Table so subsequent Table changes are not visible in it and vice versa.
func (t *Table) Snapshot() map[string]int {
	m := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		m[k] = v
	}

	return m
}

// Sorted returns the entries ordered by descending count then ascending method name
func (t *Table) Sorted() []Entry {
	return SortedEntries(t.counts)
}

// SortedEntries applies the Sorted() ordering to an arbitrary snapshot
func SortedEntries(m map[string]int) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Method: k, Count: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Method < entries[j].Method
	})

	return entries
}
