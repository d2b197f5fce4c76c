/*
Package constants provides common values used across all perfpeak packages. Usage is to call the
global Get() function which returns the Constants by value ensuring that any modifications made
(accidental or otherwise) will not affect other modules when they call Get().

Typically usage:

    consts := constants.Get()
    fmt.Println("I am", consts.ProgramName, "looking for", consts.PerfLogMarker)

The primary reason for making this a constructed struct rather than the more typical const () block
is so that it can be fed directly into templating packages for printing usage messages.
*/
package constants

// Constants contains the system-wide constants
type Constants struct {
	ProgramName string // Package related constants
	Version     string
	PackageName string
	PackageURL  string

	PerfLogMarker string // Token which introduces a completed PerfLogger entry
	MethodLabel   string // Labels of the key=value sub-fields following the marker
	StartLabel    string
	EndLabel      string
	DurationLabel string

	RecordFields   int    // Number of fields in a tabular record
	TableDelimiter string // Default delimiter for the tabular representation

	DefaultExclusions []string // Applied when filtering is enabled and nothing else is configured
	DefaultTieBreak   string
}

var readOnlyConstants *Constants

// createReadOnlyConstants creates a read-only copy of the Constants which is copied whenever a
// caller asks for the constants set. The main reason for returning a struct is so that callers can
// inspect and/or use packages that introspect - particularly */template packages.
func createReadOnlyConstants() {
	readOnlyConstants = &Constants{
		ProgramName: "perfpeak",
		Version:     "v0.1.0",
		PackageName: "PerfLogger Peak Concurrency Analyzer",
		PackageURL:  "https://github.com/markdingo/perfpeak",

		PerfLogMarker: "</PERFLOG",
		MethodLabel:   "method",
		StartLabel:    "start",
		EndLabel:      "end",
		DurationLabel: "duration",

		RecordFields:   7,
		TableDelimiter: ",",

		DefaultExclusions: []string{"method=get", "method=shutdown"},
		DefaultTieBreak:   "ends-first",
	}
}

func init() {
	createReadOnlyConstants()
}

// Get returns a copy of the Constant struct. Return by value so internal values cannot be
// inadvertently changed by callers. The one slice is copied too for the same reason.
func Get() Constants {
	c := *readOnlyConstants
	c.DefaultExclusions = append([]string{}, readOnlyConstants.DefaultExclusions...)

	return c
}
