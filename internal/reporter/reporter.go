/*
Package reporter defines a simple interface for analysis results to produce a printable report
about themselves.

The string returned by Report() should be one or more lines separated by newlines. The first line
is normally a summary and subsequent lines are details such as one method per line. The caller
will normally split multiple lines up and prefix them with Name(). Empty lines are ignored and the
final trailing newline should not be present.
*/
package reporter

// Reporter is the sole package interface
type Reporter interface {

	// Name returns the name of the reportable struct. This is normally used
	// as a prefix for reportable output.
	Name() string

	// Report returns one or more printable set of lines separated by
	// newlines. If 'resetCounters' is true, then any internal values used
	// to produce the report should be reset to zero *after* the report is
	// produced. Immutable results may ignore 'resetCounters'.
	Report(resetCounters bool) string
}
