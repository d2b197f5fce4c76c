/*
Package perflog locates completed PerfLogger entries in an application log and converts each into
the 7-field tabular record consumed by the interval package. A completed entry looks something
like:

	2019-03-20T10:01:02,123 DEBUG [pool-6-thread-12]: metastore.PerfLogger (PerfLogger.java:endFunction(177)) - </PERFLOG method=get_table start=1553076062120 end=1553076062123 duration=3 from=org.apache.hadoop.hive.metastore.RetryingHMSHandler>

which is converted to:

	[0] 2019-03-20T10:01:02,123
	[1] [pool-6-thread-12]:
	[2] </PERFLOG
	[3] method=get_table
	[4] start=1553076062120
	[5] end=1553076062123
	[6] duration=3

Lines not containing the marker followed by " method=" are silently skipped. A matching line
without enough sub-fields is malformed and stops the Reader.
*/
package perflog

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/markdingo/perfpeak/internal/constants"
	"github.com/markdingo/perfpeak/internal/interval"
)

const (
	subFields     = 4       // method, start, end, duration
	maxLineLength = 1 << 20 // Some loggers emit giant stack traces on one line
)

var consts = constants.Get()

// Reader extracts records from a log
type Reader struct {
	scanner *bufio.Scanner
	marker  string
	match   string // marker + " method="
	lines   int
	matched int
}

// New constructs a Reader. An empty marker selects the default PerfLogger end marker.
func New(r io.Reader, marker string) *Reader {
	if len(marker) == 0 {
		marker = consts.PerfLogMarker
	}
	t := &Reader{scanner: bufio.NewScanner(r), marker: marker}
	t.match = marker + " " + consts.MethodLabel + "="
	t.scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	return t
}

// Next returns the next record or io.EOF when the log is exhausted. Read errors are returned
// wrapped, a malformed entry returns an *interval.MalformedRecordError carrying the line number.
func (t *Reader) Next() ([]string, error) {
	for t.scanner.Scan() {
		t.lines++
		line := t.scanner.Text()
		if !strings.Contains(line, t.match) {
			continue
		}
		t.matched++
		rec, err := t.toRecord(strings.Fields(line))
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
	if err := t.scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading log after line %d", t.lines)
	}

	return nil, io.EOF
}

// ReadAll returns all remaining records. No partial result is returned on error.
func (t *Reader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		rec, err := t.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// Lines returns the number of lines read so far
func (t *Reader) Lines() int {
	return t.lines
}

// Matched returns the number of lines which contained the marker
func (t *Reader) Matched() int {
	return t.matched
}

func (t *Reader) toRecord(tokens []string) ([]string, error) {
	mx := -1
	for ix, tok := range tokens {
		if tok == t.marker && ix+1 < len(tokens) && strings.HasPrefix(tokens[ix+1], consts.MethodLabel+"=") {
			mx = ix
			break
		}
	}
	if mx < 0 || mx+subFields >= len(tokens) {
		return nil, &interval.MalformedRecordError{Record: t.lines, Field: -1,
			Reason: "too few sub-fields after " + t.marker}
	}

	thread := ""
	if len(tokens) > 1 {
		thread = tokens[1]
	}
	for _, tok := range tokens[:mx] {
		if strings.HasPrefix(tok, "[") {
			thread = tok
			break
		}
	}

	rec := make([]string, 0, consts.RecordFields)
	rec = append(rec, tokens[0], thread, tokens[mx])
	for _, tok := range tokens[mx+1 : mx+1+subFields] {
		rec = append(rec, strings.TrimSuffix(tok, ">"))
	}

	return rec, nil
}
