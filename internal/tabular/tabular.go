/*
Package tabular persists the 7-field records produced by the perflog package as a delimited text
file, one record per line without a header, and reads them back. Fields are quoted as needed so a
delimiter embedded in a field, such as the comma in "10:01:02,123", survives the round trip.
*/
package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/markdingo/perfpeak/internal/constants"
	"github.com/markdingo/perfpeak/internal/interval"
)

var consts = constants.Get()

// ParseDelimiter converts a one character string into a delimiter rune. An empty string selects
// the default.
func ParseDelimiter(s string) (rune, error) {
	if len(s) == 0 {
		s = consts.TableDelimiter
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, errors.Newf("invalid table delimiter %q: must be a single character other than quote or newline", s)
	}

	return r, nil
}

// Writer writes records
type Writer struct {
	w       *csv.Writer
	written int
}

// NewWriter constructs a Writer using delim between fields
func NewWriter(w io.Writer, delim rune) *Writer {
	t := &Writer{w: csv.NewWriter(w)}
	t.w.Comma = delim

	return t
}

// Write writes one record. Records of the wrong shape are refused.
func (t *Writer) Write(record []string) error {
	if len(record) != consts.RecordFields {
		return &interval.MalformedRecordError{Record: t.written + 1, Field: -1,
			Reason: "refusing to write a record of the wrong shape"}
	}
	if err := t.w.Write(record); err != nil {
		return errors.Wrapf(err, "write record %d", t.written+1)
	}
	t.written++

	return nil
}

// WriteAll writes all records then flushes
func (t *Writer) WriteAll(records [][]string) error {
	for _, rec := range records {
		if err := t.Write(rec); err != nil {
			return err
		}
	}

	return t.Flush()
}

// Flush makes sure all buffered records reach the underlying io.Writer
func (t *Writer) Flush() error {
	t.w.Flush()

	return errors.Wrap(t.w.Error(), "flush")
}

// Written returns the number of records successfully passed to Write
func (t *Writer) Written() int {
	return t.written
}

// Reader reads records
type Reader struct {
	r *csv.Reader
}

// NewReader constructs a Reader expecting delim between fields
func NewReader(r io.Reader, delim rune) *Reader {
	t := &Reader{r: csv.NewReader(r)}
	t.r.Comma = delim
	t.r.FieldsPerRecord = consts.RecordFields

	return t
}

// ReadAll returns every record. Any record with the wrong number of fields or broken quoting is
// reported as an *interval.MalformedRecordError and no records are returned.
func (t *Reader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		rec, err := t.r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &interval.MalformedRecordError{Record: pe.StartLine, Field: -1, Reason: pe.Err.Error()}
			}
			return nil, errors.Wrap(err, "read table")
		}
		records = append(records, rec)
	}
}

// WriteFile creates (or truncates) path and writes records to it
func WriteFile(path string, delim rune, records [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create table")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close table")
		}
	}()

	return NewWriter(f, delim).WriteAll(records)
}

// ReadFile reads all records from path
func ReadFile(path string, delim rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open table")
	}
	defer f.Close()

	return NewReader(f, delim).ReadAll()
}
