package interval

import (
	"fmt"
)

// MalformedRecordError is returned when a tabular record does not have the expected 7-field
// shape or one of the labeled sub-fields cannot be parsed. Record is the 1-origin position of the
// record in its batch (or line number in a log) and is zero if unknown. Field is the zero-origin
// field index or -1 if the complaint is about the record as a whole.
type MalformedRecordError struct {
	Record int
	Field  int
	Value  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	s := "malformed record"
	if e.Record > 0 {
		s += fmt.Sprintf(" %d", e.Record)
	}
	if e.Field >= 0 {
		s += fmt.Sprintf(": field %d %q", e.Field, e.Value)
	}

	return s + ": " + e.Reason
}
