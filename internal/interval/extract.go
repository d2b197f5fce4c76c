package interval

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	methodField = iota + 3 // Positions of the labeled sub-fields in a record
	startField
	endField
	durationField
)

// Extract converts one tabular record into an Interval. Any deviation from the expected shape
// results in a *MalformedRecordError. Extract has no side-effects.
func Extract(record []string) (Interval, error) {
	if len(record) != consts.RecordFields {
		return Interval{}, &MalformedRecordError{Field: -1,
			Reason: "expected " + strconv.Itoa(consts.RecordFields) + " fields, got " + strconv.Itoa(len(record))}
	}

	var iv Interval
	var err error
	iv.Method, err = labeledValue(record, methodField, consts.MethodLabel)
	if err != nil {
		return Interval{}, err
	}
	if iv.Start, err = labeledInt(record, startField, consts.StartLabel); err != nil {
		return Interval{}, err
	}
	if iv.End, err = labeledInt(record, endField, consts.EndLabel); err != nil {
		return Interval{}, err
	}
	if iv.Duration, err = labeledInt(record, durationField, consts.DurationLabel); err != nil {
		return Interval{}, err
	}

	return iv, nil
}

// ExtractAll converts a batch of records. The first malformed record aborts the whole batch and
// no partial results are returned since a single bad record undermines the sweep anyway.
func ExtractAll(records [][]string) ([]Interval, error) {
	ivs := make([]Interval, 0, len(records))
	for ix, rec := range records {
		iv, err := Extract(rec)
		if err != nil {
			var mre *MalformedRecordError
			if errors.As(err, &mre) {
				mre.Record = ix + 1
			}
			return nil, err
		}
		ivs = append(ivs, iv)
	}

	return ivs, nil
}

// labeledValue returns the value of a "label=value" field after checking the label
func labeledValue(record []string, ix int, label string) (string, error) {
	field := strings.TrimSpace(record[ix])
	key, value, found := strings.Cut(field, "=")
	if !found {
		return "", &MalformedRecordError{Field: ix, Value: field, Reason: "missing '='"}
	}
	if key != label {
		return "", &MalformedRecordError{Field: ix, Value: field, Reason: "expected label " + label}
	}
	if len(value) == 0 {
		return "", &MalformedRecordError{Field: ix, Value: field, Reason: "empty value"}
	}

	return value, nil
}

func labeledInt(record []string, ix int, label string) (int64, error) {
	value, err := labeledValue(record, ix, label)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &MalformedRecordError{Field: ix, Value: record[ix], Reason: "not an integer"}
	}

	return i, nil
}
