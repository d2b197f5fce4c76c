package interval

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func rec(method, start, end, duration string) []string {
	return []string{"2019-03-20T10:01:02,123", "[pool-6-thread-12]:", "</PERFLOG", method, start, end, duration}
}

func TestExtractGood(t *testing.T) {
	testCases := []struct {
		record []string
		want   Interval
	}{
		{rec("method=get_table", "start=100", "end=110", "duration=10"), Interval{"get_table", 100, 110, 10}},
		{rec(" method=create_table ", "start=0", "end=0", "duration=0"), Interval{"create_table", 0, 0, 0}},
		{rec("method=a=b", "start=-5", "end=5", "duration=10"), Interval{"a=b", -5, 5, 10}},
		{rec("method=x", "start=1547000000000", "end=1547000000123", "duration=123"),
			Interval{"x", 1547000000000, 1547000000123, 123}},
		{rec("method=backwards", "start=20", "end=10", "duration=-10"), Interval{"backwards", 20, 10, -10}},
	}

	for tx, tc := range testCases {
		got, err := Extract(tc.record)
		if err != nil {
			t.Error(tx, "Unexpected error", err)
			continue
		}
		if got != tc.want {
			t.Error(tx, "Expected", tc.want, "got", got)
		}
	}
}

func TestExtractBad(t *testing.T) {
	testCases := []struct {
		record []string
		field  int
		reason string
	}{
		{[]string{"a", "b", "c"}, -1, "expected 7 fields, got 3"},
		{append(rec("method=x", "start=1", "end=2", "duration=1"), "extra"), -1, "got 8"},
		{rec("methodx", "start=1", "end=2", "duration=1"), 3, "missing '='"},
		{rec("name=x", "start=1", "end=2", "duration=1"), 3, "expected label method"},
		{rec("method=", "start=1", "end=2", "duration=1"), 3, "empty value"},
		{rec("method=x", "begin=1", "end=2", "duration=1"), 4, "expected label start"},
		{rec("method=x", "start=one", "end=2", "duration=1"), 4, "not an integer"},
		{rec("method=x", "start=1", "end=2.5", "duration=1"), 5, "not an integer"},
		{rec("method=x", "start=1", "end=2", "duration=1>"), 6, "not an integer"},
		{rec("method=x", "start=1", "end=2", "elapsed=1"), 6, "expected label duration"},
	}

	for tx, tc := range testCases {
		_, err := Extract(tc.record)
		if err == nil {
			t.Error(tx, "Expected an error return for", tc.record)
			continue
		}
		var mre *MalformedRecordError
		if !errors.As(err, &mre) {
			t.Error(tx, "Expected a MalformedRecordError, not", err)
			continue
		}
		if mre.Field != tc.field {
			t.Error(tx, "Expected complaint about field", tc.field, "not", mre.Field, err)
		}
		if !strings.Contains(err.Error(), tc.reason) {
			t.Error(tx, "Expected error to contain", tc.reason, "got", err)
		}
	}
}

func TestExtractAll(t *testing.T) {
	ivs, err := ExtractAll([][]string{
		rec("method=a", "start=0", "end=10", "duration=10"),
		rec("method=b", "start=5", "end=15", "duration=10"),
	})
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	if len(ivs) != 2 || ivs[0].Method != "a" || ivs[1].Method != "b" {
		t.Error("ExtractAll lost order or content", ivs)
	}

	ivs, err = ExtractAll(nil)
	if err != nil || len(ivs) != 0 {
		t.Error("Empty batch should produce an empty result, not", ivs, err)
	}
}

// The first bad record aborts the batch and identifies itself
func TestExtractAllAborts(t *testing.T) {
	ivs, err := ExtractAll([][]string{
		rec("method=a", "start=0", "end=10", "duration=10"),
		rec("method=b", "start=5", "end=15", "duration=10"),
		rec("method=c", "start=X", "end=15", "duration=10"),
		rec("method=d", "start=Y", "end=15", "duration=10"),
	})
	if ivs != nil {
		t.Error("Expected no partial results, got", ivs)
	}
	var mre *MalformedRecordError
	if !errors.As(err, &mre) {
		t.Fatal("Expected MalformedRecordError, got", err)
	}
	if mre.Record != 3 {
		t.Error("Expected record 3 to be blamed, not", mre.Record)
	}
	if !strings.Contains(err.Error(), "malformed record 3: field 4") {
		t.Error("Error string does not identify record and field", err)
	}
}

func TestIntervalField(t *testing.T) {
	iv := New("get_table", 1, 2, 1)
	if iv.Field() != "method=get_table" {
		t.Error("Field() should restore the label, not", iv.Field())
	}
	if iv.ZeroLength() {
		t.Error("[1,2] is not zero length")
	}
	if !New("x", 3, 3, 0).ZeroLength() {
		t.Error("[3,3] is zero length")
	}
	if s := iv.String(); s != "get_table [1,2] 1" {
		t.Error("Unexpected String()", s)
	}
}
