package tabular

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/markdingo/perfpeak/internal/interval"
)

var records = [][]string{
	{"2019-03-20T10:01:02,123", "[pool-6-thread-12]:", "</PERFLOG", "method=get_table",
		"start=1553076062120", "end=1553076062123", "duration=3"},
	{"2019-03-20T10:01:02,200", "[pool-6-thread-3]:", "</PERFLOG", "method=alter_table",
		"start=1553076062150", "end=1553076062200", "duration=50"},
}

func TestParseDelimiter(t *testing.T) {
	testCases := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"", ',', true},
		{",", ',', true},
		{"\t", '\t', true},
		{"|", '|', true},
		{"ab", 0, false},
		{"\"", 0, false},
		{"\n", 0, false},
	}
	for tx, tc := range testCases {
		got, err := ParseDelimiter(tc.in)
		if (err == nil) != tc.ok {
			t.Error(tx, "Unexpected error state for", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Error(tx, "Expected", tc.want, "got", got)
		}
	}
}

// An embedded delimiter has to be quoted on the way out and unquoted on the way in
func TestEmbeddedDelimiter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, ',')
	if err := w.WriteAll(records); err != nil {
		t.Fatal(err)
	}
	if w.Written() != 2 {
		t.Error("Expected 2 records written, not", w.Written())
	}
	if !strings.HasPrefix(buf.String(), `"2019-03-20T10:01:02,123",[pool-6-thread-12]:,`) {
		t.Error("Timestamp with embedded comma not quoted", buf.String())
	}
	got, err := NewReader(&buf, ',').ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Error("Round trip mismatch", got)
	}
}

func TestWrongShape(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter(&buf, ',').Write([]string{"a", "b"})
	var mre *interval.MalformedRecordError
	if !errors.As(err, &mre) {
		t.Error("Expected refusal to write a short record, got", err)
	}

	in := strings.Join(records[0], "|") + "\n" + "a|b|c\n"
	got, err := NewReader(strings.NewReader(in), '|').ReadAll()
	if got != nil {
		t.Error("Expected no partial result", got)
	}
	if !errors.As(err, &mre) {
		t.Fatal("Expected MalformedRecordError, got", err)
	}
	if mre.Record != 2 {
		t.Error("Expected line 2 to be blamed, not", mre.Record)
	}
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perf.tsv")
	if err := WriteFile(path, '\t', records); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, '\t')
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Error("File round trip mismatch", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope"), ','); err == nil {
		t.Error("Expected error reading a non-existent file")
	}
	if err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir"), ',', records); err == nil {
		t.Error("Expected error creating a file in a non-existent directory")
	}
}
