package flagutil

import (
	"flag"
	"io"
	"testing"
)

func TestStringValue(t *testing.T) {
	var ms StringValue
	if l := ms.NArg(); l != 0 {
		t.Error("Expected length=0 at initial state, not", l)
	}
	if s := ms.String(); s != "" {
		t.Error("String() at initial state should be empty, not", s)
	}

	if err := ms.Set("method=get"); err != nil {
		t.Error("Unexpected an error return from Set", err)
	}
	if l := ms.NArg(); l != 1 {
		t.Error("Expected length=1 after one set, not", l)
	}
	ms.Set("method=shutdown")

	if s := ms.String(); s != "method=get method=shutdown" {
		t.Error("String should be 'method=get method=shutdown', not", s)
	}

	ss := ms.Args()
	ss[0] = "method=alter"
	ss = ms.Args()
	if len(ss) != 2 || ss[0] != "method=get" || ss[1] != "method=shutdown" {
		t.Error("Args() should not expose internal storage", ss)
	}
}

// Repeated occurrences on a command line accumulate in order
func TestStringValueFlagSet(t *testing.T) {
	var ms StringValue
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&ms, "exclude", "exclusion")
	if err := fs.Parse([]string{"--exclude", "a", "--exclude=b", "-exclude", "c", "file"}); err != nil {
		t.Fatal(err)
	}
	ss := ms.Args()
	if len(ss) != 3 || ss[0] != "a" || ss[1] != "b" || ss[2] != "c" {
		t.Error("Expected [a b c], not", ss)
	}
	if fs.NArg() != 1 {
		t.Error("Expected one residual argument, not", fs.Args())
	}
}
