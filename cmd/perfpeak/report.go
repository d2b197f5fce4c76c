package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/markdingo/perfpeak/internal/analysis"
	"github.com/markdingo/perfpeak/internal/frequency"
)

// tableReport prints the frequency and peak composition as boxed tables
func tableReport(out io.Writer, res *analysis.Result) {
	fmt.Fprintln(out, "Method frequency:", res.Intervals, "intervals")
	renderEntries(out, "Count", res.Frequency.Sorted())

	sw := res.Sweep
	fmt.Fprintf(out, "\nMaximum concurrency: %d", sw.MaxConcurrency)
	if sw.MaxConcurrency > 0 {
		fmt.Fprintf(out, " at %d", sw.PeakTime)
	}
	fmt.Fprintf(out, " (%d of %d intervals analyzed)\n", res.Analyzed, res.Intervals)
	if sw.MaxConcurrency > 0 {
		renderEntries(out, "Active", frequency.SortedEntries(sw.Peak))
	}
}

func renderEntries(out io.Writer, what string, entries []frequency.Entry) {
	tbl := tablewriter.NewWriter(out)
	tbl.SetHeader([]string{"Method", what})
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, e := range entries {
		tbl.Append([]string{e.Method, strconv.Itoa(e.Count)})
	}
	tbl.Render()
}

// textReport prints each reporter line-by-line prefixed with the reporter name. Easy to grep.
func textReport(out io.Writer, res *analysis.Result) {
	for _, r := range res.Reporters() {
		reps := strings.Split(r.Report(false), "\n")
		for _, s := range reps {
			if len(s) > 0 {
				fmt.Fprintf(out, "%s: %s\n", r.Name(), s)
			}
		}
	}
}
