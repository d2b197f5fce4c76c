package main

import (
	"fmt"
	"io"
	"text/template"
)

// The "flag" package is not tty aware so we've arbitrarily picked 100 columns as a conservative tty
// width for the usage output.

const usageMessageTemplate = `
NAME
          {{.ProgramName}} -- report peak concurrency of PerfLogger instrumented methods

SYNOPSIS
          {{.ProgramName}} [options] logfile
          {{.ProgramName}} [options] --from-table file

DESCRIPTION
          {{.ProgramName}} scans an application log for completed PerfLogger entries, which look
          like "{{.PerfLogMarker}} method=name start=ms end=ms duration=ms", and reconstructs how many
          method invocations were in flight at the same time. It reports how often each method was
          seen, the maximum concurrency reached and which methods were active at that peak.

          Entries are first converted to a {{.RecordFields}} field table which can be saved with --table
          and analyzed later with --from-table, possibly with different filter settings.

          When two invocations merely touch - one ends at the same millisecond another begins -
          whether they count as concurrent depends on the tie-break policy:

              ends-first    ends are processed before begins so touching invocations do not
                            overlap (the default)
              begins-first  begins are processed before ends so touching invocations overlap
              stable        ties are resolved by log order

          With -f invocations of methods matching any exclusion substring are removed prior to
          the concurrency analysis, but are still included in the frequency report. Exclusions
          are matched against the "method=name" field. The default exclusions are:
          {{range .DefaultExclusions}} {{.}}{{end}}

          Settings may also be supplied in a YAML file with -c. Options on the command line
          override the file:

              filter: true
              exclude: [method=get, method=shutdown]
              tie_break: ends-first
              delimiter: ","
              marker: "{{.PerfLogMarker}}"

EXAMPLES
            $ {{.ProgramName}} -f hivemetastore.log
            $ {{.ProgramName}} --table hms.csv --format text hivemetastore.log
            $ {{.ProgramName}} --from-table hms.csv --exclude method=get_ --tie begins-first

OPTIONS
          [-fhv] [-c config file] [--format table|text]

          [--exclude substring...] [--tie ends-first|begins-first|stable]

          [--table file] [--from-table file] [--delimiter char] [--marker token]

          [--gops] [--cpu-profile file] [--mem-profile file]
          [--version]
`

//////////////////////////////////////////////////////////////////////

func usage(out io.Writer) {
	tmpl, err := template.New("usage").Parse(usageMessageTemplate)
	if err != nil {
		panic(err) // We've messed up our template
	}
	err = tmpl.Execute(out, consts)
	if err != nil {
		panic(err) // We've messed up our template
	}
	flagSet.SetOutput(out)
	flagSet.PrintDefaults()
	fmt.Fprintln(out, "\nVersion:", consts.Version)
}

// parseCommandLine sets up the flags-to-config mapping and parses the supplied command line
// arguments. It starts from scratch each time to make it eaiser for test wrappers to use.
func parseCommandLine(args []string) error {
	flagSet.StringVar(&cfg.configFile, "c", "", "YAML configuration `file`")
	flagSet.BoolVar(&cfg.filter, "f", false, "Filter out excluded methods prior to concurrency analysis")
	flagSet.BoolVar(&cfg.help, "h", false, "Print usage message to Stdout then exit(0)")
	flagSet.BoolVar(&cfg.verbose, "v", false, "Verbose progress to Stdout")

	flagSet.Var(&cfg.exclude, "exclude", "Method exclusion `substring` - replaces the defaults and implies -f")
	flagSet.StringVar(&cfg.tieBreak, "tie", consts.DefaultTieBreak, "Equal timestamp tie-break `policy`")
	flagSet.StringVar(&cfg.format, "format", "table", "Report `format`: table or text")

	flagSet.StringVar(&cfg.tableOut, "table", "", "Write extracted records to `file`")
	flagSet.StringVar(&cfg.tableIn, "from-table", "", "Analyze records from `file` instead of a log")
	flagSet.StringVar(&cfg.delimiter, "delimiter", consts.TableDelimiter, "Table field delimiter `character`")
	flagSet.StringVar(&cfg.marker, "marker", consts.PerfLogMarker, "Completed entry marker `token`")

	// gops and go pprof settings
	flagSet.BoolVar(&cfg.gops, "gops", false, "Start github.com/google/gops agent")
	flagSet.StringVar(&cfg.cpuprofile, "cpu-profile", "", "write cpu profile to `file`")
	flagSet.StringVar(&cfg.memprofile, "mem-profile", "", "write mem profile to `file`")

	flagSet.BoolVar(&cfg.version, "version", false, "Print version and exit")

	return flagSet.Parse(args[1:])
}
