// Report the peak concurrency of PerfLogger instrumented methods found in an application log
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/google/gops/agent"

	"github.com/markdingo/perfpeak/internal/analysis"
	"github.com/markdingo/perfpeak/internal/settings"
	"github.com/markdingo/perfpeak/internal/constants"
	"github.com/markdingo/perfpeak/internal/perflog"
	"github.com/markdingo/perfpeak/internal/tabular"
)

// Program-wide variables
var (
	consts = constants.Get()
	cfg    *config

	stdout io.Writer // All I/O goes via these writers
	stderr io.Writer

	flagSet *flag.FlagSet
)

//////////////////////////////////////////////////////////////////////

func fatal(args ...interface{}) int {
	fmt.Fprint(stderr, "Fatal: ", consts.ProgramName, ": ")
	fmt.Fprintln(stderr, args...)

	return 1
}

//////////////////////////////////////////////////////////////////////
// main is a wrapper for mainExecute() so tests can call mainExecute()
//////////////////////////////////////////////////////////////////////

func mainInit(out io.Writer, err io.Writer) {
	cfg = &config{}
	stdout = out
	stderr = err
}

func main() {
	mainInit(os.Stdout, os.Stderr)
	os.Exit(mainExecute(os.Args))
}

func mainExecute(args []string) int {
	flagSet = flag.NewFlagSet(args[0], flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	err := parseCommandLine(args)
	if err != nil {
		return 1 // Error already printed by the flag package
	}
	if cfg.help {
		usage(stdout)
		return 0
	}
	if cfg.version {
		fmt.Fprintln(stdout, consts.ProgramName, "Version:", consts.Version)
		return 0
	}

	if cfg.format != "table" && cfg.format != "text" {
		return fatal("--format must be 'table' or 'text', not", cfg.format)
	}

	// Exactly one source of records: a log file on the command line or a previously written table

	var logFile string
	switch {
	case len(cfg.tableIn) > 0 && flagSet.NArg() > 0:
		return fatal("Cannot have both --from-table and a log file:", strings.Join(flagSet.Args(), " "))
	case len(cfg.tableIn) > 0:
	case flagSet.NArg() == 0:
		return fatal("Require a log file on the command line. Consider -h")
	case flagSet.NArg() > 1:
		return fatal("Don't know what to do with residual goop on command line:", flagSet.Arg(1))
	default:
		logFile = flagSet.Arg(0)
	}

	conf, err := loadSettings()
	if err != nil {
		return fatal(err)
	}

	if cfg.gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fatal("gops:", err)
		}
		defer agent.Close()
	}

	if len(cfg.cpuprofile) > 0 {
		f, err := os.Create(cfg.cpuprofile)
		if err != nil {
			return fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if cfg.verbose {
		fmt.Fprintln(stdout, consts.ProgramName, consts.Version, "Starting")
	}

	// Acquire records

	var records [][]string
	if len(logFile) > 0 {
		records, err = readLog(logFile, conf.Marker)
	} else {
		records, err = tabular.ReadFile(cfg.tableIn, conf.Delim())
		if err == nil && cfg.verbose {
			fmt.Fprintf(stdout, "Table: %d records from %s\n", len(records), cfg.tableIn)
		}
	}
	if err != nil {
		return fatal(err)
	}

	if len(cfg.tableOut) > 0 {
		if err := tabular.WriteFile(cfg.tableOut, conf.Delim(), records); err != nil {
			return fatal(err)
		}
		if cfg.verbose {
			fmt.Fprintf(stdout, "Table: %d records to %s\n", len(records), cfg.tableOut)
		}
	}

	// Analyze and report

	opts := analysis.Options{Filter: conf.Filter, Exclusions: conf.Exclusions(), TieBreak: conf.Tie()}
	res, err := analysis.Run(records, opts)
	if err != nil {
		return fatal(err)
	}
	if cfg.verbose {
		if opts.Filter {
			fmt.Fprintf(stdout, "Filter: %d of %d intervals excluded by %s\n",
				res.Intervals-res.Analyzed, res.Intervals, strings.Join(opts.Exclusions, " "))
		}
		fmt.Fprintln(stdout, "Tie-break:", opts.TieBreak)
	}

	if cfg.format == "text" {
		textReport(stdout, res)
	} else {
		tableReport(stdout, res)
	}

	// Memory profile is written at the end of the program

	if len(cfg.memprofile) > 0 {
		f, err := os.Create(cfg.memprofile)
		if err != nil {
			return fatal(err)
		}
		defer f.Close()
		runtime.GC() // get up-to-date statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fatal(err)
		}
	}

	return 0
}

// loadSettings starts with the defaults or the config file if one is named, then applies any
// settings explicitly present on the command line. We can't just look at the cfg values as they
// could easily be flag defaults which should not override the file.
func loadSettings() (*settings.Analysis, error) {
	conf := settings.Default()
	if len(cfg.configFile) > 0 {
		var err error
		conf, err = settings.Load(cfg.configFile)
		if err != nil {
			return nil, err
		}
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			conf.Filter = cfg.filter
		case "exclude":
			conf.Exclude = cfg.exclude.Args()
			conf.Filter = true // Naming exclusions without wanting them applied makes no sense
		case "tie":
			conf.TieBreak = cfg.tieBreak
		case "delimiter":
			conf.Delimiter = cfg.delimiter
		case "marker":
			conf.Marker = cfg.marker
		}
	})

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func readLog(path string, marker string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := perflog.New(f, marker)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if cfg.verbose {
		fmt.Fprintf(stdout, "Log: %d lines, %d entries from %s\n", r.Lines(), r.Matched(), path)
	}

	return records, nil
}
