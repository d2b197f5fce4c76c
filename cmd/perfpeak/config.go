package main

import (
	"github.com/markdingo/perfpeak/internal/flagutil"
)

type config struct {
	filter  bool
	gops    bool
	help    bool
	verbose bool
	version bool

	configFile string // YAML settings, overridden by any of the following which are set

	exclude   flagutil.StringValue // Replaces configured exclusions if present
	tieBreak  string
	delimiter string
	marker    string

	tableOut string // Write extracted records here
	tableIn  string // Analyze these records instead of a log
	format   string

	cpuprofile, memprofile string
}
