// Package settings loads optional analysis settings from a YAML file. Settings given on the command
// line take precedence over those in the file. A typical file:
//
//	filter: true
//	exclude:
//	  - method=get
//	  - method=shutdown
//	  - method=flushCache
//	tie_break: ends-first
//	delimiter: ","
//	marker: "</PERFLOG"
package settings

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/markdingo/perfpeak/internal/concurrencytracker"
	"github.com/markdingo/perfpeak/internal/constants"
	"github.com/markdingo/perfpeak/internal/interval"
	"github.com/markdingo/perfpeak/internal/tabular"
)

// Analysis holds every setting which can come from a file
type Analysis struct {
	Filter    bool     `yaml:"filter"`
	Exclude   []string `yaml:"exclude"`
	TieBreak  string   `yaml:"tie_break"`
	Delimiter string   `yaml:"delimiter"`
	Marker    string   `yaml:"marker"`
}

// Default returns the settings used when no file is supplied
func Default() *Analysis {
	consts := constants.Get()
	return &Analysis{
		Exclude:   consts.DefaultExclusions,
		TieBreak:  consts.DefaultTieBreak,
		Delimiter: consts.TableDelimiter,
		Marker:    consts.PerfLogMarker,
	}
}

// Load reads path and overlays its settings on Default(). Settings absent from the file keep
// their default value. The result is validated.
func Load(path string) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	return cfg, nil
}

// Validate checks that the settings are usable
func (t *Analysis) Validate() error {
	for _, s := range t.Exclude {
		if len(s) == 0 {
			return errors.New("exclusion substrings cannot be empty as they would match every method")
		}
	}
	if _, err := concurrencytracker.ParseTieBreak(t.TieBreak); err != nil {
		return err
	}
	if _, err := tabular.ParseDelimiter(t.Delimiter); err != nil {
		return err
	}
	if len(t.Marker) == 0 {
		return errors.New("marker cannot be empty")
	}

	return nil
}

// Exclusions returns the exclusion set in the form the interval package wants
func (t *Analysis) Exclusions() interval.Exclusions {
	return append(interval.Exclusions{}, t.Exclude...)
}

// Tie returns the parsed tie-break policy. Only meaningful after a successful Validate().
func (t *Analysis) Tie() concurrencytracker.TieBreak {
	tb, _ := concurrencytracker.ParseTieBreak(t.TieBreak)
	return tb
}

// Delim returns the parsed delimiter. Only meaningful after a successful Validate().
func (t *Analysis) Delim() rune {
	r, _ := tabular.ParseDelimiter(t.Delimiter)
	return r
}
