// Package config provides configuration management and validation for layoutsyn.
// It centralizes all command-line options and runtime settings, providing
// validation logic to catch configuration errors before the dictionary is read.
package config

import (
	"fmt"
	"path"
	"path/filepath"
	"runtime"

	"layoutsyn/internal/errors"
	"layoutsyn/internal/layout"
)

// LogFormat represents the supported output formats for run reports.
type LogFormat string

// Supported log format constants. A report written with --log uses one of
// these; without --log the report is a human-readable summary.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatCSV  LogFormat = "csv"
)

const (
	// DefaultMinLength is the shortest word considered when --min-length is not given.
	DefaultMinLength = 2
	// MaxWorkers caps the automatically sized worker pool.
	MaxWorkers = 8
)

// Config holds all runtime configuration options for a synonym search.
type Config struct {
	From          string
	To            string
	Dictionary    string
	MinLength     int
	Include       []string
	Exclude       []string
	Workers       int
	Sort          bool
	Distinct      bool
	CaseSensitive bool
	ReportInvalid bool
	Verbose       bool
	Debug         bool
	Quiet         bool
	LogFile       string
	LogFormat     LogFormat
	ConfigFile    string
}

// Default returns a Config populated with the flag defaults.
func Default() *Config {
	return &Config{
		MinLength: DefaultMinLength,
		Sort:      true,
	}
}

// Validate performs full validation of a synonym search configuration.
// It rejects the configuration before any file is opened, and normalizes
// the remaining settings once every check has passed.
func (c *Config) Validate() error {
	if err := c.ValidateLayouts(); err != nil {
		return err
	}

	if err := c.validateDictionary(); err != nil {
		return err
	}

	if err := c.validateMinLength(); err != nil {
		return err
	}

	if err := c.validatePatterns(); err != nil {
		return err
	}

	if err := c.validateWorkers(); err != nil {
		return err
	}

	if err := c.validateLogFormat(); err != nil {
		return err
	}

	c.normalizeConfig()
	return nil
}

// ValidateLayouts checks that both layouts are set and known. It is the only
// validation the translate command needs.
func (c *Config) ValidateLayouts() error {
	if c.From == "" {
		return errors.NewConfigError("source layout is required (use -f/--from)", nil)
	}
	if c.To == "" {
		return errors.NewConfigError("target layout is required (use -t/--to)", nil)
	}

	for _, name := range []string{c.From, c.To} {
		if !layout.Has(name) {
			return errors.NewConfigError(fmt.Sprintf("unknown layout %q, must be one of %v", name, layout.Names()), nil)
		}
	}
	return nil
}

func (c *Config) validateDictionary() error {
	if c.Dictionary == "" {
		return errors.NewConfigError("dictionary is required (use -d/--dictionary)", nil)
	}

	absDictionary, err := filepath.Abs(c.Dictionary)
	if err != nil {
		return errors.NewConfigErrorWithPath(c.Dictionary, "invalid dictionary path", err)
	}
	c.Dictionary = absDictionary
	return nil
}

func (c *Config) validateMinLength() error {
	if c.MinLength < 0 {
		return errors.NewConfigError(fmt.Sprintf("minimum length must be a non-negative integer, got %d", c.MinLength), nil)
	}
	return nil
}

func (c *Config) validatePatterns() error {
	for _, pattern := range append(append([]string{}, c.Include...), c.Exclude...) {
		if _, err := path.Match(pattern, ""); err != nil {
			return errors.NewConfigError("invalid word pattern: "+pattern, err)
		}
	}
	return nil
}

func (c *Config) validateWorkers() error {
	if c.Workers < 0 {
		return errors.NewConfigError(fmt.Sprintf("worker count must not be negative, got %d", c.Workers), nil)
	}
	return nil
}

func (c *Config) validateLogFormat() error {
	if c.LogFormat != "" && c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatCSV {
		return errors.NewConfigError("log format must be 'json' or 'csv'", nil)
	}
	return nil
}

func (c *Config) normalizeConfig() {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatJSON
	}
	if c.Workers == 0 {
		c.Workers = defaultWorkers()
	}
}

func defaultWorkers() int {
	n := runtime.NumCPU()
	if n > MaxWorkers {
		n = MaxWorkers
	}
	return n
}

// IsVerbose determines if verbose logging is enabled.
// Quiet mode overrides Verbose mode.
func (c *Config) IsVerbose() bool {
	return c.Verbose && !c.Quiet
}

// IsDebug determines if debug logging is enabled.
// Quiet mode overrides Debug mode.
func (c *Config) IsDebug() bool {
	return c.Debug && !c.Quiet
}

// ShouldLog determines if any diagnostic output should occur.
func (c *Config) ShouldLog() bool {
	return !c.Quiet
}
