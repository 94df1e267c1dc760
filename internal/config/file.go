package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"layoutsyn/internal/errors"
)

// Flag names shared between the CLI and config files.
const (
	FlagFrom          = "from"
	FlagTo            = "to"
	FlagDictionary    = "dictionary"
	FlagMinLength     = "min-length"
	FlagInclude       = "include"
	FlagExclude       = "exclude"
	FlagWorkers       = "workers"
	FlagSort          = "sort"
	FlagDistinct      = "distinct"
	FlagCaseSensitive = "case-sensitive"
	FlagReportInvalid = "report-invalid"
	FlagLog           = "log"
	FlagLogFormat     = "log-format"
)

// File is the on-disk form of a configuration file. Pointer fields
// distinguish "not set" from a zero value.
type File struct {
	From          string   `toml:"from" yaml:"from" json:"from"`
	To            string   `toml:"to" yaml:"to" json:"to"`
	Dictionary    string   `toml:"dictionary" yaml:"dictionary" json:"dictionary"`
	MinLength     *int     `toml:"min_length" yaml:"min_length" json:"min_length"`
	Include       []string `toml:"include" yaml:"include" json:"include"`
	Exclude       []string `toml:"exclude" yaml:"exclude" json:"exclude"`
	Workers       *int     `toml:"workers" yaml:"workers" json:"workers"`
	Sort          *bool    `toml:"sort" yaml:"sort" json:"sort"`
	Distinct      *bool    `toml:"distinct" yaml:"distinct" json:"distinct"`
	CaseSensitive *bool    `toml:"case_sensitive" yaml:"case_sensitive" json:"case_sensitive"`
	ReportInvalid *bool    `toml:"report_invalid" yaml:"report_invalid" json:"report_invalid"`
	LogFile       string   `toml:"log" yaml:"log" json:"log"`
	LogFormat     string   `toml:"log_format" yaml:"log_format" json:"log_format"`
}

// LoadFile reads a configuration file, choosing the decoder by extension:
// .toml, .yaml/.yml or .json. Relative dictionary and log paths are resolved
// against the directory holding the file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileError(path, err)
	}

	f := &File{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), f); err != nil {
			return nil, errors.NewConfigErrorWithPath(path, "failed to decode TOML", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, errors.NewConfigErrorWithPath(path, "failed to decode YAML", err)
		}
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(f); err != nil {
			return nil, errors.NewConfigErrorWithPath(path, "failed to decode JSON", err)
		}
	default:
		return nil, errors.NewConfigErrorWithPath(path, "unsupported config file extension "+ext+" (use .toml, .yaml, .yml or .json)", nil)
	}

	dir := filepath.Dir(path)
	f.Dictionary = resolve(dir, f.Dictionary)
	f.LogFile = resolve(dir, f.LogFile)
	return f, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Apply copies every value set in f onto c, skipping options whose flag was
// given on the command line. changed reports whether a flag was set.
func (c *Config) Apply(f *File, changed func(flag string) bool) {
	if f == nil {
		return
	}

	setString(&c.From, f.From, changed(FlagFrom))
	setString(&c.To, f.To, changed(FlagTo))
	setString(&c.Dictionary, f.Dictionary, changed(FlagDictionary))
	setString(&c.LogFile, f.LogFile, changed(FlagLog))
	if f.LogFormat != "" && !changed(FlagLogFormat) {
		c.LogFormat = LogFormat(f.LogFormat)
	}

	setInt(&c.MinLength, f.MinLength, changed(FlagMinLength))
	if len(f.Include) > 0 && !changed(FlagInclude) {
		c.Include = f.Include
	}
	if len(f.Exclude) > 0 && !changed(FlagExclude) {
		c.Exclude = f.Exclude
	}
	setInt(&c.Workers, f.Workers, changed(FlagWorkers))

	setBool(&c.Sort, f.Sort, changed(FlagSort))
	setBool(&c.Distinct, f.Distinct, changed(FlagDistinct))
	setBool(&c.CaseSensitive, f.CaseSensitive, changed(FlagCaseSensitive))
	setBool(&c.ReportInvalid, f.ReportInvalid, changed(FlagReportInvalid))
}

func setString(dst *string, v string, flagSet bool) {
	if v != "" && !flagSet {
		*dst = v
	}
}

func setInt(dst *int, v *int, flagSet bool) {
	if v != nil && !flagSet {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool, flagSet bool) {
	if v != nil && !flagSet {
		*dst = *v
	}
}
