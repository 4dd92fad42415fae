package domain

import (
	"errors"
	"path/filepath"
	"strings"
)

// Settings is the resolved configuration of a single invocation.
type Settings struct {
	Dir    string         `mapstructure:"dir"`
	Log    LogSettings    `mapstructure:"log"`
	Scale  ScaleSettings  `mapstructure:"scale"`
	Sheet  SheetSettings  `mapstructure:"sheet"`
	Gather GatherSettings `mapstructure:"gather"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

type ScaleSettings struct {
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	Suffix      string `mapstructure:"suffix"`
	Pattern     string `mapstructure:"pattern"`
	Interactive bool   `mapstructure:"interactive"`
}

type SheetSettings struct {
	SampleName string `mapstructure:"sample_name"`
}

type GatherSettings struct {
	Ext       string `mapstructure:"ext"`
	Overwrite bool   `mapstructure:"overwrite"`
}

// Invocation carries the positional arguments and settings a command runs with.
type Invocation struct {
	Args     []string
	Settings *Settings
}

// Outcome records what happened to one input of a batch.
type Outcome struct {
	Input  string
	Output string
	Err    error
}

// Report collects the outcomes of a batch run in processing order.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) Add(input, output string, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{Input: input, Output: output, Err: err})
}

func (r *Report) Succeeded() []Outcome {
	return r.filter(func(o Outcome) bool { return o.Err == nil })
}

func (r *Report) Failed() []Outcome {
	return r.filter(func(o Outcome) bool { return o.Err != nil && !errors.Is(o.Err, ErrDestinationExists) })
}

// Skipped returns outcomes that were left alone because their destination was taken.
func (r *Report) Skipped() []Outcome {
	return r.filter(func(o Outcome) bool { return errors.Is(o.Err, ErrDestinationExists) })
}

func (r *Report) filter(keep func(Outcome) bool) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

// DerivedPath inserts suffix between the base name and the extension of path.
func DerivedPath(path, suffix string) string {
	ext := Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// ReplaceExt swaps the extension of path for ext.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, Ext(path)) + ext
}

// Ext is filepath.Ext except that leading dots of the base name never start an extension, so ".png" has
// none and ".logo.png" has ".png".
func Ext(path string) string {
	base := strings.TrimLeft(filepath.Base(path), ".")
	return filepath.Ext(base)
}

// HasSuffix reports whether the base name of path, without extension, ends with suffix.
func HasSuffix(path, suffix string) bool {
	if suffix == "" {
		return false
	}
	base := filepath.Base(path)
	return strings.HasSuffix(strings.TrimSuffix(base, Ext(base)), suffix)
}

// IsWorkbookLock reports whether path is an office lock file such as "~$report.xlsx".
func IsWorkbookLock(path string) bool {
	return strings.HasPrefix(filepath.Base(path), workbookLockPrefix)
}
