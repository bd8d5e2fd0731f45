package config

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

const (
	noColorFlag  = "no-color"
	noColorShort = "c"
)

// Options are the settings of a single run. They are created once and passed
// by value.
type Options struct {
	NoColor bool
	Debug   bool
}

// Color reports whether output should carry color codes.
func (o Options) Color() bool {
	return !o.NoColor
}

// NewFlagSet returns the flags nicenorm consumes itself.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("nicenorm", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolP(noColorFlag, noColorShort, false, "Disable colored output")
	return fs
}

// isOwnFlag reports whether arg is a token nicenorm consumes. Only exact
// matches count, so combined or prefixed forms are forwarded untouched.
func isOwnFlag(arg string) bool {
	return arg == "-"+noColorShort || arg == "--"+noColorFlag
}

// ParseArgs splits args into the tokens nicenorm owns and the tokens that are
// forwarded to norminette. Index 0 is the program name and is always kept.
// The forwarded slice preserves the relative order of the remaining
// arguments. The consumed tokens are parsed into the returned flag set.
func ParseArgs(args []string) (*pflag.FlagSet, []string, error) {
	fs := NewFlagSet()
	if len(args) == 0 {
		return fs, []string{}, nil
	}

	forwarded := make([]string, 0, len(args))
	forwarded = append(forwarded, args[0])

	var consumed []string
	for _, arg := range args[1:] {
		if isOwnFlag(arg) {
			consumed = append(consumed, arg)
			continue
		}
		forwarded = append(forwarded, arg)
	}

	if err := fs.Parse(consumed); err != nil {
		return nil, nil, fmt.Errorf("parse flags: %w", err)
	}

	return fs, forwarded, nil
}

// ParseOptions parses args with flags as the only source of settings.
func ParseOptions(args []string) (Options, []string, error) {
	fs, forwarded, err := ParseArgs(args)
	if err != nil {
		return Options{}, nil, err
	}

	noColor, err := fs.GetBool(noColorFlag)
	if err != nil {
		return Options{}, nil, fmt.Errorf("read flag %s: %w", noColorFlag, err)
	}

	return Options{NoColor: noColor}, forwarded, nil
}
