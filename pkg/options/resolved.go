package options

import "github.com/spf13/pflag"

// Source identifies where an option's final value came from.
type Source int

const (
	SourceDefault Source = iota
	SourceConfigFile
	SourceCommandLine
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceCommandLine:
		return "command-line"
	case SourceConfigFile:
		return "config-file"
	default:
		return "default"
	}
}

// Resolved is the merged option set produced by Resolver.Resolve: every
// declared option with its final value, plus the derived settings the
// driver consumes directly. Read-only once resolution completes.
type Resolved struct {
	flags           *pflag.FlagSet
	fromCommandLine map[string]struct{}
	fromConfig      map[string]struct{}

	// Common carries the settings shared with the converter.
	Common *CommonOptions

	// Verbose is the raw verbosity value, which may be out of range.
	Verbose int

	// InputFiles is the resolved input list in discovery order.
	InputFiles []string

	// Unrecognized holds the command-line tokens no schema entry claimed.
	Unrecognized []string

	// NoConfigFile records that the configuration file was probed but not
	// found, so the driver can log it once verbosity is known.
	NoConfigFile bool
}

// Provenance reports which source supplied the option's final value.
func (r *Resolved) Provenance(name string) Source {
	if _, ok := r.fromCommandLine[name]; ok {
		return SourceCommandLine
	}
	if _, ok := r.fromConfig[name]; ok {
		return SourceConfigFile
	}
	return SourceDefault
}

// IsSet reports whether the option was supplied explicitly, on the
// command line or in the configuration file.
func (r *Resolved) IsSet(name string) bool {
	return r.Provenance(name) != SourceDefault
}

// GetBool returns the final value of a boolean option.
func (r *Resolved) GetBool(name string) (bool, error) {
	return r.flags.GetBool(name)
}

// GetInt returns the final value of an integer option.
func (r *Resolved) GetInt(name string) (int, error) {
	return r.flags.GetInt(name)
}

// GetString returns the final value of a string option.
func (r *Resolved) GetString(name string) (string, error) {
	return r.flags.GetString(name)
}

// GetStringArray returns the final value of a repeatable string option.
func (r *Resolved) GetStringArray(name string) ([]string, error) {
	return r.flags.GetStringArray(name)
}
