package options

import (
	"io"

	"github.com/spf13/pflag"
)

// Schema declares the options one parser layer recognizes: names,
// shorthands, value types and defaults. The driver owns one schema for
// command-line options and one for configuration-file-only options; the
// converter contributes its own declarations to both before parsing.
type Schema struct {
	flags *pflag.FlagSet
}

func newSchema(name string) *Schema {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	return &Schema{flags: fs}
}

// Flag declares a boolean switch option with a false default.
func (s *Schema) Flag(name, shorthand, usage string) {
	s.flags.BoolP(name, shorthand, false, usage)
}

// Int declares an integer option.
func (s *Schema) Int(name, shorthand string, value int, usage string) {
	s.flags.IntP(name, shorthand, value, usage)
}

// String declares a string option.
func (s *Schema) String(name, shorthand, value, usage string) {
	s.flags.StringP(name, shorthand, value, usage)
}

// StringArray declares a repeatable string option with an empty default.
// Each occurrence contributes one value; values are never split on commas,
// so a path containing one stays whole.
func (s *Schema) StringArray(name, shorthand, usage string) {
	s.flags.StringArrayP(name, shorthand, nil, usage)
}

// Registry assembles the command-line and configuration-file schemas for
// one run. The common options are registered on construction; converter
// declarations are added through CommandLine and ConfigFile. Name
// collisions between the common and converter schemas are a developer
// error and are not validated here.
type Registry struct {
	commandLine *Schema
	configFile  *Schema
}

// NewRegistry returns a registry pre-populated with the common options.
func NewRegistry() *Registry {
	r := &Registry{
		commandLine: newSchema("command-line"),
		configFile:  newSchema("config-file"),
	}
	r.registerCommonOptions()
	return r
}

func (r *Registry) registerCommonOptions() {
	s := r.commandLine
	s.Flag("help", "h", "Print this help message.")
	s.Flag("version", "v", "Print version information.")
	s.Int("verbose", "", 1, "Set verbosity of output (0-5).")
	s.String("input-directory", "I", "", "Input directory to convert files from.")
	s.String("output-directory", "O", "", "Output directory to place converted files into.")
	s.Flag("non-interactive", "", "Run in non-interactive mode, with no progress output.")
	s.String("timezone", "t", "l", "Display times in UTC (u), logger localtime (l, default) or PC local time (p).")
	s.StringArray("input-files", "i", "List of files to convert, ignored if input-directory is specified. All unknown arguments will be interpreted as input files.")
}

// CommandLine is the schema the converter extends with its command-line
// options.
func (r *Registry) CommandLine() *Schema {
	return r.commandLine
}

// ConfigFile is the schema the converter extends with options that are
// read from the configuration file. These options are also accepted on
// the command line, where they take precedence.
func (r *Registry) ConfigFile() *Schema {
	return r.configFile
}

// combined builds the flag set the command-line parser runs against. It
// spans both schemas so every declared option carries a populated default
// after parsing.
func (r *Registry) combined() *pflag.FlagSet {
	fs := pflag.NewFlagSet("all", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.AddFlagSet(r.commandLine.flags)
	fs.AddFlagSet(r.configFile.flags)
	return fs
}

// Usage renders the command-line option table for the help text.
func (r *Registry) Usage() string {
	return r.commandLine.flags.FlagUsages()
}
