package options

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/ini.v1"
)

// ResolverConfig carries the run-level settings the resolver needs from
// the driver and the converter.
type ResolverConfig struct {
	// ProgramName names the binary; the configuration file is probed at
	// "<ProgramName>_config.ini".
	ProgramName string

	// UseConfigFile enables the configuration-file probe.
	UseConfigFile bool

	// InputExtension filters input-directory enumeration. Defaults to
	// ".mf4"; matched case-insensitively.
	InputExtension string

	// WorkDir is the directory the configuration file is probed in.
	// Defaults to the current directory.
	WorkDir string

	// Common receives the derived shared settings. Allocated by the
	// resolver when nil.
	Common *CommonOptions
}

// Resolver merges command-line arguments, the optional configuration file
// and declared defaults into one Resolved option set.
//
// A resolver, like the registry underneath it, is single-use: Resolve
// writes parsed state into the registry's flag declarations, so a second
// call would see stale values and break the read-only promise of the
// first call's Resolved. Build a fresh registry and resolver per run.
type Resolver struct {
	registry *Registry
	cfg      ResolverConfig
	logger   *zap.Logger
	used     bool
}

// NewResolver builds a resolver over an assembled registry.
func NewResolver(registry *Registry, cfg ResolverConfig, logger *zap.Logger) *Resolver {
	if cfg.InputExtension == "" {
		cfg.InputExtension = ".mf4"
	}
	if cfg.Common == nil {
		cfg.Common = &CommonOptions{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{registry: registry, cfg: cfg, logger: logger}
}

// Resolve parses argv against the combined schema and layers in the
// configuration file. Command-line values always win over configuration
// file values, which win over defaults.
//
// The returned error is reserved for the fatal conditions: a malformed
// command line (a value-taking option with no value) or a configuration
// file that cannot be parsed. Everything else resolution can report is
// accumulated into the returned Status.
func (r *Resolver) Resolve(argv []string) (*Resolved, Status, error) {
	if r.used {
		return nil, StatusNoError, errors.New("resolver is single-use: build a new registry and resolver per run")
	}
	r.used = true

	flags := r.registry.combined()
	if err := flags.Parse(argv); err != nil {
		return nil, StatusNoError, fmt.Errorf("parsing command line: %w", err)
	}

	res := &Resolved{
		flags:           flags,
		fromCommandLine: make(map[string]struct{}),
		fromConfig:      make(map[string]struct{}),
		Common:          r.cfg.Common,
	}
	flags.Visit(func(f *pflag.Flag) {
		res.fromCommandLine[f.Name] = struct{}{}
	})

	status := StatusNoError

	if r.cfg.UseConfigFile {
		if err := r.mergeConfigFile(flags, res); err != nil {
			return nil, status, err
		}
	}

	// No arguments at all always brings up the help text.
	if len(argv) == 0 {
		status |= StatusDisplayHelp
	}

	if help, _ := flags.GetBool("help"); help {
		status |= StatusDisplayHelp
	}
	if version, _ := flags.GetBool("version"); version {
		status |= StatusDisplayVersion
	}

	res.Verbose, _ = flags.GetInt("verbose")
	if res.Verbose < 0 || res.Verbose > 5 {
		status |= StatusUnrecognizedOption
	}

	res.Common.NonInteractive, _ = flags.GetBool("non-interactive")
	timezone, _ := flags.GetString("timezone")
	res.Common.DisplayTimeFormat = timeFormatFromOption(timezone)

	scan := scanArgv(argv, flags, "input-files")

	inputStatus, inputs := r.resolveInputs(flags, res, scan.inputs)
	status |= inputStatus
	res.InputFiles = inputs

	res.Unrecognized = scan.unknown
	if len(res.Unrecognized) > 0 {
		status |= StatusUnrecognizedOption
	}

	return res, status, nil
}

// mergeConfigFile loads "<program>_config.ini" and stores each declared
// configuration-file option that was not already supplied on the command
// line. A missing file is recorded on res, not an error; an unparseable
// file or value is.
func (r *Resolver) mergeConfigFile(flags *pflag.FlagSet, res *Resolved) error {
	name := r.cfg.ProgramName + "_config.ini"
	path := name
	if r.cfg.WorkDir != "" {
		path = filepath.Join(r.cfg.WorkDir, name)
	}

	if _, err := os.Stat(path); err != nil {
		// Logged by the driver once the verbosity level is applied.
		res.NoConfigFile = true
		return nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("parsing configuration file %s: %w", name, err)
	}

	var mergeErr error
	r.registry.configFile.flags.VisitAll(func(f *pflag.Flag) {
		if mergeErr != nil {
			return
		}
		if _, ok := res.fromCommandLine[f.Name]; ok {
			return
		}
		value, ok := lookupKey(file, f.Name)
		if !ok {
			return
		}
		if err := flags.Set(f.Name, value); err != nil {
			mergeErr = fmt.Errorf("parsing configuration file %s: option %q: %w", name, f.Name, err)
			return
		}
		res.fromConfig[f.Name] = struct{}{}
	})
	return mergeErr
}

// lookupKey finds an option in the INI file. Dotted option names map onto
// sections, so "export.channel" reads key "channel" from "[export]".
func lookupKey(file *ini.File, name string) (string, bool) {
	section, key := "", name
	if i := strings.LastIndex(name, "."); i >= 0 {
		section, key = name[:i], name[i+1:]
	}
	s, err := file.GetSection(section)
	if err != nil || !s.HasKey(key) {
		return "", false
	}
	return s.Key(key).String(), true
}
