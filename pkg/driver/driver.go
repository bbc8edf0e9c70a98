// Package driver wires option resolution, input discovery and the
// converter into the batch conversion entry point shared by every
// exporter binary.
package driver

import (
	"fmt"
	"io"
	"os"

	"mdfconv/pkg/convert"
	"mdfconv/pkg/logging"
	"mdfconv/pkg/options"
	"mdfconv/pkg/progress"

	"go.uber.org/zap"
)

// Executable drives one converter through a full run: resolve options,
// expand the work list and convert each item in order.
type Executable struct {
	conv     convert.Converter
	stdout   io.Writer
	stderr   io.Writer
	logger   *zap.Logger
	level    zap.AtomicLevel
	common   *options.CommonOptions
	reporter *progress.Reporter
	inputExt string
	workDir  string
}

// Option customizes an Executable.
type Option func(*Executable)

// WithOutput redirects the informational and error streams.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Executable) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithLogger supplies the logger and the level handle the resolved
// verbosity is applied to.
func WithLogger(logger *zap.Logger, level zap.AtomicLevel) Option {
	return func(e *Executable) {
		e.logger = logger
		e.level = level
	}
}

// WithInputExtension overrides the extension input-directory discovery
// filters by. The default is ".mf4".
func WithInputExtension(ext string) Option {
	return func(e *Executable) {
		e.inputExt = ext
	}
}

// WithWorkDir overrides the directory the configuration file is probed
// in. The default is the current directory.
func WithWorkDir(dir string) Option {
	return func(e *Executable) {
		e.workDir = dir
	}
}

// New builds the executable around a converter.
func New(conv convert.Converter, opts ...Option) *Executable {
	e := &Executable{
		conv:   conv,
		stdout: os.Stdout,
		stderr: os.Stderr,
		common: &options.CommonOptions{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger, e.level = logging.New()
	}
	// The reporter shares the common options the resolver fills in later,
	// so it picks up the non-interactive flag without reconfiguration.
	e.reporter = progress.NewReporter(e.stdout, e.common)
	return e
}

// Exit codes of a run. Help, version and an empty input set all count as
// success; a missing input file degrades the run to partial failure
// without stopping it, while a converter failure aborts immediately.
const (
	ExitSuccess        = 0
	ExitUnrecognized   = 1
	ExitPartialFailure = 2
	ExitFatal          = -1
)

// Main executes one full run over argv (excluding the program name) and
// returns the process exit code. No converter error or panic escapes it.
func (e *Executable) Main(argv []string) int {
	e.conv.RegisterProgressCallback(e.reporter.Report)

	registry := options.NewRegistry()
	e.conv.ConfigureParser(registry.CommandLine())
	e.conv.ConfigureFileParser(registry.ConfigFile())

	resolver := options.NewResolver(registry, options.ResolverConfig{
		ProgramName:    e.conv.ProgramName(),
		UseConfigFile:  e.conv.UsesConfigFile(),
		InputExtension: e.inputExt,
		WorkDir:        e.workDir,
		Common:         e.common,
	}, e.logger)

	resolved, status, err := resolver.Resolve(argv)
	if err != nil {
		e.logger.Error("Failed to parse options", zap.Error(err))
		fmt.Fprintln(e.stderr, err)
		return ExitFatal
	}

	if level, ok := logging.Level(resolved.Verbose); ok {
		e.level.SetLevel(level)
	}

	e.conv.SetCommonOptions(e.common)

	convStatus, err := e.parseConverterOptions(resolved)
	if err != nil {
		e.logger.Error("Error occurred during specialized option parsing", zap.Error(err))
		return ExitFatal
	}
	status |= convStatus

	if resolved.NoConfigFile {
		e.logger.Info("No configuration file found, skipping.")
	}

	switch {
	case status.Has(options.StatusUnrecognizedOption):
		e.printUnrecognized(registry, resolved)
		return ExitUnrecognized
	case status.Has(options.StatusDisplayHelp):
		e.printHelp(registry)
		return ExitSuccess
	case status.Has(options.StatusDisplayVersion):
		e.printVersion()
		return ExitSuccess
	case status.Has(options.StatusNoInputFiles):
		return ExitSuccess
	}

	return e.runBatch(resolved)
}

// parseConverterOptions invokes the converter's option parsing with a
// recovery boundary, so a converter panic surfaces as a fatal error
// instead of crossing into main.
func (e *Executable) parseConverterOptions(resolved *options.Resolved) (status options.Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("converter panicked while parsing options: %v", r)
		}
	}()
	return e.conv.ParseOptions(resolved)
}
