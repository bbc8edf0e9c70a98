// Package convert declares the contract between the batch driver and a
// format-specific converter.
package convert

import "mdfconv/pkg/options"

// ProgressFunc receives conversion progress. The converter calls it
// synchronously from within Convert, on the driver's goroutine; it only
// renders output and must not call back into the driver.
type ProgressFunc func(current, total int)

// Converter is implemented by each format-specific exporter. The driver
// calls the methods in a fixed order per run: RegisterProgressCallback,
// ConfigureParser, ConfigureFileParser, then after option resolution
// SetCommonOptions and ParseOptions, and finally Convert once per work
// item.
type Converter interface {
	// ProgramName names the tool; it appears in the help text and selects
	// the "<name>_config.ini" configuration file.
	ProgramName() string

	// Version returns the converter's own version string.
	Version() string

	// RegisterProgressCallback stores the sink the converter reports
	// conversion progress to.
	RegisterProgressCallback(fn ProgressFunc)

	// ConfigureParser contributes the converter's command-line option
	// declarations.
	ConfigureParser(s *options.Schema)

	// ConfigureFileParser contributes option declarations read from the
	// configuration file.
	ConfigureFileParser(s *options.Schema)

	// UsesConfigFile reports whether the configuration file should be
	// probed at all.
	UsesConfigFile() bool

	// SetCommonOptions hands the converter the resolved shared settings.
	// The pointer stays valid, and unchanged, for the rest of the run.
	SetCommonOptions(c *options.CommonOptions)

	// ParseOptions lets the converter validate and derive its own
	// settings from the resolved option set. The returned status is
	// merged into the driver's; an error aborts the run.
	ParseOptions(r *options.Resolved) (options.Status, error)

	// Convert processes one input file into the output directory. A false
	// return is fatal for the whole batch.
	Convert(inputPath, outputDir string) bool
}
