// Package rawexport ships the reference exporter: it streams each input
// file into the output directory unchanged. It exists so the driver,
// option and progress contracts are exercised end to end by a runnable
// binary; the format-specific exporters plug into the same interface.
package rawexport

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mdfconv/pkg/convert"
	"mdfconv/pkg/options"
	"mdfconv/pkg/version"

	"go.uber.org/zap"
)

const defaultBufferSize = 64 * 1024

// Exporter copies inputs byte for byte, reporting chunk progress.
type Exporter struct {
	logger   *zap.Logger
	progress convert.ProgressFunc
	common   *options.CommonOptions

	overwrite  bool
	bufferSize int
}

// New builds the exporter.
func New(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{logger: logger, bufferSize: defaultBufferSize}
}

// ProgramName implements convert.Converter.
func (e *Exporter) ProgramName() string {
	return "mdfconv"
}

// Version implements convert.Converter.
func (e *Exporter) Version() string {
	return version.Get().Version
}

// RegisterProgressCallback implements convert.Converter.
func (e *Exporter) RegisterProgressCallback(fn convert.ProgressFunc) {
	e.progress = fn
}

// ConfigureParser implements convert.Converter.
func (e *Exporter) ConfigureParser(s *options.Schema) {
	s.Flag("overwrite", "", "Overwrite existing files in the output directory.")
}

// ConfigureFileParser implements convert.Converter.
func (e *Exporter) ConfigureFileParser(s *options.Schema) {
	s.Int("buffer-size", "", defaultBufferSize, "Copy buffer size in bytes.")
}

// UsesConfigFile implements convert.Converter.
func (e *Exporter) UsesConfigFile() bool {
	return true
}

// SetCommonOptions implements convert.Converter.
func (e *Exporter) SetCommonOptions(c *options.CommonOptions) {
	e.common = c
}

// ParseOptions implements convert.Converter.
func (e *Exporter) ParseOptions(r *options.Resolved) (options.Status, error) {
	overwrite, err := r.GetBool("overwrite")
	if err != nil {
		return options.StatusNoError, err
	}
	e.overwrite = overwrite

	size, err := r.GetInt("buffer-size")
	if err != nil {
		return options.StatusNoError, err
	}
	if size <= 0 {
		return options.StatusNoError, fmt.Errorf("buffer-size must be positive, got %d", size)
	}
	e.bufferSize = size

	return options.StatusNoError, nil
}

// Convert implements convert.Converter. It copies inputPath into
// outputDir under the same base name and reports progress after every
// chunk.
func (e *Exporter) Convert(inputPath, outputDir string) bool {
	in, err := os.Open(inputPath)
	if err != nil {
		e.logger.Error("Failed to open input file", zap.String("path", inputPath), zap.Error(err))
		return false
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		e.logger.Error("Failed to stat input file", zap.String("path", inputPath), zap.Error(err))
		return false
	}
	total := info.Size()

	outputPath := filepath.Join(outputDir, filepath.Base(inputPath))
	if !e.overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			e.logger.Error("Output file already exists", zap.String("path", outputPath))
			return false
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		e.logger.Error("Failed to create output file", zap.String("path", outputPath), zap.Error(err))
		return false
	}

	e.report(0, total)

	buf := make([]byte, e.bufferSize)
	var written int64
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				e.logger.Error("Failed to write output file", zap.String("path", outputPath), zap.Error(werr))
				out.Close()
				return false
			}
			written += int64(n)
			e.report(written, total)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			e.logger.Error("Failed to read input file", zap.String("path", inputPath), zap.Error(err))
			out.Close()
			return false
		}
	}

	if err := out.Close(); err != nil {
		e.logger.Error("Failed to close output file", zap.String("path", outputPath), zap.Error(err))
		return false
	}

	// The file may have grown or shrunk while being copied; make sure the
	// progress line is terminated either way.
	if written != total {
		e.report(written, written)
	}

	e.logger.Debug("Copied input file",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int64("bytes", written),
	)
	return true
}

func (e *Exporter) report(current, total int64) {
	if e.progress == nil {
		return
	}
	e.progress(int(current), int(total))
}
