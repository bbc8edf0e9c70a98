package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"mdfconv/pkg/options"

	"go.uber.org/zap"
)

// runBatch converts every resolved input in discovery order. A missing
// input is skipped and degrades the exit code to partial failure; a
// converter failure or an output-directory creation failure aborts the
// whole batch.
func (e *Executable) runBatch(resolved *options.Resolved) int {
	code := ExitSuccess
	missing := 0

	for _, input := range resolved.InputFiles {
		path, err := filepath.Abs(input)
		if err != nil {
			e.logger.Error("Failed to resolve input path", zap.String("path", input), zap.Error(err))
			code = ExitPartialFailure
			missing++
			continue
		}

		if _, err := os.Stat(path); err != nil {
			e.logger.Error("File does not exist", zap.String("path", path))
			code = ExitPartialFailure
			missing++
			continue
		}

		outputDir, err := e.resolveOutputDir(resolved, path)
		if err != nil {
			e.logger.Error("Could not create output folder", zap.Error(err))
			return ExitFatal
		}

		ok, err := e.convertOne(path, outputDir)
		if err != nil {
			e.logger.Error("Converter panicked during conversion", zap.String("input", path), zap.Error(err))
			return ExitFatal
		}
		if !ok {
			e.logger.Error("Error during conversion", zap.String("input", path))
			return ExitFatal
		}
	}

	if missing > 0 {
		e.logger.Warn("Skipped missing input files", zap.Int("count", missing))
	}
	return code
}

// resolveOutputDir determines where one input's result goes: the explicit
// output directory, created on demand, or the input file's own parent.
func (e *Executable) resolveOutputDir(resolved *options.Resolved, inputPath string) (string, error) {
	if !resolved.IsSet("output-directory") {
		return filepath.Dir(inputPath), nil
	}

	dir, _ := resolved.GetString("output-directory")
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving output folder %q: %w", dir, err)
	}

	if _, err := os.Stat(abs); err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("checking output folder %q: %w", abs, err)
		}
		e.logger.Info("Output folder does not exist. Creating it.", zap.String("path", abs))
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return "", fmt.Errorf("creating output folder %q: %w", abs, err)
		}
	}
	return abs, nil
}

// convertOne invokes the converter for a single work item behind a
// recovery boundary.
func (e *Executable) convertOne(inputPath, outputDir string) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("converter panicked: %v", r)
		}
	}()
	return e.conv.Convert(inputPath, outputDir), nil
}
