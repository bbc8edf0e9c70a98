package options

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// resolveInputs produces the ordered input list. An input directory takes
// precedence and replaces any explicit file list; otherwise the explicit
// sequence (input-files values and bare tokens, in the order they
// appeared on the command line) is used verbatim.
func (r *Resolver) resolveInputs(flags *pflag.FlagSet, res *Resolved, explicit []string) (Status, []string) {
	if res.IsSet("input-directory") {
		dir, _ := flags.GetString("input-directory")
		return StatusNoError, r.listInputDirectory(dir)
	}

	if len(explicit) > 0 {
		return StatusNoError, explicit
	}

	return StatusNoInputFiles, nil
}

// listInputDirectory enumerates regular files directly under dir whose
// extension matches the configured input extension. A missing or
// non-directory path is reported and yields an empty list; the batch then
// simply has nothing to do.
func (r *Resolver) listInputDirectory(dir string) []string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		r.logger.Error("Failed to resolve input directory", zap.String("path", dir), zap.Error(err))
		return nil
	}

	info, err := os.Stat(abs)
	if err != nil {
		r.logger.Error("Input directory does not exist", zap.String("path", abs))
		return nil
	}
	if !info.IsDir() {
		r.logger.Error("Input path is not a directory", zap.String("path", abs))
		return nil
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		r.logger.Error("Failed to read input directory", zap.String("path", abs), zap.Error(err))
		return nil
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), r.cfg.InputExtension) {
			continue
		}
		files = append(files, filepath.Join(abs, entry.Name()))
	}
	return files
}
