// Package logging builds the zap logger shared across the driver. The
// level is initialized once from the resolved verbosity and treated as
// read-only for the remainder of the run.
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs the process logger together with the atomic level the
// driver adjusts once the verbose option is resolved. The initial level
// matches the default verbosity of 1 (errors only). Output goes to stderr
// as console lines, colored when stderr is a terminal.
func New() (*zap.Logger, zap.AtomicLevel) {
	level := zap.NewAtomicLevelAt(zapcore.ErrorLevel)

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if isatty.IsTerminal(os.Stderr.Fd()) {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core), level
}

// Level maps the verbose option onto a zap level:
//
//	0 fatal, 1 error, 2 warning, 3 info, 4 debug, 5 trace
//
// zap has no trace level, so 5 also maps to debug. The second return
// reports whether the value was in range; out-of-range values leave the
// level untouched and are flagged as unrecognized by the resolver.
func Level(verbose int) (zapcore.Level, bool) {
	switch verbose {
	case 0:
		return zapcore.FatalLevel, true
	case 1:
		return zapcore.ErrorLevel, true
	case 2:
		return zapcore.WarnLevel, true
	case 3:
		return zapcore.InfoLevel, true
	case 4, 5:
		return zapcore.DebugLevel, true
	default:
		return zapcore.ErrorLevel, false
	}
}
