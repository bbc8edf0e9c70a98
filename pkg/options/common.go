package options

// TimeFormat selects how timestamps read from a logger file are displayed.
type TimeFormat int

const (
	// LoggerLocalTime displays times in the local time of the logging
	// device. This is the default.
	LoggerLocalTime TimeFormat = iota

	// UTC displays times in UTC.
	UTC

	// PCLocalTime displays times in the local time of the converting PC.
	PCLocalTime
)

// CommonOptions is the subset of resolved options shared between the
// driver and the converter. The resolver fills it during Resolve; it is
// handed to the converter by pointer and never mutated afterwards.
type CommonOptions struct {
	NonInteractive    bool
	DisplayTimeFormat TimeFormat
}

// timeFormatFromOption derives the display time format from the first
// byte of the timezone option value. Empty and unrecognized values fall
// back to LoggerLocalTime.
func timeFormatFromOption(value string) TimeFormat {
	if len(value) == 0 {
		return LoggerLocalTime
	}
	switch value[0] {
	case 'u':
		return UTC
	case 'p':
		return PCLocalTime
	default:
		return LoggerLocalTime
	}
}
