package options

// Status accumulates the non-exclusive outcomes of option resolution.
// Several flags may be set at once; the driver applies a fixed precedence
// (unrecognized option > help > version > no input files) when deciding
// what to do with the combined result.
type Status uint8

const (
	// StatusDisplayHelp requests the help text. Also set when the program
	// is invoked without any arguments.
	StatusDisplayHelp Status = 1 << iota

	// StatusDisplayVersion requests the version banner.
	StatusDisplayVersion

	// StatusUnrecognizedOption marks the presence of command-line tokens
	// no schema entry claims, or an out-of-range verbose value.
	StatusUnrecognizedOption

	// StatusNoInputFiles means neither input-directory nor input-files was
	// supplied.
	StatusNoInputFiles
)

// StatusNoError is the zero Status: resolution completed with nothing to
// report.
const StatusNoError Status = 0

// Has reports whether every flag in mask is set.
func (s Status) Has(mask Status) bool {
	return s&mask == mask
}
