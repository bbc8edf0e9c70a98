package options

import (
	"strings"

	"github.com/spf13/pflag"
)

// argvScan holds what a re-walk of argv recovers that the parser does not
// report: the verbatim flag-shaped tokens no schema entry claims, and the
// explicit input sequence in parse-encounter order. Values of the input
// option and bare tokens bind to the same sequence, so "a.mf4 -i b.mf4"
// keeps a.mf4 first.
type argvScan struct {
	unknown []string
	inputs  []string
}

// scanArgv walks argv against the combined schema. inputOption names the
// option whose values collect into the input sequence alongside the
// positionals.
func scanArgv(argv []string, flags *pflag.FlagSet, inputOption string) argvScan {
	var s argvScan
	for i := 0; i < len(argv); i++ {
		token := argv[i]
		switch {
		case token == "--":
			s.inputs = append(s.inputs, argv[i+1:]...)
			return s
		case strings.HasPrefix(token, "--"):
			name, value, hasValue := strings.Cut(token[2:], "=")
			flag := flags.Lookup(name)
			if flag == nil {
				s.unknown = append(s.unknown, token)
				if !hasValue {
					i = skipFlagValue(argv, i)
				}
				continue
			}
			if !takesValue(flag) {
				continue
			}
			if !hasValue && i+1 < len(argv) {
				i++
				value = argv[i]
			}
			if flag.Name == inputOption {
				s.inputs = append(s.inputs, value)
			}
		case len(token) > 1 && token[0] == '-':
			i = s.scanShorthands(argv, i, flags, inputOption)
		default:
			s.inputs = append(s.inputs, token)
		}
	}
	return s
}

// scanShorthands walks a "-abc" style token and returns the index of the
// last argument it consumed. An unknown shorthand marks the whole token
// unrecognized; a known value-taking shorthand consumes the rest of the
// token or the following argument as its value.
func (s *argvScan) scanShorthands(argv []string, i int, flags *pflag.FlagSet, inputOption string) int {
	token := argv[i]
	shorthands := token[1:]
	for j := 0; j < len(shorthands); j++ {
		flag := flags.ShorthandLookup(string(shorthands[j]))
		if flag == nil {
			s.unknown = append(s.unknown, token)
			return skipFlagValue(argv, i)
		}
		if !takesValue(flag) {
			continue
		}
		// Value attached to the token, as in -ifile or -i=file, else the
		// next argument.
		value := strings.TrimPrefix(shorthands[j+1:], "=")
		if len(value) == 0 && i+1 < len(argv) {
			i++
			value = argv[i]
		}
		if flag.Name == inputOption {
			s.inputs = append(s.inputs, value)
		}
		return i
	}
	return i
}

// skipFlagValue mirrors how the parser strips an unknown flag: the next
// token is treated as the flag's value unless it is itself flag-shaped.
func skipFlagValue(argv []string, i int) int {
	if i+1 < len(argv) && (len(argv[i+1]) == 0 || argv[i+1][0] != '-') {
		return i + 1
	}
	return i
}

func takesValue(flag *pflag.Flag) bool {
	return flag.Value.Type() != "bool"
}
