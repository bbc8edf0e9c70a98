package driver

import (
	"fmt"

	"mdfconv/pkg/options"
	"mdfconv/pkg/version"
)

func (e *Executable) printHelp(registry *options.Registry) {
	name := e.conv.ProgramName()
	fmt.Fprintf(e.stdout, "Usage:\n")
	fmt.Fprintf(e.stdout, "%s [-short-option value --long-option value] [-i] file_a [file_b ...]:\n", name)
	fmt.Fprintf(e.stdout, "\n")
	fmt.Fprintf(e.stdout, "Short options start with a single \"-\", while long options start with \"--\".\n")
	fmt.Fprintf(e.stdout, "A value enclosed in \"[]\" signifies it is optional.\n")
	fmt.Fprintf(e.stdout, "Some options only exists in the long form, while others exist in both forms.\n")
	fmt.Fprintf(e.stdout, "Not all options require arguments (arg).\n")
	fmt.Fprintf(e.stdout, "\n")
	fmt.Fprint(e.stdout, registry.Usage())
}

func (e *Executable) printUnrecognized(registry *options.Registry, resolved *options.Resolved) {
	if len(resolved.Unrecognized) == 1 {
		fmt.Fprintln(e.stdout, "Unrecognized option:")
	} else {
		fmt.Fprintln(e.stdout, "Unrecognized options:")
	}
	for _, token := range resolved.Unrecognized {
		fmt.Fprintln(e.stdout, token)
	}
	fmt.Fprintln(e.stdout)
	e.printHelp(registry)
}

func (e *Executable) printVersion() {
	fmt.Fprintf(e.stdout, "Version of %s: %s\n", e.conv.ProgramName(), e.conv.Version())
	fmt.Fprintf(e.stdout, "Version of converter base: %s\n", version.Get().String())
}
