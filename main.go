package main

import (
	"log"
	"os"
	"strings"

	"mdfconv/pkg/driver"
	"mdfconv/pkg/logging"
	"mdfconv/pkg/rawexport"

	"golang.org/x/term"
)

func main() {
	logger, level := logging.New()

	exporter := rawexport.New(logger)
	exe := driver.New(exporter, driver.WithLogger(logger, level))

	code := exe.Main(os.Args[1:])

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	os.Exit(code)
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
