package config

import (
	"fmt"
	"io"
	"os"
)

// Exit codes shared by the commands.
const (
	ExitOK    = 0
	ExitError = 1
)

// Exitf writes a formatted error message to stderr and exits with ExitError.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(ExitError)
}

// ExitUsagef writes the message followed by a usage line to stderr and exits
// with ExitError.
func ExitUsagef(usage string, format string, args ...any) {
	writeUsage(os.Stderr, usage, format, args...)
	os.Exit(ExitError)
}

func writeUsage(w io.Writer, usage string, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
	if usage != "" {
		fmt.Fprintln(w, usage)
	}
}
