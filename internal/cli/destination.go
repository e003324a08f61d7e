// Package cli interprets the command line.
package cli

import (
	"io"

	"github.com/spf13/pflag"

	"lspenum/internal/report"
)

// ParseDestination picks the report destination from the arguments (without the
// program name). Exactly one argument, the bare "--", selects standard output;
// every other shape falls back to the log file, including arguments pflag rejects
// as unknown flags.
func ParseDestination(args []string) report.Destination {
	if len(args) != 1 {
		return report.ToFile
	}

	fs := pflag.NewFlagSet("lspenum", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return report.ToFile
	}
	if fs.ArgsLenAtDash() == 0 && fs.NArg() == 0 {
		return report.ToStdout
	}
	return report.ToFile
}
