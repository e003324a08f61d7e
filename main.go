package main

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"lspenum/internal/catalog"
	"lspenum/internal/cli"
	lspenumlog "lspenum/internal/log"
	"lspenum/internal/model"
	"lspenum/internal/report"
	"lspenum/internal/ui"
	"lspenum/internal/winsock"
)

// subsystem is what a run needs from the initialized socket layer.
type subsystem interface {
	catalog.Enumerator
	report.Lookup
	Close() error
}

func startWinsock() (subsystem, error) {
	s, err := winsock.Startup()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func main() {
	lspenumlog.InitLogger()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, startWinsock))
}

// run performs one report pass and returns the process exit code. The socket
// subsystem is released before run returns, whatever the outcome.
func run(args []string, stdout, stderr io.Writer, start func() (subsystem, error)) int {
	dest := cli.ParseDestination(args)

	sys, err := start()
	if err != nil {
		ui.Fatal(stderr, fmt.Errorf("WSAStartup failed: %w", err))
		return 1
	}
	defer func() {
		if err := sys.Close(); err != nil {
			log.WithError(err).Warn("WSACleanup failed")
		}
	}()

	// The catalog is read before anything is opened, so a failed read leaves no
	// partial report behind.
	records, err := catalog.Enumerate(sys)
	if err != nil {
		ui.Fatal(stderr, err)
		return 1
	}

	if err := runReportMode(dest, stdout, records, sys); err != nil {
		ui.Fatal(stderr, err)
		return 1
	}

	if dest == report.ToFile {
		ui.Success(stdout, report.LogFileName)
	}
	return 0
}

func runReportMode(dest report.Destination, stdout io.Writer, records []model.ProviderRecord, lookup report.Lookup) error {
	name := report.LogFileName
	if dest == report.ToStdout {
		name = "report"
	}

	sink, err := report.Open(dest, stdout)
	if err != nil {
		return fmt.Errorf("could not write %s: %w", name, err)
	}

	err = report.Generate(sink, records, lookup)
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("could not write %s: %w", name, err)
	}
	log.Debugf("wrote %d entries", len(records))
	return nil
}
