// Package main is the entry point for the mte editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/mte/internal/app"
	"github.com/dshills/mte/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, code, done := parseFlags(args, stdout, stderr)
	if done {
		return code
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(stderr, "Error: standard input is not a terminal")
		return 1
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	tty, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(tty); err != nil {
		fmt.Fprintf(stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags parses the command line. done reports that the program
// should exit with code without starting the editor.
func parseFlags(args []string, stdout, stderr io.Writer) (opts app.Options, code int, done bool) {
	fset := flag.NewFlagSet("mte", flag.ContinueOnError)
	fset.SetOutput(stderr)

	var showVersion bool
	fset.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fset.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fset.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fset.BoolVar(&opts.WatchConfig, "watch-config", false, "Reload the configuration file when it changes")
	fset.BoolVar(&opts.Debug, "debug", false, "Check editor invariants after every event and log at debug level")
	fset.BoolVar(&showVersion, "version", false, "Show version information")

	fset.Usage = func() {
		fmt.Fprintf(stderr, "mte - a small screen-oriented text editor\n\n")
		fmt.Fprintf(stderr, "Usage: mte [options] <file>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fset.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  arrows, ^A/^E     move; line start/end\n")
		fmt.Fprintf(stderr, "  ^H/Backspace, ^K  delete left; kill to end of line\n")
		fmt.Fprintf(stderr, "  Enter/^J          split line\n")
		fmt.Fprintf(stderr, "  ^X/^S             save\n")
		fmt.Fprintf(stderr, "  Tab/^I            command: /text ?text :N ^ $\n")
		fmt.Fprintf(stderr, "  ^C                quit\n")
	}

	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, true
		}
		return opts, 2, true
	}

	if showVersion {
		fmt.Fprintf(stdout, "mte %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, 0, true
	}

	if fset.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: exactly one file argument is required")
		fset.Usage()
		return opts, 1, true
	}
	opts.Path = fset.Arg(0)
	return opts, 0, false
}
