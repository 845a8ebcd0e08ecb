// Command views runs the walkthroughs in package demo.
//
//	views [-demo ranges|spaceship|span|all] [-v]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kabu1204/go-views/demo"
)

type walkthrough struct {
	name string
	run  func(demo.Runner) int
}

var walkthroughs = []walkthrough{
	{"ranges", demo.Runner.Ranges},
	{"spaceship", demo.Runner.Spaceship},
	{"span", demo.Runner.Span},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var which string
	var verbose bool
	myflag := flag.NewFlagSet("views", flag.ContinueOnError)
	myflag.SetOutput(stderr)
	myflag.StringVar(&which, "demo", "all", "Walkthrough to run: ranges, spaceship, span or all")
	myflag.BoolVar(&verbose, "v", false, "Log each walkthrough")
	if err := myflag.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slogger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	selected, err := selectWalkthroughs(which)
	if err != nil {
		slogger.Error("Bad -demo flag", "err", err)
		return 2
	}

	runner := demo.Runner{Out: stdout}
	status := 0
	for _, w := range selected {
		slogger.Debug("Running walkthrough", "name", w.name)
		rc := w.run(runner)
		fmt.Fprintln(stdout)
		slogger.Debug("Walkthrough done", "name", w.name, "status", rc)
		status += rc
	}
	return status
}

func selectWalkthroughs(which string) ([]walkthrough, error) {
	if which == "all" {
		return walkthroughs, nil
	}
	for _, w := range walkthroughs {
		if w.name == which {
			return []walkthrough{w}, nil
		}
	}
	return nil, fmt.Errorf("unknown walkthrough %q", which)
}
