package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/region-color/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const name = "region-color"

func main() {
	// Configure logging to stderr (stdout is for the report)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	opts, err := cli.Parse(name, os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fail(err)
	}

	if opts.ShowVersion {
		fmt.Printf("%s %s\n", name, Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	debug := cli.NewDebugLogger(os.Getenv(cli.LogLevelEnv), os.Stderr)
	debug.Printf("%s v%s (built %s, commit %s)", name, Version, BuildTime, GitCommit)

	if err := cli.Run(opts, os.Stdout, os.Stderr, debug); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	var uerr *cli.UsageError
	if errors.As(err, &uerr) {
		os.Exit(2)
	}
	os.Exit(1)
}
