// Package cli turns command-line arguments into a region-averaging run.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ironsheep/region-color/internal/batch"
	"github.com/ironsheep/region-color/internal/imaging"
	"github.com/ironsheep/region-color/internal/region"
	"github.com/ironsheep/region-color/internal/report"
)

// LogLevelEnv names the environment variable that enables debug logging.
const LogLevelEnv = "REGION_COLOR_LOG_LEVEL"

// UsageError reports missing or malformed command-line input.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string { return "usage: " + e.Reason }

// Options is the parsed command line.
type Options struct {
	Files       []string
	Regions     []region.Region
	Format      report.Format
	Jobs        int
	NoColor     bool
	ShowVersion bool
}

// stringList collects every value of a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, " ") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse reads flags and file arguments. Flags may appear before, between, or
// after file names; everything after "--" is a file name.
//
// Region specs are parsed and checked for inverted corners here, so a bad
// spec fails before any image is opened. flag.ErrHelp is returned unchanged
// when -h or --help is given.
func Parse(name string, args []string, stderr io.Writer) (*Options, error) {
	var (
		specs stringList
		csv   bool
		opts  Options
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&specs, "region", "region `spec` [label=]x1,y1-x2,y2 (repeatable)")
	fs.Var(&specs, "r", "shorthand for --region")
	fs.BoolVar(&csv, "csv", false, "print CSV instead of swatches")
	fs.BoolVar(&csv, "c", false, "shorthand for --csv")
	fs.IntVar(&opts.Jobs, "jobs", 0, "maximum files processed at once (0 = one per file)")
	fs.IntVar(&opts.Jobs, "j", 0, "shorthand for --jobs")
	fs.BoolVar(&opts.NoColor, "no-color", false, "print swatches without background colors")
	fs.BoolVar(&opts.ShowVersion, "version", false, "print version information")
	fs.BoolVar(&opts.ShowVersion, "v", false, "shorthand for --version")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s - average region colors in OkLab space\n\n", name)
		fmt.Fprintf(out, "Usage: %s [options] -r <spec> [-r <spec>...] <image>...\n\n", name)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Environment variables:")
		fmt.Fprintf(out, "  %s=debug    Enable debug logging\n", LogLevelEnv)
	}

	rest, trailing := splitTerminator(fs, args)
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, &UsageError{Reason: err.Error()}
		}
		remaining := fs.Args()
		if len(remaining) == 0 {
			break
		}
		opts.Files = append(opts.Files, remaining[0])
		rest = remaining[1:]
	}
	opts.Files = append(opts.Files, trailing...)

	if opts.ShowVersion {
		return &opts, nil
	}
	if csv {
		opts.Format = report.CSV
	}

	if len(opts.Files) == 0 {
		return nil, &UsageError{Reason: "no image files given"}
	}
	if len(specs) == 0 {
		return nil, &UsageError{Reason: "at least one --region is required"}
	}

	regions, err := region.ParseAll(specs)
	if err != nil {
		return nil, err
	}
	for i, r := range regions {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("region %d: %w", i+1, err)
		}
	}
	opts.Regions = regions

	return &opts, nil
}

// splitTerminator splits args at the first "--" that is not the value of a
// flag, dropping the "--" itself.
func splitTerminator(fs *flag.FlagSet, args []string) (flags, files []string) {
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return args[:i], args[i+1:]
		}
		if takesValue(fs, args[i]) {
			i++
		}
	}
	return args, nil
}

// takesValue reports whether arg is a non-boolean flag of fs whose value is
// the next argument.
func takesValue(fs *flag.FlagSet, arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	name := strings.TrimPrefix(arg[1:], "-")
	if name == "" || strings.Contains(name, "=") {
		return false
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
		return false
	}
	return true
}

// NewDebugLogger returns a logger writing to w when level is "debug", and a
// discarding logger otherwise.
func NewDebugLogger(level string, w io.Writer) *log.Logger {
	if !strings.EqualFold(strings.TrimSpace(level), "debug") {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "debug: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// Run averages every region in every file and writes the report to stdout.
// Nothing is written to stdout unless every file succeeds.
func Run(opts *Options, stdout, stderr io.Writer, debug *log.Logger) error {
	fmt.Fprintf(stderr, "Parsing %d files...\n", len(opts.Files))
	for i, r := range opts.Regions {
		debug.Printf("region %d: %s (%dx%d)", i+1, r, r.Width(), r.Height())
	}

	runner := batch.NewRunner(imaging.NewImageCache(),
		batch.WithJobs(opts.Jobs),
		batch.WithDebugLog(debug),
	)
	results, err := runner.Run(opts.Files, opts.Regions)
	if err != nil {
		return err
	}

	renderer := lipgloss.NewRenderer(stdout)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return report.Write(stdout, opts.Format, report.NewSwatchStyler(renderer), opts.Regions, results)
}
