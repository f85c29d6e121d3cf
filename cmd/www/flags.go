package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps every command line parsing error.
var ErrUsage = errors.New("invalid usage")

// cliFlags holds every flag of the www command.
type cliFlags struct {
	// Input and batch
	help      bool
	input     string
	encoding  string
	test      bool
	verbose   bool
	stat      bool
	sanitydir string

	// Output and configuration
	output      string
	config      string
	printConfig bool

	// Page
	title     string
	template  string
	style     string
	assetPath string
	trim      bool

	// Diagnostics
	debug   bool
	version bool
}

// newFlagSet builds the flag set bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("www", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.BoolVarP(&f.help, "help", "h", false, "print this help message")
	fs.StringVarP(&f.input, "input", "i", "", "read from file instead of standard input")
	fs.StringVarP(&f.encoding, "encoding", "e", "", "encoding of --input (e.g. utf_8, utf_16_le, cp1251)")
	fs.BoolVar(&f.test, "test", false, "do all the work but do not open a browser")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print the output file name")
	fs.BoolVar(&f.stat, "stat", false, "print lines fetched and generated")
	fs.StringVar(&f.sanitydir, "sanitydir", "", "run every *-enc-<encoding>.* file of a directory")

	fs.StringVarP(&f.output, "output", "o", "", "write the page to this path")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")

	fs.StringVar(&f.title, "title", "", "page title")
	fs.StringVar(&f.template, "template", "", "page template name or file path")
	fs.StringVar(&f.style, "style", "", "extra CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.trim, "trim", false, "strip trailing whitespace from lines")

	fs.BoolVar(&f.debug, "debug", false, "log diagnostics to stderr")
	fs.BoolVar(&f.version, "version", false, "print version")

	return fs
}

// parseFlags parses args (without the program name).
// Positional arguments are rejected.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, strings.Join(fs.Args(), " "))
	}

	// --test implies --verbose
	if f.test {
		f.verbose = true
	}

	return f, nil
}
