package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: www [flags] < input")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Turn text lines into a searchable HTML page and open it in a browser.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -i, --input <path>        Read from file instead of standard input")
	fmt.Fprintln(w, "  -e, --encoding <name>     Encoding of --input, e.g. utf_8, utf_16_le, cp1251")
	fmt.Fprintln(w, "      --trim                Strip trailing whitespace from lines")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Write the page to this path (default: temp file)")
	fmt.Fprintln(w, "      --title <s>           Page title (default: input file name or \"stdin\")")
	fmt.Fprintln(w, "      --template <name>     Page template name or .html file path")
	fmt.Fprintln(w, "      --style <name>        Extra CSS style name or .css file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom templates/ and styles/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Testing:")
	fmt.Fprintln(w, "      --test                Do all the work but do not open a browser")
	fmt.Fprintln(w, "      --stat                Print lines fetched and generated")
	fmt.Fprintln(w, "      --sanitydir <dir>     Run every *-enc-<encoding>.* file of a directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -v, --verbose             Print the output file name")
	fmt.Fprintln(w, "      --debug               Log diagnostics to stderr")
	fmt.Fprintln(w, "      --version             Print version")
	fmt.Fprintln(w, "  -h, --help                Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  WWW_CONFIG, WWW_ENCODING, WWW_OUTPUT_DIR, WWW_TEMPLATE, WWW_STYLE, WWW_VIEWER")
}
