// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"runtime"
	"strings"

	"github.com/alnah/go-www/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForViewer returns hints for a viewer that failed to open the page.
// Headless sessions (CI, containers, no display on Linux) get --test.
func ForViewer() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
	noDisplay := runtime.GOOS == "linux" &&
		os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""

	if inCI || IsInContainer() || noDisplay {
		hints = append(hints, "no desktop session detected, use --test to skip the viewer")
	}
	if os.Getenv("WWW_VIEWER") == "" {
		hints = append(hints, "set WWW_VIEWER or viewer.command to choose a browser")
	}

	return formatHints(hints)
}

// ForInputNotFound returns a hint for a missing --input file.
func ForInputNotFound() string {
	return format("omit --input to read from standard input")
}

// ForUnknownEncoding returns hints listing well-known encoding names.
func ForUnknownEncoding(known []string) string {
	if len(known) == 0 {
		return format("use a Python codec name (utf_8, cp1251) or a WHATWG label")
	}
	return format("known: " + strings.Join(known, ", "))
}

// ForMalformedInput returns a hint for input that does not decode.
func ForMalformedInput() string {
	return format("pass the file's real charset with --encoding")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-www/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-www") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check the directory exists and is writable")
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("pass a path to an .html file with one <!-- OUTPUT --> line")
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to an .html file")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMarker returns a hint for templates with a wrong marker layout.
func ForMarker() string {
	return format("a template needs exactly one line with <!-- OUTPUT --> inside <body>")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
