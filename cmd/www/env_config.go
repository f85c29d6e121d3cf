package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alnah/go-www/internal/config"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // WWW_CONFIG: config file name or path
	Encoding   string // WWW_ENCODING: encoding of --input
	OutputDir  string // WWW_OUTPUT_DIR: temp page directory
	Template   string // WWW_TEMPLATE: template name or path
	Style      string // WWW_STYLE: extra CSS name or path
	Viewer     string // WWW_VIEWER: viewer command line
}

// knownEnvVars lists valid WWW_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"WWW_CONFIG":     true,
	"WWW_ENCODING":   true,
	"WWW_OUTPUT_DIR": true,
	"WWW_TEMPLATE":   true,
	"WWW_STYLE":      true,
	"WWW_VIEWER":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("WWW_CONFIG"),
		Encoding:   os.Getenv("WWW_ENCODING"),
		OutputDir:  os.Getenv("WWW_OUTPUT_DIR"),
		Template:   os.Getenv("WWW_TEMPLATE"),
		Style:      os.Getenv("WWW_STYLE"),
		Viewer:     os.Getenv("WWW_VIEWER"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized WWW_* variable,
// sorted by name.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, "WWW_") && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config values with the variables that are set.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Encoding != "" {
		cfg.Input.Encoding = env.Encoding
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Template != "" {
		cfg.Page.Template = env.Template
	}
	if env.Style != "" {
		cfg.Page.Style = env.Style
	}
	if env.Viewer != "" {
		cfg.Viewer.Command = env.Viewer
	}
}
