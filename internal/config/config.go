package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-www/internal/fileutil"
	"github.com/alnah/go-www/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxEncodingLength = 40   // "utf_16_le", "windows-1251"
	MaxTitleLength    = 200  // page <title>
	MaxNameLength     = 100  // template or style name
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxCommandLength  = 1024 // viewer command line
)

// userConfigDirName is the directory searched under os.UserConfigDir.
const userConfigDirName = "go-www"

// Config holds all configuration for page generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Page   PageConfig   `yaml:"page"`
	Render RenderConfig `yaml:"render"`
	Viewer ViewerConfig `yaml:"viewer"`
}

// InputConfig defines how --input files are read.
type InputConfig struct {
	Encoding string `yaml:"encoding"` // Codec name for --input (empty = UTF-8)
}

// OutputConfig defines where generated pages go.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Temp page directory (empty = os.TempDir)
}

// PageConfig defines the page template and decoration.
type PageConfig struct {
	Title     string `yaml:"title"`     // Empty = input file name or "stdin"
	Template  string `yaml:"template"`  // Template name or path (empty = "default")
	Style     string `yaml:"style"`     // Extra CSS name or path (empty = none)
	AssetPath string `yaml:"assetPath"` // Custom asset directory (empty = embedded only)
}

// RenderConfig defines line rendering options.
type RenderConfig struct {
	TrimTrailingSpace bool `yaml:"trimTrailingSpace"`
}

// ViewerConfig defines how the generated page is opened.
type ViewerConfig struct {
	Command string `yaml:"command"` // Empty = platform default
}

// Validate checks field lengths. Called by LoadConfig.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"input.encoding", c.Input.Encoding, MaxEncodingLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"page.title", c.Page.Title, MaxTitleLength},
		{"page.template", c.Page.Template, MaxPathLength},
		{"page.style", c.Page.Style, MaxPathLength},
		{"page.assetPath", c.Page.AssetPath, MaxPathLength},
		{"viewer.command", c.Viewer.Command, MaxCommandLength},
	}
	for _, chk := range checks {
		if err := validateFieldLength(chk.field, chk.value, chk.max); err != nil {
			return err
		}
	}

	// Names (not paths) are bounded tighter
	if c.Page.Template != "" && !fileutil.IsFilePath(c.Page.Template) {
		if err := validateFieldLength("page.template", c.Page.Template, MaxNameLength); err != nil {
			return err
		}
	}
	if c.Page.Style != "" && !fileutil.IsFilePath(c.Page.Style) {
		if err := validateFieldLength("page.style", c.Page.Style, MaxNameLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Page: PageConfig{Template: "default"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched in the current directory and the user config directory.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dump renders the configuration as YAML.
func (c *Config) Dump() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// SearchPaths lists the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, userConfigDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
