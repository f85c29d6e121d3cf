package www

import "io"

// Input is the text to convert.
type Input struct {
	// Reader supplies the raw input bytes. Required.
	Reader io.Reader

	// Encoding names the charset of Reader (e.g. "utf_8", "cp1251",
	// "windows-1252"). Empty means UTF-8. Decoding is strict.
	Encoding string

	// Title replaces the page <title> text. Markup is stripped. Empty keeps
	// the template's own title.
	Title string
}

// Result holds the generated page and its counters.
type Result struct {
	HTML  []byte
	Stats Stats
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	templateName      string
	templateContent   string
	styleInput        string
	assetPath         string
	trimTrailingSpace bool
}

// WithTemplate selects the page template by embedded name or file path.
// The default is the "default" template.
func WithTemplate(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.templateName = nameOrPath
	}
}

// WithTemplateContent uses text as the page template, taking precedence
// over WithTemplate.
func WithTemplateContent(text string) Option {
	return func(c *Converter) {
		c.cfg.templateContent = text
	}
}

// WithStyle adds extra CSS to the page, by style name or file path.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}

// WithAssetPath sets a directory searched for templates and styles before
// the embedded ones. See the assets layout in the package documentation.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithTrimTrailingSpace strips all trailing whitespace from input lines.
func WithTrimTrailingSpace(trim bool) Option {
	return func(c *Converter) {
		c.cfg.trimTrailingSpace = trim
	}
}
