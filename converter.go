package www

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alnah/go-www/internal/assets"
	"github.com/alnah/go-www/internal/charset"
	"github.com/alnah/go-www/internal/fileutil"
	"github.com/alnah/go-www/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.CSSInjector   = (*pipeline.CSSInjection)(nil)
	_ pipeline.TitleInjector = (*pipeline.TitleInjection)(nil)
)

// Converter turns text into a searchable HTML page.
// Create with NewConverter and reuse it for any number of inputs.
// A Converter is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	cssInjector   pipeline.CSSInjector
	titleInjector pipeline.TitleInjector
	titlePolicy   *bluemonday.Policy

	// page is the template text with style CSS already injected.
	page string
}

// NewConverter creates a Converter with default configuration.
// Use options to pick a template, a style or an asset directory.
// Returns error if an asset cannot be loaded or the template is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{templateName: assets.DefaultTemplateName},
		assetLoader:   assets.NewEmbeddedLoader(),
		cssInjector:   &pipeline.CSSInjection{},
		titleInjector: &pipeline.TitleInjection{},
		titlePolicy:   bluemonday.StrictPolicy(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	page, err := c.resolveTemplate()
	if err != nil {
		return nil, err
	}
	css, err := c.resolveStyle()
	if err != nil {
		return nil, err
	}
	c.page = c.cssInjector.InjectCSS(context.Background(), page, css)

	// Fail early on a bad marker layout
	if _, err := ParseTemplate(c.page); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert decodes input, reads it completely and renders the page in memory.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Reader == nil {
		return nil, ErrNilReader
	}

	decoded, _, err := charset.NewReader(input.Reader, input.Encoding)
	if err != nil {
		return nil, err
	}

	page := c.page
	if title := c.sanitizeTitle(input.Title); title != "" {
		page = c.titleInjector.InjectTitle(ctx, page, title)
	}
	tmpl, err := ParseTemplate(page)
	if err != nil {
		return nil, err
	}

	renderer := &Renderer{Template: tmpl, TrimTrailingSpace: c.cfg.trimTrailingSpace}

	var buf bytes.Buffer
	stats, err := renderer.Render(ctx, decoded, &buf)
	if err != nil {
		return nil, err
	}

	return &Result{HTML: buf.Bytes(), Stats: stats}, nil
}

// sanitizeTitle strips markup and returns plain text.
func (c *Converter) sanitizeTitle(title string) string {
	return strings.TrimSpace(html.UnescapeString(c.titlePolicy.Sanitize(title)))
}

// resolveTemplate returns the template text from content, a file path or
// the asset loader.
func (c *Converter) resolveTemplate() (string, error) {
	if c.cfg.templateContent != "" {
		return c.cfg.templateContent, nil
	}
	return c.loadAsset(c.cfg.templateName, c.assetLoader.LoadTemplate, ErrTemplateNotFound)
}

// resolveStyle returns the extra CSS, or "" when no style is set.
func (c *Converter) resolveStyle() (string, error) {
	if c.cfg.styleInput == "" {
		return "", nil
	}
	return c.loadAsset(c.cfg.styleInput, c.assetLoader.LoadStyle, ErrStyleNotFound)
}

// loadAsset reads nameOrPath from disk when it looks like a path or has an
// extension, otherwise through load. Not-found errors are wrapped in notFound.
func (c *Converter) loadAsset(nameOrPath string, load func(string) (string, error), notFound error) (string, error) {
	if fileutil.IsFilePath(nameOrPath) || filepath.Ext(nameOrPath) != "" {
		content, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided path
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", notFound, nameOrPath)
			}
			return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		return string(content), nil
	}

	content, err := load(nameOrPath)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) || errors.Is(err, assets.ErrStyleNotFound) {
			return "", fmt.Errorf("%w: %q", notFound, nameOrPath)
		}
		if errors.Is(err, assets.ErrInvalidAssetName) {
			return "", fmt.Errorf("%w: %v", notFound, err)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return content, nil
}
