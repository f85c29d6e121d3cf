package assets

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultTemplateName is the template used when none is configured.
const DefaultTemplateName = "default"

// Sentinel errors for asset lookups.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName rejects names that could select a file other than
	// {dir}/{name}{ext}: separators, dots, NUL.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath means --asset-path is not a readable directory.
	ErrInvalidBasePath = errors.New("invalid asset directory")

	ErrAssetRead     = errors.New("failed to read asset")
	ErrPathTraversal = errors.New("asset resolves outside the asset directory")
)

// AssetLoader loads page templates and extra styles by bare name.
type AssetLoader interface {
	// LoadStyle returns styles/{name}.css.
	LoadStyle(name string) (string, error)
	// LoadTemplate returns templates/{name}.html.
	LoadTemplate(name string) (string, error)
}

// kind describes where one sort of asset lives and how a miss is reported.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = kind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// file returns the slash-separated path of name relative to an asset root.
func (k kind) file(name string) string {
	return k.dir + "/" + name + k.ext
}

// missing wraps k's not-found sentinel with name.
func (k kind) missing(name string) error {
	return fmt.Errorf("%w: %q", k.notFound, name)
}

// ValidateAssetName checks that name is a bare asset name such as "dark".
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
