package www

import (
	"errors"

	"github.com/alnah/go-www/internal/charset"
	"github.com/alnah/go-www/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Template errors.
	ErrMarkerMissing     = errors.New("template has no output marker line")
	ErrMarkerDuplicate   = errors.New("template has more than one output marker line")
	ErrMarkerOutsideBody = pipeline.ErrMarkerOutsideBody

	ErrNilTemplate = errors.New("renderer has no template")

	// I/O errors.
	ErrNilReader   = errors.New("input reader is nil")
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")

	// Encoding errors.
	ErrUnknownEncoding = charset.ErrUnknownEncoding
	ErrMalformedInput  = charset.ErrMalformedInput

	// Asset loading errors.
	ErrTemplateNotFound = errors.New("template not found")
	ErrStyleNotFound    = errors.New("style not found")
	ErrAssetRead        = errors.New("failed to read asset")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
