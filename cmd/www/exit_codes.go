package main

import (
	"errors"
	"os"

	"github.com/alnah/go-www"
	"github.com/alnah/go-www/internal/config"
)

// Exit codes for www CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run or help
	ExitGeneral = 1 // General/unexpected error, interrupted batch
	ExitUsage   = 2 // Invalid flags, config, encoding name or template
	ExitIO      = 3 // Input not found, unreadable or undecodable, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, www.ErrReadInput) ||
		errors.Is(err, www.ErrMalformedInput) ||
		errors.Is(err, www.ErrWriteOutput) ||
		errors.Is(err, www.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/template errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrSanityDir) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, www.ErrUnknownEncoding) ||
		errors.Is(err, www.ErrTemplateNotFound) ||
		errors.Is(err, www.ErrStyleNotFound) ||
		errors.Is(err, www.ErrInvalidAssetPath) ||
		errors.Is(err, www.ErrMarkerMissing) ||
		errors.Is(err, www.ErrMarkerDuplicate) ||
		errors.Is(err, www.ErrMarkerOutsideBody) {
		return ExitUsage
	}

	return ExitGeneral
}
