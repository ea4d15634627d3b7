package main

import (
	"errors"
	"os"

	filingkit "github.com/filingkit/filingkit"
	"github.com/filingkit/filingkit/internal/config"
	"github.com/filingkit/filingkit/internal/content"
)

// Exit codes for the filingkit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document rendered
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments, config, or content
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // PDF rendering failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering errors (exit 4)
	if errors.Is(err, filingkit.ErrRender) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/content errors (exit 2)
	if errors.Is(err, ErrNoDocument) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrBadExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, content.ErrUnknownDocument) ||
		errors.Is(err, content.ErrContentParse) ||
		errors.Is(err, content.ErrBadDefinition) ||
		errors.Is(err, filingkit.ErrDuplicateStyle) ||
		errors.Is(err, filingkit.ErrUnknownStyle) ||
		errors.Is(err, filingkit.ErrEmptyText) ||
		errors.Is(err, filingkit.ErrMalformedTable) ||
		errors.Is(err, filingkit.ErrMarkup) ||
		errors.Is(err, filingkit.ErrInvalidPageSize) ||
		errors.Is(err, filingkit.ErrInvalidMargin) {
		return ExitUsage
	}

	return ExitGeneral
}
