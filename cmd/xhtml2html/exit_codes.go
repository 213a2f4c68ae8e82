package main

import (
	"errors"
	"os"

	xhtml2html "github.com/alnah/go-xhtml2html"
	"github.com/alnah/go-xhtml2html/internal/config"
)

// Exit codes for the xhtml2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitConvert = 4 // Parse or transform failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Conversion errors (exit 4)
	if errors.Is(err, xhtml2html.ErrInvalidDocument) ||
		errors.Is(err, xhtml2html.ErrTransform) {
		return ExitConvert
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrMissingOutput) ||
		errors.Is(err, ErrInvalidOutputName) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrUnknownPolicy) ||
		errors.Is(err, xhtml2html.ErrEmptyDocument) ||
		errors.Is(err, xhtml2html.ErrInvalidPolicy) {
		return ExitUsage
	}

	return ExitGeneral
}
