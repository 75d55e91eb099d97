package main

import (
	"errors"
	"os"

	inv2pdf "github.com/alnah/go-inv2pdf"
	"github.com/alnah/go-inv2pdf/internal/config"
)

// Exit codes for the inv2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // PDF generated
	ExitGeneral = 1 // General error, including empty inputs (no data/templates/invoices)
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, inv2pdf.ErrBrowserConnect) ||
		errors.Is(err, inv2pdf.ErrPageCreate) ||
		errors.Is(err, inv2pdf.ErrPageLoad) ||
		errors.Is(err, inv2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, inv2pdf.ErrInvalidPageSize) ||
		errors.Is(err, inv2pdf.ErrInvalidOrientation) ||
		errors.Is(err, inv2pdf.ErrInvalidMargin) {
		return ExitUsage
	}

	// Empty inputs and everything else (exit 1): missing data files,
	// missing templates, zero invoices, malformed data, template errors.
	return ExitGeneral
}
