package inv2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTemplatePath = errors.New("template path cannot be empty")
	ErrEmptyInvoiceID    = errors.New("invoice id cannot be empty")
	ErrTemplateRender    = errors.New("template rendering failed")
	ErrPDFGeneration     = errors.New("PDF generation failed")
	ErrBrowserConnect    = errors.New("failed to connect to browser")
	ErrPageCreate        = errors.New("failed to create browser page")
	ErrPageLoad          = errors.New("failed to load page")

	// Data loading errors.
	ErrUnsupportedFormat = errors.New("unsupported data file format")
	ErrCSVParse          = errors.New("CSV parsing failed")
	ErrCSVNoHeader       = errors.New("CSV file has no header row")
	ErrJSONParse         = errors.New("JSON parsing failed")
	ErrXLSXParse         = errors.New("XLSX parsing failed")
	ErrXLSXNoSheet       = errors.New("XLSX file has no sheets")

	// Normalization errors.
	ErrInvalidQty   = errors.New("quantity is not numeric")
	ErrInvalidPrice = errors.New("price is not numeric")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
