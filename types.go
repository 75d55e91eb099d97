package inv2pdf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Format identifies the source format of a data file.
type Format string

// Supported data file formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// FormatForPath maps a file extension to its data format.
// The second return value is false for unsupported extensions.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(extOf(path)) {
	case ".csv":
		return FormatCSV, true
	case ".json":
		return FormatJSON, true
	case ".xlsx":
		return FormatXLSX, true
	}
	return "", false
}

// extOf returns the extension of path including the dot.
func extOf(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i:]
	}
	return ""
}

// Row is one record of a tabular source: header name -> cell value.
type Row map[string]string

// RawData is the intermediate representation produced by LoadDataFile,
// consumed once by Normalize and then discarded.
//
// Tabular sources (CSV, XLSX) populate Rows in file order.
// JSON sources populate Document with the decoded value; numbers are
// json.Number so the source numeric type survives normalization.
type RawData struct {
	Format   Format
	Rows     []Row
	Document any
}

// LineItem is the canonical unit of an invoice: one product/price/qty
// triple. Price is a decimal so values round-trip exactly from source
// to template.
type LineItem struct {
	Product string
	Price   decimal.Decimal
	Qty     int
}

// InvoiceSet maps an invoice id to its ordered line items.
// Every line item belongs to exactly one id. Iteration order is not
// meaningful; use SortedIDs for display.
type InvoiceSet map[string][]LineItem

// SortedIDs returns all invoice ids in ascending lexicographic order.
func (s InvoiceSet) SortedIDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SanitizeID makes an invoice id safe for use in a file name.
// Every rune that is not a letter, digit, '-' or '_' becomes '_'.
func SanitizeID(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// OutputFileName returns the PDF file name for an invoice id,
// e.g. "invoice_A1.pdf".
func OutputFileName(id string) string {
	return "invoice_" + SanitizeID(id) + ".pdf"
}

// Input holds everything needed to produce one PDF.
type Input struct {
	TemplatePath string        // HTML template file
	InvoiceID    string        // invoice to render
	Items        []LineItem    // line items for that invoice
	CSS          string        // extra CSS appended after the font fallback
	Page         *PageSettings // nil means defaults (US Letter, portrait)
}

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}
	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Paper dimensions in inches, portrait orientation.
var paperSizes = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// dimensions returns paper width and height in inches, honoring
// orientation. Falls back to US Letter portrait for a nil receiver.
func (p *PageSettings) dimensions() (width, height float64) {
	size, orientation := PageSizeLetter, OrientationPortrait
	if p != nil {
		size = strings.ToLower(p.Size)
		orientation = strings.ToLower(p.Orientation)
	}
	dims, ok := paperSizes[size]
	if !ok {
		dims = paperSizes[PageSizeLetter]
	}
	if orientation == OrientationLandscape {
		return dims[1], dims[0]
	}
	return dims[0], dims[1]
}

// margin returns the configured margin or the default for nil settings.
func (p *PageSettings) margin() float64 {
	if p == nil || p.Margin == 0 {
		return DefaultMargin
	}
	return p.Margin
}
