package inv2pdf

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alnah/go-inv2pdf/internal/jsonutil"
)

// LoadDataFile reads one data file into its intermediate representation.
// The format is derived from the file extension. Any decode or syntax
// error aborts the load; there is no row-level recovery.
func LoadDataFile(path string) (*RawData, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, extOf(path))
	}

	switch format {
	case FormatCSV:
		rows, err := loadCSV(path)
		if err != nil {
			return nil, err
		}
		return &RawData{Format: FormatCSV, Rows: rows}, nil
	case FormatJSON:
		doc, err := loadJSON(path)
		if err != nil {
			return nil, err
		}
		return &RawData{Format: FormatJSON, Document: doc}, nil
	case FormatXLSX:
		rows, err := loadXLSX(path)
		if err != nil {
			return nil, err
		}
		return &RawData{Format: FormatXLSX, Rows: rows}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// loadCSV parses a comma-separated file whose first row names the fields.
// Returns one Row per data row, preserving file order.
func loadCSV(path string) ([]Row, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from directory listing
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s", ErrCSVNoHeader, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCSVParse, err)
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCSVParse, err)
		}
		rows = append(rows, rowFromRecord(header, record))
	}
	return rows, nil
}

// loadJSON parses a single JSON document of any shape.
func loadJSON(path string) (any, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from directory listing
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := jsonutil.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONParse, err)
	}
	return doc, nil
}

// loadXLSX reads the first sheet of a workbook, treating the first row
// as the header. Cells are the formatted string values excelize reports.
func loadXLSX(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrXLSXParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrXLSXNoSheet, path)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrXLSXParse, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCSVNoHeader, path)
	}

	header := records[0]
	var rows []Row
	for _, record := range records[1:] {
		rows = append(rows, rowFromRecord(header, record))
	}
	return rows, nil
}

// rowFromRecord zips a header with one record. Short records leave the
// remaining fields absent; extra cells beyond the header are ignored.
func rowFromRecord(header, record []string) Row {
	row := make(Row, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || i >= len(record) {
			continue
		}
		row[name] = record[i]
	}
	return row
}
