// Package jsonutil wraps JSON decoding to isolate the external dependency.
// This allows swapping the underlying JSON library without modifying callers.
package jsonutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// MaxInputSize limits JSON input to prevent memory exhaustion (default 8MB).
var MaxInputSize = 8 << 20

var (
	ErrNilData       = errors.New("jsonutil: nil or empty data")
	ErrInputTooLarge = errors.New("jsonutil: input exceeds maximum size")
	ErrTrailingData  = errors.New("jsonutil: trailing data after JSON document")
)

// Decode parses a single JSON document of any shape (object, array, or
// scalar). Numbers decode as json.Number so the source numeric type is
// preserved for downstream consumers.
func Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, ErrNilData
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("jsonutil: %w", err)
	}

	// A data file must hold exactly one document.
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, ErrTrailingData
	}
	return v, nil
}

// Unmarshal decodes JSON into a typed destination.
func Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("jsonutil: %w", err)
	}
	return nil
}
