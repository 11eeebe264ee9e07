package ot

import (
	"errors"
	"fmt"
)

// ErrTableNotFound is returned when asking a font for a table it does not contain.
var ErrTableNotFound = errors.New("font table not found")

// ErrUnsupportedNameEncoding is returned for 'name' strings in platform
// encodings we cannot convert to UTF-8.
var ErrUnsupportedNameEncoding = errors.New("unsupported name encoding")

// FontError represents an error encountered while decoding a font.
// It wraps the underlying error, usually one of the error kinds of package wire.
type FontError struct {
	Table   Tag    // The OpenType table where the error occurred (e.g., "maxp"), 0 for the font header
	Section string // Specific section within the table (e.g., "directory", "hMetrics")
	Offset  uint32 // Byte offset in the font file where the error occurred (0 if unknown)
	Err     error  // The underlying error
}

// Error implements the error interface.
func (e *FontError) Error() string {
	table := "font"
	if e.Table != 0 {
		table = e.Table.String()
	}
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s at offset %d: %v", table, e.Section, e.Offset, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", table, e.Section, e.Err)
}

// Unwrap returns the underlying error.
func (e *FontError) Unwrap() error {
	return e.Err
}

func errFont(table Tag, section string, offset uint32, err error) error {
	tracer().Debugf("font error in %s/%s: %v", table, section, err)
	return &FontError{Table: table, Section: section, Offset: offset, Err: err}
}
