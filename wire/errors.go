package wire

import "fmt"

// Error is the kind of failure a decode step reports.
// Errors are comparable and may be checked with errors.Is.
type Error int

const (
	// ErrUnexpectedEOF reports a buffer too short for the value to decode.
	ErrUnexpectedEOF Error = iota + 1
	// ErrInvalidData reports a malformed value, e.g. an unknown font version tag.
	ErrInvalidData
	// ErrUnsupportedCmapFormat reports a character map subtable format we cannot read.
	ErrUnsupportedCmapFormat
	// ErrUnsupportedVersion reports an unknown discriminant of a versioned table.
	ErrUnsupportedVersion
	// ErrTTCFUnsupported reports a font collection where a single font was expected.
	ErrTTCFUnsupported
)

func (e Error) Error() string {
	switch e {
	case ErrUnexpectedEOF:
		return "unexpected end of font data"
	case ErrInvalidData:
		return "invalid font data"
	case ErrUnsupportedCmapFormat:
		return "unsupported cmap format"
	case ErrUnsupportedVersion:
		return "unsupported table version"
	case ErrTTCFUnsupported:
		return "font collections (ttcf) are not supported"
	}
	return fmt.Sprintf("font decode error %d", int(e))
}

// SchemaError reports a mistake in the definition of a decodable type, e.g. a
// record declaring more parameters than allowed, or a call passing the wrong
// number of parameters. It is a programming error, not a property of the font
// data, and is reported before any byte is decoded.
type SchemaError struct {
	Type  string // name of the record or type
	Field string // offending field, if any
	Issue string // human-readable description
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema %s/%s: %s", e.Type, e.Field, e.Issue)
	}
	return fmt.Sprintf("schema %s: %s", e.Type, e.Issue)
}

func schemaErr(typ, field, format string, args ...any) *SchemaError {
	return &SchemaError{Type: typ, Field: field, Issue: fmt.Sprintf(format, args...)}
}
