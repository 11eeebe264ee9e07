package ot

import (
	"fmt"

	"github.com/cbreeden/fontkit/wire"
)

// Version is the kind of outlines an OpenType font contains, as announced by the
// first four bytes of the font (the sfntVersion).
//
// OpenType fonts that contain TrueType outlines use the value of 0x00010000.
// OpenType fonts containing CFF data (version 1 or 2) use 'OTTO'.
// The Apple specification for TrueType fonts allows for 'true' and 'typ1',
// which we treat as TrueType.
type Version int

const (
	VersionOpenType Version = iota + 1 // CFF outlines, 'OTTO'
	VersionTrueType                    // TrueType outlines
)

var (
	tagOTTO = wire.T("OTTO")
	tagTrue = wire.T("true")
	tagTyp1 = wire.T("typ1")
	tagTTCF = wire.T("ttcf")
)

func (Version) StaticSize() int { return 4 }
func (Version) EncodeSize() int { return 4 }

// Decode classifies the sfntVersion tag. Font collections ('ttcf') are reported
// as wire.ErrTTCFUnsupported, any unknown tag as wire.ErrInvalidData.
func (v *Version) Decode(b wire.View) error {
	tag, err := wire.Decode[wire.Tag](b)
	if err != nil {
		return err
	}
	switch tag {
	case tagOTTO:
		*v = VersionOpenType
	case 0x00010000, tagTrue, tagTyp1:
		*v = VersionTrueType
	case tagTTCF:
		return wire.ErrTTCFUnsupported
	default:
		tracer().Debugf("unknown font version %s", tag)
		return wire.ErrInvalidData
	}
	return nil
}

func (v Version) String() string {
	switch v {
	case VersionOpenType:
		return "OpenType"
	case VersionTrueType:
		return "TrueType"
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

// TableRecord is an entry of the table directory, locating one table within
// the font data.
type TableRecord struct {
	Tag      Tag
	CheckSum wire.U32
	Offset   wire.Offset32 // from the beginning of the font
	Length   wire.U32
}

var tableRecordSchema = wire.NewSchema("TableRecord",
	wire.Plain("tableTag", func(r *TableRecord) *Tag { return &r.Tag }),
	wire.Plain("checksum", func(r *TableRecord) *wire.U32 { return &r.CheckSum }),
	wire.Plain("offset", func(r *TableRecord) *wire.Offset32 { return &r.Offset }),
	wire.Plain("length", func(r *TableRecord) *wire.U32 { return &r.Length }),
)

func (r *TableRecord) Decode(b wire.View) error {
	return tableRecordSchema.DecodeInto(r, b, wire.NoParams)
}

func (TableRecord) StaticSize() int   { return tableRecordSchema.MustStaticSize() }
func (r TableRecord) EncodeSize() int { return r.StaticSize() }

func (r TableRecord) String() string {
	return fmt.Sprintf("%s[%d:+%d]", r.Tag, r.Offset, r.Length)
}

// FontHeader is the offset table at the start of an OpenType font, followed by
// the directory of the top-level tables in the font.
//
// "The Offset Table is followed immediately by the Table Record entries …
// sorted in ascending order by tag", 16 bytes each.
type FontHeader struct {
	Version   Version
	NumTables wire.U16
	Tables    wire.Array[TableRecord]
}

// searchRange, entrySelector and rangeShift are helpers for a binary search
// with 16-bit arithmetic. We do not need them.
var fontHeaderSchema = wire.NewSchema("OffsetTable",
	wire.Plain("sfntVersion", func(h *FontHeader) *Version { return &h.Version }),
	wire.Plain("numTables", func(h *FontHeader) *wire.U16 { return &h.NumTables }),
	wire.Ignored[FontHeader, wire.U16]("searchRange"),
	wire.Ignored[FontHeader, wire.U16]("entrySelector"),
	wire.Ignored[FontHeader, wire.U16]("rangeShift"),
	wire.WithParam("tableRecords", func(h *FontHeader) *wire.Array[TableRecord] { return &h.Tables },
		"numTables"),
)

func (h *FontHeader) Decode(b wire.View) error {
	return fontHeaderSchema.DecodeInto(h, b, wire.NoParams)
}

// EncodeSize is 12 + 16 × numTables.
func (h FontHeader) EncodeSize() int {
	return fontHeaderSchema.EncodeSize(&h)
}
