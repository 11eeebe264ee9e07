package ot

import (
	"github.com/cbreeden/fontkit/wire"
)

// Head is table 'head', the font header, giving global information about the font.
type Head struct {
	MajorVersion       wire.U16
	MinorVersion       wire.U16
	FontRevision       wire.Fixed // set by font manufacturer
	CheckSumAdjustment wire.Discard[wire.U32]
	MagicNumber        wire.U32 // 0x5F0F3CF5
	Flags              wire.U16
	UnitsPerEm         wire.U16 // valid range is from 16 to 16384
	Created            wire.LongDateTime
	Modified           wire.LongDateTime
	XMin               wire.FWord // bounding box for all glyph bounding boxes
	YMin               wire.FWord
	XMax               wire.FWord
	YMax               wire.FWord
	MacStyle           wire.U16 // bold, italic, …
	LowestRecPPEM      wire.U16 // smallest readable size in pixels
	FontDirectionHint  wire.I16 // deprecated, set to 2
	IndexToLocFormat   wire.I16 // 0 for short offsets (Offset16), 1 for long (Offset32)
	GlyphDataFormat    wire.I16 // 0 for current format
}

// HeadMagicNumber is the magic number of table 'head'.
const HeadMagicNumber = 0x5F0F3CF5

// Checksum adjustment depends on the checksum of the whole font, which we
// do not verify.
var headSchema = wire.NewSchema("head",
	wire.Plain("majorVersion", func(h *Head) *wire.U16 { return &h.MajorVersion }),
	wire.Plain("minorVersion", func(h *Head) *wire.U16 { return &h.MinorVersion }),
	wire.Plain("fontRevision", func(h *Head) *wire.Fixed { return &h.FontRevision }),
	wire.Discarded("checksumAdjustment", func(h *Head) *wire.Discard[wire.U32] { return &h.CheckSumAdjustment }),
	wire.Plain("magicNumber", func(h *Head) *wire.U32 { return &h.MagicNumber }),
	wire.Plain("flags", func(h *Head) *wire.U16 { return &h.Flags }),
	wire.Plain("unitsPerEm", func(h *Head) *wire.U16 { return &h.UnitsPerEm }),
	wire.Plain("created", func(h *Head) *wire.LongDateTime { return &h.Created }),
	wire.Plain("modified", func(h *Head) *wire.LongDateTime { return &h.Modified }),
	wire.Plain("xMin", func(h *Head) *wire.FWord { return &h.XMin }),
	wire.Plain("yMin", func(h *Head) *wire.FWord { return &h.YMin }),
	wire.Plain("xMax", func(h *Head) *wire.FWord { return &h.XMax }),
	wire.Plain("yMax", func(h *Head) *wire.FWord { return &h.YMax }),
	wire.Plain("macStyle", func(h *Head) *wire.U16 { return &h.MacStyle }),
	wire.Plain("lowestRecPPEM", func(h *Head) *wire.U16 { return &h.LowestRecPPEM }),
	wire.Plain("fontDirectionHint", func(h *Head) *wire.I16 { return &h.FontDirectionHint }),
	wire.Plain("indexToLocFormat", func(h *Head) *wire.I16 { return &h.IndexToLocFormat }),
	wire.Plain("glyphDataFormat", func(h *Head) *wire.I16 { return &h.GlyphDataFormat }),
)

// Decode decodes table 'head' and checks its magic number.
func (h *Head) Decode(b wire.View) error {
	var head Head
	if err := headSchema.DecodeInto(&head, b, wire.NoParams); err != nil {
		return err
	}
	if head.MagicNumber != HeadMagicNumber {
		tracer().Debugf("head: magic number is %#x", uint32(head.MagicNumber))
		return wire.ErrInvalidData
	}
	*h = head
	return nil
}

func (Head) StaticSize() int   { return headSchema.MustStaticSize() }
func (h Head) EncodeSize() int { return h.StaticSize() }

// TableTag is 'head'.
func (Head) TableTag() Tag { return T("head") }

// LongOffsets reports whether table 'loca' uses 32-bit offsets.
func (h Head) LongOffsets() bool {
	return h.IndexToLocFormat == 1
}
