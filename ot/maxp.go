package ot

import (
	"github.com/cbreeden/fontkit/wire"
)

// Maxp is table 'maxp', which establishes the memory requirements for a font.
// It comes in two layouts: version 0.5 for fonts with CFF outlines, holding just
// the number of glyphs, and version 1.0 for fonts with TrueType outlines.
//
// Variant is either *MaxpV05 or *MaxpV1.
type Maxp struct {
	Variant MaxpVariant
}

// MaxpVariant is one of the layouts of table 'maxp'.
type MaxpVariant interface {
	wire.Sizer
	maxpVersion() wire.Fixed
	maxpNumGlyphs() wire.U16
}

// MaxpV05 is the version 0.5 layout of table 'maxp' (6 bytes).
type MaxpV05 struct {
	Version   wire.Fixed // 0x00005000
	NumGlyphs wire.U16   // the number of glyphs in the font
}

// MaxpV1 is the version 1.0 layout of table 'maxp' (32 bytes).
type MaxpV1 struct {
	Version               wire.Fixed // 0x00010000
	NumGlyphs             wire.U16   // the number of glyphs in the font
	MaxPoints             wire.U16   // maximum points in a non-composite glyph
	MaxContours           wire.U16   // maximum contours in a non-composite glyph
	MaxCompositePoints    wire.U16   // maximum points in a composite glyph
	MaxCompositeContours  wire.U16   // maximum contours in a composite glyph
	MaxZones              wire.U16   // 1 if instructions do not use the twilight zone, 2 otherwise
	MaxTwilightPoints     wire.U16   // maximum points used in Z0
	MaxStorage            wire.U16   // number of storage area locations
	MaxFunctionDefs       wire.U16   // number of FDEFs
	MaxInstructionDefs    wire.U16   // number of IDEFs
	MaxStackElements      wire.U16   // maximum stack depth
	MaxSizeOfInstructions wire.U16   // maximum byte count for glyph instructions
	MaxComponentElements  wire.U16   // maximum number of components referenced at top level
	MaxComponentDepth     wire.U16   // maximum levels of recursion
}

const (
	maxpVersion05 = 0x00005000
	maxpVersion10 = 0x00010000
)

var maxpV05Schema = wire.NewSchema("maxp.v05",
	wire.Plain("version", func(m *MaxpV05) *wire.Fixed { return &m.Version }),
	wire.Plain("numGlyphs", func(m *MaxpV05) *wire.U16 { return &m.NumGlyphs }),
)

func u16Field(name string, at func(*MaxpV1) *wire.U16) wire.Field[MaxpV1] {
	return wire.Plain(name, at)
}

var maxpV1Schema = wire.NewSchema("maxp.v1",
	wire.Plain("version", func(m *MaxpV1) *wire.Fixed { return &m.Version }),
	u16Field("numGlyphs", func(m *MaxpV1) *wire.U16 { return &m.NumGlyphs }),
	u16Field("maxPoints", func(m *MaxpV1) *wire.U16 { return &m.MaxPoints }),
	u16Field("maxContours", func(m *MaxpV1) *wire.U16 { return &m.MaxContours }),
	u16Field("maxCompositePoints", func(m *MaxpV1) *wire.U16 { return &m.MaxCompositePoints }),
	u16Field("maxCompositeContours", func(m *MaxpV1) *wire.U16 { return &m.MaxCompositeContours }),
	u16Field("maxZones", func(m *MaxpV1) *wire.U16 { return &m.MaxZones }),
	u16Field("maxTwilightPoints", func(m *MaxpV1) *wire.U16 { return &m.MaxTwilightPoints }),
	u16Field("maxStorage", func(m *MaxpV1) *wire.U16 { return &m.MaxStorage }),
	u16Field("maxFunctionDefs", func(m *MaxpV1) *wire.U16 { return &m.MaxFunctionDefs }),
	u16Field("maxInstructionDefs", func(m *MaxpV1) *wire.U16 { return &m.MaxInstructionDefs }),
	u16Field("maxStackElements", func(m *MaxpV1) *wire.U16 { return &m.MaxStackElements }),
	u16Field("maxSizeOfInstructions", func(m *MaxpV1) *wire.U16 { return &m.MaxSizeOfInstructions }),
	u16Field("maxComponentElements", func(m *MaxpV1) *wire.U16 { return &m.MaxComponentElements }),
	u16Field("maxComponentDepth", func(m *MaxpV1) *wire.U16 { return &m.MaxComponentDepth }),
)

func (m *MaxpV05) Decode(b wire.View) error {
	return maxpV05Schema.DecodeInto(m, b, wire.NoParams)
}

func (MaxpV05) StaticSize() int            { return maxpV05Schema.MustStaticSize() }
func (m MaxpV05) EncodeSize() int          { return m.StaticSize() }
func (m *MaxpV05) maxpVersion() wire.Fixed { return m.Version }
func (m *MaxpV05) maxpNumGlyphs() wire.U16 { return m.NumGlyphs }

func (m *MaxpV1) Decode(b wire.View) error {
	return maxpV1Schema.DecodeInto(m, b, wire.NoParams)
}

func (MaxpV1) StaticSize() int            { return maxpV1Schema.MustStaticSize() }
func (m MaxpV1) EncodeSize() int          { return m.StaticSize() }
func (m *MaxpV1) maxpVersion() wire.Fixed { return m.Version }
func (m *MaxpV1) maxpNumGlyphs() wire.U16 { return m.NumGlyphs }

var maxpLayouts = wire.NewDispatch[wire.U32, MaxpVariant]("maxp",
	func(b wire.View) (wire.U32, error) { return wire.Peek[wire.U32](b) }).
	On(maxpVersion05, wire.As[MaxpVariant, MaxpV05]()).
	On(maxpVersion10, wire.As[MaxpVariant, MaxpV1]())

// Decode selects the layout by the version number at the start of b.
// Unknown versions are reported as wire.ErrUnsupportedVersion.
func (m *Maxp) Decode(b wire.View) error {
	v, err := maxpLayouts.Decode(b)
	if err != nil {
		return err
	}
	m.Variant = v
	return nil
}

// TableTag is 'maxp'.
func (Maxp) TableTag() Tag {
	return T("maxp")
}

// EncodeSize is the size of the variant, 6 or 32 bytes.
func (m Maxp) EncodeSize() int {
	if m.Variant == nil {
		return 0
	}
	return m.Variant.EncodeSize()
}

// NumGlyphs returns the number of glyphs in the font, regardless of the
// table's version.
func (m Maxp) NumGlyphs() uint16 {
	if m.Variant == nil {
		return 0
	}
	return uint16(m.Variant.maxpNumGlyphs())
}

// Version returns the table version, 0x00005000 or 0x00010000.
func (m Maxp) Version() wire.Fixed {
	if m.Variant == nil {
		return 0
	}
	return m.Variant.maxpVersion()
}

// V1 returns the version 1.0 layout, if the table has one.
func (m Maxp) V1() (*MaxpV1, bool) {
	v, ok := m.Variant.(*MaxpV1)
	return v, ok
}
