package ot

import (
	"github.com/cbreeden/fontkit/wire"
)

// Loca is table 'loca', the index to location of glyphs in table 'glyf'.
// It holds numGlyphs+1 offsets, either as 16-bit words (offset/2) or as
// 32-bit bytes, depending on field indexToLocFormat of table 'head'.
//
// Loca is decoded with two parameters: the offset format (true for 32-bit
// offsets) and the number of glyphs.
type Loca struct {
	long    bool
	short   wire.Array[wire.U16]
	offsets wire.Array[wire.U32]
}

func (l *Loca) Arity() int { return 2 }

func (l *Loca) DecodeWith(b wire.View, p wire.Params) error {
	long, err := wire.ParamAs[bool](p, 0)
	if err != nil {
		return err
	}
	n, err := p.Int(1)
	if err != nil {
		return err
	}
	l.long = long
	if long {
		l.offsets, err = wire.DecodeWith[wire.Array[wire.U32]](b, n+1)
		return err
	}
	l.short, err = wire.DecodeWith[wire.Array[wire.U16]](b, n+1)
	return err
}

func (l Loca) EncodeSize() int {
	if l.long {
		return l.offsets.EncodeSize()
	}
	return l.short.EncodeSize()
}

// TableTag is 'loca'.
func (Loca) TableTag() Tag { return T("loca") }

// Len returns the number of glyphs covered.
func (l Loca) Len() int {
	n := l.short.Len()
	if l.long {
		n = l.offsets.Len()
	}
	return max(n-1, 0)
}

func (l Loca) offset(i int) (int, error) {
	if l.long {
		o, err := l.offsets.Get(i)
		return int(o), err
	}
	o, err := l.short.Get(i)
	return 2 * int(o), err
}

// Glyph returns the bytes of glyph gid within glyf, which are empty for
// glyphs without outline.
func (l Loca) Glyph(glyf wire.View, gid uint16) (wire.View, error) {
	if int(gid) >= l.Len() {
		return nil, wire.ErrInvalidData
	}
	from, err := l.offset(int(gid))
	if err != nil {
		return nil, err
	}
	to, err := l.offset(int(gid) + 1)
	if err != nil {
		return nil, err
	}
	if to < from {
		return nil, wire.ErrInvalidData
	}
	return glyf.Sub(from, to-from)
}

// GlyphHeader starts every glyph description in table 'glyf'.
type GlyphHeader struct {
	NumberOfContours wire.I16 // negative for composite glyphs
	XMin             wire.FWord
	YMin             wire.FWord
	XMax             wire.FWord
	YMax             wire.FWord
}

var glyphHeaderSchema = wire.NewSchema("glyphHeader",
	wire.Plain("numberOfContours", func(h *GlyphHeader) *wire.I16 { return &h.NumberOfContours }),
	wire.Plain("xMin", func(h *GlyphHeader) *wire.FWord { return &h.XMin }),
	wire.Plain("yMin", func(h *GlyphHeader) *wire.FWord { return &h.YMin }),
	wire.Plain("xMax", func(h *GlyphHeader) *wire.FWord { return &h.XMax }),
	wire.Plain("yMax", func(h *GlyphHeader) *wire.FWord { return &h.YMax }),
)

func (h *GlyphHeader) Decode(b wire.View) error {
	return glyphHeaderSchema.DecodeInto(h, b, wire.NoParams)
}

func (GlyphHeader) StaticSize() int   { return glyphHeaderSchema.MustStaticSize() }
func (h GlyphHeader) EncodeSize() int { return h.StaticSize() }

// Composite reports whether the glyph is composed of other glyphs.
func (h GlyphHeader) Composite() bool {
	return h.NumberOfContours < 0
}
