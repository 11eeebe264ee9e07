package ot

import (
	"iter"
	"unicode"

	"github.com/cbreeden/fontkit/wire"
)

// CMap is table 'cmap', mapping character codes to glyph indices.
// It holds a directory of subtables, one per platform and encoding.
//
// Strings are located relative to the start of the table, so a CMap
// needs the table's bytes as its decode parameter.
type CMap struct {
	Version   wire.U16
	NumTables wire.U16
	Records   wire.Array[EncodingRecord]
	table     wire.View
}

// EncodingRecord locates the subtable for a platform and encoding.
type EncodingRecord struct {
	PlatformID wire.U16
	EncodingID wire.U16
	Offset     wire.Offset32 // from beginning of table
}

var encodingRecordSchema = wire.NewSchema("EncodingRecord",
	wire.Plain("platformID", func(r *EncodingRecord) *wire.U16 { return &r.PlatformID }),
	wire.Plain("encodingID", func(r *EncodingRecord) *wire.U16 { return &r.EncodingID }),
	wire.Plain("subtableOffset", func(r *EncodingRecord) *wire.Offset32 { return &r.Offset }),
)

func (r *EncodingRecord) Decode(b wire.View) error {
	return encodingRecordSchema.DecodeInto(r, b, wire.NoParams)
}

func (EncodingRecord) StaticSize() int   { return encodingRecordSchema.MustStaticSize() }
func (r EncodingRecord) EncodeSize() int { return r.StaticSize() }

var cmapSchema = wire.NewSchema("cmap",
	wire.FromParam("table", func(c *CMap) *wire.View { return &c.table }),
	wire.Plain("version", func(c *CMap) *wire.U16 { return &c.Version }),
	wire.Plain("numTables", func(c *CMap) *wire.U16 { return &c.NumTables }),
	wire.WithParam("encodingRecords", func(c *CMap) *wire.Array[EncodingRecord] { return &c.Records },
		"numTables"),
)

func (c *CMap) Arity() int { return cmapSchema.Arity() }

func (c *CMap) DecodeWith(b wire.View, p wire.Params) error {
	return cmapSchema.DecodeInto(c, b, p)
}

func (c CMap) EncodeSize() int { return cmapSchema.EncodeSize(&c) }

// TableTag is 'cmap'.
func (CMap) TableTag() Tag { return T("cmap") }

// Subtable decodes the subtable for rec.
// Subtable formats other than 4 and 12 are reported as wire.ErrUnsupportedCmapFormat.
func (c CMap) Subtable(rec EncodingRecord) (CMapSubtable, error) {
	b, err := rec.Offset.Resolve(c.table)
	if err != nil {
		return nil, err
	}
	return cmapFormats.Decode(b)
}

// Unicode returns the preferred Unicode subtable: full repertoire subtables
// before BMP-only subtables, Windows before Unicode platform.
func (c CMap) Unicode() (CMapSubtable, error) {
	best, rank := EncodingRecord{}, 0
	for rec := range c.Records.All() {
		if r := unicodeRank(rec); r > rank {
			best, rank = rec, r
		}
	}
	if rank == 0 {
		return nil, ErrTableNotFound
	}
	return c.Subtable(best)
}

func unicodeRank(rec EncodingRecord) int {
	switch PlatformID(rec.PlatformID) {
	case PlatformIDWindows:
		switch rec.EncodingID {
		case EncodingIDWindowsFull:
			return 5
		case EncodingIDWindowsBMP:
			return 3
		}
	case PlatformIDUnicode:
		switch rec.EncodingID {
		case 4, 6: // full repertoire
			return 4
		case 5: // variation sequences, format 14
			return 0
		default:
			return 2
		}
	}
	return 0
}

// CMapSubtable maps code points to glyph indices.
// Glyph index 0 is the missing glyph '.notdef'.
type CMapSubtable interface {
	Format() uint16
	Lookup(r rune) uint16
	Mappings() iter.Seq2[rune, uint16]
}

var cmapFormats = wire.NewDispatch[wire.U16, CMapSubtable]("cmap subtable",
	func(b wire.View) (wire.U16, error) { return wire.Peek[wire.U16](b) }).
	On(4, func(b wire.View) (CMapSubtable, error) {
		f, err := wire.DecodeWith[CMapFormat4](b, b)
		if err != nil {
			return nil, err
		}
		return &f, nil
	}).
	On(12, wire.As[CMapSubtable, CMapFormat12]()).
	Unknown(wire.ErrUnsupportedCmapFormat)

// --- Format 4 --------------------------------------------------------------

// CMapFormat4 is a segment mapping to delta values, for fonts supporting
// Unicode BMP characters only.
type CMapFormat4 struct {
	Length         wire.U16
	Language       wire.U16
	SegCountX2     wire.U16
	EndCodes       wire.Array[wire.U16]
	StartCodes     wire.Array[wire.U16]
	IDDeltas       wire.Array[wire.I16]
	IDRangeOffsets wire.Array[wire.U16]
	data           wire.View
}

func segCount(f *CMapFormat4) []any {
	return []any{int(f.SegCountX2) / 2}
}

var cmapFormat4Schema = wire.NewSchema("cmap.format4",
	wire.FromParam("subtable", func(f *CMapFormat4) *wire.View { return &f.data }),
	wire.Ignored[CMapFormat4, wire.U16]("format"),
	wire.Plain("length", func(f *CMapFormat4) *wire.U16 { return &f.Length }),
	wire.Plain("language", func(f *CMapFormat4) *wire.U16 { return &f.Language }),
	wire.Plain("segCountX2", func(f *CMapFormat4) *wire.U16 { return &f.SegCountX2 }),
	wire.Ignored[CMapFormat4, wire.U16]("searchRange"),
	wire.Ignored[CMapFormat4, wire.U16]("entrySelector"),
	wire.Ignored[CMapFormat4, wire.U16]("rangeShift"),
	wire.WithParamFunc("endCode", func(f *CMapFormat4) *wire.Array[wire.U16] { return &f.EndCodes }, segCount),
	wire.Ignored[CMapFormat4, wire.U16]("reservedPad"),
	wire.WithParamFunc("startCode", func(f *CMapFormat4) *wire.Array[wire.U16] { return &f.StartCodes }, segCount),
	wire.WithParamFunc("idDelta", func(f *CMapFormat4) *wire.Array[wire.I16] { return &f.IDDeltas }, segCount),
	wire.WithParamFunc("idRangeOffset", func(f *CMapFormat4) *wire.Array[wire.U16] { return &f.IDRangeOffsets }, segCount),
)

func (f *CMapFormat4) Arity() int { return cmapFormat4Schema.Arity() }

func (f *CMapFormat4) DecodeWith(b wire.View, p wire.Params) error {
	return cmapFormat4Schema.DecodeInto(f, b, p)
}

func (f CMapFormat4) EncodeSize() int { return cmapFormat4Schema.EncodeSize(&f) }

// Format is 4.
func (f *CMapFormat4) Format() uint16 { return 4 }

type segment struct {
	start, end     rune
	delta          int
	rangeOffset    int
	rangeOffsetPos int // position of the segment's idRangeOffset within the subtable
}

func (f *CMapFormat4) segment(i int) (segment, bool) {
	end, err1 := f.EndCodes.Get(i)
	start, err2 := f.StartCodes.Get(i)
	delta, err3 := f.IDDeltas.Get(i)
	ro, err4 := f.IDRangeOffsets.Get(i)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return segment{}, false
	}
	n := f.EndCodes.Len()
	return segment{
		start:          rune(start),
		end:            rune(end),
		delta:          int(delta),
		rangeOffset:    int(ro),
		rangeOffsetPos: 16 + 6*n + 2*i,
	}, true
}

func (f *CMapFormat4) glyph(seg segment, r rune) uint16 {
	if seg.rangeOffset == 0 {
		return uint16(int(r) + seg.delta)
	}
	// "the glyph index is obtained by adding idRangeOffset[i] to the address of
	// idRangeOffset[i] and then 2 × (c − startCode[i])"
	pos := seg.rangeOffsetPos + seg.rangeOffset + 2*int(r-seg.start)
	gid := f.data.U16(pos)
	if gid == 0 {
		return 0
	}
	return uint16(int(gid) + seg.delta)
}

// Lookup returns the glyph index for r, or 0.
func (f *CMapFormat4) Lookup(r rune) uint16 {
	if r < 0 || r > 0xffff {
		return 0
	}
	lo, hi := 0, f.EndCodes.Len()
	for lo < hi { // segments are sorted by end code
		mid := (lo + hi) / 2
		end, err := f.EndCodes.Get(mid)
		if err != nil {
			return 0
		}
		if rune(end) < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	seg, ok := f.segment(lo)
	if !ok || r < seg.start {
		return 0
	}
	return f.glyph(seg, r)
}

// Mappings iterates over all mapped code points and their glyphs.
func (f *CMapFormat4) Mappings() iter.Seq2[rune, uint16] {
	return func(yield func(rune, uint16) bool) {
		for i := range f.EndCodes.Len() {
			seg, ok := f.segment(i)
			if !ok {
				return
			}
			for r := seg.start; r <= seg.end && r != 0xffff; r++ {
				if gid := f.glyph(seg, r); gid != 0 && !yield(r, gid) {
					return
				}
			}
		}
	}
}

// --- Format 12 -------------------------------------------------------------

// CMapFormat12 is a segmented coverage subtable, for fonts supporting
// characters beyond the BMP.
type CMapFormat12 struct {
	Length    wire.U32
	Language  wire.U32
	NumGroups wire.U32
	Groups    wire.Array[SequentialMapGroup]
}

// SequentialMapGroup maps a range of code points to consecutive glyphs.
type SequentialMapGroup struct {
	StartCharCode wire.U32
	EndCharCode   wire.U32
	StartGlyphID  wire.U32
}

var sequentialMapGroupSchema = wire.NewSchema("SequentialMapGroup",
	wire.Plain("startCharCode", func(g *SequentialMapGroup) *wire.U32 { return &g.StartCharCode }),
	wire.Plain("endCharCode", func(g *SequentialMapGroup) *wire.U32 { return &g.EndCharCode }),
	wire.Plain("startGlyphID", func(g *SequentialMapGroup) *wire.U32 { return &g.StartGlyphID }),
)

func (g *SequentialMapGroup) Decode(b wire.View) error {
	return sequentialMapGroupSchema.DecodeInto(g, b, wire.NoParams)
}

func (SequentialMapGroup) StaticSize() int   { return sequentialMapGroupSchema.MustStaticSize() }
func (g SequentialMapGroup) EncodeSize() int { return g.StaticSize() }

var cmapFormat12Schema = wire.NewSchema("cmap.format12",
	wire.Ignored[CMapFormat12, wire.U16]("format"),
	wire.Ignored[CMapFormat12, wire.U16]("reserved"),
	wire.Plain("length", func(f *CMapFormat12) *wire.U32 { return &f.Length }),
	wire.Plain("language", func(f *CMapFormat12) *wire.U32 { return &f.Language }),
	wire.Plain("numGroups", func(f *CMapFormat12) *wire.U32 { return &f.NumGroups }),
	wire.WithParam("groups", func(f *CMapFormat12) *wire.Array[SequentialMapGroup] { return &f.Groups },
		"numGroups"),
)

func (f *CMapFormat12) Decode(b wire.View) error {
	return cmapFormat12Schema.DecodeInto(f, b, wire.NoParams)
}

func (f CMapFormat12) EncodeSize() int { return cmapFormat12Schema.EncodeSize(&f) }

// Format is 12.
func (f *CMapFormat12) Format() uint16 { return 12 }

// Lookup returns the glyph index for r, or 0.
func (f *CMapFormat12) Lookup(r rune) uint16 {
	if r < 0 {
		return 0
	}
	c := wire.U32(r)
	lo, hi := 0, f.Groups.Len()
	for lo < hi { // groups are sorted by start code
		mid := (lo + hi) / 2
		g, err := f.Groups.Get(mid)
		if err != nil {
			return 0
		}
		switch {
		case c < g.StartCharCode:
			hi = mid
		case c > g.EndCharCode:
			lo = mid + 1
		default:
			return uint16(g.StartGlyphID + c - g.StartCharCode)
		}
	}
	return 0
}

// Mappings iterates over all mapped code points and their glyphs.
func (f *CMapFormat12) Mappings() iter.Seq2[rune, uint16] {
	return func(yield func(rune, uint16) bool) {
		for g := range f.Groups.All() {
			end := min(g.EndCharCode, unicode.MaxRune)
			if g.StartCharCode > end {
				continue
			}
			for c := g.StartCharCode; ; c++ {
				if !yield(rune(c), uint16(g.StartGlyphID+c-g.StartCharCode)) {
					return
				}
				if c == end {
					break
				}
			}
		}
	}
}
