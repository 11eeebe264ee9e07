package ot

import (
	"slices"

	"github.com/cbreeden/fontkit/wire"
)

// Tag is an identifier of four bytes, e.g. the name of a table.
type Tag = wire.Tag

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	return wire.T(t)
}

// Font represents the internal structure of an OpenType font: its header and
// the location of its tables. Tables are decoded on demand.
//
// A Font needs ongoing access to the font's byte-data after Parse returns.
// The data is assumed immutable while the Font remains in use.
type Font struct {
	Header *FontHeader
	data   wire.View
	tables map[Tag]TableRecord
}

// Binary returns the font's data.
func (otf *Font) Binary() []byte {
	return otf.data
}

// Table returns the bytes of the table for a given tag. If the font does not
// contain the table, ErrTableNotFound is returned.
//
// Table tag names are case-sensitive, following the names in the OpenType specification,
// e.g.
//
//	os2, err := otf.Table(ot.T("OS/2"))
func (otf *Font) Table(tag Tag) (wire.View, error) {
	rec, ok := otf.tables[tag]
	if !ok {
		return nil, ErrTableNotFound
	}
	// extents have been checked by Parse
	return otf.data[int(rec.Offset) : int(rec.Offset)+int(rec.Length)], nil
}

// HasTable reports whether the font contains a table for tag.
func (otf *Font) HasTable(tag Tag) bool {
	_, ok := otf.tables[tag]
	return ok
}

// TableRecord returns the directory entry for a table.
func (otf *Font) TableRecord(tag Tag) (TableRecord, bool) {
	rec, ok := otf.tables[tag]
	return rec, ok
}

// TableTags returns a list of tags, one for each table contained in the font,
// in directory order.
func (otf *Font) TableTags() []Tag {
	var tags = make([]Tag, 0, len(otf.tables))
	for tag := range otf.tables {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// --- Typed tables ----------------------------------------------------------

// TaggedTable is implemented by table types which know their table tag.
type TaggedTable interface {
	TableTag() Tag
}

// DecodeTable locates the table for T in otf and decodes it.
//
//	head, err := ot.DecodeTable[ot.Head](otf)
func DecodeTable[T any, PT interface {
	*T
	wire.Decoder
	TaggedTable
}](otf *Font) (T, error) {
	var t T
	tag := PT(&t).TableTag()
	data, err := otf.Table(tag)
	if err != nil {
		return t, errFont(tag, "directory", 0, err)
	}
	if err = PT(&t).Decode(data); err != nil {
		var zero T
		rec := otf.tables[tag]
		return zero, errFont(tag, "table", uint32(rec.Offset), err)
	}
	return t, nil
}

// Maxp decodes table 'maxp'.
func (otf *Font) Maxp() (Maxp, error) {
	return DecodeTable[Maxp](otf)
}

// NumGlyphs returns the number of glyphs in the font, as stated in table 'maxp'.
func (otf *Font) NumGlyphs() (int, error) {
	maxp, err := otf.Maxp()
	if err != nil {
		return 0, err
	}
	return int(maxp.NumGlyphs()), nil
}

// Head decodes table 'head'.
func (otf *Font) Head() (Head, error) {
	return DecodeTable[Head](otf)
}

// HHea decodes table 'hhea'.
func (otf *Font) HHea() (HHea, error) {
	return DecodeTable[HHea](otf)
}

// HMtx decodes table 'hmtx'. Table 'hmtx' depends on the number of metrics
// in table 'hhea' and the number of glyphs in table 'maxp'.
func (otf *Font) HMtx() (HMtx, error) {
	var hmtx HMtx
	hhea, err := otf.HHea()
	if err != nil {
		return hmtx, err
	}
	maxp, err := otf.Maxp()
	if err != nil {
		return hmtx, err
	}
	tag := hmtx.TableTag()
	data, err := otf.Table(tag)
	if err != nil {
		return hmtx, errFont(tag, "directory", 0, err)
	}
	hmtx, err = wire.DecodeWith[HMtx](data, hhea.NumberOfHMetrics, maxp.NumGlyphs())
	if err != nil {
		return hmtx, errFont(tag, "metrics", uint32(otf.tables[tag].Offset), err)
	}
	return hmtx, nil
}

// Name decodes table 'name'.
func (otf *Font) Name() (Name, error) {
	var name Name
	tag := name.TableTag()
	data, err := otf.Table(tag)
	if err != nil {
		return name, errFont(tag, "directory", 0, err)
	}
	name, err = wire.DecodeWith[Name](data, data)
	if err != nil {
		return name, errFont(tag, "records", uint32(otf.tables[tag].Offset), err)
	}
	return name, nil
}

// CMap decodes table 'cmap'.
func (otf *Font) CMap() (CMap, error) {
	var cmap CMap
	tag := cmap.TableTag()
	data, err := otf.Table(tag)
	if err != nil {
		return cmap, errFont(tag, "directory", 0, err)
	}
	cmap, err = wire.DecodeWith[CMap](data, data)
	if err != nil {
		return cmap, errFont(tag, "encoding records", uint32(otf.tables[tag].Offset), err)
	}
	return cmap, nil
}

// GlyphIndex maps a code point to a glyph, using the preferred Unicode
// subtable of table 'cmap'. Unmapped code points map to glyph 0.
func (otf *Font) GlyphIndex(r rune) (uint16, error) {
	cmap, err := otf.CMap()
	if err != nil {
		return 0, err
	}
	sub, err := cmap.Unicode()
	if err != nil {
		return 0, errFont(cmap.TableTag(), "subtable", 0, err)
	}
	return sub.Lookup(r), nil
}

// Loca decodes table 'loca'. Table 'loca' depends on the offset format in
// table 'head' and the number of glyphs in table 'maxp'.
func (otf *Font) Loca() (Loca, error) {
	var loca Loca
	head, err := otf.Head()
	if err != nil {
		return loca, err
	}
	maxp, err := otf.Maxp()
	if err != nil {
		return loca, err
	}
	tag := loca.TableTag()
	data, err := otf.Table(tag)
	if err != nil {
		return loca, errFont(tag, "directory", 0, err)
	}
	loca, err = wire.DecodeWith[Loca](data, head.LongOffsets(), maxp.NumGlyphs())
	if err != nil {
		return loca, errFont(tag, "offsets", uint32(otf.tables[tag].Offset), err)
	}
	return loca, nil
}

// GlyphHeader decodes the header of glyph gid from table 'glyf'.
// Empty glyphs, such as the space glyph, report ok == false.
func (otf *Font) GlyphHeader(gid uint16) (hdr GlyphHeader, ok bool, err error) {
	loca, err := otf.Loca()
	if err != nil {
		return hdr, false, err
	}
	tag := T("glyf")
	data, err := otf.Table(tag)
	if err != nil {
		return hdr, false, errFont(tag, "directory", 0, err)
	}
	glyph, err := loca.Glyph(data, gid)
	if err != nil {
		return hdr, false, errFont(tag, "glyph", 0, err)
	}
	if glyph.Len() == 0 {
		return hdr, false, nil
	}
	if hdr, err = wire.Decode[GlyphHeader](glyph); err != nil {
		return hdr, false, errFont(tag, "glyph header", 0, err)
	}
	return hdr, true, nil
}
