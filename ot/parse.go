package ot

import (
	"math"

	"github.com/cbreeden/fontkit/wire"
)

// Parse parses an OpenType font from a byte slice.
//
// Parse decodes the font header and the table directory and checks that
//
//   - table records are sorted in ascending order by tag,
//   - "all tables must begin on four byte boundries", and
//   - every table lies within the font data.
//
// Tables themselves are decoded on demand.
// An ot.Font needs ongoing access to the fonts byte-data after the Parse function returns.
// Its elements are assumed immutable while the ot.Font remains in use.
func Parse(font []byte) (*Font, error) {
	src := wire.View(font)
	h, err := wire.Decode[FontHeader](src)
	if err != nil {
		return nil, errFont(0, "header", 0, err)
	}
	tracer().Debugf("header: %s font with %d tables", h.Version, h.NumTables)
	otf := &Font{Header: &h, data: src, tables: make(map[Tag]TableRecord, h.NumTables)}
	var prevTag Tag
	it := h.Tables.Iter()
	for it.Next() {
		rec := it.Value()
		if len(otf.tables) > 0 && rec.Tag <= prevTag {
			return nil, errFont(rec.Tag, "directory: table order", 0, wire.ErrInvalidData)
		}
		prevTag = rec.Tag
		off, size := uint64(rec.Offset), uint64(rec.Length)
		if off&3 != 0 {
			return nil, errFont(rec.Tag, "directory: table alignment", uint32(off), wire.ErrInvalidData)
		}
		// Offset and length are 32-bit values, their sum cannot overflow 64 bits
		if end := off + size; end > uint64(len(src)) || end > math.MaxUint32 {
			tracer().Debugf("table %s: bounds [%d:%d] exceed font size %d", rec.Tag, off, end, len(src))
			return nil, errFont(rec.Tag, "directory: table bounds", uint32(off), wire.ErrUnexpectedEOF)
		}
		otf.tables[rec.Tag] = rec
	}
	if err := it.Err(); err != nil {
		return nil, errFont(0, "directory", 12, err)
	}
	tracer().Infof("parsed %s font with tables %v", h.Version, otf.TableTags())
	return otf, nil
}

// According to the OpenType spec, the following tables are
// required for the font to function correctly.
var RequiredTables = []string{
	"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post",
}

// MissingTables returns the required tables which are not contained in otf.
func (otf *Font) MissingTables() []string {
	var missing []string
	for _, t := range RequiredTables {
		if !otf.HasTable(T(t)) {
			missing = append(missing, t)
		}
	}
	return missing
}
