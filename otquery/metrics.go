package otquery

import (
	"github.com/cbreeden/fontkit/ot"
	"github.com/cbreeden/fontkit/wire"
	"golang.org/x/image/font/sfnt"
)

// --- Font Information -------------------------------------------------

// HHeaTableInfo is a typed query view over OpenType table 'hhea'.
type HHeaTableInfo struct {
	MajorVersion        uint16
	MinorVersion        uint16
	Ascender            int16
	Descender           int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	MetricDataFormat    int16
	NumberOfHMetrics    uint16
}

// HHeaInfo decodes table 'hhea'.
// Returns (info, true) on success, or (zero, false) if table is missing or broken.
func HHeaInfo(otf *ot.Font) (HHeaTableInfo, bool) {
	var info HHeaTableInfo
	if otf == nil {
		return info, false
	}
	hhea, err := otf.HHea()
	if err != nil {
		tracer().Debugf("hhea: %v", err)
		return info, false
	}
	info.MajorVersion = uint16(hhea.MajorVersion)
	info.MinorVersion = uint16(hhea.MinorVersion)
	info.Ascender = int16(hhea.Ascender)
	info.Descender = int16(hhea.Descender)
	info.LineGap = int16(hhea.LineGap)
	info.AdvanceWidthMax = uint16(hhea.AdvanceWidthMax)
	info.MinLeftSideBearing = int16(hhea.MinLeftSideBearing)
	info.MinRightSideBearing = int16(hhea.MinRightSideBearing)
	info.XMaxExtent = int16(hhea.XMaxExtent)
	info.CaretSlopeRise = int16(hhea.CaretSlopeRise)
	info.CaretSlopeRun = int16(hhea.CaretSlopeRun)
	info.CaretOffset = int16(hhea.CaretOffset)
	info.MetricDataFormat = int16(hhea.MetricDataFormat)
	info.NumberOfHMetrics = uint16(hhea.NumberOfHMetrics)
	return info, true
}

// FontMetrics retrieves selected metrics of a font.
func FontMetrics(otf *ot.Font) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if otf == nil {
		return metrics
	}
	if hhea, err := otf.HHea(); err == nil {
		metrics.Ascent = sfnt.Units(hhea.Ascender)
		metrics.Descent = sfnt.Units(hhea.Descender)
		metrics.LineGap = sfnt.Units(hhea.LineGap)
		metrics.MaxAdvance = sfnt.Units(hhea.AdvanceWidthMax)
	}
	if metrics.Ascent == 0 && metrics.Descent == 0 {
		if a, d, ok := typoAscentDescent(otf); ok {
			tracer().Debugf("OS/2")
			if sfnt.Units(a) > metrics.Ascent {
				tracer().Debugf("override of ascent: %d -> %d", metrics.Ascent, a)
				metrics.Ascent = sfnt.Units(a)
			}
			if sfnt.Units(d) < metrics.Descent {
				tracer().Debugf("override of descent: %d -> %d", metrics.Descent, d)
				metrics.Descent = sfnt.Units(d)
			}
		}
	}
	if head, err := otf.Head(); err == nil { // head is a required table
		metrics.UnitsPerEm = sfnt.Units(head.UnitsPerEm)
	}
	return metrics
}

// typoAscentDescent reads sTypoAscender and sTypoDescender from table 'OS/2',
// which sit at the same position in every version of the table.
func typoAscentDescent(otf *ot.Font) (wire.FWord, wire.FWord, bool) {
	os2, err := otf.Table(ot.T("OS/2"))
	if err != nil {
		return 0, 0, false
	}
	b, err := os2.From(68)
	if err != nil {
		return 0, 0, false
	}
	c := wire.NewCursor(b)
	a, err1 := wire.Read[wire.FWord](c)
	d, err2 := wire.Read[wire.FWord](c)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, d, true
}

// --- Glyph Routines --------------------------------------------------------

// GlyphIndex returns the glyph index for a give code-point.
// If the code-point cannot be found, 0 is returned.
//
// From the OpenType specification: character codes that do not correspond to any glyph in
// the font should be mapped to glyph index 0. The glyph at this location must be a special
// glyph representing a missing character, commonly known as '.notdef'.
func GlyphIndex(otf *ot.Font, codepoint rune) sfnt.GlyphIndex {
	if otf == nil {
		return 0
	}
	gid, err := otf.GlyphIndex(codepoint)
	if err != nil {
		tracer().Debugf("glyph index: %v", err)
		return 0
	}
	return sfnt.GlyphIndex(gid)
}

// CodePointForGlyph returns the code-point for a given glyph index.
//
// This is an inefficient operation: All code-points contained in the font's CMap
// are checked sequentially if they produce the given glyph.
// If the glyph index does not correspond to a code-point, 0 is returned.
func CodePointForGlyph(otf *ot.Font, gid sfnt.GlyphIndex) rune {
	if otf == nil || gid == 0 {
		return 0
	}
	cmap, err := otf.CMap()
	if err != nil {
		return 0
	}
	sub, err := cmap.Unicode()
	if err != nil {
		return 0
	}
	for r, g := range sub.Mappings() {
		if sfnt.GlyphIndex(g) == gid {
			return r
		}
	}
	return 0
}

// GlyphMetrics retrieves metrics for a given glyph.
func GlyphMetrics(otf *ot.Font, gid sfnt.GlyphIndex) GlyphMetricsInfo {
	metrics := GlyphMetricsInfo{}
	if otf == nil {
		return metrics
	}
	//
	// table HMtx: advance width and left side bearing
	if hmtx, err := otf.HMtx(); err == nil { // required table in OpenType
		if aw, lsb, err := hmtx.Metrics(int(gid)); err == nil {
			metrics.Advance = sfnt.Units(aw)
			metrics.LSB = sfnt.Units(lsb)
		}
	}
	//
	// table glyf: bounding box
	if otf.HasTable(ot.T("glyf")) {
		hdr, ok, err := otf.GlyphHeader(uint16(gid))
		if err != nil {
			tracer().Debugf("glyph %d: %v", gid, err)
		} else if ok {
			metrics.BBox = BoundingBox{
				MinX: sfnt.Units(hdr.XMin),
				MinY: sfnt.Units(hdr.YMin),
				MaxX: sfnt.Units(hdr.XMax),
				MaxY: sfnt.Units(hdr.YMax),
			}
		}
	}
	// RSB calculation: rsb = aw - (lsb + xMax - xMin)
	// From the OpenType specification:
	// If a glyph has no contours, xMax/xMin are not defined. The left side bearing indicated
	// in the 'hmtx' table for such glyphs should be zero.
	if !metrics.BBox.IsEmpty() { // leave RSB for empty bboxes
		metrics.RSB = metrics.Advance - (metrics.LSB + metrics.BBox.Dx())
	}
	return metrics
}
