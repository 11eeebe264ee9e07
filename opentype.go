package fontkit

import (
	"github.com/cbreeden/fontkit/ot"
	"golang.org/x/image/font/sfnt"
)

// FromBinary parses raw OpenType bytes and returns a decoded font.
//
// The input is expected to contain a complete single-font SFNT stream.
// It must not change after parsing for the font to be usable.
func FromBinary(data []byte) (*ot.Font, error) {
	return ot.Parse(data)
}

// GlyphAdvance is a glyph of a text together with its advance width,
// in font units.
type GlyphAdvance struct {
	Rune    rune
	Glyph   sfnt.GlyphIndex
	Advance sfnt.Units
}

// Advances maps every rune of text to its nominal glyph and advance width.
//
// No shaping is done: there are no ligatures, no kerning, and no reordering. Runes
// without a glyph in the font map to glyph 0 ('.notdef'). Advances is meant for
// previews and measurement of short pieces of Western text.
func Advances(otf *ot.Font, text string) ([]GlyphAdvance, error) {
	if otf == nil || text == "" {
		return nil, nil
	}
	cmap, err := otf.CMap()
	if err != nil {
		return nil, err
	}
	sub, err := cmap.Unicode()
	if err != nil {
		return nil, err
	}
	hmtx, err := otf.HMtx()
	if err != nil {
		return nil, err
	}
	glyphs := make([]GlyphAdvance, 0, len(text))
	for _, r := range text {
		gid := sub.Lookup(r)
		aw, _, err := hmtx.Metrics(int(gid))
		if err != nil {
			return glyphs, err
		}
		glyphs = append(glyphs, GlyphAdvance{Rune: r, Glyph: sfnt.GlyphIndex(gid), Advance: sfnt.Units(aw)})
	}
	return glyphs, nil
}

// Width returns the sum of the advances of text, as by Advances.
func Width(otf *ot.Font, text string) (sfnt.Units, error) {
	glyphs, err := Advances(otf, text)
	var w sfnt.Units
	for _, g := range glyphs {
		w += g.Advance
	}
	return w, err
}
