package otquery

import (
	"iter"

	"github.com/cbreeden/fontkit/ot"
	"golang.org/x/image/font/sfnt"
)

// NamesRange yields decoded `(nameID, value)` pairs from a font's OpenType
// `name` table, in table order.
//
// Only strings in supported encodings are yielded (Unicode, Windows Unicode,
// Macintosh Roman), and malformed or out-of-bounds records are skipped.
// The same name ID may be yielded more than once, once per platform and language.
func NamesRange(otf *ot.Font) iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		if otf == nil {
			return
		}
		names, err := otf.Name()
		if err != nil {
			tracer().Debugf("no usable name table found in font: %v", err)
			return
		}
		for rec, s := range names.All() {
			if !yield(sfnt.NameID(rec.NameID), s) {
				return
			}
		}
	}
}
