/*
Package fontkit is for reading OpenType fonts.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

▪︎ A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Package fontkit is a thin entry point. The binary decoding lives in package
wire, OpenType tables are in package ot, and package otquery offers typed
convenience queries on top of them.

# Status

Does not contain methods for font collections (*.ttc), e.g.,
/System/Library/Fonts/Helvetica.ttc on Mac OS. Parsing a collection fails
with wire.ErrTTCFUnsupported.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontkit

import (
	"os"

	"github.com/cbreeden/fontkit/ot"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'fontkit'
func tracer() tracing.Trace {
	return tracing.Select("fontkit")
}

// ScalableFont is an internal representation of an outline-font of type
// TTF of OTF.
type ScalableFont struct {
	Fontname string
	Filepath string   // file path
	Binary   []byte   // raw data
	OT       *ot.Font // the decoded font, viewing Binary
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
// fbytes must not change while the font is in use.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	if f.OT, err = ot.Parse(f.Binary); err != nil {
		return nil, err
	}
	if name, err := f.OT.Name(); err == nil {
		if full, ok := name.Lookup(uint16(sfnt.NameIDFull)); ok {
			f.Fontname = full
			tracer().Debugf("loaded and parsed font %s", f.Fontname)
		}
	}
	if f.Fontname == "" {
		f.Fontname, _ = FamilyName(f.OT)
	}
	return f, nil
}

// FamilyName extracts family and subfamily names from a font's `name` table.
// Records of the Windows platform are preferred over Unicode and Macintosh records.
//
// Returned values are empty if no matching records exist or if records cannot be
// decoded by the current name-table reader.
func FamilyName(f *ot.Font) (family, subfamily string) {
	name, err := f.Name()
	if err != nil {
		tracer().Debugf("font has no usable name table: %v", err)
		return
	}
	family, _ = name.Lookup(uint16(sfnt.NameIDFamily))
	subfamily, _ = name.Lookup(uint16(sfnt.NameIDSubfamily))
	return
}
