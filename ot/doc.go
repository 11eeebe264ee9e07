/*
Package ot provides access to the tables of an OpenType font.

Parse reads a font's offset table and table directory and checks the extent of
every table against the font data. Tables are decoded on request, directly from
the font's bytes, using the record schemas of package wire:

	otf, err := ot.Parse(data)
	maxp, err := otf.Maxp()
	n := maxp.NumGlyphs()

Package ot decodes the tables needed to get basic information and metrics out of
a font: 'maxp', 'head', 'hhea', 'hmtx' and 'name'. For all other tables, clients
may retrieve the raw bytes with Font.Table and decode them with package wire,
or implement TaggedTable and use DecodeTable.

Decoding errors are reported as *FontError, wrapping one of the error kinds of
package wire and telling the table and section where decoding failed:

	if errors.Is(err, wire.ErrUnexpectedEOF) { … }

# Status

No font collections nor variable fonts are supported. A font collection is
reported as wire.ErrTTCFUnsupported.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

// Code comment often will cite passage from the
// OpenType specification version 1.9;
// see https://learn.microsoft.com/en-us/typography/opentype/spec/.

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontkit.ot'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.ot")
}
