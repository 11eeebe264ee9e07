/*
Package wire decodes the big-endian binary structures OpenType fonts are made of.

Font files are a dense collection of fixed-size primitives (16-bit integers,
fixed-point numbers, four-byte tags, …), records composed of such primitives,
counted arrays of records, and tables whose layout depends on a version number
found at their start. Package wire offers one small vocabulary for all of them:

▪︎ Primitives such as U16, Fixed or Tag know their wire size and decode themselves
from a View, failing with ErrUnexpectedEOF if the view is too short.

▪︎ Records are described by a Schema, i.e. an ordered list of fields. Fields may
be decoded and kept, decoded and thrown away, skipped, supplied by the caller as
parameters, or decoded with parameters computed from earlier fields.

▪︎ Arrays are lazy: decoding an Array captures a count and a view and nothing else.
Elements are decoded on access.

▪︎ Tables with several layouts are decoded through a Dispatch, which peeks at a
discriminant and selects exactly one variant.

Decoding never copies font data. A View is a window onto the caller's byte slice,
and decoded values may keep views into it. The caller must not modify the
slice while decoded values are in use.

Errors are flat values of type Error and are returned unchanged through every layer
of package wire. Clients add context (table, offset) at their own boundaries.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package wire

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontkit.wire'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.wire")
}
